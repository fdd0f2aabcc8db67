package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"paydesk/internal/domain/employee"
	"paydesk/internal/shared"
)

var employeeCmd = &cobra.Command{
	Use:   "employee",
	Short: "Manage employee records",
}

var (
	empName       string
	empNumber     string
	empPosition   string
	empDepartment string
	empBaseSalary string
	empHireDate   string
	empPhone      string
	empEmail      string
)

var employeeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new employee",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := shared.NewValidator()
		v.Name("name", empName)
		v.EmployeeNumber("number", empNumber)
		v.Email("email", empEmail)
		v.Phone("phone", empPhone)
		baseSalary, _ := v.OptionalAmount("base-salary", empBaseSalary)
		hireDate, _ := parseOptionalDate(v, "hire-date", empHireDate)
		if v.HasIssues() {
			return failValidation(v.Messages())
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return fail(err, "failed to open store")
		}
		defer a.Close()

		emp := &employee.Employee{
			Number:     shared.CleanText(empNumber),
			Name:       shared.CleanText(empName),
			Position:   shared.CleanText(empPosition),
			Department: shared.CleanText(empDepartment),
			BaseSalary: baseSalary,
			HireDate:   hireDate,
			Phone:      shared.CleanText(empPhone),
			Email:      shared.CleanText(empEmail),
		}
		id, err := a.employees.Create(cmd.Context(), emp)
		if err != nil {
			return fail(err, "failed to add employee")
		}
		fmt.Printf("Added employee %s (id %d)\n", emp.Number, id)
		return nil
	},
}

var employeeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active employees ordered by name",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return fail(err, "failed to open store")
		}
		defer a.Close()

		employees, err := a.employees.ListActive(cmd.Context())
		if err != nil {
			return fail(err, "failed to list employees")
		}
		printEmployees(employees, a.cfg.Currency)
		return nil
	},
}

var employeeSearchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search active employees by name, number, position or department",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return fail(err, "failed to open store")
		}
		defer a.Close()

		employees, err := a.employees.Search(cmd.Context(), strings.TrimSpace(args[0]))
		if err != nil {
			return fail(err, "failed to search employees")
		}
		printEmployees(employees, a.cfg.Currency)
		return nil
	},
}

var employeeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show one employee, active or not",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return fail(err, "failed to open store")
		}
		defer a.Close()

		emp, err := resolveEmployee(cmd, a)
		if err != nil {
			return fail(err, "failed to load employee")
		}

		status := "active"
		if !emp.Active {
			status = "inactive"
		}
		fmt.Printf("Id:          %d\n", emp.ID)
		fmt.Printf("Number:      %s\n", emp.Number)
		fmt.Printf("Name:        %s\n", emp.Name)
		fmt.Printf("Position:    %s\n", emp.Position)
		fmt.Printf("Department:  %s\n", emp.Department)
		fmt.Printf("Base salary: %s\n", shared.FormatCurrency(emp.BaseSalary, a.cfg.Currency))
		fmt.Printf("Hire date:   %s\n", shared.FormatDate(emp.HireDate))
		fmt.Printf("Phone:       %s\n", emp.Phone)
		fmt.Printf("Email:       %s\n", emp.Email)
		fmt.Printf("Status:      %s\n", status)
		return nil
	},
}

var employeeUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update an employee's mutable fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return fail(err, "failed to open store")
		}
		defer a.Close()

		emp, err := resolveEmployee(cmd, a)
		if err != nil {
			return fail(err, "failed to load employee")
		}

		v := shared.NewValidator()
		if cmd.Flags().Changed("name") {
			v.Name("name", empName)
			emp.Name = shared.CleanText(empName)
		}
		if cmd.Flags().Changed("position") {
			emp.Position = shared.CleanText(empPosition)
		}
		if cmd.Flags().Changed("department") {
			emp.Department = shared.CleanText(empDepartment)
		}
		if cmd.Flags().Changed("base-salary") {
			emp.BaseSalary, _ = v.Amount("base-salary", empBaseSalary)
		}
		if cmd.Flags().Changed("phone") {
			v.Phone("phone", empPhone)
			emp.Phone = shared.CleanText(empPhone)
		}
		if cmd.Flags().Changed("email") {
			v.Email("email", empEmail)
			emp.Email = shared.CleanText(empEmail)
		}
		if v.HasIssues() {
			return failValidation(v.Messages())
		}

		if err := a.employees.Update(cmd.Context(), emp); err != nil {
			return fail(err, "failed to update employee")
		}
		fmt.Printf("Updated employee %s\n", emp.Number)
		return nil
	},
}

var employeeDeactivateCmd = &cobra.Command{
	Use:   "deactivate",
	Short: "Soft-delete an employee; history is preserved",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return fail(err, "failed to open store")
		}
		defer a.Close()

		emp, err := resolveEmployee(cmd, a)
		if err != nil {
			return fail(err, "failed to load employee")
		}
		if err := a.employees.Deactivate(cmd.Context(), emp.ID); err != nil {
			return fail(err, "failed to deactivate employee")
		}
		fmt.Printf("Deactivated employee %s\n", emp.Number)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{employeeAddCmd, employeeUpdateCmd} {
		c.Flags().StringVar(&empName, "name", "", "full name")
		c.Flags().StringVar(&empPosition, "position", "", "position")
		c.Flags().StringVar(&empDepartment, "department", "", "department")
		c.Flags().StringVar(&empBaseSalary, "base-salary", "", "base salary amount")
		c.Flags().StringVar(&empPhone, "phone", "", "phone number")
		c.Flags().StringVar(&empEmail, "email", "", "email address")
	}
	employeeAddCmd.Flags().StringVar(&empNumber, "number", "", "unique employee number (3-10 letters or digits)")
	employeeAddCmd.Flags().StringVar(&empHireDate, "hire-date", "", "hire date (defaults to today)")
	employeeAddCmd.MarkFlagRequired("name")
	employeeAddCmd.MarkFlagRequired("number")

	for _, c := range []*cobra.Command{employeeShowCmd, employeeUpdateCmd, employeeDeactivateCmd} {
		addEmployeeSelector(c)
	}

	employeeCmd.AddCommand(employeeAddCmd)
	employeeCmd.AddCommand(employeeListCmd)
	employeeCmd.AddCommand(employeeSearchCmd)
	employeeCmd.AddCommand(employeeShowCmd)
	employeeCmd.AddCommand(employeeUpdateCmd)
	employeeCmd.AddCommand(employeeDeactivateCmd)
}

func printEmployees(employees []employee.Employee, currency string) {
	if len(employees) == 0 {
		fmt.Println("No employees found.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNUMBER\tNAME\tPOSITION\tDEPARTMENT\tBASE SALARY")
	for _, emp := range employees {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			emp.ID, emp.Number, emp.Name, emp.Position, emp.Department,
			shared.FormatCurrency(emp.BaseSalary, currency))
	}
	w.Flush()
}
