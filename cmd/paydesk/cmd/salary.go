package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"paydesk/internal/domain/ledger"
	"paydesk/internal/shared"
)

var salaryCmd = &cobra.Command{
	Use:   "salary",
	Short: "Record and list salary payments",
}

var (
	salaryAmount string
	salaryMonth  string
	salaryYear   string
	salaryDate   string
	salaryNotes  string
	salaryFrom   string
	salaryTo     string
)

var salaryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a salary payment",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := shared.NewValidator()
		amount, _ := v.Amount("amount", salaryAmount)
		month, _ := v.Month("month", salaryMonth)
		year, _ := v.Year("year", salaryYear)
		paymentDate, _ := parseOptionalDate(v, "date", salaryDate)
		if v.HasIssues() {
			return failValidation(v.Messages())
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return fail(err, "failed to open store")
		}
		defer a.Close()

		emp, err := resolveEmployee(cmd, a)
		if err != nil {
			return fail(err, "failed to load employee")
		}

		payment := &ledger.SalaryPayment{
			EmployeeID:  emp.ID,
			Amount:      amount,
			Month:       month,
			Year:        year,
			PaymentDate: paymentDate,
			Notes:       shared.CleanText(salaryNotes),
		}
		if _, err := a.ledgers.AddSalary(cmd.Context(), payment); err != nil {
			return fail(err, "failed to record salary payment")
		}
		fmt.Printf("Recorded salary payment of %s for %s\n",
			shared.FormatCurrency(amount, a.cfg.Currency), emp.Number)
		return nil
	},
}

var salaryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List an employee's salary payments, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := shared.NewValidator()
		start, end := parseRange(v, salaryFrom, salaryTo)
		if v.HasIssues() {
			return failValidation(v.Messages())
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return fail(err, "failed to open store")
		}
		defer a.Close()

		emp, err := resolveEmployee(cmd, a)
		if err != nil {
			return fail(err, "failed to load employee")
		}

		payments, err := a.ledgers.Salaries(cmd.Context(), emp.ID, start, end)
		if err != nil {
			return fail(err, "failed to list salary payments")
		}
		if len(payments) == 0 {
			fmt.Println("No salary payments found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tMONTH\tYEAR\tAMOUNT\tNOTES")
		for _, p := range payments {
			fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n",
				shared.FormatDate(p.PaymentDate), p.Month, p.Year,
				shared.FormatCurrency(p.Amount, a.cfg.Currency), p.Notes)
		}
		w.Flush()
		return nil
	},
}

func init() {
	addEmployeeSelector(salaryAddCmd)
	salaryAddCmd.Flags().StringVar(&salaryAmount, "amount", "", "payment amount")
	salaryAddCmd.Flags().StringVar(&salaryMonth, "month", "", "salary month (1-12)")
	salaryAddCmd.Flags().StringVar(&salaryYear, "year", "", "salary year")
	salaryAddCmd.Flags().StringVar(&salaryDate, "date", "", "payment date (defaults to today)")
	salaryAddCmd.Flags().StringVar(&salaryNotes, "notes", "", "optional notes")
	salaryAddCmd.MarkFlagRequired("amount")
	salaryAddCmd.MarkFlagRequired("month")
	salaryAddCmd.MarkFlagRequired("year")

	addEmployeeSelector(salaryListCmd)
	salaryListCmd.Flags().StringVar(&salaryFrom, "from", "", "inclusive start date")
	salaryListCmd.Flags().StringVar(&salaryTo, "to", "", "inclusive end date")

	salaryCmd.AddCommand(salaryAddCmd)
	salaryCmd.AddCommand(salaryListCmd)
}
