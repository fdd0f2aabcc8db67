package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"paydesk/internal/domain/ledger"
	"paydesk/internal/shared"
)

var commissionCmd = &cobra.Command{
	Use:   "commission",
	Short: "Record and list commissions",
}

var (
	commissionAmount      string
	commissionDescription string
	commissionDate        string
	commissionType        string
	commissionNotes       string
	commissionFrom        string
	commissionTo          string
)

var commissionAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a commission",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := shared.NewValidator()
		amount, _ := v.Amount("amount", commissionAmount)
		date, _ := parseOptionalDate(v, "date", commissionDate)
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

		commission := &ledger.Commission{
			EmployeeID:     emp.ID,
			Amount:         amount,
			Description:    shared.CleanText(commissionDescription),
			CommissionDate: date,
			Type:           shared.CleanText(commissionType),
			Notes:          shared.CleanText(commissionNotes),
		}
		if _, err := a.ledgers.AddCommission(cmd.Context(), commission); err != nil {
			return fail(err, "failed to record commission")
		}
		fmt.Printf("Recorded %s commission of %s for %s\n",
			commission.Type, shared.FormatCurrency(amount, a.cfg.Currency), emp.Number)
		return nil
	},
}

var commissionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List an employee's commissions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := shared.NewValidator()
		start, end := parseRange(v, commissionFrom, commissionTo)
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

		commissions, err := a.ledgers.Commissions(cmd.Context(), emp.ID, start, end)
		if err != nil {
			return fail(err, "failed to list commissions")
		}
		if len(commissions) == 0 {
			fmt.Println("No commissions found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tTYPE\tDESCRIPTION\tAMOUNT\tNOTES")
		for _, c := range commissions {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				shared.FormatDate(c.CommissionDate), c.Type, c.Description,
				shared.FormatCurrency(c.Amount, a.cfg.Currency), c.Notes)
		}
		w.Flush()
		return nil
	},
}

func init() {
	addEmployeeSelector(commissionAddCmd)
	commissionAddCmd.Flags().StringVar(&commissionAmount, "amount", "", "commission amount")
	commissionAddCmd.Flags().StringVar(&commissionDescription, "description", "", "what the commission was for")
	commissionAddCmd.Flags().StringVar(&commissionDate, "date", "", "commission date (defaults to today)")
	commissionAddCmd.Flags().StringVar(&commissionType, "type", "", "commission type: sales, performance or bonus (default sales)")
	commissionAddCmd.Flags().StringVar(&commissionNotes, "notes", "", "optional notes")
	commissionAddCmd.MarkFlagRequired("amount")

	addEmployeeSelector(commissionListCmd)
	commissionListCmd.Flags().StringVar(&commissionFrom, "from", "", "inclusive start date")
	commissionListCmd.Flags().StringVar(&commissionTo, "to", "", "inclusive end date")

	commissionCmd.AddCommand(commissionAddCmd)
	commissionCmd.AddCommand(commissionListCmd)
}
