package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"paydesk/internal/domain/ledger"
	"paydesk/internal/shared"
)

var transferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "Record and list incoming transfers",
}

var (
	transferAmount    string
	transferSender    string
	transferDate      string
	transferReference string
	transferType      string
	transferNotes     string
	transferFrom      string
	transferTo        string
)

var transferAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a transfer",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := shared.NewValidator()
		amount, _ := v.Amount("amount", transferAmount)
		date, _ := parseOptionalDate(v, "date", transferDate)
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

		transfer := &ledger.Transfer{
			EmployeeID:      emp.ID,
			Amount:          amount,
			SenderName:      shared.CleanText(transferSender),
			TransferDate:    date,
			ReferenceNumber: shared.CleanText(transferReference),
			Type:            shared.CleanText(transferType),
			Notes:           shared.CleanText(transferNotes),
		}
		if _, err := a.ledgers.AddTransfer(cmd.Context(), transfer); err != nil {
			return fail(err, "failed to record transfer")
		}
		fmt.Printf("Recorded %s transfer of %s for %s (reference %s)\n",
			transfer.Type, shared.FormatCurrency(amount, a.cfg.Currency),
			emp.Number, transfer.ReferenceNumber)
		return nil
	},
}

var transferListCmd = &cobra.Command{
	Use:   "list",
	Short: "List an employee's transfers, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := shared.NewValidator()
		start, end := parseRange(v, transferFrom, transferTo)
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

		transfers, err := a.ledgers.Transfers(cmd.Context(), emp.ID, start, end)
		if err != nil {
			return fail(err, "failed to list transfers")
		}
		if len(transfers) == 0 {
			fmt.Println("No transfers found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tSENDER\tREFERENCE\tTYPE\tAMOUNT\tNOTES")
		for _, t := range transfers {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				shared.FormatDate(t.TransferDate), t.SenderName, t.ReferenceNumber,
				t.Type, shared.FormatCurrency(t.Amount, a.cfg.Currency), t.Notes)
		}
		w.Flush()
		return nil
	},
}

func init() {
	addEmployeeSelector(transferAddCmd)
	transferAddCmd.Flags().StringVar(&transferAmount, "amount", "", "transfer amount")
	transferAddCmd.Flags().StringVar(&transferSender, "sender", "", "sender name")
	transferAddCmd.Flags().StringVar(&transferDate, "date", "", "transfer date (defaults to today)")
	transferAddCmd.Flags().StringVar(&transferReference, "reference", "", "reference number (generated when omitted)")
	transferAddCmd.Flags().StringVar(&transferType, "type", "", "transfer type: bank, cash or online (default bank)")
	transferAddCmd.Flags().StringVar(&transferNotes, "notes", "", "optional notes")
	transferAddCmd.MarkFlagRequired("amount")

	addEmployeeSelector(transferListCmd)
	transferListCmd.Flags().StringVar(&transferFrom, "from", "", "inclusive start date")
	transferListCmd.Flags().StringVar(&transferTo, "to", "", "inclusive end date")

	transferCmd.AddCommand(transferAddCmd)
	transferCmd.AddCommand(transferListCmd)
}
