// Package render turns a finished statement into its two output forms: the
// plain-text preview and the paginated PDF document. Both are pure
// transforms; no repository access happens here.
package render

import (
	"fmt"
	"strings"

	"paydesk/internal/domain/statement"
	"paydesk/internal/shared"
)

// Section absence wording. The preview spells out empty sections; the PDF
// drops them entirely.
const (
	NoSalaries    = "No salary payments in this period."
	NoCommissions = "No commissions in this period."
	NoTransfers   = "No transfers in this period."
)

// Preview produces the line-oriented text shown in the report preview pane.
func Preview(st *statement.Statement, currency string) string {
	money := func(amount float64) string {
		return shared.FormatCurrency(amount, currency)
	}

	var b strings.Builder
	b.WriteString("Employee Account Statement\n")
	b.WriteString("==========================\n\n")

	b.WriteString("Employee:\n")
	fmt.Fprintf(&b, "- Name: %s\n", st.Employee.Name)
	fmt.Fprintf(&b, "- Number: %s\n", st.Employee.Number)
	fmt.Fprintf(&b, "- Position: %s\n", st.Employee.Position)
	fmt.Fprintf(&b, "- Department: %s\n", st.Employee.Department)
	fmt.Fprintf(&b, "- Period: %s to %s\n", shared.FormatDate(st.StartDate), shared.FormatDate(st.EndDate))

	b.WriteString("\nSalary Payments:\n----------------\n")
	if len(st.Salaries) == 0 {
		b.WriteString(NoSalaries + "\n")
	}
	for _, p := range st.Salaries {
		fmt.Fprintf(&b, "- %s: %s (month %d/%d)\n",
			shared.FormatDate(p.PaymentDate), money(p.Amount), p.Month, p.Year)
	}

	b.WriteString("\nCommissions:\n------------\n")
	if len(st.Commissions) == 0 {
		b.WriteString(NoCommissions + "\n")
	}
	for _, c := range st.Commissions {
		fmt.Fprintf(&b, "- %s: %s (%s)\n",
			shared.FormatDate(c.CommissionDate), money(c.Amount), c.Description)
	}

	b.WriteString("\nTransfers:\n----------\n")
	if len(st.Transfers) == 0 {
		b.WriteString(NoTransfers + "\n")
	}
	for _, t := range st.Transfers {
		fmt.Fprintf(&b, "- %s: %s from %s\n",
			shared.FormatDate(t.TransferDate), money(t.Amount), t.SenderName)
	}

	b.WriteString("\nFinancial Summary:\n==================\n")
	fmt.Fprintf(&b, "- Total salaries: %s\n", money(st.TotalSalary))
	fmt.Fprintf(&b, "- Total commissions: %s\n", money(st.TotalCommissions))
	fmt.Fprintf(&b, "- Total transfers: %s\n", money(st.TotalTransfers))
	fmt.Fprintf(&b, "- Grand total: %s\n", money(st.GrandTotal))

	return b.String()
}
