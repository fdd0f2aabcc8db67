package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"paydesk/internal/domain/statement"
	"paydesk/internal/shared"
)

// PDF renders the statement as an A4 portrait document: title, employee
// info block, one table per non-empty ledger and a summary block. Ledgers
// with no entries in range are omitted entirely.
func PDF(st *statement.Statement, currency string) ([]byte, error) {
	money := func(amount float64) string {
		return shared.FormatCurrency(amount, currency)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "Employee Account Statement", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	infoRow(pdf, "Name", st.Employee.Name)
	infoRow(pdf, "Employee number", st.Employee.Number)
	infoRow(pdf, "Position", st.Employee.Position)
	infoRow(pdf, "Department", st.Employee.Department)
	infoRow(pdf, "Period", fmt.Sprintf("%s to %s",
		shared.FormatDate(st.StartDate), shared.FormatDate(st.EndDate)))
	pdf.Ln(6)

	if len(st.Salaries) > 0 {
		sectionTitle(pdf, "Salary Payments")
		widths := []float64{30, 20, 20, 40, 80}
		tableHeader(pdf, widths, []string{"Date", "Month", "Year", "Amount", "Notes"})
		for _, p := range st.Salaries {
			tableRow(pdf, widths, []string{
				shared.FormatDate(p.PaymentDate),
				fmt.Sprintf("%d", p.Month),
				fmt.Sprintf("%d", p.Year),
				money(p.Amount),
				p.Notes,
			})
		}
		pdf.Ln(6)
	}

	if len(st.Commissions) > 0 {
		sectionTitle(pdf, "Commissions")
		widths := []float64{30, 28, 52, 40, 40}
		tableHeader(pdf, widths, []string{"Date", "Type", "Description", "Amount", "Notes"})
		for _, c := range st.Commissions {
			tableRow(pdf, widths, []string{
				shared.FormatDate(c.CommissionDate),
				c.Type,
				c.Description,
				money(c.Amount),
				c.Notes,
			})
		}
		pdf.Ln(6)
	}

	if len(st.Transfers) > 0 {
		sectionTitle(pdf, "Transfers")
		widths := []float64{30, 45, 45, 25, 45}
		tableHeader(pdf, widths, []string{"Date", "Sender", "Reference", "Type", "Amount"})
		for _, t := range st.Transfers {
			tableRow(pdf, widths, []string{
				shared.FormatDate(t.TransferDate),
				t.SenderName,
				t.ReferenceNumber,
				t.Type,
				money(t.Amount),
			})
		}
		pdf.Ln(6)
	}

	sectionTitle(pdf, "Financial Summary")
	summaryRow(pdf, "Total salaries", money(st.TotalSalary), false)
	summaryRow(pdf, "Total commissions", money(st.TotalCommissions), false)
	summaryRow(pdf, "Total transfers", money(st.TotalTransfers), false)
	summaryRow(pdf, "Grand total", money(st.GrandTotal), true)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render statement pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// DefaultFilename is used when the caller does not supply an output path.
func DefaultFilename(st *statement.Statement) string {
	return fmt.Sprintf("account_statement_%s_%s_%s.pdf",
		st.Employee.Number,
		st.StartDate.Format("20060102"),
		st.EndDate.Format("20060102"))
}

// WritePDF renders the statement and writes it to path. An empty path picks
// DefaultFilename under dir. The resolved path is returned.
func WritePDF(st *statement.Statement, currency, dir, path string) (string, error) {
	if path == "" {
		path = filepath.Join(dir, DefaultFilename(st))
	}
	data, err := PDF(st, currency)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write statement pdf: %w", err)
	}
	return path, nil
}

func infoRow(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(50, 8, label, "1", 0, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(140, 8, value, "1", 1, "L", false, 0, "")
}

func sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 9, title, "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func tableHeader(pdf *gofpdf.Fpdf, widths []float64, titles []string) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(120, 120, 120)
	pdf.SetTextColor(255, 255, 255)
	for i, title := range titles {
		pdf.CellFormat(widths[i], 7, title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetTextColor(0, 0, 0)
}

func tableRow(pdf *gofpdf.Fpdf, widths []float64, values []string) {
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetFillColor(245, 245, 220)
	for i, value := range values {
		pdf.CellFormat(widths[i], 7, value, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}

func summaryRow(pdf *gofpdf.Fpdf, label, value string, grand bool) {
	pdf.SetFont("Helvetica", "B", 11)
	if grand {
		pdf.SetFillColor(198, 239, 206)
	} else {
		pdf.SetFillColor(189, 215, 238)
	}
	pdf.CellFormat(60, 9, label, "1", 0, "L", true, 0, "")
	pdf.CellFormat(60, 9, value, "1", 1, "R", true, 0, "")
}
