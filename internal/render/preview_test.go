package render

import (
	"strings"
	"testing"
	"time"

	"paydesk/internal/domain/employee"
	"paydesk/internal/domain/ledger"
	"paydesk/internal/domain/statement"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func marchStatement() *statement.Statement {
	emp := employee.Employee{
		ID: 1, Number: "E1", Name: "Sara Ahmed",
		Position: "Accountant", Department: "Finance", Active: true,
	}
	return statement.New(emp,
		[]ledger.SalaryPayment{
			{EmployeeID: 1, Amount: 5000.00, Month: 3, Year: 2024, PaymentDate: day(2024, 3, 1)},
		},
		[]ledger.Commission{
			{EmployeeID: 1, Amount: 250.50, Description: "Q1 sales", CommissionDate: day(2024, 3, 15), Type: ledger.CommissionTypeSales},
		},
		[]ledger.Transfer{
			{EmployeeID: 1, Amount: 100.00, SenderName: "Head Office", TransferDate: day(2024, 3, 20), Type: ledger.TransferTypeBank, ReferenceNumber: "REF-ABC123"},
		},
		day(2024, 3, 1), day(2024, 3, 31))
}

func emptyStatement() *statement.Statement {
	emp := employee.Employee{ID: 1, Number: "E1", Name: "Sara Ahmed"}
	return statement.New(emp, nil, nil, nil, day(2030, 1, 1), day(2030, 1, 2))
}

func TestPreviewFullStatement(t *testing.T) {
	text := Preview(marchStatement(), "SAR")

	for _, want := range []string{
		"Sara Ahmed",
		"E1",
		"2024-03-01 to 2024-03-31",
		"2024-03-01: 5,000.00 SAR (month 3/2024)",
		"2024-03-15: 250.50 SAR (Q1 sales)",
		"2024-03-20: 100.00 SAR from Head Office",
		"Total salaries: 5,000.00 SAR",
		"Total commissions: 250.50 SAR",
		"Total transfers: 100.00 SAR",
		"Grand total: 5,350.50 SAR",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("preview missing %q\n%s", want, text)
		}
	}

	for _, absent := range []string{NoSalaries, NoCommissions, NoTransfers} {
		if strings.Contains(text, absent) {
			t.Errorf("preview should not contain %q for populated ledgers", absent)
		}
	}
}

func TestPreviewEmptySections(t *testing.T) {
	text := Preview(emptyStatement(), "SAR")

	for _, want := range []string{NoSalaries, NoCommissions, NoTransfers} {
		if !strings.Contains(text, want) {
			t.Errorf("preview missing empty-section text %q", want)
		}
	}
	if !strings.Contains(text, "Grand total: 0.00 SAR") {
		t.Errorf("expected zero grand total\n%s", text)
	}
}

func TestPreviewDeterministic(t *testing.T) {
	st := marchStatement()
	if Preview(st, "SAR") != Preview(st, "SAR") {
		t.Error("preview must be deterministic for the same statement")
	}
}
