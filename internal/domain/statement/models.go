// Package statement assembles per-employee account statements: the three
// ledgers filtered to a date window plus their totals.
package statement

import (
	"time"

	"paydesk/internal/domain/employee"
	"paydesk/internal/domain/ledger"
)

// Statement is derived on every request and never persisted. The totals are
// computed from the attached lists at construction, so they always agree
// with them.
type Statement struct {
	Employee    employee.Employee
	Salaries    []ledger.SalaryPayment
	Commissions []ledger.Commission
	Transfers   []ledger.Transfer
	StartDate   time.Time
	EndDate     time.Time

	TotalSalary      float64
	TotalCommissions float64
	TotalTransfers   float64
	GrandTotal       float64
}

func New(emp employee.Employee, salaries []ledger.SalaryPayment, commissions []ledger.Commission, transfers []ledger.Transfer, start, end time.Time) *Statement {
	st := &Statement{
		Employee:    emp,
		Salaries:    salaries,
		Commissions: commissions,
		Transfers:   transfers,
		StartDate:   start,
		EndDate:     end,
	}
	st.calculateTotals()
	return st
}

func (st *Statement) calculateTotals() {
	st.TotalSalary = 0
	st.TotalCommissions = 0
	st.TotalTransfers = 0
	for _, p := range st.Salaries {
		st.TotalSalary += p.Amount
	}
	for _, c := range st.Commissions {
		st.TotalCommissions += c.Amount
	}
	for _, t := range st.Transfers {
		st.TotalTransfers += t.Amount
	}
	st.GrandTotal = st.TotalSalary + st.TotalCommissions + st.TotalTransfers
}
