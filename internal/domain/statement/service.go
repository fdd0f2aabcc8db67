package statement

import (
	"context"
	"time"
)

type Service struct {
	employees EmployeeStore
	ledgers   LedgerStore
}

func NewService(employees EmployeeStore, ledgers LedgerStore) *Service {
	return &Service{employees: employees, ledgers: ledgers}
}

// Build assembles the account statement for one employee over the inclusive
// [start, end] window. It is read-only: the same inputs against unchanged
// stores produce an equal statement. The employee may be deactivated; only
// a missing id is an error (employee.ErrNotFound). Storage failures pass
// through unchanged. An inverted range is not rejected; every ledger simply
// comes back empty.
func (s *Service) Build(ctx context.Context, employeeID int64, start, end time.Time) (*Statement, error) {
	emp, err := s.employees.Get(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	salaries, err := s.ledgers.ListSalaries(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	commissions, err := s.ledgers.ListCommissions(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	transfers, err := s.ledgers.ListTransfers(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}

	return New(*emp, salaries, commissions, transfers, start, end), nil
}
