package ledger

import (
	"context"
	"time"
)

// StoreAPI persists the three ledgers. List methods return entries for one
// employee ordered by the record's own date descending; a zero start or end
// leaves that side of the range unbounded, and both bounds are inclusive.
type StoreAPI interface {
	CreateSalary(ctx context.Context, payment *SalaryPayment) (int64, error)
	ListSalaries(ctx context.Context, employeeID int64, start, end time.Time) ([]SalaryPayment, error)

	CreateCommission(ctx context.Context, commission *Commission) (int64, error)
	ListCommissions(ctx context.Context, employeeID int64, start, end time.Time) ([]Commission, error)

	CreateTransfer(ctx context.Context, transfer *Transfer) (int64, error)
	ListTransfers(ctx context.Context, employeeID int64, start, end time.Time) ([]Transfer, error)
}
