package statement

import (
	"context"
	"time"

	"paydesk/internal/domain/employee"
	"paydesk/internal/domain/ledger"
)

type EmployeeStore interface {
	Get(ctx context.Context, id int64) (*employee.Employee, error)
}

type LedgerStore interface {
	ListSalaries(ctx context.Context, employeeID int64, start, end time.Time) ([]ledger.SalaryPayment, error)
	ListCommissions(ctx context.Context, employeeID int64, start, end time.Time) ([]ledger.Commission, error)
	ListTransfers(ctx context.Context, employeeID int64, start, end time.Time) ([]ledger.Transfer, error)
}
