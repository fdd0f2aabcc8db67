// Package ledger owns the three per-employee pay-event logs: salary
// payments, commissions and transfers. Each record carries its own semantic
// date, which is what range queries and statements filter on; the creation
// timestamp is bookkeeping only.
package ledger

import "time"

type SalaryPayment struct {
	ID          int64
	EmployeeID  int64
	Amount      float64
	Month       int
	Year        int
	PaymentDate time.Time
	Notes       string
	CreatedAt   time.Time
}

type Commission struct {
	ID             int64
	EmployeeID     int64
	Amount         float64
	Description    string
	CommissionDate time.Time
	Type           string
	Notes          string
	CreatedAt      time.Time
}

type Transfer struct {
	ID              int64
	EmployeeID      int64
	Amount          float64
	SenderName      string
	TransferDate    time.Time
	ReferenceNumber string
	Type            string
	Notes           string
	CreatedAt       time.Time
}

// Conventional commission and transfer types. The columns are open-ended
// text; these are only the defaults the add commands suggest.
const (
	CommissionTypeSales       = "sales"
	CommissionTypePerformance = "performance"
	CommissionTypeBonus       = "bonus"

	TransferTypeBank   = "bank"
	TransferTypeCash   = "cash"
	TransferTypeOnline = "online"
)
