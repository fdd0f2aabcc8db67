package employee

import "time"

// Employee is a payroll subject. Number is the human-readable identifier
// printed on statements; it is unique among all employees ever created.
// Deactivated employees keep their rows so ledger history stays valid.
type Employee struct {
	ID         int64
	Number     string
	Name       string
	Position   string
	Department string
	BaseSalary float64
	HireDate   time.Time
	Phone      string
	Email      string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
