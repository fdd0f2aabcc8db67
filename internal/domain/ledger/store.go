package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	platformdb "paydesk/internal/platform/db"
)

type Store struct {
	DB *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

func (s *Store) CreateSalary(ctx context.Context, payment *SalaryPayment) (int64, error) {
	payment.CreatedAt = time.Now()
	result, err := s.DB.ExecContext(ctx, `
    INSERT INTO salary_payments (employee_id, amount, month, year, payment_date, notes, created_at)
    VALUES (?, ?, ?, ?, ?, ?, ?)
  `,
		payment.EmployeeID, payment.Amount, payment.Month, payment.Year,
		platformdb.DateString(payment.PaymentDate), payment.Notes,
		platformdb.TimeString(payment.CreatedAt),
	)
	if err != nil {
		return 0, mapInsertError("salary payment", err)
	}
	return lastID(payment, result)
}

func (s *Store) ListSalaries(ctx context.Context, employeeID int64, start, end time.Time) ([]SalaryPayment, error) {
	query, args := rangeQuery(`
    SELECT id, employee_id, amount, month, year, payment_date, notes, created_at
    FROM salary_payments
    WHERE employee_id = ?`, "payment_date", employeeID, start, end)

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list salary payments: %w", err)
	}
	defer rows.Close()

	var payments []SalaryPayment
	for rows.Next() {
		var p SalaryPayment
		var paymentDate, createdAt string
		if err := rows.Scan(&p.ID, &p.EmployeeID, &p.Amount, &p.Month, &p.Year,
			&paymentDate, &p.Notes, &createdAt); err != nil {
			return nil, fmt.Errorf("scan salary payment: %w", err)
		}
		p.PaymentDate = platformdb.ParseDateString(paymentDate)
		p.CreatedAt = platformdb.ParseTimeString(createdAt)
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (s *Store) CreateCommission(ctx context.Context, commission *Commission) (int64, error) {
	commission.CreatedAt = time.Now()
	result, err := s.DB.ExecContext(ctx, `
    INSERT INTO commissions (employee_id, amount, description, commission_date, commission_type, notes, created_at)
    VALUES (?, ?, ?, ?, ?, ?, ?)
  `,
		commission.EmployeeID, commission.Amount, commission.Description,
		platformdb.DateString(commission.CommissionDate), commission.Type,
		commission.Notes, platformdb.TimeString(commission.CreatedAt),
	)
	if err != nil {
		return 0, mapInsertError("commission", err)
	}
	return lastID(commission, result)
}

func (s *Store) ListCommissions(ctx context.Context, employeeID int64, start, end time.Time) ([]Commission, error) {
	query, args := rangeQuery(`
    SELECT id, employee_id, amount, description, commission_date, commission_type, notes, created_at
    FROM commissions
    WHERE employee_id = ?`, "commission_date", employeeID, start, end)

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list commissions: %w", err)
	}
	defer rows.Close()

	var commissions []Commission
	for rows.Next() {
		var c Commission
		var commissionDate, createdAt string
		if err := rows.Scan(&c.ID, &c.EmployeeID, &c.Amount, &c.Description,
			&commissionDate, &c.Type, &c.Notes, &createdAt); err != nil {
			return nil, fmt.Errorf("scan commission: %w", err)
		}
		c.CommissionDate = platformdb.ParseDateString(commissionDate)
		c.CreatedAt = platformdb.ParseTimeString(createdAt)
		commissions = append(commissions, c)
	}
	return commissions, rows.Err()
}

func (s *Store) CreateTransfer(ctx context.Context, transfer *Transfer) (int64, error) {
	transfer.CreatedAt = time.Now()
	result, err := s.DB.ExecContext(ctx, `
    INSERT INTO transfers (employee_id, amount, sender_name, transfer_date,
                           reference_number, transfer_type, notes, created_at)
    VALUES (?, ?, ?, ?, ?, ?, ?, ?)
  `,
		transfer.EmployeeID, transfer.Amount, transfer.SenderName,
		platformdb.DateString(transfer.TransferDate), transfer.ReferenceNumber,
		transfer.Type, transfer.Notes, platformdb.TimeString(transfer.CreatedAt),
	)
	if err != nil {
		return 0, mapInsertError("transfer", err)
	}
	return lastID(transfer, result)
}

func (s *Store) ListTransfers(ctx context.Context, employeeID int64, start, end time.Time) ([]Transfer, error) {
	query, args := rangeQuery(`
    SELECT id, employee_id, amount, sender_name, transfer_date, reference_number, transfer_type, notes, created_at
    FROM transfers
    WHERE employee_id = ?`, "transfer_date", employeeID, start, end)

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()

	var transfers []Transfer
	for rows.Next() {
		var t Transfer
		var transferDate, createdAt string
		if err := rows.Scan(&t.ID, &t.EmployeeID, &t.Amount, &t.SenderName,
			&transferDate, &t.ReferenceNumber, &t.Type, &t.Notes, &createdAt); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		t.TransferDate = platformdb.ParseDateString(transferDate)
		t.CreatedAt = platformdb.ParseTimeString(createdAt)
		transfers = append(transfers, t)
	}
	return transfers, rows.Err()
}

// rangeQuery appends the optional inclusive date bounds and the descending
// order to a base query ending in "WHERE employee_id = ?".
func rangeQuery(base, dateColumn string, employeeID int64, start, end time.Time) (string, []any) {
	args := []any{employeeID}
	if !start.IsZero() {
		base += " AND " + dateColumn + " >= ?"
		args = append(args, platformdb.DateString(start))
	}
	if !end.IsZero() {
		base += " AND " + dateColumn + " <= ?"
		args = append(args, platformdb.DateString(end))
	}
	base += " ORDER BY " + dateColumn + " DESC, id DESC"
	return base, args
}

type identifiable interface {
	setID(id int64)
}

func (p *SalaryPayment) setID(id int64) { p.ID = id }
func (c *Commission) setID(id int64)    { c.ID = id }
func (t *Transfer) setID(id int64)      { t.ID = id }

func lastID(record identifiable, result sql.Result) (int64, error) {
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("ledger insert id: %w", err)
	}
	record.setID(id)
	return id, nil
}

func mapInsertError(kind string, err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey {
		return ErrEmployeeNotFound
	}
	return fmt.Errorf("insert %s: %w", kind, err)
}
