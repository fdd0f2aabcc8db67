package employee

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

const employeeColumns = `id, employee_number, name, position, department,
       base_salary, hire_date, phone, email, active, created_at, updated_at`

// Create inserts a new employee and returns its generated id. Inserting a
// number that was ever used before fails with ErrDuplicateNumber.
func (s *Store) Create(ctx context.Context, emp *Employee) (int64, error) {
	now := time.Now()
	if emp.HireDate.IsZero() {
		emp.HireDate = now
	}
	emp.CreatedAt = now
	emp.UpdatedAt = now
	emp.Active = true

	result, err := s.DB.ExecContext(ctx, `
    INSERT INTO employees (employee_number, name, position, department,
                           base_salary, hire_date, phone, email, active,
                           created_at, updated_at)
    VALUES (?, ?, ?, ?, ?, ?, ?, ?, 1, ?, ?)
  `,
		emp.Number, emp.Name, emp.Position, emp.Department,
		emp.BaseSalary, platformdb.DateString(emp.HireDate), emp.Phone, emp.Email,
		platformdb.TimeString(emp.CreatedAt), platformdb.TimeString(emp.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateNumber
		}
		return 0, fmt.Errorf("insert employee: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("employee insert id: %w", err)
	}
	emp.ID = id
	return id, nil
}

// Get resolves an employee by id regardless of its active flag, so
// statements remain available for deactivated employees.
func (s *Store) Get(ctx context.Context, id int64) (*Employee, error) {
	row := s.DB.QueryRowContext(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE id = ?
  `, id)
	return scanEmployee(row)
}

func (s *Store) GetByNumber(ctx context.Context, number string) (*Employee, error) {
	row := s.DB.QueryRowContext(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE employee_number = ?
  `, number)
	return scanEmployee(row)
}

// Update overwrites the mutable fields and refreshes updated_at. The
// employee number is immutable once assigned.
func (s *Store) Update(ctx context.Context, emp *Employee) error {
	emp.UpdatedAt = time.Now()
	result, err := s.DB.ExecContext(ctx, `
    UPDATE employees
    SET name = ?, position = ?, department = ?, base_salary = ?,
        phone = ?, email = ?, updated_at = ?
    WHERE id = ?
  `,
		emp.Name, emp.Position, emp.Department, emp.BaseSalary,
		emp.Phone, emp.Email, platformdb.TimeString(emp.UpdatedAt), emp.ID,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return requireRow(result)
}

// Deactivate clears the active flag. The row is never removed so ledger
// entries keep resolving.
func (s *Store) Deactivate(ctx context.Context, id int64) error {
	result, err := s.DB.ExecContext(ctx, `
    UPDATE employees
    SET active = 0, updated_at = ?
    WHERE id = ?
  `, platformdb.TimeString(time.Now()), id)
	if err != nil {
		return fmt.Errorf("deactivate employee: %w", err)
	}
	return requireRow(result)
}

func (s *Store) ListActive(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.QueryContext(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE active = 1
    ORDER BY name
  `)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	return collectEmployees(rows)
}

// Search filters active employees by a case-insensitive substring over
// name, number, position and department.
func (s *Store) Search(ctx context.Context, term string) ([]Employee, error) {
	pattern := "%" + term + "%"
	rows, err := s.DB.QueryContext(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE active = 1
      AND (name LIKE ? OR employee_number LIKE ? OR position LIKE ? OR department LIKE ?)
    ORDER BY name
  `, pattern, pattern, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("search employees: %w", err)
	}
	defer rows.Close()
	return collectEmployees(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (*Employee, error) {
	var emp Employee
	var hireDate, createdAt, updatedAt string
	err := row.Scan(
		&emp.ID, &emp.Number, &emp.Name, &emp.Position, &emp.Department,
		&emp.BaseSalary, &hireDate, &emp.Phone, &emp.Email, &emp.Active,
		&createdAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan employee: %w", err)
	}
	emp.HireDate = platformdb.ParseDateString(hireDate)
	emp.CreatedAt = platformdb.ParseTimeString(createdAt)
	emp.UpdatedAt = platformdb.ParseTimeString(updatedAt)
	return &emp, nil
}

func collectEmployees(rows *sql.Rows) ([]Employee, error) {
	var employees []Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *emp)
	}
	return employees, rows.Err()
}

func requireRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
