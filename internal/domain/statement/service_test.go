package statement

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"paydesk/internal/domain/employee"
	"paydesk/internal/domain/ledger"
)

type fakeEmployeeStore struct {
	employees map[int64]employee.Employee
}

func (f *fakeEmployeeStore) Get(ctx context.Context, id int64) (*employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return nil, employee.ErrNotFound
	}
	return &emp, nil
}

// fakeLedgerStore filters in memory with the same inclusive semantics as
// the SQL store so builder behavior can be asserted without a database.
type fakeLedgerStore struct {
	salaries    []ledger.SalaryPayment
	commissions []ledger.Commission
	transfers   []ledger.Transfer
	err         error
}

func inRange(d, start, end time.Time) bool {
	if !start.IsZero() && d.Before(start) {
		return false
	}
	if !end.IsZero() && d.After(end) {
		return false
	}
	return true
}

func (f *fakeLedgerStore) ListSalaries(ctx context.Context, employeeID int64, start, end time.Time) ([]ledger.SalaryPayment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []ledger.SalaryPayment
	for _, p := range f.salaries {
		if p.EmployeeID == employeeID && inRange(p.PaymentDate, start, end) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeLedgerStore) ListCommissions(ctx context.Context, employeeID int64, start, end time.Time) ([]ledger.Commission, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []ledger.Commission
	for _, c := range f.commissions {
		if c.EmployeeID == employeeID && inRange(c.CommissionDate, start, end) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeLedgerStore) ListTransfers(ctx context.Context, employeeID int64, start, end time.Time) ([]ledger.Transfer, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []ledger.Transfer
	for _, t := range f.transfers {
		if t.EmployeeID == employeeID && inRange(t.TransferDate, start, end) {
			out = append(out, t)
		}
	}
	return out, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func marchFixture() (*fakeEmployeeStore, *fakeLedgerStore) {
	employees := &fakeEmployeeStore{employees: map[int64]employee.Employee{
		1: {ID: 1, Number: "E1", Name: "Sara Ahmed", Position: "Accountant", Department: "Finance", Active: true},
	}}
	ledgers := &fakeLedgerStore{
		salaries: []ledger.SalaryPayment{
			{ID: 1, EmployeeID: 1, Amount: 5000.00, Month: 3, Year: 2024, PaymentDate: day(2024, 3, 1)},
		},
		commissions: []ledger.Commission{
			{ID: 1, EmployeeID: 1, Amount: 250.50, Description: "Q1 sales", CommissionDate: day(2024, 3, 15), Type: ledger.CommissionTypeSales},
		},
		transfers: []ledger.Transfer{
			{ID: 1, EmployeeID: 1, Amount: 100.00, SenderName: "Head Office", TransferDate: day(2024, 3, 20), Type: ledger.TransferTypeBank},
		},
	}
	return employees, ledgers
}

func TestBuildMarchScenario(t *testing.T) {
	employees, ledgers := marchFixture()
	service := NewService(employees, ledgers)

	st, err := service.Build(context.Background(), 1, day(2024, 3, 1), day(2024, 3, 31))
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if len(st.Salaries) != 1 || len(st.Commissions) != 1 || len(st.Transfers) != 1 {
		t.Fatalf("expected one entry per ledger, got %d/%d/%d",
			len(st.Salaries), len(st.Commissions), len(st.Transfers))
	}
	if st.TotalSalary != 5000.00 {
		t.Errorf("total salary = %v", st.TotalSalary)
	}
	if st.TotalCommissions != 250.50 {
		t.Errorf("total commissions = %v", st.TotalCommissions)
	}
	if st.TotalTransfers != 100.00 {
		t.Errorf("total transfers = %v", st.TotalTransfers)
	}
	if st.GrandTotal != 5350.50 {
		t.Errorf("grand total = %v", st.GrandTotal)
	}
}

func TestGrandTotalIdentity(t *testing.T) {
	employees, ledgers := marchFixture()
	ledgers.salaries = append(ledgers.salaries,
		ledger.SalaryPayment{EmployeeID: 1, Amount: 4999.99, PaymentDate: day(2024, 3, 28)})
	ledgers.commissions = append(ledgers.commissions,
		ledger.Commission{EmployeeID: 1, Amount: 0.01, CommissionDate: day(2024, 3, 2)})
	service := NewService(employees, ledgers)

	st, err := service.Build(context.Background(), 1, day(2024, 3, 1), day(2024, 3, 31))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if st.GrandTotal != st.TotalSalary+st.TotalCommissions+st.TotalTransfers {
		t.Errorf("grand total %v != %v + %v + %v",
			st.GrandTotal, st.TotalSalary, st.TotalCommissions, st.TotalTransfers)
	}
}

func TestBuildBoundaryDatesIncluded(t *testing.T) {
	employees, ledgers := marchFixture()
	service := NewService(employees, ledgers)

	// Entries dated exactly on the bounds are in.
	st, err := service.Build(context.Background(), 1, day(2024, 3, 1), day(2024, 3, 1))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(st.Salaries) != 1 {
		t.Errorf("salary on start bound should be included")
	}

	st, err = service.Build(context.Background(), 1, day(2024, 3, 20), day(2024, 3, 20))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(st.Transfers) != 1 {
		t.Errorf("transfer on end bound should be included")
	}
}

func TestBuildEmptyRange(t *testing.T) {
	employees, ledgers := marchFixture()
	service := NewService(employees, ledgers)

	st, err := service.Build(context.Background(), 1, day(2030, 1, 1), day(2030, 1, 2))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if st.TotalSalary != 0 || st.TotalCommissions != 0 || st.TotalTransfers != 0 || st.GrandTotal != 0 {
		t.Errorf("expected all-zero totals, got %+v", st)
	}
	if len(st.Salaries) != 0 || len(st.Commissions) != 0 || len(st.Transfers) != 0 {
		t.Errorf("expected empty ledgers")
	}
}

func TestBuildInvertedRangeYieldsEmpty(t *testing.T) {
	employees, ledgers := marchFixture()
	service := NewService(employees, ledgers)

	st, err := service.Build(context.Background(), 1, day(2024, 3, 31), day(2024, 3, 1))
	if err != nil {
		t.Fatalf("inverted range should not fail: %v", err)
	}
	if st.GrandTotal != 0 {
		t.Errorf("inverted range should yield zero totals, got %v", st.GrandTotal)
	}
}

func TestBuildIdempotent(t *testing.T) {
	employees, ledgers := marchFixture()
	service := NewService(employees, ledgers)
	ctx := context.Background()

	first, err := service.Build(ctx, 1, day(2024, 3, 1), day(2024, 3, 31))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	second, err := service.Build(ctx, 1, day(2024, 3, 1), day(2024, 3, 31))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated builds with unchanged stores should be equal")
	}
}

func TestBuildMissingEmployee(t *testing.T) {
	employees, ledgers := marchFixture()
	service := NewService(employees, ledgers)

	_, err := service.Build(context.Background(), 99, day(2024, 3, 1), day(2024, 3, 31))
	if !errors.Is(err, employee.ErrNotFound) {
		t.Fatalf("expected employee.ErrNotFound, got %v", err)
	}
}

func TestBuildPropagatesStorageErrors(t *testing.T) {
	employees, ledgers := marchFixture()
	storageErr := errors.New("disk gone")
	ledgers.err = storageErr
	service := NewService(employees, ledgers)

	_, err := service.Build(context.Background(), 1, day(2024, 3, 1), day(2024, 3, 31))
	if !errors.Is(err, storageErr) {
		t.Fatalf("expected the storage error unchanged, got %v", err)
	}
}
