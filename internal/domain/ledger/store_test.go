package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"paydesk/internal/domain/employee"
	platformdb "paydesk/internal/platform/db"
)

func newTestStores(t *testing.T) (*Store, int64) {
	t.Helper()
	ctx := context.Background()
	conn, err := platformdb.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	employeeID, err := employee.NewStore(conn).Create(ctx, &employee.Employee{
		Number: "E1", Name: "Sara Ahmed",
	})
	if err != nil {
		t.Fatalf("seed employee: %v", err)
	}
	return NewStore(conn), employeeID
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSalaryRangeInclusiveBounds(t *testing.T) {
	ctx := context.Background()
	store, employeeID := newTestStores(t)

	dates := []time.Time{
		day(2024, 2, 29), // before range
		day(2024, 3, 1),  // on start
		day(2024, 3, 15), // inside
		day(2024, 3, 31), // on end
		day(2024, 4, 1),  // after range
	}
	for i, d := range dates {
		_, err := store.CreateSalary(ctx, &SalaryPayment{
			EmployeeID:  employeeID,
			Amount:      float64(1000 * (i + 1)),
			Month:       int(d.Month()),
			Year:        d.Year(),
			PaymentDate: d,
		})
		if err != nil {
			t.Fatalf("create salary: %v", err)
		}
	}

	payments, err := store.ListSalaries(ctx, employeeID, day(2024, 3, 1), day(2024, 3, 31))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(payments) != 3 {
		t.Fatalf("expected 3 payments in range, got %d", len(payments))
	}
	for _, p := range payments {
		if p.PaymentDate.Before(day(2024, 3, 1)) || p.PaymentDate.After(day(2024, 3, 31)) {
			t.Errorf("payment dated %v outside range", p.PaymentDate)
		}
	}
}

func TestListSalariesDescending(t *testing.T) {
	ctx := context.Background()
	store, employeeID := newTestStores(t)

	for _, d := range []time.Time{day(2024, 1, 10), day(2024, 3, 10), day(2024, 2, 10)} {
		_, err := store.CreateSalary(ctx, &SalaryPayment{
			EmployeeID: employeeID, Amount: 100, Month: int(d.Month()), Year: d.Year(), PaymentDate: d,
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	payments, err := store.ListSalaries(ctx, employeeID, time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(payments) != 3 {
		t.Fatalf("expected 3 payments, got %d", len(payments))
	}
	for i := 1; i < len(payments); i++ {
		if payments[i].PaymentDate.After(payments[i-1].PaymentDate) {
			t.Fatalf("payments not in descending date order: %v", payments)
		}
	}
}

func TestUnboundedSides(t *testing.T) {
	ctx := context.Background()
	store, employeeID := newTestStores(t)

	for _, d := range []time.Time{day(2024, 1, 1), day(2024, 6, 1), day(2024, 12, 31)} {
		_, err := store.CreateCommission(ctx, &Commission{
			EmployeeID: employeeID, Amount: 50, CommissionDate: d, Type: CommissionTypeSales,
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	fromJune, err := store.ListCommissions(ctx, employeeID, day(2024, 6, 1), time.Time{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(fromJune) != 2 {
		t.Errorf("open upper bound: expected 2, got %d", len(fromJune))
	}

	untilJune, err := store.ListCommissions(ctx, employeeID, time.Time{}, day(2024, 6, 1))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(untilJune) != 2 {
		t.Errorf("open lower bound: expected 2, got %d", len(untilJune))
	}
}

func TestCreateForMissingEmployee(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStores(t)

	_, err := store.CreateTransfer(ctx, &Transfer{
		EmployeeID: 999, Amount: 100, TransferDate: day(2024, 3, 1), Type: TransferTypeBank,
	})
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestTransferRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, employeeID := newTestStores(t)

	transfer := &Transfer{
		EmployeeID:      employeeID,
		Amount:          100,
		SenderName:      "Head Office",
		TransferDate:    day(2024, 3, 20),
		ReferenceNumber: "REF-ABC123",
		Type:            TransferTypeCash,
		Notes:           "petty cash",
	}
	if _, err := store.CreateTransfer(ctx, transfer); err != nil {
		t.Fatalf("create: %v", err)
	}

	transfers, err := store.ListTransfers(ctx, employeeID, time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(transfers) != 1 {
		t.Fatalf("expected 1 transfer, got %d", len(transfers))
	}
	got := transfers[0]
	if got.SenderName != "Head Office" || got.ReferenceNumber != "REF-ABC123" ||
		got.Type != TransferTypeCash || got.Notes != "petty cash" || got.Amount != 100 {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if !got.TransferDate.Equal(day(2024, 3, 20)) {
		t.Errorf("transfer date = %v", got.TransferDate)
	}
}

func TestServiceDefaults(t *testing.T) {
	ctx := context.Background()
	store, employeeID := newTestStores(t)
	service := NewService(store)

	transfer := &Transfer{EmployeeID: employeeID, Amount: 75}
	if _, err := service.AddTransfer(ctx, transfer); err != nil {
		t.Fatalf("add transfer: %v", err)
	}
	if transfer.Type != TransferTypeBank {
		t.Errorf("default type = %q, want %q", transfer.Type, TransferTypeBank)
	}
	if transfer.ReferenceNumber == "" {
		t.Error("expected a generated reference number")
	}
	if transfer.TransferDate.IsZero() {
		t.Error("expected a defaulted transfer date")
	}

	commission := &Commission{EmployeeID: employeeID, Amount: 20}
	if _, err := service.AddCommission(ctx, commission); err != nil {
		t.Fatalf("add commission: %v", err)
	}
	if commission.Type != CommissionTypeSales {
		t.Errorf("default type = %q, want %q", commission.Type, CommissionTypeSales)
	}
}
