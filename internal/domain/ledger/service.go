package ledger

import (
	"context"
	"time"

	"paydesk/internal/shared"
)

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

func (s *Service) AddSalary(ctx context.Context, payment *SalaryPayment) (int64, error) {
	if payment.PaymentDate.IsZero() {
		payment.PaymentDate = time.Now()
	}
	return s.store.CreateSalary(ctx, payment)
}

func (s *Service) Salaries(ctx context.Context, employeeID int64, start, end time.Time) ([]SalaryPayment, error) {
	return s.store.ListSalaries(ctx, employeeID, start, end)
}

func (s *Service) AddCommission(ctx context.Context, commission *Commission) (int64, error) {
	if commission.CommissionDate.IsZero() {
		commission.CommissionDate = time.Now()
	}
	if commission.Type == "" {
		commission.Type = CommissionTypeSales
	}
	return s.store.CreateCommission(ctx, commission)
}

func (s *Service) Commissions(ctx context.Context, employeeID int64, start, end time.Time) ([]Commission, error) {
	return s.store.ListCommissions(ctx, employeeID, start, end)
}

// AddTransfer fills in a generated reference number when none was supplied.
func (s *Service) AddTransfer(ctx context.Context, transfer *Transfer) (int64, error) {
	if transfer.TransferDate.IsZero() {
		transfer.TransferDate = time.Now()
	}
	if transfer.Type == "" {
		transfer.Type = TransferTypeBank
	}
	if transfer.ReferenceNumber == "" {
		transfer.ReferenceNumber = shared.NewReferenceNumber()
	}
	return s.store.CreateTransfer(ctx, transfer)
}

func (s *Service) Transfers(ctx context.Context, employeeID int64, start, end time.Time) ([]Transfer, error) {
	return s.store.ListTransfers(ctx, employeeID, start, end)
}
