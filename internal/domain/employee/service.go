package employee

import "context"

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, emp *Employee) (int64, error) {
	return s.store.Create(ctx, emp)
}

func (s *Service) Get(ctx context.Context, id int64) (*Employee, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) GetByNumber(ctx context.Context, number string) (*Employee, error) {
	return s.store.GetByNumber(ctx, number)
}

// Update overwrites the mutable fields of an existing employee.
func (s *Service) Update(ctx context.Context, emp *Employee) error {
	return s.store.Update(ctx, emp)
}

// Deactivate soft-deletes an employee; its ledger history stays intact.
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	return s.store.Deactivate(ctx, id)
}

func (s *Service) ListActive(ctx context.Context) ([]Employee, error) {
	return s.store.ListActive(ctx)
}

func (s *Service) Search(ctx context.Context, term string) ([]Employee, error) {
	return s.store.Search(ctx, term)
}
