package employee

import "context"

type StoreAPI interface {
	Create(ctx context.Context, emp *Employee) (int64, error)
	Get(ctx context.Context, id int64) (*Employee, error)
	GetByNumber(ctx context.Context, number string) (*Employee, error)
	Update(ctx context.Context, emp *Employee) error
	Deactivate(ctx context.Context, id int64) error
	ListActive(ctx context.Context) ([]Employee, error)
	Search(ctx context.Context, term string) ([]Employee, error)
}
