package item

import "context"

// Repository provides persistence for items. Implementations assign ID and
// CreatedAt on Create and return repository.ErrNotFound for unknown ids.
type Repository interface {
	List(ctx context.Context) ([]Item, error)
	Create(ctx context.Context, draft Draft) (*Item, error)
	Update(ctx context.Context, id string, draft Draft) (*Item, error)
	Delete(ctx context.Context, id string) error
}
