package store

import (
	"context"

	"storeops/internal/core/id"
	"storeops/internal/domain"
)

// Filter narrows store list queries.
type Filter struct {
	domain.ListFilter

	Type   Type
	Status Status
}

// Repository defines Store persistence.
type Repository interface {
	Create(ctx context.Context, s *Store) error
	GetByID(ctx context.Context, storeID id.ID) (*Store, error)
	Update(ctx context.Context, s *Store) error
	Delete(ctx context.Context, storeID id.ID) error
	List(ctx context.Context, f Filter) (domain.ListResult[*Store], error)
	Exists(ctx context.Context, storeID id.ID) (bool, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
}
