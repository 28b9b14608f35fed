package category

import (
	"context"

	"storeops/internal/core/id"
	"storeops/internal/domain"
)

// Filter narrows category list queries.
type Filter struct {
	domain.ListFilter

	Status Status
}

// Repository defines Category persistence.
type Repository interface {
	Create(ctx context.Context, c *Category) error
	GetByID(ctx context.Context, categoryID id.ID) (*Category, error)
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, categoryID id.ID) error
	List(ctx context.Context, f Filter) (domain.ListResult[*Category], error)

	// CountProducts returns the number of products referencing the category.
	CountProducts(ctx context.Context, categoryID id.ID) (int64, error)
}
