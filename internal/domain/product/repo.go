package product

import (
	"context"

	"storeops/internal/core/id"
	"storeops/internal/domain"
)

// Filter narrows product list queries.
type Filter struct {
	domain.ListFilter

	CategoryID *id.ID
	Status     Status
	Brand      string
}

// Repository defines Product persistence.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, productID id.ID) (*Product, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, productID id.ID) error
	List(ctx context.Context, f Filter) (domain.ListResult[*Product], error)

	// ListLowStock returns products at or below their minimum stock level.
	ListLowStock(ctx context.Context) ([]*Product, error)

	// ListAll returns every product, newest first, for exports.
	ListAll(ctx context.Context) ([]*Product, error)

	Exists(ctx context.Context, productID id.ID) (bool, error)
	ExistsByBarcode(ctx context.Context, barcode string) (bool, error)

	// IncrementViews bumps the view counter without touching updated_at.
	IncrementViews(ctx context.Context, productID id.ID) error

	// AdjustStock adds delta to stock_quantity, clamped at zero.
	AdjustStock(ctx context.Context, productID id.ID, delta int) error
}
