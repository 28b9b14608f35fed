package product

import (
	"context"
	"fmt"

	"storeops/internal/core/apperror"
	"storeops/internal/core/barcode"
	"storeops/internal/core/id"
	"storeops/internal/domain"
	"storeops/pkg/logger"
)

const (
	defaultPageSize    = 10
	barcodeGenAttempts = 10
)

// StockOperation names the supported stock adjustment modes.
type StockOperation string

const (
	StockAdd      StockOperation = "add"
	StockSubtract StockOperation = "subtract"
	StockSet      StockOperation = "set"
)

// Service provides business logic for products.
type Service struct {
	repo Repository
}

// NewService creates a product service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and stores a new product.
func (s *Service) Create(ctx context.Context, p *Product) error {
	if err := p.Validate(ctx); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

// GetByID returns one product and bumps its view counter.
// The counter write is best effort.
func (s *Service) GetByID(ctx context.Context, productID id.ID) (*Product, error) {
	p, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.IncrementViews(ctx, productID); err != nil {
		logger.Warn(ctx, "increment product views failed", "product_id", productID, "error", err)
	} else {
		p.Views++
	}
	return p, nil
}

// Update validates and stores changes to an existing product.
func (s *Service) Update(ctx context.Context, p *Product) error {
	if err := p.Validate(ctx); err != nil {
		return err
	}
	p.Touch()
	if err := s.repo.Update(ctx, p); err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete removes a product unconditionally.
func (s *Service) Delete(ctx context.Context, productID id.ID) error {
	if _, err := s.repo.GetByID(ctx, productID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, productID)
}

// List returns one page of products.
func (s *Service) List(ctx context.Context, f Filter) (domain.ListResult[*Product], error) {
	f.Normalize(defaultPageSize)
	return s.repo.List(ctx, f)
}

// ListLowStock returns products at or below their minimum stock level.
func (s *Service) ListLowStock(ctx context.Context) ([]*Product, error) {
	return s.repo.ListLowStock(ctx)
}

// ListAll returns every product for export.
func (s *Service) ListAll(ctx context.Context) ([]*Product, error) {
	return s.repo.ListAll(ctx)
}

// UpdateStock applies a manual stock adjustment.
func (s *Service) UpdateStock(ctx context.Context, productID id.ID, op StockOperation, quantity int) (*Product, error) {
	if quantity < 0 {
		return nil, apperror.NewValidation("invalid stock adjustment", "quantity cannot be negative")
	}
	p, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	switch op {
	case StockAdd:
		p.StockQuantity += quantity
	case StockSubtract:
		p.StockQuantity -= quantity
		if p.StockQuantity < 0 {
			p.StockQuantity = 0
		}
	case StockSet:
		p.StockQuantity = quantity
	default:
		return nil, apperror.NewValidation("invalid stock adjustment", "operation must be add, subtract or set")
	}

	p.Touch()
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update stock: %w", err)
	}
	return p, nil
}

// AssignBarcode generates a fresh EAN-13 barcode for the product and saves it.
// Generation retries while the candidate collides with an existing barcode.
func (s *Service) AssignBarcode(ctx context.Context, productID id.ID) (*Product, error) {
	p, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	var code string
	for i := 0; i < barcodeGenAttempts; i++ {
		code = barcode.NewEAN13()
		taken, err := s.repo.ExistsByBarcode(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("check barcode: %w", err)
		}
		if !taken {
			break
		}
		code = ""
	}
	if code == "" {
		return nil, apperror.NewInternal("could not generate a unique barcode", nil)
	}

	p.Barcode = &code
	p.Touch()
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("save barcode: %w", err)
	}
	return p, nil
}
