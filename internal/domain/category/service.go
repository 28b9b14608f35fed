package category

import (
	"context"
	"fmt"

	"storeops/internal/core/apperror"
	"storeops/internal/core/id"
	"storeops/internal/domain"
)

const defaultPageSize = 10

// Service provides business logic for categories.
type Service struct {
	repo Repository
}

// NewService creates a category service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and stores a new category.
func (s *Service) Create(ctx context.Context, c *Category) error {
	if err := c.Validate(ctx); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

// GetByID returns one category.
func (s *Service) GetByID(ctx context.Context, categoryID id.ID) (*Category, error) {
	return s.repo.GetByID(ctx, categoryID)
}

// Update validates and stores changes to an existing category.
func (s *Service) Update(ctx context.Context, c *Category) error {
	if err := c.Validate(ctx); err != nil {
		return err
	}
	c.Touch()
	if err := s.repo.Update(ctx, c); err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete removes a category. Deletion is refused while any product
// still references it; the product count is read live.
func (s *Service) Delete(ctx context.Context, categoryID id.ID) error {
	if _, err := s.repo.GetByID(ctx, categoryID); err != nil {
		return err
	}
	count, err := s.repo.CountProducts(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("count category products: %w", err)
	}
	if count > 0 {
		return apperror.NewDependentRecords("category has products; move or delete them first")
	}
	return s.repo.Delete(ctx, categoryID)
}

// List returns one page of categories.
func (s *Service) List(ctx context.Context, f Filter) (domain.ListResult[*Category], error) {
	f.Normalize(defaultPageSize)
	return s.repo.List(ctx, f)
}
