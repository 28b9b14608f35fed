package store

import (
	"context"
	"fmt"

	"storeops/internal/core/autocode"
	"storeops/internal/core/id"
	"storeops/internal/domain"
)

const defaultPageSize = 50

// Service provides business logic for stores.
type Service struct {
	repo Repository
}

// NewService creates a store service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and stores a new store, generating a code when absent.
func (s *Service) Create(ctx context.Context, st *Store) error {
	if err := st.Validate(ctx); err != nil {
		return err
	}
	if st.Code == "" {
		code, err := autocode.Generate(ctx, s.repo.ExistsByCode)
		if err != nil {
			return fmt.Errorf("generate store code: %w", err)
		}
		st.Code = code
	}
	if err := s.repo.Create(ctx, st); err != nil {
		return fmt.Errorf("create store: %w", err)
	}
	return nil
}

// GetByID returns one store.
func (s *Service) GetByID(ctx context.Context, storeID id.ID) (*Store, error) {
	return s.repo.GetByID(ctx, storeID)
}

// Update validates and stores changes to an existing store.
func (s *Service) Update(ctx context.Context, st *Store) error {
	if err := st.Validate(ctx); err != nil {
		return err
	}
	st.Touch()
	if err := s.repo.Update(ctx, st); err != nil {
		return fmt.Errorf("update store: %w", err)
	}
	return nil
}

// Delete removes a store unconditionally.
func (s *Service) Delete(ctx context.Context, storeID id.ID) error {
	if _, err := s.repo.GetByID(ctx, storeID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, storeID)
}

// List returns one page of stores.
func (s *Service) List(ctx context.Context, f Filter) (domain.ListResult[*Store], error) {
	f.Normalize(defaultPageSize)
	return s.repo.List(ctx, f)
}
