package stockmovement

import (
	"context"

	"storeops/internal/core/entity"
	"storeops/internal/core/id"
	"storeops/internal/domain"
)

const defaultPageSize = 20

// Service exposes read access to the movement ledger.
type Service struct {
	repo Repository
}

// NewService creates a stock movement service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns one page of ledger rows, newest first.
func (s *Service) List(ctx context.Context, f Filter) (domain.ListResult[*Movement], error) {
	f.Normalize(defaultPageSize)
	return s.repo.List(ctx, f)
}

// Record validates and appends one ledger row, assigning identity and
// timestamps when the caller did not.
func (s *Service) Record(ctx context.Context, m *Movement) error {
	if id.IsNil(m.ID) {
		m.Base = entity.NewBase()
	}
	if err := m.Validate(ctx); err != nil {
		return err
	}
	return s.repo.Create(ctx, m)
}
