package stockmovement

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storeops/internal/core/apperror"
	"storeops/internal/core/entity"
	"storeops/internal/core/id"
	"storeops/internal/domain"
)

type mockRepo struct {
	created []*Movement
}

func (m *mockRepo) Create(ctx context.Context, mv *Movement) error {
	m.created = append(m.created, mv)
	return nil
}

func (m *mockRepo) List(ctx context.Context, f Filter) (domain.ListResult[*Movement], error) {
	return domain.ListResult[*Movement]{Items: m.created, Total: int64(len(m.created)), Page: f.Page, Limit: f.Limit}, nil
}

func validMovement() *Movement {
	return &Movement{
		Base:          entity.NewBase(),
		ProductID:     id.New(),
		StoreID:       id.New(),
		Direction:     DirectionOut,
		Quantity:      3,
		ReferenceType: RefShipment,
		ReferenceID:   id.New(),
	}
}

func TestRecordValid(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	err := svc.Record(context.Background(), validMovement())

	require.NoError(t, err)
	assert.Len(t, repo.created, 1)
}

func TestRecordInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Movement)
	}{
		{"zero quantity", func(m *Movement) { m.Quantity = 0 }},
		{"bad direction", func(m *Movement) { m.Direction = "sideways" }},
		{"bad reference type", func(m *Movement) { m.ReferenceType = "invoice" }},
		{"nil product", func(m *Movement) { m.ProductID = id.Nil() }},
		{"nil reference", func(m *Movement) { m.ReferenceID = id.Nil() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{}
			svc := NewService(repo)
			m := validMovement()
			tt.mutate(m)

			err := svc.Record(context.Background(), m)

			require.Error(t, err)
			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperror.CodeValidation, appErr.Code)
			assert.Empty(t, repo.created)
		})
	}
}

func TestListNormalizesPaging(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	page, err := svc.List(context.Background(), Filter{})

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.Limit)
}
