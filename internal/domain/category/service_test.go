package category

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storeops/internal/core/apperror"
	"storeops/internal/core/id"
	"storeops/internal/domain"
)

type mockRepo struct {
	categories   map[id.ID]*Category
	productCount int64
	deleted      []id.ID
}

func newMockRepo() *mockRepo {
	return &mockRepo{categories: make(map[id.ID]*Category)}
}

func (m *mockRepo) Create(ctx context.Context, c *Category) error {
	m.categories[c.ID] = c
	return nil
}

func (m *mockRepo) GetByID(ctx context.Context, categoryID id.ID) (*Category, error) {
	c, ok := m.categories[categoryID]
	if !ok {
		return nil, apperror.NewNotFound("category")
	}
	return c, nil
}

func (m *mockRepo) Update(ctx context.Context, c *Category) error {
	m.categories[c.ID] = c
	return nil
}

func (m *mockRepo) Delete(ctx context.Context, categoryID id.ID) error {
	delete(m.categories, categoryID)
	m.deleted = append(m.deleted, categoryID)
	return nil
}

func (m *mockRepo) List(ctx context.Context, f Filter) (domain.ListResult[*Category], error) {
	items := make([]*Category, 0, len(m.categories))
	for _, c := range m.categories {
		items = append(items, c)
	}
	return domain.ListResult[*Category]{Items: items, Total: int64(len(items)), Page: f.Page, Limit: f.Limit}, nil
}

func (m *mockRepo) CountProducts(ctx context.Context, categoryID id.ID) (int64, error) {
	return m.productCount, nil
}

func TestCategoryValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Category)
		wantErr bool
	}{
		{"valid", func(c *Category) {}, false},
		{"empty name", func(c *Category) { c.Name = "  " }, true},
		{"name too long", func(c *Category) { c.Name = strings.Repeat("x", 51) }, true},
		{"description too long", func(c *Category) {
			d := strings.Repeat("y", 201)
			c.Description = &d
		}, true},
		{"bad status", func(c *Category) { c.Status = "archived" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New("Beverages")
			tt.mutate(c)
			err := c.Validate(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				appErr, ok := apperror.AsAppError(err)
				require.True(t, ok)
				assert.Equal(t, apperror.CodeValidation, appErr.Code)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCategoryValidate_DefaultsStatus(t *testing.T) {
	c := New("Snacks")
	c.Status = ""
	require.NoError(t, c.Validate(context.Background()))
	assert.Equal(t, StatusActive, c.Status)
}

func TestServiceDelete_RefusedWithProducts(t *testing.T) {
	repo := newMockRepo()
	repo.productCount = 3
	svc := NewService(repo)

	c := New("Dairy")
	require.NoError(t, svc.Create(context.Background(), c))

	err := svc.Delete(context.Background(), c.ID)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDependentRecords, appErr.Code)
	assert.Empty(t, repo.deleted)
}

func TestServiceDelete_EmptyCategory(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	c := New("Dairy")
	require.NoError(t, svc.Create(context.Background(), c))

	require.NoError(t, svc.Delete(context.Background(), c.ID))
	assert.Equal(t, []id.ID{c.ID}, repo.deleted)
}

func TestServiceDelete_NotFound(t *testing.T) {
	svc := NewService(newMockRepo())
	err := svc.Delete(context.Background(), id.New())
	assert.True(t, apperror.IsNotFound(err))
}
