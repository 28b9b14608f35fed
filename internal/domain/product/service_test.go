package product

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storeops/internal/core/apperror"
	"storeops/internal/core/id"
	"storeops/internal/domain"
)

type mockRepo struct {
	products      map[id.ID]*Product
	takenBarcodes map[string]bool
	viewBumps     int
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		products:      make(map[id.ID]*Product),
		takenBarcodes: make(map[string]bool),
	}
}

func (m *mockRepo) Create(ctx context.Context, p *Product) error {
	m.products[p.ID] = p
	return nil
}

func (m *mockRepo) GetByID(ctx context.Context, productID id.ID) (*Product, error) {
	p, ok := m.products[productID]
	if !ok {
		return nil, apperror.NewNotFound("product")
	}
	return p, nil
}

func (m *mockRepo) Update(ctx context.Context, p *Product) error {
	m.products[p.ID] = p
	return nil
}

func (m *mockRepo) Delete(ctx context.Context, productID id.ID) error {
	delete(m.products, productID)
	return nil
}

func (m *mockRepo) List(ctx context.Context, f Filter) (domain.ListResult[*Product], error) {
	return domain.ListResult[*Product]{Page: f.Page, Limit: f.Limit}, nil
}

func (m *mockRepo) ListLowStock(ctx context.Context) ([]*Product, error) {
	var out []*Product
	for _, p := range m.products {
		if p.IsLowStock() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockRepo) ListAll(ctx context.Context) ([]*Product, error) {
	out := make([]*Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockRepo) Exists(ctx context.Context, productID id.ID) (bool, error) {
	_, ok := m.products[productID]
	return ok, nil
}

func (m *mockRepo) ExistsByBarcode(ctx context.Context, barcode string) (bool, error) {
	return m.takenBarcodes[barcode], nil
}

func (m *mockRepo) IncrementViews(ctx context.Context, productID id.ID) error {
	m.viewBumps++
	return nil
}

func (m *mockRepo) AdjustStock(ctx context.Context, productID id.ID, delta int) error {
	p, ok := m.products[productID]
	if !ok {
		return apperror.NewNotFound("product")
	}
	p.StockQuantity += delta
	if p.StockQuantity < 0 {
		p.StockQuantity = 0
	}
	return nil
}

func seedProduct(t *testing.T, repo *mockRepo) *Product {
	t.Helper()
	p := New("Mineral Water 0.5L", "sku-ww-001")
	p.Brand = "Spring"
	p.SellingPrice = decimal.NewFromInt(12)
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestProductValidate_UppercasesSKU(t *testing.T) {
	p := New("Cola", "abc-123")
	require.NoError(t, p.Validate(context.Background()))
	assert.Equal(t, "ABC-123", p.SKU)
}

func TestProductValidate_Errors(t *testing.T) {
	p := New("", "")
	p.PurchasePrice = decimal.NewFromInt(-1)
	err := p.Validate(context.Background())
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
	assert.Contains(t, appErr.FieldErrors, "name is required")
	assert.Contains(t, appErr.FieldErrors, "sku is required")
	assert.Contains(t, appErr.FieldErrors, "purchase price cannot be negative")
}

func TestGetByID_BumpsViews(t *testing.T) {
	repo := newMockRepo()
	p := seedProduct(t, repo)
	svc := NewService(repo)

	got, err := svc.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Views)
	assert.Equal(t, 1, repo.viewBumps)
}

func TestUpdateStock(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		op       StockOperation
		quantity int
		want     int
		wantErr  bool
	}{
		{"add", 10, StockAdd, 5, 15, false},
		{"subtract", 10, StockSubtract, 4, 6, false},
		{"subtract clamps at zero", 3, StockSubtract, 10, 0, false},
		{"set", 10, StockSet, 42, 42, false},
		{"unknown operation", 10, "drop", 1, 0, true},
		{"negative quantity", 10, StockAdd, -1, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockRepo()
			p := seedProduct(t, repo)
			p.StockQuantity = tt.start
			svc := NewService(repo)

			got, err := svc.UpdateStock(context.Background(), p.ID, tt.op, tt.quantity)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.StockQuantity)
		})
	}
}

func TestAssignBarcode(t *testing.T) {
	repo := newMockRepo()
	p := seedProduct(t, repo)
	svc := NewService(repo)

	got, err := svc.AssignBarcode(context.Background(), p.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Barcode)
	assert.Len(t, *got.Barcode, 13)
	assert.Equal(t, "869", (*got.Barcode)[:3])
}

func TestIsLowStock(t *testing.T) {
	p := New("Batteries", "BAT-1")
	p.StockQuantity = 5
	p.MinStockLevel = 5
	assert.True(t, p.IsLowStock())
	p.StockQuantity = 6
	assert.False(t, p.IsLowStock())
}
