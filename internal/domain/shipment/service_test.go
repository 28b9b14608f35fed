package shipment

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storeops/internal/core/apperror"
	"storeops/internal/core/id"
	"storeops/internal/domain"
	"storeops/internal/domain/stockmovement"
)

type mockRepo struct {
	shipments  map[id.ID]*Shipment
	lastNumber string
}

func newMockRepo() *mockRepo {
	return &mockRepo{shipments: make(map[id.ID]*Shipment)}
}

func (m *mockRepo) Create(ctx context.Context, sh *Shipment) error {
	m.shipments[sh.ID] = sh
	if sh.Number > m.lastNumber {
		m.lastNumber = sh.Number
	}
	return nil
}

func (m *mockRepo) GetByID(ctx context.Context, shipmentID id.ID) (*Shipment, error) {
	sh, ok := m.shipments[shipmentID]
	if !ok {
		return nil, apperror.NewNotFound("shipment")
	}
	return sh, nil
}

func (m *mockRepo) Update(ctx context.Context, sh *Shipment) error {
	m.shipments[sh.ID] = sh
	return nil
}

func (m *mockRepo) Delete(ctx context.Context, shipmentID id.ID) error {
	delete(m.shipments, shipmentID)
	return nil
}

func (m *mockRepo) List(ctx context.Context, f Filter) (domain.ListResult[*Shipment], error) {
	return domain.ListResult[*Shipment]{Page: f.Page, Limit: f.Limit}, nil
}

func (m *mockRepo) ListOverdue(ctx context.Context, now time.Time) ([]*Shipment, error) {
	var out []*Shipment
	for _, sh := range m.shipments {
		if sh.IsOverdue(now) {
			out = append(out, sh)
		}
	}
	return out, nil
}

func (m *mockRepo) LastNumber(ctx context.Context) (string, error) {
	return m.lastNumber, nil
}

func (m *mockRepo) Stats(ctx context.Context) (Stats, error) {
	return Stats{TotalShipments: int64(len(m.shipments))}, nil
}

type mockStores struct{ known map[id.ID]bool }

func (m *mockStores) Exists(ctx context.Context, storeID id.ID) (bool, error) {
	return m.known[storeID], nil
}

type mockProducts struct {
	known       map[id.ID]bool
	adjustments map[id.ID]int
}

func (m *mockProducts) Exists(ctx context.Context, productID id.ID) (bool, error) {
	return m.known[productID], nil
}

func (m *mockProducts) AdjustStock(ctx context.Context, productID id.ID, delta int) error {
	if m.adjustments == nil {
		m.adjustments = make(map[id.ID]int)
	}
	m.adjustments[productID] += delta
	return nil
}

type mockMovements struct{ recorded []*stockmovement.Movement }

func (m *mockMovements) Record(ctx context.Context, mv *stockmovement.Movement) error {
	m.recorded = append(m.recorded, mv)
	return nil
}

type fixture struct {
	repo      *mockRepo
	stores    *mockStores
	products  *mockProducts
	movements *mockMovements
	svc       *Service

	fromStore id.ID
	toStore   id.ID
	productA  id.ID
	productB  id.ID
}

func newFixture() *fixture {
	f := &fixture{
		repo:      newMockRepo(),
		stores:    &mockStores{known: make(map[id.ID]bool)},
		products:  &mockProducts{known: make(map[id.ID]bool)},
		movements: &mockMovements{},
		fromStore: id.New(),
		toStore:   id.New(),
		productA:  id.New(),
		productB:  id.New(),
	}
	f.stores.known[f.fromStore] = true
	f.stores.known[f.toStore] = true
	f.products.known[f.productA] = true
	f.products.known[f.productB] = true
	f.svc = NewService(f.repo, f.stores, f.products, f.movements)
	return f
}

func (f *fixture) validShipment() *Shipment {
	price := decimal.NewFromInt(100)
	sh := New(f.fromStore, f.toStore)
	sh.ExpectedDeliveryDate = time.Now().UTC().Add(72 * time.Hour)
	sh.Items = []Item{
		{ProductID: f.productA, Quantity: 3, TotalPrice: &price},
		{ProductID: f.productB, Quantity: 2},
	}
	return sh
}

func TestCreate_RecordsTwoMovementsPerItem(t *testing.T) {
	f := newFixture()
	sh := f.validShipment()
	require.NoError(t, f.svc.Create(context.Background(), sh))

	require.Len(t, f.movements.recorded, 4)
	byDir := map[stockmovement.Direction]int{}
	for _, mv := range f.movements.recorded {
		byDir[mv.Direction]++
		assert.Equal(t, stockmovement.RefShipment, mv.ReferenceType)
		assert.Equal(t, sh.ID, mv.ReferenceID)
		switch mv.Direction {
		case stockmovement.DirectionOut:
			assert.Equal(t, f.fromStore, mv.StoreID)
		case stockmovement.DirectionIn:
			assert.Equal(t, f.toStore, mv.StoreID)
		}
	}
	assert.Equal(t, 2, byDir[stockmovement.DirectionOut])
	assert.Equal(t, 2, byDir[stockmovement.DirectionIn])
}

func TestCreate_GeneratesSequentialNumbers(t *testing.T) {
	f := newFixture()

	first := f.validShipment()
	require.NoError(t, f.svc.Create(context.Background(), first))
	assert.Equal(t, "SH00000001", first.Number)

	second := f.validShipment()
	require.NoError(t, f.svc.Create(context.Background(), second))
	assert.Equal(t, "SH00000002", second.Number)
}

func TestCreate_ComputesTotals(t *testing.T) {
	f := newFixture()
	sh := f.validShipment()
	sh.ShippingCost = decimal.NewFromInt(25)
	sh.TaxAmount = decimal.NewFromInt(18)
	require.NoError(t, f.svc.Create(context.Background(), sh))

	assert.True(t, sh.Subtotal.Equal(decimal.NewFromInt(100)))
	assert.True(t, sh.TotalAmount.Equal(decimal.NewFromInt(143)))
}

func TestCreate_SameStoreRejected(t *testing.T) {
	f := newFixture()
	sh := f.validShipment()
	sh.ToStoreID = sh.FromStoreID
	err := f.svc.Create(context.Background(), sh)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestCreate_UnknownStoreRejected(t *testing.T) {
	f := newFixture()
	sh := f.validShipment()
	sh.ToStoreID = id.New()
	err := f.svc.Create(context.Background(), sh)
	require.Error(t, err)
	assert.Empty(t, f.movements.recorded)
}

func TestCreate_UnknownProductRejected(t *testing.T) {
	f := newFixture()
	sh := f.validShipment()
	sh.Items[0].ProductID = id.New()
	err := f.svc.Create(context.Background(), sh)
	require.Error(t, err)
	assert.Empty(t, f.repo.shipments)
}

func TestCreate_PastExpectedDateRejected(t *testing.T) {
	f := newFixture()
	sh := f.validShipment()
	sh.ExpectedDeliveryDate = time.Now().UTC().Add(-48 * time.Hour)
	err := f.svc.Create(context.Background(), sh)
	require.Error(t, err)
}

func TestUpdateStatus(t *testing.T) {
	f := newFixture()
	sh := f.validShipment()
	require.NoError(t, f.svc.Create(context.Background(), sh))

	got, err := f.svc.UpdateStatus(context.Background(), sh.ID, StatusShipped, "Ankara hub", "")
	require.NoError(t, err)
	assert.Equal(t, StatusShipped, got.Status)
	require.NotNil(t, got.ShipDate)
	assert.Nil(t, got.DeliveryDate)
	require.Len(t, got.TrackingHistory, 1)
	assert.Equal(t, "Ankara hub", got.TrackingHistory[0].Location)

	got, err = f.svc.UpdateStatus(context.Background(), sh.ID, StatusDelivered, "", "signed by manager")
	require.NoError(t, err)
	require.NotNil(t, got.DeliveryDate)
	assert.Len(t, got.TrackingHistory, 2)

	// any state may follow any other
	got, err = f.svc.UpdateStatus(context.Background(), sh.ID, StatusPending, "", "")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, got.Status)
	assert.Len(t, got.TrackingHistory, 3)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	f := newFixture()
	sh := f.validShipment()
	require.NoError(t, f.svc.Create(context.Background(), sh))

	_, err := f.svc.UpdateStatus(context.Background(), sh.ID, "teleported", "", "")
	require.Error(t, err)
}

func TestDelete_RestoresStock(t *testing.T) {
	f := newFixture()
	sh := f.validShipment()
	require.NoError(t, f.svc.Create(context.Background(), sh))

	require.NoError(t, f.svc.Delete(context.Background(), sh.ID))
	assert.Equal(t, 3, f.products.adjustments[f.productA])
	assert.Equal(t, 2, f.products.adjustments[f.productB])
	assert.Empty(t, f.repo.shipments)
}

func TestIsOverdue(t *testing.T) {
	now := time.Now().UTC()
	sh := &Shipment{Status: StatusShipped, ExpectedDeliveryDate: now.Add(-time.Hour)}
	assert.True(t, sh.IsOverdue(now))

	sh.Status = StatusDelivered
	assert.False(t, sh.IsOverdue(now))

	sh.Status = StatusCancelled
	assert.False(t, sh.IsOverdue(now))

	sh.Status = StatusPending
	sh.ExpectedDeliveryDate = now.Add(time.Hour)
	assert.False(t, sh.IsOverdue(now))
}

func TestTotalItems(t *testing.T) {
	sh := &Shipment{Items: []Item{{Quantity: 3}, {Quantity: 4}}}
	assert.Equal(t, 7, sh.TotalItems())
}
