package shipment

import (
	"context"
	"fmt"
	"time"

	"storeops/internal/core/apperror"
	"storeops/internal/core/id"
	"storeops/internal/domain"
	"storeops/internal/domain/stockmovement"
	"storeops/pkg/logger"
)

const defaultPageSize = 10

// StoreChecker verifies store existence.
type StoreChecker interface {
	Exists(ctx context.Context, storeID id.ID) (bool, error)
}

// ProductInventory verifies products and adjusts their stock counters.
type ProductInventory interface {
	Exists(ctx context.Context, productID id.ID) (bool, error)
	AdjustStock(ctx context.Context, productID id.ID, delta int) error
}

// MovementRecorder appends rows to the stock movement ledger.
type MovementRecorder interface {
	Record(ctx context.Context, m *stockmovement.Movement) error
}

// Service provides business logic for shipments. Multi-step mutations run
// as independent writes; a failure partway leaves earlier writes in place.
type Service struct {
	repo      Repository
	stores    StoreChecker
	products  ProductInventory
	movements MovementRecorder
}

// NewService creates a shipment service.
func NewService(repo Repository, stores StoreChecker, products ProductInventory, movements MovementRecorder) *Service {
	return &Service{repo: repo, stores: stores, products: products, movements: movements}
}

// Create validates the shipment, generates its number when absent,
// computes totals, stores it and records two ledger rows per item:
// an outbound movement at the source store and an inbound one at the
// destination. Ledger writes are best effort and never rolled back.
func (s *Service) Create(ctx context.Context, sh *Shipment) error {
	if err := sh.Validate(ctx); err != nil {
		return err
	}
	if sh.ExpectedDeliveryDate.Before(truncateDay(time.Now().UTC())) {
		return apperror.NewValidation("invalid shipment", "expected delivery date cannot be in the past")
	}

	for _, storeID := range []id.ID{sh.FromStoreID, sh.ToStoreID} {
		ok, err := s.stores.Exists(ctx, storeID)
		if err != nil {
			return fmt.Errorf("check store: %w", err)
		}
		if !ok {
			return apperror.NewValidation("invalid shipment", fmt.Sprintf("store not found: %s", storeID))
		}
	}
	for _, it := range sh.Items {
		ok, err := s.products.Exists(ctx, it.ProductID)
		if err != nil {
			return fmt.Errorf("check product: %w", err)
		}
		if !ok {
			return apperror.NewValidation("invalid shipment", fmt.Sprintf("product not found: %s", it.ProductID))
		}
	}

	if sh.Number == "" {
		last, err := s.repo.LastNumber(ctx)
		if err != nil {
			return fmt.Errorf("read last shipment number: %w", err)
		}
		sh.Number = NextNumber(last)
	}

	sh.ComputeTotals()
	if err := s.repo.Create(ctx, sh); err != nil {
		return fmt.Errorf("create shipment: %w", err)
	}

	for _, it := range sh.Items {
		out := outNote(sh.Number)
		if err := s.movements.Record(ctx, &stockmovement.Movement{
			ProductID:     it.ProductID,
			StoreID:       sh.FromStoreID,
			Direction:     stockmovement.DirectionOut,
			Quantity:      it.Quantity,
			ReferenceType: stockmovement.RefShipment,
			ReferenceID:   sh.ID,
			Notes:         &out,
		}); err != nil {
			logger.Error(ctx, "record outbound movement failed",
				"shipment", sh.Number, "product_id", it.ProductID, "error", err)
		}
		in := inNote(sh.Number)
		if err := s.movements.Record(ctx, &stockmovement.Movement{
			ProductID:     it.ProductID,
			StoreID:       sh.ToStoreID,
			Direction:     stockmovement.DirectionIn,
			Quantity:      it.Quantity,
			ReferenceType: stockmovement.RefShipment,
			ReferenceID:   sh.ID,
			Notes:         &in,
		}); err != nil {
			logger.Error(ctx, "record inbound movement failed",
				"shipment", sh.Number, "product_id", it.ProductID, "error", err)
		}
	}
	return nil
}

// GetByID returns one shipment with items and tracking history.
func (s *Service) GetByID(ctx context.Context, shipmentID id.ID) (*Shipment, error) {
	return s.repo.GetByID(ctx, shipmentID)
}

// Update validates and stores changes to an existing shipment,
// replacing its item lines.
func (s *Service) Update(ctx context.Context, sh *Shipment, updatedBy *id.ID) error {
	if err := sh.Validate(ctx); err != nil {
		return err
	}
	sh.UpdatedBy = updatedBy
	sh.Touch()
	if err := s.repo.Update(ctx, sh); err != nil {
		return fmt.Errorf("update shipment: %w", err)
	}
	return nil
}

// Delete restores the shipped quantities back onto the products, then
// removes the shipment. Ledger rows are kept.
func (s *Service) Delete(ctx context.Context, shipmentID id.ID) error {
	sh, err := s.repo.GetByID(ctx, shipmentID)
	if err != nil {
		return err
	}
	for _, it := range sh.Items {
		if err := s.products.AdjustStock(ctx, it.ProductID, it.Quantity); err != nil {
			logger.Error(ctx, "restore stock failed",
				"shipment", sh.Number, "product_id", it.ProductID, "error", err)
		}
	}
	return s.repo.Delete(ctx, shipmentID)
}

// UpdateStatus moves the shipment to the given status. Any status may
// follow any other; shipped stamps the ship date, delivered the
// delivery date, and every change appends one tracking entry.
func (s *Service) UpdateStatus(ctx context.Context, shipmentID id.ID, status Status, location, notes string) (*Shipment, error) {
	if !ValidStatus(status) {
		return nil, apperror.NewValidation("invalid shipment status", "status must be pending, preparing, shipped, delivered or cancelled")
	}
	sh, err := s.repo.GetByID(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	sh.ApplyStatus(status, location, notes, time.Now().UTC())
	if err := s.repo.Update(ctx, sh); err != nil {
		return nil, fmt.Errorf("update shipment status: %w", err)
	}
	return sh, nil
}

// List returns one page of shipments.
func (s *Service) List(ctx context.Context, f Filter) (domain.ListResult[*Shipment], error) {
	f.Normalize(defaultPageSize)
	return s.repo.List(ctx, f)
}

// ListOverdue returns shipments past their expected delivery date.
func (s *Service) ListOverdue(ctx context.Context) ([]*Shipment, error) {
	return s.repo.ListOverdue(ctx, time.Now().UTC())
}

// Stats returns the status breakdown and revenue totals.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	return s.repo.Stats(ctx)
}

func outNote(number string) string {
	return fmt.Sprintf("Outbound for shipment %s", number)
}

func inNote(number string) string {
	return fmt.Sprintf("Inbound for shipment %s", number)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
