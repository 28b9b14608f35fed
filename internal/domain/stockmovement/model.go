// Package stockmovement provides the append-only stock ledger.
// Rows are written as side effects of shipments and adjustments and
// are never updated or deleted.
package stockmovement

import (
	"context"

	"storeops/internal/core/apperror"
	"storeops/internal/core/entity"
	"storeops/internal/core/id"
	"storeops/internal/domain"
)

// Direction marks whether stock entered or left a store.
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// ReferenceType names the operation that produced a movement.
type ReferenceType string

const (
	RefShipment   ReferenceType = "shipment"
	RefAdjustment ReferenceType = "adjustment"
	RefReturn     ReferenceType = "return"
)

// Movement is one ledger row.
type Movement struct {
	entity.Base

	ProductID     id.ID         `db:"product_id" json:"productId"`
	StoreID       id.ID         `db:"store_id" json:"storeId"`
	Direction     Direction     `db:"direction" json:"direction"`
	Quantity      int           `db:"quantity" json:"quantity"`
	ReferenceType ReferenceType `db:"reference_type" json:"referenceType"`
	ReferenceID   id.ID         `db:"reference_id" json:"referenceId"`
	Notes         *string       `db:"notes" json:"notes,omitempty"`

	// Projected from joins, never stored
	ProductName *string `db:"product_name" json:"productName,omitempty"`
	ProductSKU  *string `db:"product_sku" json:"productSku,omitempty"`
	StoreName   *string `db:"store_name" json:"storeName,omitempty"`
	StoreCode   *string `db:"store_code" json:"storeCode,omitempty"`
}

// Validate implements entity.Validatable.
func (m *Movement) Validate(ctx context.Context) error {
	var errs []string
	if id.IsNil(m.ProductID) {
		errs = append(errs, "product is required")
	}
	if id.IsNil(m.StoreID) {
		errs = append(errs, "store is required")
	}
	if m.Direction != DirectionIn && m.Direction != DirectionOut {
		errs = append(errs, "direction must be in or out")
	}
	if m.Quantity < 1 {
		errs = append(errs, "quantity must be at least 1")
	}
	switch m.ReferenceType {
	case RefShipment, RefAdjustment, RefReturn:
	default:
		errs = append(errs, "reference type must be shipment, adjustment or return")
	}
	if id.IsNil(m.ReferenceID) {
		errs = append(errs, "reference is required")
	}
	if len(errs) > 0 {
		return apperror.NewValidation("invalid stock movement", errs...)
	}
	return nil
}

// Filter narrows movement list queries.
type Filter struct {
	domain.ListFilter

	ProductID     *id.ID
	StoreID       *id.ID
	Direction     Direction
	ReferenceType ReferenceType
}

// Repository defines Movement persistence.
type Repository interface {
	Create(ctx context.Context, m *Movement) error
	List(ctx context.Context, f Filter) (domain.ListResult[*Movement], error)
}
