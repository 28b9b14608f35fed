package shipment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"storeops/internal/core/id"
	"storeops/internal/domain"
)

// Filter narrows shipment list queries.
type Filter struct {
	domain.ListFilter

	Status      Status
	FromStoreID *id.ID
	ToStoreID   *id.ID
}

// StatusCount is one row of the status breakdown.
type StatusCount struct {
	Status      Status          `db:"status" json:"status"`
	Count       int64           `db:"count" json:"count"`
	TotalAmount decimal.Decimal `db:"total_amount" json:"totalAmount"`
}

// Stats summarizes all shipments.
type Stats struct {
	StatusBreakdown []StatusCount   `json:"statusBreakdown"`
	TotalShipments  int64           `json:"totalShipments"`
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
}

// Repository defines Shipment persistence. Create and Update write the
// document together with its item lines.
type Repository interface {
	Create(ctx context.Context, sh *Shipment) error
	GetByID(ctx context.Context, shipmentID id.ID) (*Shipment, error)
	Update(ctx context.Context, sh *Shipment) error
	Delete(ctx context.Context, shipmentID id.ID) error
	List(ctx context.Context, f Filter) (domain.ListResult[*Shipment], error)

	// ListOverdue returns undelivered, uncancelled shipments whose
	// expected delivery date is before now, soonest first.
	ListOverdue(ctx context.Context, now time.Time) ([]*Shipment, error)

	// LastNumber returns the lexicographically greatest stored number
	// matching SH\d+, or "" when none exists.
	LastNumber(ctx context.Context) (string, error)

	// Stats aggregates counts and amounts by status plus delivered revenue.
	Stats(ctx context.Context) (Stats, error)
}
