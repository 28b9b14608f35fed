// Package shipment provides inter-store shipment documents.
package shipment

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"storeops/internal/core/apperror"
	"storeops/internal/core/entity"
	"storeops/internal/core/id"
)

// Status is the shipment lifecycle state. Any state may move to any
// other state; there is no transition table.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// ValidStatus reports whether s is a known shipment status.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusPreparing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Method is how the shipment travels.
type Method string

const (
	MethodInternal Method = "internal"
	MethodExternal Method = "external"
	MethodPickup   Method = "pickup"
)

const maxNotesLen = 500

// Item is one product line on a shipment.
type Item struct {
	ProductID  id.ID            `db:"product_id" json:"productId"`
	Quantity   int              `db:"quantity" json:"quantity"`
	UnitPrice  *decimal.Decimal `db:"unit_price" json:"unitPrice,omitempty"`
	TotalPrice *decimal.Decimal `db:"total_price" json:"totalPrice,omitempty"`

	// Projected from the joined product row, never stored
	ProductName *string `db:"product_name" json:"productName,omitempty"`
	ProductSKU  *string `db:"product_sku" json:"productSku,omitempty"`
}

// TrackingEntry is one append-only status history record.
type TrackingEntry struct {
	Status    Status    `json:"status"`
	Location  string    `json:"location,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// StoreRef is a shallow projection of a related store.
type StoreRef struct {
	Name string `json:"name,omitempty"`
	Code string `json:"code,omitempty"`
}

// Shipment moves products from one store to another.
type Shipment struct {
	entity.Base

	// Number is unique, "SH" plus eight digits, generated when omitted
	Number      string `db:"shipment_number" json:"shipmentNumber"`
	OrderNumber string `db:"order_number" json:"orderNumber,omitempty"`

	FromStoreID id.ID `db:"from_store_id" json:"fromStoreId"`
	ToStoreID   id.ID `db:"to_store_id" json:"toStoreId"`

	Method         Method `db:"shipping_method" json:"shippingMethod,omitempty"`
	TrackingNumber string `db:"tracking_number" json:"trackingNumber,omitempty"`

	Items []Item `db:"-" json:"items"`

	Status Status `db:"status" json:"status"`

	OrderDate            time.Time  `db:"order_date" json:"orderDate"`
	ShipDate             *time.Time `db:"ship_date" json:"shipDate,omitempty"`
	DeliveryDate         *time.Time `db:"delivery_date" json:"deliveryDate,omitempty"`
	ExpectedDeliveryDate time.Time  `db:"expected_delivery_date" json:"expectedDeliveryDate"`

	Subtotal     decimal.Decimal `db:"subtotal" json:"subtotal"`
	ShippingCost decimal.Decimal `db:"shipping_cost" json:"shippingCost"`
	TaxAmount    decimal.Decimal `db:"tax_amount" json:"taxAmount"`
	TotalAmount  decimal.Decimal `db:"total_amount" json:"totalAmount"`

	Notes *string `db:"notes" json:"notes,omitempty"`

	TrackingHistory []TrackingEntry `db:"tracking_history" json:"trackingHistory"`

	CreatedBy *id.ID `db:"created_by" json:"createdBy,omitempty"`
	UpdatedBy *id.ID `db:"updated_by" json:"updatedBy,omitempty"`

	// Projected store names, never stored
	FromStore *StoreRef `db:"-" json:"fromStore,omitempty"`
	ToStore   *StoreRef `db:"-" json:"toStore,omitempty"`
}

// New creates a Shipment with defaults applied.
func New(fromStoreID, toStoreID id.ID) *Shipment {
	return &Shipment{
		Base:        entity.NewBase(),
		FromStoreID: fromStoreID,
		ToStoreID:   toStoreID,
		Status:      StatusPending,
		OrderDate:   time.Now().UTC(),
	}
}

// IsOverdue reports whether the expected delivery date has passed while
// the shipment is neither delivered nor cancelled.
func (s *Shipment) IsOverdue(now time.Time) bool {
	if s.Status == StatusDelivered || s.Status == StatusCancelled {
		return false
	}
	return s.ExpectedDeliveryDate.Before(now)
}

// TotalItems sums the quantities of all lines.
func (s *Shipment) TotalItems() int {
	total := 0
	for _, it := range s.Items {
		total += it.Quantity
	}
	return total
}

// ApplyStatus sets the new status, stamps ship/delivery dates and appends
// one tracking history entry with the server time.
func (s *Shipment) ApplyStatus(status Status, location, notes string, now time.Time) {
	s.Status = status
	switch status {
	case StatusShipped:
		t := now
		s.ShipDate = &t
	case StatusDelivered:
		t := now
		s.DeliveryDate = &t
	}
	s.TrackingHistory = append(s.TrackingHistory, TrackingEntry{
		Status:    status,
		Location:  location,
		Notes:     notes,
		Timestamp: now,
	})
	s.UpdatedAt = now
}

// ComputeTotals recalculates subtotal from item total prices and the
// grand total as subtotal + shipping + tax.
func (s *Shipment) ComputeTotals() {
	subtotal := decimal.Zero
	for _, it := range s.Items {
		if it.TotalPrice != nil {
			subtotal = subtotal.Add(*it.TotalPrice)
		}
	}
	s.Subtotal = subtotal
	s.TotalAmount = subtotal.Add(s.ShippingCost).Add(s.TaxAmount)
}

// Validate implements entity.Validatable.
func (s *Shipment) Validate(ctx context.Context) error {
	var errs []string
	s.Number = strings.ToUpper(strings.TrimSpace(s.Number))

	if id.IsNil(s.FromStoreID) {
		errs = append(errs, "from store is required")
	}
	if id.IsNil(s.ToStoreID) {
		errs = append(errs, "to store is required")
	}
	if !id.IsNil(s.FromStoreID) && s.FromStoreID == s.ToStoreID {
		errs = append(errs, "from and to store cannot be the same")
	}
	if s.Method != "" && s.Method != MethodInternal && s.Method != MethodExternal && s.Method != MethodPickup {
		errs = append(errs, "shipping method must be internal, external or pickup")
	}
	if len(s.Items) == 0 {
		errs = append(errs, "at least one item is required")
	}
	for _, it := range s.Items {
		if id.IsNil(it.ProductID) {
			errs = append(errs, "item product is required")
		}
		if it.Quantity < 1 {
			errs = append(errs, "item quantity must be at least 1")
		}
		if it.UnitPrice != nil && it.UnitPrice.IsNegative() {
			errs = append(errs, "item unit price cannot be negative")
		}
		if it.TotalPrice != nil && it.TotalPrice.IsNegative() {
			errs = append(errs, "item total price cannot be negative")
		}
	}
	if s.Status == "" {
		s.Status = StatusPending
	} else if !ValidStatus(s.Status) {
		errs = append(errs, "invalid status")
	}
	if s.ExpectedDeliveryDate.IsZero() {
		errs = append(errs, "expected delivery date is required")
	}
	if s.ShippingCost.IsNegative() {
		errs = append(errs, "shipping cost cannot be negative")
	}
	if s.TaxAmount.IsNegative() {
		errs = append(errs, "tax amount cannot be negative")
	}
	if s.Notes != nil && len([]rune(*s.Notes)) > maxNotesLen {
		errs = append(errs, "notes must be at most 500 characters")
	}
	if len(errs) > 0 {
		return apperror.NewValidation("invalid shipment", errs...)
	}
	return nil
}
