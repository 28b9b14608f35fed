// Package product provides the product catalog.
package product

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"storeops/internal/core/apperror"
	"storeops/internal/core/entity"
	"storeops/internal/core/id"
)

// Status defines the lifecycle state of a product.
type Status string

const (
	StatusActive       Status = "active"
	StatusInactive     Status = "inactive"
	StatusDiscontinued Status = "discontinued"
)

// Unit is the sales unit of measure.
type Unit string

const (
	UnitPiece  Unit = "adet"
	UnitKilo   Unit = "kg"
	UnitMetre  Unit = "metre"
	UnitLitre  Unit = "litre"
	UnitBox    Unit = "kutu"
	UnitPacket Unit = "paket"
)

const (
	maxNameLen        = 100
	maxDescriptionLen = 500
)

// Product is a sellable item tracked in stock.
type Product struct {
	entity.Base

	Name        string  `db:"name" json:"name"`
	Description string  `db:"description" json:"description"`
	SKU         string  `db:"sku" json:"sku"`
	Barcode     *string `db:"barcode" json:"barcode,omitempty"`
	CategoryID  *id.ID  `db:"category_id" json:"categoryId,omitempty"`
	Brand       string  `db:"brand" json:"brand"`

	PurchasePrice  decimal.Decimal `db:"purchase_price" json:"purchasePrice"`
	SellingPrice   decimal.Decimal `db:"selling_price" json:"sellingPrice"`
	WholesalePrice decimal.Decimal `db:"wholesale_price" json:"wholesalePrice"`

	StockQuantity int `db:"stock_quantity" json:"stockQuantity"`
	MinStockLevel int `db:"min_stock_level" json:"minStockLevel"`

	Unit   Unit   `db:"unit" json:"unit"`
	Status Status `db:"status" json:"status"`

	// Views counts single-product fetches
	Views int `db:"views" json:"views"`

	// CategoryName is projected from the joined category row, never stored
	CategoryName *string `db:"category_name" json:"categoryName,omitempty"`
}

// New creates a Product with defaults applied.
func New(name, sku string) *Product {
	return &Product{
		Base:   entity.NewBase(),
		Name:   name,
		SKU:    strings.ToUpper(strings.TrimSpace(sku)),
		Unit:   UnitPiece,
		Status: StatusActive,
	}
}

// IsLowStock reports whether stock is at or below the minimum level.
func (p *Product) IsLowStock() bool {
	return p.StockQuantity <= p.MinStockLevel
}

// ProfitMargin returns selling price minus purchase price.
func (p *Product) ProfitMargin() decimal.Decimal {
	return p.SellingPrice.Sub(p.PurchasePrice)
}

// Validate implements entity.Validatable.
func (p *Product) Validate(ctx context.Context) error {
	var errs []string
	p.Name = strings.TrimSpace(p.Name)
	p.SKU = strings.ToUpper(strings.TrimSpace(p.SKU))

	if p.Name == "" {
		errs = append(errs, "name is required")
	} else if len([]rune(p.Name)) > maxNameLen {
		errs = append(errs, "name must be at most 100 characters")
	}
	if len([]rune(p.Description)) > maxDescriptionLen {
		errs = append(errs, "description must be at most 500 characters")
	}
	if p.SKU == "" {
		errs = append(errs, "sku is required")
	}
	if p.PurchasePrice.IsNegative() {
		errs = append(errs, "purchase price cannot be negative")
	}
	if p.SellingPrice.IsNegative() {
		errs = append(errs, "selling price cannot be negative")
	}
	if p.WholesalePrice.IsNegative() {
		errs = append(errs, "wholesale price cannot be negative")
	}
	if p.StockQuantity < 0 {
		errs = append(errs, "stock quantity cannot be negative")
	}
	if p.MinStockLevel < 0 {
		errs = append(errs, "minimum stock level cannot be negative")
	}
	if p.Unit == "" {
		p.Unit = UnitPiece
	} else if !validUnit(p.Unit) {
		errs = append(errs, "invalid unit")
	}
	if p.Status == "" {
		p.Status = StatusActive
	} else if !validStatus(p.Status) {
		errs = append(errs, "invalid status")
	}
	if len(errs) > 0 {
		return apperror.NewValidation("invalid product", errs...)
	}
	return nil
}

func validUnit(u Unit) bool {
	switch u {
	case UnitPiece, UnitKilo, UnitMetre, UnitLitre, UnitBox, UnitPacket:
		return true
	}
	return false
}

func validStatus(s Status) bool {
	switch s {
	case StatusActive, StatusInactive, StatusDiscontinued:
		return true
	}
	return false
}
