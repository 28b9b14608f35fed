package dto

import (
	"github.com/shopspring/decimal"

	"storeops/internal/core/id"
	"storeops/internal/domain/product"
)

// ProductListQuery narrows product lists.
type ProductListQuery struct {
	ListQuery

	Category string `form:"category" binding:"omitempty,uuid"`
	Status   string `form:"status" binding:"omitempty,oneof=active inactive discontinued"`
	Brand    string `form:"brand"`
}

// Filter converts the query to a domain filter.
func (q ProductListQuery) Filter() (product.Filter, error) {
	f := product.Filter{
		ListFilter: q.ListQuery.Filter(),
		Status:     product.Status(q.Status),
		Brand:      q.Brand,
	}
	if q.Category != "" {
		categoryID, err := id.Parse(q.Category)
		if err != nil {
			return f, err
		}
		f.CategoryID = &categoryID
	}
	return f, nil
}

// CreateProductRequest is the request body for creating a product.
type CreateProductRequest struct {
	Name           string           `json:"name" binding:"required"`
	Description    string           `json:"description"`
	SKU            string           `json:"sku" binding:"required"`
	Barcode        *string          `json:"barcode"`
	CategoryID     *string          `json:"categoryId" binding:"omitempty,uuid"`
	Brand          string           `json:"brand"`
	PurchasePrice  decimal.Decimal  `json:"purchasePrice"`
	SellingPrice   decimal.Decimal  `json:"sellingPrice"`
	WholesalePrice *decimal.Decimal `json:"wholesalePrice"`
	StockQuantity  int              `json:"stockQuantity"`
	MinStockLevel  int              `json:"minStockLevel"`
	Unit           string           `json:"unit" binding:"omitempty,oneof=adet kg metre litre kutu paket"`
	Status         string           `json:"status" binding:"omitempty,oneof=active inactive discontinued"`
}

// ToEntity converts the request to a domain entity.
func (r *CreateProductRequest) ToEntity() (*product.Product, error) {
	p := product.New(r.Name, r.SKU)
	p.Description = r.Description
	p.Barcode = r.Barcode
	p.Brand = r.Brand
	p.PurchasePrice = r.PurchasePrice
	p.SellingPrice = r.SellingPrice
	if r.WholesalePrice != nil {
		p.WholesalePrice = *r.WholesalePrice
	}
	p.StockQuantity = r.StockQuantity
	p.MinStockLevel = r.MinStockLevel
	if r.Unit != "" {
		p.Unit = product.Unit(r.Unit)
	}
	if r.Status != "" {
		p.Status = product.Status(r.Status)
	}
	if r.CategoryID != nil && *r.CategoryID != "" {
		categoryID, err := id.Parse(*r.CategoryID)
		if err != nil {
			return nil, err
		}
		p.CategoryID = &categoryID
	}
	return p, nil
}

// UpdateProductRequest is the request body for updating a product.
// Only provided fields are changed.
type UpdateProductRequest struct {
	Name           *string          `json:"name"`
	Description    *string          `json:"description"`
	SKU            *string          `json:"sku"`
	Barcode        *string          `json:"barcode"`
	CategoryID     *string          `json:"categoryId" binding:"omitempty,uuid"`
	Brand          *string          `json:"brand"`
	PurchasePrice  *decimal.Decimal `json:"purchasePrice"`
	SellingPrice   *decimal.Decimal `json:"sellingPrice"`
	WholesalePrice *decimal.Decimal `json:"wholesalePrice"`
	StockQuantity  *int             `json:"stockQuantity"`
	MinStockLevel  *int             `json:"minStockLevel"`
	Unit           *string          `json:"unit" binding:"omitempty,oneof=adet kg metre litre kutu paket"`
	Status         *string          `json:"status" binding:"omitempty,oneof=active inactive discontinued"`
}

// ApplyTo overlays the provided fields onto an existing entity.
func (r *UpdateProductRequest) ApplyTo(p *product.Product) error {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.SKU != nil {
		p.SKU = *r.SKU
	}
	if r.Barcode != nil {
		p.Barcode = r.Barcode
	}
	if r.CategoryID != nil {
		if *r.CategoryID == "" {
			p.CategoryID = nil
		} else {
			categoryID, err := id.Parse(*r.CategoryID)
			if err != nil {
				return err
			}
			p.CategoryID = &categoryID
		}
	}
	if r.Brand != nil {
		p.Brand = *r.Brand
	}
	if r.PurchasePrice != nil {
		p.PurchasePrice = *r.PurchasePrice
	}
	if r.SellingPrice != nil {
		p.SellingPrice = *r.SellingPrice
	}
	if r.WholesalePrice != nil {
		p.WholesalePrice = *r.WholesalePrice
	}
	if r.StockQuantity != nil {
		p.StockQuantity = *r.StockQuantity
	}
	if r.MinStockLevel != nil {
		p.MinStockLevel = *r.MinStockLevel
	}
	if r.Unit != nil {
		p.Unit = product.Unit(*r.Unit)
	}
	if r.Status != nil {
		p.Status = product.Status(*r.Status)
	}
	return nil
}

// UpdateStockRequest adjusts a product's stock counter.
type UpdateStockRequest struct {
	Operation string `json:"operation" binding:"required,oneof=add subtract set"`
	Quantity  int    `json:"quantity" binding:"min=0"`
}
