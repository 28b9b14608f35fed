package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"storeops/internal/core/id"
	"storeops/internal/domain/shipment"
)

// ShipmentListQuery narrows shipment lists.
type ShipmentListQuery struct {
	ListQuery

	Status    string `form:"status" binding:"omitempty,oneof=pending preparing shipped delivered cancelled"`
	FromStore string `form:"fromStore" binding:"omitempty,uuid"`
	ToStore   string `form:"toStore" binding:"omitempty,uuid"`
}

// Filter converts the query to a domain filter.
func (q ShipmentListQuery) Filter() (shipment.Filter, error) {
	f := shipment.Filter{
		ListFilter: q.ListQuery.Filter(),
		Status:     shipment.Status(q.Status),
	}
	if q.FromStore != "" {
		storeID, err := id.Parse(q.FromStore)
		if err != nil {
			return f, err
		}
		f.FromStoreID = &storeID
	}
	if q.ToStore != "" {
		storeID, err := id.Parse(q.ToStore)
		if err != nil {
			return f, err
		}
		f.ToStoreID = &storeID
	}
	return f, nil
}

// ShipmentItemPayload is one product line in a shipment request.
type ShipmentItemPayload struct {
	ProductID string           `json:"productId" binding:"required,uuid"`
	Quantity  int              `json:"quantity" binding:"required,min=1"`
	UnitPrice *decimal.Decimal `json:"unitPrice"`
}

func (p ShipmentItemPayload) toItem() (shipment.Item, error) {
	productID, err := id.Parse(p.ProductID)
	if err != nil {
		return shipment.Item{}, err
	}
	item := shipment.Item{
		ProductID: productID,
		Quantity:  p.Quantity,
		UnitPrice: p.UnitPrice,
	}
	if p.UnitPrice != nil {
		total := p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
		item.TotalPrice = &total
	}
	return item, nil
}

// CreateShipmentRequest is the request body for creating a shipment.
type CreateShipmentRequest struct {
	ShipmentNumber       string                `json:"shipmentNumber"`
	OrderNumber          string                `json:"orderNumber"`
	FromStoreID          string                `json:"fromStoreId" binding:"required,uuid"`
	ToStoreID            string                `json:"toStoreId" binding:"required,uuid"`
	ShippingMethod       string                `json:"shippingMethod" binding:"omitempty,oneof=internal external pickup"`
	TrackingNumber       string                `json:"trackingNumber"`
	Items                []ShipmentItemPayload `json:"items" binding:"required,min=1,dive"`
	ExpectedDeliveryDate time.Time             `json:"expectedDeliveryDate" binding:"required"`
	ShippingCost         *decimal.Decimal      `json:"shippingCost"`
	TaxAmount            *decimal.Decimal      `json:"taxAmount"`
	Notes                *string               `json:"notes"`
}

// ToEntity converts the request to a domain entity.
func (r *CreateShipmentRequest) ToEntity() (*shipment.Shipment, error) {
	fromID, err := id.Parse(r.FromStoreID)
	if err != nil {
		return nil, err
	}
	toID, err := id.Parse(r.ToStoreID)
	if err != nil {
		return nil, err
	}

	sh := shipment.New(fromID, toID)
	sh.Number = r.ShipmentNumber
	sh.OrderNumber = r.OrderNumber
	sh.Method = shipment.Method(r.ShippingMethod)
	sh.TrackingNumber = r.TrackingNumber
	sh.ExpectedDeliveryDate = r.ExpectedDeliveryDate
	if r.ShippingCost != nil {
		sh.ShippingCost = *r.ShippingCost
	}
	if r.TaxAmount != nil {
		sh.TaxAmount = *r.TaxAmount
	}
	sh.Notes = r.Notes

	sh.Items = make([]shipment.Item, 0, len(r.Items))
	for _, p := range r.Items {
		item, err := p.toItem()
		if err != nil {
			return nil, err
		}
		sh.Items = append(sh.Items, item)
	}
	return sh, nil
}

// UpdateShipmentRequest is the request body for updating a shipment.
// Items, when present, replace the existing lines.
type UpdateShipmentRequest struct {
	OrderNumber          *string               `json:"orderNumber"`
	ShippingMethod       *string               `json:"shippingMethod" binding:"omitempty,oneof=internal external pickup"`
	TrackingNumber       *string               `json:"trackingNumber"`
	Items                []ShipmentItemPayload `json:"items" binding:"omitempty,min=1,dive"`
	ExpectedDeliveryDate *time.Time            `json:"expectedDeliveryDate"`
	ShippingCost         *decimal.Decimal      `json:"shippingCost"`
	TaxAmount            *decimal.Decimal      `json:"taxAmount"`
	Notes                *string               `json:"notes"`
}

// ApplyTo overlays the provided fields onto an existing entity.
func (r *UpdateShipmentRequest) ApplyTo(sh *shipment.Shipment) error {
	if r.OrderNumber != nil {
		sh.OrderNumber = *r.OrderNumber
	}
	if r.ShippingMethod != nil {
		sh.Method = shipment.Method(*r.ShippingMethod)
	}
	if r.TrackingNumber != nil {
		sh.TrackingNumber = *r.TrackingNumber
	}
	if r.ExpectedDeliveryDate != nil {
		sh.ExpectedDeliveryDate = *r.ExpectedDeliveryDate
	}
	if r.ShippingCost != nil {
		sh.ShippingCost = *r.ShippingCost
	}
	if r.TaxAmount != nil {
		sh.TaxAmount = *r.TaxAmount
	}
	if r.Notes != nil {
		sh.Notes = r.Notes
	}
	if r.Items != nil {
		items := make([]shipment.Item, 0, len(r.Items))
		for _, p := range r.Items {
			item, err := p.toItem()
			if err != nil {
				return err
			}
			items = append(items, item)
		}
		sh.Items = items
	}
	return nil
}

// UpdateShipmentStatusRequest changes a shipment's status.
type UpdateShipmentStatusRequest struct {
	Status   string `json:"status" binding:"required,oneof=pending preparing shipped delivered cancelled"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
}
