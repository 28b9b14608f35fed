package dto

import (
	"storeops/internal/core/id"
	"storeops/internal/domain/stockmovement"
)

// MovementListQuery narrows stock movement lists.
type MovementListQuery struct {
	ListQuery

	Product       string `form:"product" binding:"omitempty,uuid"`
	Store         string `form:"store" binding:"omitempty,uuid"`
	Direction     string `form:"direction" binding:"omitempty,oneof=in out"`
	ReferenceType string `form:"referenceType" binding:"omitempty,oneof=shipment adjustment return"`
}

// Filter converts the query to a domain filter.
func (q MovementListQuery) Filter() (stockmovement.Filter, error) {
	f := stockmovement.Filter{
		ListFilter:    q.ListQuery.Filter(),
		Direction:     stockmovement.Direction(q.Direction),
		ReferenceType: stockmovement.ReferenceType(q.ReferenceType),
	}
	if q.Product != "" {
		productID, err := id.Parse(q.Product)
		if err != nil {
			return f, err
		}
		f.ProductID = &productID
	}
	if q.Store != "" {
		storeID, err := id.Parse(q.Store)
		if err != nil {
			return f, err
		}
		f.StoreID = &storeID
	}
	return f, nil
}
