package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storeops/internal/core/apperror"
	"storeops/internal/domain/shipment"
	"storeops/internal/infrastructure/http/v1/dto"
)

// ShipmentHandler serves the shipment routes.
type ShipmentHandler struct {
	*BaseHandler
	service *shipment.Service
}

// NewShipmentHandler creates a shipment handler.
func NewShipmentHandler(base *BaseHandler, service *shipment.Service) *ShipmentHandler {
	return &ShipmentHandler{BaseHandler: base, service: service}
}

// List handles GET /shipments.
func (h *ShipmentHandler) List(c *gin.Context) {
	var q dto.ShipmentListQuery
	if !h.BindQuery(c, &q) {
		return
	}
	f, err := q.Filter()
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid query parameters", "store filters must be valid ids"))
		return
	}

	page, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Paged(c, dto.NewListResponse(page))
}

// Overdue handles GET /shipments/overdue.
func (h *ShipmentHandler) Overdue(c *gin.Context) {
	items, err := h.service.ListOverdue(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	if items == nil {
		items = []*shipment.Shipment{}
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(items),
		"data":    items,
	})
}

// Stats handles GET /shipments/stats.
func (h *ShipmentHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, stats)
}

// Get handles GET /shipments/:id.
func (h *ShipmentHandler) Get(c *gin.Context) {
	shipmentID, ok := h.ParseID(c, "id", "shipment")
	if !ok {
		return
	}

	sh, err := h.service.GetByID(c.Request.Context(), shipmentID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, sh)
}

// Create handles POST /shipments.
func (h *ShipmentHandler) Create(c *gin.Context) {
	var req dto.CreateShipmentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	sh, err := req.ToEntity()
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid shipment", "store and product ids must be valid"))
		return
	}
	sh.CreatedBy = h.UserID(c)

	if err := h.service.Create(c.Request.Context(), sh); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, "shipment created", sh)
}

// Update handles PUT /shipments/:id.
func (h *ShipmentHandler) Update(c *gin.Context) {
	shipmentID, ok := h.ParseID(c, "id", "shipment")
	if !ok {
		return
	}
	var req dto.UpdateShipmentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	sh, err := h.service.GetByID(c.Request.Context(), shipmentID)
	if err != nil {
		h.Error(c, err)
		return
	}
	if err := req.ApplyTo(sh); err != nil {
		h.Error(c, apperror.NewValidation("invalid shipment", "product ids must be valid"))
		return
	}
	if err := h.service.Update(c.Request.Context(), sh, h.UserID(c)); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, sh)
}

// UpdateStatus handles PATCH /shipments/:id/status.
func (h *ShipmentHandler) UpdateStatus(c *gin.Context) {
	shipmentID, ok := h.ParseID(c, "id", "shipment")
	if !ok {
		return
	}
	var req dto.UpdateShipmentStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	sh, err := h.service.UpdateStatus(c.Request.Context(), shipmentID, shipment.Status(req.Status), req.Location, req.Notes)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, sh)
}

// Delete handles DELETE /shipments/:id. Stock reserved by the shipment
// is returned to the products before the document is removed.
func (h *ShipmentHandler) Delete(c *gin.Context) {
	shipmentID, ok := h.ParseID(c, "id", "shipment")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), shipmentID); err != nil {
		h.Error(c, err)
		return
	}
	h.Message(c, "shipment deleted")
}
