package handlers

import (
	"github.com/gin-gonic/gin"

	"storeops/internal/domain/store"
	"storeops/internal/infrastructure/http/v1/dto"
)

// StoreHandler serves the store routes.
type StoreHandler struct {
	*BaseHandler
	service *store.Service
}

// NewStoreHandler creates a store handler.
func NewStoreHandler(base *BaseHandler, service *store.Service) *StoreHandler {
	return &StoreHandler{BaseHandler: base, service: service}
}

// List handles GET /stores.
func (h *StoreHandler) List(c *gin.Context) {
	var q dto.StoreListQuery
	if !h.BindQuery(c, &q) {
		return
	}

	page, err := h.service.List(c.Request.Context(), q.Filter())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Paged(c, dto.NewListResponse(page))
}

// Get handles GET /stores/:id.
func (h *StoreHandler) Get(c *gin.Context) {
	storeID, ok := h.ParseID(c, "id", "store")
	if !ok {
		return
	}

	s, err := h.service.GetByID(c.Request.Context(), storeID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, s)
}

// Create handles POST /stores.
func (h *StoreHandler) Create(c *gin.Context) {
	var req dto.CreateStoreRequest
	if !h.BindJSON(c, &req) {
		return
	}

	s := req.ToEntity()
	if err := h.service.Create(c.Request.Context(), s); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, "store created", s)
}

// Update handles PUT /stores/:id.
func (h *StoreHandler) Update(c *gin.Context) {
	storeID, ok := h.ParseID(c, "id", "store")
	if !ok {
		return
	}
	var req dto.UpdateStoreRequest
	if !h.BindJSON(c, &req) {
		return
	}

	s, err := h.service.GetByID(c.Request.Context(), storeID)
	if err != nil {
		h.Error(c, err)
		return
	}
	req.ApplyTo(s)
	if err := h.service.Update(c.Request.Context(), s); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, s)
}

// Delete handles DELETE /stores/:id.
func (h *StoreHandler) Delete(c *gin.Context) {
	storeID, ok := h.ParseID(c, "id", "store")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), storeID); err != nil {
		h.Error(c, err)
		return
	}
	h.Message(c, "store deleted")
}
