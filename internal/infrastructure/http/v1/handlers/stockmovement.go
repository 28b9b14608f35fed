package handlers

import (
	"github.com/gin-gonic/gin"

	"storeops/internal/core/apperror"
	"storeops/internal/domain/stockmovement"
	"storeops/internal/infrastructure/http/v1/dto"
)

// MovementHandler serves the stock movement routes.
type MovementHandler struct {
	*BaseHandler
	service *stockmovement.Service
}

// NewMovementHandler creates a stock movement handler.
func NewMovementHandler(base *BaseHandler, service *stockmovement.Service) *MovementHandler {
	return &MovementHandler{BaseHandler: base, service: service}
}

// List handles GET /stock-movements.
func (h *MovementHandler) List(c *gin.Context) {
	var q dto.MovementListQuery
	if !h.BindQuery(c, &q) {
		return
	}
	f, err := q.Filter()
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid query parameters", "product and store filters must be valid ids"))
		return
	}

	page, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Paged(c, dto.NewListResponse(page))
}
