// Package handlers provides HTTP request handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storeops/internal/core/appctx"
	"storeops/internal/core/apperror"
	"storeops/internal/core/id"
	"storeops/internal/infrastructure/http/v1/dto"
)

// BaseHandler provides common handler utilities.
type BaseHandler struct{}

// NewBaseHandler creates a new base handler.
func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// BindJSON binds and validates the JSON request body.
func (h *BaseHandler) BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		h.Error(c, apperror.NewValidation("invalid request body", dto.BindingMessages(err)...))
		return false
	}
	return true
}

// BindQuery binds and validates query parameters.
func (h *BaseHandler) BindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		h.Error(c, apperror.NewValidation("invalid query parameters", dto.BindingMessages(err)...))
		return false
	}
	return true
}

// ParseID parses a path parameter as an id. A malformed value behaves
// like a missing record and yields 404.
func (h *BaseHandler) ParseID(c *gin.Context, param, entity string) (id.ID, bool) {
	parsed, err := id.Parse(c.Param(param))
	if err != nil {
		h.Error(c, apperror.NewNotFound(entity))
		return id.Nil(), false
	}
	return parsed, true
}

// Error registers the error on the Gin context and aborts. The JSON
// response is produced by middleware.ErrorHandler.
func (h *BaseHandler) Error(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// UserID returns the authenticated user's id, or nil when anonymous.
func (h *BaseHandler) UserID(c *gin.Context) *id.ID {
	raw := appctx.GetUserID(c.Request.Context())
	if raw == "" {
		return nil
	}
	parsed, err := id.Parse(raw)
	if err != nil {
		return nil
	}
	return &parsed
}

// OK sends 200 with a data envelope.
func (h *BaseHandler) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.DataResponse{Success: true, Data: data})
}

// Created sends 201 with a data envelope.
func (h *BaseHandler) Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, dto.DataResponse{Success: true, Message: message, Data: data})
}

// Message sends 200 with a message-only envelope.
func (h *BaseHandler) Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.DataResponse{Success: true, Message: message})
}

// Paged sends 200 with a list envelope.
func (h *BaseHandler) Paged(c *gin.Context, resp dto.ListResponse) {
	c.JSON(http.StatusOK, resp)
}
