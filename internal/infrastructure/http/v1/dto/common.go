// Package dto provides Data Transfer Objects for API requests/responses.
package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"storeops/internal/domain"
)

// --- Pagination ---

// ListQuery contains common list query parameters.
type ListQuery struct {
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
	Search    string `form:"search"`
}

// Filter converts query parameters to a domain list filter.
func (q ListQuery) Filter() domain.ListFilter {
	return domain.ListFilter{
		Page:      q.Page,
		Limit:     q.Limit,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
		Search:    strings.TrimSpace(q.Search),
	}
}

// --- Response envelopes ---

// DataResponse wraps a single resource or mutation result.
type DataResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ListResponse wraps one page of resources.
type ListResponse struct {
	Success bool  `json:"success"`
	Count   int   `json:"count"`
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	Pages   int   `json:"pages"`
	Summary any   `json:"summary,omitempty"`
	Data    any   `json:"data"`
}

// NewListResponse builds the list envelope from a domain page.
func NewListResponse[T any](r domain.ListResult[T]) ListResponse {
	items := r.Items
	if items == nil {
		items = []T{}
	}
	return ListResponse{
		Success: true,
		Count:   len(r.Items),
		Total:   r.Total,
		Page:    r.Page,
		Pages:   r.Pages(),
		Data:    items,
	}
}

// --- Binding error translation ---

// BindingMessages converts binding failures into per-field messages.
// Non-validator errors (malformed JSON) yield no field messages.
func BindingMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = fieldMessage(fe)
	}
	return msgs
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	if field != "" {
		field = strings.ToLower(field[:1]) + field[1:]
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must be at least " + fe.Param()
	case "max":
		return field + " must be at most " + fe.Param()
	case "oneof":
		return field + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "email":
		return field + " must be a valid email address"
	case "gt":
		return field + " must be greater than " + fe.Param()
	case "gte":
		return field + " must be at least " + fe.Param()
	default:
		return field + " is invalid"
	}
}
