package dto

import (
	"storeops/internal/domain/category"
)

// CategoryListQuery narrows category lists.
type CategoryListQuery struct {
	ListQuery

	Status string `form:"status" binding:"omitempty,oneof=active inactive"`
}

// Filter converts the query to a domain filter.
func (q CategoryListQuery) Filter() category.Filter {
	return category.Filter{
		ListFilter: q.ListQuery.Filter(),
		Status:     category.Status(q.Status),
	}
}

// CreateCategoryRequest is the request body for creating a category.
type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Status      string  `json:"status" binding:"omitempty,oneof=active inactive"`
}

// ToEntity converts the request to a domain entity.
func (r *CreateCategoryRequest) ToEntity() *category.Category {
	c := category.New(r.Name)
	c.Description = r.Description
	if r.Status != "" {
		c.Status = category.Status(r.Status)
	}
	return c
}

// UpdateCategoryRequest is the request body for updating a category.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// ApplyTo overlays the provided fields onto an existing entity.
func (r *UpdateCategoryRequest) ApplyTo(c *category.Category) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Description != nil {
		c.Description = r.Description
	}
	if r.Status != nil {
		c.Status = category.Status(*r.Status)
	}
}
