// Package category provides the product category catalog.
package category

import (
	"context"
	"strings"

	"storeops/internal/core/apperror"
	"storeops/internal/core/entity"
)

// Status defines the lifecycle state of a category.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

const (
	maxNameLen        = 50
	maxDescriptionLen = 200
)

// Category groups products for navigation and reporting.
type Category struct {
	entity.Base

	// Name is unique across all categories
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description,omitempty"`
	Status      Status  `db:"status" json:"status"`
}

// New creates a Category with defaults applied.
func New(name string) *Category {
	return &Category{
		Base:   entity.NewBase(),
		Name:   name,
		Status: StatusActive,
	}
}

// Validate implements entity.Validatable.
func (c *Category) Validate(ctx context.Context) error {
	var errs []string
	name := strings.TrimSpace(c.Name)
	if name == "" {
		errs = append(errs, "name is required")
	} else if len([]rune(name)) > maxNameLen {
		errs = append(errs, "name must be at most 50 characters")
	}
	if c.Description != nil && len([]rune(*c.Description)) > maxDescriptionLen {
		errs = append(errs, "description must be at most 200 characters")
	}
	if c.Status == "" {
		c.Status = StatusActive
	} else if c.Status != StatusActive && c.Status != StatusInactive {
		errs = append(errs, "status must be active or inactive")
	}
	if len(errs) > 0 {
		return apperror.NewValidation("invalid category", errs...)
	}
	c.Name = name
	return nil
}
