// Package store provides the store/warehouse catalog.
package store

import (
	"context"
	"strings"

	"storeops/internal/core/apperror"
	"storeops/internal/core/entity"
)

// Type distinguishes kinds of locations.
type Type string

const (
	TypeStore     Type = "store"
	TypeWarehouse Type = "warehouse"
	TypeBranch    Type = "branch"
)

// Status defines the operational state of a store.
type Status string

const (
	StatusActive      Status = "active"
	StatusInactive    Status = "inactive"
	StatusMaintenance Status = "maintenance"
)

const (
	maxNameLen  = 100
	maxCodeLen  = 10
	maxNotesLen = 500
)

// Contact holds reachability details, stored as one JSONB column.
type Contact struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Manager string `json:"manager,omitempty"`
}

// Address holds the physical location, stored as one JSONB column.
type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
	Country string `json:"country,omitempty"`
}

// Store is a physical location goods move between.
type Store struct {
	entity.Base

	Name string `db:"name" json:"name"`

	// Code is unique and uppercased; generated when omitted
	Code string `db:"code" json:"code"`

	Type   Type   `db:"type" json:"type"`
	Status Status `db:"status" json:"status"`

	Contact *Contact `db:"contact" json:"contact,omitempty"`
	Address *Address `db:"address" json:"address,omitempty"`

	Notes *string `db:"notes" json:"notes,omitempty"`
}

// New creates a Store with defaults applied.
func New(name string) *Store {
	return &Store{
		Base:   entity.NewBase(),
		Name:   name,
		Type:   TypeStore,
		Status: StatusActive,
	}
}

// Validate implements entity.Validatable.
func (s *Store) Validate(ctx context.Context) error {
	var errs []string
	s.Name = strings.TrimSpace(s.Name)
	s.Code = strings.ToUpper(strings.TrimSpace(s.Code))

	if s.Name == "" {
		errs = append(errs, "name is required")
	} else if len([]rune(s.Name)) > maxNameLen {
		errs = append(errs, "name must be at most 100 characters")
	}
	if len(s.Code) > maxCodeLen {
		errs = append(errs, "code must be at most 10 characters")
	}
	if s.Type == "" {
		s.Type = TypeStore
	} else if s.Type != TypeStore && s.Type != TypeWarehouse && s.Type != TypeBranch {
		errs = append(errs, "type must be store, warehouse or branch")
	}
	if s.Status == "" {
		s.Status = StatusActive
	} else if s.Status != StatusActive && s.Status != StatusInactive && s.Status != StatusMaintenance {
		errs = append(errs, "status must be active, inactive or maintenance")
	}
	if s.Notes != nil && len([]rune(*s.Notes)) > maxNotesLen {
		errs = append(errs, "notes must be at most 500 characters")
	}
	if len(errs) > 0 {
		return apperror.NewValidation("invalid store", errs...)
	}
	return nil
}
