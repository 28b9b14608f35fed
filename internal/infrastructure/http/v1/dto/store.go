package dto

import (
	"storeops/internal/domain/store"
)

// StoreListQuery narrows store lists.
type StoreListQuery struct {
	ListQuery

	Type   string `form:"type" binding:"omitempty,oneof=store warehouse branch"`
	Status string `form:"status" binding:"omitempty,oneof=active inactive maintenance"`
}

// Filter converts the query to a domain filter.
func (q StoreListQuery) Filter() store.Filter {
	return store.Filter{
		ListFilter: q.ListQuery.Filter(),
		Type:       store.Type(q.Type),
		Status:     store.Status(q.Status),
	}
}

// ContactPayload mirrors the embedded contact document.
type ContactPayload struct {
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
	Manager string `json:"manager"`
}

// AddressPayload mirrors the embedded address document.
type AddressPayload struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// CreateStoreRequest is the request body for creating a store.
type CreateStoreRequest struct {
	Name    string          `json:"name" binding:"required"`
	Code    string          `json:"code"`
	Type    string          `json:"type" binding:"omitempty,oneof=store warehouse branch"`
	Status  string          `json:"status" binding:"omitempty,oneof=active inactive maintenance"`
	Contact *ContactPayload `json:"contact"`
	Address *AddressPayload `json:"address"`
	Notes   *string         `json:"notes"`
}

// ToEntity converts the request to a domain entity.
func (r *CreateStoreRequest) ToEntity() *store.Store {
	s := store.New(r.Name)
	s.Code = r.Code
	if r.Type != "" {
		s.Type = store.Type(r.Type)
	}
	if r.Status != "" {
		s.Status = store.Status(r.Status)
	}
	if r.Contact != nil {
		s.Contact = &store.Contact{
			Phone:   r.Contact.Phone,
			Email:   r.Contact.Email,
			Manager: r.Contact.Manager,
		}
	}
	if r.Address != nil {
		s.Address = &store.Address{
			Street:  r.Address.Street,
			City:    r.Address.City,
			State:   r.Address.State,
			ZipCode: r.Address.ZipCode,
			Country: r.Address.Country,
		}
	}
	s.Notes = r.Notes
	return s
}

// UpdateStoreRequest is the request body for updating a store.
type UpdateStoreRequest struct {
	Name    *string         `json:"name"`
	Code    *string         `json:"code"`
	Type    *string         `json:"type" binding:"omitempty,oneof=store warehouse branch"`
	Status  *string         `json:"status" binding:"omitempty,oneof=active inactive maintenance"`
	Contact *ContactPayload `json:"contact"`
	Address *AddressPayload `json:"address"`
	Notes   *string         `json:"notes"`
}

// ApplyTo overlays the provided fields onto an existing entity.
func (r *UpdateStoreRequest) ApplyTo(s *store.Store) {
	if r.Name != nil {
		s.Name = *r.Name
	}
	if r.Code != nil {
		s.Code = *r.Code
	}
	if r.Type != nil {
		s.Type = store.Type(*r.Type)
	}
	if r.Status != nil {
		s.Status = store.Status(*r.Status)
	}
	if r.Contact != nil {
		s.Contact = &store.Contact{
			Phone:   r.Contact.Phone,
			Email:   r.Contact.Email,
			Manager: r.Contact.Manager,
		}
	}
	if r.Address != nil {
		s.Address = &store.Address{
			Street:  r.Address.Street,
			City:    r.Address.City,
			State:   r.Address.State,
			ZipCode: r.Address.ZipCode,
			Country: r.Address.Country,
		}
	}
	if r.Notes != nil {
		s.Notes = r.Notes
	}
}
