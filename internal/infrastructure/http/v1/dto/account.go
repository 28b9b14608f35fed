package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"storeops/internal/core/id"
	"storeops/internal/domain/account"
)

// AccountListQuery narrows account lists.
type AccountListQuery struct {
	ListQuery

	Type   string `form:"type" binding:"omitempty,oneof=customer supplier other"`
	Status string `form:"status" binding:"omitempty,oneof=active inactive"`
}

// Filter converts the query to a domain filter.
func (q AccountListQuery) Filter() account.Filter {
	return account.Filter{
		ListFilter: q.ListQuery.Filter(),
		Type:       account.Type(q.Type),
		Status:     account.Status(q.Status),
	}
}

// AccountContactPayload mirrors the embedded contact document.
type AccountContactPayload struct {
	Phone       string `json:"phone"`
	Email       string `json:"email" binding:"omitempty,email"`
	TaxNo       string `json:"taxNo"`
	Responsible string `json:"responsible"`
}

// CreateAccountRequest is the request body for creating an account.
type CreateAccountRequest struct {
	Name           string                 `json:"name" binding:"required"`
	Code           string                 `json:"code"`
	Type           string                 `json:"type" binding:"omitempty,oneof=customer supplier other"`
	Status         string                 `json:"status" binding:"omitempty,oneof=active inactive"`
	OpeningBalance *decimal.Decimal       `json:"openingBalance"`
	Contact        *AccountContactPayload `json:"contact"`
	Address        *AddressPayload        `json:"address"`
	Notes          *string                `json:"notes"`
}

// ToEntity converts the request to a domain entity.
func (r *CreateAccountRequest) ToEntity() *account.Account {
	a := account.New(r.Name)
	a.Code = r.Code
	if r.Type != "" {
		a.Type = account.Type(r.Type)
	}
	if r.Status != "" {
		a.Status = account.Status(r.Status)
	}
	if r.OpeningBalance != nil {
		a.OpeningBalance = *r.OpeningBalance
	}
	if r.Contact != nil {
		a.Contact = &account.Contact{
			Phone:       r.Contact.Phone,
			Email:       r.Contact.Email,
			TaxNo:       r.Contact.TaxNo,
			Responsible: r.Contact.Responsible,
		}
	}
	if r.Address != nil {
		a.Address = &account.Address{
			Street:  r.Address.Street,
			City:    r.Address.City,
			State:   r.Address.State,
			ZipCode: r.Address.ZipCode,
			Country: r.Address.Country,
		}
	}
	a.Notes = r.Notes
	return a
}

// UpdateAccountRequest is the request body for updating an account.
type UpdateAccountRequest struct {
	Name           *string                `json:"name"`
	Code           *string                `json:"code"`
	Type           *string                `json:"type" binding:"omitempty,oneof=customer supplier other"`
	Status         *string                `json:"status" binding:"omitempty,oneof=active inactive"`
	OpeningBalance *decimal.Decimal       `json:"openingBalance"`
	Contact        *AccountContactPayload `json:"contact"`
	Address        *AddressPayload        `json:"address"`
	Notes          *string                `json:"notes"`
}

// ApplyTo overlays the provided fields onto an existing entity.
func (r *UpdateAccountRequest) ApplyTo(a *account.Account) {
	if r.Name != nil {
		a.Name = *r.Name
	}
	if r.Code != nil {
		a.Code = *r.Code
	}
	if r.Type != nil {
		a.Type = account.Type(*r.Type)
	}
	if r.Status != nil {
		a.Status = account.Status(*r.Status)
	}
	if r.OpeningBalance != nil {
		a.OpeningBalance = *r.OpeningBalance
	}
	if r.Contact != nil {
		a.Contact = &account.Contact{
			Phone:       r.Contact.Phone,
			Email:       r.Contact.Email,
			TaxNo:       r.Contact.TaxNo,
			Responsible: r.Contact.Responsible,
		}
	}
	if r.Address != nil {
		a.Address = &account.Address{
			Street:  r.Address.Street,
			City:    r.Address.City,
			State:   r.Address.State,
			ZipCode: r.Address.ZipCode,
			Country: r.Address.Country,
		}
	}
	if r.Notes != nil {
		a.Notes = r.Notes
	}
}

// TransactionListQuery narrows per-account transaction lists.
type TransactionListQuery struct {
	ListQuery

	Type      string           `form:"type" binding:"omitempty,oneof=income expense"`
	Category  string           `form:"category"`
	MinAmount *decimal.Decimal `form:"minAmount"`
	MaxAmount *decimal.Decimal `form:"maxAmount"`
	StartDate *time.Time       `form:"startDate" time_format:"2006-01-02"`
	EndDate   *time.Time       `form:"endDate" time_format:"2006-01-02"`
}

// Filter converts the query to a domain filter.
func (q TransactionListQuery) Filter(accountID id.ID) account.TxFilter {
	return account.TxFilter{
		ListFilter: q.ListQuery.Filter(),
		AccountID:  accountID,
		Type:       account.TransactionType(q.Type),
		Category:   q.Category,
		MinAmount:  q.MinAmount,
		MaxAmount:  q.MaxAmount,
		StartDate:  q.StartDate,
		EndDate:    q.EndDate,
	}
}

// CreateTransactionRequest is the request body for adding a ledger entry.
type CreateTransactionRequest struct {
	Date        *time.Time      `json:"date"`
	Type        string          `json:"type" binding:"required,oneof=income expense"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description *string         `json:"description"`
	Category    *string         `json:"category"`
}

// ToEntity converts the request to a domain entity.
func (r *CreateTransactionRequest) ToEntity(accountID id.ID) *account.Transaction {
	t := account.NewTransaction(accountID, account.TransactionType(r.Type), r.Amount)
	if r.Date != nil {
		t.Date = *r.Date
	}
	t.Description = r.Description
	t.Category = r.Category
	return t
}
