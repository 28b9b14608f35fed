// Package account provides the customer/supplier account ledger.
package account

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"storeops/internal/core/apperror"
	"storeops/internal/core/entity"
	"storeops/internal/core/id"
)

// Type classifies the counterparty.
type Type string

const (
	TypeCustomer Type = "customer"
	TypeSupplier Type = "supplier"
	TypeOther    Type = "other"
)

// Status defines the lifecycle state of an account.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// TransactionType marks money direction on the ledger.
type TransactionType string

const (
	TxIncome  TransactionType = "income"
	TxExpense TransactionType = "expense"
)

const (
	maxNameLen          = 120
	maxCodeLen          = 20
	maxNotesLen         = 500
	maxTxDescriptionLen = 300
	maxTxCategoryLen    = 60
)

// Contact holds reachability details, stored as one JSONB column.
type Contact struct {
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	TaxNo       string `json:"taxNo,omitempty"`
	Responsible string `json:"responsible,omitempty"`
}

// Address holds the postal address, stored as one JSONB column.
type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
	Country string `json:"country,omitempty"`
}

// Account is a customer or supplier ledger account. The running balance
// is never stored; it is always opening balance plus the transaction sums.
type Account struct {
	entity.Base

	Name string `db:"name" json:"name"`

	// Code is unique and uppercased; generated when omitted
	Code string `db:"code" json:"code"`

	Type   Type   `db:"type" json:"type"`
	Status Status `db:"status" json:"status"`

	OpeningBalance decimal.Decimal `db:"opening_balance" json:"openingBalance"`

	Contact *Contact `db:"contact" json:"contact,omitempty"`
	Address *Address `db:"address" json:"address,omitempty"`

	Notes *string `db:"notes" json:"notes,omitempty"`
}

// New creates an Account with defaults applied.
func New(name string) *Account {
	return &Account{
		Base:   entity.NewBase(),
		Name:   name,
		Type:   TypeCustomer,
		Status: StatusActive,
	}
}

// Validate implements entity.Validatable.
func (a *Account) Validate(ctx context.Context) error {
	var errs []string
	a.Name = strings.TrimSpace(a.Name)
	a.Code = strings.ToUpper(strings.TrimSpace(a.Code))

	if a.Name == "" {
		errs = append(errs, "name is required")
	} else if len([]rune(a.Name)) > maxNameLen {
		errs = append(errs, "name must be at most 120 characters")
	}
	if len(a.Code) > maxCodeLen {
		errs = append(errs, "code must be at most 20 characters")
	}
	if a.Type == "" {
		a.Type = TypeCustomer
	} else if a.Type != TypeCustomer && a.Type != TypeSupplier && a.Type != TypeOther {
		errs = append(errs, "type must be customer, supplier or other")
	}
	if a.Status == "" {
		a.Status = StatusActive
	} else if a.Status != StatusActive && a.Status != StatusInactive {
		errs = append(errs, "status must be active or inactive")
	}
	if a.OpeningBalance.IsNegative() {
		errs = append(errs, "opening balance cannot be negative")
	}
	if a.Notes != nil && len([]rune(*a.Notes)) > maxNotesLen {
		errs = append(errs, "notes must be at most 500 characters")
	}
	if len(errs) > 0 {
		return apperror.NewValidation("invalid account", errs...)
	}
	return nil
}

// Transaction is one income or expense entry on an account.
// Entries are created and deleted, never updated.
type Transaction struct {
	entity.Base

	AccountID   id.ID           `db:"account_id" json:"accountId"`
	Date        time.Time       `db:"date" json:"date"`
	Type        TransactionType `db:"type" json:"type"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	Description *string         `db:"description" json:"description,omitempty"`
	Category    *string         `db:"category" json:"category,omitempty"`
}

// NewTransaction creates a Transaction with defaults applied.
func NewTransaction(accountID id.ID, txType TransactionType, amount decimal.Decimal) *Transaction {
	return &Transaction{
		Base:      entity.NewBase(),
		AccountID: accountID,
		Date:      time.Now().UTC(),
		Type:      txType,
		Amount:    amount,
	}
}

var minAmount = decimal.NewFromFloat(0.01)

// Validate implements entity.Validatable.
func (t *Transaction) Validate(ctx context.Context) error {
	var errs []string
	if t.Type != TxIncome && t.Type != TxExpense {
		errs = append(errs, "type must be income or expense")
	}
	if t.Amount.LessThan(minAmount) {
		errs = append(errs, "amount must be at least 0.01")
	}
	if t.Date.IsZero() {
		t.Date = time.Now().UTC()
	}
	if t.Description != nil && len([]rune(*t.Description)) > maxTxDescriptionLen {
		errs = append(errs, "description must be at most 300 characters")
	}
	if t.Category != nil && len([]rune(*t.Category)) > maxTxCategoryLen {
		errs = append(errs, "category must be at most 60 characters")
	}
	if len(errs) > 0 {
		return apperror.NewValidation("invalid transaction", errs...)
	}
	return nil
}

// Summary aggregates transactions by type.
type Summary struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}
