package account

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"storeops/internal/core/id"
	"storeops/internal/domain"
)

// Filter narrows account list queries.
type Filter struct {
	domain.ListFilter

	Type   Type
	Status Status
}

// TxFilter narrows per-account transaction list queries.
type TxFilter struct {
	domain.ListFilter

	AccountID id.ID
	Type      TransactionType
	Category  string
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	StartDate *time.Time
	EndDate   *time.Time
}

// Repository defines Account persistence.
type Repository interface {
	Create(ctx context.Context, a *Account) error
	GetByID(ctx context.Context, accountID id.ID) (*Account, error)
	Update(ctx context.Context, a *Account) error
	Delete(ctx context.Context, accountID id.ID) error
	List(ctx context.Context, f Filter) (domain.ListResult[*Account], error)
	Exists(ctx context.Context, accountID id.ID) (bool, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
}

// TransactionRepository defines ledger entry persistence.
type TransactionRepository interface {
	Create(ctx context.Context, t *Transaction) error
	GetByID(ctx context.Context, accountID, txID id.ID) (*Transaction, error)
	Delete(ctx context.Context, txID id.ID) error
	List(ctx context.Context, f TxFilter) (domain.ListResult[*Transaction], error)

	// CountByAccount returns the number of entries on the account.
	CountByAccount(ctx context.Context, accountID id.ID) (int64, error)

	// SumByType returns the grouped income/expense sums for the filtered set.
	SumByType(ctx context.Context, f TxFilter) (income, expense decimal.Decimal, err error)
}
