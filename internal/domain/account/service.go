package account

import (
	"context"
	"fmt"

	"storeops/internal/core/apperror"
	"storeops/internal/core/autocode"
	"storeops/internal/core/id"
	"storeops/internal/domain"
)

const (
	defaultPageSize   = 10
	defaultTxPageSize = 20
)

// Service provides business logic for accounts and their ledger entries.
type Service struct {
	repo   Repository
	txRepo TransactionRepository
}

// NewService creates an account service.
func NewService(repo Repository, txRepo TransactionRepository) *Service {
	return &Service{repo: repo, txRepo: txRepo}
}

// Create validates and stores a new account, generating a code when absent.
func (s *Service) Create(ctx context.Context, a *Account) error {
	if err := a.Validate(ctx); err != nil {
		return err
	}
	if a.Code == "" {
		code, err := autocode.Generate(ctx, s.repo.ExistsByCode)
		if err != nil {
			return fmt.Errorf("generate account code: %w", err)
		}
		a.Code = code
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}

// GetByID returns one account plus its income/expense/balance summary
// computed live from the transaction ledger.
func (s *Service) GetByID(ctx context.Context, accountID id.ID) (*Account, Summary, error) {
	a, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		return nil, Summary{}, err
	}
	income, expense, err := s.txRepo.SumByType(ctx, TxFilter{AccountID: accountID})
	if err != nil {
		return nil, Summary{}, fmt.Errorf("summarize account: %w", err)
	}
	summary := Summary{
		Income:  income,
		Expense: expense,
		Balance: a.OpeningBalance.Add(income).Sub(expense),
	}
	return a, summary, nil
}

// Update validates and stores changes to an existing account.
func (s *Service) Update(ctx context.Context, a *Account) error {
	if err := a.Validate(ctx); err != nil {
		return err
	}
	a.Touch()
	if err := s.repo.Update(ctx, a); err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}

// Delete removes an account. Deletion is refused while the account has
// ledger entries; the count is read live.
func (s *Service) Delete(ctx context.Context, accountID id.ID) error {
	if _, err := s.repo.GetByID(ctx, accountID); err != nil {
		return err
	}
	count, err := s.txRepo.CountByAccount(ctx, accountID)
	if err != nil {
		return fmt.Errorf("count account transactions: %w", err)
	}
	if count > 0 {
		return apperror.NewDependentRecords("account has transactions; delete them first")
	}
	return s.repo.Delete(ctx, accountID)
}

// List returns one page of accounts.
func (s *Service) List(ctx context.Context, f Filter) (domain.ListResult[*Account], error) {
	f.Normalize(defaultPageSize)
	return s.repo.List(ctx, f)
}

// ListTransactions returns one page of the account's ledger entries plus the
// income/expense summary computed over the whole filtered set.
func (s *Service) ListTransactions(ctx context.Context, f TxFilter) (domain.ListResult[*Transaction], Summary, error) {
	if _, err := s.repo.GetByID(ctx, f.AccountID); err != nil {
		return domain.ListResult[*Transaction]{}, Summary{}, err
	}
	f.Normalize(defaultTxPageSize)

	result, err := s.txRepo.List(ctx, f)
	if err != nil {
		return domain.ListResult[*Transaction]{}, Summary{}, fmt.Errorf("list transactions: %w", err)
	}
	income, expense, err := s.txRepo.SumByType(ctx, f)
	if err != nil {
		return domain.ListResult[*Transaction]{}, Summary{}, fmt.Errorf("summarize transactions: %w", err)
	}
	summary := Summary{Income: income, Expense: expense, Balance: income.Sub(expense)}
	return result, summary, nil
}

// CreateTransaction validates and appends a ledger entry.
func (s *Service) CreateTransaction(ctx context.Context, t *Transaction) error {
	if _, err := s.repo.GetByID(ctx, t.AccountID); err != nil {
		return err
	}
	if err := t.Validate(ctx); err != nil {
		return err
	}
	if err := s.txRepo.Create(ctx, t); err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}
	return nil
}

// DeleteTransaction removes one ledger entry belonging to the account.
func (s *Service) DeleteTransaction(ctx context.Context, accountID, txID id.ID) error {
	if _, err := s.repo.GetByID(ctx, accountID); err != nil {
		return err
	}
	if _, err := s.txRepo.GetByID(ctx, accountID, txID); err != nil {
		return err
	}
	return s.txRepo.Delete(ctx, txID)
}
