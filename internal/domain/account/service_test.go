package account

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storeops/internal/core/apperror"
	"storeops/internal/core/id"
	"storeops/internal/domain"
)

type mockAccountRepo struct {
	accounts map[id.ID]*Account
	codes    map[string]bool
	deleted  []id.ID
}

func newMockAccountRepo() *mockAccountRepo {
	return &mockAccountRepo{accounts: make(map[id.ID]*Account), codes: make(map[string]bool)}
}

func (m *mockAccountRepo) Create(ctx context.Context, a *Account) error {
	m.accounts[a.ID] = a
	m.codes[a.Code] = true
	return nil
}

func (m *mockAccountRepo) GetByID(ctx context.Context, accountID id.ID) (*Account, error) {
	a, ok := m.accounts[accountID]
	if !ok {
		return nil, apperror.NewNotFound("account")
	}
	return a, nil
}

func (m *mockAccountRepo) Update(ctx context.Context, a *Account) error {
	m.accounts[a.ID] = a
	return nil
}

func (m *mockAccountRepo) Delete(ctx context.Context, accountID id.ID) error {
	delete(m.accounts, accountID)
	m.deleted = append(m.deleted, accountID)
	return nil
}

func (m *mockAccountRepo) List(ctx context.Context, f Filter) (domain.ListResult[*Account], error) {
	return domain.ListResult[*Account]{Page: f.Page, Limit: f.Limit}, nil
}

func (m *mockAccountRepo) Exists(ctx context.Context, accountID id.ID) (bool, error) {
	_, ok := m.accounts[accountID]
	return ok, nil
}

func (m *mockAccountRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return m.codes[code], nil
}

type mockTxRepo struct {
	txs     map[id.ID]*Transaction
	income  decimal.Decimal
	expense decimal.Decimal
}

func newMockTxRepo() *mockTxRepo {
	return &mockTxRepo{txs: make(map[id.ID]*Transaction)}
}

func (m *mockTxRepo) Create(ctx context.Context, t *Transaction) error {
	m.txs[t.ID] = t
	return nil
}

func (m *mockTxRepo) GetByID(ctx context.Context, accountID, txID id.ID) (*Transaction, error) {
	t, ok := m.txs[txID]
	if !ok || t.AccountID != accountID {
		return nil, apperror.NewNotFound("transaction")
	}
	return t, nil
}

func (m *mockTxRepo) Delete(ctx context.Context, txID id.ID) error {
	delete(m.txs, txID)
	return nil
}

func (m *mockTxRepo) List(ctx context.Context, f TxFilter) (domain.ListResult[*Transaction], error) {
	items := make([]*Transaction, 0, len(m.txs))
	for _, t := range m.txs {
		items = append(items, t)
	}
	return domain.ListResult[*Transaction]{Items: items, Total: int64(len(items)), Page: f.Page, Limit: f.Limit}, nil
}

func (m *mockTxRepo) CountByAccount(ctx context.Context, accountID id.ID) (int64, error) {
	var n int64
	for _, t := range m.txs {
		if t.AccountID == accountID {
			n++
		}
	}
	return n, nil
}

func (m *mockTxRepo) SumByType(ctx context.Context, f TxFilter) (decimal.Decimal, decimal.Decimal, error) {
	return m.income, m.expense, nil
}

func TestGetByID_BalanceFromOpeningAndLedger(t *testing.T) {
	repo := newMockAccountRepo()
	txRepo := newMockTxRepo()
	txRepo.income = decimal.NewFromInt(500)
	txRepo.expense = decimal.NewFromInt(200)
	svc := NewService(repo, txRepo)

	a := New("Acme Ltd")
	a.OpeningBalance = decimal.NewFromInt(1000)
	require.NoError(t, svc.Create(context.Background(), a))

	got, summary, err := svc.GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
	assert.True(t, summary.Balance.Equal(decimal.NewFromInt(1300)),
		"balance = opening + income - expense, got %s", summary.Balance)
}

func TestDelete_RefusedWithTransactions(t *testing.T) {
	repo := newMockAccountRepo()
	txRepo := newMockTxRepo()
	svc := NewService(repo, txRepo)

	a := New("Acme Ltd")
	require.NoError(t, svc.Create(context.Background(), a))
	tx := NewTransaction(a.ID, TxIncome, decimal.NewFromInt(50))
	require.NoError(t, svc.CreateTransaction(context.Background(), tx))

	err := svc.Delete(context.Background(), a.ID)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDependentRecords, appErr.Code)
	assert.Empty(t, repo.deleted)
}

func TestDelete_EmptyLedger(t *testing.T) {
	repo := newMockAccountRepo()
	svc := NewService(repo, newMockTxRepo())

	a := New("Acme Ltd")
	require.NoError(t, svc.Create(context.Background(), a))
	require.NoError(t, svc.Delete(context.Background(), a.ID))
	assert.Equal(t, []id.ID{a.ID}, repo.deleted)
}

func TestCreate_AutoCode(t *testing.T) {
	repo := newMockAccountRepo()
	svc := NewService(repo, newMockTxRepo())

	a := New("Walk-in Customer")
	require.NoError(t, svc.Create(context.Background(), a))
	assert.Len(t, a.Code, 6)
}

func TestTransactionValidate(t *testing.T) {
	accID := id.New()
	tests := []struct {
		name    string
		tx      *Transaction
		wantErr bool
	}{
		{"valid income", NewTransaction(accID, TxIncome, decimal.NewFromFloat(0.01)), false},
		{"valid expense", NewTransaction(accID, TxExpense, decimal.NewFromInt(25)), false},
		{"amount below minimum", NewTransaction(accID, TxIncome, decimal.NewFromFloat(0.004)), true},
		{"bad type", NewTransaction(accID, "transfer", decimal.NewFromInt(10)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDeleteTransaction_WrongAccount(t *testing.T) {
	repo := newMockAccountRepo()
	txRepo := newMockTxRepo()
	svc := NewService(repo, txRepo)

	a := New("Acme Ltd")
	b := New("Globex")
	require.NoError(t, svc.Create(context.Background(), a))
	require.NoError(t, svc.Create(context.Background(), b))
	tx := NewTransaction(a.ID, TxIncome, decimal.NewFromInt(10))
	require.NoError(t, svc.CreateTransaction(context.Background(), tx))

	err := svc.DeleteTransaction(context.Background(), b.ID, tx.ID)
	assert.True(t, apperror.IsNotFound(err))
}

func TestListTransactions_FilteredSummary(t *testing.T) {
	repo := newMockAccountRepo()
	txRepo := newMockTxRepo()
	txRepo.income = decimal.NewFromInt(120)
	txRepo.expense = decimal.NewFromInt(20)
	svc := NewService(repo, txRepo)

	a := New("Acme Ltd")
	require.NoError(t, svc.Create(context.Background(), a))

	_, summary, err := svc.ListTransactions(context.Background(), TxFilter{AccountID: a.ID})
	require.NoError(t, err)
	// list summary ignores the opening balance
	assert.True(t, summary.Balance.Equal(decimal.NewFromInt(100)))
}
