package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storeops/internal/core/apperror"
	"storeops/internal/core/id"
	"storeops/internal/domain"
	"storeops/internal/domain/account"
)

type mockAccountRepo struct {
	accounts map[id.ID]*account.Account
}

func (m *mockAccountRepo) Create(ctx context.Context, a *account.Account) error {
	m.accounts[a.ID] = a
	return nil
}

func (m *mockAccountRepo) GetByID(ctx context.Context, accountID id.ID) (*account.Account, error) {
	a, ok := m.accounts[accountID]
	if !ok {
		return nil, apperror.NewNotFound("account")
	}
	return a, nil
}

func (m *mockAccountRepo) Update(ctx context.Context, a *account.Account) error {
	m.accounts[a.ID] = a
	return nil
}

func (m *mockAccountRepo) Delete(ctx context.Context, accountID id.ID) error {
	delete(m.accounts, accountID)
	return nil
}

func (m *mockAccountRepo) List(ctx context.Context, f account.Filter) (domain.ListResult[*account.Account], error) {
	return domain.ListResult[*account.Account]{Page: f.Page, Limit: f.Limit}, nil
}

func (m *mockAccountRepo) Exists(ctx context.Context, accountID id.ID) (bool, error) {
	_, ok := m.accounts[accountID]
	return ok, nil
}

func (m *mockAccountRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return false, nil
}

type mockTransactionRepo struct {
	income  decimal.Decimal
	expense decimal.Decimal
}

func (m *mockTransactionRepo) Create(ctx context.Context, t *account.Transaction) error {
	return nil
}

func (m *mockTransactionRepo) GetByID(ctx context.Context, accountID, txID id.ID) (*account.Transaction, error) {
	return nil, apperror.NewNotFound("transaction")
}

func (m *mockTransactionRepo) Delete(ctx context.Context, txID id.ID) error {
	return nil
}

func (m *mockTransactionRepo) List(ctx context.Context, f account.TxFilter) (domain.ListResult[*account.Transaction], error) {
	return domain.ListResult[*account.Transaction]{Page: f.Page, Limit: f.Limit}, nil
}

func (m *mockTransactionRepo) CountByAccount(ctx context.Context, accountID id.ID) (int64, error) {
	return 0, nil
}

func (m *mockTransactionRepo) SumByType(ctx context.Context, f account.TxFilter) (decimal.Decimal, decimal.Decimal, error) {
	return m.income, m.expense, nil
}

func TestAccountGetNestsAccountAndSummaryUnderData(t *testing.T) {
	gin.SetMode(gin.TestMode)

	a := account.New("Acme Wholesale")
	a.OpeningBalance = decimal.NewFromInt(1000)
	repo := &mockAccountRepo{accounts: map[id.ID]*account.Account{a.ID: a}}
	txRepo := &mockTransactionRepo{
		income:  decimal.NewFromInt(500),
		expense: decimal.NewFromInt(200),
	}

	h := NewAccountHandler(NewBaseHandler(), account.NewService(repo, txRepo))
	router := gin.New()
	router.GET("/api/accounts/:id", h.Get)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/accounts/"+a.ID.String(), nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.NotContains(t, resp, "summary")

	data, ok := resp["data"].(map[string]any)
	require.True(t, ok)

	acc, ok := data["account"].(map[string]any)
	require.True(t, ok, "account must be nested under data")
	assert.Equal(t, "Acme Wholesale", acc["name"])

	summary, ok := data["summary"].(map[string]any)
	require.True(t, ok, "summary must be nested under data")
	assert.Equal(t, "500", summary["income"])
	assert.Equal(t, "200", summary["expense"])
	assert.Equal(t, "1300", summary["balance"])
}
