package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storeops/internal/core/id"
	"storeops/internal/domain/account"
)

func TestTransactionFilterSearchMatchesDescription(t *testing.T) {
	repo := NewTransactionRepo(nil)

	f := account.TxFilter{AccountID: id.New()}
	f.Search = "rent"

	sql, args, err := repo.filteredQ(f).ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "description ILIKE")
	assert.Contains(t, args, "%rent%")
}

func TestTransactionFilterWithoutSearch(t *testing.T) {
	repo := NewTransactionRepo(nil)

	sql, _, err := repo.filteredQ(account.TxFilter{AccountID: id.New()}).ToSql()
	require.NoError(t, err)
	assert.NotContains(t, sql, "ILIKE")
}
