package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storeops/internal/core/apperror"
)

func TestTranslateErrorUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "products_sku_key"}

	err := TranslateError(pgErr, "products")

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDuplicate, appErr.Code)
	assert.Equal(t, "sku already in use", appErr.Message)
	assert.Equal(t, 400, appErr.HTTPStatus)
}

func TestTranslateErrorForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "products_category_id_fkey"}

	err := TranslateError(pgErr, "products")

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestTranslateErrorPassthrough(t *testing.T) {
	plain := errors.New("connection refused")
	assert.Equal(t, plain, TranslateError(plain, "products"))
	assert.NoError(t, TranslateError(nil, "products"))
}

func TestTranslateDeleteError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503"}

	err := TranslateDeleteError(pgErr, "account has transactions; delete them first")

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDependentRecords, appErr.Code)
	assert.Equal(t, "account has transactions; delete them first", appErr.Message)

	plain := errors.New("boom")
	assert.Equal(t, plain, TranslateDeleteError(plain, "x"))
}

func TestConstraintColumn(t *testing.T) {
	assert.Equal(t, "sku", constraintColumn("products_sku_key", "products"))
	assert.Equal(t, "shipment_number", constraintColumn("shipments_shipment_number_key", "shipments"))
	assert.Equal(t, "custom_constraint", constraintColumn("custom_constraint", "products"))
}
