package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storeops/internal/domain/product"
	"storeops/internal/domain/store"
)

func TestExtractDBColumns_Product(t *testing.T) {
	cols := ExtractDBColumns[product.Product]()

	// embedded base fields are flattened
	assert.Contains(t, cols, "id")
	assert.Contains(t, cols, "created_at")
	assert.Contains(t, cols, "updated_at")

	assert.Contains(t, cols, "sku")
	assert.Contains(t, cols, "purchase_price")
	assert.Contains(t, cols, "stock_quantity")
}

func TestStructToMap(t *testing.T) {
	st := store.New("Central")
	st.Code = "CEN1"

	m := StructToMap(st)
	assert.Equal(t, "Central", m["name"])
	assert.Equal(t, "CEN1", m["code"])
	assert.Equal(t, st.ID, m["id"])
	_, hasContact := m["contact"]
	assert.True(t, hasContact)
}

func TestStructToMap_NonStruct(t *testing.T) {
	assert.Nil(t, StructToMap(42))
}

func TestStructToMap_CachedSecondCall(t *testing.T) {
	first := StructToMap(store.New("A"))
	second := StructToMap(store.New("B"))
	assert.Equal(t, len(first), len(second))
	assert.Equal(t, "B", second["name"])
}
