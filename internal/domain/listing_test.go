package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListFilter_Normalize(t *testing.T) {
	tests := []struct {
		name      string
		in        ListFilter
		wantPage  int
		wantLimit int
	}{
		{"defaults applied", ListFilter{}, 1, 10},
		{"negative page", ListFilter{Page: -3, Limit: 20}, 1, 20},
		{"zero limit", ListFilter{Page: 2}, 2, 10},
		{"valid untouched", ListFilter{Page: 4, Limit: 50}, 4, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Normalize(10)
			assert.Equal(t, tt.wantPage, tt.in.Page)
			assert.Equal(t, tt.wantLimit, tt.in.Limit)
		})
	}
}

func TestListFilter_Normalize_SortOrder(t *testing.T) {
	f := ListFilter{SortOrder: "sideways"}
	f.Normalize(10)
	assert.Empty(t, f.SortOrder)

	f = ListFilter{SortOrder: SortDesc}
	f.Normalize(10)
	assert.Equal(t, SortDesc, f.SortOrder)
}

func TestListFilter_Offset(t *testing.T) {
	f := ListFilter{Page: 3, Limit: 20}
	assert.Equal(t, 40, f.Offset())
}

func TestListResult_Pages(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 10, 10},
		{5, 0, 0},
	}
	for _, tt := range tests {
		r := ListResult[int]{Total: tt.total, Limit: tt.limit}
		assert.Equal(t, tt.want, r.Pages(), "total=%d limit=%d", tt.total, tt.limit)
	}
}
