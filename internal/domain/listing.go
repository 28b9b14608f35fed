// Package domain provides shared business types for list operations.
package domain

// SortOrder direction for list sorting.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// ListFilter contains common filtering options for list operations.
// Resource packages embed it and add their own filter fields.
type ListFilter struct {
	// Page is the 1-based page number
	Page int

	// Limit is the page size
	Limit int

	// SortBy names the column to sort on (whitelisted per resource)
	SortBy string

	// SortOrder is "asc" or "desc"
	SortOrder string

	// Search performs a case-insensitive substring match on
	// the resource's searchable fields
	Search string
}

// Normalize silently replaces malformed pagination values with defaults.
func (f *ListFilter) Normalize(defaultLimit int) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = defaultLimit
	}
	if f.SortOrder != SortAsc && f.SortOrder != SortDesc {
		f.SortOrder = ""
	}
}

// Offset returns the row offset for the current page.
func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// ListResult contains one page of results plus pagination totals.
type ListResult[T any] struct {
	Items []T
	Total int64
	Page  int
	Limit int
}

// Pages returns the total page count, ceil(Total/Limit).
func (r ListResult[T]) Pages() int {
	if r.Limit <= 0 {
		return 0
	}
	return int((r.Total + int64(r.Limit) - 1) / int64(r.Limit))
}
