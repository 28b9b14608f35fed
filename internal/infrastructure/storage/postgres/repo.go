package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"storeops/internal/domain"
)

// Builder returns a squirrel builder with PostgreSQL placeholder format.
func Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// countRows wraps q in SELECT COUNT(*) and executes it. Call before
// applying ordering and pagination.
func countRows(ctx context.Context, pool *Pool, q squirrel.SelectBuilder) (int64, error) {
	countQ := Builder().
		Select("COUNT(*)").
		FromSelect(q, "sub")

	sql, args, err := countQ.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var total int64
	if err := pool.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return total, nil
}

// orderClause builds an ORDER BY clause from the filter's sort fields.
// sortable maps the API sort key to the real column; unknown keys fall
// back to fallback, which must already include a direction.
func orderClause(f domain.ListFilter, sortable map[string]string, fallback string) string {
	col, ok := sortable[f.SortBy]
	if !ok {
		return fallback
	}
	dir := "DESC"
	if f.SortOrder == domain.SortAsc {
		dir = "ASC"
	}
	return col + " " + dir
}

// paginate applies LIMIT/OFFSET from an already normalized filter.
func paginate(q squirrel.SelectBuilder, f domain.ListFilter) squirrel.SelectBuilder {
	return q.Limit(uint64(f.Limit)).Offset(uint64(f.Offset()))
}

// prefixColumns qualifies every column with a table alias.
func prefixColumns(alias string, cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = alias + "." + c
	}
	return out
}
