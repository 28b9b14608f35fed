package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"storeops/internal/domain"
	"storeops/internal/domain/stockmovement"
)

const movementsTable = "stock_movements"

var movementSortable = map[string]string{
	"createdAt": "m.created_at",
	"quantity":  "m.quantity",
	"direction": "m.direction",
}

// MovementRepo persists the stock ledger. Rows are append-only.
type MovementRepo struct {
	pool *Pool

	// storeCols excludes the join-projected product/store columns
	storeCols []string
}

// NewMovementRepo creates a stock movement repository.
func NewMovementRepo(pool *Pool) *MovementRepo {
	return &MovementRepo{
		pool: pool,
		storeCols: ExcludeColumns(
			ExtractDBColumns[stockmovement.Movement](),
			"product_name", "product_sku", "store_name", "store_code",
		),
	}
}

func (r *MovementRepo) Create(ctx context.Context, m *stockmovement.Movement) error {
	q := Builder().
		Insert(movementsTable).
		SetMap(StructToMap(m))

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return TranslateError(err, movementsTable)
	}
	return nil
}

func (r *MovementRepo) List(ctx context.Context, f stockmovement.Filter) (domain.ListResult[*stockmovement.Movement], error) {
	result := domain.ListResult[*stockmovement.Movement]{Page: f.Page, Limit: f.Limit}

	cols := append(prefixColumns("m", r.storeCols),
		"p.name AS product_name",
		"p.sku AS product_sku",
		"s.name AS store_name",
		"s.code AS store_code",
	)
	q := Builder().
		Select(cols...).
		From(movementsTable + " m").
		LeftJoin(productsTable + " p ON p.id = m.product_id").
		LeftJoin(storesTable + " s ON s.id = m.store_id")

	if f.ProductID != nil {
		q = q.Where(squirrel.Eq{"m.product_id": *f.ProductID})
	}
	if f.StoreID != nil {
		q = q.Where(squirrel.Eq{"m.store_id": *f.StoreID})
	}
	if f.Direction != "" {
		q = q.Where(squirrel.Eq{"m.direction": f.Direction})
	}
	if f.ReferenceType != "" {
		q = q.Where(squirrel.Eq{"m.reference_type": f.ReferenceType})
	}

	total, err := countRows(ctx, r.pool, q)
	if err != nil {
		return result, err
	}
	result.Total = total

	q = q.OrderBy(orderClause(f.ListFilter, movementSortable, "m.created_at DESC"))
	q = paginate(q, f.ListFilter)

	sql, args, err := q.ToSql()
	if err != nil {
		return result, fmt.Errorf("build query: %w", err)
	}
	if err := pgxscan.Select(ctx, r.pool, &result.Items, sql, args...); err != nil {
		return result, fmt.Errorf("list movements: %w", err)
	}
	return result, nil
}
