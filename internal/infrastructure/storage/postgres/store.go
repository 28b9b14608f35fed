package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"storeops/internal/core/apperror"
	"storeops/internal/core/id"
	"storeops/internal/domain"
	"storeops/internal/domain/store"
)

const storesTable = "stores"

var storeSortable = map[string]string{
	"name":      "name",
	"code":      "code",
	"type":      "type",
	"status":    "status",
	"createdAt": "created_at",
}

// StoreRepo persists stores. Contact and address live in JSONB columns.
type StoreRepo struct {
	pool *Pool
	cols []string
}

// NewStoreRepo creates a store repository.
func NewStoreRepo(pool *Pool) *StoreRepo {
	return &StoreRepo{
		pool: pool,
		cols: ExtractDBColumns[store.Store](),
	}
}

func (r *StoreRepo) Create(ctx context.Context, s *store.Store) error {
	q := Builder().
		Insert(storesTable).
		SetMap(StructToMap(s))

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return TranslateError(err, storesTable)
	}
	return nil
}

func (r *StoreRepo) GetByID(ctx context.Context, storeID id.ID) (*store.Store, error) {
	q := Builder().
		Select(r.cols...).
		From(storesTable).
		Where(squirrel.Eq{"id": storeID})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var s store.Store
	if err := pgxscan.Get(ctx, r.pool, &s, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("store")
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &s, nil
}

func (r *StoreRepo) Update(ctx context.Context, s *store.Store) error {
	data := StructToMap(s)
	delete(data, "id")

	q := Builder().
		Update(storesTable).
		SetMap(data).
		Where(squirrel.Eq{"id": s.ID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}
	res, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return TranslateError(err, storesTable)
	}
	if res.RowsAffected() == 0 {
		return apperror.NewNotFound("store")
	}
	return nil
}

func (r *StoreRepo) Delete(ctx context.Context, storeID id.ID) error {
	q := Builder().
		Delete(storesTable).
		Where(squirrel.Eq{"id": storeID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}
	res, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return TranslateDeleteError(err, "store has shipments or stock movements; remove them first")
	}
	if res.RowsAffected() == 0 {
		return apperror.NewNotFound("store")
	}
	return nil
}

func (r *StoreRepo) List(ctx context.Context, f store.Filter) (domain.ListResult[*store.Store], error) {
	result := domain.ListResult[*store.Store]{Page: f.Page, Limit: f.Limit}

	q := Builder().
		Select(r.cols...).
		From(storesTable)

	if f.Type != "" {
		q = q.Where(squirrel.Eq{"type": f.Type})
	}
	if f.Status != "" {
		q = q.Where(squirrel.Eq{"status": f.Status})
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"code": pattern},
		})
	}

	total, err := countRows(ctx, r.pool, q)
	if err != nil {
		return result, err
	}
	result.Total = total

	q = q.OrderBy(orderClause(f.ListFilter, storeSortable, "name ASC"))
	q = paginate(q, f.ListFilter)

	sql, args, err := q.ToSql()
	if err != nil {
		return result, fmt.Errorf("build query: %w", err)
	}
	if err := pgxscan.Select(ctx, r.pool, &result.Items, sql, args...); err != nil {
		return result, fmt.Errorf("list stores: %w", err)
	}
	return result, nil
}

func (r *StoreRepo) Exists(ctx context.Context, storeID id.ID) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"id": storeID})
}

func (r *StoreRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"code": code})
}

func (r *StoreRepo) exists(ctx context.Context, cond squirrel.Eq) (bool, error) {
	q := Builder().
		Select("1").
		From(storesTable).
		Where(cond).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var one int
	err = r.pool.QueryRow(ctx, sql, args...).Scan(&one)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store exists: %w", err)
	}
	return true, nil
}
