package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"storeops/internal/core/apperror"
	"storeops/internal/core/id"
	"storeops/internal/domain"
	"storeops/internal/domain/category"
)

const categoriesTable = "categories"

var categorySortable = map[string]string{
	"name":      "name",
	"status":    "status",
	"createdAt": "created_at",
}

// CategoryRepo persists categories.
type CategoryRepo struct {
	pool *Pool
	cols []string
}

// NewCategoryRepo creates a category repository.
func NewCategoryRepo(pool *Pool) *CategoryRepo {
	return &CategoryRepo{
		pool: pool,
		cols: ExtractDBColumns[category.Category](),
	}
}

func (r *CategoryRepo) Create(ctx context.Context, c *category.Category) error {
	q := Builder().
		Insert(categoriesTable).
		SetMap(StructToMap(c))

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return TranslateError(err, categoriesTable)
	}
	return nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, categoryID id.ID) (*category.Category, error) {
	q := Builder().
		Select(r.cols...).
		From(categoriesTable).
		Where(squirrel.Eq{"id": categoryID})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var c category.Category
	if err := pgxscan.Get(ctx, r.pool, &c, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("category")
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

func (r *CategoryRepo) Update(ctx context.Context, c *category.Category) error {
	data := StructToMap(c)
	delete(data, "id")

	q := Builder().
		Update(categoriesTable).
		SetMap(data).
		Where(squirrel.Eq{"id": c.ID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}
	res, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return TranslateError(err, categoriesTable)
	}
	if res.RowsAffected() == 0 {
		return apperror.NewNotFound("category")
	}
	return nil
}

func (r *CategoryRepo) Delete(ctx context.Context, categoryID id.ID) error {
	q := Builder().
		Delete(categoriesTable).
		Where(squirrel.Eq{"id": categoryID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}
	res, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return TranslateDeleteError(err, "category has products; move or delete them first")
	}
	if res.RowsAffected() == 0 {
		return apperror.NewNotFound("category")
	}
	return nil
}

func (r *CategoryRepo) List(ctx context.Context, f category.Filter) (domain.ListResult[*category.Category], error) {
	result := domain.ListResult[*category.Category]{Page: f.Page, Limit: f.Limit}

	q := Builder().
		Select(r.cols...).
		From(categoriesTable)

	if f.Status != "" {
		q = q.Where(squirrel.Eq{"status": f.Status})
	}
	if f.Search != "" {
		q = q.Where(squirrel.ILike{"name": "%" + f.Search + "%"})
	}

	total, err := countRows(ctx, r.pool, q)
	if err != nil {
		return result, err
	}
	result.Total = total

	q = q.OrderBy(orderClause(f.ListFilter, categorySortable, "name ASC"))
	q = paginate(q, f.ListFilter)

	sql, args, err := q.ToSql()
	if err != nil {
		return result, fmt.Errorf("build query: %w", err)
	}
	if err := pgxscan.Select(ctx, r.pool, &result.Items, sql, args...); err != nil {
		return result, fmt.Errorf("list categories: %w", err)
	}
	return result, nil
}

func (r *CategoryRepo) CountProducts(ctx context.Context, categoryID id.ID) (int64, error) {
	q := Builder().
		Select("COUNT(*)").
		From(productsTable).
		Where(squirrel.Eq{"category_id": categoryID})

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var n int64
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}
