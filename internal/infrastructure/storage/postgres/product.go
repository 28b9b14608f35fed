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
	"storeops/internal/domain/product"
)

const productsTable = "products"

var productSortable = map[string]string{
	"name":          "p.name",
	"sku":           "p.sku",
	"brand":         "p.brand",
	"sellingPrice":  "p.selling_price",
	"stockQuantity": "p.stock_quantity",
	"views":         "p.views",
	"createdAt":     "p.created_at",
}

// ProductRepo persists products. Reads join the category name in.
type ProductRepo struct {
	pool *Pool

	// storeCols excludes the join-projected category_name
	storeCols []string
}

// NewProductRepo creates a product repository.
func NewProductRepo(pool *Pool) *ProductRepo {
	return &ProductRepo{
		pool:      pool,
		storeCols: ExcludeColumns(ExtractDBColumns[product.Product](), "category_name"),
	}
}

func (r *ProductRepo) selectQ() squirrel.SelectBuilder {
	cols := append(prefixColumns("p", r.storeCols), "c.name AS category_name")
	return Builder().
		Select(cols...).
		From(productsTable + " p").
		LeftJoin(categoriesTable + " c ON c.id = p.category_id")
}

func (r *ProductRepo) Create(ctx context.Context, p *product.Product) error {
	data := StructToMap(p)
	delete(data, "category_name")

	q := Builder().
		Insert(productsTable).
		SetMap(data)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return TranslateError(err, productsTable)
	}
	return nil
}

func (r *ProductRepo) GetByID(ctx context.Context, productID id.ID) (*product.Product, error) {
	q := r.selectQ().Where(squirrel.Eq{"p.id": productID})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var p product.Product
	if err := pgxscan.Get(ctx, r.pool, &p, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("product")
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func (r *ProductRepo) Update(ctx context.Context, p *product.Product) error {
	data := StructToMap(p)
	delete(data, "id")
	delete(data, "category_name")
	delete(data, "views")

	q := Builder().
		Update(productsTable).
		SetMap(data).
		Where(squirrel.Eq{"id": p.ID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}
	res, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return TranslateError(err, productsTable)
	}
	if res.RowsAffected() == 0 {
		return apperror.NewNotFound("product")
	}
	return nil
}

func (r *ProductRepo) Delete(ctx context.Context, productID id.ID) error {
	q := Builder().
		Delete(productsTable).
		Where(squirrel.Eq{"id": productID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}
	res, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return TranslateDeleteError(err, "product is referenced by shipments or stock movements")
	}
	if res.RowsAffected() == 0 {
		return apperror.NewNotFound("product")
	}
	return nil
}

func (r *ProductRepo) List(ctx context.Context, f product.Filter) (domain.ListResult[*product.Product], error) {
	result := domain.ListResult[*product.Product]{Page: f.Page, Limit: f.Limit}

	q := r.selectQ()
	if f.CategoryID != nil {
		q = q.Where(squirrel.Eq{"p.category_id": *f.CategoryID})
	}
	if f.Status != "" {
		q = q.Where(squirrel.Eq{"p.status": f.Status})
	}
	if f.Brand != "" {
		q = q.Where(squirrel.ILike{"p.brand": f.Brand})
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"p.name": pattern},
			squirrel.ILike{"p.sku": pattern},
			squirrel.ILike{"p.barcode": pattern},
			squirrel.ILike{"p.brand": pattern},
		})
	}

	total, err := countRows(ctx, r.pool, q)
	if err != nil {
		return result, err
	}
	result.Total = total

	q = q.OrderBy(orderClause(f.ListFilter, productSortable, "p.created_at DESC"))
	q = paginate(q, f.ListFilter)

	sql, args, err := q.ToSql()
	if err != nil {
		return result, fmt.Errorf("build query: %w", err)
	}
	if err := pgxscan.Select(ctx, r.pool, &result.Items, sql, args...); err != nil {
		return result, fmt.Errorf("list products: %w", err)
	}
	return result, nil
}

func (r *ProductRepo) ListLowStock(ctx context.Context) ([]*product.Product, error) {
	q := r.selectQ().
		Where(squirrel.Expr("p.stock_quantity <= p.min_stock_level")).
		Where(squirrel.Eq{"p.status": product.StatusActive}).
		OrderBy("p.stock_quantity ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []*product.Product
	if err := pgxscan.Select(ctx, r.pool, &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	return items, nil
}

func (r *ProductRepo) ListAll(ctx context.Context) ([]*product.Product, error) {
	q := r.selectQ().OrderBy("p.created_at DESC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []*product.Product
	if err := pgxscan.Select(ctx, r.pool, &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list all products: %w", err)
	}
	return items, nil
}

func (r *ProductRepo) Exists(ctx context.Context, productID id.ID) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"id": productID})
}

func (r *ProductRepo) ExistsByBarcode(ctx context.Context, barcode string) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"barcode": barcode})
}

func (r *ProductRepo) exists(ctx context.Context, cond squirrel.Eq) (bool, error) {
	q := Builder().
		Select("1").
		From(productsTable).
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
		return false, fmt.Errorf("product exists: %w", err)
	}
	return true, nil
}

func (r *ProductRepo) IncrementViews(ctx context.Context, productID id.ID) error {
	q := Builder().
		Update(productsTable).
		Set("views", squirrel.Expr("views + 1")).
		Where(squirrel.Eq{"id": productID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}
	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	return nil
}

func (r *ProductRepo) AdjustStock(ctx context.Context, productID id.ID, delta int) error {
	q := Builder().
		Update(productsTable).
		Set("stock_quantity", squirrel.Expr("GREATEST(0, stock_quantity + ?)", delta)).
		Where(squirrel.Eq{"id": productID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}
	res, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	if res.RowsAffected() == 0 {
		return apperror.NewNotFound("product")
	}
	return nil
}
