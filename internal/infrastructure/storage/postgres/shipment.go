package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"storeops/internal/core/apperror"
	"storeops/internal/core/id"
	"storeops/internal/domain"
	"storeops/internal/domain/shipment"
)

const (
	shipmentsTable     = "shipments"
	shipmentItemsTable = "shipment_items"
)

var shipmentSortable = map[string]string{
	"shipmentNumber":       "sh.shipment_number",
	"status":               "sh.status",
	"orderDate":            "sh.order_date",
	"expectedDeliveryDate": "sh.expected_delivery_date",
	"totalAmount":          "sh.total_amount",
	"createdAt":            "sh.created_at",
}

// shipmentRow carries the document plus joined store projections.
type shipmentRow struct {
	shipment.Shipment

	FromStoreName *string `db:"from_store_name"`
	FromStoreCode *string `db:"from_store_code"`
	ToStoreName   *string `db:"to_store_name"`
	ToStoreCode   *string `db:"to_store_code"`
}

func (row *shipmentRow) toShipment() *shipment.Shipment {
	sh := row.Shipment
	if row.FromStoreName != nil || row.FromStoreCode != nil {
		sh.FromStore = &shipment.StoreRef{}
		if row.FromStoreName != nil {
			sh.FromStore.Name = *row.FromStoreName
		}
		if row.FromStoreCode != nil {
			sh.FromStore.Code = *row.FromStoreCode
		}
	}
	if row.ToStoreName != nil || row.ToStoreCode != nil {
		sh.ToStore = &shipment.StoreRef{}
		if row.ToStoreName != nil {
			sh.ToStore.Name = *row.ToStoreName
		}
		if row.ToStoreCode != nil {
			sh.ToStore.Code = *row.ToStoreCode
		}
	}
	return &sh
}

// itemRow carries one item line plus its parent document id.
type itemRow struct {
	shipment.Item

	ShipmentID id.ID `db:"shipment_id"`
}

// ShipmentRepo persists shipment documents and their item lines.
type ShipmentRepo struct {
	pool *Pool
	cols []string
}

// NewShipmentRepo creates a shipment repository.
func NewShipmentRepo(pool *Pool) *ShipmentRepo {
	return &ShipmentRepo{
		pool: pool,
		cols: ExtractDBColumns[shipment.Shipment](),
	}
}

func (r *ShipmentRepo) selectQ() squirrel.SelectBuilder {
	cols := append(prefixColumns("sh", r.cols),
		"fs.name AS from_store_name",
		"fs.code AS from_store_code",
		"ts.name AS to_store_name",
		"ts.code AS to_store_code",
	)
	return Builder().
		Select(cols...).
		From(shipmentsTable + " sh").
		LeftJoin(storesTable + " fs ON fs.id = sh.from_store_id").
		LeftJoin(storesTable + " ts ON ts.id = sh.to_store_id")
}

func (r *ShipmentRepo) Create(ctx context.Context, sh *shipment.Shipment) error {
	q := Builder().
		Insert(shipmentsTable).
		SetMap(StructToMap(sh))

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return TranslateError(err, shipmentsTable)
	}
	return r.insertItems(ctx, sh.ID, sh.Items)
}

func (r *ShipmentRepo) insertItems(ctx context.Context, shipmentID id.ID, items []shipment.Item) error {
	if len(items) == 0 {
		return nil
	}
	q := Builder().
		Insert(shipmentItemsTable).
		Columns("shipment_id", "product_id", "quantity", "unit_price", "total_price")
	for _, it := range items {
		q = q.Values(shipmentID, it.ProductID, it.Quantity, it.UnitPrice, it.TotalPrice)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build items insert: %w", err)
	}
	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return TranslateError(err, shipmentItemsTable)
	}
	return nil
}

func (r *ShipmentRepo) loadItems(ctx context.Context, shipments []*shipment.Shipment) error {
	if len(shipments) == 0 {
		return nil
	}
	ids := make([]id.ID, len(shipments))
	byID := make(map[id.ID]*shipment.Shipment, len(shipments))
	for i, sh := range shipments {
		ids[i] = sh.ID
		byID[sh.ID] = sh
	}

	q := Builder().
		Select(
			"i.shipment_id",
			"i.product_id",
			"i.quantity",
			"i.unit_price",
			"i.total_price",
			"p.name AS product_name",
			"p.sku AS product_sku",
		).
		From(shipmentItemsTable + " i").
		LeftJoin(productsTable + " p ON p.id = i.product_id").
		Where(squirrel.Eq{"i.shipment_id": ids})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build items query: %w", err)
	}

	var rows []itemRow
	if err := pgxscan.Select(ctx, r.pool, &rows, sql, args...); err != nil {
		return fmt.Errorf("load shipment items: %w", err)
	}
	for _, row := range rows {
		if sh, ok := byID[row.ShipmentID]; ok {
			sh.Items = append(sh.Items, row.Item)
		}
	}
	return nil
}

func (r *ShipmentRepo) GetByID(ctx context.Context, shipmentID id.ID) (*shipment.Shipment, error) {
	q := r.selectQ().Where(squirrel.Eq{"sh.id": shipmentID})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row shipmentRow
	if err := pgxscan.Get(ctx, r.pool, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("shipment")
		}
		return nil, fmt.Errorf("get shipment: %w", err)
	}

	sh := row.toShipment()
	if err := r.loadItems(ctx, []*shipment.Shipment{sh}); err != nil {
		return nil, err
	}
	return sh, nil
}

// Update rewrites the document row; when Items is non-nil the item
// lines are replaced as well.
func (r *ShipmentRepo) Update(ctx context.Context, sh *shipment.Shipment) error {
	data := StructToMap(sh)
	delete(data, "id")

	q := Builder().
		Update(shipmentsTable).
		SetMap(data).
		Where(squirrel.Eq{"id": sh.ID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}
	res, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return TranslateError(err, shipmentsTable)
	}
	if res.RowsAffected() == 0 {
		return apperror.NewNotFound("shipment")
	}

	if sh.Items == nil {
		return nil
	}
	if err := r.deleteItems(ctx, sh.ID); err != nil {
		return err
	}
	return r.insertItems(ctx, sh.ID, sh.Items)
}

func (r *ShipmentRepo) deleteItems(ctx context.Context, shipmentID id.ID) error {
	q := Builder().
		Delete(shipmentItemsTable).
		Where(squirrel.Eq{"shipment_id": shipmentID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build items delete: %w", err)
	}
	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete shipment items: %w", err)
	}
	return nil
}

func (r *ShipmentRepo) Delete(ctx context.Context, shipmentID id.ID) error {
	q := Builder().
		Delete(shipmentsTable).
		Where(squirrel.Eq{"id": shipmentID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}
	res, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete shipment: %w", err)
	}
	if res.RowsAffected() == 0 {
		return apperror.NewNotFound("shipment")
	}
	return nil
}

func (r *ShipmentRepo) List(ctx context.Context, f shipment.Filter) (domain.ListResult[*shipment.Shipment], error) {
	result := domain.ListResult[*shipment.Shipment]{Page: f.Page, Limit: f.Limit}

	q := r.selectQ()
	if f.Status != "" {
		q = q.Where(squirrel.Eq{"sh.status": f.Status})
	}
	if f.FromStoreID != nil {
		q = q.Where(squirrel.Eq{"sh.from_store_id": *f.FromStoreID})
	}
	if f.ToStoreID != nil {
		q = q.Where(squirrel.Eq{"sh.to_store_id": *f.ToStoreID})
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"sh.shipment_number": pattern},
			squirrel.ILike{"sh.order_number": pattern},
			squirrel.ILike{"sh.tracking_number": pattern},
		})
	}

	total, err := countRows(ctx, r.pool, q)
	if err != nil {
		return result, err
	}
	result.Total = total

	q = q.OrderBy(orderClause(f.ListFilter, shipmentSortable, "sh.created_at DESC"))
	q = paginate(q, f.ListFilter)

	items, err := r.selectShipments(ctx, q)
	if err != nil {
		return result, err
	}
	result.Items = items
	return result, nil
}

func (r *ShipmentRepo) ListOverdue(ctx context.Context, now time.Time) ([]*shipment.Shipment, error) {
	q := r.selectQ().
		Where(squirrel.Lt{"sh.expected_delivery_date": now}).
		Where(squirrel.NotEq{"sh.status": []shipment.Status{
			shipment.StatusDelivered,
			shipment.StatusCancelled,
		}}).
		OrderBy("sh.expected_delivery_date ASC")

	return r.selectShipments(ctx, q)
}

func (r *ShipmentRepo) selectShipments(ctx context.Context, q squirrel.SelectBuilder) ([]*shipment.Shipment, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []shipmentRow
	if err := pgxscan.Select(ctx, r.pool, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}

	shipments := make([]*shipment.Shipment, len(rows))
	for i := range rows {
		shipments[i] = rows[i].toShipment()
	}
	if err := r.loadItems(ctx, shipments); err != nil {
		return nil, err
	}
	return shipments, nil
}

func (r *ShipmentRepo) LastNumber(ctx context.Context) (string, error) {
	q := Builder().
		Select("shipment_number").
		From(shipmentsTable).
		Where(squirrel.Expr(`shipment_number ~ '^SH\d+$'`)).
		OrderBy("shipment_number DESC").
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return "", fmt.Errorf("build query: %w", err)
	}

	var number string
	err = r.pool.QueryRow(ctx, sql, args...).Scan(&number)
	if err == pgx.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("last shipment number: %w", err)
	}
	return number, nil
}

func (r *ShipmentRepo) Stats(ctx context.Context) (shipment.Stats, error) {
	stats := shipment.Stats{
		TotalRevenue: decimal.Zero,
	}

	q := Builder().
		Select(
			"status",
			"COUNT(*) AS count",
			"COALESCE(SUM(total_amount), 0) AS total_amount",
		).
		From(shipmentsTable).
		GroupBy("status").
		OrderBy("status")

	sql, args, err := q.ToSql()
	if err != nil {
		return stats, fmt.Errorf("build stats query: %w", err)
	}
	if err := pgxscan.Select(ctx, r.pool, &stats.StatusBreakdown, sql, args...); err != nil {
		return stats, fmt.Errorf("shipment stats: %w", err)
	}

	for _, row := range stats.StatusBreakdown {
		stats.TotalShipments += row.Count
		if row.Status == shipment.StatusDelivered {
			stats.TotalRevenue = stats.TotalRevenue.Add(row.TotalAmount)
		}
	}
	return stats, nil
}
