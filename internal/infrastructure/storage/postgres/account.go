package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"storeops/internal/core/apperror"
	"storeops/internal/core/id"
	"storeops/internal/domain"
	"storeops/internal/domain/account"
)

const (
	accountsTable     = "accounts"
	transactionsTable = "account_transactions"
)

var accountSortable = map[string]string{
	"name":           "name",
	"code":           "code",
	"type":           "type",
	"status":         "status",
	"openingBalance": "opening_balance",
	"createdAt":      "created_at",
}

var transactionSortable = map[string]string{
	"date":      "date",
	"amount":    "amount",
	"type":      "type",
	"category":  "category",
	"createdAt": "created_at",
}

// AccountRepo persists ledger accounts.
type AccountRepo struct {
	pool *Pool
	cols []string
}

// NewAccountRepo creates an account repository.
func NewAccountRepo(pool *Pool) *AccountRepo {
	return &AccountRepo{
		pool: pool,
		cols: ExtractDBColumns[account.Account](),
	}
}

func (r *AccountRepo) Create(ctx context.Context, a *account.Account) error {
	q := Builder().
		Insert(accountsTable).
		SetMap(StructToMap(a))

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return TranslateError(err, accountsTable)
	}
	return nil
}

func (r *AccountRepo) GetByID(ctx context.Context, accountID id.ID) (*account.Account, error) {
	q := Builder().
		Select(r.cols...).
		From(accountsTable).
		Where(squirrel.Eq{"id": accountID})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var a account.Account
	if err := pgxscan.Get(ctx, r.pool, &a, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("account")
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &a, nil
}

func (r *AccountRepo) Update(ctx context.Context, a *account.Account) error {
	data := StructToMap(a)
	delete(data, "id")

	q := Builder().
		Update(accountsTable).
		SetMap(data).
		Where(squirrel.Eq{"id": a.ID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}
	res, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return TranslateError(err, accountsTable)
	}
	if res.RowsAffected() == 0 {
		return apperror.NewNotFound("account")
	}
	return nil
}

func (r *AccountRepo) Delete(ctx context.Context, accountID id.ID) error {
	q := Builder().
		Delete(accountsTable).
		Where(squirrel.Eq{"id": accountID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}
	res, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return TranslateDeleteError(err, "account has transactions; delete them first")
	}
	if res.RowsAffected() == 0 {
		return apperror.NewNotFound("account")
	}
	return nil
}

func (r *AccountRepo) List(ctx context.Context, f account.Filter) (domain.ListResult[*account.Account], error) {
	result := domain.ListResult[*account.Account]{Page: f.Page, Limit: f.Limit}

	q := Builder().
		Select(r.cols...).
		From(accountsTable)

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

	q = q.OrderBy(orderClause(f.ListFilter, accountSortable, "name ASC"))
	q = paginate(q, f.ListFilter)

	sql, args, err := q.ToSql()
	if err != nil {
		return result, fmt.Errorf("build query: %w", err)
	}
	if err := pgxscan.Select(ctx, r.pool, &result.Items, sql, args...); err != nil {
		return result, fmt.Errorf("list accounts: %w", err)
	}
	return result, nil
}

func (r *AccountRepo) Exists(ctx context.Context, accountID id.ID) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"id": accountID})
}

func (r *AccountRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"code": code})
}

func (r *AccountRepo) exists(ctx context.Context, cond squirrel.Eq) (bool, error) {
	q := Builder().
		Select("1").
		From(accountsTable).
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
		return false, fmt.Errorf("account exists: %w", err)
	}
	return true, nil
}

// TransactionRepo persists account ledger entries.
type TransactionRepo struct {
	pool *Pool
	cols []string
}

// NewTransactionRepo creates a transaction repository.
func NewTransactionRepo(pool *Pool) *TransactionRepo {
	return &TransactionRepo{
		pool: pool,
		cols: ExtractDBColumns[account.Transaction](),
	}
}

func (r *TransactionRepo) Create(ctx context.Context, t *account.Transaction) error {
	q := Builder().
		Insert(transactionsTable).
		SetMap(StructToMap(t))

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return TranslateError(err, transactionsTable)
	}
	return nil
}

func (r *TransactionRepo) GetByID(ctx context.Context, accountID, txID id.ID) (*account.Transaction, error) {
	q := Builder().
		Select(r.cols...).
		From(transactionsTable).
		Where(squirrel.Eq{"id": txID, "account_id": accountID})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var t account.Transaction
	if err := pgxscan.Get(ctx, r.pool, &t, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("transaction")
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &t, nil
}

func (r *TransactionRepo) Delete(ctx context.Context, txID id.ID) error {
	q := Builder().
		Delete(transactionsTable).
		Where(squirrel.Eq{"id": txID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}
	res, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if res.RowsAffected() == 0 {
		return apperror.NewNotFound("transaction")
	}
	return nil
}

func (r *TransactionRepo) filteredQ(f account.TxFilter) squirrel.SelectBuilder {
	q := Builder().
		Select(r.cols...).
		From(transactionsTable).
		Where(squirrel.Eq{"account_id": f.AccountID})

	if f.Type != "" {
		q = q.Where(squirrel.Eq{"type": f.Type})
	}
	if f.Category != "" {
		q = q.Where(squirrel.ILike{"category": f.Category})
	}
	if f.MinAmount != nil {
		q = q.Where(squirrel.GtOrEq{"amount": *f.MinAmount})
	}
	if f.MaxAmount != nil {
		q = q.Where(squirrel.LtOrEq{"amount": *f.MaxAmount})
	}
	if f.StartDate != nil {
		q = q.Where(squirrel.GtOrEq{"date": *f.StartDate})
	}
	if f.EndDate != nil {
		q = q.Where(squirrel.LtOrEq{"date": *f.EndDate})
	}
	if f.Search != "" {
		q = q.Where(squirrel.ILike{"description": "%" + f.Search + "%"})
	}
	return q
}

func (r *TransactionRepo) List(ctx context.Context, f account.TxFilter) (domain.ListResult[*account.Transaction], error) {
	result := domain.ListResult[*account.Transaction]{Page: f.Page, Limit: f.Limit}

	q := r.filteredQ(f)

	total, err := countRows(ctx, r.pool, q)
	if err != nil {
		return result, err
	}
	result.Total = total

	q = q.OrderBy(orderClause(f.ListFilter, transactionSortable, "date DESC"))
	q = paginate(q, f.ListFilter)

	sql, args, err := q.ToSql()
	if err != nil {
		return result, fmt.Errorf("build query: %w", err)
	}
	if err := pgxscan.Select(ctx, r.pool, &result.Items, sql, args...); err != nil {
		return result, fmt.Errorf("list transactions: %w", err)
	}
	return result, nil
}

func (r *TransactionRepo) CountByAccount(ctx context.Context, accountID id.ID) (int64, error) {
	q := Builder().
		Select("COUNT(*)").
		From(transactionsTable).
		Where(squirrel.Eq{"account_id": accountID})

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var n int64
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return n, nil
}

func (r *TransactionRepo) SumByType(ctx context.Context, f account.TxFilter) (decimal.Decimal, decimal.Decimal, error) {
	inner := r.filteredQ(f)
	q := Builder().
		Select(
			"COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0) AS income",
			"COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0) AS expense",
		).
		FromSelect(inner, "sub")

	sql, args, err := q.ToSql()
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("build sum query: %w", err)
	}

	var income, expense decimal.Decimal
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&income, &expense); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("sum transactions: %w", err)
	}
	return income, expense, nil
}
