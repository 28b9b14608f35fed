package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"storeops/internal/core/apperror"
	"storeops/internal/domain/auth"
)

const usersTable = "users"

// UserRepo persists API users.
type UserRepo struct {
	pool *Pool
	cols []string
}

// NewUserRepo creates a user repository.
func NewUserRepo(pool *Pool) *UserRepo {
	return &UserRepo{
		pool: pool,
		cols: ExtractDBColumns[auth.User](),
	}
}

func (r *UserRepo) Create(ctx context.Context, u *auth.User) error {
	q := Builder().
		Insert(usersTable).
		SetMap(StructToMap(u))

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return TranslateError(err, usersTable)
	}
	return nil
}

func (r *UserRepo) GetActiveByUsername(ctx context.Context, username string) (*auth.User, error) {
	q := Builder().
		Select(r.cols...).
		From(usersTable).
		Where(squirrel.Eq{"username": username, "is_active": true})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var u auth.User
	if err := pgxscan.Get(ctx, r.pool, &u, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("user")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func (r *UserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	q := Builder().
		Select("1").
		From(usersTable).
		Where(squirrel.Eq{"username": username}).
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
		return false, fmt.Errorf("user exists: %w", err)
	}
	return true, nil
}
