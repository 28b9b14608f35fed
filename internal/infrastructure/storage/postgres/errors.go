package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"storeops/internal/core/apperror"
)

// Postgres error codes.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// TranslateError maps driver errors to AppErrors. Unique violations
// become duplicate errors naming the offending column, extracted from
// the conventional <table>_<column>_key constraint name.
func TranslateError(err error, table string) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		return apperror.NewDuplicate(constraintColumn(pgErr.ConstraintName, table)).WithCause(err)
	case codeForeignKeyViolation:
		return apperror.NewValidation("referenced record does not exist").WithCause(err)
	}
	return err
}

// TranslateDeleteError maps a foreign key violation raised by a DELETE
// to a dependent-records error with the given message.
func TranslateDeleteError(err error, message string) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation {
		return apperror.NewDependentRecords(message).WithCause(err)
	}
	return err
}

func constraintColumn(constraint, table string) string {
	col := strings.TrimPrefix(constraint, table+"_")
	col = strings.TrimSuffix(col, "_key")
	if col == "" || col == constraint {
		return constraint
	}
	return col
}
