package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/vibecare/internal/logger"
)

var (
	// ErrNotFound is returned when no row matches.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned on a unique constraint violation.
	ErrDuplicate = errors.New("duplicate record")
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// TxGetter returns the transaction bound to ctx, if any.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor picks the request transaction when there is one.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	var ex sqlx.ExtContext = db
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			ex = tx
		}
	}
	return ex
}

// mapError translates driver errors into repository errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
	}
	return err
}

func logQuery(ctx context.Context, query string, args []any, result any, err error) {
	// Log with query in single line
	logger.FromContext(ctx).Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", len(args),
		"result", result,
		"error", err,
	)
}

func getOne[T any](ctx context.Context, q sqlx.QueryerContext, b sq.Sqlizer) (*T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	var dest T
	err = sqlx.GetContext(ctx, q, &dest, query, args...)
	logQuery(ctx, query, args, err == nil, err)
	if err != nil {
		return nil, mapError(err)
	}
	return &dest, nil
}

func selectAll[T any](ctx context.Context, q sqlx.QueryerContext, b sq.Sqlizer) ([]T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	dest := []T{}
	err = sqlx.SelectContext(ctx, q, &dest, query, args...)
	logQuery(ctx, query, args, len(dest), err)
	if err != nil {
		return nil, mapError(err)
	}
	return dest, nil
}

func exec(ctx context.Context, e sqlx.ExecerContext, b sq.Sqlizer) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}

	res, err := e.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(ctx, query, args, rowsAffected, err)
	if err != nil {
		return 0, mapError(err)
	}
	return rowsAffected, nil
}

// execOne runs b and reports ErrNotFound when no row was touched.
func execOne(ctx context.Context, e sqlx.ExecerContext, b sq.Sqlizer) error {
	n, err := exec(ctx, e, b)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func count(ctx context.Context, q sqlx.QueryerContext, table string, where sq.Sqlizer) (int64, error) {
	b := psql.Select("COUNT(*)").From(table)
	if where != nil {
		b = b.Where(where)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}

	var n int64
	err = sqlx.GetContext(ctx, q, &n, query, args...)
	logQuery(ctx, query, args, n, err)
	return n, mapError(err)
}
