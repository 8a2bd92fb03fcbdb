package db

import (
	"context"
	"database/sql"
	"errors"

	"umrah/internal/domain"

	"github.com/jmoiron/sqlx"
)

// Execer is satisfied by *sql.DB and *sql.Tx.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// NullIfEmpty stores optional strings as NULL.
func NullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// NullIfZero stores optional references as NULL.
func NullIfZero(id *int64) any {
	if id == nil || *id <= 0 {
		return nil
	}
	return *id
}

func wrap(db *sql.DB) *sqlx.DB {
	return sqlx.NewDb(db, "mysql")
}

// Select scans all rows of query into dest (a pointer to a slice of structs
// with db tags).
func Select(ctx context.Context, db *sql.DB, dest any, query string, args ...any) error {
	if db == nil {
		return domain.StoreError{Op: "select", Err: errors.New("db tidak tersedia")}
	}
	if err := sqlx.SelectContext(ctx, wrap(db), dest, query, args...); err != nil {
		return Classify("select", err)
	}
	return nil
}

// Get scans exactly one row into dest; no row becomes NotFoundError{resource}.
func Get(ctx context.Context, db *sql.DB, dest any, resource, query string, args ...any) error {
	if db == nil {
		return domain.StoreError{Op: "get", Err: errors.New("db tidak tersedia")}
	}
	if err := sqlx.GetContext(ctx, wrap(db), dest, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFoundError{Resource: resource, Err: err}
		}
		return Classify("get", err)
	}
	return nil
}

// Count runs a COUNT(*) style query.
func Count(ctx context.Context, q Execer, query string, args ...any) (int, error) {
	var n int
	if err := q.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, Classify("count", err)
	}
	return n, nil
}

// Insert executes an INSERT and returns the generated id.
func Insert(ctx context.Context, q Execer, op, query string, args ...any) (int64, error) {
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, Classify(op, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.StoreError{Op: op, Err: err}
	}
	return id, nil
}
