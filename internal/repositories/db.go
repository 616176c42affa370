package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/zeeshankeerio/texstock/internal/models"
)

// DB is the query surface repositories need. *pgxpool.Pool, pgx.Tx and
// pgxmock all satisfy it, so the same repository code runs against the pool,
// inside a transaction, or under test.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// mapNoRows converts pgx's no-rows error to the domain sentinel.
func mapNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ErrNotFound
	}
	return err
}
