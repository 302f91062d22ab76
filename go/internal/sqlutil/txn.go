package sqlutil

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the subset of pgx shared by *pgxpool.Pool and pgx.Tx. Repositories
// bind their queries to it so the same query code runs inside or outside a
// transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Run executes fn inside a pgx transaction.
// If fn returns an error the tx rolls back, else it commits.
func Run(ctx context.Context, pool *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

// RunSub executes fn inside a savepoint on an already-open transaction, so a
// failing item in a batch rolls back alone instead of poisoning the batch.
func RunSub(ctx context.Context, tx pgx.Tx, fn func(tx pgx.Tx) error) error {
	sub, err := tx.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin savepoint: %w", err)
	}
	if err := fn(sub); err != nil {
		_ = sub.Rollback(ctx)
		return err
	}
	return sub.Commit(ctx)
}

// IsNoRows reports whether err is pgx's no-rows sentinel.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
