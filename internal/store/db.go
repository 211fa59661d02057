package store

import (
	"context"
	"database/sql"
)

// DBTX abstracts the database handle used by the SQL stores.
// Both *sql.DB and *sql.Tx satisfy it, so a store can run against the pool
// or inside a transaction without knowing which.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
