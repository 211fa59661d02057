// Package postgres provides PostgreSQL-backed implementations of the
// persistence interfaces defined in internal/store, together with the
// embedded goose migrations that create their schema.
//
// The stores work against a store.DBTX, so the same code serves both the
// connection pool and a transaction opened by Transactor.
package postgres
