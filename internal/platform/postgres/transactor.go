package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/ericcurtin/GreengoLingo/internal/store"
)

// repositories binds both stores to one DBTX.
type repositories struct {
	cards *PostgresCardStore
	items *PostgresVocabularyItemStore
}

// NewRepositories returns card and vocabulary stores sharing db.
func NewRepositories(db store.DBTX, logger *slog.Logger) store.Repositories {
	return &repositories{
		cards: NewPostgresCardStore(db, logger),
		items: NewPostgresVocabularyItemStore(db, logger),
	}
}

func (r *repositories) Cards() store.CardStore { return r.cards }

func (r *repositories) VocabularyItems() store.VocabularyItemStore { return r.items }

// Transactor implements store.Transactor on top of a *sql.DB.
type Transactor struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewTransactor creates a Transactor. It panics if db is nil.
func NewTransactor(db *sql.DB, logger *slog.Logger) *Transactor {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Transactor{db: db, logger: logger}
}

var _ store.Transactor = (*Transactor)(nil)

// RunInTx implements store.Transactor.RunInTx
func (t *Transactor) RunInTx(
	ctx context.Context,
	fn func(ctx context.Context, repos store.Repositories) error,
) error {
	return store.RunInTransaction(ctx, t.db, func(ctx context.Context, tx *sql.Tx) error {
		return fn(ctx, NewRepositories(tx, t.logger))
	})
}
