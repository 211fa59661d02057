package memory

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/ericcurtin/GreengoLingo/internal/domain"
	"github.com/ericcurtin/GreengoLingo/internal/platform/logger"
	"github.com/ericcurtin/GreengoLingo/internal/store"
)

// state is everything the memory backend persists.
type state struct {
	cards     map[string]*domain.Card
	items     map[string]*domain.VocabularyItem
	itemOrder []string
}

func newState() *state {
	return &state{
		cards: make(map[string]*domain.Card),
		items: make(map[string]*domain.VocabularyItem),
	}
}

func (s *state) clone() *state {
	c := &state{
		cards:     make(map[string]*domain.Card, len(s.cards)),
		items:     make(map[string]*domain.VocabularyItem, len(s.items)),
		itemOrder: slices.Clone(s.itemOrder),
	}
	for id, card := range s.cards {
		c.cards[id] = card.Clone()
	}
	for id, item := range s.items {
		c.items[id] = item.Clone()
	}
	return c
}

// DB is an in-memory database shared by the card and vocabulary stores.
//
// A transaction works on a private copy of the state and swaps it in on
// commit. DB serializes transactions, so repositories obtained from
// DB.Repositories must not be used inside RunInTx.
type DB struct {
	mu     sync.Mutex
	state  *state
	logger *slog.Logger
}

// NewDB creates an empty database. If logger is nil, a default logger will be used.
func NewDB(logger *slog.Logger) *DB {
	if logger == nil {
		logger = slog.Default()
	}
	return &DB{
		state:  newState(),
		logger: logger.With(slog.String("component", "memory_db")),
	}
}

var _ store.Transactor = (*DB)(nil)

// Repositories returns stores that operate directly on the committed state.
func (db *DB) Repositories() store.Repositories {
	return &repositories{db: db}
}

// RunInTx implements store.Transactor.RunInTx
func (db *DB) RunInTx(
	ctx context.Context,
	fn func(ctx context.Context, repos store.Repositories) error,
) error {
	log := logger.FromContextOrDefault(ctx, db.logger)

	if err := ctx.Err(); err != nil {
		return err
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	working := db.state.clone()
	if err := fn(ctx, &repositories{tx: working}); err != nil {
		log.Debug("rolled back transaction due to error", slog.String("error", err.Error()))
		return err
	}

	db.state = working
	log.Debug("transaction committed successfully")
	return nil
}

// repositories binds both stores either to a transaction's working state or,
// when tx is nil, to the database's committed state.
type repositories struct {
	db *DB
	tx *state
}

func (r *repositories) Cards() store.CardStore { return &CardStore{r: r} }

func (r *repositories) VocabularyItems() store.VocabularyItemStore {
	return &VocabularyItemStore{r: r}
}

// with runs fn against the bound state, locking the database when the
// repositories are not part of a transaction.
func (r *repositories) with(fn func(st *state) error) error {
	if r.tx != nil {
		return fn(r.tx)
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return fn(r.db.state)
}
