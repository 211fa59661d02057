package store

import (
	"context"

	"github.com/ericcurtin/GreengoLingo/internal/domain"
)

// CardStore defines the interface for card persistence.
// Cards are keyed by word ID.
type CardStore interface {
	// Create saves a new card.
	// Returns ErrCardExists if a card with the same word ID is already stored,
	// or an error wrapping ErrInvalidEntity if the card fails validation.
	Create(ctx context.Context, card *domain.Card) error

	// GetByID retrieves a card by its word ID.
	// Returns ErrCardNotFound if the card does not exist.
	GetByID(ctx context.Context, wordID string) (*domain.Card, error)

	// Update overwrites the scheduling and history fields of an existing card.
	// Returns ErrCardNotFound if the card does not exist.
	Update(ctx context.Context, card *domain.Card) error

	// Delete removes a card by its word ID.
	// Returns ErrCardNotFound if the card does not exist.
	Delete(ctx context.Context, wordID string) error

	// List returns every stored card ordered by word ID.
	List(ctx context.Context) ([]*domain.Card, error)
}

// VocabularyItemStore defines the interface for vocabulary item persistence.
type VocabularyItemStore interface {
	// Save inserts the item or replaces the stored item with the same ID.
	// A replaced item keeps its original position in List.
	Save(ctx context.Context, item *domain.VocabularyItem) error

	// Delete removes an item by ID.
	// Returns ErrVocabularyItemNotFound if the item does not exist.
	Delete(ctx context.Context, id string) error

	// List returns every stored item in insertion order.
	List(ctx context.Context) ([]*domain.VocabularyItem, error)
}

// Repositories groups the stores that take part in a single transaction.
type Repositories interface {
	Cards() CardStore
	VocabularyItems() VocabularyItemStore
}

// Transactor runs a unit of work atomically. The repositories passed to fn
// are bound to the transaction; fn's changes are committed when it returns
// nil and discarded when it returns an error.
type Transactor interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
