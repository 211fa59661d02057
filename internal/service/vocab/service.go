// Package vocab manages the vocabulary collection and promotes items into
// spaced repetition.
//
// The service keeps an indexed vocabulary.Store in memory for lookups and
// writes every change through to a store.VocabularyItemStore.
package vocab

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ericcurtin/GreengoLingo/internal/domain"
	"github.com/ericcurtin/GreengoLingo/internal/domain/vocabulary"
	"github.com/ericcurtin/GreengoLingo/internal/platform/logger"
	"github.com/ericcurtin/GreengoLingo/internal/store"
)

var (
	// ErrItemNotFound indicates that no vocabulary item has the requested ID.
	ErrItemNotFound = errors.New("vocabulary item not found")

	// ErrAlreadyInSRS indicates that the item has already been promoted.
	ErrAlreadyInSRS = errors.New("vocabulary item is already in spaced repetition")
)

// Filter selects vocabulary items by their indexed attributes.
// Empty fields match everything.
type Filter struct {
	Level        string
	LessonID     string
	LanguagePair string
	Category     string
	// NotInSRS restricts the result to items that have not been promoted.
	NotInSRS bool
}

// Service is safe for concurrent use.
type Service struct {
	mu     sync.RWMutex
	vocab  *vocabulary.Store
	items  store.VocabularyItemStore
	tx     store.Transactor
	logger *slog.Logger
}

// NewService creates a vocabulary service with an empty collection.
// Call Load to hydrate it from items.
func NewService(items store.VocabularyItemStore, tx store.Transactor, logger *slog.Logger) *Service {
	if items == nil {
		panic("items cannot be nil")
	}
	if tx == nil {
		panic("tx cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		vocab:  vocabulary.NewStore(),
		items:  items,
		tx:     tx,
		logger: logger.With(slog.String("component", "vocab_service")),
	}
}

// Load replaces the in-memory collection with the persisted items.
func (s *Service) Load(ctx context.Context) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	items, err := s.items.List(ctx)
	if err != nil {
		log.Error("failed to load vocabulary", slog.String("error", err.Error()))
		return fmt.Errorf("failed to load vocabulary: %w", err)
	}

	fresh := vocabulary.NewStore()
	for _, item := range items {
		if err := fresh.Add(item); err != nil {
			log.Warn("skipping invalid stored vocabulary item",
				slog.String("item_id", item.ID),
				slog.String("error", err.Error()))
		}
	}

	s.mu.Lock()
	s.vocab = fresh
	s.mu.Unlock()

	log.Info("vocabulary loaded", slog.Int("items", fresh.Len()))
	return nil
}

// AddItem stores item, replacing any item with the same ID. An item whose
// card already exists stays marked as in spaced repetition.
func (s *Service) AddItem(ctx context.Context, item *domain.VocabularyItem) error {
	if item == nil {
		return vocabulary.ErrNilItem
	}
	if err := item.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := item.Clone()
	if existing, ok := s.vocab.Get(stored.ID); ok && existing.InSRS {
		stored.InSRS = true
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context, repos store.Repositories) error {
		if !stored.InSRS {
			_, err := repos.Cards().GetByID(ctx, stored.ID)
			switch {
			case err == nil:
				stored.InSRS = true
			case !errors.Is(err, store.ErrCardNotFound):
				return err
			}
		}
		return repos.VocabularyItems().Save(ctx, stored)
	})
	if err != nil {
		return fmt.Errorf("failed to save vocabulary item: %w", err)
	}
	if err := s.vocab.Add(stored); err != nil {
		return err
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("vocabulary item added",
		slog.String("item_id", item.ID))
	return nil
}

// GetItem returns a copy of the item with the given ID.
func (s *Service) GetItem(id string) (*domain.VocabularyItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.vocab.Get(id)
	if !ok {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// RemoveItem deletes the item with the given ID. Any card already created
// from it is left alone.
func (s *Service) RemoveItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.vocab.Get(id); !ok {
		return ErrItemNotFound
	}
	if err := s.items.Delete(ctx, id); err != nil && !errors.Is(err, store.ErrVocabularyItemNotFound) {
		return fmt.Errorf("failed to delete vocabulary item: %w", err)
	}
	s.vocab.Remove(id)

	logger.FromContextOrDefault(ctx, s.logger).Debug("vocabulary item removed",
		slog.String("item_id", id))
	return nil
}

// Lookup returns the items matching every non-empty field of filter.
// Results follow the order of the first index consulted (level, lesson,
// language pair, category); with an empty filter they are ordered by ID.
func (s *Service) Lookup(filter Filter) []*domain.VocabularyItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var candidates []*domain.VocabularyItem
	switch {
	case filter.Level != "":
		candidates = s.vocab.ByLevel(filter.Level)
	case filter.LessonID != "":
		candidates = s.vocab.ByLesson(filter.LessonID)
	case filter.LanguagePair != "":
		candidates = s.vocab.ByLanguagePair(filter.LanguagePair)
	case filter.Category != "":
		candidates = s.vocab.ByCategory(domain.ParseCategory(filter.Category))
	case filter.NotInSRS:
		return s.vocab.NotInSRS()
	default:
		return s.vocab.All()
	}

	result := make([]*domain.VocabularyItem, 0, len(candidates))
	for _, item := range candidates {
		if filter.matches(item) {
			result = append(result, item)
		}
	}
	return result
}

func (f Filter) matches(item *domain.VocabularyItem) bool {
	switch {
	case f.Level != "" && item.Level != f.Level:
		return false
	case f.LessonID != "" && item.LessonID != f.LessonID:
		return false
	case f.LanguagePair != "" && item.LanguagePair != f.LanguagePair:
		return false
	case f.Category != "" && item.Category != domain.ParseCategory(f.Category):
		return false
	case f.NotInSRS && item.InSRS:
		return false
	}
	return true
}

// Search returns items whose source, target or tags contain query, exact
// matches first. A positive limit caps the result.
func (s *Service) Search(query string, limit int) []*domain.VocabularyItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vocab.Search(query, limit)
}

// Stats summarises the collection.
func (s *Service) Stats() vocabulary.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vocab.Stats()
}

// Promote creates the card for a vocabulary item and marks the item as in
// spaced repetition. Both writes happen in one transaction; the card is due
// on date.
func (s *Service) Promote(ctx context.Context, id, date string) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := domain.ParseDate(date); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.vocab.Get(id)
	if !ok {
		return nil, ErrItemNotFound
	}
	if item.InSRS {
		return nil, ErrAlreadyInSRS
	}

	card, err := domain.NewCardFromItem(item, date)
	if err != nil {
		return nil, err
	}

	item.InSRS = true
	err = s.tx.RunInTx(ctx, func(ctx context.Context, repos store.Repositories) error {
		if err := repos.Cards().Create(ctx, card); err != nil {
			return err
		}
		return repos.VocabularyItems().Save(ctx, item)
	})
	if err != nil {
		if errors.Is(err, store.ErrCardExists) {
			log.Warn("card already exists for vocabulary item", slog.String("item_id", id))
			return nil, fmt.Errorf("%w: %w", ErrAlreadyInSRS, err)
		}
		log.Error("failed to promote vocabulary item",
			slog.String("error", err.Error()),
			slog.String("item_id", id))
		return nil, fmt.Errorf("failed to promote vocabulary item: %w", err)
	}

	s.vocab.MarkInSRS(id)

	log.Info("vocabulary item promoted",
		slog.String("item_id", id),
		slog.String("next_review_date", card.NextReviewDate))
	return card, nil
}
