package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/ericcurtin/GreengoLingo/internal/domain"
	"github.com/ericcurtin/GreengoLingo/internal/store"
)

// CardStore implements store.CardStore in memory.
type CardStore struct {
	r *repositories
}

var _ store.CardStore = (*CardStore)(nil)

// Create implements store.CardStore.Create
func (s *CardStore) Create(ctx context.Context, card *domain.Card) error {
	if err := validCard(card); err != nil {
		return err
	}
	return s.r.with(func(st *state) error {
		if _, exists := st.cards[card.WordID]; exists {
			return fmt.Errorf("%w: %s", store.ErrCardExists, card.WordID)
		}
		st.cards[card.WordID] = card.Clone()
		return nil
	})
}

// GetByID implements store.CardStore.GetByID
func (s *CardStore) GetByID(ctx context.Context, wordID string) (*domain.Card, error) {
	var card *domain.Card
	err := s.r.with(func(st *state) error {
		stored, ok := st.cards[wordID]
		if !ok {
			return store.ErrCardNotFound
		}
		card = stored.Clone()
		return nil
	})
	return card, err
}

// Update implements store.CardStore.Update
// Only the scheduling and review history fields are written.
func (s *CardStore) Update(ctx context.Context, card *domain.Card) error {
	if err := validCard(card); err != nil {
		return err
	}
	return s.r.with(func(st *state) error {
		stored, ok := st.cards[card.WordID]
		if !ok {
			return store.ErrCardNotFound
		}
		updated := stored.Clone()
		src := card.Clone()
		updated.EaseFactor = src.EaseFactor
		updated.Interval = src.Interval
		updated.Repetitions = src.Repetitions
		updated.NextReviewDate = src.NextReviewDate
		updated.LastReviewed = src.LastReviewed
		updated.TotalReviews = src.TotalReviews
		updated.CorrectReviews = src.CorrectReviews
		updated.LastQuality = src.LastQuality
		st.cards[card.WordID] = updated
		return nil
	})
}

// Delete implements store.CardStore.Delete
func (s *CardStore) Delete(ctx context.Context, wordID string) error {
	return s.r.with(func(st *state) error {
		if _, ok := st.cards[wordID]; !ok {
			return store.ErrCardNotFound
		}
		delete(st.cards, wordID)
		return nil
	})
}

// List implements store.CardStore.List
func (s *CardStore) List(ctx context.Context) ([]*domain.Card, error) {
	cards := make([]*domain.Card, 0)
	err := s.r.with(func(st *state) error {
		for _, card := range st.cards {
			cards = append(cards, card.Clone())
		}
		return nil
	})
	slices.SortFunc(cards, func(a, b *domain.Card) int {
		return strings.Compare(a.WordID, b.WordID)
	})
	return cards, err
}

func validCard(card *domain.Card) error {
	if card == nil {
		return fmt.Errorf("%w: nil card", store.ErrInvalidEntity)
	}
	if err := card.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}
	return nil
}
