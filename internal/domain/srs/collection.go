package srs

import (
	"cmp"
	"slices"

	"github.com/ericcurtin/GreengoLingo/internal/domain"
)

// DueCards returns the cards that are due on currentDate, in input order.
func DueCards(cards []*domain.Card, currentDate string) []*domain.Card {
	return filterCards(cards, func(c *domain.Card) bool {
		return c.IsDue(currentDate)
	})
}

// WeakCards returns the cards whose ease factor or accuracy falls below the
// given thresholds, in input order.
func WeakCards(cards []*domain.Card, easeThreshold, accuracyThreshold float64) []*domain.Card {
	return filterCards(cards, func(c *domain.Card) bool {
		return c.IsWeak(easeThreshold, accuracyThreshold)
	})
}

// NewCards returns the cards that have never been reviewed, in input order.
func NewCards(cards []*domain.Card) []*domain.Card {
	return filterCards(cards, func(c *domain.Card) bool {
		return c.TotalReviews == 0
	})
}

// SortByPriority orders cards for a review session in place: due cards come
// before cards that are not yet due, and within each group cards with a lower
// ease factor come first. Nil entries sort last. The sort is stable, so
// cards that compare equal keep their relative order.
func SortByPriority(cards []*domain.Card, currentDate string) {
	slices.SortStableFunc(cards, func(a, b *domain.Card) int {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return 1
		case b == nil:
			return -1
		}
		aDue, bDue := a.IsDue(currentDate), b.IsDue(currentDate)
		if aDue != bDue {
			if aDue {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.EaseFactor, b.EaseFactor)
	})
}

func filterCards(cards []*domain.Card, keep func(*domain.Card) bool) []*domain.Card {
	result := make([]*domain.Card, 0, len(cards))
	for _, c := range cards {
		if c != nil && keep(c) {
			result = append(result, c)
		}
	}
	return result
}
