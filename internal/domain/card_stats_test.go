package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func statsCard(id string, reps int, ease float64, next string, total, correct int) *Card {
	return &Card{
		WordID:         id,
		SourceWord:     id,
		TargetWord:     id,
		LanguagePair:   "en_to_es",
		EaseFactor:     ease,
		Repetitions:    reps,
		NextReviewDate: next,
		TotalReviews:   total,
		CorrectReviews: correct,
		CreatedAt:      "2024-01-01",
	}
}

func TestNewCardStatsEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, CardStats{}, NewCardStats(nil, "2024-01-15"))
	assert.Equal(t, CardStats{}, NewCardStats([]*Card{}, "2024-01-15"))
}

func TestNewCardStats(t *testing.T) {
	t.Parallel()

	cards := []*Card{
		statsCard("new", 0, 2.5, "2024-01-15", 0, 0),
		statsCard("learning", 1, 2.3, "2024-01-14", 2, 1),
		statsCard("familiar", 4, 2.1, "2024-01-20", 4, 4),
		statsCard("proficient", 7, 2.4, "2024-02-01", 10, 8),
		statsCard("mastered", 12, 2.5, "2024-03-01", 12, 12),
		statsCard("fallback", 8, 1.5, "2024-01-10", 10, 6),
	}

	stats := NewCardStats(cards, "2024-01-15")

	assert.Equal(t, 6, stats.TotalCards)
	assert.Equal(t, 3, stats.DueToday)
	assert.Equal(t, 1, stats.NewCards)
	assert.Equal(t, 2, stats.LearningCards)
	assert.Equal(t, 1, stats.FamiliarCards)
	assert.Equal(t, 1, stats.ProficientCards)
	assert.Equal(t, 1, stats.MasteredCards)

	sum := 0
	for _, level := range MasteryLevels() {
		sum += stats.MasteryCount(level)
	}
	assert.Equal(t, stats.TotalCards, sum)

	assert.InDelta(t, (2.5+2.3+2.1+2.4+2.5+1.5)/6, stats.AverageEaseFactor, 1e-9)
	// The never-reviewed card is excluded from the accuracy average.
	assert.InDelta(t, (50.0+100+80+100+60)/5, stats.AverageAccuracy, 1e-9)
}

func TestNewCardStatsNoReviews(t *testing.T) {
	t.Parallel()

	cards := []*Card{
		statsCard("a", 0, 2.5, "2024-01-15", 0, 0),
		statsCard("b", 0, 2.5, "2024-01-16", 0, 0),
	}

	stats := NewCardStats(cards, "2024-01-15")
	assert.Equal(t, 2, stats.TotalCards)
	assert.Equal(t, 1, stats.DueToday)
	assert.InDelta(t, 2.5, stats.AverageEaseFactor, 1e-9)
	assert.Zero(t, stats.AverageAccuracy)
}
