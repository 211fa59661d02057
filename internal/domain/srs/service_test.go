package srs

import (
	"testing"

	"github.com/ericcurtin/GreengoLingo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCard(t *testing.T) *domain.Card {
	t.Helper()
	card, err := domain.NewCard("vocab_001", "hello", "olá", "en_to_pt_br", "A1", "greetings", "2024-01-15")
	require.NoError(t, err)
	return card
}

func TestFirstSuccessfulReview(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()
	card := newTestCard(t)

	update, err := svc.CalculateNextReview(card, 4, "2024-01-15")
	require.NoError(t, err)

	assert.True(t, update.WasSuccessful)
	assert.Equal(t, 1, update.NewRepetitions)
	assert.Equal(t, 1, update.NewInterval)
	assert.InDelta(t, 2.5, update.NewEaseFactor, 1e-9)
	assert.Equal(t, "2024-01-16", update.NextReviewDate)
	assert.Equal(t, QualityCorrectHesitation, update.Quality)
}

func TestSecondSuccessfulReview(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()
	card := newTestCard(t)
	card.Repetitions = 1
	card.Interval = 1

	update, err := svc.CalculateNextReview(card, 4, "2024-01-16")
	require.NoError(t, err)

	assert.Equal(t, 2, update.NewRepetitions)
	assert.Equal(t, 6, update.NewInterval)
	assert.Equal(t, "2024-01-22", update.NextReviewDate)
}

func TestFailedReviewResets(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()
	card := newTestCard(t)
	card.Repetitions = 5
	card.Interval = 30
	card.EaseFactor = 2.5

	update, err := svc.CalculateNextReview(card, 1, "2024-02-15")
	require.NoError(t, err)

	assert.False(t, update.WasSuccessful)
	assert.Equal(t, 0, update.NewRepetitions)
	assert.Equal(t, 1, update.NewInterval)
	assert.InDelta(t, 2.3, update.NewEaseFactor, 1e-9)
	assert.Equal(t, "2024-02-16", update.NextReviewDate)
}

func TestEaseFactorNeverLeavesBounds(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()

	for q := -2; q <= 7; q++ {
		for _, ease := range []float64{1.3, 1.35, 1.9, 2.45, 2.5} {
			card := newTestCard(t)
			card.EaseFactor = ease
			card.Repetitions = 3
			card.Interval = 10

			update, err := svc.CalculateNextReview(card, q, "2024-01-15")
			require.NoError(t, err)
			assert.GreaterOrEqual(t, update.NewEaseFactor, 1.3)
			assert.LessOrEqual(t, update.NewEaseFactor, 2.5)
		}
	}
}

func TestQualityIsClamped(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()
	card := newTestCard(t)

	high, err := svc.CalculateNextReview(card, 42, "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, QualityPerfect, high.Quality)
	assert.True(t, high.WasSuccessful)

	low, err := svc.CalculateNextReview(card, -1, "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, QualityBlackout, low.Quality)
	assert.False(t, low.WasSuccessful)
}

func TestCalculateNextReviewDoesNotMutate(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()
	card := newTestCard(t)
	before := card.Clone()

	_, err := svc.CalculateNextReview(card, 5, "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, before, card)
}

func TestCalculateNextReviewAcrossLeapDay(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()
	card := newTestCard(t)
	card.Repetitions = 1
	card.Interval = 1

	update, err := svc.CalculateNextReview(card, 5, "2024-02-25")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-02", update.NextReviewDate)
}

func TestApplyUpdate(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()
	card := newTestCard(t)

	update, err := svc.CalculateNextReview(card, 5, "2024-01-15")
	require.NoError(t, err)
	require.NoError(t, svc.ApplyUpdate(card, update, "2024-01-15"))

	assert.Equal(t, update.NewEaseFactor, card.EaseFactor)
	assert.Equal(t, update.NewInterval, card.Interval)
	assert.Equal(t, update.NewRepetitions, card.Repetitions)
	assert.Equal(t, update.NextReviewDate, card.NextReviewDate)
	require.NotNil(t, card.LastReviewed)
	assert.Equal(t, "2024-01-15", *card.LastReviewed)
	require.NotNil(t, card.LastQuality)
	assert.Equal(t, 5, *card.LastQuality)
	assert.Equal(t, 1, card.TotalReviews)
	assert.Equal(t, 1, card.CorrectReviews)
	assert.Equal(t, "2024-01-15", card.CreatedAt)
	assert.False(t, card.IsDue("2024-01-15"))

	failed, err := svc.CalculateNextReview(card, 0, "2024-01-16")
	require.NoError(t, err)
	require.NoError(t, svc.ApplyUpdate(card, failed, "2024-01-16"))
	assert.Equal(t, 2, card.TotalReviews)
	assert.Equal(t, 1, card.CorrectReviews)
	assert.Equal(t, 0, card.Repetitions)
	assert.Equal(t, 0, *card.LastQuality)
	assert.InDelta(t, 50.0, card.AccuracyRate(), 1e-9)
}

func TestReviewSequenceReachesMastery(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()
	card := newTestCard(t)

	date := "2024-01-15"
	expectedIntervals := []int{1, 6, 15, 38}
	for i, want := range expectedIntervals {
		update, err := svc.Review(card, 5, date)
		require.NoError(t, err)
		assert.Equal(t, want, update.NewInterval, "review %d", i+1)
		date = update.NextReviewDate
	}
	assert.Equal(t, domain.MasteryFamiliar, card.MasteryLevel())

	for i := 0; i < 8; i++ {
		update, err := svc.Review(card, 5, date)
		require.NoError(t, err)
		date = update.NextReviewDate
	}
	assert.Equal(t, 12, card.Repetitions)
	assert.Equal(t, domain.MasteryMastered, card.MasteryLevel())
	assert.Equal(t, card.TotalReviews, card.CorrectReviews)
}

func TestServiceNilArguments(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()
	card := newTestCard(t)

	_, err := svc.CalculateNextReview(nil, 3, "2024-01-15")
	assert.ErrorIs(t, err, ErrNilCard)

	assert.ErrorIs(t, svc.ApplyUpdate(nil, &Update{}, "2024-01-15"), ErrNilCard)
	assert.ErrorIs(t, svc.ApplyUpdate(card, nil, "2024-01-15"), ErrNilUpdate)

	_, err = svc.Review(nil, 3, "2024-01-15")
	assert.ErrorIs(t, err, ErrNilCard)
}

func TestServiceWithCustomParams(t *testing.T) {
	t.Parallel()
	svc := NewServiceWithParams(NewParams(ParamsConfig{
		FirstInterval:  2,
		PassingQuality: QualityCorrectHesitation,
	}))
	card := newTestCard(t)

	update, err := svc.CalculateNextReview(card, 3, "2024-01-15")
	require.NoError(t, err)
	assert.False(t, update.WasSuccessful)

	update, err = svc.CalculateNextReview(card, 4, "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, 2, update.NewInterval)
	assert.Equal(t, "2024-01-17", update.NextReviewDate)
}
