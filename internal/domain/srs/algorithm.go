package srs

import (
	"math"

	"github.com/ericcurtin/GreengoLingo/internal/domain"
)

// Update is the result of scheduling a single review. It is computed without
// touching the card and applied separately by ApplyUpdate.
type Update struct {
	NewEaseFactor  float64 `json:"new_ease_factor"`
	NewInterval    int     `json:"new_interval"`
	NewRepetitions int     `json:"new_repetitions"`
	NextReviewDate string  `json:"next_review_date"`
	Quality        Quality `json:"quality"`
	WasSuccessful  bool    `json:"was_successful"`
}

// calculateNewEaseFactor determines the new ease factor after a review.
//
// On success the SM-2 adjustment 0.1 - (5-q) * (0.08 + (5-q) * 0.02) is added,
// which rewards a perfect answer with +0.10 and penalises a barely correct one
// with -0.14. On failure the configured penalty is subtracted instead.
//
// The result is always clamped to [params.MinEaseFactor, params.MaxEaseFactor].
func calculateNewEaseFactor(
	currentEF float64,
	quality Quality,
	successful bool,
	params *Params,
) float64 {
	var newEF float64
	if successful {
		miss := float64(QualityPerfect - quality)
		newEF = currentEF + (0.1 - miss*(0.08+miss*0.02))
	} else {
		newEF = currentEF - params.FailurePenalty
	}

	if newEF < params.MinEaseFactor {
		newEF = params.MinEaseFactor
	}
	if newEF > params.MaxEaseFactor {
		newEF = params.MaxEaseFactor
	}

	return newEF
}

// calculateNewInterval determines the number of days until the next review.
//
// Parameters:
//   - currentInterval: the card's interval before this review
//   - newRepetitions: the repetition count after this review
//   - currentEF: the card's ease factor before this review
//   - successful: whether the review counted as a success
//   - params: configuration parameters for the SRS algorithm
//
// The first success is scheduled after params.FirstInterval days and the
// second after params.SecondInterval days. From the third success onwards the
// previous interval is multiplied by the previous ease factor and rounded to
// the nearest day. A failure always schedules the card after
// params.FailureInterval days.
func calculateNewInterval(
	currentInterval int,
	newRepetitions int,
	currentEF float64,
	successful bool,
	params *Params,
) int {
	if !successful {
		return params.FailureInterval
	}

	switch newRepetitions {
	case 1:
		return params.FirstInterval
	case 2:
		return params.SecondInterval
	default:
		return int(math.Round(float64(currentInterval) * currentEF))
	}
}

// calculateUpdate computes the scheduling outcome of reviewing card with the
// given quality on currentDate. The card is not modified.
func calculateUpdate(
	card *domain.Card,
	quality Quality,
	currentDate string,
	params *Params,
) *Update {
	successful := quality >= params.PassingQuality

	newReps := 0
	if successful {
		newReps = card.Repetitions + 1
	}

	interval := calculateNewInterval(card.Interval, newReps, card.EaseFactor, successful, params)

	return &Update{
		NewEaseFactor:  calculateNewEaseFactor(card.EaseFactor, quality, successful, params),
		NewInterval:    interval,
		NewRepetitions: newReps,
		NextReviewDate: domain.AddDays(currentDate, interval),
		Quality:        quality,
		WasSuccessful:  successful,
	}
}

// applyUpdate copies the scheduling outcome onto the card and records the
// review in its history counters.
func applyUpdate(card *domain.Card, update *Update, currentDate string) {
	card.EaseFactor = update.NewEaseFactor
	card.Interval = update.NewInterval
	card.Repetitions = update.NewRepetitions
	card.NextReviewDate = update.NextReviewDate

	reviewed := currentDate
	card.LastReviewed = &reviewed
	q := int(update.Quality)
	card.LastQuality = &q

	card.TotalReviews++
	if update.WasSuccessful {
		card.CorrectReviews++
	}
}
