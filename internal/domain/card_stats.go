package domain

// CardStats summarises a collection of cards on a given date.
type CardStats struct {
	TotalCards        int     `json:"total_cards"`
	DueToday          int     `json:"due_today"`
	NewCards          int     `json:"new_cards"`
	LearningCards     int     `json:"learning_cards"`
	FamiliarCards     int     `json:"familiar_cards"`
	ProficientCards   int     `json:"proficient_cards"`
	MasteredCards     int     `json:"mastered_cards"`
	AverageEaseFactor float64 `json:"average_ease_factor"`
	AverageAccuracy   float64 `json:"average_accuracy"`
}

// NewCardStats computes statistics for cards as of currentDate.
//
// Every card lands in exactly one mastery bucket. The average ease factor is
// taken over all cards, while the average accuracy only counts cards that
// have been reviewed at least once. An empty collection yields all zeros.
func NewCardStats(cards []*Card, currentDate string) CardStats {
	var stats CardStats
	if len(cards) == 0 {
		return stats
	}

	var (
		easeSum     float64
		accuracySum float64
		reviewed    int
	)

	for _, card := range cards {
		if card == nil {
			continue
		}

		stats.TotalCards++
		if card.IsDue(currentDate) {
			stats.DueToday++
		}

		switch card.MasteryLevel() {
		case MasteryNew:
			stats.NewCards++
		case MasteryLearning:
			stats.LearningCards++
		case MasteryFamiliar:
			stats.FamiliarCards++
		case MasteryProficient:
			stats.ProficientCards++
		case MasteryMastered:
			stats.MasteredCards++
		}

		easeSum += card.EaseFactor
		if card.TotalReviews > 0 {
			accuracySum += card.AccuracyRate()
			reviewed++
		}
	}

	if stats.TotalCards > 0 {
		stats.AverageEaseFactor = easeSum / float64(stats.TotalCards)
	}
	if reviewed > 0 {
		stats.AverageAccuracy = accuracySum / float64(reviewed)
	}

	return stats
}

// MasteryCount returns the number of cards in the given mastery bucket.
func (s CardStats) MasteryCount(level MasteryLevel) int {
	switch level {
	case MasteryNew:
		return s.NewCards
	case MasteryLearning:
		return s.LearningCards
	case MasteryFamiliar:
		return s.FamiliarCards
	case MasteryProficient:
		return s.ProficientCards
	case MasteryMastered:
		return s.MasteredCards
	default:
		return 0
	}
}
