package domain

import "fmt"

// MasteryLevel classifies how well a card has been learned. It is always
// derived from a card's repetitions and ease factor and is never stored.
type MasteryLevel string

// Possible mastery levels, from least to most learned.
const (
	MasteryNew        MasteryLevel = "new"
	MasteryLearning   MasteryLevel = "learning"
	MasteryFamiliar   MasteryLevel = "familiar"
	MasteryProficient MasteryLevel = "proficient"
	MasteryMastered   MasteryLevel = "mastered"
)

// MasteryLevels returns every mastery level in ascending order.
func MasteryLevels() []MasteryLevel {
	return []MasteryLevel{
		MasteryNew,
		MasteryLearning,
		MasteryFamiliar,
		MasteryProficient,
		MasteryMastered,
	}
}

// ClassifyMastery maps a repetition count and ease factor onto a mastery level.
//
// A card that has enough repetitions for a higher band but not the ease to go
// with it is reported as Learning, not as the band below.
func ClassifyMastery(repetitions int, easeFactor float64) MasteryLevel {
	switch {
	case repetitions <= 0:
		return MasteryNew
	case repetitions <= 2:
		return MasteryLearning
	case repetitions <= 5 && easeFactor >= 2.0:
		return MasteryFamiliar
	case repetitions >= 6 && repetitions <= 10 && easeFactor >= 2.2:
		return MasteryProficient
	case repetitions > 10 && easeFactor >= 2.4:
		return MasteryMastered
	default:
		return MasteryLearning
	}
}

// DisplayName returns the human readable name of the level.
func (m MasteryLevel) DisplayName() string {
	switch m {
	case MasteryNew:
		return "New"
	case MasteryLearning:
		return "Learning"
	case MasteryFamiliar:
		return "Familiar"
	case MasteryProficient:
		return "Proficient"
	case MasteryMastered:
		return "Mastered"
	default:
		return string(m)
	}
}

// Color returns the hex colour used to render the level.
func (m MasteryLevel) Color() string {
	switch m {
	case MasteryNew:
		return "#9E9E9E"
	case MasteryLearning:
		return "#FF9800"
	case MasteryFamiliar:
		return "#FFEB3B"
	case MasteryProficient:
		return "#8BC34A"
	case MasteryMastered:
		return "#4CAF50"
	default:
		return "#9E9E9E"
	}
}

// IsValid reports whether m is one of the defined levels.
func (m MasteryLevel) IsValid() bool {
	switch m {
	case MasteryNew, MasteryLearning, MasteryFamiliar, MasteryProficient, MasteryMastered:
		return true
	default:
		return false
	}
}

// UnmarshalText rejects unknown levels.
func (m *MasteryLevel) UnmarshalText(text []byte) error {
	level := MasteryLevel(text)
	if !level.IsValid() {
		return fmt.Errorf("%w: unknown mastery level %q", ErrValidation, string(text))
	}
	*m = level
	return nil
}
