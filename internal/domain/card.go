package domain

// DefaultEaseFactor is the ease factor assigned to every new card.
const DefaultEaseFactor = 2.5

// Card is the spaced-repetition state for one vocabulary word in one
// language pair. Scheduling fields are only changed by the scheduler's
// update step; the remaining fields describe the word and never change
// after creation.
type Card struct {
	WordID          string  `json:"word_id" validate:"required"`
	SourceWord      string  `json:"source_word" validate:"required"`
	TargetWord      string  `json:"target_word" validate:"required"`
	LanguagePair    string  `json:"language_pair" validate:"required"`
	Level           string  `json:"level"`
	LessonID        string  `json:"lesson_id"`
	Pronunciation   *string `json:"pronunciation,omitempty"`
	ExampleSentence *string `json:"example_sentence,omitempty"`

	EaseFactor     float64 `json:"ease_factor" validate:"gt=0"`
	Interval       int     `json:"interval" validate:"gte=0"` // days
	Repetitions    int     `json:"repetitions" validate:"gte=0"` // consecutive successes
	NextReviewDate string  `json:"next_review_date" validate:"required,datetime=2006-01-02"`
	LastReviewed   *string `json:"last_reviewed,omitempty" validate:"omitempty,datetime=2006-01-02"`
	TotalReviews   int     `json:"total_reviews" validate:"gte=0"`
	CorrectReviews int     `json:"correct_reviews" validate:"gte=0,ltefield=TotalReviews"`
	LastQuality    *int    `json:"last_quality,omitempty" validate:"omitempty,min=0,max=5"`
	CreatedAt      string  `json:"created_at" validate:"required,datetime=2006-01-02"`
}

// NewCard creates a card that has never been reviewed. It is due on
// currentDate, which also becomes its creation date.
// Returns an error if validation fails.
func NewCard(
	wordID, sourceWord, targetWord, languagePair, level, lessonID, currentDate string,
) (*Card, error) {
	card := &Card{
		WordID:         wordID,
		SourceWord:     sourceWord,
		TargetWord:     targetWord,
		LanguagePair:   languagePair,
		Level:          level,
		LessonID:       lessonID,
		EaseFactor:     DefaultEaseFactor,
		Interval:       0,
		Repetitions:    0,
		NextReviewDate: currentDate,
		CreatedAt:      currentDate,
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// NewCardWithDetails creates a new card carrying an optional pronunciation
// guide and example sentence.
func NewCardWithDetails(
	wordID, sourceWord, targetWord, languagePair, level, lessonID string,
	pronunciation, exampleSentence *string,
	currentDate string,
) (*Card, error) {
	card, err := NewCard(wordID, sourceWord, targetWord, languagePair, level, lessonID, currentDate)
	if err != nil {
		return nil, err
	}

	card.Pronunciation = cloneString(pronunciation)
	card.ExampleSentence = cloneString(exampleSentence)

	return card, nil
}

// NewCardFromItem creates the card that starts scheduling a vocabulary item.
// The card takes the item's ID as its word ID.
func NewCardFromItem(item *VocabularyItem, currentDate string) (*Card, error) {
	if item == nil {
		return nil, ErrNilVocabularyItem
	}

	return NewCardWithDetails(
		item.ID,
		item.Source,
		item.Target,
		item.LanguagePair,
		item.Level,
		item.LessonID,
		item.Pronunciation,
		item.ExampleSentence,
		currentDate,
	)
}

// Validate checks if the Card has valid data.
// Returns an error wrapping ErrValidation if any field fails validation.
func (c *Card) Validate() error {
	return validateStruct(c)
}

// IsDue reports whether the card should be reviewed on currentDate.
// Dates are compared as YYYY-MM-DD strings, so a card scheduled for an
// earlier date stays due until it is reviewed.
func (c *Card) IsDue(currentDate string) bool {
	return c.NextReviewDate <= currentDate
}

// AccuracyRate returns the percentage of reviews that were successful,
// or 0 if the card has never been reviewed.
func (c *Card) AccuracyRate() float64 {
	if c.TotalReviews == 0 {
		return 0
	}
	return float64(c.CorrectReviews) / float64(c.TotalReviews) * 100
}

// IsWeak reports whether the card is struggling: its ease factor is below
// easeThreshold or its accuracy is below accuracyThreshold.
//
// A card with no reviews has 0% accuracy and is therefore weak for any
// positive accuracy threshold.
func (c *Card) IsWeak(easeThreshold, accuracyThreshold float64) bool {
	return c.EaseFactor < easeThreshold || c.AccuracyRate() < accuracyThreshold
}

// MasteryLevel derives the card's mastery level from its repetitions and
// ease factor.
func (c *Card) MasteryLevel() MasteryLevel {
	return ClassifyMastery(c.Repetitions, c.EaseFactor)
}

// Clone returns a deep copy of the card.
func (c *Card) Clone() *Card {
	if c == nil {
		return nil
	}
	clone := *c
	clone.Pronunciation = cloneString(c.Pronunciation)
	clone.ExampleSentence = cloneString(c.ExampleSentence)
	clone.LastReviewed = cloneString(c.LastReviewed)
	if c.LastQuality != nil {
		q := *c.LastQuality
		clone.LastQuality = &q
	}
	return &clone
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
