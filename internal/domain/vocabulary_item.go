package domain

import (
	"slices"
	"strings"
)

// VocabularyItem is a word or phrase from lesson content, together with where
// it came from and whether it has been promoted into spaced repetition.
type VocabularyItem struct {
	ID                 string   `json:"id" validate:"required"`
	Source             string   `json:"source" validate:"required"`
	Target             string   `json:"target" validate:"required"`
	Pronunciation      *string  `json:"pronunciation,omitempty"`
	ExampleSentence    *string  `json:"example_sentence,omitempty"`
	ExampleTranslation *string  `json:"example_translation,omitempty"`
	LessonID           string   `json:"lesson_id"`
	Level              string   `json:"level"`
	LanguagePair       string   `json:"language_pair"`
	Category           Category `json:"category"`
	Notes              *string  `json:"notes,omitempty"`
	Tags               []string `json:"tags"`
	InSRS              bool     `json:"in_srs"`
	AddedAt            string   `json:"added_at" validate:"omitempty,datetime=2006-01-02"`
}

// NewVocabularyItem creates an item that is not yet in spaced repetition.
// Returns an error if validation fails.
func NewVocabularyItem(
	id, source, target, lessonID, level, languagePair string,
	category Category,
	currentDate string,
) (*VocabularyItem, error) {
	item := &VocabularyItem{
		ID:           id,
		Source:       source,
		Target:       target,
		LessonID:     lessonID,
		Level:        level,
		LanguagePair: languagePair,
		Category:     ParseCategory(string(category)),
		Tags:         []string{},
		InSRS:        false,
		AddedAt:      currentDate,
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks if the VocabularyItem has valid data.
func (v *VocabularyItem) Validate() error {
	return validateStruct(v)
}

// MatchesQuery reports whether query occurs, ignoring case, in the source
// text, the target text or any tag.
func (v *VocabularyItem) MatchesQuery(query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(v.Source), q) ||
		strings.Contains(strings.ToLower(v.Target), q) {
		return true
	}
	return slices.ContainsFunc(v.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), q)
	})
}

// IsExactMatch reports whether the source or target text equals query,
// ignoring case.
func (v *VocabularyItem) IsExactMatch(query string) bool {
	return strings.EqualFold(v.Source, query) || strings.EqualFold(v.Target, query)
}

// Clone returns a deep copy of the item.
func (v *VocabularyItem) Clone() *VocabularyItem {
	if v == nil {
		return nil
	}
	clone := *v
	clone.Pronunciation = cloneString(v.Pronunciation)
	clone.ExampleSentence = cloneString(v.ExampleSentence)
	clone.ExampleTranslation = cloneString(v.ExampleTranslation)
	clone.Notes = cloneString(v.Notes)
	clone.Tags = slices.Clone(v.Tags)
	if clone.Tags == nil {
		clone.Tags = []string{}
	}
	return &clone
}
