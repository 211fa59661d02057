package api

import (
	"github.com/ericcurtin/GreengoLingo/internal/domain"
	"github.com/ericcurtin/GreengoLingo/internal/domain/srs"
)

// ReviewRequest is the body of the preview and review endpoints.
// Quality outside 0-5 is clamped by the scheduler; an empty date means today.
type ReviewRequest struct {
	Quality *int   `json:"quality" validate:"required"`
	Date    string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// PromoteRequest is the optional body of the promote endpoint.
type PromoteRequest struct {
	Date string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// CreateVocabularyRequest defines the payload for adding a vocabulary item.
type CreateVocabularyRequest struct {
	ID                 string   `json:"id" validate:"required,max=128"`
	Source             string   `json:"source" validate:"required"`
	Target             string   `json:"target" validate:"required"`
	Pronunciation      *string  `json:"pronunciation,omitempty"`
	ExampleSentence    *string  `json:"example_sentence,omitempty"`
	ExampleTranslation *string  `json:"example_translation,omitempty"`
	Notes              *string  `json:"notes,omitempty"`
	LessonID           string   `json:"lesson_id"`
	Level              string   `json:"level"`
	LanguagePair       string   `json:"language_pair"`
	Category           string   `json:"category"`
	Tags               []string `json:"tags"`
	AddedAt            string   `json:"added_at,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// toItem builds the domain item; addedAt is used when the request has none.
func (req *CreateVocabularyRequest) toItem(addedAt string) *domain.VocabularyItem {
	if req.AddedAt != "" {
		addedAt = req.AddedAt
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	return &domain.VocabularyItem{
		ID:                 req.ID,
		Source:             req.Source,
		Target:             req.Target,
		Pronunciation:      req.Pronunciation,
		ExampleSentence:    req.ExampleSentence,
		ExampleTranslation: req.ExampleTranslation,
		Notes:              req.Notes,
		LessonID:           req.LessonID,
		Level:              req.Level,
		LanguagePair:       req.LanguagePair,
		Category:           domain.ParseCategory(req.Category),
		Tags:               tags,
		AddedAt:            addedAt,
	}
}

// CardResponse is a card plus its derived mastery level and accuracy.
type CardResponse struct {
	*domain.Card
	MasteryLevel domain.MasteryLevel `json:"mastery_level"`
	AccuracyRate float64             `json:"accuracy_rate"`
}

func cardToResponse(card *domain.Card) CardResponse {
	return CardResponse{
		Card:         card,
		MasteryLevel: card.MasteryLevel(),
		AccuracyRate: card.AccuracyRate(),
	}
}

func cardsToResponse(cards []*domain.Card) []CardResponse {
	out := make([]CardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, cardToResponse(c))
	}
	return out
}

// ReviewResponse is returned after a review has been recorded.
type ReviewResponse struct {
	Card   CardResponse `json:"card"`
	Update *srs.Update  `json:"update"`
}

// ListResponse wraps collection results with their count.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

func newListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Count: len(items)}
}
