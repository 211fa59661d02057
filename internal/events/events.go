package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ReviewRecorded is the type of the event emitted after a review is committed.
const ReviewRecorded = "review_recorded"

// ReviewEvent describes a review that has been applied to a card and stored.
type ReviewEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type is always ReviewRecorded for events built by NewReviewEvent
	Type string `json:"type"`

	WordID         string `json:"word_id"`
	Quality        int    `json:"quality"`
	WasSuccessful  bool   `json:"was_successful"`
	NextReviewDate string `json:"next_review_date"`

	// ReviewedOn is the caller-supplied review date, YYYY-MM-DD
	ReviewedOn string `json:"reviewed_on"`

	// CreatedAt is the wall-clock time the event was created
	CreatedAt time.Time `json:"created_at"`
}

// NewReviewEvent creates a ReviewRecorded event.
func NewReviewEvent(wordID string, quality int, successful bool, nextReviewDate, reviewedOn string) *ReviewEvent {
	return &ReviewEvent{
		ID:             uuid.New(),
		Type:           ReviewRecorded,
		WordID:         wordID,
		Quality:        quality,
		WasSuccessful:  successful,
		NextReviewDate: nextReviewDate,
		ReviewedOn:     reviewedOn,
		CreatedAt:      time.Now().UTC(),
	}
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *ReviewEvent) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(ctx context.Context, event *ReviewEvent) error
}

// EventHandlerFunc adapts an ordinary function to the EventHandler interface.
type EventHandlerFunc func(ctx context.Context, event *ReviewEvent) error

// HandleEvent calls f(ctx, event).
func (f EventHandlerFunc) HandleEvent(ctx context.Context, event *ReviewEvent) error {
	return f(ctx, event)
}
