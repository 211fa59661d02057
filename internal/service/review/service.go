// Package review schedules and records reviews of spaced-repetition cards.
package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/ericcurtin/GreengoLingo/internal/domain"
	"github.com/ericcurtin/GreengoLingo/internal/domain/srs"
)

// Service provides review operations over the stored card collection.
// Every operation takes the current date from the caller; the service never
// reads a clock.
type Service interface {
	// DueCards returns the cards due on date, most urgent first.
	// A positive limit caps the number of cards returned.
	DueCards(ctx context.Context, date string, limit int) ([]*domain.Card, error)

	// GetCard returns a single card.
	// Returns ErrCardNotFound if no card has the word ID.
	GetCard(ctx context.Context, wordID string) (*domain.Card, error)

	// PreviewReview computes the outcome of reviewing a card with quality on
	// date without changing anything.
	PreviewReview(ctx context.Context, wordID string, quality int, date string) (*srs.Update, error)

	// SubmitReview applies a review to a card and persists the result in a
	// single transaction, then emits a ReviewRecorded event.
	//
	// Returns:
	//   - (*Result, nil): the stored card and the update that produced it
	//   - (nil, ErrCardNotFound): no card has the word ID
	//   - (nil, error wrapping domain.ErrInvalidDate): date is not YYYY-MM-DD
	//   - (nil, *ServiceError): any other failure
	SubmitReview(ctx context.Context, wordID string, quality int, date string) (*Result, error)

	// WeakCards returns the cards whose ease or accuracy is below the
	// configured thresholds, ordered by word ID.
	WeakCards(ctx context.Context) ([]*domain.Card, error)

	// Stats summarizes the whole collection as of date.
	Stats(ctx context.Context, date string) (*domain.CardStats, error)
}

// Result is the outcome of a submitted review.
type Result struct {
	Card   *domain.Card `json:"card"`
	Update *srs.Update  `json:"update"`
}

// Common error types for the review service
var (
	// ErrCardNotFound indicates that no card exists for the word ID.
	ErrCardNotFound = errors.New("card not found")
)

// ServiceError wraps errors from the review service with the operation that
// failed, so callers can use errors.As instead of string matching.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "due_cards", "submit_review")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError returns a new ServiceError for operation.
func NewServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
