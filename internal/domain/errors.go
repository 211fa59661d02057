package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is usually wrapped with the offending fields.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidDate is returned when a date string is not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("invalid date")

	// ErrNilVocabularyItem is returned when a card is built from a nil item.
	ErrNilVocabularyItem = errors.New("vocabulary item cannot be nil")
)
