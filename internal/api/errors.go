package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ericcurtin/GreengoLingo/internal/api/shared"
	"github.com/ericcurtin/GreengoLingo/internal/domain"
	"github.com/ericcurtin/GreengoLingo/internal/domain/vocabulary"
	"github.com/ericcurtin/GreengoLingo/internal/service/review"
	"github.com/ericcurtin/GreengoLingo/internal/service/vocab"
	"github.com/ericcurtin/GreengoLingo/internal/store"
	"github.com/go-playground/validator/v10"
)

// ErrBadRequest marks request-level problems such as malformed query
// parameters.
var ErrBadRequest = errors.New("bad request")

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, review.ErrCardNotFound),
		errors.Is(err, vocab.ErrItemNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, vocab.ErrAlreadyInSRS),
		errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, vocabulary.ErrNilItem),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, review.ErrCardNotFound),
		errors.Is(err, store.ErrCardNotFound):
		return "Card not found"

	case errors.Is(err, vocab.ErrItemNotFound),
		errors.Is(err, store.ErrVocabularyItemNotFound):
		return "Vocabulary item not found"

	case errors.Is(err, vocab.ErrAlreadyInSRS):
		return "Vocabulary item is already in spaced repetition"

	case errors.Is(err, domain.ErrInvalidDate):
		return "Invalid date: expected YYYY-MM-DD"

	// Domain validation messages only name fields and rules.
	case errors.Is(err, domain.ErrValidation):
		return err.Error()

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, vocabulary.ErrNilItem):
		return "Invalid entity data"

	case errors.Is(err, ErrBadRequest):
		return err.Error()

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns a request validation failure into a message
// naming the first offending field.
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
	}
	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "datetime":
		return "expected YYYY-MM-DD"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the error response matching err. A non-empty
// fallback replaces the generic message for internal errors.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallback != "" {
		message = fallback
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
