package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ericcurtin/GreengoLingo/internal/domain"
	"github.com/go-chi/chi/v5"
)

// Clock supplies the current time to handlers that default the review date.
type Clock func() time.Time

// today formats the clock's current UTC date.
func (c Clock) today() string {
	if c == nil {
		return domain.FormatDate(time.Now())
	}
	return domain.FormatDate(c())
}

// getPathParam extracts a required chi URL parameter.
func getPathParam(r *http.Request, name string) (string, error) {
	value := chi.URLParam(r, name)
	if value == "" {
		return "", fmt.Errorf("%w: %s is required", ErrBadRequest, name)
	}
	return value, nil
}

// dateOrToday returns date, or today's date when it is empty. A non-empty
// date must be YYYY-MM-DD.
func dateOrToday(date string, clock Clock) (string, error) {
	if date == "" {
		return clock.today(), nil
	}
	if _, err := domain.ParseDate(date); err != nil {
		return "", err
	}
	return date, nil
}

// queryInt parses an optional integer query parameter.
func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", ErrBadRequest, name)
	}
	return v, nil
}

// queryBool parses an optional boolean query parameter.
func queryBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean", ErrBadRequest, name)
	}
	return v, nil
}
