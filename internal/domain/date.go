package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar date format used for every date in the domain.
const DateLayout = "2006-01-02"

// FallbackDate is the base date used by AddDays when a date component
// cannot be read.
const FallbackDate = "2024-01-01"

// FormatDate renders t as a YYYY-MM-DD string in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// AddDays returns date shifted forward by days calendar days, honouring month
// lengths and the Gregorian leap-year rule.
//
// Malformed input never fails: a string that does not have three dash
// separated parts is returned unchanged, and any unreadable year, month or
// day falls back to the matching component of FallbackDate.
func AddDays(date string, days int) string {
	if t, err := time.Parse(DateLayout, date); err == nil {
		return t.AddDate(0, 0, days).Format(DateLayout)
	}

	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}

	year := atoiOr(parts[0], 2024)
	month := atoiOr(parts[1], 1)
	day := atoiOr(parts[2], 1)
	if month < 1 || month > 12 {
		month = 1
	}
	if day < 1 {
		day = 1
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.AddDate(0, 0, days).Format(DateLayout)
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
