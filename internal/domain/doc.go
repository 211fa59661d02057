// Package domain contains the core learning entities of the application:
// spaced-repetition cards, vocabulary items and the value objects derived
// from them (mastery levels, categories and collection statistics).
//
// Everything in this package is deterministic. Operations that depend on
// "today" take the current date explicitly as a YYYY-MM-DD string, and no
// function performs I/O or reads the system clock.
package domain
