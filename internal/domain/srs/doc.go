// Package srs implements the SM-2 spaced-repetition scheduler.
//
// The scheduler is split into a pure calculation step, which turns a card and
// a 0-5 quality rating into an immutable Update, and an apply step, which is
// the only code that changes a card's scheduling state. Collection helpers
// select due, weak and new cards and order a review queue.
package srs
