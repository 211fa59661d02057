// Package vocabulary provides an indexed, in-memory bank of vocabulary items.
//
// A Store keeps its items keyed by ID together with four secondary indices
// (level, lesson, language pair and category). Every mutation goes through
// the Store so the indices can never disagree with the items they point at.
package vocabulary
