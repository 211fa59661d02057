package domain

import "strings"

// Category is the grammatical or usage category of a vocabulary item.
type Category string

// Supported categories. Anything else is treated as CategoryOther.
const (
	CategoryNoun         Category = "noun"
	CategoryVerb         Category = "verb"
	CategoryAdjective    Category = "adjective"
	CategoryAdverb       Category = "adverb"
	CategoryPronoun      Category = "pronoun"
	CategoryPreposition  Category = "preposition"
	CategoryConjunction  Category = "conjunction"
	CategoryInterjection Category = "interjection"
	CategoryPhrase       Category = "phrase"
	CategoryExpression   Category = "expression"
	CategoryIdiom        Category = "idiom"
	CategoryGrammar      Category = "grammar"
	CategoryOther        Category = "other"
)

type categoryInfo struct {
	displayName string
	icon        string
}

var categories = map[Category]categoryInfo{
	CategoryNoun:         {"Noun", "category"},
	CategoryVerb:         {"Verb", "directions_run"},
	CategoryAdjective:    {"Adjective", "palette"},
	CategoryAdverb:       {"Adverb", "speed"},
	CategoryPronoun:      {"Pronoun", "person"},
	CategoryPreposition:  {"Preposition", "place"},
	CategoryConjunction:  {"Conjunction", "link"},
	CategoryInterjection: {"Interjection", "chat_bubble"},
	CategoryPhrase:       {"Phrase", "short_text"},
	CategoryExpression:   {"Expression", "format_quote"},
	CategoryIdiom:        {"Idiom", "lightbulb"},
	CategoryGrammar:      {"Grammar", "rule"},
	CategoryOther:        {"Other", "label"},
}

// AllCategories returns every category in display order.
func AllCategories() []Category {
	return []Category{
		CategoryNoun,
		CategoryVerb,
		CategoryAdjective,
		CategoryAdverb,
		CategoryPronoun,
		CategoryPreposition,
		CategoryConjunction,
		CategoryInterjection,
		CategoryPhrase,
		CategoryExpression,
		CategoryIdiom,
		CategoryGrammar,
		CategoryOther,
	}
}

// ParseCategory converts a category name to a Category, ignoring case and
// surrounding whitespace. Unknown names map to CategoryOther.
func ParseCategory(s string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := categories[c]; ok {
		return c
	}
	return CategoryOther
}

// DisplayName returns the capitalised name of the category.
func (c Category) DisplayName() string {
	return categories[ParseCategory(string(c))].displayName
}

// Icon returns the icon identifier for the category.
func (c Category) Icon() string {
	return categories[ParseCategory(string(c))].icon
}

// UnmarshalText normalises the category, so unknown values decode as
// CategoryOther instead of failing.
func (c *Category) UnmarshalText(text []byte) error {
	*c = ParseCategory(string(text))
	return nil
}
