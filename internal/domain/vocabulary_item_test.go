package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVocabularyItem(t *testing.T) {
	t.Parallel()

	item, err := NewVocabularyItem("v1", "good morning", "bom dia", "greetings", "A1", "en_to_pt_br", "Phrase", "2024-01-15")
	require.NoError(t, err)

	assert.Equal(t, CategoryPhrase, item.Category)
	assert.False(t, item.InSRS)
	assert.NotNil(t, item.Tags)
	assert.Empty(t, item.Tags)
	assert.Equal(t, "2024-01-15", item.AddedAt)

	_, err = NewVocabularyItem("", "a", "b", "l", "A1", "p", CategoryNoun, "2024-01-15")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestVocabularyItemMatchesQuery(t *testing.T) {
	t.Parallel()

	item := &VocabularyItem{
		ID:     "v1",
		Source: "Good Morning",
		Target: "Bom Dia",
		Tags:   []string{"Greeting", "daily"},
	}

	tests := []struct {
		query    string
		expected bool
	}{
		{"good", true},
		{"MORNING", true},
		{"dia", true},
		{"greet", true},
		{"DAILY", true},
		{"night", false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.query, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, item.MatchesQuery(tc.query))
		})
	}
}

func TestVocabularyItemIsExactMatch(t *testing.T) {
	t.Parallel()

	item := &VocabularyItem{Source: "Good", Target: "Bom"}
	assert.True(t, item.IsExactMatch("good"))
	assert.True(t, item.IsExactMatch("BOM"))
	assert.False(t, item.IsExactMatch("goo"))
}

func TestVocabularyItemJSON(t *testing.T) {
	t.Parallel()

	raw := `{"id":"v1","source":"cat","target":"gato","lesson_id":"l1","level":"A1",
		"language_pair":"en_to_pt_br","category":"Noun","tags":["animal"],"in_srs":true,
		"added_at":"2024-01-15"}`

	var item VocabularyItem
	require.NoError(t, json.Unmarshal([]byte(raw), &item))
	assert.Equal(t, CategoryNoun, item.Category)
	assert.Nil(t, item.Pronunciation)
	assert.Nil(t, item.Notes)
	assert.True(t, item.InSRS)
	assert.Equal(t, []string{"animal"}, item.Tags)

	err := json.Unmarshal([]byte(`{"id":`), &item)
	assert.Error(t, err)
}

func TestVocabularyItemClone(t *testing.T) {
	t.Parallel()

	notes := "irregular"
	item := &VocabularyItem{ID: "v1", Source: "go", Target: "ir", Tags: []string{"verb"}, Notes: &notes}

	clone := item.Clone()
	clone.Tags[0] = "changed"
	*clone.Notes = "changed"

	assert.Equal(t, "verb", item.Tags[0])
	assert.Equal(t, "irregular", *item.Notes)
}
