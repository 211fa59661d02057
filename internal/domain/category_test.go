package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected Category
	}{
		{"noun", CategoryNoun},
		{"Verb", CategoryVerb},
		{"  ADJECTIVE ", CategoryAdjective},
		{"idiom", CategoryIdiom},
		{"grammar", CategoryGrammar},
		{"other", CategoryOther},
		{"gerund", CategoryOther},
		{"", CategoryOther},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, ParseCategory(tc.input))
		})
	}
}

func TestCategoryPresentation(t *testing.T) {
	t.Parallel()

	all := AllCategories()
	require.Len(t, all, 13)
	assert.Equal(t, CategoryNoun, all[0])
	assert.Equal(t, CategoryOther, all[len(all)-1])

	for _, c := range all {
		assert.NotEmpty(t, c.DisplayName(), c)
		assert.NotEmpty(t, c.Icon(), c)
	}

	assert.Equal(t, "Noun", CategoryNoun.DisplayName())
	assert.Equal(t, "directions_run", CategoryVerb.Icon())
	assert.Equal(t, "lightbulb", CategoryIdiom.Icon())
	assert.Equal(t, "label", Category("unknown").Icon())
	assert.Equal(t, "Other", Category("unknown").DisplayName())
}

func TestCategoryJSON(t *testing.T) {
	t.Parallel()

	var out struct {
		Category Category `json:"category"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"category":"Noun"}`), &out))
	assert.Equal(t, CategoryNoun, out.Category)

	require.NoError(t, json.Unmarshal([]byte(`{"category":"slang"}`), &out))
	assert.Equal(t, CategoryOther, out.Category)

	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"category":"other"}`, string(data))
}
