package vocabulary

import (
	"encoding/json"
	"testing"

	"github.com/ericcurtin/GreengoLingo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreJSONPreservesOrderAndQueries(t *testing.T) {
	t.Parallel()
	s := seededStore(t)
	require.True(t, s.MarkInSRS("v2"))

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &fields))
	for _, key := range []string{"items", "by_level", "by_lesson", "by_language_pair", "by_category"} {
		assert.Contains(t, fields, key)
	}

	restored := NewStore()
	require.NoError(t, json.Unmarshal(data, restored))

	assert.Equal(t, s.Len(), restored.Len())
	assert.Equal(t, itemIDs(s.ByLevel("A1")), itemIDs(restored.ByLevel("A1")))
	assert.Equal(t, itemIDs(s.ByCategory(domain.CategoryInterjection)), itemIDs(restored.ByCategory(domain.CategoryInterjection)))
	assert.Equal(t, s.Stats(), restored.Stats())
	assert.Equal(t, itemIDs(s.NotInSRS()), itemIDs(restored.NotInSRS()))
	assertConsistent(t, restored)
}

func TestStoreJSONRepairsIndices(t *testing.T) {
	t.Parallel()

	raw := `{
		"items": {
			"v1": {"id":"v1","source":"cat","target":"gato","lesson_id":"animals","level":"A1",
				"language_pair":"en_to_pt_br","category":"Noun","tags":["pet"],"in_srs":false,"added_at":"2024-01-15"},
			"v2": {"id":"v2","source":"dog","target":"cão","lesson_id":"animals","level":"A1",
				"language_pair":"en_to_pt_br","category":"noun","in_srs":true,"added_at":"2024-01-15"}
		},
		"by_level": {"A1": ["v2", "ghost"], "B2": ["v1"]}
	}`

	s := NewStore()
	require.NoError(t, json.Unmarshal([]byte(raw), s))

	assert.Equal(t, []string{"v2", "v1"}, itemIDs(s.ByLevel("A1")))
	assert.Empty(t, s.ByLevel("B2"))
	assert.Equal(t, []string{"v1", "v2"}, itemIDs(s.ByLesson("animals")))
	assert.Len(t, s.ByCategory(domain.CategoryNoun), 2)

	got, _ := s.Get("v2")
	assert.NotNil(t, got.Tags)
	assertConsistent(t, s)
}

func TestStoreJSONMalformed(t *testing.T) {
	t.Parallel()

	s := seededStore(t)
	err := json.Unmarshal([]byte(`{"items": [1, 2]}`), s)
	assert.ErrorIs(t, err, ErrMalformedData)
	assert.Equal(t, 4, s.Len())

	err = json.Unmarshal([]byte(`{"items": `), s)
	assert.Error(t, err)
}
