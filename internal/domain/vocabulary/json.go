package vocabulary

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/ericcurtin/GreengoLingo/internal/domain"
)

// storeJSON is the wire format of a Store.
type storeJSON struct {
	Items          map[string]*domain.VocabularyItem `json:"items"`
	ByLevel        map[string][]string               `json:"by_level"`
	ByLesson       map[string][]string               `json:"by_lesson"`
	ByLanguagePair map[string][]string               `json:"by_language_pair"`
	ByCategory     map[domain.Category][]string      `json:"by_category"`
}

// MarshalJSON encodes the items together with the index order.
func (s *Store) MarshalJSON() ([]byte, error) {
	return json.Marshal(storeJSON{
		Items:          s.items,
		ByLevel:        s.byLevel,
		ByLesson:       s.byLesson,
		ByLanguagePair: s.byLanguagePair,
		ByCategory:     s.byCategory,
	})
}

// UnmarshalJSON decodes a store. The items are authoritative: saved index
// order is kept for entries that still match their item, stale entries are
// dropped and items missing from an index are appended in ID order.
func (s *Store) UnmarshalJSON(data []byte) error {
	var raw storeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedData, err)
	}

	restored := NewStore()
	for id, item := range raw.Items {
		if item == nil {
			continue
		}
		item.ID = id
		if item.Tags == nil {
			item.Tags = []string{}
		}
		item.Category = domain.ParseCategory(string(item.Category))
		restored.items[id] = item
	}

	restored.byLevel = restoreIndex(raw.ByLevel, restored.items,
		func(i *domain.VocabularyItem) string { return i.Level })
	restored.byLesson = restoreIndex(raw.ByLesson, restored.items,
		func(i *domain.VocabularyItem) string { return i.LessonID })
	restored.byLanguagePair = restoreIndex(raw.ByLanguagePair, restored.items,
		func(i *domain.VocabularyItem) string { return i.LanguagePair })
	restored.byCategory = restoreIndex(raw.ByCategory, restored.items,
		func(i *domain.VocabularyItem) domain.Category { return i.Category })

	*s = *restored
	return nil
}

func restoreIndex[K comparable](
	saved map[K][]string,
	items map[string]*domain.VocabularyItem,
	keyOf func(*domain.VocabularyItem) K,
) map[K][]string {
	index := make(map[K][]string)
	seen := make(map[string]bool, len(items))

	for key, ids := range saved {
		for _, id := range ids {
			item, ok := items[id]
			if !ok || seen[id] || keyOf(item) != key {
				continue
			}
			index[key] = append(index[key], id)
			seen[id] = true
		}
	}

	missing := make([]string, 0)
	for id := range items {
		if !seen[id] {
			missing = append(missing, id)
		}
	}
	slices.SortFunc(missing, cmp.Compare[string])
	for _, id := range missing {
		key := keyOf(items[id])
		index[key] = append(index[key], id)
	}

	return index
}
