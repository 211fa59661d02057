package vocabulary

import (
	"cmp"
	"slices"

	"github.com/ericcurtin/GreengoLingo/internal/domain"
)

// Store is an indexed collection of vocabulary items.
//
// Items are copied on the way in and on the way out, so callers can never
// change stored items behind the store's back. A Store is not safe for
// concurrent use; callers that share one must synchronise access.
type Store struct {
	items          map[string]*domain.VocabularyItem
	byLevel        map[string][]string
	byLesson       map[string][]string
	byLanguagePair map[string][]string
	byCategory     map[domain.Category][]string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		items:          make(map[string]*domain.VocabularyItem),
		byLevel:        make(map[string][]string),
		byLesson:       make(map[string][]string),
		byLanguagePair: make(map[string][]string),
		byCategory:     make(map[domain.Category][]string),
	}
}

// Add inserts item into the store and all four indices. Adding an item whose
// ID is already present replaces the old item, including its index entries.
func (s *Store) Add(item *domain.VocabularyItem) error {
	if item == nil {
		return ErrNilItem
	}
	if err := item.Validate(); err != nil {
		return err
	}

	s.remove(item.ID)

	stored := item.Clone()
	stored.Category = domain.ParseCategory(string(stored.Category))
	s.items[stored.ID] = stored
	s.index(stored)

	return nil
}

// Update replaces an existing item, moving it between index buckets if its
// level, lesson, language pair or category changed. The item keeps its
// position in any bucket it stays in.
func (s *Store) Update(item *domain.VocabularyItem) error {
	if item == nil {
		return ErrNilItem
	}
	old, ok := s.items[item.ID]
	if !ok {
		return ErrItemNotFound
	}
	if err := item.Validate(); err != nil {
		return err
	}

	stored := item.Clone()
	stored.Category = domain.ParseCategory(string(stored.Category))

	moveKey(s.byLevel, old.Level, stored.Level, stored.ID)
	moveKey(s.byLesson, old.LessonID, stored.LessonID, stored.ID)
	moveKey(s.byLanguagePair, old.LanguagePair, stored.LanguagePair, stored.ID)
	moveKey(s.byCategory, old.Category, stored.Category, stored.ID)
	s.items[stored.ID] = stored

	return nil
}

// Get returns a copy of the item with the given ID.
func (s *Store) Get(id string) (*domain.VocabularyItem, bool) {
	item, ok := s.items[id]
	if !ok {
		return nil, false
	}
	return item.Clone(), true
}

// Remove deletes the item with the given ID from the store and from every
// index, returning the removed item.
func (s *Store) Remove(id string) (*domain.VocabularyItem, bool) {
	item := s.remove(id)
	if item == nil {
		return nil, false
	}
	return item, true
}

// Len returns the number of items in the store.
func (s *Store) Len() int {
	return len(s.items)
}

// All returns every item ordered by ID.
func (s *Store) All() []*domain.VocabularyItem {
	return s.sortedByID(func(*domain.VocabularyItem) bool { return true })
}

// ByLevel returns the items of a proficiency level in insertion order.
// An unknown level yields an empty slice.
func (s *Store) ByLevel(level string) []*domain.VocabularyItem {
	return s.resolve(s.byLevel[level])
}

// ByLesson returns the items introduced by a lesson in insertion order.
func (s *Store) ByLesson(lessonID string) []*domain.VocabularyItem {
	return s.resolve(s.byLesson[lessonID])
}

// ByLanguagePair returns the items of a language pair in insertion order.
func (s *Store) ByLanguagePair(pair string) []*domain.VocabularyItem {
	return s.resolve(s.byLanguagePair[pair])
}

// ByCategory returns the items of a category in insertion order.
func (s *Store) ByCategory(category domain.Category) []*domain.VocabularyItem {
	return s.resolve(s.byCategory[domain.ParseCategory(string(category))])
}

// MarkInSRS flags the item as promoted into spaced repetition. It reports
// whether the item exists; marking an item twice is harmless.
func (s *Store) MarkInSRS(id string) bool {
	item, ok := s.items[id]
	if !ok {
		return false
	}
	item.InSRS = true
	return true
}

// NotInSRS returns the items that have not been promoted yet, ordered by ID.
func (s *Store) NotInSRS() []*domain.VocabularyItem {
	return s.sortedByID(func(item *domain.VocabularyItem) bool { return !item.InSRS })
}

// Search returns items whose source text, target text or tags contain query,
// ignoring case. Items whose source or target equals the query come first;
// the rest follow ordered by ID. A positive limit truncates the result.
func (s *Store) Search(query string, limit int) []*domain.VocabularyItem {
	results := s.sortedByID(func(item *domain.VocabularyItem) bool {
		return item.MatchesQuery(query)
	})

	slices.SortStableFunc(results, func(a, b *domain.VocabularyItem) int {
		aExact, bExact := a.IsExactMatch(query), b.IsExactMatch(query)
		switch {
		case aExact == bExact:
			return 0
		case aExact:
			return -1
		default:
			return 1
		}
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

func (s *Store) index(item *domain.VocabularyItem) {
	s.byLevel[item.Level] = append(s.byLevel[item.Level], item.ID)
	s.byLesson[item.LessonID] = append(s.byLesson[item.LessonID], item.ID)
	s.byLanguagePair[item.LanguagePair] = append(s.byLanguagePair[item.LanguagePair], item.ID)
	s.byCategory[item.Category] = append(s.byCategory[item.Category], item.ID)
}

func (s *Store) remove(id string) *domain.VocabularyItem {
	item, ok := s.items[id]
	if !ok {
		return nil
	}

	delete(s.items, id)
	removeID(s.byLevel, item.Level, id)
	removeID(s.byLesson, item.LessonID, id)
	removeID(s.byLanguagePair, item.LanguagePair, id)
	removeID(s.byCategory, item.Category, id)

	return item
}

func (s *Store) resolve(ids []string) []*domain.VocabularyItem {
	result := make([]*domain.VocabularyItem, 0, len(ids))
	for _, id := range ids {
		if item, ok := s.items[id]; ok {
			result = append(result, item.Clone())
		}
	}
	return result
}

func (s *Store) sortedByID(keep func(*domain.VocabularyItem) bool) []*domain.VocabularyItem {
	result := make([]*domain.VocabularyItem, 0, len(s.items))
	for _, item := range s.items {
		if keep(item) {
			result = append(result, item.Clone())
		}
	}
	slices.SortFunc(result, func(a, b *domain.VocabularyItem) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return result
}

// removeID drops id from the bucket for key, deleting the bucket once empty.
func removeID[K comparable](index map[K][]string, key K, id string) {
	ids := slices.DeleteFunc(index[key], func(v string) bool { return v == id })
	if len(ids) == 0 {
		delete(index, key)
		return
	}
	index[key] = ids
}

func moveKey[K comparable](index map[K][]string, from, to K, id string) {
	if from == to {
		return
	}
	removeID(index, from, id)
	index[to] = append(index[to], id)
}
