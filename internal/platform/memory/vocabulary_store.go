package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/ericcurtin/GreengoLingo/internal/domain"
	"github.com/ericcurtin/GreengoLingo/internal/store"
)

// VocabularyItemStore implements store.VocabularyItemStore in memory.
type VocabularyItemStore struct {
	r *repositories
}

var _ store.VocabularyItemStore = (*VocabularyItemStore)(nil)

// Save implements store.VocabularyItemStore.Save
func (s *VocabularyItemStore) Save(ctx context.Context, item *domain.VocabularyItem) error {
	if item == nil {
		return fmt.Errorf("%w: nil vocabulary item", store.ErrInvalidEntity)
	}
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}
	return s.r.with(func(st *state) error {
		if _, exists := st.items[item.ID]; !exists {
			st.itemOrder = append(st.itemOrder, item.ID)
		}
		st.items[item.ID] = item.Clone()
		return nil
	})
}

// Delete implements store.VocabularyItemStore.Delete
func (s *VocabularyItemStore) Delete(ctx context.Context, id string) error {
	return s.r.with(func(st *state) error {
		if _, ok := st.items[id]; !ok {
			return store.ErrVocabularyItemNotFound
		}
		delete(st.items, id)
		st.itemOrder = slices.DeleteFunc(st.itemOrder, func(v string) bool { return v == id })
		return nil
	})
}

// List implements store.VocabularyItemStore.List
func (s *VocabularyItemStore) List(ctx context.Context) ([]*domain.VocabularyItem, error) {
	items := make([]*domain.VocabularyItem, 0)
	err := s.r.with(func(st *state) error {
		for _, id := range st.itemOrder {
			items = append(items, st.items[id].Clone())
		}
		return nil
	})
	return items, err
}
