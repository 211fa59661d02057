package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"generic error", errors.New("some error"), false},
		{"ErrNotFound", ErrNotFound, true},
		{"wrapped ErrNotFound", fmt.Errorf("failed to do something: %w", ErrNotFound), true},
		{"ErrCardNotFound", ErrCardNotFound, true},
		{"wrapped ErrVocabularyItemNotFound", fmt.Errorf("lookup: %w", ErrVocabularyItemNotFound), true},
		{"duplicate is not not-found", ErrCardExists, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(ErrDuplicate))
	assert.True(t, IsDuplicateError(ErrCardExists))
	assert.True(t, IsDuplicateError(fmt.Errorf("create: %w", ErrCardExists)))
	assert.False(t, IsDuplicateError(ErrCardNotFound))
	assert.False(t, IsDuplicateError(nil))
}

func TestStoreError(t *testing.T) {
	cause := errors.New("unique_violation")
	err := NewStoreError("card", "create", "duplicate word", fmt.Errorf("%w: %w", ErrCardExists, cause))

	assert.Equal(t, "create operation on card failed: duplicate word: entity already exists: card: unique_violation", err.Error())
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.ErrorIs(t, err, cause)

	var storeErr *StoreError
	assert.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &storeErr))
	assert.Equal(t, "card", storeErr.Entity)

	plain := NewStoreError("vocabulary_item", "delete", "no rows", nil)
	assert.Equal(t, "delete operation on vocabulary_item failed: no rows", plain.Error())
	assert.Nil(t, plain.Unwrap())
}
