package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReviewEvent(t *testing.T) {
	event := NewReviewEvent("w1", 4, true, "2024-01-16", "2024-01-15")

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, ReviewRecorded, event.Type)
	assert.Equal(t, "w1", event.WordID)
	assert.Equal(t, 4, event.Quality)
	assert.True(t, event.WasSuccessful)
	assert.Equal(t, "2024-01-16", event.NextReviewDate)
	assert.Equal(t, "2024-01-15", event.ReviewedOn)
	assert.WithinDuration(t, time.Now(), event.CreatedAt, 2*time.Second)

	other := NewReviewEvent("w1", 4, true, "2024-01-16", "2024-01-15")
	assert.NotEqual(t, event.ID, other.ID)
}

func TestReviewEvent_JSON(t *testing.T) {
	event := NewReviewEvent("w1", 2, false, "2024-01-16", "2024-01-15")

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, "review_recorded", fields["type"])
	assert.Equal(t, "w1", fields["word_id"])
	assert.Equal(t, false, fields["was_successful"])
	assert.Equal(t, "2024-01-15", fields["reviewed_on"])
}

// MockEventHandler implements the EventHandler interface for testing
type MockEventHandler struct {
	// The last event received by this handler
	LastEvent *ReviewEvent
	// Error to return from HandleEvent
	HandlerError error
	// Count of events handled
	HandledCount int
}

// HandleEvent implements the EventHandler interface
func (h *MockEventHandler) HandleEvent(ctx context.Context, event *ReviewEvent) error {
	h.LastEvent = event
	h.HandledCount++
	return h.HandlerError
}

func TestEventHandlerFunc(t *testing.T) {
	var got *ReviewEvent
	h := EventHandlerFunc(func(ctx context.Context, event *ReviewEvent) error {
		got = event
		return errors.New("nope")
	})

	event := NewReviewEvent("w1", 5, true, "2024-01-16", "2024-01-15")
	assert.EqualError(t, h.HandleEvent(context.Background(), event), "nope")
	assert.Same(t, event, got)
}
