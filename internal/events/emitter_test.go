package events

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/ericcurtin/GreengoLingo/internal/platform/logger"
	"github.com/stretchr/testify/assert"
)

func TestInMemoryEventEmitter(t *testing.T) {
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	event := NewReviewEvent("w1", 4, true, "2024-01-16", "2024-01-15")

	t.Run("emit event with no handlers", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(discard)
		assert.NoError(t, emitter.EmitEvent(context.Background(), event))
	})

	t.Run("emit event with successful handlers", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(discard)
		handler1 := &MockEventHandler{}
		handler2 := &MockEventHandler{}
		emitter.RegisterHandler(handler1)
		emitter.RegisterHandler(handler2)

		assert.NoError(t, emitter.EmitEvent(context.Background(), event))
		assert.Equal(t, 1, handler1.HandledCount)
		assert.Equal(t, 1, handler2.HandledCount)
		assert.Same(t, event, handler1.LastEvent)
		assert.Same(t, event, handler2.LastEvent)
	})

	t.Run("emit event with failing handler", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(discard)
		failingHandler := &MockEventHandler{HandlerError: errors.New("handler error")}
		successHandler := &MockEventHandler{}
		emitter.RegisterHandler(failingHandler)
		emitter.RegisterHandler(successHandler)

		err := emitter.EmitEvent(context.Background(), event)
		assert.EqualError(t, err, "handler error")
		assert.Equal(t, 1, failingHandler.HandledCount)
		assert.Equal(t, 1, successHandler.HandledCount)
	})

	t.Run("nil event", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(nil)
		assert.Error(t, emitter.EmitEvent(context.Background(), nil))
	})
}

func TestLoggingHandler(t *testing.T) {
	l, buf := logger.NewTestLogger(t)
	h := NewLoggingHandler(l)

	event := NewReviewEvent("w7", 1, false, "2024-01-16", "2024-01-15")
	assert.NoError(t, h.HandleEvent(context.Background(), event))

	entries, err := buf.GetLogEntries()
	assert.NoError(t, err)
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "review recorded", entries[0]["msg"])
		assert.Equal(t, "w7", entries[0]["word_id"])
		assert.Equal(t, "review_log", entries[0]["component"])
		assert.Equal(t, false, entries[0]["was_successful"])
	}
}
