package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ericcurtin/GreengoLingo/internal/api/shared"
	"github.com/ericcurtin/GreengoLingo/internal/platform/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrace(t *testing.T) {
	t.Run("generates a trace id", func(t *testing.T) {
		l, buf := logger.NewTestLogger(t)

		var seen string
		handler := Trace(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = shared.GetTraceID(r.Context())
			logger.FromContext(r.Context()).Info("inside")
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		_, err := uuid.Parse(seen)
		require.NoError(t, err)
		assert.Equal(t, seen, rec.Header().Get(shared.TraceIDHeader))

		entries, err := buf.GetLogEntries()
		require.NoError(t, err)
		require.NotEmpty(t, entries)
		for _, e := range entries {
			assert.Equal(t, seen, e["trace_id"])
		}
	})

	t.Run("reuses an incoming trace id", func(t *testing.T) {
		l, _ := logger.NewTestLogger(t)

		var seen string
		handler := Trace(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = shared.GetTraceID(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(shared.TraceIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", rec.Header().Get(shared.TraceIDHeader))
	})
}
