package shared

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceID(t *testing.T) {
	assert.Equal(t, "", GetTraceID(context.Background()))

	ctx := SetTraceID(context.Background(), "given")
	assert.Equal(t, "given", GetTraceID(ctx))

	generated := GetTraceID(SetTraceID(context.Background(), ""))
	assert.Len(t, generated, 36)
}

func TestRespondWithErrorAndLog(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/cards/x", nil)
	req = req.WithContext(SetTraceID(req.Context(), "trace-1"))
	rec := httptest.NewRecorder()

	RespondWithErrorAndLog(rec, req, http.StatusInternalServerError, "Something went wrong",
		errors.New("dial postgres://u:p@host/db failed"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{"error": "Something went wrong", "trace_id": "trace-1"}, body)
}

type sample struct {
	Quality *int   `json:"quality" validate:"required"`
	Date    string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

func TestDecodeAndValidate(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"quality":4,"date":"2024-01-15"}`))
		var s sample
		require.NoError(t, DecodeJSON(httptest.NewRecorder(), req, &s))
		require.NoError(t, ValidateRequest(s))
		assert.Equal(t, 4, *s.Quality)
	})

	t.Run("unknown field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"quality":4,"bogus":1}`))
		var s sample
		assert.Error(t, DecodeJSON(httptest.NewRecorder(), req, &s))
	})

	t.Run("missing required field", func(t *testing.T) {
		err := ValidateRequest(sample{Date: "2024-01-15"})
		assert.ErrorContains(t, err, "'quality'")
	})

	t.Run("optional body may be empty", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		var s sample
		assert.NoError(t, DecodeOptionalJSON(httptest.NewRecorder(), req, &s))
		assert.Nil(t, s.Quality)
	})
}
