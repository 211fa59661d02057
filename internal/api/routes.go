package api

import (
	"context"
	"net/http"

	"github.com/ericcurtin/GreengoLingo/internal/api/shared"
	"github.com/go-chi/chi/v5"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}

// HealthHandler answers liveness probes. db may be nil for the in-memory backend.
func HealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db == nil {
			shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
			return
		}
		if err := db.PingContext(r.Context()); err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable, "Database unavailable", err)
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "ok", Database: "ok"})
	}
}

// RegisterRoutes mounts the card and vocabulary endpoints under /api.
func RegisterRoutes(r chi.Router, cards *CardHandler, vocabulary *VocabularyHandler) {
	r.Route("/api", func(r chi.Router) {
		r.Route("/cards", func(r chi.Router) {
			r.Get("/due", cards.DueCards)
			r.Get("/weak", cards.WeakCards)
			r.Get("/stats", cards.Stats)
			r.Get("/{id}", cards.GetCard)
			r.Post("/{id}/preview", cards.PreviewReview)
			r.Post("/{id}/review", cards.SubmitReview)
		})

		r.Route("/vocabulary", func(r chi.Router) {
			r.Post("/", vocabulary.CreateItem)
			r.Get("/", vocabulary.ListItems)
			r.Get("/search", vocabulary.SearchItems)
			r.Get("/stats", vocabulary.Stats)
			r.Get("/{id}", vocabulary.GetItem)
			r.Delete("/{id}", vocabulary.DeleteItem)
			r.Post("/{id}/promote", vocabulary.PromoteItem)
		})
	})
}
