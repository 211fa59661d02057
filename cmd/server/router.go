package main

import (
	"net/http"

	"github.com/ericcurtin/GreengoLingo/internal/api"
	apiMiddleware "github.com/ericcurtin/GreengoLingo/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// setupRouter creates the router with middleware, CORS and every route.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace(app.logger))

	r.Get("/health", api.HealthHandler(app.healthPinger()))
	api.RegisterRoutes(r,
		api.NewCardHandler(app.reviewService, app.clock, app.logger),
		api.NewVocabularyHandler(app.vocabService, app.clock, app.logger))

	return cors.New(cors.Options{
		AllowedOrigins: app.config.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Accept", "Origin", "X-Trace-ID"},
		ExposedHeaders: []string{"X-Trace-ID"},
		MaxAge:         86400,
	}).Handler(r)
}
