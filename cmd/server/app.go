package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/ericcurtin/GreengoLingo/internal/api"
	"github.com/ericcurtin/GreengoLingo/internal/config"
	"github.com/ericcurtin/GreengoLingo/internal/domain/srs"
	"github.com/ericcurtin/GreengoLingo/internal/events"
	"github.com/ericcurtin/GreengoLingo/internal/platform/memory"
	"github.com/ericcurtin/GreengoLingo/internal/platform/postgres"
	"github.com/ericcurtin/GreengoLingo/internal/service/review"
	"github.com/ericcurtin/GreengoLingo/internal/service/vocab"
	"github.com/ericcurtin/GreengoLingo/internal/store"
	"github.com/ericcurtin/GreengoLingo/internal/task"
)

// application holds the shared dependencies of the server and owns their
// shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	// db is nil when the in-memory backend is in use.
	db    *sql.DB
	clock api.Clock

	reviewService review.Service
	vocabService  *vocab.Service
	emitter       *events.InMemoryEventEmitter
	digest        *task.Digest
}

// newApplication wires the stores, services and background jobs. With a nil
// db the application runs on the in-memory backend.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
		clock:  time.Now,
	}

	var (
		repos store.Repositories
		tx    store.Transactor
	)
	if db != nil {
		repos = postgres.NewRepositories(db, logger)
		tx = postgres.NewTransactor(db, logger)
		logger.Info("using postgres backend")
	} else {
		mem := memory.NewDB(logger)
		repos = mem.Repositories()
		tx = mem
		logger.Warn("database.url not set, using in-memory backend; data is lost on exit")
	}

	app.emitter = events.NewInMemoryEventEmitter(logger)
	app.emitter.RegisterHandler(events.NewLoggingHandler(logger))

	srsService := srs.NewServiceWithParams(srs.NewParams(srs.ParamsConfig{
		MinEaseFactor:  cfg.SRS.MinEaseFactor,
		MaxEaseFactor:  cfg.SRS.MaxEaseFactor,
		FailurePenalty: cfg.SRS.FailurePenalty,
	}))

	app.reviewService = review.NewService(
		repos.Cards(),
		tx,
		srsService,
		app.emitter,
		review.Config{
			WeakEaseThreshold:     cfg.SRS.WeakEaseThreshold,
			WeakAccuracyThreshold: cfg.SRS.WeakAccuracyThreshold,
		},
		logger,
	)

	app.vocabService = vocab.NewService(repos.VocabularyItems(), tx, logger)
	if err := app.vocabService.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load vocabulary: %w", err)
	}

	if cfg.Digest.Enabled {
		app.digest = task.NewDigest(app.reviewService, cfg.Digest.At, logger)
	}

	logger.Info("application initialized")
	return app, nil
}

// Run starts the digest and the HTTP server and blocks until ctx is done.
func (app *application) Run(ctx context.Context) error {
	if app.digest != nil {
		if err := app.digest.Start(); err != nil {
			return fmt.Errorf("failed to start digest: %w", err)
		}
	}
	defer app.cleanup()

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// healthPinger returns the database pinger for /health, or nil when no
// database is configured.
func (app *application) healthPinger() api.Pinger {
	if app.db == nil {
		return nil
	}
	return app.db
}

// cleanup stops background work. The database is closed by its opener.
func (app *application) cleanup() {
	if app.digest != nil {
		app.digest.Stop()
	}
	app.logger.Info("application shutdown completed")
}
