// Package main implements the GreengoLingo API server, which schedules
// vocabulary reviews with the SM-2 spaced repetition algorithm.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ericcurtin/GreengoLingo/internal/config"
	"github.com/ericcurtin/GreengoLingo/internal/platform/logger"
	"github.com/ericcurtin/GreengoLingo/internal/platform/postgres"
)

// errMigrateWithoutDatabase is returned when -migrate is used on the
// in-memory backend.
var errMigrateWithoutDatabase = errors.New("migrations require database.url to be set")

func main() {
	migrateCmd := flag.String("migrate", "",
		"run a migration command (up, down, status, version) and exit")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

// run loads configuration, opens the configured backend and serves until
// SIGINT or SIGTERM.
func run(migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Bool("database", cfg.UsesDatabase()),
		slog.Bool("digest_enabled", cfg.Digest.Enabled))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var db *sql.DB
	if cfg.UsesDatabase() {
		db, err = postgres.Open(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("error closing database connection", slog.String("error", err.Error()))
			}
		}()

		command := migrateCmd
		if command == "" {
			command = postgres.MigrateUp
		}
		if err := postgres.Migrate(ctx, db, command, log); err != nil {
			return fmt.Errorf("migration %s failed: %w", command, err)
		}
		if migrateCmd != "" {
			return nil
		}
	} else if migrateCmd != "" {
		return errMigrateWithoutDatabase
	}

	app, err := newApplication(ctx, cfg, log, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
