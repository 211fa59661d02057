package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ericcurtin/GreengoLingo/internal/domain/srs"
	"github.com/ericcurtin/GreengoLingo/internal/platform/memory"
	"github.com/ericcurtin/GreengoLingo/internal/service/review"
	"github.com/ericcurtin/GreengoLingo/internal/service/vocab"
	"github.com/ericcurtin/GreengoLingo/internal/snapshot"
)

// deck is a snapshot loaded into the in-memory backend with the review and
// vocabulary services on top.
type deck struct {
	path    string
	db      *memory.DB
	reviews review.Service
	vocab   *vocab.Service
}

func openDeck(ctx context.Context, path string, logger *slog.Logger) (*deck, error) {
	snap, err := snapshot.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load deck %s: %w", path, err)
	}

	db := memory.NewDB(logger)
	if err := snap.Restore(ctx, db.Repositories()); err != nil {
		return nil, fmt.Errorf("failed to load deck %s: %w", path, err)
	}

	repos := db.Repositories()
	vocabService := vocab.NewService(repos.VocabularyItems(), db, logger)
	if err := vocabService.Load(ctx); err != nil {
		return nil, err
	}

	return &deck{
		path:    path,
		db:      db,
		reviews: review.NewService(repos.Cards(), db, srs.NewDefaultService(), nil, review.Config{}, logger),
		vocab:   vocabService,
	}, nil
}

func (d *deck) save(ctx context.Context) error {
	snap, err := snapshot.Capture(ctx, d.db.Repositories())
	if err != nil {
		return err
	}
	if err := snap.Save(d.path); err != nil {
		return fmt.Errorf("failed to save deck %s: %w", d.path, err)
	}
	return nil
}
