package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ericcurtin/GreengoLingo/internal/domain"
	"github.com/ericcurtin/GreengoLingo/internal/domain/srs"
	"github.com/ericcurtin/GreengoLingo/internal/events"
	"github.com/ericcurtin/GreengoLingo/internal/platform/logger"
	"github.com/ericcurtin/GreengoLingo/internal/store"
)

// Default weak-card thresholds.
const (
	DefaultWeakEaseThreshold     = 2.0
	DefaultWeakAccuracyThreshold = 60.0
)

// Config holds the tunables of the review service.
type Config struct {
	// WeakEaseThreshold flags cards whose ease factor is below it.
	WeakEaseThreshold float64
	// WeakAccuracyThreshold flags cards whose accuracy percentage is below it.
	WeakAccuracyThreshold float64
}

// Verify interface compliance at compile time
var _ Service = (*serviceImpl)(nil)

type serviceImpl struct {
	cards      store.CardStore
	tx         store.Transactor
	srsService srs.Service
	emitter    events.EventEmitter
	cfg        Config
	logger     *slog.Logger
}

// NewService creates a review Service.
// cards is used for reads; tx runs each submitted review atomically.
// emitter may be nil, in which case no events are published.
// Zero thresholds in cfg fall back to the defaults.
func NewService(
	cards store.CardStore,
	tx store.Transactor,
	srsService srs.Service,
	emitter events.EventEmitter,
	cfg Config,
	logger *slog.Logger,
) Service {
	if cards == nil {
		panic("cards cannot be nil")
	}
	if tx == nil {
		panic("tx cannot be nil")
	}
	if srsService == nil {
		srsService = srs.NewDefaultService()
	}
	if cfg.WeakEaseThreshold <= 0 {
		cfg.WeakEaseThreshold = DefaultWeakEaseThreshold
	}
	if cfg.WeakAccuracyThreshold <= 0 {
		cfg.WeakAccuracyThreshold = DefaultWeakAccuracyThreshold
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &serviceImpl{
		cards:      cards,
		tx:         tx,
		srsService: srsService,
		emitter:    emitter,
		cfg:        cfg,
		logger:     logger.With(slog.String("component", "review_service")),
	}
}

// DueCards implements Service.DueCards.
func (s *serviceImpl) DueCards(ctx context.Context, date string, limit int) ([]*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := domain.ParseDate(date); err != nil {
		return nil, err
	}

	all, err := s.cards.List(ctx)
	if err != nil {
		log.Error("failed to list cards", slog.String("error", err.Error()))
		return nil, NewServiceError("due_cards", "failed to list cards", err)
	}

	due := srs.DueCards(all, date)
	srs.SortByPriority(due, date)
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}

	log.Debug("retrieved due cards",
		slog.String("date", date),
		slog.Int("due", len(due)),
		slog.Int("total", len(all)))
	return due, nil
}

// GetCard implements Service.GetCard.
func (s *serviceImpl) GetCard(ctx context.Context, wordID string) (*domain.Card, error) {
	card, err := s.cards.GetByID(ctx, wordID)
	if err != nil {
		return nil, s.mapStoreError(ctx, "get_card", wordID, err)
	}
	return card, nil
}

// PreviewReview implements Service.PreviewReview.
func (s *serviceImpl) PreviewReview(
	ctx context.Context,
	wordID string,
	quality int,
	date string,
) (*srs.Update, error) {
	if _, err := domain.ParseDate(date); err != nil {
		return nil, err
	}

	card, err := s.cards.GetByID(ctx, wordID)
	if err != nil {
		return nil, s.mapStoreError(ctx, "preview_review", wordID, err)
	}

	update, err := s.srsService.CalculateNextReview(card, quality, date)
	if err != nil {
		return nil, NewServiceError("preview_review", "failed to calculate next review", err)
	}
	return update, nil
}

// SubmitReview implements Service.SubmitReview.
func (s *serviceImpl) SubmitReview(
	ctx context.Context,
	wordID string,
	quality int,
	date string,
) (*Result, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := domain.ParseDate(date); err != nil {
		return nil, err
	}

	log.Debug("processing review",
		slog.String("word_id", wordID),
		slog.Int("quality", quality),
		slog.String("date", date))

	var result *Result
	err := s.tx.RunInTx(ctx, func(ctx context.Context, repos store.Repositories) error {
		card, err := repos.Cards().GetByID(ctx, wordID)
		if err != nil {
			return err
		}

		update, err := s.srsService.Review(card, quality, date)
		if err != nil {
			return fmt.Errorf("failed to review card: %w", err)
		}

		if err := repos.Cards().Update(ctx, card); err != nil {
			return fmt.Errorf("failed to store reviewed card: %w", err)
		}

		result = &Result{Card: card, Update: update}
		return nil
	})
	if err != nil {
		return nil, s.mapStoreError(ctx, "submit_review", wordID, err)
	}

	log.Info("review recorded",
		slog.String("word_id", wordID),
		slog.Int("quality", int(result.Update.Quality)),
		slog.Bool("was_successful", result.Update.WasSuccessful),
		slog.Float64("ease_factor", result.Card.EaseFactor),
		slog.Int("interval", result.Card.Interval),
		slog.String("next_review_date", result.Card.NextReviewDate))

	if s.emitter != nil {
		event := events.NewReviewEvent(
			wordID,
			int(result.Update.Quality),
			result.Update.WasSuccessful,
			result.Update.NextReviewDate,
			date,
		)
		if err := s.emitter.EmitEvent(ctx, event); err != nil {
			// The review is already committed; a failing listener does not undo it.
			log.Warn("failed to emit review event",
				slog.String("error", err.Error()),
				slog.String("word_id", wordID))
		}
	}

	return result, nil
}

// WeakCards implements Service.WeakCards.
func (s *serviceImpl) WeakCards(ctx context.Context) ([]*domain.Card, error) {
	all, err := s.cards.List(ctx)
	if err != nil {
		return nil, NewServiceError("weak_cards", "failed to list cards", err)
	}
	return srs.WeakCards(all, s.cfg.WeakEaseThreshold, s.cfg.WeakAccuracyThreshold), nil
}

// Stats implements Service.Stats.
func (s *serviceImpl) Stats(ctx context.Context, date string) (*domain.CardStats, error) {
	if _, err := domain.ParseDate(date); err != nil {
		return nil, err
	}

	all, err := s.cards.List(ctx)
	if err != nil {
		return nil, NewServiceError("stats", "failed to list cards", err)
	}

	stats := domain.NewCardStats(all, date)
	return &stats, nil
}

func (s *serviceImpl) mapStoreError(ctx context.Context, operation, wordID string, err error) error {
	if errors.Is(err, store.ErrCardNotFound) {
		return ErrCardNotFound
	}

	logger.FromContextOrDefault(ctx, s.logger).Error("review operation failed",
		slog.String("operation", operation),
		slog.String("error", err.Error()),
		slog.String("word_id", wordID))
	return NewServiceError(operation, "failed to process card", err)
}
