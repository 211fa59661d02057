package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ericcurtin/GreengoLingo/internal/domain"
	"github.com/go-co-op/gocron"
)

// DefaultDigestAt is the UTC time of day the digest runs when none is configured.
const DefaultDigestAt = "07:00"

// ErrDigestRunning is returned by Start when the digest is already scheduled.
var ErrDigestRunning = errors.New("digest already running")

// StatsSource computes collection statistics for a date.
type StatsSource interface {
	Stats(ctx context.Context, date string) (*domain.CardStats, error)
}

// Digest periodically computes card statistics and logs them.
type Digest struct {
	source StatsSource
	at     string
	now    func() time.Time
	logger *slog.Logger

	mu        sync.Mutex
	scheduler *gocron.Scheduler
}

// DigestOption configures a Digest.
type DigestOption func(*Digest)

// WithClock overrides the clock used to pick the digest date.
func WithClock(now func() time.Time) DigestOption {
	return func(d *Digest) {
		d.now = now
	}
}

// NewDigest creates a digest job that runs daily at at (HH:MM, UTC).
// An empty at uses DefaultDigestAt.
func NewDigest(source StatsSource, at string, logger *slog.Logger, opts ...DigestOption) *Digest {
	if source == nil {
		panic("source cannot be nil")
	}
	if at == "" {
		at = DefaultDigestAt
	}
	if logger == nil {
		logger = slog.Default()
	}

	d := &Digest{
		source: source,
		at:     at,
		now:    time.Now,
		logger: logger.With(slog.String("component", "review_digest")),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Start schedules the digest and returns immediately.
func (d *Digest) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.scheduler != nil {
		return ErrDigestRunning
	}
	if _, err := time.Parse("15:04", d.at); err != nil {
		return fmt.Errorf("invalid digest time %q: %w", d.at, err)
	}

	s := gocron.NewScheduler(time.UTC)
	if _, err := s.Every(1).Day().At(d.at).Do(d.run); err != nil {
		return fmt.Errorf("failed to schedule digest: %w", err)
	}
	s.StartAsync()
	d.scheduler = s

	d.logger.Info("review digest scheduled", slog.String("at", d.at))
	return nil
}

// Stop cancels the schedule. It is safe to call Stop on a digest that was
// never started.
func (d *Digest) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.scheduler == nil {
		return
	}
	d.scheduler.Stop()
	d.scheduler = nil
	d.logger.Info("review digest stopped")
}

// NextRun reports when the digest will next fire, or the zero time if it is
// not scheduled.
func (d *Digest) NextRun() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.scheduler == nil {
		return time.Time{}
	}
	_, next := d.scheduler.NextRun()
	return next
}

// RunOnce computes and logs the digest for the current UTC date.
func (d *Digest) RunOnce(ctx context.Context) (*domain.CardStats, error) {
	date := domain.FormatDate(d.now())

	stats, err := d.source.Stats(ctx, date)
	if err != nil {
		d.logger.Error("failed to compute review digest",
			slog.String("date", date),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to compute review digest: %w", err)
	}

	d.logger.Info("review digest",
		slog.String("date", date),
		slog.Int("total_cards", stats.TotalCards),
		slog.Int("due_today", stats.DueToday),
		slog.Int("new_cards", stats.NewCards),
		slog.Int("learning_cards", stats.LearningCards),
		slog.Int("familiar_cards", stats.FamiliarCards),
		slog.Int("proficient_cards", stats.ProficientCards),
		slog.Int("mastered_cards", stats.MasteredCards),
		slog.Float64("average_ease_factor", stats.AverageEaseFactor),
		slog.Float64("average_accuracy", stats.AverageAccuracy))

	return stats, nil
}

func (d *Digest) run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	_, _ = d.RunOnce(ctx)
}
