package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ericcurtin/GreengoLingo/internal/domain"
	"github.com/ericcurtin/GreengoLingo/internal/platform/logger"
	"github.com/ericcurtin/GreengoLingo/internal/store"
)

// cardColumns lists the srs_cards columns in the order scanCard expects.
// Dates are rendered as YYYY-MM-DD text so they round-trip into the domain's
// string dates regardless of the session's DateStyle.
const cardColumns = `
	word_id, source_word, target_word, language_pair, level, lesson_id,
	pronunciation, example_sentence,
	ease_factor, interval_days, repetitions,
	to_char(next_review_date, 'YYYY-MM-DD'),
	to_char(last_reviewed, 'YYYY-MM-DD'),
	total_reviews, correct_reviews, last_quality,
	to_char(created_at, 'YYYY-MM-DD')
`

// PostgresCardStore implements the store.CardStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCardStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCardStore creates a new PostgreSQL implementation of the CardStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCardStore(db store.DBTX, logger *slog.Logger) *PostgresCardStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCardStore{
		db:     db,
		logger: logger.With(slog.String("component", "card_store")),
	}
}

// Ensure PostgresCardStore implements store.CardStore interface
var _ store.CardStore = (*PostgresCardStore)(nil)

// Create implements store.CardStore.Create
func (s *PostgresCardStore) Create(ctx context.Context, card *domain.Card) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if card == nil {
		return fmt.Errorf("%w: nil card", store.ErrInvalidEntity)
	}
	if err := card.Validate(); err != nil {
		log.Warn("card validation failed during create",
			slog.String("error", err.Error()),
			slog.String("word_id", card.WordID))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO srs_cards (
			word_id, source_word, target_word, language_pair, level, lesson_id,
			pronunciation, example_sentence,
			ease_factor, interval_days, repetitions, next_review_date, last_reviewed,
			total_reviews, correct_reviews, last_quality, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		card.WordID,
		card.SourceWord,
		card.TargetWord,
		card.LanguagePair,
		card.Level,
		card.LessonID,
		nullString(card.Pronunciation),
		nullString(card.ExampleSentence),
		card.EaseFactor,
		card.Interval,
		card.Repetitions,
		card.NextReviewDate,
		nullString(card.LastReviewed),
		card.TotalReviews,
		card.CorrectReviews,
		nullInt(card.LastQuality),
		card.CreatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("card already exists", slog.String("word_id", card.WordID))
			return fmt.Errorf("%w: %s", store.ErrCardExists, card.WordID)
		}
		log.Error("failed to insert card",
			slog.String("error", err.Error()),
			slog.String("word_id", card.WordID))
		return MapError(err)
	}

	log.Debug("card created successfully", slog.String("word_id", card.WordID))
	return nil
}

// GetByID implements store.CardStore.GetByID
func (s *PostgresCardStore) GetByID(ctx context.Context, wordID string) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + cardColumns + ` FROM srs_cards WHERE word_id = $1`
	card, err := scanCard(s.db.QueryRowContext(ctx, query, wordID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("card not found", slog.String("word_id", wordID))
			return nil, store.ErrCardNotFound
		}
		log.Error("failed to get card",
			slog.String("error", err.Error()),
			slog.String("word_id", wordID))
		return nil, MapError(err)
	}

	return card, nil
}

// Update implements store.CardStore.Update
// Only the scheduling and review history columns are written.
func (s *PostgresCardStore) Update(ctx context.Context, card *domain.Card) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if card == nil {
		return fmt.Errorf("%w: nil card", store.ErrInvalidEntity)
	}
	if err := card.Validate(); err != nil {
		log.Warn("card validation failed during update",
			slog.String("error", err.Error()),
			slog.String("word_id", card.WordID))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE srs_cards
		SET ease_factor = $2,
			interval_days = $3,
			repetitions = $4,
			next_review_date = $5,
			last_reviewed = $6,
			total_reviews = $7,
			correct_reviews = $8,
			last_quality = $9,
			updated_at = NOW()
		WHERE word_id = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		card.WordID,
		card.EaseFactor,
		card.Interval,
		card.Repetitions,
		card.NextReviewDate,
		nullString(card.LastReviewed),
		card.TotalReviews,
		card.CorrectReviews,
		nullInt(card.LastQuality),
	)
	if err != nil {
		log.Error("failed to update card",
			slog.String("error", err.Error()),
			slog.String("word_id", card.WordID))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrCardNotFound); err != nil {
		log.Debug("card not found for update", slog.String("word_id", card.WordID))
		return err
	}

	log.Debug("card updated successfully",
		slog.String("word_id", card.WordID),
		slog.String("next_review_date", card.NextReviewDate))
	return nil
}

// Delete implements store.CardStore.Delete
func (s *PostgresCardStore) Delete(ctx context.Context, wordID string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM srs_cards WHERE word_id = $1`, wordID)
	if err != nil {
		log.Error("failed to delete card",
			slog.String("error", err.Error()),
			slog.String("word_id", wordID))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrCardNotFound); err != nil {
		log.Debug("card not found for deletion", slog.String("word_id", wordID))
		return err
	}

	log.Debug("card deleted successfully", slog.String("word_id", wordID))
	return nil
}

// List implements store.CardStore.List
func (s *PostgresCardStore) List(ctx context.Context) ([]*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT `+cardColumns+` FROM srs_cards ORDER BY word_id`)
	if err != nil {
		log.Error("failed to list cards", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	cards := make([]*domain.Card, 0)
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			log.Error("failed to scan card row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating card rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Debug("cards listed", slog.Int("count", len(cards)))
	return cards, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(row rowScanner) (*domain.Card, error) {
	var (
		card                         domain.Card
		pronunciation, example, last sql.NullString
		lastQuality                  sql.NullInt32
	)

	err := row.Scan(
		&card.WordID,
		&card.SourceWord,
		&card.TargetWord,
		&card.LanguagePair,
		&card.Level,
		&card.LessonID,
		&pronunciation,
		&example,
		&card.EaseFactor,
		&card.Interval,
		&card.Repetitions,
		&card.NextReviewDate,
		&last,
		&card.TotalReviews,
		&card.CorrectReviews,
		&lastQuality,
		&card.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	card.Pronunciation = stringPtr(pronunciation)
	card.ExampleSentence = stringPtr(example)
	card.LastReviewed = stringPtr(last)
	if lastQuality.Valid {
		q := int(lastQuality.Int32)
		card.LastQuality = &q
	}

	return &card, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullInt(i *int) sql.NullInt32 {
	if i == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*i), Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
