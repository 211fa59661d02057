package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ericcurtin/GreengoLingo/internal/domain"
	"github.com/ericcurtin/GreengoLingo/internal/platform/logger"
	"github.com/ericcurtin/GreengoLingo/internal/store"
)

// PostgresVocabularyItemStore implements the store.VocabularyItemStore
// interface using a PostgreSQL database as the storage backend.
// Items are listed by their position column, which is assigned on first
// insert and preserved across upserts.
type PostgresVocabularyItemStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresVocabularyItemStore creates a new PostgreSQL implementation of
// the VocabularyItemStore interface. If logger is nil, a default logger will be used.
func NewPostgresVocabularyItemStore(db store.DBTX, logger *slog.Logger) *PostgresVocabularyItemStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresVocabularyItemStore{
		db:     db,
		logger: logger.With(slog.String("component", "vocabulary_store")),
	}
}

// Ensure PostgresVocabularyItemStore implements store.VocabularyItemStore interface
var _ store.VocabularyItemStore = (*PostgresVocabularyItemStore)(nil)

// Save implements store.VocabularyItemStore.Save
func (s *PostgresVocabularyItemStore) Save(ctx context.Context, item *domain.VocabularyItem) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if item == nil {
		return fmt.Errorf("%w: nil vocabulary item", store.ErrInvalidEntity)
	}
	if err := item.Validate(); err != nil {
		log.Warn("vocabulary item validation failed during save",
			slog.String("error", err.Error()),
			slog.String("item_id", item.ID))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	tags := item.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	query := `
		INSERT INTO vocabulary_items (
			id, source, target, pronunciation, example_sentence, example_translation,
			lesson_id, level, language_pair, category, notes, tags, in_srs, added_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NULLIF($14::text, '')::date)
		ON CONFLICT (id) DO UPDATE SET
			source = EXCLUDED.source,
			target = EXCLUDED.target,
			pronunciation = EXCLUDED.pronunciation,
			example_sentence = EXCLUDED.example_sentence,
			example_translation = EXCLUDED.example_translation,
			lesson_id = EXCLUDED.lesson_id,
			level = EXCLUDED.level,
			language_pair = EXCLUDED.language_pair,
			category = EXCLUDED.category,
			notes = EXCLUDED.notes,
			tags = EXCLUDED.tags,
			in_srs = EXCLUDED.in_srs,
			added_at = EXCLUDED.added_at
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		item.ID,
		item.Source,
		item.Target,
		nullString(item.Pronunciation),
		nullString(item.ExampleSentence),
		nullString(item.ExampleTranslation),
		item.LessonID,
		item.Level,
		item.LanguagePair,
		string(item.Category),
		nullString(item.Notes),
		string(tagsJSON),
		item.InSRS,
		item.AddedAt,
	)
	if err != nil {
		log.Error("failed to save vocabulary item",
			slog.String("error", err.Error()),
			slog.String("item_id", item.ID))
		return MapError(err)
	}

	log.Debug("vocabulary item saved", slog.String("item_id", item.ID))
	return nil
}

// Delete implements store.VocabularyItemStore.Delete
func (s *PostgresVocabularyItemStore) Delete(ctx context.Context, id string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM vocabulary_items WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete vocabulary item",
			slog.String("error", err.Error()),
			slog.String("item_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrVocabularyItemNotFound); err != nil {
		log.Debug("vocabulary item not found for deletion", slog.String("item_id", id))
		return err
	}

	log.Debug("vocabulary item deleted", slog.String("item_id", id))
	return nil
}

// List implements store.VocabularyItemStore.List
func (s *PostgresVocabularyItemStore) List(ctx context.Context) ([]*domain.VocabularyItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, source, target, pronunciation, example_sentence, example_translation,
			lesson_id, level, language_pair, category, notes, tags, in_srs,
			COALESCE(to_char(added_at, 'YYYY-MM-DD'), '')
		FROM vocabulary_items
		ORDER BY position
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list vocabulary items", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]*domain.VocabularyItem, 0)
	for rows.Next() {
		var (
			item                                       domain.VocabularyItem
			pronunciation, example, translation, notes sql.NullString
			category                                   string
			tagsJSON                                   []byte
		)
		if err := rows.Scan(
			&item.ID,
			&item.Source,
			&item.Target,
			&pronunciation,
			&example,
			&translation,
			&item.LessonID,
			&item.Level,
			&item.LanguagePair,
			&category,
			&notes,
			&tagsJSON,
			&item.InSRS,
			&item.AddedAt,
		); err != nil {
			log.Error("failed to scan vocabulary item row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}

		item.Pronunciation = stringPtr(pronunciation)
		item.ExampleSentence = stringPtr(example)
		item.ExampleTranslation = stringPtr(translation)
		item.Notes = stringPtr(notes)
		item.Category = domain.ParseCategory(category)
		item.Tags = []string{}
		if len(tagsJSON) > 0 {
			if err := json.Unmarshal(tagsJSON, &item.Tags); err != nil {
				log.Error("failed to decode vocabulary item tags",
					slog.String("error", err.Error()),
					slog.String("item_id", item.ID))
				return nil, fmt.Errorf("failed to decode tags for %s: %w", item.ID, err)
			}
			if item.Tags == nil {
				item.Tags = []string{}
			}
		}

		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating vocabulary item rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Debug("vocabulary items listed", slog.Int("count", len(items)))
	return items, nil
}
