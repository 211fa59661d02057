// Package snapshot reads and writes the JSON file that holds a learner's
// cards and vocabulary between runs of the offline tools.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ericcurtin/GreengoLingo/internal/domain"
	"github.com/ericcurtin/GreengoLingo/internal/domain/vocabulary"
	"github.com/ericcurtin/GreengoLingo/internal/store"
)

// CurrentVersion is the snapshot format written by Save.
const CurrentVersion = 1

var (
	// ErrMalformedSnapshot is returned when a snapshot file cannot be decoded.
	ErrMalformedSnapshot = errors.New("malformed snapshot")

	// ErrUnsupportedVersion is returned for snapshots newer than CurrentVersion.
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
)

// Snapshot is the persisted state of one deck.
type Snapshot struct {
	Version    int               `json:"version"`
	Cards      []*domain.Card    `json:"cards"`
	Vocabulary *vocabulary.Store `json:"vocabulary"`
}

// New returns an empty snapshot at the current version.
func New() *Snapshot {
	return &Snapshot{
		Version:    CurrentVersion,
		Cards:      []*domain.Card{},
		Vocabulary: vocabulary.NewStore(),
	}
}

// Load reads the snapshot at path. A missing file yields an empty snapshot.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(), nil
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return Decode(data)
}

// Decode parses snapshot JSON. Every card must pass validation.
func Decode(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	if s.Version > CurrentVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, s.Version)
	}
	if s.Version == 0 {
		s.Version = CurrentVersion
	}
	if s.Cards == nil {
		s.Cards = []*domain.Card{}
	}
	if s.Vocabulary == nil {
		s.Vocabulary = vocabulary.NewStore()
	}
	if err := validateCards(s.Cards); err != nil {
		return nil, err
	}
	return &s, nil
}

// Save writes the snapshot to path. The file is written to a temporary file
// in the same directory and renamed into place, so readers never see a
// partial snapshot.
func (s *Snapshot) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary snapshot: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close snapshot: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// Restore writes every card and vocabulary item of the snapshot into repos.
func (s *Snapshot) Restore(ctx context.Context, repos store.Repositories) error {
	for _, card := range s.Cards {
		if err := repos.Cards().Create(ctx, card); err != nil {
			return fmt.Errorf("failed to restore card %s: %w", card.WordID, err)
		}
	}
	for _, item := range s.Vocabulary.All() {
		if err := repos.VocabularyItems().Save(ctx, item); err != nil {
			return fmt.Errorf("failed to restore vocabulary item %s: %w", item.ID, err)
		}
	}
	return nil
}

// Capture builds a snapshot from the contents of repos.
func Capture(ctx context.Context, repos store.Repositories) (*Snapshot, error) {
	cards, err := repos.Cards().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	items, err := repos.VocabularyItems().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vocabulary: %w", err)
	}

	s := New()
	s.Cards = cards
	for _, item := range items {
		if err := s.Vocabulary.Add(item); err != nil {
			return nil, fmt.Errorf("failed to capture vocabulary item %s: %w", item.ID, err)
		}
	}
	return s, nil
}

// EncodeCards serialises a card list.
func EncodeCards(cards []*domain.Card) ([]byte, error) {
	if cards == nil {
		cards = []*domain.Card{}
	}
	data, err := json.Marshal(cards)
	if err != nil {
		return nil, fmt.Errorf("failed to encode cards: %w", err)
	}
	return data, nil
}

// DecodeCards parses a card list produced by EncodeCards.
func DecodeCards(data []byte) ([]*domain.Card, error) {
	var cards []*domain.Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	if cards == nil {
		cards = []*domain.Card{}
	}
	if err := validateCards(cards); err != nil {
		return nil, err
	}
	return cards, nil
}

func validateCards(cards []*domain.Card) error {
	for i, card := range cards {
		if card == nil {
			return fmt.Errorf("%w: card %d is null", ErrMalformedSnapshot, i)
		}
		if err := card.Validate(); err != nil {
			return fmt.Errorf("%w: card %d: %w", ErrMalformedSnapshot, i, err)
		}
	}
	return nil
}
