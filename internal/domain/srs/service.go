package srs

import (
	"errors"

	"github.com/ericcurtin/GreengoLingo/internal/domain"
)

// Common errors
var (
	ErrNilCard   = errors.New("card cannot be nil")
	ErrNilUpdate = errors.New("update cannot be nil")
)

// Service defines the interface for SRS algorithm operations
type Service interface {
	// CalculateNextReview computes the scheduling outcome of reviewing card
	// with the given quality on currentDate. Quality outside 0-5 is clamped.
	// The card is left untouched.
	CalculateNextReview(card *domain.Card, quality int, currentDate string) (*Update, error)

	// ApplyUpdate writes a previously calculated update onto card, recording
	// currentDate as the review date. It is the only operation that changes
	// a card's scheduling state.
	ApplyUpdate(card *domain.Card, update *Update, currentDate string) error

	// Review calculates and applies an update in one step and returns it.
	Review(card *domain.Card, quality int, currentDate string) (*Update, error)
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
}

var _ Service = (*defaultService)(nil)

// NewDefaultService creates a new SRS service with default parameters
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new SRS service with custom parameters
func NewServiceWithParams(params *Params) Service {
	if params == nil {
		params = NewDefaultParams()
	}
	return &defaultService{
		params: params,
	}
}

// CalculateNextReview implements the Service interface
func (s *defaultService) CalculateNextReview(
	card *domain.Card,
	quality int,
	currentDate string,
) (*Update, error) {
	if card == nil {
		return nil, ErrNilCard
	}

	return calculateUpdate(card, ClampQuality(quality), currentDate, s.params), nil
}

// ApplyUpdate implements the Service interface
func (s *defaultService) ApplyUpdate(card *domain.Card, update *Update, currentDate string) error {
	if card == nil {
		return ErrNilCard
	}
	if update == nil {
		return ErrNilUpdate
	}

	applyUpdate(card, update, currentDate)
	return nil
}

// Review implements the Service interface
func (s *defaultService) Review(card *domain.Card, quality int, currentDate string) (*Update, error) {
	update, err := s.CalculateNextReview(card, quality, currentDate)
	if err != nil {
		return nil, err
	}

	applyUpdate(card, update, currentDate)
	return update, nil
}
