package srs

import (
	"errors"
	"fmt"
	"time"

	"github.com/prasetyo/ingatkata/internal/domain"
)

// Common errors
var (
	ErrInvalidCard = errors.New("card failed validation")
)

// Service defines the interface for scheduling operations.
type Service interface {
	// ApplyResult computes the card's next retention state from a review
	// result. It returns an updated copy; the caller persists it.
	ApplyResult(card domain.Card, isCorrect bool, now time.Time) (domain.Card, error)

	// IsDue reports whether the card is due for review.
	IsDue(card domain.Card, now time.Time) bool

	// IsMastered reports whether the card counts as mastered.
	IsMastered(card domain.Card) bool
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params *Params
}

// NewDefaultService creates a scheduling service with default parameters.
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a scheduling service with custom parameters.
func NewServiceWithParams(params *Params) Service {
	return &defaultService{
		params: params,
	}
}

// ApplyResult implements the Service interface.
func (s *defaultService) ApplyResult(
	card domain.Card,
	isCorrect bool,
	now time.Time,
) (domain.Card, error) {
	if err := card.Validate(); err != nil {
		return domain.Card{}, fmt.Errorf("%w: %v", ErrInvalidCard, err)
	}

	return calculateNextCard(card, isCorrect, now, s.params), nil
}

// IsDue implements the Service interface.
func (s *defaultService) IsDue(card domain.Card, now time.Time) bool {
	return IsDue(card, now)
}

// IsMastered implements the Service interface.
func (s *defaultService) IsMastered(card domain.Card) bool {
	return IsMastered(card)
}
