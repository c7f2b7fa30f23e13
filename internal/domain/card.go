package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Card-specific validation errors
var (
	// ErrCardIDEmpty is returned when a card ID is empty or nil.
	ErrCardIDEmpty = errors.New("card ID cannot be empty")

	// ErrCardFrontEmpty is returned when a card's front text is empty.
	ErrCardFrontEmpty = errors.New("card front cannot be empty")

	// ErrCardBackEmpty is returned when a card's back text is empty.
	ErrCardBackEmpty = errors.New("card back cannot be empty")

	// ErrCardBoxOutOfRange is returned when a card's box is outside [0, MaxBox].
	ErrCardBoxOutOfRange = errors.New("card box out of range")

	// ErrCardStatusInvalid is returned when a card's status is not a known value.
	ErrCardStatusInvalid = errors.New("card status must be active or reserve")
)

const (
	// MaxBox is the highest retention level a card can reach.
	MaxBox = 5

	// MasteredBox is the retention level at which an active card counts
	// as mastered.
	MasteredBox = 4
)

// CardStatus describes whether a card is in the study rotation or banked.
type CardStatus string

const (
	// CardStatusActive marks a card as part of the study rotation,
	// subject to due-date scheduling.
	CardStatusActive CardStatus = "active"

	// CardStatusReserve marks a card as banked: excluded from due counts,
	// mastered counts, and study queue selection.
	CardStatusReserve CardStatus = "reserve"
)

// Card provenance tags. Presets carry the level name after the prefix.
const (
	SourceCustom       = "custom"
	SourceLegacy       = "legacy"
	SourcePresetPrefix = "preset-"
)

// Card is a single vocabulary fact: a foreign-language form (Front) paired
// with its native-language gloss (Back), plus the retention state driving
// spaced review.
type Card struct {
	ID           uuid.UUID  `json:"id"`
	Front        string     `json:"front"`
	Back         string     `json:"back"`
	Box          int        `json:"box"`
	NextReview   time.Time  `json:"next_review"`
	LastReviewed *time.Time `json:"last_reviewed,omitempty"`
	Status       CardStatus `json:"status"`
	Source       string     `json:"source"`
}

// NewCard creates an active Card at box 0, due immediately.
// Returns an error if validation fails.
func NewCard(front, back, source string, now time.Time) (*Card, error) {
	card := &Card{
		ID:         uuid.New(),
		Front:      front,
		Back:       back,
		Box:        0,
		NextReview: now,
		Status:     CardStatusActive,
		Source:     source,
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the Card has valid data.
// Returns an error if any field fails validation.
func (c *Card) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCardIDEmpty
	}

	if c.Front == "" {
		return ErrCardFrontEmpty
	}

	if c.Back == "" {
		return ErrCardBackEmpty
	}

	if c.Box < 0 || c.Box > MaxBox {
		return ErrCardBoxOutOfRange
	}

	if c.Status != CardStatusActive && c.Status != CardStatusReserve {
		return ErrCardStatusInvalid
	}

	return nil
}

// Normalize fills in fields that older persisted records may be missing.
// Records written before status tracking default to active; records
// without a provenance tag are marked legacy. Called once at load time so
// scheduling logic never has to consider partial records.
func (c *Card) Normalize() {
	if c.Status == "" {
		c.Status = CardStatusActive
	}
	if c.Source == "" {
		c.Source = SourceLegacy
	}
}
