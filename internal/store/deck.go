package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/prasetyo/ingatkata/internal/domain"
)

// KeyPrefix namespaces deck keys in shared key-value backends.
// The full key for a deck is KeyPrefix + languageName.
const KeyPrefix = "ingatkata-deck-"

// DeckStore defines the interface for deck persistence.
//
// Decks are keyed by language name. A language with no stored value is an
// empty deck: Load returns an empty collection rather than an error, and
// the deck starts to exist once Save is called for it.
type DeckStore interface {
	// Load retrieves the full card collection for a language.
	// A missing deck yields an empty slice and no error. Implementations
	// must normalize legacy records at load time (see DecodeCards).
	Load(ctx context.Context, language string) ([]domain.Card, error)

	// Save replaces the language's whole card collection.
	// There is no incremental update path: callers mutate their in-memory
	// copy and write it back in full.
	Save(ctx context.Context, language string, cards []domain.Card) error

	// List returns the language names of all saved decks, including ones
	// whose collections are currently empty.
	List(ctx context.Context) ([]string, error)
}

// Key returns the storage key for a language deck.
func Key(language string) string {
	return KeyPrefix + language
}

// EncodeCards serializes a card collection for storage. A nil collection
// encodes as an empty deck, never as a JSON null.
func EncodeCards(cards []domain.Card) ([]byte, error) {
	if cards == nil {
		cards = []domain.Card{}
	}
	data, err := json.Marshal(cards)
	if err != nil {
		return nil, fmt.Errorf("failed to encode deck: %w", err)
	}
	return data, nil
}

// DecodeCards deserializes a stored card collection and normalizes each
// record (missing status defaults to active, missing source to legacy).
// This is the single place migration happens so scheduling logic never
// sees partial records.
//
// Unparseable data is reported as an error; callers follow the documented
// policy of treating such a deck as empty.
func DecodeCards(data []byte) ([]domain.Card, error) {
	if len(data) == 0 {
		return []domain.Card{}, nil
	}

	var cards []domain.Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("failed to decode deck: %w", err)
	}

	for i := range cards {
		cards[i].Normalize()
	}

	if cards == nil {
		cards = []domain.Card{}
	}
	return cards, nil
}
