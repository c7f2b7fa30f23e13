package store

import (
	"context"
	"sort"
	"sync"

	"github.com/prasetyo/ingatkata/internal/domain"
)

// MemoryDeckStore is an in-memory DeckStore used in tests and for
// ephemeral runs. Collections are copied on the way in and out so callers
// never share slices with the store.
type MemoryDeckStore struct {
	mu    sync.RWMutex
	decks map[string][]domain.Card
}

// Ensure MemoryDeckStore implements the DeckStore interface
var _ DeckStore = (*MemoryDeckStore)(nil)

// NewMemoryDeckStore creates an empty in-memory deck store.
func NewMemoryDeckStore() *MemoryDeckStore {
	return &MemoryDeckStore{
		decks: make(map[string][]domain.Card),
	}
}

// Load implements DeckStore.Load.
func (s *MemoryDeckStore) Load(ctx context.Context, language string) ([]domain.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cards, ok := s.decks[language]
	if !ok {
		return []domain.Card{}, nil
	}

	out := make([]domain.Card, len(cards))
	copy(out, cards)
	return out, nil
}

// Save implements DeckStore.Save.
func (s *MemoryDeckStore) Save(ctx context.Context, language string, cards []domain.Card) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]domain.Card, len(cards))
	copy(stored, cards)
	s.decks[language] = stored
	return nil
}

// List implements DeckStore.List. Names are returned sorted so listings
// are stable across calls.
func (s *MemoryDeckStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.decks))
	for name := range s.decks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
