package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasetyo/ingatkata/internal/domain"
)

func newStoredCard(t *testing.T, front, back string) domain.Card {
	t.Helper()
	card, err := domain.NewCard(front, back, domain.SourceCustom, time.Now().UTC())
	require.NoError(t, err)
	return *card
}

func TestMemoryDeckStore_LoadMissingDeck(t *testing.T) {
	t.Parallel()

	s := NewMemoryDeckStore()

	cards, err := s.Load(context.Background(), "indonesian")
	require.NoError(t, err)
	assert.NotNil(t, cards)
	assert.Empty(t, cards)
}

func TestMemoryDeckStore_SaveAndLoad(t *testing.T) {
	t.Parallel()

	s := NewMemoryDeckStore()
	ctx := context.Background()

	deck := []domain.Card{
		newStoredCard(t, "cat", "kucing"),
		newStoredCard(t, "dog", "anjing"),
	}
	require.NoError(t, s.Save(ctx, "indonesian", deck))

	loaded, err := s.Load(ctx, "indonesian")
	require.NoError(t, err)
	assert.Equal(t, deck, loaded)
}

func TestMemoryDeckStore_SaveReplacesCollection(t *testing.T) {
	t.Parallel()

	s := NewMemoryDeckStore()
	ctx := context.Background()

	first := []domain.Card{newStoredCard(t, "cat", "kucing")}
	require.NoError(t, s.Save(ctx, "indonesian", first))

	second := []domain.Card{
		newStoredCard(t, "dog", "anjing"),
		newStoredCard(t, "fish", "ikan"),
	}
	require.NoError(t, s.Save(ctx, "indonesian", second))

	loaded, err := s.Load(ctx, "indonesian")
	require.NoError(t, err)
	assert.Equal(t, second, loaded)
}

func TestMemoryDeckStore_LoadReturnsCopy(t *testing.T) {
	t.Parallel()

	s := NewMemoryDeckStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "indonesian", []domain.Card{newStoredCard(t, "cat", "kucing")}))

	loaded, err := s.Load(ctx, "indonesian")
	require.NoError(t, err)
	loaded[0].Front = "mutated"
	loaded[0].Box = 5

	again, err := s.Load(ctx, "indonesian")
	require.NoError(t, err)
	assert.Equal(t, "cat", again[0].Front)
	assert.Equal(t, 0, again[0].Box)
}

func TestMemoryDeckStore_SaveStoresCopy(t *testing.T) {
	t.Parallel()

	s := NewMemoryDeckStore()
	ctx := context.Background()

	deck := []domain.Card{newStoredCard(t, "cat", "kucing")}
	require.NoError(t, s.Save(ctx, "indonesian", deck))

	deck[0].Front = "mutated"

	loaded, err := s.Load(ctx, "indonesian")
	require.NoError(t, err)
	assert.Equal(t, "cat", loaded[0].Front)
}

func TestMemoryDeckStore_ListSorted(t *testing.T) {
	t.Parallel()

	s := NewMemoryDeckStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "japanese", nil))
	require.NoError(t, s.Save(ctx, "german", nil))
	require.NoError(t, s.Save(ctx, "indonesian", nil))

	names, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"german", "indonesian", "japanese"}, names)
}

func TestMemoryDeckStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	s := NewMemoryDeckStore()
	ctx := context.Background()
	deck := []domain.Card{newStoredCard(t, "cat", "kucing")}

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 50; j++ {
				_ = s.Save(ctx, "indonesian", deck)
				_, _ = s.Load(ctx, "indonesian")
				_, _ = s.List(ctx)
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	loaded, err := s.Load(ctx, "indonesian")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.NotEqual(t, uuid.Nil, loaded[0].ID)
}
