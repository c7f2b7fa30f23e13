package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasetyo/ingatkata/internal/domain"
)

// openIntegrationStore connects to the database named by TEST_DATABASE_URL,
// or skips the test when the variable is unset.
func openIntegrationStore(t *testing.T) *DeckStore {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping postgres integration test")
	}

	s, err := Open(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestDeckStoreIntegration(t *testing.T) {
	s := openIntegrationStore(t)
	ctx := context.Background()

	language := "integration-test-deck"
	t.Cleanup(func() {
		_, _ = s.db.ExecContext(ctx, `DELETE FROM decks WHERE name = $1`, language)
	})

	cards, err := s.Load(ctx, language)
	require.NoError(t, err)
	assert.Empty(t, cards)

	now := time.Now().UTC().Truncate(time.Microsecond)
	card, err := domain.NewCard("cat", "kucing", domain.SourceCustom, now)
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, language, []domain.Card{*card}))

	loaded, err := s.Load(ctx, language)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, card.ID, loaded[0].ID)
	assert.Equal(t, card.Front, loaded[0].Front)

	names, err := s.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, names, language)

	// Whole-collection replace.
	require.NoError(t, s.Save(ctx, language, nil))
	loaded, err = s.Load(ctx, language)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
