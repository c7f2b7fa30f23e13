package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasetyo/ingatkata/internal/domain"
)

func TestKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ingatkata-deck-indonesian", Key("indonesian"))
	assert.Equal(t, "ingatkata-deck-japanese", Key("japanese"))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	card, err := domain.NewCard("cat", "kucing", domain.SourceCustom, time.Now().UTC().Truncate(time.Second))
	require.NoError(t, err)

	data, err := EncodeCards([]domain.Card{*card})
	require.NoError(t, err)

	decoded, err := DecodeCards(data)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Equal(t, *card, decoded[0])
}

func TestDecodeCardsEmptyInput(t *testing.T) {
	t.Parallel()

	cards, err := DecodeCards(nil)
	require.NoError(t, err)
	assert.NotNil(t, cards)
	assert.Empty(t, cards)
}

func TestDecodeCardsNullDocument(t *testing.T) {
	t.Parallel()

	cards, err := DecodeCards([]byte("null"))
	require.NoError(t, err)
	assert.NotNil(t, cards)
	assert.Empty(t, cards)
}

func TestDecodeCardsMalformed(t *testing.T) {
	t.Parallel()

	_, err := DecodeCards([]byte("{not json"))
	assert.Error(t, err)
}

func TestDecodeCardsNormalizesLegacyRecords(t *testing.T) {
	t.Parallel()

	// Record written before status and source existed.
	data := []byte(`[{"id":"9b8e3c0e-0c54-4a2e-9d61-6f4f1f8e2a11","front":"cat","back":"kucing","box":2,"next_review":"2025-01-02T00:00:00Z"}]`)

	cards, err := DecodeCards(data)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, domain.CardStatusActive, cards[0].Status)
	assert.Equal(t, domain.SourceLegacy, cards[0].Source)
}
