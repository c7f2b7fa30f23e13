package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasetyo/ingatkata/internal/domain"
)

func TestCreateAndListDecks(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/decks", env.token, CreateDeckRequest{Language: "german"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created DeckStatsResponse
	decode(t, rec, &created)
	assert.Equal(t, "german", created.Language)
	assert.Zero(t, created.Total)

	t.Run("duplicate deck conflicts", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/decks", env.token, CreateDeckRequest{Language: "german"})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("empty language is a bad request", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/decks", env.token, CreateDeckRequest{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	rec = env.do(t, http.MethodPost, "/api/decks", env.token, CreateDeckRequest{Language: "arabic"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/decks", env.token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var decks []DeckStatsResponse
	decode(t, rec, &decks)
	require.Len(t, decks, 2)
	assert.Equal(t, "arabic", decks[0].Language)
	assert.Equal(t, "german", decks[1].Language)
}

func TestImportFillsActiveSlotsThenReserve(t *testing.T) {
	env := newTestEnv(t)

	text := "der Hund <> the dog\n" +
		"die Katze <> the cat\n" +
		"malformed line\n" +
		"das Haus <> the house\n" +
		"der Baum <> the tree\n" +
		"die Sonne <> the sun\n" +
		"der Mond <> the moon\n" +
		"das Wasser <> the water\n"

	rec := env.do(t, http.MethodPost, "/api/decks/german/import", env.token, ImportRequest{Text: text})
	require.Equal(t, http.StatusOK, rec.Code)

	var imported ImportResponse
	decode(t, rec, &imported)
	assert.Equal(t, 7, imported.Added)

	rec = env.do(t, http.MethodGet, "/api/decks/german/stats", env.token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats DeckStatsResponse
	decode(t, rec, &stats)
	assert.Equal(t, 7, stats.Total)
	assert.Equal(t, 5, stats.Active)
	assert.Equal(t, 2, stats.Reserve)
	assert.Equal(t, 5, stats.Due)

	t.Run("import with no parseable lines is rejected", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/decks/german/import", env.token,
			ImportRequest{Text: "no separator here"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestImportLevel(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/decks/german/import-level", env.token,
		ImportLevelRequest{Level: "Pemula (A1)"})
	require.Equal(t, http.StatusOK, rec.Code)

	var imported ImportResponse
	decode(t, rec, &imported)
	assert.Greater(t, imported.Added, 5)

	t.Run("same level cannot be imported twice", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/decks/german/import-level", env.token,
			ImportLevelRequest{Level: "Pemula (A1)"})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown level is not found", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/decks/german/import-level", env.token,
			ImportLevelRequest{Level: "Totally Made Up"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown language is not found", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/decks/klingon/import-level", env.token,
			ImportLevelRequest{Level: "Pemula (A1)"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAddAndDeleteCard(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/decks/german/cards", env.token,
		AddCardRequest{Front: "die Tür", Back: "the door"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var card domain.Card
	decode(t, rec, &card)
	assert.Equal(t, "die Tür", card.Front)
	assert.Equal(t, domain.CardStatusActive, card.Status)
	assert.Zero(t, card.Box)

	rec = env.do(t, http.MethodGet, "/api/decks/german/cards", env.token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var cards CardListResponse
	decode(t, rec, &cards)
	require.Len(t, cards.Active, 1)
	assert.Empty(t, cards.Reserve)
	assert.Equal(t, card.ID, cards.Active[0].ID)

	t.Run("front and back are required", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/decks/german/cards", env.token,
			AddCardRequest{Front: "nur vorne"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delete removes the card", func(t *testing.T) {
		rec := env.do(t, http.MethodDelete,
			fmt.Sprintf("/api/decks/german/cards/%s", card.ID), env.token, nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = env.do(t, http.MethodGet, "/api/decks/german/cards", env.token, nil)
		var remaining CardListResponse
		decode(t, rec, &remaining)
		assert.Empty(t, remaining.Active)
	})

	t.Run("deleting an unknown card is not found", func(t *testing.T) {
		rec := env.do(t, http.MethodDelete,
			fmt.Sprintf("/api/decks/german/cards/%s", uuid.New()), env.token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("a malformed card id is a bad request", func(t *testing.T) {
		rec := env.do(t, http.MethodDelete, "/api/decks/german/cards/not-a-uuid", env.token, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestManualAddBypassesActiveCap(t *testing.T) {
	env := newTestEnv(t)

	for i := 0; i < 5; i++ {
		rec := env.do(t, http.MethodPost, "/api/decks/german/cards", env.token,
			AddCardRequest{Front: fmt.Sprintf("Wort %d", i), Back: fmt.Sprintf("word %d", i)})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := env.do(t, http.MethodPost, "/api/decks/german/cards", env.token,
		AddCardRequest{Front: "das Sechste", Back: "the sixth"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/decks/german/stats", env.token, nil)
	var stats DeckStatsResponse
	decode(t, rec, &stats)
	assert.Equal(t, 6, stats.Active)
}

func TestBulkMoveAndDelete(t *testing.T) {
	env := newTestEnv(t)

	ids := make([]uuid.UUID, 0, 3)
	for i := 0; i < 3; i++ {
		rec := env.do(t, http.MethodPost, "/api/decks/german/cards", env.token,
			AddCardRequest{Front: fmt.Sprintf("Wort %d", i), Back: fmt.Sprintf("word %d", i)})
		require.Equal(t, http.StatusCreated, rec.Code)

		var card domain.Card
		decode(t, rec, &card)
		ids = append(ids, card.ID)
	}

	rec := env.do(t, http.MethodPost, "/api/decks/german/cards/move", env.token,
		BulkMoveRequest{IDs: ids[:2], Target: "reserve"})
	require.Equal(t, http.StatusOK, rec.Code)

	var moved BulkResponse
	decode(t, rec, &moved)
	assert.Equal(t, 2, moved.Affected)

	rec = env.do(t, http.MethodGet, "/api/decks/german/stats", env.token, nil)
	var stats DeckStatsResponse
	decode(t, rec, &stats)
	assert.Equal(t, 1, stats.Active)
	assert.Equal(t, 2, stats.Reserve)

	t.Run("an invalid target is a bad request", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/decks/german/cards/move", env.token,
			BulkMoveRequest{IDs: ids[:1], Target: "archived"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bulk delete reports how many existed", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/decks/german/cards/delete", env.token,
			BulkIDsRequest{IDs: []uuid.UUID{ids[0], uuid.New()}})
		require.Equal(t, http.StatusOK, rec.Code)

		var deleted BulkResponse
		decode(t, rec, &deleted)
		assert.Equal(t, 1, deleted.Affected)
	})
}

func TestReplenish(t *testing.T) {
	env := newTestEnv(t)

	var text string
	for i := 0; i < 12; i++ {
		text += fmt.Sprintf("Wort %d <> word %d\n", i, i)
	}
	rec := env.do(t, http.MethodPost, "/api/decks/german/import", env.token, ImportRequest{Text: text})
	require.Equal(t, http.StatusOK, rec.Code)

	// No session has completed yet, so a full batch is released.
	rec = env.do(t, http.MethodPost, "/api/decks/german/replenish", env.token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var activated ReplenishResponse
	decode(t, rec, &activated)
	assert.Equal(t, 5, activated.Activated)

	rec = env.do(t, http.MethodGet, "/api/decks/german/stats", env.token, nil)
	var stats DeckStatsResponse
	decode(t, rec, &stats)
	assert.Equal(t, 10, stats.Active)
	assert.Equal(t, 2, stats.Reserve)

	t.Run("an exhausted reserve conflicts", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/decks/german/replenish", env.token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = env.do(t, http.MethodPost, "/api/decks/german/replenish", env.token, nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestSeedLevels(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/seed/levels", env.token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var levels map[string][]SeedLevelResponse
	decode(t, rec, &levels)

	require.Contains(t, levels, "german")
	require.Contains(t, levels, "japanese")
	require.Len(t, levels["german"], 3)
	assert.Equal(t, "Pemula (A1)", levels["german"][0].Name)
	assert.Greater(t, levels["german"][0].Words, 0)

	t.Run("filtered by language", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/seed/levels?lang=japanese", env.token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var levels []SeedLevelResponse
		decode(t, rec, &levels)
		require.Len(t, levels, 3)
		assert.Equal(t, "Pemula (N5)", levels[0].Name)
	})

	t.Run("unknown language is not found", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/seed/levels?lang=klingon", env.token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
