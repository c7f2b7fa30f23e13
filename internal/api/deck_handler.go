package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/prasetyo/ingatkata/internal/api/shared"
	"github.com/prasetyo/ingatkata/internal/domain"
	"github.com/prasetyo/ingatkata/internal/seed"
	"github.com/prasetyo/ingatkata/internal/service/lifecycle"
	"github.com/prasetyo/ingatkata/internal/service/study"
	"github.com/prasetyo/ingatkata/internal/store"
)

// DeckHandler handles deck management endpoints: deck listing and stats,
// card CRUD, imports, and reserve replenishment.
type DeckHandler struct {
	decks     store.DeckStore
	lifecycle lifecycle.Service
	study     study.Service
	nowFn     func() time.Time
}

// NewDeckHandler creates a new DeckHandler.
func NewDeckHandler(decks store.DeckStore, lifecycleService lifecycle.Service, studyService study.Service) *DeckHandler {
	if decks == nil {
		panic("decks cannot be nil")
	}
	if lifecycleService == nil {
		panic("lifecycleService cannot be nil")
	}
	if studyService == nil {
		panic("studyService cannot be nil")
	}
	return &DeckHandler{
		decks:     decks,
		lifecycle: lifecycleService,
		study:     studyService,
		nowFn:     func() time.Time { return time.Now().UTC() },
	}
}

// ListDecks returns stats for every saved deck.
// GET /api/decks
func (h *DeckHandler) ListDecks(w http.ResponseWriter, r *http.Request) {
	languages, err := h.decks.List(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	now := h.nowFn()
	resp := make([]DeckStatsResponse, 0, len(languages))
	for _, language := range languages {
		cards, err := h.decks.Load(r.Context(), language)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		resp = append(resp, newDeckStatsResponse(domain.ComputeDeckStats(language, cards, now)))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// CreateDeck starts an empty deck for a new language.
// POST /api/decks
func (h *DeckHandler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	var req CreateDeckRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Language is required")
		return
	}

	languages, err := h.decks.List(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	for _, existing := range languages {
		if existing == req.Language {
			shared.RespondWithError(w, r, http.StatusConflict, "Deck already exists")
			return
		}
	}

	if err := h.decks.Save(r.Context(), req.Language, []domain.Card{}); err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated,
		newDeckStatsResponse(domain.ComputeDeckStats(req.Language, nil, h.nowFn())))
}

// GetStats returns counters for one deck. An unknown deck reads as empty.
// GET /api/decks/{lang}/stats
func (h *DeckHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	language := chi.URLParam(r, "lang")

	cards, err := h.decks.Load(r.Context(), language)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK,
		newDeckStatsResponse(domain.ComputeDeckStats(language, cards, h.nowFn())))
}

// ListCards returns the deck's cards, split by rotation status.
// GET /api/decks/{lang}/cards
func (h *DeckHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	language := chi.URLParam(r, "lang")

	cards, err := h.decks.Load(r.Context(), language)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	resp := CardListResponse{Active: []domain.Card{}, Reserve: []domain.Card{}}
	for _, card := range cards {
		if card.Status == domain.CardStatusReserve {
			resp.Reserve = append(resp.Reserve, card)
		} else {
			resp.Active = append(resp.Active, card)
		}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// AddCard creates one card manually, straight into active rotation.
// POST /api/decks/{lang}/cards
func (h *DeckHandler) AddCard(w http.ResponseWriter, r *http.Request) {
	language := chi.URLParam(r, "lang")

	var req AddCardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Front and back are required")
		return
	}

	card, err := h.lifecycle.AddCard(r.Context(), language, req.Front, req.Back)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, card)
}

// DeleteCard removes one card from a deck.
// DELETE /api/decks/{lang}/cards/{id}
func (h *DeckHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	language := chi.URLParam(r, "lang")

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid card ID")
		return
	}

	if err := h.lifecycle.DeleteCard(r.Context(), language, id); err != nil {
		respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Import creates cards from pasted "front <> back" lines.
// POST /api/decks/{lang}/import
func (h *DeckHandler) Import(w http.ResponseWriter, r *http.Request) {
	language := chi.URLParam(r, "lang")

	var req ImportRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Text is required")
		return
	}

	added, err := h.lifecycle.ImportText(r.Context(), language, req.Text)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ImportResponse{Added: added})
}

// ImportLevel adds a built-in word pack level to the deck.
// POST /api/decks/{lang}/import-level
func (h *DeckHandler) ImportLevel(w http.ResponseWriter, r *http.Request) {
	language := chi.URLParam(r, "lang")

	var req ImportLevelRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Level is required")
		return
	}

	added, err := h.lifecycle.ImportLevel(r.Context(), language, req.Level)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ImportResponse{Added: added})
}

// Replenish activates the next reserve batch, gated by the accuracy of
// the deck's last completed session.
// POST /api/decks/{lang}/replenish
func (h *DeckHandler) Replenish(w http.ResponseWriter, r *http.Request) {
	language := chi.URLParam(r, "lang")

	activated, err := h.lifecycle.Replenish(r.Context(), language, h.study.LastAccuracy(language))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ReplenishResponse{Activated: activated})
}

// BulkMove moves the listed cards between active and reserve.
// POST /api/decks/{lang}/cards/move
func (h *DeckHandler) BulkMove(w http.ResponseWriter, r *http.Request) {
	language := chi.URLParam(r, "lang")

	var req BulkMoveRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "IDs and a target of active or reserve are required")
		return
	}

	moved, err := h.lifecycle.BulkMove(r.Context(), language, req.IDs, domain.CardStatus(req.Target))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, BulkResponse{Affected: moved})
}

// BulkDelete removes the listed cards from the deck.
// POST /api/decks/{lang}/cards/delete
func (h *DeckHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	language := chi.URLParam(r, "lang")

	var req BulkIDsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "IDs are required")
		return
	}

	deleted, err := h.lifecycle.BulkDelete(r.Context(), language, req.IDs)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, BulkResponse{Affected: deleted})
}

// SeedLevels lists the built-in word packs and their levels.
// GET /api/seed/levels?lang=...
func (h *DeckHandler) SeedLevels(w http.ResponseWriter, r *http.Request) {
	if language := r.URL.Query().Get("lang"); language != "" {
		levels, err := seed.Levels(language)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, seedLevelResponses(levels))
		return
	}

	resp := make(map[string][]SeedLevelResponse, len(seed.Languages()))
	for _, language := range seed.Languages() {
		levels, err := seed.Levels(language)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		resp[language] = seedLevelResponses(levels)
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

func seedLevelResponses(levels []seed.Level) []SeedLevelResponse {
	out := make([]SeedLevelResponse, 0, len(levels))
	for _, level := range levels {
		out = append(out, SeedLevelResponse{Name: level.Name, Words: len(level.Words)})
	}
	return out
}
