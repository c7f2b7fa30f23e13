package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/prasetyo/ingatkata/internal/api/shared"
	"github.com/prasetyo/ingatkata/internal/service/study"
)

// SessionHandler handles study session endpoints.
type SessionHandler struct {
	study study.Service
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(studyService study.Service) *SessionHandler {
	if studyService == nil {
		panic("studyService cannot be nil")
	}
	return &SessionHandler{study: studyService}
}

// Create opens a study session over one deck, or over all decks at once
// when Combined is set.
// POST /api/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Language is required unless combined is set")
		return
	}

	var (
		snap study.Snapshot
		err  error
	)
	if req.Combined {
		snap, err = h.study.StartCombined(r.Context())
	} else {
		mode := study.Mode(req.Mode)
		if mode == "" {
			mode = study.ModeDue
		}
		snap, err = h.study.Start(r.Context(), req.Language, mode)
	}
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, newSessionResponse(snap))
}

// Get returns the current state of a session.
// GET /api/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	snap, err := h.study.Get(id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newSessionResponse(snap))
}

// Answer grades an answer for the session's current card.
// POST /api/sessions/{id}/answer
func (h *SessionHandler) Answer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req AnswerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.study.Submit(r.Context(), id, req.Answer, req.GaveUp)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AnswerResponse{
		Correct:  result.Correct,
		Expected: result.Expected,
		Card:     result.Card,
		Session:  newSessionResponse(result.Session),
	})
}

// Continue advances past a missed card to the next one.
// POST /api/sessions/{id}/continue
func (h *SessionHandler) Continue(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	snap, err := h.study.Continue(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newSessionResponse(snap))
}

func (h *SessionHandler) sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid session ID")
		return uuid.Nil, false
	}
	return id, true
}
