package api

import (
	"errors"
	"net/http"

	"github.com/prasetyo/ingatkata/internal/api/shared"
	"github.com/prasetyo/ingatkata/internal/domain"
	"github.com/prasetyo/ingatkata/internal/seed"
	"github.com/prasetyo/ingatkata/internal/service/auth"
	"github.com/prasetyo/ingatkata/internal/service/lifecycle"
	"github.com/prasetyo/ingatkata/internal/service/study"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, lifecycle.ErrCardNotFound),
		errors.Is(err, study.ErrSessionNotFound),
		errors.Is(err, seed.ErrLanguageUnknown),
		errors.Is(err, seed.ErrLevelUnknown):
		return http.StatusNotFound

	// Conflict errors: the request is well formed but the deck or
	// session is not in a state that allows it.
	case errors.Is(err, lifecycle.ErrLevelAlreadyImported),
		errors.Is(err, lifecycle.ErrReserveExhausted),
		errors.Is(err, lifecycle.ErrAccuracyGateBlocked),
		errors.Is(err, study.ErrNoDueCards),
		errors.Is(err, study.ErrDeckEmpty),
		errors.Is(err, study.ErrNoWrongCards),
		errors.Is(err, study.ErrNoActiveCards),
		errors.Is(err, study.ErrAnswerAlreadySubmitted),
		errors.Is(err, study.ErrNoAnswerSubmitted),
		errors.Is(err, study.ErrSessionComplete):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, lifecycle.ErrNoImportableLines),
		errors.Is(err, domain.ErrCardFrontEmpty),
		errors.Is(err, domain.ErrCardBackEmpty),
		errors.Is(err, domain.ErrCardStatusInvalid):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, lifecycle.ErrCardNotFound):
		return "Card not found"
	case errors.Is(err, study.ErrSessionNotFound):
		return "Study session not found"
	case errors.Is(err, seed.ErrLanguageUnknown),
		errors.Is(err, seed.ErrLevelUnknown):
		return "Word pack not found"

	case errors.Is(err, lifecycle.ErrLevelAlreadyImported):
		return "This level has already been added to the deck"
	case errors.Is(err, lifecycle.ErrReserveExhausted):
		return "The reserve bank is empty"
	case errors.Is(err, lifecycle.ErrAccuracyGateBlocked):
		return "Last session accuracy was too low to release new cards"
	case errors.Is(err, lifecycle.ErrNoImportableLines):
		return "No valid lines found; use one \"front <> back\" pair per line"

	case errors.Is(err, study.ErrNoDueCards):
		return "No cards are due for review"
	case errors.Is(err, study.ErrDeckEmpty):
		return "The deck has no active cards"
	case errors.Is(err, study.ErrNoWrongCards):
		return "No wrong cards to repeat"
	case errors.Is(err, study.ErrNoActiveCards):
		return "No deck has active cards"
	case errors.Is(err, study.ErrAnswerAlreadySubmitted):
		return "This card has already been answered"
	case errors.Is(err, study.ErrNoAnswerSubmitted):
		return "Answer the current card first"
	case errors.Is(err, study.ErrSessionComplete):
		return "The session is already complete"

	case errors.Is(err, domain.ErrCardFrontEmpty),
		errors.Is(err, domain.ErrCardBackEmpty):
		return "Card front and back must not be empty"
	case errors.Is(err, domain.ErrCardStatusInvalid):
		return "Card status must be active or reserve"

	default:
		return "An unexpected error occurred"
	}
}

// respondServiceError maps a service error onto the wire in one step.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
