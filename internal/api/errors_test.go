package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prasetyo/ingatkata/internal/domain"
	"github.com/prasetyo/ingatkata/internal/seed"
	"github.com/prasetyo/ingatkata/internal/service/auth"
	"github.com/prasetyo/ingatkata/internal/service/lifecycle"
	"github.com/prasetyo/ingatkata/internal/service/study"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"card not found", lifecycle.ErrCardNotFound, http.StatusNotFound},
		{"session not found", study.ErrSessionNotFound, http.StatusNotFound},
		{"unknown word pack", seed.ErrLanguageUnknown, http.StatusNotFound},
		{"level already imported", lifecycle.ErrLevelAlreadyImported, http.StatusConflict},
		{"reserve exhausted", lifecycle.ErrReserveExhausted, http.StatusConflict},
		{"accuracy gate blocked", lifecycle.ErrAccuracyGateBlocked, http.StatusConflict},
		{"no due cards", study.ErrNoDueCards, http.StatusConflict},
		{"session complete", study.ErrSessionComplete, http.StatusConflict},
		{"no importable lines", lifecycle.ErrNoImportableLines, http.StatusBadRequest},
		{"empty card front", domain.ErrCardFrontEmpty, http.StatusBadRequest},
		{"unknown error", errors.New("database exploded"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapErrorToStatusCode(tt.err))
		})
	}

	t.Run("wrapped errors map the same", func(t *testing.T) {
		wrapped := fmt.Errorf("starting session: %w", study.ErrNoDueCards)
		assert.Equal(t, http.StatusConflict, MapErrorToStatusCode(wrapped))
	})
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Run("known errors get a friendly message", func(t *testing.T) {
		msg := GetSafeErrorMessage(lifecycle.ErrReserveExhausted)
		assert.Equal(t, "The reserve bank is empty", msg)
	})

	t.Run("unknown errors never leak details", func(t *testing.T) {
		msg := GetSafeErrorMessage(errors.New("pq: connection refused on 10.0.0.3"))
		assert.Equal(t, "An unexpected error occurred", msg)
		assert.NotContains(t, msg, "10.0.0.3")
	})

	t.Run("nil error", func(t *testing.T) {
		assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
	})
}
