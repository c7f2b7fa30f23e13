package api

import (
	"net/http"

	"github.com/prasetyo/ingatkata/internal/api/shared"
	"github.com/prasetyo/ingatkata/internal/service/auth"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService auth.Service
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService auth.Service) *AuthHandler {
	if authService == nil {
		panic("authService cannot be nil")
	}
	return &AuthHandler{authService: authService}
}

// Login exchanges the owner password for an access token.
// POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Password is required")
		return
	}

	token, err := h.authService.Login(r.Context(), req.Password)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{Token: token})
}
