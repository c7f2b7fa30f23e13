package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	apimiddleware "github.com/prasetyo/ingatkata/internal/api/middleware"
	"github.com/prasetyo/ingatkata/internal/domain/srs"
	"github.com/prasetyo/ingatkata/internal/service/auth"
	"github.com/prasetyo/ingatkata/internal/service/lifecycle"
	"github.com/prasetyo/ingatkata/internal/service/study"
	"github.com/prasetyo/ingatkata/internal/store"
)

const (
	testPassword  = "correct horse battery staple"
	testJWTSecret = "0123456789abcdef0123456789abcdef"
)

// testEnv wires the full handler stack over an in-memory store so tests
// exercise the same routes and middleware the server mounts.
type testEnv struct {
	router http.Handler
	decks  *store.MemoryDeckStore
	token  string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	decks := store.NewMemoryDeckStore()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	jwtService, err := auth.NewJWTService(testJWTSecret, time.Hour)
	require.NoError(t, err)

	hash, err := auth.HashPassword(testPassword)
	require.NoError(t, err)
	authService := auth.NewService(hash, auth.NewBcryptVerifier(), jwtService)

	lifecycleService := lifecycle.NewService(
		decks, lifecycle.NewDefaultParams(), rand.New(rand.NewSource(1)), log)
	studyService := study.NewService(
		decks, srs.NewDefaultService(), rand.New(rand.NewSource(2)), log)

	authHandler := NewAuthHandler(authService)
	authMiddleware := apimiddleware.NewAuthMiddleware(jwtService)
	deckHandler := NewDeckHandler(decks, lifecycleService, studyService)
	sessionHandler := NewSessionHandler(studyService)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/decks", deckHandler.ListDecks)
			r.Post("/decks", deckHandler.CreateDeck)
			r.Get("/decks/{lang}/stats", deckHandler.GetStats)
			r.Get("/decks/{lang}/cards", deckHandler.ListCards)
			r.Post("/decks/{lang}/cards", deckHandler.AddCard)
			r.Delete("/decks/{lang}/cards/{id}", deckHandler.DeleteCard)
			r.Post("/decks/{lang}/cards/move", deckHandler.BulkMove)
			r.Post("/decks/{lang}/cards/delete", deckHandler.BulkDelete)
			r.Post("/decks/{lang}/import", deckHandler.Import)
			r.Post("/decks/{lang}/import-level", deckHandler.ImportLevel)
			r.Post("/decks/{lang}/replenish", deckHandler.Replenish)

			r.Get("/seed/levels", deckHandler.SeedLevels)

			r.Post("/sessions", sessionHandler.Create)
			r.Get("/sessions/{id}", sessionHandler.Get)
			r.Post("/sessions/{id}/answer", sessionHandler.Answer)
			r.Post("/sessions/{id}/continue", sessionHandler.Continue)
		})
	})

	token, err := jwtService.GenerateToken(context.Background())
	require.NoError(t, err)

	return &testEnv{router: r, decks: decks, token: token}
}

// do performs one request against the test router. A non-nil body is
// JSON-encoded; an empty token leaves the Authorization header off.
func (env *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals a recorded JSON response body into out.
func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
