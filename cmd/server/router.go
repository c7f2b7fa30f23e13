package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prasetyo/ingatkata/internal/api"
	apiMiddleware "github.com/prasetyo/ingatkata/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.authService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)
	deckHandler := api.NewDeckHandler(app.decks, app.lifecycleService, app.studyService)
	sessionHandler := api.NewSessionHandler(app.studyService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoint (public)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Deck management
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

			// Bundled word lists
			r.Get("/seed/levels", deckHandler.SeedLevels)

			// Study sessions
			r.Post("/sessions", sessionHandler.Create)
			r.Get("/sessions/{id}", sessionHandler.Get)
			r.Post("/sessions/{id}/answer", sessionHandler.Answer)
			r.Post("/sessions/{id}/continue", sessionHandler.Continue)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
