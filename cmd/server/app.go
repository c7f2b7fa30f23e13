package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/prasetyo/ingatkata/internal/config"
	"github.com/prasetyo/ingatkata/internal/domain/srs"
	"github.com/prasetyo/ingatkata/internal/platform/postgres"
	"github.com/prasetyo/ingatkata/internal/platform/sqlite"
	"github.com/prasetyo/ingatkata/internal/service/auth"
	"github.com/prasetyo/ingatkata/internal/service/lifecycle"
	"github.com/prasetyo/ingatkata/internal/service/study"
	"github.com/prasetyo/ingatkata/internal/store"
)

// application bundles the wired-up dependencies of one server process.
type application struct {
	config *config.Config
	logger *slog.Logger

	decks      store.DeckStore
	deckCloser io.Closer

	jwtService       auth.JWTService
	authService      auth.Service
	lifecycleService lifecycle.Service
	studyService     study.Service
}

// newApplication builds the dependency graph from configuration:
// storage backend, scheduling parameters, and the services on top.
func newApplication(ctx context.Context, cfg *config.Config, log *slog.Logger) (*application, error) {
	app := &application{config: cfg, logger: log}

	if err := app.setupStore(ctx); err != nil {
		return nil, err
	}

	srsService := srs.NewServiceWithParams(srs.NewParams(srs.ParamsConfig{
		FailDelay: time.Duration(cfg.SRS.FailDelaySeconds) * time.Second,
	}))

	jwtService, err := auth.NewJWTService(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenLifetimeMinutes)*time.Minute,
	)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}
	app.jwtService = jwtService
	app.authService = auth.NewService(cfg.Auth.PasswordHash, auth.NewBcryptVerifier(), jwtService)

	app.lifecycleService = lifecycle.NewService(app.decks, lifecycleParams(cfg.SRS), nil, log)
	app.studyService = study.NewService(app.decks, srsService, nil, log)

	return app, nil
}

func (app *application) setupStore(ctx context.Context) error {
	switch app.config.Database.Driver {
	case "memory":
		app.decks = store.NewMemoryDeckStore()
	case "sqlite":
		s, err := sqlite.Open(ctx, app.config.Database.Path)
		if err != nil {
			return fmt.Errorf("failed to open sqlite store: %w", err)
		}
		app.decks = s
		app.deckCloser = s
	case "postgres":
		s, err := postgres.Open(ctx, app.config.Database.URL)
		if err != nil {
			return fmt.Errorf("failed to open postgres store: %w", err)
		}
		app.decks = s
		app.deckCloser = s
	default:
		return fmt.Errorf("unknown database driver %q", app.config.Database.Driver)
	}

	app.logger.Info("deck store ready",
		slog.String("driver", app.config.Database.Driver))
	return nil
}

// Close releases the storage backend, if it holds resources.
func (app *application) Close() {
	if app.deckCloser != nil {
		if err := app.deckCloser.Close(); err != nil {
			app.logger.Error("failed to close deck store", "error", err)
		}
	}
}

// lifecycleParams maps configuration onto activation tuning, falling
// back to the built-in defaults for unset knobs.
func lifecycleParams(cfg config.SRSConfig) lifecycle.Params {
	params := lifecycle.NewDefaultParams()
	if cfg.ActiveCap > 0 {
		params.ActiveCap = cfg.ActiveCap
	}
	if cfg.BatchFull > 0 {
		params.BatchFull = cfg.BatchFull
	}
	if cfg.BatchPartial > 0 {
		params.BatchPartial = cfg.BatchPartial
	}
	if cfg.HighAccuracy > 0 {
		params.HighAccuracy = cfg.HighAccuracy
	}
	if cfg.LowAccuracy > 0 {
		params.LowAccuracy = cfg.LowAccuracy
	}
	return params
}
