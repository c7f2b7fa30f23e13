// Package postgres implements deck persistence on PostgreSQL. Each deck
// is one row holding the whole card collection as a JSONB document,
// matching the store contract of full-collection replacement.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the pgx database/sql driver
	"github.com/pressly/goose/v3"

	"github.com/prasetyo/ingatkata/internal/domain"
	"github.com/prasetyo/ingatkata/internal/store"
)

// DeckStore implements store.DeckStore backed by PostgreSQL.
type DeckStore struct {
	db *sql.DB
}

// Ensure DeckStore implements the store.DeckStore interface
var _ store.DeckStore = (*DeckStore)(nil)

// Open connects to PostgreSQL, verifies the connection, and runs any
// pending migrations.
func Open(ctx context.Context, url string) (*DeckStore, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}
	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return &DeckStore{db: db}, nil
}

// NewDeckStore wraps an existing connection without running migrations.
func NewDeckStore(db *sql.DB) *DeckStore {
	if db == nil {
		panic("db cannot be nil")
	}
	return &DeckStore{db: db}
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *DeckStore) Close() error {
	return s.db.Close()
}

// Load implements store.DeckStore.Load.
func (s *DeckStore) Load(ctx context.Context, language string) ([]domain.Card, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT cards FROM decks WHERE name = $1`, language).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return []domain.Card{}, nil
	}
	if err != nil {
		return nil, store.NewStoreError(language, "load", err)
	}

	cards, err := store.DecodeCards(data)
	if err != nil {
		// Corrupt rows follow the documented policy of an empty deck.
		return []domain.Card{}, nil
	}
	return cards, nil
}

// Save implements store.DeckStore.Save.
func (s *DeckStore) Save(ctx context.Context, language string, cards []domain.Card) error {
	data, err := store.EncodeCards(cards)
	if err != nil {
		return store.NewStoreError(language, "save", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO decks (name, cards, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE
		SET cards = EXCLUDED.cards, updated_at = now()`,
		language, data)
	if err != nil {
		return store.NewStoreError(language, "save", err)
	}
	return nil
}

// List implements store.DeckStore.List.
func (s *DeckStore) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM decks ORDER BY name`)
	if err != nil {
		return nil, store.NewStoreError("", "list", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, store.NewStoreError("", "list", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("", "list", err)
	}
	return names, nil
}
