// Package sqlite implements deck persistence on a local SQLite file,
// the zero-setup backend for single-machine use. Layout mirrors the
// postgres store: one row per deck, cards as a JSON document.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // registers the pure-Go sqlite driver

	"github.com/prasetyo/ingatkata/internal/domain"
	"github.com/prasetyo/ingatkata/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS decks (
    name       TEXT PRIMARY KEY,
    cards      TEXT NOT NULL DEFAULT '[]',
    updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
);`

// DeckStore implements store.DeckStore backed by SQLite.
type DeckStore struct {
	db *sql.DB
}

// Ensure DeckStore implements the store.DeckStore interface
var _ store.DeckStore = (*DeckStore)(nil)

// Open opens (creating if needed) the database file and ensures the
// schema exists.
func Open(ctx context.Context, path string) (*DeckStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %q: %w", path, err)
	}
	// The driver is in-process; a single writer avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &DeckStore{db: db}, nil
}

// Close releases the database handle.
func (s *DeckStore) Close() error {
	return s.db.Close()
}

// Load implements store.DeckStore.Load.
func (s *DeckStore) Load(ctx context.Context, language string) ([]domain.Card, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT cards FROM decks WHERE name = ?`, language).Scan(&data)
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
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		ON CONFLICT (name) DO UPDATE
		SET cards = excluded.cards, updated_at = excluded.updated_at`,
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
