// Package store defines the persistence contract for language decks.
//
// A deck is stored as one value per language: the JSON-serialized array of
// its cards. Implementations provide get/set/list-keys semantics over that
// mapping; mutations always replace the whole collection. The package also
// holds the shared codec so every backend normalizes legacy records the
// same way at load time.
package store
