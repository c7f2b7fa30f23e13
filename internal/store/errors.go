package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrLoadFailed is returned when a deck could not be read from the
	// backend. Note that a missing deck is not an error.
	ErrLoadFailed = errors.New("failed to load deck")

	// ErrSaveFailed is returned when a deck could not be written.
	ErrSaveFailed = errors.New("failed to save deck")

	// ErrListFailed is returned when deck keys could not be enumerated.
	ErrListFailed = errors.New("failed to list decks")
)

// StoreError wraps backend errors with the deck and operation involved,
// so callers can differentiate failures with errors.As instead of string
// matching.
type StoreError struct {
	Language  string // Deck language, empty for deck-independent operations
	Operation string // The operation that failed (e.g., "load", "save")
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Language != "" {
		return fmt.Sprintf("%s operation on deck %q failed: %v", e.Operation, e.Language, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %v", e.Operation, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError for the given deck and operation.
func NewStoreError(language, operation string, err error) *StoreError {
	return &StoreError{
		Language:  language,
		Operation: operation,
		Err:       err,
	}
}
