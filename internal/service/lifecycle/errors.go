package lifecycle

import "errors"

// Service-specific errors. These are recoverable conditions the API layer
// maps to client-facing responses; they never indicate storage failure.
var (
	// ErrCardNotFound indicates the referenced card is not in the deck.
	ErrCardNotFound = errors.New("card not found in deck")

	// ErrReserveExhausted indicates a replenishment was allowed by the
	// accuracy gate but the reserve bank has no cards left to activate.
	ErrReserveExhausted = errors.New("reserve bank is empty")

	// ErrAccuracyGateBlocked indicates the last session's accuracy was too
	// low for any new material to be released.
	ErrAccuracyGateBlocked = errors.New("accuracy too low to release new cards")

	// ErrNoImportableLines indicates a bulk import text contained no line
	// that could be parsed into a card.
	ErrNoImportableLines = errors.New("no importable lines in text")

	// ErrLevelAlreadyImported indicates the deck already holds cards from
	// the requested preset level.
	ErrLevelAlreadyImported = errors.New("level already imported into deck")
)
