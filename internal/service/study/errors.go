package study

import "errors"

// Study-specific errors.
var (
	// ErrSessionNotFound indicates the session ID is unknown or the
	// session has been evicted.
	ErrSessionNotFound = errors.New("study session not found")

	// ErrNoDueCards indicates nothing in the deck is scheduled for review
	// right now.
	ErrNoDueCards = errors.New("no cards due for review")

	// ErrDeckEmpty indicates the deck has no active cards to drill.
	ErrDeckEmpty = errors.New("deck has no active cards")

	// ErrNoWrongCards indicates no active card is currently at the bottom
	// box.
	ErrNoWrongCards = errors.New("no wrong cards to repeat")

	// ErrNoActiveCards indicates no deck contributed a card to a combined
	// session.
	ErrNoActiveCards = errors.New("no active cards across decks")

	// ErrAnswerAlreadySubmitted indicates the current item has been
	// answered and the session is waiting for a continue.
	ErrAnswerAlreadySubmitted = errors.New("answer already submitted for current card")

	// ErrNoAnswerSubmitted indicates a continue arrived before the current
	// item was answered.
	ErrNoAnswerSubmitted = errors.New("no answer submitted for current card")

	// ErrSessionComplete indicates the session has run out of cards.
	ErrSessionComplete = errors.New("study session is complete")
)
