package srs

import (
	"time"

	"github.com/prasetyo/ingatkata/internal/domain"
)

// calculateNextBox determines the new box level based on the review result.
//
// A correct answer climbs one rung of the ladder, saturating at
// domain.MaxBox. An incorrect answer drops the card back to box 0 no
// matter how high it had climbed.
func calculateNextBox(currentBox int, isCorrect bool) int {
	if !isCorrect {
		return 0
	}
	if currentBox >= domain.MaxBox {
		return domain.MaxBox
	}
	return currentBox + 1
}

// calculateNextReviewAt determines when the card should next be reviewed.
//
// Correct answers schedule the card after the interval of its new box;
// incorrect answers use the short FailDelay regardless of the prior box so
// the card resurfaces almost immediately.
func calculateNextReviewAt(newBox int, isCorrect bool, now time.Time, params *Params) time.Time {
	if !isCorrect {
		return now.Add(params.FailDelay)
	}
	return now.Add(params.Intervals[newBox])
}

// calculateNextCard creates an updated copy of the card after a review.
//
// The original card is not modified; the caller is responsible for
// persisting the returned value. LastReviewed is recorded here as inert
// metadata: nothing in the scheduler ever reads it back.
func calculateNextCard(card domain.Card, isCorrect bool, now time.Time, params *Params) domain.Card {
	next := card
	next.Box = calculateNextBox(card.Box, isCorrect)
	next.NextReview = calculateNextReviewAt(next.Box, isCorrect, now, params)
	reviewed := now
	next.LastReviewed = &reviewed
	return next
}

// IsDue reports whether the card is eligible for due-based selection:
// it must be active and its next review time must have passed. Reserve
// cards are never due regardless of their stale schedule.
func IsDue(card domain.Card, now time.Time) bool {
	return card.Status == domain.CardStatusActive && !card.NextReview.After(now)
}

// IsMastered reports whether the card is an active card at or above the
// mastered box level.
func IsMastered(card domain.Card) bool {
	return card.Status == domain.CardStatusActive && card.Box >= domain.MasteredBox
}
