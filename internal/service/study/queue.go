package study

import (
	"math/rand"
	"sort"
	"time"

	"github.com/prasetyo/ingatkata/internal/domain"
)

// selectDue returns the active cards whose review is due, ordered by
// ascending due time. The sort is stable so cards sharing a due time keep
// their stored order.
func selectDue(cards []domain.Card, now time.Time) []domain.Card {
	due := make([]domain.Card, 0, len(cards))
	for _, c := range cards {
		if c.Status == domain.CardStatusActive && !c.NextReview.After(now) {
			due = append(due, c)
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].NextReview.Before(due[j].NextReview)
	})
	return due
}

// selectActive returns the active cards in stored order.
func selectActive(cards []domain.Card) []domain.Card {
	active := make([]domain.Card, 0, len(cards))
	for _, c := range cards {
		if c.Status == domain.CardStatusActive {
			active = append(active, c)
		}
	}
	return active
}

// selectWrong returns the active cards sitting at the bottom box, the
// ones most recently failed or never passed.
func selectWrong(cards []domain.Card) []domain.Card {
	wrong := make([]domain.Card, 0, len(cards))
	for _, c := range cards {
		if c.Status == domain.CardStatusActive && c.Box == 0 {
			wrong = append(wrong, c)
		}
	}
	return wrong
}

// shuffleCards permutes cards in place with a Fisher-Yates pass.
func shuffleCards(rng *rand.Rand, cards []domain.Card) {
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}

// buildItems turns a card list into a study queue, flipping a fair coin
// per card to pick the quiz direction. The queue is fixed once built:
// answering never reorders or re-rolls it.
func buildItems(rng *rand.Rand, cards []domain.Card) []domain.StudyItem {
	items := make([]domain.StudyItem, len(cards))
	for i, c := range cards {
		direction := domain.DirectionForward
		if rng.Intn(2) == 1 {
			direction = domain.DirectionBackward
		}
		items[i] = domain.StudyItem{Card: c, Direction: direction}
	}
	return items
}
