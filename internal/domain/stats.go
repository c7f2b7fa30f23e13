package domain

import "time"

// DeckStats summarizes one language deck for dashboards and deck listings.
type DeckStats struct {
	Language string `json:"language"`
	Total    int    `json:"total"`
	Active   int    `json:"active"`
	Reserve  int    `json:"reserve"`
	Mastered int    `json:"mastered"`
	Due      int    `json:"due"`
}

// ComputeDeckStats derives deck statistics from a card collection.
// Only active cards count toward mastered and due; mastered means the
// card has reached at least box 4.
func ComputeDeckStats(language string, cards []Card, now time.Time) DeckStats {
	stats := DeckStats{Language: language, Total: len(cards)}

	for _, c := range cards {
		switch c.Status {
		case CardStatusReserve:
			stats.Reserve++
		case CardStatusActive:
			stats.Active++
			if c.Box >= MasteredBox {
				stats.Mastered++
			}
			if !c.NextReview.After(now) {
				stats.Due++
			}
		}
	}

	return stats
}
