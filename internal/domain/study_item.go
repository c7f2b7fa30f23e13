package domain

// Direction selects which side of a card pair is shown as the prompt.
type Direction string

const (
	// DirectionForward quizzes front -> back.
	DirectionForward Direction = "forward"

	// DirectionBackward quizzes back -> front.
	DirectionBackward Direction = "backward"
)

// StudyItem pairs a card with a quiz direction for one presentation.
// It is created fresh when a study queue is built and discarded with the
// session; the direction is never persisted on the card.
type StudyItem struct {
	Card      Card      `json:"card"`
	Direction Direction `json:"direction"`

	// OriginLang records which deck the card came from. It is only set
	// when decks are merged into a cross-language session, so results can
	// be written back to the right deck.
	OriginLang string `json:"origin_lang,omitempty"`
}

// Prompt returns the text shown to the learner for this item.
func (i StudyItem) Prompt() string {
	if i.Direction == DirectionBackward {
		return i.Card.Back
	}
	return i.Card.Front
}

// Expected returns the answer text the learner must produce.
func (i StudyItem) Expected() string {
	if i.Direction == DirectionBackward {
		return i.Card.Front
	}
	return i.Card.Back
}
