package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/prasetyo/ingatkata/internal/domain"
	"github.com/prasetyo/ingatkata/internal/service/study"
)

// LoginRequest carries the owner password.
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the issued access token.
type LoginResponse struct {
	Token string `json:"token"`
}

// CreateDeckRequest starts an empty deck for a language.
type CreateDeckRequest struct {
	Language string `json:"language" validate:"required,min=1,max=64"`
}

// DeckStatsResponse summarizes one deck for dashboards.
type DeckStatsResponse struct {
	Language string `json:"language"`
	Total    int    `json:"total"`
	Active   int    `json:"active"`
	Reserve  int    `json:"reserve"`
	Mastered int    `json:"mastered"`
	Due      int    `json:"due"`
}

func newDeckStatsResponse(stats domain.DeckStats) DeckStatsResponse {
	return DeckStatsResponse{
		Language: stats.Language,
		Total:    stats.Total,
		Active:   stats.Active,
		Reserve:  stats.Reserve,
		Mastered: stats.Mastered,
		Due:      stats.Due,
	}
}

// CardListResponse splits a deck's collection by rotation status.
type CardListResponse struct {
	Active  []domain.Card `json:"active"`
	Reserve []domain.Card `json:"reserve"`
}

// AddCardRequest creates one card manually.
type AddCardRequest struct {
	Front string `json:"front" validate:"required"`
	Back  string `json:"back" validate:"required"`
}

// ImportRequest carries pasted bulk-import text.
type ImportRequest struct {
	Text string `json:"text" validate:"required"`
}

// ImportLevelRequest imports a built-in word pack level.
type ImportLevelRequest struct {
	Level string `json:"level" validate:"required"`
}

// ImportResponse reports how many cards an import created.
type ImportResponse struct {
	Added int `json:"added"`
}

// BulkIDsRequest lists the cards a bulk delete targets.
type BulkIDsRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1"`
}

// BulkMoveRequest lists the cards to move and where.
type BulkMoveRequest struct {
	IDs    []uuid.UUID `json:"ids" validate:"required,min=1"`
	Target string      `json:"target" validate:"required,oneof=active reserve"`
}

// BulkResponse reports how many cards a bulk operation touched.
type BulkResponse struct {
	Affected int `json:"affected"`
}

// ReplenishResponse reports how many reserve cards were activated.
type ReplenishResponse struct {
	Activated int `json:"activated"`
}

// SeedLevelResponse describes one level of a built-in word pack.
type SeedLevelResponse struct {
	Name  string `json:"name"`
	Words int    `json:"words"`
}

// CreateSessionRequest opens a study session. Set Combined to drill
// every deck at once; otherwise Language and Mode pick the queue.
type CreateSessionRequest struct {
	Combined bool   `json:"combined"`
	Language string `json:"language" validate:"required_if=Combined false"`
	Mode     string `json:"mode" validate:"omitempty,oneof=due all wrong"`
}

// AnswerRequest submits an answer for the session's current card.
// GaveUp marks the card wrong regardless of the answer text.
type AnswerRequest struct {
	Answer string `json:"answer"`
	GaveUp bool   `json:"gave_up"`
}

// StudyItemResponse presents the current card without revealing the
// expected answer.
type StudyItemResponse struct {
	CardID     uuid.UUID        `json:"card_id"`
	Prompt     string           `json:"prompt"`
	Direction  domain.Direction `json:"direction"`
	Box        int              `json:"box"`
	OriginLang string           `json:"origin_lang,omitempty"`
}

// SessionResponse is the client view of session progress.
type SessionResponse struct {
	ID        uuid.UUID          `json:"id"`
	Language  string             `json:"language,omitempty"`
	Mode      study.Mode         `json:"mode"`
	Combined  bool               `json:"combined"`
	State     study.State        `json:"state"`
	Index     int                `json:"index"`
	QueueLen  int                `json:"queue_len"`
	Correct   int                `json:"correct"`
	Total     int                `json:"total"`
	Current   *StudyItemResponse `json:"current,omitempty"`
	StartedAt time.Time          `json:"started_at"`
}

func newSessionResponse(snap study.Snapshot) SessionResponse {
	resp := SessionResponse{
		ID:        snap.ID,
		Language:  snap.Language,
		Mode:      snap.Mode,
		Combined:  snap.Combined,
		State:     snap.State,
		Index:     snap.Index,
		QueueLen:  snap.QueueLen,
		Correct:   snap.Correct,
		Total:     snap.Total,
		StartedAt: snap.StartedAt,
	}
	if snap.Current != nil {
		resp.Current = &StudyItemResponse{
			CardID:     snap.Current.Card.ID,
			Prompt:     snap.Current.Prompt(),
			Direction:  snap.Current.Direction,
			Box:        snap.Current.Card.Box,
			OriginLang: snap.Current.OriginLang,
		}
	}
	return resp
}

// AnswerResponse reports the grading of one answer.
type AnswerResponse struct {
	Correct  bool            `json:"correct"`
	Expected string          `json:"expected"`
	Card     domain.Card     `json:"card"`
	Session  SessionResponse `json:"session"`
}
