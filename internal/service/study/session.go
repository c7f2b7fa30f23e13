package study

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/prasetyo/ingatkata/internal/domain"
)

// Mode selects which cards a session drills.
type Mode string

const (
	// ModeDue drills the cards whose review date has arrived, most
	// overdue first.
	ModeDue Mode = "due"

	// ModeAll drills every active card in random order, ignoring
	// schedules.
	ModeAll Mode = "all"

	// ModeWrong drills only the active cards at the bottom box, in
	// random order.
	ModeWrong Mode = "wrong"
)

// State is the session's position in its answer/continue cycle.
type State string

const (
	// StatePresenting means the current card is shown and an answer is
	// expected.
	StatePresenting State = "presenting"

	// StateAwaitingContinue means the current card was missed and the
	// expected answer is shown until the learner advances. Correct
	// answers skip this state and move straight to the next card.
	StateAwaitingContinue State = "awaiting_continue"

	// StateComplete means every card in the queue has been answered.
	StateComplete State = "complete"
)

// Session is one pass through a fixed study queue. Each card is answered
// exactly once; its scheduling result is committed to storage at answer
// time, so abandoning a session loses nothing.
type Session struct {
	mu sync.Mutex

	ID        uuid.UUID
	Language  string
	Mode      Mode
	Combined  bool
	Queue     []domain.StudyItem
	Index     int
	State     State
	Correct   int
	Total     int
	StartedAt time.Time
}

// Snapshot is an immutable view of session progress, safe to serialize
// after the session lock is released.
type Snapshot struct {
	ID        uuid.UUID        `json:"id"`
	Language  string           `json:"language"`
	Mode      Mode             `json:"mode"`
	Combined  bool             `json:"combined"`
	State     State            `json:"state"`
	Index     int              `json:"index"`
	QueueLen  int              `json:"queue_len"`
	Correct   int              `json:"correct"`
	Total     int              `json:"total"`
	Current   *domain.StudyItem `json:"current,omitempty"`
	StartedAt time.Time        `json:"started_at"`
}

// snapshot copies the observable state. Caller must hold s.mu.
func (s *Session) snapshot() Snapshot {
	snap := Snapshot{
		ID:        s.ID,
		Language:  s.Language,
		Mode:      s.Mode,
		Combined:  s.Combined,
		State:     s.State,
		Index:     s.Index,
		QueueLen:  len(s.Queue),
		Correct:   s.Correct,
		Total:     s.Total,
		StartedAt: s.StartedAt,
	}
	if s.State != StateComplete && s.Index < len(s.Queue) {
		item := s.Queue[s.Index]
		snap.Current = &item
	}
	return snap
}

// accuracy is the fraction of answered cards graded correct. Caller must
// hold s.mu.
func (s *Session) accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total)
}

// registry holds live sessions and the per-language accuracy of the most
// recently completed one.
type registry struct {
	mu           sync.RWMutex
	sessions     map[uuid.UUID]*Session
	lastAccuracy map[string]float64
}

func newRegistry() *registry {
	return &registry{
		sessions:     make(map[uuid.UUID]*Session),
		lastAccuracy: make(map[string]float64),
	}
}

func (r *registry) add(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
}

func (r *registry) get(id uuid.UUID) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

func (r *registry) recordAccuracy(language string, accuracy float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastAccuracy[language] = accuracy
}

func (r *registry) accuracyFor(language string) (float64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	acc, ok := r.lastAccuracy[language]
	return acc, ok
}
