// Package study builds quiz queues and runs study sessions over them,
// applying each answer to the card's review schedule as it happens.
package study

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/prasetyo/ingatkata/internal/domain"
	"github.com/prasetyo/ingatkata/internal/domain/srs"
	"github.com/prasetyo/ingatkata/internal/platform/logger"
	"github.com/prasetyo/ingatkata/internal/store"
)

// SubmitResult reports how one answer was graded and where the card moved.
type SubmitResult struct {
	Correct  bool        `json:"correct"`
	Expected string      `json:"expected"`
	Card     domain.Card `json:"card"`
	Session  Snapshot    `json:"session"`
}

// Service runs study sessions.
type Service interface {
	// Start builds a queue for one deck and opens a session over it. The
	// queue is fixed at this point; deck edits made while the session
	// runs do not affect it.
	Start(ctx context.Context, language string, mode Mode) (Snapshot, error)

	// StartCombined opens a session over the active cards of every saved
	// deck, shuffled together. Due dates are ignored; results are written
	// back to each card's own deck.
	StartCombined(ctx context.Context) (Snapshot, error)

	// Get returns the current view of a session.
	Get(id uuid.UUID) (Snapshot, error)

	// Submit grades an answer for the session's current card and commits
	// the scheduling result. A correct answer advances to the next card
	// immediately; a wrong one holds the session until Continue so the
	// expected answer can be shown. Passing gaveUp marks the card wrong
	// without grading the answer text.
	Submit(ctx context.Context, id uuid.UUID, answer string, gaveUp bool) (SubmitResult, error)

	// Continue acknowledges a missed card and advances to the next one,
	// completing the session after the last card.
	Continue(ctx context.Context, id uuid.UUID) (Snapshot, error)

	// LastAccuracy reports the accuracy of the language's most recently
	// completed session, or nil if none has completed yet.
	LastAccuracy(language string) *float64
}

// Verify interface compliance at compile time
var _ Service = (*serviceImpl)(nil)

type serviceImpl struct {
	decks    store.DeckStore
	srs      srs.Service
	sessions *registry
	logger   *slog.Logger
	nowFn    func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// NewService creates a study Service. A nil rng gets a time-seeded
// source; tests inject a fixed seed.
func NewService(decks store.DeckStore, srsService srs.Service, rng *rand.Rand, log *slog.Logger) Service {
	if decks == nil {
		panic("decks cannot be nil")
	}
	if srsService == nil {
		panic("srsService cannot be nil")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if log == nil {
		log = slog.Default()
	}

	return &serviceImpl{
		decks:    decks,
		srs:      srsService,
		sessions: newRegistry(),
		logger:   log.With(slog.String("component", "study_service")),
		nowFn:    func() time.Time { return time.Now().UTC() },
		rng:      rng,
	}
}

func (s *serviceImpl) Start(ctx context.Context, language string, mode Mode) (Snapshot, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cards, err := s.decks.Load(ctx, language)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to load deck %q: %w", language, err)
	}

	var selected []domain.Card
	switch mode {
	case ModeDue:
		selected = selectDue(cards, s.nowFn())
		if len(selected) == 0 {
			return Snapshot{}, ErrNoDueCards
		}
	case ModeAll:
		selected = selectActive(cards)
		if len(selected) == 0 {
			return Snapshot{}, ErrDeckEmpty
		}
		s.shuffle(selected)
	case ModeWrong:
		selected = selectWrong(cards)
		if len(selected) == 0 {
			return Snapshot{}, ErrNoWrongCards
		}
		s.shuffle(selected)
	default:
		return Snapshot{}, fmt.Errorf("unknown study mode %q", mode)
	}

	session := s.open(language, mode, false, s.buildQueue(selected))

	log.Info("study session started",
		slog.String("session_id", session.ID.String()),
		slog.String("language", language),
		slog.String("mode", string(mode)),
		slog.Int("queue_len", len(session.Queue)))

	session.mu.Lock()
	defer session.mu.Unlock()
	return session.snapshot(), nil
}

func (s *serviceImpl) StartCombined(ctx context.Context) (Snapshot, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	languages, err := s.decks.List(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to list decks: %w", err)
	}

	var pool []domain.StudyItem
	for _, language := range languages {
		cards, err := s.decks.Load(ctx, language)
		if err != nil {
			return Snapshot{}, fmt.Errorf("failed to load deck %q: %w", language, err)
		}
		for _, item := range s.buildQueue(selectActive(cards)) {
			item.OriginLang = language
			pool = append(pool, item)
		}
	}
	if len(pool) == 0 {
		return Snapshot{}, ErrNoActiveCards
	}

	s.mu.Lock()
	s.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	s.mu.Unlock()

	session := s.open("", ModeAll, true, pool)

	log.Info("combined study session started",
		slog.String("session_id", session.ID.String()),
		slog.Int("decks", len(languages)),
		slog.Int("queue_len", len(pool)))

	session.mu.Lock()
	defer session.mu.Unlock()
	return session.snapshot(), nil
}

func (s *serviceImpl) Get(id uuid.UUID) (Snapshot, error) {
	session, ok := s.sessions.get(id)
	if !ok {
		return Snapshot{}, ErrSessionNotFound
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.snapshot(), nil
}

func (s *serviceImpl) Submit(ctx context.Context, id uuid.UUID, answer string, gaveUp bool) (SubmitResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	session, ok := s.sessions.get(id)
	if !ok {
		return SubmitResult{}, ErrSessionNotFound
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	switch session.State {
	case StateAwaitingContinue:
		return SubmitResult{}, ErrAnswerAlreadySubmitted
	case StateComplete:
		return SubmitResult{}, ErrSessionComplete
	}

	item := session.Queue[session.Index]
	correct := !gaveUp && IsAnswerCorrect(answer, item.Expected())

	updated, err := s.srs.ApplyResult(item.Card, correct, s.nowFn())
	if err != nil {
		return SubmitResult{}, fmt.Errorf("failed to apply review result: %w", err)
	}

	deck := session.Language
	if session.Combined {
		deck = item.OriginLang
	}
	if err := s.commitCard(ctx, deck, updated); err != nil {
		return SubmitResult{}, err
	}

	session.Total++
	if correct {
		session.Correct++
		s.advance(session, log)
	} else {
		session.State = StateAwaitingContinue
	}

	log.Debug("answer graded",
		slog.String("session_id", session.ID.String()),
		slog.String("card_id", item.Card.ID.String()),
		slog.Bool("correct", correct),
		slog.Int("box", updated.Box))

	return SubmitResult{
		Correct:  correct,
		Expected: item.Expected(),
		Card:     updated,
		Session:  session.snapshot(),
	}, nil
}

func (s *serviceImpl) Continue(ctx context.Context, id uuid.UUID) (Snapshot, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	session, ok := s.sessions.get(id)
	if !ok {
		return Snapshot{}, ErrSessionNotFound
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	switch session.State {
	case StatePresenting:
		return Snapshot{}, ErrNoAnswerSubmitted
	case StateComplete:
		return Snapshot{}, ErrSessionComplete
	}

	s.advance(session, log)

	return session.snapshot(), nil
}

// advance moves the session to the next card, completing it after the
// last one. The caller must hold session.mu.
func (s *serviceImpl) advance(session *Session, log *slog.Logger) {
	session.Index++
	if session.Index >= len(session.Queue) {
		session.State = StateComplete
		if !session.Combined {
			s.sessions.recordAccuracy(session.Language, session.accuracy())
		}
		log.Info("study session complete",
			slog.String("session_id", session.ID.String()),
			slog.Int("correct", session.Correct),
			slog.Int("total", session.Total))
	} else {
		session.State = StatePresenting
	}
}

func (s *serviceImpl) LastAccuracy(language string) *float64 {
	acc, ok := s.sessions.accuracyFor(language)
	if !ok {
		return nil
	}
	return &acc
}

// commitCard writes one updated card back into its deck. A card deleted
// while the session was running is left deleted.
func (s *serviceImpl) commitCard(ctx context.Context, language string, card domain.Card) error {
	cards, err := s.decks.Load(ctx, language)
	if err != nil {
		return fmt.Errorf("failed to load deck %q: %w", language, err)
	}

	for i := range cards {
		if cards[i].ID == card.ID {
			cards[i] = card
			if err := s.decks.Save(ctx, language, cards); err != nil {
				return fmt.Errorf("failed to save deck %q: %w", language, err)
			}
			return nil
		}
	}
	return nil
}

func (s *serviceImpl) open(language string, mode Mode, combined bool, queue []domain.StudyItem) *Session {
	session := &Session{
		ID:        uuid.New(),
		Language:  language,
		Mode:      mode,
		Combined:  combined,
		Queue:     queue,
		State:     StatePresenting,
		StartedAt: s.nowFn(),
	}
	s.sessions.add(session)
	return session
}

func (s *serviceImpl) buildQueue(cards []domain.Card) []domain.StudyItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return buildItems(s.rng, cards)
}

func (s *serviceImpl) shuffle(cards []domain.Card) {
	s.mu.Lock()
	defer s.mu.Unlock()
	shuffleCards(s.rng, cards)
}
