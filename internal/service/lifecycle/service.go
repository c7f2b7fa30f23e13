// Package lifecycle manages how cards enter and leave a deck's study
// rotation: bulk and preset imports, the active-card cap, the
// accuracy-gated release of reserve cards, and list maintenance.
package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/prasetyo/ingatkata/internal/domain"
	"github.com/prasetyo/ingatkata/internal/platform/logger"
	"github.com/prasetyo/ingatkata/internal/seed"
	"github.com/prasetyo/ingatkata/internal/store"
)

// Service manages deck membership and rotation state.
type Service interface {
	// ImportText parses "front <> back" lines and appends the resulting
	// cards to the deck. The batch is shuffled, then fills empty active
	// slots up to the cap; the remainder lands in reserve. Returns how
	// many cards were created.
	ImportText(ctx context.Context, language, text string) (int, error)

	// ImportLevel appends a built-in word pack level to the deck under
	// the same slot-filling rule as ImportText. Cards are tagged with the
	// level so a second import of the same level is rejected.
	ImportLevel(ctx context.Context, language, level string) (int, error)

	// AddCard creates a single card in active rotation. Manual adds are
	// deliberate, so they bypass the active cap.
	AddCard(ctx context.Context, language, front, back string) (*domain.Card, error)

	// DeleteCard removes one card from the deck.
	DeleteCard(ctx context.Context, language string, id uuid.UUID) error

	// BulkDelete removes every listed card and returns how many were
	// actually present.
	BulkDelete(ctx context.Context, language string, ids []uuid.UUID) (int, error)

	// BulkMove sets the status of every listed card. Moving to active
	// makes the card due immediately; moving to reserve keeps its
	// schedule so reactivation can restore it. Returns how many cards
	// were present and moved.
	BulkMove(ctx context.Context, language string, ids []uuid.UUID, target domain.CardStatus) (int, error)

	// Replenish activates the next batch of reserve cards, sized by the
	// last session's accuracy. A nil accuracy means no session has been
	// completed yet and releases a full batch.
	Replenish(ctx context.Context, language string, lastAccuracy *float64) (int, error)
}

// Verify interface compliance at compile time
var _ Service = (*serviceImpl)(nil)

type serviceImpl struct {
	decks  store.DeckStore
	params Params
	logger *slog.Logger
	nowFn  func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// NewService creates a lifecycle Service backed by the given deck store.
// A nil rng gets a time-seeded source; tests inject a fixed seed.
func NewService(decks store.DeckStore, params Params, rng *rand.Rand, log *slog.Logger) Service {
	if decks == nil {
		panic("decks cannot be nil")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if log == nil {
		log = slog.Default()
	}

	return &serviceImpl{
		decks:  decks,
		params: params,
		logger: log.With(slog.String("component", "lifecycle_service")),
		nowFn:  func() time.Time { return time.Now().UTC() },
		rng:    rng,
	}
}

func (s *serviceImpl) ImportText(ctx context.Context, language, text string) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	pairs := ParseImportText(text)
	if len(pairs) == 0 {
		return 0, ErrNoImportableLines
	}

	added, err := s.importPairs(ctx, language, pairs, domain.SourceCustom)
	if err != nil {
		return 0, err
	}

	log.Debug("imported pasted text",
		slog.String("language", language),
		slog.Int("cards", added))
	return added, nil
}

func (s *serviceImpl) ImportLevel(ctx context.Context, language, level string) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	words, err := seed.Words(language, level)
	if err != nil {
		return 0, err
	}

	cards, err := s.load(ctx, language)
	if err != nil {
		return 0, err
	}

	source := domain.SourcePresetPrefix + level
	for _, c := range cards {
		if c.Source == source {
			return 0, ErrLevelAlreadyImported
		}
	}

	added, err := s.importPairs(ctx, language, words, source)
	if err != nil {
		return 0, err
	}

	log.Info("imported word pack level",
		slog.String("language", language),
		slog.String("level", level),
		slog.Int("cards", added))
	return added, nil
}

// importPairs shuffles the batch, fills empty active slots up to the cap,
// and appends everything else as reserve.
func (s *serviceImpl) importPairs(ctx context.Context, language string, pairs []seed.Pair, source string) (int, error) {
	cards, err := s.load(ctx, language)
	if err != nil {
		return 0, err
	}

	batch := make([]seed.Pair, len(pairs))
	copy(batch, pairs)
	s.shuffle(batch)

	slots := s.params.ActiveCap - countActive(cards)
	if slots < 0 {
		slots = 0
	}

	now := s.nowFn()
	for _, p := range batch {
		card, err := domain.NewCard(p.Front, p.Back, source, now)
		if err != nil {
			return 0, fmt.Errorf("failed to create card: %w", err)
		}
		if slots > 0 {
			slots--
		} else {
			card.Status = domain.CardStatusReserve
		}
		cards = append(cards, *card)
	}

	if err := s.save(ctx, language, cards); err != nil {
		return 0, err
	}
	return len(batch), nil
}

func (s *serviceImpl) AddCard(ctx context.Context, language, front, back string) (*domain.Card, error) {
	cards, err := s.load(ctx, language)
	if err != nil {
		return nil, err
	}

	card, err := domain.NewCard(front, back, domain.SourceCustom, s.nowFn())
	if err != nil {
		return nil, err
	}

	cards = append(cards, *card)
	if err := s.save(ctx, language, cards); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *serviceImpl) DeleteCard(ctx context.Context, language string, id uuid.UUID) error {
	cards, err := s.load(ctx, language)
	if err != nil {
		return err
	}

	kept := cards[:0]
	found := false
	for _, c := range cards {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return ErrCardNotFound
	}

	return s.save(ctx, language, kept)
}

func (s *serviceImpl) BulkDelete(ctx context.Context, language string, ids []uuid.UUID) (int, error) {
	cards, err := s.load(ctx, language)
	if err != nil {
		return 0, err
	}

	drop := idSet(ids)
	kept := cards[:0]
	deleted := 0
	for _, c := range cards {
		if drop[c.ID] {
			deleted++
			continue
		}
		kept = append(kept, c)
	}
	if deleted == 0 {
		return 0, nil
	}

	if err := s.save(ctx, language, kept); err != nil {
		return 0, err
	}
	return deleted, nil
}

func (s *serviceImpl) BulkMove(ctx context.Context, language string, ids []uuid.UUID, target domain.CardStatus) (int, error) {
	if target != domain.CardStatusActive && target != domain.CardStatusReserve {
		return 0, domain.ErrCardStatusInvalid
	}

	cards, err := s.load(ctx, language)
	if err != nil {
		return 0, err
	}

	move := idSet(ids)
	now := s.nowFn()
	moved := 0
	for i := range cards {
		if !move[cards[i].ID] {
			continue
		}
		cards[i].Status = target
		if target == domain.CardStatusActive {
			cards[i].NextReview = now
		}
		moved++
	}
	if moved == 0 {
		return 0, nil
	}

	if err := s.save(ctx, language, cards); err != nil {
		return 0, err
	}
	return moved, nil
}

func (s *serviceImpl) Replenish(ctx context.Context, language string, lastAccuracy *float64) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	batch := s.batchSize(lastAccuracy)
	if batch == 0 {
		return 0, ErrAccuracyGateBlocked
	}

	cards, err := s.load(ctx, language)
	if err != nil {
		return 0, err
	}

	// Reserve cards activate in stored order, oldest import first.
	now := s.nowFn()
	activated := 0
	for i := range cards {
		if activated == batch {
			break
		}
		if cards[i].Status != domain.CardStatusReserve {
			continue
		}
		cards[i].Status = domain.CardStatusActive
		cards[i].NextReview = now
		activated++
	}
	if activated == 0 {
		return 0, ErrReserveExhausted
	}

	if err := s.save(ctx, language, cards); err != nil {
		return 0, err
	}

	log.Info("released reserve cards",
		slog.String("language", language),
		slog.Int("activated", activated))
	return activated, nil
}

// batchSize applies the accuracy gate. No completed session yet counts as
// a clean slate and gets the full batch.
func (s *serviceImpl) batchSize(lastAccuracy *float64) int {
	switch {
	case lastAccuracy == nil:
		return s.params.BatchFull
	case *lastAccuracy >= s.params.HighAccuracy:
		return s.params.BatchFull
	case *lastAccuracy >= s.params.LowAccuracy:
		return s.params.BatchPartial
	default:
		return 0
	}
}

func (s *serviceImpl) shuffle(pairs []seed.Pair) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng.Shuffle(len(pairs), func(i, j int) {
		pairs[i], pairs[j] = pairs[j], pairs[i]
	})
}

func (s *serviceImpl) load(ctx context.Context, language string) ([]domain.Card, error) {
	cards, err := s.decks.Load(ctx, language)
	if err != nil {
		return nil, fmt.Errorf("failed to load deck %q: %w", language, err)
	}
	return cards, nil
}

func (s *serviceImpl) save(ctx context.Context, language string, cards []domain.Card) error {
	if err := s.decks.Save(ctx, language, cards); err != nil {
		return fmt.Errorf("failed to save deck %q: %w", language, err)
	}
	return nil
}

func countActive(cards []domain.Card) int {
	n := 0
	for _, c := range cards {
		if c.Status == domain.CardStatusActive {
			n++
		}
	}
	return n
}

func idSet(ids []uuid.UUID) map[uuid.UUID]bool {
	set := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
