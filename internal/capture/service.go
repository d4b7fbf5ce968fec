package capture

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/ksuid"

	"github.com/pokecode-app/pokecode/internal/domain"
	"github.com/pokecode-app/pokecode/internal/logger"
	"github.com/pokecode-app/pokecode/internal/metrics"
	"github.com/pokecode-app/pokecode/internal/repository"
	"github.com/pokecode-app/pokecode/internal/shop"
	"github.com/pokecode-app/pokecode/internal/utils"
)

// LegendaryFleeChance is the probability a legendary escapes before any roll
const LegendaryFleeChance = 0.20

// LegendaryRateModifier dampens the catch rate against legendaries
const LegendaryRateModifier = 0.3

// Ball speed modifiers applied on top of the base catch rate
const (
	QuickBallModifier = 1.5
	TimerBallModifier = 1.1
)

// Capture outcome messages shown to the user
const (
	MsgCaught     = "Gotcha!"
	MsgMasterBall = "Gotcha! The Master Ball never fails!"
	MsgBrokeFree  = "Oh no! The Pokémon broke free!"
	MsgFled       = "Oh no! The legendary Pokémon fled!"
)

// AchievementService defines the interface for refreshing achievement progress
type AchievementService interface {
	Recompute(ctx context.Context, userID string) error
}

// Service defines the interface for capture resolution
type Service interface {
	Resolve(ctx context.Context, userID, ballID string) (*domain.CaptureResult, error)
}

type service struct {
	pokemon      repository.Pokemon
	inventory    repository.Inventory
	achievements AchievementService
	rnd          func() float64 // For rolling RNG
	now          func() time.Time
}

// NewService creates a new capture service
func NewService(pokemon repository.Pokemon, inventory repository.Inventory, achievements AchievementService) Service {
	return &service{
		pokemon:      pokemon,
		inventory:    inventory,
		achievements: achievements,
		rnd:          utils.RandomFloat,
		now:          time.Now,
	}
}

// Resolve throws one ball at the oldest queued encounter. The ball is
// consumed exactly once whatever the outcome; the encounter leaves the queue
// only on success.
func (s *service) Resolve(ctx context.Context, userID, ballID string) (*domain.CaptureResult, error) {
	log := logger.FromContext(ctx)

	// 1. Validate the ball before touching any state
	ball, ok := shop.ItemByID(ballID)
	if !ok || ball.CatchRate <= 0 {
		return nil, domain.ErrItemNotFound
	}

	// 2. There must be something to throw at
	target, err := s.pokemon.PeekQueue(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to peek encounter queue: %w", err)
	}

	// 3. Consume the ball, a single atomic decrement
	if err := s.inventory.AddItem(ctx, userID, ballID, -1); err != nil {
		return nil, fmt.Errorf("failed to consume ball: %w", err)
	}
	metrics.CaptureAttempts.WithLabelValues(ballID).Inc()
	metrics.BallsConsumed.WithLabelValues(ballID).Inc()

	// 4. Legendary flee check precedes everything, even the Master Ball
	if target.Legendary && s.rnd() < LegendaryFleeChance {
		log.Info("Legendary fled", "user_id", userID, "pokemon_id", target.ID, "ball", ballID)
		return &domain.CaptureResult{
			Success:   false,
			Fled:      true,
			BallUsed:  ballID,
			CatchRate: 0,
			Message:   MsgFled,
		}, nil
	}

	// 5. Master Ball never misses
	if ballID == domain.ItemMasterBall {
		return s.recordCatch(ctx, userID, target, ballID, 1, MsgMasterBall)
	}

	// 6. Roll against the effective rate
	rate := ball.CatchRate
	switch ballID {
	case domain.ItemQuickBall:
		rate *= QuickBallModifier
	case domain.ItemTimerBall:
		rate *= TimerBallModifier
	}
	if target.Legendary {
		rate *= LegendaryRateModifier
	}
	rate = utils.Clamp01(rate)

	if s.rnd() >= rate {
		log.Info("Capture failed", "user_id", userID, "pokemon_id", target.ID, "ball", ballID, "rate", rate)
		return &domain.CaptureResult{
			Success:   false,
			BallUsed:  ballID,
			CatchRate: rate,
			Message:   MsgBrokeFree,
		}, nil
	}

	return s.recordCatch(ctx, userID, target, ballID, rate, MsgCaught)
}

// recordCatch moves the target from the queue into the collection. The ball
// is already spent at this point, so failures here are reported distinctly.
func (s *service) recordCatch(ctx context.Context, userID string, target *domain.QueuedPokemon, ballID string, rate float64, message string) (*domain.CaptureResult, error) {
	log := logger.FromContext(ctx)

	dequeued, err := s.pokemon.Dequeue(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ball consumed but dequeue failed: %w", err)
	}

	caught := domain.CaughtPokemon{
		QueuedPokemon: *dequeued,
		UID:           ksuid.New().String(),
		CaughtAt:      s.now().UnixMilli(),
	}
	if err := s.pokemon.AddToCollection(ctx, userID, caught); err != nil {
		return nil, fmt.Errorf("ball consumed but collection append failed: %w", err)
	}

	if err := s.achievements.Recompute(ctx, userID); err != nil {
		log.Warn("Achievement recompute failed after capture", "user_id", userID, "error", err)
	}

	metrics.CaptureSuccesses.WithLabelValues(ballID).Inc()
	log.Info("Capture succeeded", "user_id", userID, "pokemon_id", target.ID, "ball", ballID, "rate", rate)
	return &domain.CaptureResult{
		Success:   true,
		BallUsed:  ballID,
		CatchRate: rate,
		Message:   message,
		Pokemon:   &caught,
	}, nil
}
