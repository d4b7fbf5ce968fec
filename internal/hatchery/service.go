package hatchery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/ksuid"

	"github.com/pokecode-app/pokecode/internal/domain"
	"github.com/pokecode-app/pokecode/internal/logger"
	"github.com/pokecode-app/pokecode/internal/metrics"
	"github.com/pokecode-app/pokecode/internal/pokedex"
	"github.com/pokecode-app/pokecode/internal/repository"
	"github.com/pokecode-app/pokecode/internal/utils"
)

// HatchDuration is how long an egg must be held before it can hatch
const HatchDuration = 7 * 24 * time.Hour

// DetailFetcher defines the interface for looking up species data
type DetailFetcher interface {
	FetchDetail(ctx context.Context, id int) (*domain.PokemonDetail, error)
}

// AchievementService defines the interface for refreshing achievement progress
type AchievementService interface {
	Recompute(ctx context.Context, userID string) error
}

// Service defines the interface for egg hatching
type Service interface {
	ListEggs(ctx context.Context, userID string) ([]domain.Egg, error)
	HatchEgg(ctx context.Context, userID, eggID string) (*domain.CaughtPokemon, error)
	UseIncubator(ctx context.Context, userID, eggID string) (*domain.CaughtPokemon, error)
}

type service struct {
	inventory    repository.Inventory
	pokemon      repository.Pokemon
	users        repository.User
	fetcher      DetailFetcher
	achievements AchievementService
	rnd          func() float64 // For rolling RNG
	now          func() time.Time
}

// NewService creates a new hatchery service
func NewService(inventory repository.Inventory, pokemon repository.Pokemon, users repository.User, fetcher DetailFetcher, achievements AchievementService) Service {
	return &service{
		inventory:    inventory,
		pokemon:      pokemon,
		users:        users,
		fetcher:      fetcher,
		achievements: achievements,
		rnd:          utils.RandomFloat,
		now:          time.Now,
	}
}

// ListEggs returns the user's eggs with their readiness computed against the
// current time
func (s *service) ListEggs(ctx context.Context, userID string) ([]domain.Egg, error) {
	eggs, err := s.inventory.GetEggs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get eggs: %w", err)
	}
	for i := range eggs {
		eggs[i].Hatchable = s.now().Sub(eggs[i].PurchasedAt) >= HatchDuration
	}
	return eggs, nil
}

// HatchEgg hatches a ready egg into a random baby Pokémon that joins the
// collection directly, skipping the capture queue.
func (s *service) HatchEgg(ctx context.Context, userID, eggID string) (*domain.CaughtPokemon, error) {
	// 1. The egg must exist and be old enough
	egg, err := s.findEgg(ctx, userID, eggID)
	if err != nil {
		return nil, err
	}
	if s.now().Sub(egg.PurchasedAt) < HatchDuration {
		return nil, domain.ErrEggNotReady
	}

	// 2. Remove it, then hatch
	if err := s.inventory.RemoveEgg(ctx, userID, egg.ID); err != nil {
		return nil, fmt.Errorf("failed to remove egg: %w", err)
	}
	return s.hatch(ctx, userID, metrics.SourceTimer)
}

// UseIncubator consumes one incubator to hatch an egg immediately. An empty
// eggID picks the oldest egg.
func (s *service) UseIncubator(ctx context.Context, userID, eggID string) (*domain.CaughtPokemon, error) {
	egg, err := s.findEgg(ctx, userID, eggID)
	if err != nil {
		return nil, err
	}

	if err := s.inventory.AddItem(ctx, userID, domain.ItemIncubator, -1); err != nil {
		if errors.Is(err, domain.ErrInsufficientQuantity) {
			return nil, domain.ErrNoIncubator
		}
		return nil, fmt.Errorf("failed to consume incubator: %w", err)
	}

	if err := s.inventory.RemoveEgg(ctx, userID, egg.ID); err != nil {
		return nil, fmt.Errorf("incubator consumed but egg removal failed: %w", err)
	}
	return s.hatch(ctx, userID, metrics.SourceIncubator)
}

func (s *service) findEgg(ctx context.Context, userID, eggID string) (*domain.Egg, error) {
	eggs, err := s.inventory.GetEggs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get eggs: %w", err)
	}
	if len(eggs) == 0 {
		return nil, domain.ErrNoEgg
	}
	if eggID == "" {
		oldest := eggs[0]
		for _, e := range eggs[1:] {
			if e.PurchasedAt.Before(oldest.PurchasedAt) {
				oldest = e
			}
		}
		return &oldest, nil
	}
	for _, e := range eggs {
		if e.ID == eggID {
			return &e, nil
		}
	}
	return nil, domain.ErrEggNotFound
}

// hatch picks a uniform baby species whose strength tracks the user's rating
func (s *service) hatch(ctx context.Context, userID, source string) (*domain.CaughtPokemon, error) {
	log := logger.FromContext(ctx)

	babies := pokedex.BabyIDs()
	id := babies[utils.RandomIndex(s.rnd(), len(babies))]

	detail, err := s.fetcher.FetchDetail(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hatchling detail: %w", err)
	}

	cp := domain.DefaultRating
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		log.Warn("Falling back to default hatchling strength", "user_id", userID, "error", err)
	} else if user.Rating > 0 {
		cp = user.Rating
	}

	caught := domain.CaughtPokemon{
		QueuedPokemon: domain.QueuedPokemon{
			ID:       detail.ID,
			Name:     detail.Name,
			ImageURL: detail.ImageURL,
			Types:    detail.Types,
			Stats:    detail.Stats,
			CP:       cp,
		},
		UID:      ksuid.New().String(),
		CaughtAt: s.now().UnixMilli(),
	}
	if err := s.pokemon.AddToCollection(ctx, userID, caught); err != nil {
		return nil, fmt.Errorf("failed to add hatchling to collection: %w", err)
	}

	if err := s.achievements.Recompute(ctx, userID); err != nil {
		log.Warn("Achievement recompute failed after hatch", "user_id", userID, "error", err)
	}

	metrics.EggsHatched.WithLabelValues(source).Inc()
	log.Info("Egg hatched", "user_id", userID, "pokemon_id", id, "cp", cp)
	return &caught, nil
}
