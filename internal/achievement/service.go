package achievement

import (
	"context"
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

// DetailFetcher defines the interface for looking up species data
type DetailFetcher interface {
	FetchDetail(ctx context.Context, id int) (*domain.PokemonDetail, error)
}

// ClaimResult describes what a successful claim granted
type ClaimResult struct {
	AchievementID string                `json:"achievement_id"`
	RewardType    domain.RewardType     `json:"reward_type"`
	ItemID        string                `json:"item_id,omitempty"`
	Amount        int                   `json:"amount,omitempty"`
	Pokemon       *domain.CaughtPokemon `json:"pokemon,omitempty"`
}

// Service defines the interface for achievement tracking
type Service interface {
	List(ctx context.Context, userID string) ([]domain.Achievement, error)
	Recompute(ctx context.Context, userID string) error
	Claim(ctx context.Context, userID, achievementID string, starterID int) (*ClaimResult, error)
}

type service struct {
	repo      repository.Achievement
	pokemon   repository.Pokemon
	solves    repository.Solve
	users     repository.User
	inventory repository.Inventory
	fetcher   DetailFetcher
	rnd       func() float64
	now       func() time.Time
}

// NewService creates a new achievement service
func NewService(repo repository.Achievement, pokemon repository.Pokemon, solves repository.Solve, users repository.User, inventory repository.Inventory, fetcher DetailFetcher) Service {
	return &service{
		repo:      repo,
		pokemon:   pokemon,
		solves:    solves,
		users:     users,
		inventory: inventory,
		fetcher:   fetcher,
		rnd:       utils.RandomFloat,
		now:       time.Now,
	}
}

// List returns every achievement definition merged with the user's stored state
func (s *service) List(ctx context.Context, userID string) ([]domain.Achievement, error) {
	stored, err := s.repo.GetAchievements(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get achievements: %w", err)
	}

	byID := make(map[string]domain.Achievement, len(stored))
	for _, a := range stored {
		byID[a.ID] = a
	}

	result := make([]domain.Achievement, 0, len(Definitions))
	for _, def := range Definitions {
		reward := def.Reward
		a := domain.Achievement{
			ID:          def.ID,
			Title:       def.Title,
			Description: def.Description,
			Total:       def.Total,
			Reward:      &reward,
		}
		if state, ok := byID[def.ID]; ok {
			a.Progress = state.Progress
			a.Completed = state.Completed
			a.CompletedAt = state.CompletedAt
			a.Claimed = state.Claimed
		}
		result = append(result, a)
	}
	return result, nil
}

// Recompute rederives every achievement's progress from the authoritative
// counters. Safe to call after any progress-affecting operation; a counter
// that cannot be read leaves its achievements untouched.
func (s *service) Recompute(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	// 1. Gather counters, tolerating individually missing sources
	measures := make(map[string]int)

	collection, err := s.pokemon.GetCollection(ctx, userID)
	if err != nil {
		log.Warn("Skipping collection achievements", "user_id", userID, "error", err)
	} else {
		species := make(map[int]struct{}, len(collection))
		legendary, babies := 0, 0
		for _, p := range collection {
			species[p.ID] = struct{}{}
			if pokedex.IsLegendary(p.ID) {
				legendary++
			}
			if pokedex.IsBaby(p.ID) {
				babies++
			}
		}
		measures[IDCollector] = len(collection)
		measures[IDMasterCollector] = len(species)
		measures[IDLegendaryHunter] = legendary
		measures[IDEggHatcher] = babies
	}

	solved, err := s.solves.CountSolved(ctx, userID)
	if err != nil {
		log.Warn("Skipping solve achievements", "user_id", userID, "error", err)
	} else {
		measures[IDProblemSolver] = solved
		measures[IDCodingMaster] = solved
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		log.Warn("Skipping gold achievements", "user_id", userID, "error", err)
	} else {
		measures[IDRichTrainer] = user.Gold
	}

	// 2. Load stored state once
	stored, err := s.repo.GetAchievements(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get achievements: %w", err)
	}
	byID := make(map[string]domain.Achievement, len(stored))
	for _, a := range stored {
		byID[a.ID] = a
	}

	// 3. Persist only what actually changed; completion never reverts
	for _, def := range Definitions {
		progress, ok := measures[def.ID]
		if !ok {
			continue
		}

		prev := byID[def.ID]
		completed := prev.Completed || progress >= def.Total
		completedAt := prev.CompletedAt
		if completed && completedAt == nil {
			t := s.now()
			completedAt = &t
		}

		if progress == prev.Progress && completed == prev.Completed {
			continue
		}

		if err := s.repo.SaveProgress(ctx, userID, def.ID, progress, completed, completedAt); err != nil {
			return fmt.Errorf("failed to save achievement progress: %w", err)
		}
		if completed && !prev.Completed {
			log.Info("Achievement completed", "user_id", userID, "achievement", def.ID)
		}
	}

	return nil
}

// Claim grants a completed achievement's reward and marks it claimed.
// For starter rewards, starterID selects one of the options; 0 picks
// uniformly at random.
func (s *service) Claim(ctx context.Context, userID, achievementID string, starterID int) (*ClaimResult, error) {
	log := logger.FromContext(ctx)

	// 1. Validate the achievement and its state
	def, ok := findDefinition(achievementID)
	if !ok {
		return nil, domain.ErrAchievementNotFound
	}

	stored, err := s.repo.GetAchievements(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get achievements: %w", err)
	}
	var state domain.Achievement
	for _, a := range stored {
		if a.ID == achievementID {
			state = a
			break
		}
	}
	if !state.Completed {
		return nil, domain.ErrNotCompleted
	}
	if state.Claimed {
		return nil, domain.ErrAlreadyClaimed
	}

	// 2. Grant the reward
	result := &ClaimResult{AchievementID: achievementID, RewardType: def.Reward.Type}
	switch def.Reward.Type {
	case domain.RewardGold:
		if err := s.users.AddGold(ctx, userID, def.Reward.Amount); err != nil {
			return nil, fmt.Errorf("failed to grant gold: %w", err)
		}
		result.Amount = def.Reward.Amount

	case domain.RewardBalls:
		if err := s.inventory.AddItem(ctx, userID, def.Reward.BallID, def.Reward.Amount); err != nil {
			return nil, fmt.Errorf("failed to grant balls: %w", err)
		}
		result.ItemID = def.Reward.BallID
		result.Amount = def.Reward.Amount

	case domain.RewardPokemon:
		caught, err := s.grantStarter(ctx, userID, def.Reward.Options, starterID)
		if err != nil {
			return nil, err
		}
		result.Pokemon = caught

	default:
		return nil, domain.ErrNoReward
	}

	// 3. Mark claimed
	if err := s.repo.MarkClaimed(ctx, userID, achievementID); err != nil {
		return nil, fmt.Errorf("failed to mark achievement claimed: %w", err)
	}

	metrics.AchievementsClaimed.WithLabelValues(achievementID).Inc()
	log.Info("Achievement claimed", "user_id", userID, "achievement", achievementID, "reward_type", def.Reward.Type)
	return result, nil
}

func (s *service) grantStarter(ctx context.Context, userID string, options []domain.StarterOption, starterID int) (*domain.CaughtPokemon, error) {
	var choice domain.StarterOption
	if starterID == 0 {
		choice = options[utils.RandomIndex(s.rnd(), len(options))]
	} else {
		found := false
		for _, opt := range options {
			if opt.ID == starterID {
				choice = opt
				found = true
				break
			}
		}
		if !found {
			return nil, domain.ErrInvalidChoice
		}
	}

	detail, err := s.fetcher.FetchDetail(ctx, choice.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch starter detail: %w", err)
	}

	caught := domain.CaughtPokemon{
		QueuedPokemon: domain.QueuedPokemon{
			ID:       choice.ID,
			Name:     choice.Name,
			ImageURL: choice.ImageURL,
			Types:    detail.Types,
			Stats:    detail.Stats,
			CP:       StarterCP,
		},
		UID:      ksuid.New().String(),
		CaughtAt: s.now().UnixMilli(),
	}
	if err := s.pokemon.AddToCollection(ctx, userID, caught); err != nil {
		return nil, fmt.Errorf("failed to add starter to collection: %w", err)
	}
	return &caught, nil
}
