package encounter

import (
	"context"
	"fmt"
	"math"

	"github.com/pokecode-app/pokecode/internal/domain"
	"github.com/pokecode-app/pokecode/internal/logger"
	"github.com/pokecode-app/pokecode/internal/metrics"
	"github.com/pokecode-app/pokecode/internal/pokedex"
	"github.com/pokecode-app/pokecode/internal/power"
	"github.com/pokecode-app/pokecode/internal/repository"
	"github.com/pokecode-app/pokecode/internal/utils"
)

// LegendaryChance is the probability of rolling a legendary encounter (1%)
const LegendaryChance = 0.01

// LegendaryBoost is the score multiplier applied to legendary encounters
const LegendaryBoost = 1.5

// maxRollAttempts bounds the rarity rejection loop. The ordinary pool vastly
// outnumbers the excluded ids, so hitting the bound is effectively impossible;
// it exists so a broken random source cannot spin forever.
const maxRollAttempts = 1000

// MaxTier caps the difficulty tier derived from a problem rating
const MaxTier = 3

const placeholderSprite = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/items/poke-ball.png"

// DetailFetcher defines the interface for looking up species data
type DetailFetcher interface {
	FetchDetail(ctx context.Context, id int) (*domain.PokemonDetail, error)
}

// AchievementService defines the interface for refreshing achievement progress
type AchievementService interface {
	Recompute(ctx context.Context, userID string) error
}

// SolveResult contains the outcome of a confirmed problem solve
type SolveResult struct {
	ProblemID  string                `json:"problem_id"`
	GoldEarned int                   `json:"gold_earned"`
	Tier       int                   `json:"tier"`
	Pokemon    *domain.QueuedPokemon `json:"pokemon"`
}

// Service defines the interface for encounter generation
type Service interface {
	Generate(ctx context.Context, tier int, difficulty float64, tags []string) *domain.QueuedPokemon
	HandleSolve(ctx context.Context, userID, problemID string, rating int, tags []string) (*SolveResult, error)
	GetQueue(ctx context.Context, userID string) ([]domain.QueuedPokemon, error)
	GetCollection(ctx context.Context, userID string) ([]domain.CaughtPokemon, error)
}

type service struct {
	pokemon      repository.Pokemon
	solves       repository.Solve
	users        repository.User
	fetcher      DetailFetcher
	achievements AchievementService
	rnd          func() float64 // For rolling RNG
}

// NewService creates a new encounter service
func NewService(pokemon repository.Pokemon, solves repository.Solve, users repository.User, fetcher DetailFetcher, achievements AchievementService) Service {
	return &service{
		pokemon:      pokemon,
		solves:       solves,
		users:        users,
		fetcher:      fetcher,
		achievements: achievements,
		rnd:          utils.RandomFloat,
	}
}

// Generate produces one encounter for a solved problem. Tagged problems draw
// from the matching type pools; untagged problems use the rarity roll. A
// failed detail fetch degrades to a placeholder, never an error.
func (s *service) Generate(ctx context.Context, tier int, difficulty float64, tags []string) *domain.QueuedPokemon {
	log := logger.FromContext(ctx)

	id := s.pickID(tags)
	legendary := pokedex.IsLegendary(id)

	detail, err := s.fetcher.FetchDetail(ctx, id)
	if err != nil {
		log.Warn("Detail fetch failed, degrading to placeholder", "pokemon_id", id, "error", err)
		metrics.DetailFetchFallbacks.Inc()
		return s.placeholder(id, tier)
	}

	cp := power.ComputeScore(power.StatsFromList(detail.Stats), difficulty)
	rarity := metrics.RarityOrdinary
	if legendary {
		cp = int(math.Floor(float64(cp) * LegendaryBoost))
		rarity = metrics.RarityLegendary
	}
	metrics.RewardsGenerated.WithLabelValues(rarity).Inc()

	return &domain.QueuedPokemon{
		ID:        detail.ID,
		Name:      detail.Name,
		ImageURL:  detail.ImageURL,
		Types:     detail.Types,
		Stats:     detail.Stats,
		CP:        cp,
		Legendary: legendary,
	}
}

// pickID chooses a catalog id. The tag path never yields a legendary because
// the type pools contain only ordinary ids.
func (s *service) pickID(tags []string) int {
	if len(tags) > 0 {
		tag := tags[utils.RandomIndex(s.rnd(), len(tags))]
		pool := pokedex.PoolForTag(tag)
		return pool[utils.RandomIndex(s.rnd(), len(pool))]
	}

	for i := 0; i < maxRollAttempts; i++ {
		if s.rnd() < LegendaryChance {
			pool := pokedex.LegendaryIDs()
			return pool[utils.RandomIndex(s.rnd(), len(pool))]
		}
		id := 1 + utils.RandomIndex(s.rnd(), pokedex.MaxCatalogID)
		if pokedex.IsBaby(id) || pokedex.IsMythic(id) {
			continue
		}
		return id
	}
	return pokedex.FallbackID
}

func (s *service) placeholder(id, tier int) *domain.QueuedPokemon {
	return &domain.QueuedPokemon{
		ID:       id,
		Name:     fmt.Sprintf("Mystery Pokemon #%d", id),
		ImageURL: placeholderSprite,
		Types:    []string{pokedex.TypePalette[utils.RandomIndex(s.rnd(), len(pokedex.TypePalette))]},
		Stats: []domain.Stat{
			{Name: domain.StatHP, Value: 50 * tier},
			{Name: domain.StatAttack, Value: 45 * tier},
			{Name: domain.StatDefense, Value: 45 * tier},
		},
		CP: tier,
	}
}

// HandleSolve records a confirmed solve, awards gold equal to the problem
// rating, and queues a freshly generated encounter.
func (s *service) HandleSolve(ctx context.Context, userID, problemID string, rating int, tags []string) (*SolveResult, error) {
	log := logger.FromContext(ctx)

	// 1. Record the solve; repeats earn nothing
	newlySolved, err := s.solves.RecordSolve(ctx, userID, problemID)
	if err != nil {
		return nil, fmt.Errorf("failed to record solve: %w", err)
	}
	if !newlySolved {
		return nil, domain.ErrAlreadySolved
	}

	if rating <= 0 {
		rating = domain.DefaultRating
	}

	// 2. Award gold
	if err := s.users.AddGold(ctx, userID, rating); err != nil {
		return nil, fmt.Errorf("failed to award gold: %w", err)
	}

	// 3. Generate and queue the encounter
	tier := rating/500 + 1
	if tier > MaxTier {
		tier = MaxTier
	}
	pokemon := s.Generate(ctx, tier, float64(rating), tags)
	if err := s.pokemon.Enqueue(ctx, userID, *pokemon); err != nil {
		return nil, fmt.Errorf("failed to enqueue encounter: %w", err)
	}

	// 4. Refresh achievement progress; the solve already succeeded
	if err := s.achievements.Recompute(ctx, userID); err != nil {
		log.Warn("Achievement recompute failed after solve", "user_id", userID, "error", err)
	}

	metrics.SolvesProcessed.Inc()
	metrics.GoldEarned.Add(float64(rating))

	log.Info("Solve processed",
		"user_id", userID,
		"problem_id", problemID,
		"gold_earned", rating,
		"pokemon_id", pokemon.ID,
		"legendary", pokemon.Legendary)

	return &SolveResult{
		ProblemID:  problemID,
		GoldEarned: rating,
		Tier:       tier,
		Pokemon:    pokemon,
	}, nil
}

func (s *service) GetQueue(ctx context.Context, userID string) ([]domain.QueuedPokemon, error) {
	return s.pokemon.GetQueue(ctx, userID)
}

func (s *service) GetCollection(ctx context.Context, userID string) ([]domain.CaughtPokemon, error) {
	return s.pokemon.GetCollection(ctx, userID)
}
