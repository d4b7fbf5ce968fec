package encounter

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pokecode-app/pokecode/internal/domain"
	"github.com/pokecode-app/pokecode/internal/pokedex"
	"github.com/pokecode-app/pokecode/internal/power"
)

// seq returns a random source replaying the given draws in order
func seq(vals ...float64) func() float64 {
	i := 0
	return func() float64 {
		v := vals[i%len(vals)]
		i++
		return v
	}
}

func newTestService(pokemon *MockPokemonRepo, solves *MockSolveRepo, users *MockUserRepo, fetcher *MockFetcher, achievements *MockAchievements, rnd func() float64) *service {
	return &service{
		pokemon:      pokemon,
		solves:       solves,
		users:        users,
		fetcher:      fetcher,
		achievements: achievements,
		rnd:          rnd,
	}
}

func detailFor(id int) *domain.PokemonDetail {
	return &domain.PokemonDetail{
		ID:       id,
		Name:     "Testmon",
		ImageURL: "https://img.example/sprite.png",
		Types:    []string{"Psychic"},
		Stats: []domain.Stat{
			{Name: domain.StatHP, Value: 100},
			{Name: domain.StatAttack, Value: 100},
			{Name: domain.StatDefense, Value: 100},
			{Name: domain.StatSpecialAttack, Value: 100},
			{Name: domain.StatSpecialDefense, Value: 100},
			{Name: domain.StatSpeed, Value: 100},
		},
	}
}

func TestGenerateTagPathDrawsFromTagPool(t *testing.T) {
	fetcher := new(MockFetcher)
	var fetched int
	fetcher.On("FetchDetail", mock.Anything, mock.AnythingOfType("int")).
		Run(func(args mock.Arguments) { fetched = args.Int(1) }).
		Return(detailFor(0), nil)

	svc := newTestService(new(MockPokemonRepo), new(MockSolveRepo), new(MockUserRepo), fetcher, new(MockAchievements), seq(0.0))
	result := svc.Generate(context.Background(), 2, 1200, []string{"dp"})

	require.NotNil(t, result)
	assert.Contains(t, pokedex.PoolForTag("dp"), fetched)
	assert.False(t, result.Legendary, "tag-based generation must never be legendary")
}

func TestGenerateUnknownTagFallsBackToNormalPool(t *testing.T) {
	fetcher := new(MockFetcher)
	var fetched int
	fetcher.On("FetchDetail", mock.Anything, mock.AnythingOfType("int")).
		Run(func(args mock.Arguments) { fetched = args.Int(1) }).
		Return(detailFor(0), nil)

	svc := newTestService(new(MockPokemonRepo), new(MockSolveRepo), new(MockUserRepo), fetcher, new(MockAchievements), seq(0.5))
	result := svc.Generate(context.Background(), 1, 900, []string{"quantum-annealing"})

	require.NotNil(t, result)
	assert.Contains(t, pokedex.PoolForTag("unknown"), fetched)
}

func TestGenerateLegendaryRollBoostsScore(t *testing.T) {
	fetcher := new(MockFetcher)
	stats := detailFor(144).Stats
	fetcher.On("FetchDetail", mock.Anything, 144).Return(detailFor(144), nil)

	// First draw triggers the 1% legendary roll, second picks index 0
	svc := newTestService(new(MockPokemonRepo), new(MockSolveRepo), new(MockUserRepo), fetcher, new(MockAchievements), seq(0.005, 0.0))
	result := svc.Generate(context.Background(), 3, 2000, nil)

	require.NotNil(t, result)
	assert.Equal(t, 144, result.ID)
	assert.True(t, result.Legendary)

	base := power.ComputeScore(power.StatsFromList(stats), 2000)
	expected := int(math.Floor(float64(base) * LegendaryBoost))
	assert.Equal(t, expected, result.CP)
}

func TestGenerateRejectsBabyAndMythicIDs(t *testing.T) {
	fetcher := new(MockFetcher)
	var fetched int
	fetcher.On("FetchDetail", mock.Anything, mock.AnythingOfType("int")).
		Run(func(args mock.Arguments) { fetched = args.Int(1) }).
		Return(detailFor(0), nil)

	// Uniform draws land on Pichu (172, baby) then Mew (151, mythic) before
	// an ordinary id (25); each iteration burns one legendary-roll draw
	drawFor := func(id int) float64 { return (float64(id) - 0.5) / float64(pokedex.MaxCatalogID) }
	svc := newTestService(new(MockPokemonRepo), new(MockSolveRepo), new(MockUserRepo), fetcher, new(MockAchievements),
		seq(0.5, drawFor(172), 0.5, drawFor(151), 0.5, drawFor(25)))

	result := svc.Generate(context.Background(), 1, 1000, nil)
	require.NotNil(t, result)
	assert.Equal(t, 25, fetched)
}

func TestGeneratePlaceholderOnFetchFailure(t *testing.T) {
	fetcher := new(MockFetcher)
	fetcher.On("FetchDetail", mock.Anything, mock.AnythingOfType("int")).Return(nil, assert.AnError)

	svc := newTestService(new(MockPokemonRepo), new(MockSolveRepo), new(MockUserRepo), fetcher, new(MockAchievements), seq(0.0))
	result := svc.Generate(context.Background(), 2, 1500, []string{"dp"})

	require.NotNil(t, result)
	assert.True(t, strings.HasPrefix(result.Name, "Mystery Pokemon #"))
	assert.Equal(t, 2, result.CP)
	assert.Len(t, result.Types, 1)
	assert.Contains(t, pokedex.TypePalette, result.Types[0])
	assert.NotEmpty(t, result.Stats)
}

func TestHandleSolveAwardsRatingGold(t *testing.T) {
	pokemon := new(MockPokemonRepo)
	solves := new(MockSolveRepo)
	users := new(MockUserRepo)
	fetcher := new(MockFetcher)
	achievements := new(MockAchievements)

	solves.On("RecordSolve", mock.Anything, "user1", "1850A").Return(true, nil)
	users.On("AddGold", mock.Anything, "user1", 1700).Return(nil)
	fetcher.On("FetchDetail", mock.Anything, mock.AnythingOfType("int")).Return(detailFor(65), nil)
	pokemon.On("Enqueue", mock.Anything, "user1", mock.Anything).Return(nil)
	achievements.On("Recompute", mock.Anything, "user1").Return(nil)

	svc := newTestService(pokemon, solves, users, fetcher, achievements, seq(0.5))
	result, err := svc.HandleSolve(context.Background(), "user1", "1850A", 1700, []string{"dp"})
	require.NoError(t, err)

	assert.Equal(t, 1700, result.GoldEarned)
	assert.Equal(t, MaxTier, result.Tier, "rating 1700 caps at the top tier")
	require.NotNil(t, result.Pokemon)
	users.AssertExpectations(t)
	pokemon.AssertExpectations(t)
	achievements.AssertExpectations(t)
}

func TestHandleSolveDefaultsMissingRating(t *testing.T) {
	pokemon := new(MockPokemonRepo)
	solves := new(MockSolveRepo)
	users := new(MockUserRepo)
	fetcher := new(MockFetcher)
	achievements := new(MockAchievements)

	solves.On("RecordSolve", mock.Anything, "user1", "4A").Return(true, nil)
	users.On("AddGold", mock.Anything, "user1", domain.DefaultRating).Return(nil)
	fetcher.On("FetchDetail", mock.Anything, mock.AnythingOfType("int")).Return(detailFor(19), nil)
	pokemon.On("Enqueue", mock.Anything, "user1", mock.Anything).Return(nil)
	achievements.On("Recompute", mock.Anything, "user1").Return(nil)

	svc := newTestService(pokemon, solves, users, fetcher, achievements, seq(0.5))
	result, err := svc.HandleSolve(context.Background(), "user1", "4A", 0, nil)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultRating, result.GoldEarned)
	assert.Equal(t, 2, result.Tier)
}

func TestHandleSolveRejectsDuplicate(t *testing.T) {
	solves := new(MockSolveRepo)
	users := new(MockUserRepo)

	solves.On("RecordSolve", mock.Anything, "user1", "1850A").Return(false, nil)

	svc := newTestService(new(MockPokemonRepo), solves, users, new(MockFetcher), new(MockAchievements), seq(0.5))
	_, err := svc.HandleSolve(context.Background(), "user1", "1850A", 1700, nil)

	assert.ErrorIs(t, err, domain.ErrAlreadySolved)
	users.AssertNotCalled(t, "AddGold", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleSolveSurvivesRecomputeFailure(t *testing.T) {
	pokemon := new(MockPokemonRepo)
	solves := new(MockSolveRepo)
	users := new(MockUserRepo)
	fetcher := new(MockFetcher)
	achievements := new(MockAchievements)

	solves.On("RecordSolve", mock.Anything, "user1", "99Z").Return(true, nil)
	users.On("AddGold", mock.Anything, "user1", 900).Return(nil)
	fetcher.On("FetchDetail", mock.Anything, mock.AnythingOfType("int")).Return(detailFor(52), nil)
	pokemon.On("Enqueue", mock.Anything, "user1", mock.Anything).Return(nil)
	achievements.On("Recompute", mock.Anything, "user1").Return(assert.AnError)

	svc := newTestService(pokemon, solves, users, fetcher, achievements, seq(0.5))
	result, err := svc.HandleSolve(context.Background(), "user1", "99Z", 900, nil)

	require.NoError(t, err)
	assert.Equal(t, 900, result.GoldEarned)
}
