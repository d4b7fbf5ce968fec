package achievement

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/pokecode-app/pokecode/internal/domain"
)

// MockAchievementRepo implements repository.Achievement for testing
type MockAchievementRepo struct {
	mock.Mock
}

func (m *MockAchievementRepo) GetAchievements(ctx context.Context, userID string) ([]domain.Achievement, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Achievement), args.Error(1)
}

func (m *MockAchievementRepo) SaveProgress(ctx context.Context, userID, achievementID string, progress int, completed bool, completedAt *time.Time) error {
	args := m.Called(ctx, userID, achievementID, progress, completed, completedAt)
	return args.Error(0)
}

func (m *MockAchievementRepo) MarkClaimed(ctx context.Context, userID, achievementID string) error {
	args := m.Called(ctx, userID, achievementID)
	return args.Error(0)
}

// MockPokemonRepo implements repository.Pokemon for testing
type MockPokemonRepo struct {
	mock.Mock
}

func (m *MockPokemonRepo) Enqueue(ctx context.Context, userID string, pokemon domain.QueuedPokemon) error {
	args := m.Called(ctx, userID, pokemon)
	return args.Error(0)
}

func (m *MockPokemonRepo) PeekQueue(ctx context.Context, userID string) (*domain.QueuedPokemon, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QueuedPokemon), args.Error(1)
}

func (m *MockPokemonRepo) Dequeue(ctx context.Context, userID string) (*domain.QueuedPokemon, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QueuedPokemon), args.Error(1)
}

func (m *MockPokemonRepo) GetQueue(ctx context.Context, userID string) ([]domain.QueuedPokemon, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QueuedPokemon), args.Error(1)
}

func (m *MockPokemonRepo) AddToCollection(ctx context.Context, userID string, pokemon domain.CaughtPokemon) error {
	args := m.Called(ctx, userID, pokemon)
	return args.Error(0)
}

func (m *MockPokemonRepo) GetCollection(ctx context.Context, userID string) ([]domain.CaughtPokemon, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CaughtPokemon), args.Error(1)
}

// MockSolveRepo implements repository.Solve for testing
type MockSolveRepo struct {
	mock.Mock
}

func (m *MockSolveRepo) RecordSolve(ctx context.Context, userID, problemID string) (bool, error) {
	args := m.Called(ctx, userID, problemID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSolveRepo) CountSolved(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

// MockUserRepo implements repository.User for testing
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) UpsertUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) AddGold(ctx context.Context, userID string, delta int) error {
	args := m.Called(ctx, userID, delta)
	return args.Error(0)
}

// MockInventoryRepo implements repository.Inventory for testing
type MockInventoryRepo struct {
	mock.Mock
}

func (m *MockInventoryRepo) GetInventory(ctx context.Context, userID string) (*domain.Inventory, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inventory), args.Error(1)
}

func (m *MockInventoryRepo) AddItem(ctx context.Context, userID, itemID string, delta int) error {
	args := m.Called(ctx, userID, itemID, delta)
	return args.Error(0)
}

func (m *MockInventoryRepo) AddEgg(ctx context.Context, userID string, egg domain.Egg) error {
	args := m.Called(ctx, userID, egg)
	return args.Error(0)
}

func (m *MockInventoryRepo) RemoveEgg(ctx context.Context, userID, eggID string) error {
	args := m.Called(ctx, userID, eggID)
	return args.Error(0)
}

func (m *MockInventoryRepo) GetEggs(ctx context.Context, userID string) ([]domain.Egg, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Egg), args.Error(1)
}

// MockFetcher implements DetailFetcher for testing
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) FetchDetail(ctx context.Context, id int) (*domain.PokemonDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PokemonDetail), args.Error(1)
}
