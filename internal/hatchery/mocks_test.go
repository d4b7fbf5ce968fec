package hatchery

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pokecode-app/pokecode/internal/domain"
)

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

// MockAchievements implements AchievementService for testing
type MockAchievements struct {
	mock.Mock
}

func (m *MockAchievements) Recompute(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
