package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pokecode-app/pokecode/internal/achievement"
	"github.com/pokecode-app/pokecode/internal/domain"
	"github.com/pokecode-app/pokecode/internal/encounter"
	"github.com/pokecode-app/pokecode/internal/shop"
)

type MockEncounterService struct {
	mock.Mock
}

func (m *MockEncounterService) Generate(ctx context.Context, tier int, difficulty float64, tags []string) *domain.QueuedPokemon {
	args := m.Called(ctx, tier, difficulty, tags)
	return args.Get(0).(*domain.QueuedPokemon)
}

func (m *MockEncounterService) HandleSolve(ctx context.Context, userID, problemID string, rating int, tags []string) (*encounter.SolveResult, error) {
	args := m.Called(ctx, userID, problemID, rating, tags)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*encounter.SolveResult), args.Error(1)
}

func (m *MockEncounterService) GetQueue(ctx context.Context, userID string) ([]domain.QueuedPokemon, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QueuedPokemon), args.Error(1)
}

func (m *MockEncounterService) GetCollection(ctx context.Context, userID string) ([]domain.CaughtPokemon, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CaughtPokemon), args.Error(1)
}

type MockCaptureService struct {
	mock.Mock
}

func (m *MockCaptureService) Resolve(ctx context.Context, userID, ballID string) (*domain.CaptureResult, error) {
	args := m.Called(ctx, userID, ballID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CaptureResult), args.Error(1)
}

type MockShopService struct {
	mock.Mock
}

func (m *MockShopService) ListItems() []shop.Item {
	args := m.Called()
	return args.Get(0).([]shop.Item)
}

func (m *MockShopService) Purchase(ctx context.Context, userID, itemID string) (*shop.PurchaseResult, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.PurchaseResult), args.Error(1)
}

type MockAchievementService struct {
	mock.Mock
}

func (m *MockAchievementService) List(ctx context.Context, userID string) ([]domain.Achievement, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Achievement), args.Error(1)
}

func (m *MockAchievementService) Recompute(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockAchievementService) Claim(ctx context.Context, userID, achievementID string, starterID int) (*achievement.ClaimResult, error) {
	args := m.Called(ctx, userID, achievementID, starterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*achievement.ClaimResult), args.Error(1)
}

type MockHatcheryService struct {
	mock.Mock
}

func (m *MockHatcheryService) ListEggs(ctx context.Context, userID string) ([]domain.Egg, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Egg), args.Error(1)
}

func (m *MockHatcheryService) HatchEgg(ctx context.Context, userID, eggID string) (*domain.CaughtPokemon, error) {
	args := m.Called(ctx, userID, eggID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CaughtPokemon), args.Error(1)
}

func (m *MockHatcheryService) UseIncubator(ctx context.Context, userID, eggID string) (*domain.CaughtPokemon, error) {
	args := m.Called(ctx, userID, eggID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CaughtPokemon), args.Error(1)
}
