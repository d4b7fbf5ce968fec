package shop

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pokecode-app/pokecode/internal/domain"
)

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
