package repository

import (
	"context"

	"github.com/pokecode-app/pokecode/internal/domain"
)

// Inventory defines the interface for item and egg persistence
type Inventory interface {
	GetInventory(ctx context.Context, userID string) (*domain.Inventory, error)

	// AddItem applies a single atomic quantity adjustment (delta may be
	// negative). Implementations must reject decrements that would drop the
	// quantity below zero with domain.ErrInsufficientQuantity.
	AddItem(ctx context.Context, userID, itemID string, delta int) error

	AddEgg(ctx context.Context, userID string, egg domain.Egg) error
	RemoveEgg(ctx context.Context, userID, eggID string) error
	GetEggs(ctx context.Context, userID string) ([]domain.Egg, error)
}
