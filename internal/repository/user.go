package repository

import (
	"context"

	"github.com/pokecode-app/pokecode/internal/domain"
)

// User defines the interface for user persistence
type User interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	UpsertUser(ctx context.Context, user *domain.User) error

	// AddGold applies a single atomic increment (delta may be negative).
	// Implementations must reject decrements below zero with
	// domain.ErrInsufficientFunds.
	AddGold(ctx context.Context, userID string, delta int) error
}
