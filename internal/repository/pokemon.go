package repository

import (
	"context"

	"github.com/pokecode-app/pokecode/internal/domain"
)

// Pokemon defines the interface for encounter queue and collection persistence
type Pokemon interface {
	Enqueue(ctx context.Context, userID string, pokemon domain.QueuedPokemon) error

	// PeekQueue returns the oldest queued encounter without removing it, or
	// domain.ErrQueueEmpty when nothing is queued.
	PeekQueue(ctx context.Context, userID string) (*domain.QueuedPokemon, error)

	// Dequeue removes and returns the oldest queued encounter, or
	// domain.ErrQueueEmpty when nothing is queued.
	Dequeue(ctx context.Context, userID string) (*domain.QueuedPokemon, error)

	GetQueue(ctx context.Context, userID string) ([]domain.QueuedPokemon, error)

	AddToCollection(ctx context.Context, userID string, pokemon domain.CaughtPokemon) error
	GetCollection(ctx context.Context, userID string) ([]domain.CaughtPokemon, error)
}
