package repository

import "context"

// Solve defines the interface for solved-problem persistence
type Solve interface {
	// RecordSolve stores a solve and reports whether it was newly recorded.
	// A repeat solve of the same problem returns false with no error.
	RecordSolve(ctx context.Context, userID, problemID string) (bool, error)
	CountSolved(ctx context.Context, userID string) (int, error)
}
