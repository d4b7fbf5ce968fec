package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SolveRepository implements the solved-problem repository for PostgreSQL
type SolveRepository struct {
	db *pgxpool.Pool
}

// NewSolveRepository creates a new SolveRepository
func NewSolveRepository(db *pgxpool.Pool) *SolveRepository {
	return &SolveRepository{db: db}
}

// RecordSolve stores a solve and reports whether it was newly recorded
func (r *SolveRepository) RecordSolve(ctx context.Context, userID, problemID string) (bool, error) {
	query := `
		INSERT INTO solves (user_id, problem_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, problem_id) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query, userID, problemID)
	if err != nil {
		return false, fmt.Errorf("failed to record solve: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CountSolved returns the number of distinct solved problems
func (r *SolveRepository) CountSolved(ctx context.Context, userID string) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM solves WHERE user_id = $1", userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count solves: %w", err)
	}
	return count, nil
}
