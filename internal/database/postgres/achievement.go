package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pokecode-app/pokecode/internal/domain"
)

// AchievementRepository implements the achievement repository for PostgreSQL
type AchievementRepository struct {
	db *pgxpool.Pool
}

// NewAchievementRepository creates a new AchievementRepository
func NewAchievementRepository(db *pgxpool.Pool) *AchievementRepository {
	return &AchievementRepository{db: db}
}

// GetAchievements returns the stored state rows for a user. Achievements
// never touched by recompute simply have no row.
func (r *AchievementRepository) GetAchievements(ctx context.Context, userID string) ([]domain.Achievement, error) {
	query := `
		SELECT achievement_id, progress, completed, completed_at, claimed
		FROM achievements
		WHERE user_id = $1
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get achievements: %w", err)
	}
	defer rows.Close()

	var achievements []domain.Achievement
	for rows.Next() {
		var a domain.Achievement
		if err := rows.Scan(&a.ID, &a.Progress, &a.Completed, &a.CompletedAt, &a.Claimed); err != nil {
			return nil, fmt.Errorf("failed to scan achievement row: %w", err)
		}
		achievements = append(achievements, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read achievement rows: %w", err)
	}
	return achievements, nil
}

// SaveProgress upserts derived progress. Claimed is deliberately outside
// this statement's reach.
func (r *AchievementRepository) SaveProgress(ctx context.Context, userID, achievementID string, progress int, completed bool, completedAt *time.Time) error {
	query := `
		INSERT INTO achievements (user_id, achievement_id, progress, completed, completed_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, achievement_id) DO UPDATE
		SET progress = EXCLUDED.progress,
		    completed = EXCLUDED.completed,
		    completed_at = EXCLUDED.completed_at,
		    updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, userID, achievementID, progress, completed, completedAt); err != nil {
		return fmt.Errorf("failed to save achievement progress: %w", err)
	}
	return nil
}

// MarkClaimed flips claimed exactly once
func (r *AchievementRepository) MarkClaimed(ctx context.Context, userID, achievementID string) error {
	query := `
		UPDATE achievements
		SET claimed = TRUE, updated_at = NOW()
		WHERE user_id = $1 AND achievement_id = $2 AND claimed = FALSE
	`
	tag, err := r.db.Exec(ctx, query, userID, achievementID)
	if err != nil {
		return fmt.Errorf("failed to mark achievement claimed: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var claimed bool
	err = r.db.QueryRow(ctx, "SELECT claimed FROM achievements WHERE user_id = $1 AND achievement_id = $2", userID, achievementID).Scan(&claimed)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrAchievementNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check achievement: %w", err)
	}
	return domain.ErrAlreadyClaimed
}
