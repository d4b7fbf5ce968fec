package repository

import (
	"context"
	"time"

	"github.com/pokecode-app/pokecode/internal/domain"
)

// Achievement defines the interface for achievement state persistence
type Achievement interface {
	// GetAchievements returns the stored state for every tracked
	// achievement. Missing rows are returned zero-valued so tracking can
	// start lazily.
	GetAchievements(ctx context.Context, userID string) ([]domain.Achievement, error)

	SaveProgress(ctx context.Context, userID, achievementID string, progress int, completed bool, completedAt *time.Time) error
	MarkClaimed(ctx context.Context, userID, achievementID string) error
}
