package domain

import "time"

// RewardType identifies what an achievement grants on claim
type RewardType string

const (
	RewardGold    RewardType = "gold"
	RewardBalls   RewardType = "balls"
	RewardPokemon RewardType = "pokemon"
)

// StarterOption is one entry of a choice-based pokemon reward
type StarterOption struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// AchievementReward describes the grant attached to an achievement.
// Depending on Type, either Amount (gold), BallID+Amount (balls) or
// Options (pokemon choice) carries the payload.
type AchievementReward struct {
	Type    RewardType      `json:"type"`
	BallID  string          `json:"ball_id,omitempty"`
	Amount  int             `json:"amount,omitempty"`
	Options []StarterOption `json:"options,omitempty"`
}

// Achievement tracks progress toward a fixed threshold.
// Completed is derived from Progress >= Total and is monotonic: once true,
// recomputation never flips it back. Claimed transitions false -> true
// exactly once via an explicit claim.
type Achievement struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Progress    int                `json:"progress"`
	Total       int                `json:"total"`
	Completed   bool               `json:"completed"`
	CompletedAt *time.Time         `json:"completed_at,omitempty"`
	Reward      *AchievementReward `json:"reward,omitempty"`
	Claimed     bool               `json:"claimed"`
}
