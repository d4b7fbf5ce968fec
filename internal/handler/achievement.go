package handler

import (
	"net/http"

	"github.com/pokecode-app/pokecode/internal/achievement"
	"github.com/pokecode-app/pokecode/internal/domain"
	"github.com/pokecode-app/pokecode/internal/logger"
)

type AchievementHandler struct {
	service achievement.Service
}

func NewAchievementHandler(service achievement.Service) *AchievementHandler {
	return &AchievementHandler{service: service}
}

// AchievementsResponse wraps the full achievement list with live progress
type AchievementsResponse struct {
	Achievements []domain.Achievement `json:"achievements"`
}

// ClaimRewardRequest represents a claim on a completed achievement
type ClaimRewardRequest struct {
	UserID        string `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	AchievementID string `json:"achievement_id" validate:"required,max=100"`
	StarterID     int    `json:"starter_id" validate:"min=0,max=1025"`
}

// HandleGetAchievements lists achievements with up-to-date progress
// @Summary List achievements
// @Description Recomputes progress from current collection and solve counts, then returns every achievement
// @Tags achievements
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} AchievementsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /achievements [get]
func (h *AchievementHandler) HandleGetAchievements(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	achievements, err := h.service.List(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetAchievementsFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, AchievementsResponse{Achievements: achievements})
}

// HandleClaimReward grants the reward of a completed achievement
// @Summary Claim achievement reward
// @Description Grants gold, balls, or the starter Pokémon for a completed, unclaimed achievement. starter_id selects the starter; zero means random.
// @Tags achievements
// @Accept json
// @Produce json
// @Param request body ClaimRewardRequest true "Claim details"
// @Success 200 {object} achievement.ClaimResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /achievements/claim [post]
func (h *AchievementHandler) HandleClaimReward(w http.ResponseWriter, r *http.Request) {
	var req ClaimRewardRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Claim reward"); err != nil {
		return
	}

	result, err := h.service.Claim(r.Context(), req.UserID, req.AchievementID, req.StarterID)
	if err != nil {
		respondServiceError(w, r, ErrMsgClaimRewardFailed, err)
		return
	}

	logger.FromContext(r.Context()).Info("Achievement reward claimed",
		"user_id", req.UserID,
		"achievement", req.AchievementID,
		"reward_type", result.RewardType)

	respondJSON(w, http.StatusOK, result)
}
