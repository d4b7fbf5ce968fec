package handler

import (
	"net/http"

	"github.com/pokecode-app/pokecode/internal/domain"
	"github.com/pokecode-app/pokecode/internal/hatchery"
	"github.com/pokecode-app/pokecode/internal/logger"
)

type HatcheryHandler struct {
	service hatchery.Service
}

func NewHatcheryHandler(service hatchery.Service) *HatcheryHandler {
	return &HatcheryHandler{service: service}
}

// EggsResponse wraps a user's eggs with hatch readiness
type EggsResponse struct {
	Eggs []domain.Egg `json:"eggs"`
}

// HatchEggRequest represents a request to hatch a ready egg
type HatchEggRequest struct {
	UserID string `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	EggID  string `json:"egg_id" validate:"required,max=100"`
}

// UseIncubatorRequest represents a request to hatch an egg immediately.
// EggID may be empty, in which case the oldest egg is used.
type UseIncubatorRequest struct {
	UserID string `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	EggID  string `json:"egg_id" validate:"omitempty,max=100"`
}

// HandleGetEggs lists the user's eggs
// @Summary List eggs
// @Description Returns held eggs with whether each has finished its hatch window
// @Tags hatchery
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} EggsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /hatchery/eggs [get]
func (h *HatcheryHandler) HandleGetEggs(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	eggs, err := h.service.ListEggs(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetEggsFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, EggsResponse{Eggs: eggs})
}

// HandleHatchEgg hatches an egg whose hatch window has elapsed
// @Summary Hatch an egg
// @Description Hatches a ready egg into a baby Pokémon scored at the user's rating
// @Tags hatchery
// @Accept json
// @Produce json
// @Param request body HatchEggRequest true "Hatch details"
// @Success 200 {object} domain.CaughtPokemon
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /hatchery/hatch [post]
func (h *HatcheryHandler) HandleHatchEgg(w http.ResponseWriter, r *http.Request) {
	var req HatchEggRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Hatch egg"); err != nil {
		return
	}

	hatched, err := h.service.HatchEgg(r.Context(), req.UserID, req.EggID)
	if err != nil {
		respondServiceError(w, r, ErrMsgHatchEggFailed, err)
		return
	}

	logger.FromContext(r.Context()).Info("Egg hatched",
		"user_id", req.UserID,
		"egg_id", req.EggID,
		"pokemon_id", hatched.ID)

	respondJSON(w, http.StatusOK, hatched)
}

// HandleUseIncubator consumes an incubator to hatch an egg immediately
// @Summary Use an incubator
// @Description Consumes one incubator and hatches the named egg (or the oldest when egg_id is empty) regardless of its timer
// @Tags hatchery
// @Accept json
// @Produce json
// @Param request body UseIncubatorRequest true "Incubation details"
// @Success 200 {object} domain.CaughtPokemon
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /hatchery/incubate [post]
func (h *HatcheryHandler) HandleUseIncubator(w http.ResponseWriter, r *http.Request) {
	var req UseIncubatorRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Use incubator"); err != nil {
		return
	}

	hatched, err := h.service.UseIncubator(r.Context(), req.UserID, req.EggID)
	if err != nil {
		respondServiceError(w, r, ErrMsgUseIncubatorError, err)
		return
	}

	logger.FromContext(r.Context()).Info("Egg incubated",
		"user_id", req.UserID,
		"pokemon_id", hatched.ID)

	respondJSON(w, http.StatusOK, hatched)
}
