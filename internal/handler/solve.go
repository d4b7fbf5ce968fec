package handler

import (
	"net/http"

	"github.com/pokecode-app/pokecode/internal/encounter"
	"github.com/pokecode-app/pokecode/internal/logger"
)

type SolveHandler struct {
	service encounter.Service
}

func NewSolveHandler(service encounter.Service) *SolveHandler {
	return &SolveHandler{service: service}
}

// SolveRequest represents a confirmed problem solve
type SolveRequest struct {
	UserID    string   `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	ProblemID string   `json:"problem_id" validate:"required,max=200,excludesall=\x00\n\r\t"`
	Rating    int      `json:"rating" validate:"min=0,max=5000"`
	Tags      []string `json:"tags" validate:"max=20,dive,max=50"`
}

// HandleSolve records a solve and generates the encounter reward
// @Summary Record a problem solve
// @Description Awards gold, rolls a wild Pokémon scaled to the problem rating, and queues it for capture
// @Tags solve
// @Accept json
// @Produce json
// @Param request body SolveRequest true "Solve details"
// @Success 201 {object} encounter.SolveResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /solve [post]
func (h *SolveHandler) HandleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Record solve"); err != nil {
		return
	}

	result, err := h.service.HandleSolve(r.Context(), req.UserID, req.ProblemID, req.Rating, req.Tags)
	if err != nil {
		respondServiceError(w, r, ErrMsgHandleSolveFailed, err)
		return
	}

	logger.FromContext(r.Context()).Info("Solve processed",
		"user_id", req.UserID,
		"problem_id", req.ProblemID,
		"gold_earned", result.GoldEarned,
		"tier", result.Tier)

	respondJSON(w, http.StatusCreated, result)
}
