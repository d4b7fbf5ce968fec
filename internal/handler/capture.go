package handler

import (
	"net/http"

	"github.com/pokecode-app/pokecode/internal/capture"
	"github.com/pokecode-app/pokecode/internal/logger"
)

type CaptureHandler struct {
	service capture.Service
}

func NewCaptureHandler(service capture.Service) *CaptureHandler {
	return &CaptureHandler{service: service}
}

// ThrowBallRequest represents a capture attempt on the front of the queue
type ThrowBallRequest struct {
	UserID string `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	BallID string `json:"ball_id" validate:"required,itemid"`
}

// HandleThrowBall resolves a capture attempt against the queued encounter
// @Summary Throw a ball
// @Description Consumes one ball and resolves the catch against the Pokémon at the front of the queue
// @Tags capture
// @Accept json
// @Produce json
// @Param request body ThrowBallRequest true "Capture attempt"
// @Success 200 {object} domain.CaptureResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /capture [post]
func (h *CaptureHandler) HandleThrowBall(w http.ResponseWriter, r *http.Request) {
	var req ThrowBallRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Throw ball"); err != nil {
		return
	}

	result, err := h.service.Resolve(r.Context(), req.UserID, req.BallID)
	if err != nil {
		respondServiceError(w, r, ErrMsgThrowBallFailed, err)
		return
	}

	logger.FromContext(r.Context()).Info("Capture resolved",
		"user_id", req.UserID,
		"ball", req.BallID,
		"success", result.Success,
		"fled", result.Fled)

	respondJSON(w, http.StatusOK, result)
}
