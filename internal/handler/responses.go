package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pokecode-app/pokecode/internal/domain"
	"github.com/pokecode-app/pokecode/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Encode through a pooled buffer to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped user response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	logger.FromContext(r.Context()).Error("Operation failed", "operation", opName, "error", err)
	statusCode, userMsg := mapServiceErrorToUserMessage(err)
	respondError(w, statusCode, userMsg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgAuthFailedError     = "Authentication failed. Please check your API key."

	ErrMsgUserNotFoundError       = "User not found"
	ErrMsgItemNotFoundError       = "Item not found"
	ErrMsgInsufficientItemsError  = "You don't have any of those"
	ErrMsgInventoryFullError      = "You can only hold one of those at a time"
	ErrMsgNotEnoughGoldError      = "Not enough gold"
	ErrMsgQueueEmptyError         = "No Pokémon waiting to be caught"
	ErrMsgAlreadySolvedError      = "Problem already solved"
	ErrMsgAchievementNotFoundErr  = "Achievement not found"
	ErrMsgNotCompletedError       = "Achievement not completed yet"
	ErrMsgAlreadyClaimedError     = "Reward already claimed"
	ErrMsgNoRewardError           = "This achievement has no reward"
	ErrMsgInvalidChoiceError      = "That starter is not on offer"
	ErrMsgEggNotFoundError        = "Egg not found"
	ErrMsgEggNotReadyError        = "This egg needs more time before it can hatch"
	ErrMsgNoIncubatorError        = "You don't have an incubator"
	ErrMsgNoEggError              = "You don't have an egg"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusBadRequest, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusBadRequest, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrInsufficientQuantity):
		return http.StatusBadRequest, ErrMsgInsufficientItemsError
	case errors.Is(err, domain.ErrInventoryFull):
		return http.StatusBadRequest, ErrMsgInventoryFullError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughGoldError
	case errors.Is(err, domain.ErrQueueEmpty):
		return http.StatusBadRequest, ErrMsgQueueEmptyError
	case errors.Is(err, domain.ErrAlreadySolved):
		return http.StatusConflict, ErrMsgAlreadySolvedError
	case errors.Is(err, domain.ErrAchievementNotFound):
		return http.StatusBadRequest, ErrMsgAchievementNotFoundErr
	case errors.Is(err, domain.ErrNotCompleted):
		return http.StatusBadRequest, ErrMsgNotCompletedError
	case errors.Is(err, domain.ErrAlreadyClaimed):
		return http.StatusConflict, ErrMsgAlreadyClaimedError
	case errors.Is(err, domain.ErrNoReward):
		return http.StatusBadRequest, ErrMsgNoRewardError
	case errors.Is(err, domain.ErrInvalidChoice):
		return http.StatusBadRequest, ErrMsgInvalidChoiceError
	case errors.Is(err, domain.ErrEggNotFound):
		return http.StatusBadRequest, ErrMsgEggNotFoundError
	case errors.Is(err, domain.ErrEggNotReady):
		return http.StatusBadRequest, ErrMsgEggNotReadyError
	case errors.Is(err, domain.ErrNoIncubator):
		return http.StatusBadRequest, ErrMsgNoIncubatorError
	case errors.Is(err, domain.ErrNoEgg):
		return http.StatusBadRequest, ErrMsgNoEggError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}
