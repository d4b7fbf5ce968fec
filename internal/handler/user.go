package handler

import (
	"net/http"

	"github.com/pokecode-app/pokecode/internal/domain"
	"github.com/pokecode-app/pokecode/internal/logger"
	"github.com/pokecode-app/pokecode/internal/repository"
)

type UserHandler struct {
	users repository.User
}

func NewUserHandler(users repository.User) *UserHandler {
	return &UserHandler{users: users}
}

// RegisterUserRequest represents the request to register or update a user
type RegisterUserRequest struct {
	UserID string `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Email  string `json:"email" validate:"omitempty,email,max=200"`
	Handle string `json:"handle" validate:"omitempty,max=100,excludesall=\x00\n\r\t"`
	Rating int    `json:"rating" validate:"min=0,max=5000"`
}

// HandleRegisterUser creates a user profile or refreshes an existing one
// @Summary Register or update a user
// @Description Creates the user on first call and grants the starter Poke Balls; subsequent calls refresh handle and rating
// @Tags user
// @Accept json
// @Produce json
// @Param request body RegisterUserRequest true "User details"
// @Success 200 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /user/register [post]
func (h *UserHandler) HandleRegisterUser(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Register user"); err != nil {
		return
	}

	user := &domain.User{
		ID:     req.UserID,
		Email:  req.Email,
		Handle: req.Handle,
		Rating: req.Rating,
	}
	if err := h.users.UpsertUser(r.Context(), user); err != nil {
		respondServiceError(w, r, ErrMsgRegisterUserFailed, err)
		return
	}

	stored, err := h.users.GetUserByID(r.Context(), req.UserID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetUserFailed, err)
		return
	}

	logger.FromContext(r.Context()).Info("User registered", "user_id", stored.ID, "rating", stored.Rating)

	respondJSON(w, http.StatusOK, stored)
}

// HandleGetUser returns a user profile
// @Summary Get user
// @Description Returns the stored profile including gold balance and rating
// @Tags user
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /user [get]
func (h *UserHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	user, err := h.users.GetUserByID(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetUserFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}
