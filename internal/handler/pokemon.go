package handler

import (
	"net/http"

	"github.com/pokecode-app/pokecode/internal/domain"
	"github.com/pokecode-app/pokecode/internal/encounter"
)

type PokemonHandler struct {
	service encounter.Service
}

func NewPokemonHandler(service encounter.Service) *PokemonHandler {
	return &PokemonHandler{service: service}
}

// QueueResponse wraps the pending encounter queue
type QueueResponse struct {
	Queue []domain.QueuedPokemon `json:"queue"`
}

// CollectionResponse wraps a user's caught Pokémon
type CollectionResponse struct {
	Collection []domain.CaughtPokemon `json:"collection"`
}

// HandleGetQueue returns the user's pending encounters in capture order
// @Summary Get encounter queue
// @Description Returns uncaught reward Pokémon in the order they will be presented
// @Tags pokemon
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} QueueResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /pokemon/queue [get]
func (h *PokemonHandler) HandleGetQueue(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	queue, err := h.service.GetQueue(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetQueueFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, QueueResponse{Queue: queue})
}

// HandleGetCollection returns every Pokémon the user has caught
// @Summary Get collection
// @Description Returns the user's caught Pokémon, most recent first
// @Tags pokemon
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} CollectionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /pokemon/collection [get]
func (h *PokemonHandler) HandleGetCollection(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	collection, err := h.service.GetCollection(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetCollectionFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, CollectionResponse{Collection: collection})
}
