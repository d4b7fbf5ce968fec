package handler

import (
	"net/http"

	"github.com/pokecode-app/pokecode/internal/domain"
	"github.com/pokecode-app/pokecode/internal/hatchery"
	"github.com/pokecode-app/pokecode/internal/repository"
)

type InventoryHandler struct {
	inventory repository.Inventory
	eggs      hatchery.Service
}

func NewInventoryHandler(inventory repository.Inventory, eggs hatchery.Service) *InventoryHandler {
	return &InventoryHandler{inventory: inventory, eggs: eggs}
}

// InventoryResponse combines item counts with egg state
type InventoryResponse struct {
	Items map[string]int `json:"items"`
	Eggs  []domain.Egg   `json:"eggs"`
}

// HandleGetInventory returns a user's items and eggs
// @Summary Get inventory
// @Description Returns held item quantities and any eggs with their hatch readiness
// @Tags inventory
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} InventoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /inventory [get]
func (h *InventoryHandler) HandleGetInventory(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	inv, err := h.inventory.GetInventory(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetInventoryFailed, err)
		return
	}

	// Egg readiness is computed against the hatch window, not stored
	eggs, err := h.eggs.ListEggs(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetEggsFailed, err)
		return
	}

	items := inv.Items
	if items == nil {
		items = map[string]int{}
	}

	respondJSON(w, http.StatusOK, InventoryResponse{Items: items, Eggs: eggs})
}
