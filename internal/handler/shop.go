package handler

import (
	"net/http"

	"github.com/pokecode-app/pokecode/internal/logger"
	"github.com/pokecode-app/pokecode/internal/shop"
)

type ShopHandler struct {
	service shop.Service
}

func NewShopHandler(service shop.Service) *ShopHandler {
	return &ShopHandler{service: service}
}

// ShopResponse wraps the purchasable catalog
type ShopResponse struct {
	Items []shop.Item `json:"items"`
}

// PurchaseRequest represents an item purchase
type PurchaseRequest struct {
	UserID string `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	ItemID string `json:"item_id" validate:"required,itemid"`
}

// HandleGetItems lists the shop catalog
// @Summary List shop items
// @Description Returns every purchasable item with prices and catch rates
// @Tags shop
// @Produce json
// @Success 200 {object} ShopResponse
// @Router /shop [get]
func (h *ShopHandler) HandleGetItems(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, ShopResponse{Items: h.service.ListItems()})
}

// HandlePurchase buys an item with gold
// @Summary Purchase item
// @Description Deducts gold and adds the item to the inventory; eggs start their hatch timer on purchase
// @Tags shop
// @Accept json
// @Produce json
// @Param request body PurchaseRequest true "Purchase details"
// @Success 200 {object} shop.PurchaseResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /shop/purchase [post]
func (h *ShopHandler) HandlePurchase(w http.ResponseWriter, r *http.Request) {
	var req PurchaseRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Purchase item"); err != nil {
		return
	}

	result, err := h.service.Purchase(r.Context(), req.UserID, req.ItemID)
	if err != nil {
		respondServiceError(w, r, ErrMsgPurchaseFailed, err)
		return
	}

	logger.FromContext(r.Context()).Info("Item purchased",
		"user_id", req.UserID,
		"item", req.ItemID,
		"gold_spent", result.GoldSpent)

	respondJSON(w, http.StatusOK, result)
}
