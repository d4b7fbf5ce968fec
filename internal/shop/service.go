package shop

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/ksuid"

	"github.com/pokecode-app/pokecode/internal/domain"
	"github.com/pokecode-app/pokecode/internal/logger"
	"github.com/pokecode-app/pokecode/internal/metrics"
	"github.com/pokecode-app/pokecode/internal/repository"
)

// SingleHoldItems may be owned at most one at a time
var SingleHoldItems = map[string]struct{}{
	domain.ItemEgg:       {},
	domain.ItemIncubator: {},
}

// PurchaseResult contains the outcome of a completed purchase
type PurchaseResult struct {
	Item      Item        `json:"item"`
	GoldSpent int         `json:"gold_spent"`
	Egg       *domain.Egg `json:"egg,omitempty"`
}

// Service defines the interface for shop operations
type Service interface {
	ListItems() []Item
	Purchase(ctx context.Context, userID, itemID string) (*PurchaseResult, error)
}

type service struct {
	users     repository.User
	inventory repository.Inventory
	now       func() time.Time
}

// NewService creates a new shop service
func NewService(users repository.User, inventory repository.Inventory) Service {
	return &service{
		users:     users,
		inventory: inventory,
		now:       time.Now,
	}
}

func (s *service) ListItems() []Item {
	items := make([]Item, len(Catalog))
	copy(items, Catalog)
	return items
}

// Purchase buys one unit of an item. The gold decrement is a single atomic
// call; the hold-limit check for eggs and incubators is a read followed by a
// write, so two racing purchases can briefly exceed the limit.
func (s *service) Purchase(ctx context.Context, userID, itemID string) (*PurchaseResult, error) {
	log := logger.FromContext(ctx)

	// 1. Validate the item
	item, ok := ItemByID(itemID)
	if !ok {
		return nil, domain.ErrItemNotFound
	}

	// 2. Enforce single-hold limits
	if _, limited := SingleHoldItems[itemID]; limited {
		held, err := s.heldCount(ctx, userID, itemID)
		if err != nil {
			return nil, err
		}
		if held >= 1 {
			return nil, domain.ErrInventoryFull
		}
	}

	// 3. Charge the user, an atomic decrement that fails on insufficient gold
	if err := s.users.AddGold(ctx, userID, -item.Price); err != nil {
		return nil, fmt.Errorf("failed to charge purchase: %w", err)
	}

	// 4. Grant the item
	result := &PurchaseResult{Item: item, GoldSpent: item.Price}
	if itemID == domain.ItemEgg {
		egg := domain.Egg{
			ID:          ksuid.New().String(),
			PurchasedAt: s.now(),
		}
		if err := s.inventory.AddEgg(ctx, userID, egg); err != nil {
			return nil, fmt.Errorf("gold charged but egg grant failed: %w", err)
		}
		result.Egg = &egg
	} else {
		if err := s.inventory.AddItem(ctx, userID, itemID, 1); err != nil {
			return nil, fmt.Errorf("gold charged but item grant failed: %w", err)
		}
	}

	metrics.ItemsPurchased.WithLabelValues(itemID).Inc()
	metrics.GoldSpent.Add(float64(item.Price))
	log.Info("Purchase completed", "user_id", userID, "item", itemID, "price", item.Price)
	return result, nil
}

func (s *service) heldCount(ctx context.Context, userID, itemID string) (int, error) {
	if itemID == domain.ItemEgg {
		eggs, err := s.inventory.GetEggs(ctx, userID)
		if err != nil {
			return 0, fmt.Errorf("failed to count held eggs: %w", err)
		}
		return len(eggs), nil
	}
	inv, err := s.inventory.GetInventory(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get inventory: %w", err)
	}
	return inv.Count(itemID), nil
}
