package domain

import "time"

// Egg is a timed reward purchased from the shop. It becomes hatchable a
// fixed duration after purchase; an incubator skips the wait.
type Egg struct {
	ID          string    `json:"id"`
	PurchasedAt time.Time `json:"purchased_at"`
	Hatchable   bool      `json:"hatchable"`
}

// Inventory holds a user's consumable counts plus any unhatched eggs.
// Counts are only ever mutated through atomic per-item increments.
type Inventory struct {
	Items map[string]int `json:"items"`
	Eggs  []Egg          `json:"eggs"`
}

// Count returns the held quantity for an item id, zero when absent.
func (inv *Inventory) Count(itemID string) int {
	if inv == nil || inv.Items == nil {
		return 0
	}
	return inv.Items[itemID]
}
