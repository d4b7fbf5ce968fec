package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pokecode-app/pokecode/internal/domain"
)

// InventoryRepository implements the inventory repository for PostgreSQL
type InventoryRepository struct {
	db *pgxpool.Pool
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// GetInventory returns the item counts and eggs for a user
func (r *InventoryRepository) GetInventory(ctx context.Context, userID string) (*domain.Inventory, error) {
	rows, err := r.db.Query(ctx, "SELECT item_id, quantity FROM inventory_items WHERE user_id = $1", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	defer rows.Close()

	items := make(map[string]int)
	for rows.Next() {
		var itemID string
		var quantity int
		if err := rows.Scan(&itemID, &quantity); err != nil {
			return nil, fmt.Errorf("failed to scan inventory row: %w", err)
		}
		items[itemID] = quantity
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read inventory rows: %w", err)
	}

	eggs, err := r.GetEggs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &domain.Inventory{Items: items, Eggs: eggs}, nil
}

// AddItem applies a single atomic quantity adjustment. Decrements are guarded
// so the count never drops below zero.
func (r *InventoryRepository) AddItem(ctx context.Context, userID, itemID string, delta int) error {
	if delta < 0 {
		query := `
			UPDATE inventory_items
			SET quantity = quantity + $3, updated_at = NOW()
			WHERE user_id = $1 AND item_id = $2 AND quantity + $3 >= 0
		`
		tag, err := r.db.Exec(ctx, query, userID, itemID, delta)
		if err != nil {
			return fmt.Errorf("failed to decrement item: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrInsufficientQuantity
		}
		return nil
	}

	query := `
		INSERT INTO inventory_items (user_id, item_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, item_id) DO UPDATE
		SET quantity = inventory_items.quantity + $3, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, userID, itemID, delta); err != nil {
		return fmt.Errorf("failed to increment item: %w", err)
	}
	return nil
}

// AddEgg stores a freshly purchased egg
func (r *InventoryRepository) AddEgg(ctx context.Context, userID string, egg domain.Egg) error {
	query := "INSERT INTO eggs (egg_id, user_id, purchased_at) VALUES ($1, $2, $3)"
	if _, err := r.db.Exec(ctx, query, egg.ID, userID, egg.PurchasedAt); err != nil {
		return fmt.Errorf("failed to add egg: %w", err)
	}
	return nil
}

// RemoveEgg deletes one egg by id
func (r *InventoryRepository) RemoveEgg(ctx context.Context, userID, eggID string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM eggs WHERE user_id = $1 AND egg_id = $2", userID, eggID)
	if err != nil {
		return fmt.Errorf("failed to remove egg: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEggNotFound
	}
	return nil
}

// GetEggs returns a user's eggs, oldest first
func (r *InventoryRepository) GetEggs(ctx context.Context, userID string) ([]domain.Egg, error) {
	rows, err := r.db.Query(ctx, "SELECT egg_id, purchased_at FROM eggs WHERE user_id = $1 ORDER BY purchased_at", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get eggs: %w", err)
	}
	defer rows.Close()

	var eggs []domain.Egg
	for rows.Next() {
		var egg domain.Egg
		if err := rows.Scan(&egg.ID, &egg.PurchasedAt); err != nil {
			return nil, fmt.Errorf("failed to scan egg row: %w", err)
		}
		eggs = append(eggs, egg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read egg rows: %w", err)
	}
	return eggs, nil
}
