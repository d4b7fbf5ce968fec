package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pokecode-app/pokecode/internal/domain"
)

// UserRepository implements the user repository for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// GetUserByID fetches a user's profile
func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT user_id, email, handle, rating, gold
		FROM users
		WHERE user_id = $1
	`
	var user domain.User
	err := r.db.QueryRow(ctx, query, userID).Scan(&user.ID, &user.Email, &user.Handle, &user.Rating, &user.Gold)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// UpsertUser inserts or updates a user's profile. A brand new user also
// receives the starter ball grant; the grant row is never deleted, so the
// insert is naturally idempotent.
func (r *UserRepository) UpsertUser(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (user_id, email, handle, rating)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET email = EXCLUDED.email, handle = EXCLUDED.handle, rating = EXCLUDED.rating, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, user.ID, user.Email, user.Handle, user.Rating); err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}

	grant := `
		INSERT INTO inventory_items (user_id, item_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, item_id) DO NOTHING
	`
	if _, err := r.db.Exec(ctx, grant, user.ID, domain.StarterBallItem, domain.StarterBallCount); err != nil {
		return fmt.Errorf("failed to grant starter balls: %w", err)
	}
	return nil
}

// AddGold applies a single guarded increment. A decrement that would drop
// the balance below zero affects no rows.
func (r *UserRepository) AddGold(ctx context.Context, userID string, delta int) error {
	query := `
		UPDATE users
		SET gold = gold + $2, updated_at = NOW()
		WHERE user_id = $1 AND gold + $2 >= 0
	`
	tag, err := r.db.Exec(ctx, query, userID, delta)
	if err != nil {
		return fmt.Errorf("failed to update gold: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := r.db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM users WHERE user_id = $1)", userID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return domain.ErrUserNotFound
	}
	return domain.ErrInsufficientFunds
}
