package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pokecode-app/pokecode/internal/domain"
)

// PokemonRepository implements the encounter queue and collection for
// PostgreSQL. Queue entries keep the full encounter as JSONB so the row
// layout does not chase the domain type.
type PokemonRepository struct {
	db *pgxpool.Pool
}

// NewPokemonRepository creates a new PokemonRepository
func NewPokemonRepository(db *pgxpool.Pool) *PokemonRepository {
	return &PokemonRepository{db: db}
}

// Enqueue appends an encounter to the user's pending queue
func (r *PokemonRepository) Enqueue(ctx context.Context, userID string, pokemon domain.QueuedPokemon) error {
	payload, err := json.Marshal(pokemon)
	if err != nil {
		return fmt.Errorf("failed to marshal encounter: %w", err)
	}
	if _, err := r.db.Exec(ctx, "INSERT INTO encounter_queue (user_id, payload) VALUES ($1, $2)", userID, payload); err != nil {
		return fmt.Errorf("failed to enqueue encounter: %w", err)
	}
	return nil
}

// PeekQueue returns the oldest queued encounter without removing it
func (r *PokemonRepository) PeekQueue(ctx context.Context, userID string) (*domain.QueuedPokemon, error) {
	query := `
		SELECT payload
		FROM encounter_queue
		WHERE user_id = $1
		ORDER BY queue_id
		LIMIT 1
	`
	var payload []byte
	err := r.db.QueryRow(ctx, query, userID).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrQueueEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("failed to peek queue: %w", err)
	}
	return unmarshalQueued(payload)
}

// Dequeue removes and returns the oldest queued encounter in one statement
func (r *PokemonRepository) Dequeue(ctx context.Context, userID string) (*domain.QueuedPokemon, error) {
	query := `
		DELETE FROM encounter_queue
		WHERE queue_id = (
			SELECT queue_id FROM encounter_queue
			WHERE user_id = $1
			ORDER BY queue_id
			LIMIT 1
		)
		RETURNING payload
	`
	var payload []byte
	err := r.db.QueryRow(ctx, query, userID).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrQueueEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("failed to dequeue: %w", err)
	}
	return unmarshalQueued(payload)
}

// GetQueue returns the full pending queue, oldest first
func (r *PokemonRepository) GetQueue(ctx context.Context, userID string) ([]domain.QueuedPokemon, error) {
	rows, err := r.db.Query(ctx, "SELECT payload FROM encounter_queue WHERE user_id = $1 ORDER BY queue_id", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get queue: %w", err)
	}
	defer rows.Close()

	var queue []domain.QueuedPokemon
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan queue row: %w", err)
		}
		p, err := unmarshalQueued(payload)
		if err != nil {
			return nil, err
		}
		queue = append(queue, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read queue rows: %w", err)
	}
	return queue, nil
}

// AddToCollection appends a caught Pokémon to the permanent collection
func (r *PokemonRepository) AddToCollection(ctx context.Context, userID string, pokemon domain.CaughtPokemon) error {
	types, err := json.Marshal(pokemon.Types)
	if err != nil {
		return fmt.Errorf("failed to marshal types: %w", err)
	}
	stats, err := json.Marshal(pokemon.Stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	query := `
		INSERT INTO collection (uid, user_id, pokemon_id, name, image_url, types, stats, cp, legendary, caught_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = r.db.Exec(ctx, query,
		pokemon.UID, userID, pokemon.ID, pokemon.Name, pokemon.ImageURL,
		types, stats, pokemon.CP, pokemon.Legendary, pokemon.CaughtAt)
	if err != nil {
		return fmt.Errorf("failed to add to collection: %w", err)
	}
	return nil
}

// GetCollection returns every caught Pokémon, oldest catch first
func (r *PokemonRepository) GetCollection(ctx context.Context, userID string) ([]domain.CaughtPokemon, error) {
	query := `
		SELECT uid, pokemon_id, name, image_url, types, stats, cp, legendary, caught_at
		FROM collection
		WHERE user_id = $1
		ORDER BY caught_at
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}
	defer rows.Close()

	var collection []domain.CaughtPokemon
	for rows.Next() {
		var p domain.CaughtPokemon
		var types, stats []byte
		if err := rows.Scan(&p.UID, &p.ID, &p.Name, &p.ImageURL, &types, &stats, &p.CP, &p.Legendary, &p.CaughtAt); err != nil {
			return nil, fmt.Errorf("failed to scan collection row: %w", err)
		}
		if err := json.Unmarshal(types, &p.Types); err != nil {
			return nil, fmt.Errorf("failed to unmarshal types: %w", err)
		}
		if err := json.Unmarshal(stats, &p.Stats); err != nil {
			return nil, fmt.Errorf("failed to unmarshal stats: %w", err)
		}
		collection = append(collection, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read collection rows: %w", err)
	}
	return collection, nil
}

func unmarshalQueued(payload []byte) (*domain.QueuedPokemon, error) {
	var p domain.QueuedPokemon
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal encounter: %w", err)
	}
	return &p, nil
}
