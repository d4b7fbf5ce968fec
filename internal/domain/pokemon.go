package domain

// Stat is a single named base stat as reported by the entity detail source.
// The six stats always arrive in order: hp, attack, defense, special-attack,
// special-defense, speed.
type Stat struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// PokemonDetail is the raw detail record fetched for a catalog id.
type PokemonDetail struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	ImageURL string   `json:"image_url"`
	Types    []string `json:"types"`
	Stats    []Stat   `json:"stats"`
}

// QueuedPokemon is a generated reward waiting in a user's pending queue.
// A failed capture leaves it in place; only capture success (promotion to
// CaughtPokemon) removes it.
type QueuedPokemon struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	ImageURL  string   `json:"image_url"`
	Types     []string `json:"types"`
	Stats     []Stat   `json:"stats"`
	CP        int      `json:"cp"`
	Legendary bool     `json:"legendary,omitempty"`
}

// CaughtPokemon is a permanent collection entry. Immutable once created.
type CaughtPokemon struct {
	QueuedPokemon
	UID      string `json:"uid"`
	CaughtAt int64  `json:"caught_at"` // milliseconds since epoch
}

// CaptureResult reports the outcome of a single capture attempt.
// The ball is consumed exactly once per attempt regardless of outcome.
type CaptureResult struct {
	Success   bool           `json:"success"`
	Fled      bool           `json:"fled"`
	BallUsed  string         `json:"ball_used"`
	CatchRate float64        `json:"catch_rate"`
	Message   string         `json:"message"`
	Pokemon   *CaughtPokemon `json:"pokemon,omitempty"`
}
