// Package pokeapi implements the entity detail source against the public
// PokeAPI. Responses are cached in-process since catalog entries are
// immutable upstream.
package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pokecode-app/pokecode/internal/domain"
	"github.com/pokecode-app/pokecode/internal/logger"
)

const (
	// DefaultBaseURL is the public PokeAPI v2 endpoint
	DefaultBaseURL = "https://pokeapi.co/api/v2"

	// DefaultCacheSize bounds the in-process detail cache. The catalog
	// domain tops out at 1025 entries, so this effectively caches everything.
	DefaultCacheSize = 1100

	// DefaultTimeout bounds a single detail fetch
	DefaultTimeout = 10 * time.Second
)

// Client fetches pokemon detail records over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *lru.Cache[int, *domain.PokemonDetail]
	titler     cases.Caser
}

// NewClient creates a detail-source client. An empty baseURL selects the
// public endpoint.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	cache, err := lru.New[int, *domain.PokemonDetail](DefaultCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create detail cache: %w", err)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		cache:      cache,
		titler:     cases.Title(language.English),
	}, nil
}

// apiResponse mirrors the subset of the PokeAPI pokemon payload we consume
type apiResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
		Other        struct {
			OfficialArtwork struct {
				FrontDefault string `json:"front_default"`
			} `json:"official-artwork"`
		} `json:"other"`
	} `json:"sprites"`
	Types []struct {
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
	Stats []struct {
		BaseStat int `json:"base_stat"`
		Stat     struct {
			Name string `json:"name"`
		} `json:"stat"`
	} `json:"stats"`
}

// FetchDetail retrieves the detail record for a catalog id. Results are
// cached; a cache hit never touches the network.
func (c *Client) FetchDetail(ctx context.Context, id int) (*domain.PokemonDetail, error) {
	log := logger.FromContext(ctx)

	if detail, ok := c.cache.Get(id); ok {
		return detail, nil
	}

	url := fmt.Sprintf("%s/pokemon/%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build detail request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("Detail fetch failed", "id", id, "error", err)
		return nil, fmt.Errorf("detail fetch failed for id %d: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn("Detail source returned non-OK status", "id", id, "status", resp.StatusCode)
		return nil, fmt.Errorf("detail source returned status %d for id %d", resp.StatusCode, id)
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode detail response: %w", err)
	}

	detail := c.toDetail(&payload)
	c.cache.Add(id, detail)
	return detail, nil
}

func (c *Client) toDetail(payload *apiResponse) *domain.PokemonDetail {
	imageURL := payload.Sprites.Other.OfficialArtwork.FrontDefault
	if imageURL == "" {
		imageURL = payload.Sprites.FrontDefault
	}

	types := make([]string, 0, len(payload.Types))
	for _, t := range payload.Types {
		types = append(types, c.titler.String(t.Type.Name))
	}

	stats := make([]domain.Stat, 0, len(payload.Stats))
	for _, s := range payload.Stats {
		stats = append(stats, domain.Stat{Name: s.Stat.Name, Value: s.BaseStat})
	}

	return &domain.PokemonDetail{
		ID:       payload.ID,
		Name:     c.titler.String(payload.Name),
		ImageURL: imageURL,
		Types:    types,
		Stats:    stats,
	}
}
