package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"voyago/internal/planner"
)

// TravelTimeServiceInterface matches the planner's TravelLookup boundary.
type TravelTimeServiceInterface interface {
	TravelMinutes(ctx context.Context, from, to planner.Venue) (int, error)
}

// --------- pair cache (A,B) per travel mode ---------

type travelPairKey struct {
	Mode string
	From string
	To   string
}

type TravelPairCache interface {
	Get(k travelPairKey) (int, bool)
	Set(k travelPairKey, minutes int, ttl time.Duration)
}

type pairCacheEntry struct {
	Minutes   int
	ExpiresAt time.Time
}

type inMemoryPairCache struct {
	mu    sync.RWMutex
	store map[travelPairKey]pairCacheEntry
}

func NewInMemoryPairCache() TravelPairCache {
	return &inMemoryPairCache{store: make(map[travelPairKey]pairCacheEntry)}
}

func (c *inMemoryPairCache) Get(k travelPairKey) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.store[k]
	if !ok || time.Now().After(it.ExpiresAt) {
		return 0, false
	}
	return it.Minutes, true
}

func (c *inMemoryPairCache) Set(k travelPairKey, minutes int, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[k] = pairCacheEntry{Minutes: minutes, ExpiresAt: time.Now().Add(ttl)}
}

// Redis-backed variant for multi-instance deployments. Same keyspace shape
// as the in-memory cache; Redis owns expiry.
type redisPairCache struct {
	client *redis.Client
}

func NewRedisPairCache(client *redis.Client) TravelPairCache {
	return &redisPairCache{client: client}
}

func (c *redisPairCache) key(k travelPairKey) string {
	return fmt.Sprintf("travel:%s:%s:%s", k.Mode, k.From, k.To)
}

func (c *redisPairCache) Get(k travelPairKey) (int, bool) {
	minutes, err := c.client.Get(context.Background(), c.key(k)).Int()
	if err != nil {
		return 0, false
	}
	return minutes, true
}

func (c *redisPairCache) Set(k travelPairKey, minutes int, ttl time.Duration) {
	c.client.Set(context.Background(), c.key(k), minutes, ttl)
}

// --------- Google Distance Matrix client ---------

type GoogleDistanceMatrixClient struct {
	HTTP       *http.Client
	APIKey     string
	BaseURL    string
	Mode       string
	Cache      TravelPairCache
	DefaultTTL time.Duration
}

func NewGoogleDistanceMatrixClient(apiKey string, cache TravelPairCache) TravelTimeServiceInterface {
	return &GoogleDistanceMatrixClient{
		HTTP:       &http.Client{Timeout: 15 * time.Second},
		APIKey:     apiKey,
		BaseURL:    "https://maps.googleapis.com",
		Mode:       "walking",
		Cache:      cache,
		DefaultTTL: 7 * 24 * time.Hour,
	}
}

// TravelMinutes asks for a single origin-destination leg and rounds the
// duration up to whole minutes. Errors bubble up; the planner applies its
// own fallback.
func (c *GoogleDistanceMatrixClient) TravelMinutes(ctx context.Context, from, to planner.Venue) (int, error) {
	k := travelPairKey{Mode: c.Mode, From: from.ID, To: to.ID}
	if c.Cache != nil {
		if minutes, ok := c.Cache.Get(k); ok {
			return minutes, nil
		}
	}

	q := url.Values{}
	q.Set("origins", fmt.Sprintf("%f,%f", from.Lat, from.Lng))
	q.Set("destinations", fmt.Sprintf("%f,%f", to.Lat, to.Lng))
	q.Set("mode", c.Mode)
	q.Set("key", c.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/maps/api/distancematrix/json?"+q.Encode(), nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, fmt.Errorf("distance matrix http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return 0, fmt.Errorf("distance matrix bad status: %s", resp.Status)
	}

	var payload struct {
		Status string `json:"status"`
		Rows   []struct {
			Elements []struct {
				Status   string `json:"status"`
				Duration struct {
					ValueSeconds int `json:"value"`
				} `json:"duration"`
			} `json:"elements"`
		} `json:"rows"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("distance matrix decode: %w", err)
	}
	if payload.Status != "OK" || len(payload.Rows) == 0 || len(payload.Rows[0].Elements) == 0 {
		return 0, fmt.Errorf("distance matrix status %q", payload.Status)
	}
	element := payload.Rows[0].Elements[0]
	if element.Status != "OK" {
		return 0, fmt.Errorf("distance matrix element status %q", element.Status)
	}

	minutes := (element.Duration.ValueSeconds + 59) / 60
	if c.Cache != nil {
		c.Cache.Set(k, minutes, c.DefaultTTL)
	}
	return minutes, nil
}
