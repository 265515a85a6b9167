package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/internal/planner"
)

func matrixClient(baseURL string) *GoogleDistanceMatrixClient {
	return &GoogleDistanceMatrixClient{
		HTTP:       &http.Client{Timeout: 5 * time.Second},
		APIKey:     "test-key",
		BaseURL:    baseURL,
		Mode:       "walking",
		Cache:      NewInMemoryPairCache(),
		DefaultTTL: time.Hour,
	}
}

func matrixPayload(status, elementStatus string, seconds int) string {
	return fmt.Sprintf(`{"status":%q,"rows":[{"elements":[{"status":%q,"duration":{"value":%d}}]}]}`,
		status, elementStatus, seconds)
}

func TestTravelMinutesRoundsUp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "walking", r.URL.Query().Get("mode"))
		fmt.Fprint(w, matrixPayload("OK", "OK", 330))
	}))
	defer srv.Close()

	minutes, err := matrixClient(srv.URL).TravelMinutes(context.Background(),
		planner.Venue{ID: "a", Lat: 48.86, Lng: 2.35},
		planner.Venue{ID: "b", Lat: 48.87, Lng: 2.36})
	require.NoError(t, err)
	assert.Equal(t, 6, minutes)
}

func TestTravelMinutesServedFromCacheOnRepeat(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		fmt.Fprint(w, matrixPayload("OK", "OK", 600))
	}))
	defer srv.Close()

	client := matrixClient(srv.URL)
	from := planner.Venue{ID: "a"}
	to := planner.Venue{ID: "b"}

	for i := 0; i < 3; i++ {
		minutes, err := client.TravelMinutes(context.Background(), from, to)
		require.NoError(t, err)
		assert.Equal(t, 10, minutes)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestTravelMinutesDirectionalCacheKeys(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, matrixPayload("OK", "OK", 60))
	}))
	defer srv.Close()

	client := matrixClient(srv.URL)
	_, err := client.TravelMinutes(context.Background(), planner.Venue{ID: "a"}, planner.Venue{ID: "b"})
	require.NoError(t, err)

	_, hitReverse := client.Cache.Get(travelPairKey{Mode: "walking", From: "b", To: "a"})
	assert.False(t, hitReverse)
	_, hitForward := client.Cache.Get(travelPairKey{Mode: "walking", From: "a", To: "b"})
	assert.True(t, hitForward)
}

func TestTravelMinutesElementNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, matrixPayload("OK", "NOT_FOUND", 0))
	}))
	defer srv.Close()

	_, err := matrixClient(srv.URL).TravelMinutes(context.Background(),
		planner.Venue{ID: "a"}, planner.Venue{ID: "b"})
	assert.Error(t, err)
}

func TestTravelMinutesUpstreamDenied(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, matrixPayload("REQUEST_DENIED", "OK", 0))
	}))
	defer srv.Close()

	_, err := matrixClient(srv.URL).TravelMinutes(context.Background(),
		planner.Venue{ID: "a"}, planner.Venue{ID: "b"})
	assert.Error(t, err)
}

func TestInMemoryPairCacheExpiry(t *testing.T) {
	cache := NewInMemoryPairCache()
	k := travelPairKey{Mode: "walking", From: "a", To: "b"}

	cache.Set(k, 12, -time.Second)
	_, ok := cache.Get(k)
	assert.False(t, ok)

	cache.Set(k, 12, time.Hour)
	minutes, ok := cache.Get(k)
	require.True(t, ok)
	assert.Equal(t, 12, minutes)
}
