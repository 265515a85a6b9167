package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"voyago/internal/models/response_models"
	"voyago/internal/planner"
	"voyago/pkg/utils"
)

type PlaceCatalogInterface interface {
	FetchVenues(ctx context.Context, destination string, categories []string) ([]planner.Venue, error)
	AutocompleteCities(ctx context.Context, input string) ([]response_models.CityPrediction, error)
}

// Catalog fetch taxonomy. Deliberately broader than the scheduling taxonomy
// so the raw /places surface stays rich; the planner filters it down again.
var fetchCategories = []struct {
	Name  string
	Types []string
}{
	{"restaurant", []string{"restaurant", "cafe", "bar", "bakery"}},
	{"museum", []string{"museum", "art_gallery"}},
	{"sightseeing", []string{"tourist_attraction"}},
	{"park", []string{"park"}},
	{"shopping", []string{"shopping_mall", "store", "clothing_store", "jewelry_store", "shoe_store", "book_store"}},
}

// Text-search queries that surface the landmark venues nearby search tends
// to bury (the Louvre problem).
var mustSeeQueries = []struct {
	Category string
	Query    string
}{
	{"museum", "top museums in"},
	{"sightseeing", "top attractions in"},
	{"restaurant", "best restaurants in"},
	{"park", "best parks in"},
}

const maxNearbyPages = 3

type GooglePlacesClient struct {
	HTTP    *http.Client
	APIKey  string
	BaseURL string
	RadiusM int
	// Paces page-token continuations; Google rejects tokens used too soon.
	Pager *rate.Limiter
}

func NewGooglePlacesClient(apiKey string) PlaceCatalogInterface {
	return &GooglePlacesClient{
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		APIKey:  apiKey,
		BaseURL: "https://maps.googleapis.com",
		RadiusM: 5000,
		Pager:   rate.NewLimiter(rate.Every(1500*time.Millisecond), 1),
	}
}

type googleLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type googlePlace struct {
	PlaceID  string `json:"place_id"`
	Name     string `json:"name"`
	Geometry *struct {
		Location googleLocation `json:"location"`
	} `json:"geometry"`
	Rating           float64  `json:"rating"`
	UserRatingsTotal int      `json:"user_ratings_total"`
	Types            []string `json:"types"`
	Photos           []struct {
		PhotoReference string `json:"photo_reference"`
	} `json:"photos"`
}

type googlePlacesResponse struct {
	Status        string        `json:"status"`
	Results       []googlePlace `json:"results"`
	NextPageToken string        `json:"next_page_token"`
}

// FetchVenues resolves the destination to a coordinate, then runs a nearby
// search per resolved type plus a text search per selected category, and
// deduplicates by place ID. An unresolvable destination yields an empty
// list, not an error.
func (g *GooglePlacesClient) FetchVenues(ctx context.Context, destination string, categories []string) ([]planner.Venue, error) {
	center, found, err := g.geocode(ctx, destination)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var venues []planner.Venue

	for _, placeType := range resolveFetchTypes(categories) {
		pageVenues, err := g.nearbySearch(ctx, center, placeType)
		if err != nil {
			return nil, err
		}
		venues = append(venues, pageVenues...)
	}

	for _, q := range mustSeeQueries {
		if !categorySelected(categories, q.Category) {
			continue
		}
		hits, err := g.textSearch(ctx, q.Query+" "+destination)
		if err != nil {
			return nil, err
		}
		// Text-search hits arrive pre-flagged; nearby duplicates win the
		// dedupe because they came first, same as the flag semantics on
		// the raw /places surface.
		for i := range hits {
			hits[i].MustSee = true
		}
		venues = append(venues, hits...)
	}

	return planner.Dedupe(venues), nil
}

func (g *GooglePlacesClient) AutocompleteCities(ctx context.Context, input string) ([]response_models.CityPrediction, error) {
	q := url.Values{}
	q.Set("input", input)
	q.Set("types", "(cities)")
	q.Set("key", g.APIKey)

	var payload struct {
		Status      string `json:"status"`
		Predictions []struct {
			Description string `json:"description"`
			PlaceID     string `json:"place_id"`
		} `json:"predictions"`
	}
	if err := g.getJSON(ctx, "/maps/api/place/autocomplete/json", q, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamUnavailable, err)
	}
	if payload.Status != "OK" {
		return nil, fmt.Errorf("%w: autocomplete status %s", utils.ErrUpstreamUnavailable, payload.Status)
	}

	out := make([]response_models.CityPrediction, 0, len(payload.Predictions))
	for _, p := range payload.Predictions {
		out = append(out, response_models.CityPrediction{
			Description: p.Description,
			PlaceID:     p.PlaceID,
		})
	}
	return out, nil
}

func (g *GooglePlacesClient) geocode(ctx context.Context, destination string) (googleLocation, bool, error) {
	q := url.Values{}
	q.Set("address", destination)
	q.Set("key", g.APIKey)

	var payload struct {
		Results []struct {
			Geometry struct {
				Location googleLocation `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
	}
	if err := g.getJSON(ctx, "/maps/api/geocode/json", q, &payload); err != nil {
		return googleLocation{}, false, err
	}
	if len(payload.Results) == 0 {
		return googleLocation{}, false, nil
	}
	return payload.Results[0].Geometry.Location, true, nil
}

func (g *GooglePlacesClient) nearbySearch(ctx context.Context, center googleLocation, placeType string) ([]planner.Venue, error) {
	var venues []planner.Venue
	pageToken := ""

	for page := 0; page < maxNearbyPages; page++ {
		if pageToken != "" && g.Pager != nil {
			if err := g.Pager.Wait(ctx); err != nil {
				return venues, err
			}
		}

		q := url.Values{}
		q.Set("location", fmt.Sprintf("%f,%f", center.Lat, center.Lng))
		q.Set("radius", fmt.Sprintf("%d", g.RadiusM))
		q.Set("type", placeType)
		q.Set("key", g.APIKey)
		if pageToken != "" {
			q.Set("pagetoken", pageToken)
		}

		var payload googlePlacesResponse
		if err := g.getJSON(ctx, "/maps/api/place/nearbysearch/json", q, &payload); err != nil {
			return nil, err
		}
		venues = append(venues, g.toVenues(payload.Results)...)

		pageToken = payload.NextPageToken
		if pageToken == "" {
			break
		}
	}
	return venues, nil
}

func (g *GooglePlacesClient) textSearch(ctx context.Context, query string) ([]planner.Venue, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("key", g.APIKey)

	var payload googlePlacesResponse
	if err := g.getJSON(ctx, "/maps/api/place/textsearch/json", q, &payload); err != nil {
		return nil, err
	}
	return g.toVenues(payload.Results), nil
}

func (g *GooglePlacesClient) toVenues(places []googlePlace) []planner.Venue {
	venues := make([]planner.Venue, 0, len(places))
	for _, p := range places {
		if p.PlaceID == "" || p.Geometry == nil {
			continue
		}
		v := planner.Venue{
			ID:               p.PlaceID,
			Name:             p.Name,
			Lat:              p.Geometry.Location.Lat,
			Lng:              p.Geometry.Location.Lng,
			Rating:           p.Rating,
			UserRatingsTotal: p.UserRatingsTotal,
			Types:            p.Types,
		}
		if len(p.Photos) > 0 && p.Photos[0].PhotoReference != "" {
			v.PhotoURL = g.photoURL(p.Photos[0].PhotoReference)
		}
		venues = append(venues, v)
	}
	return venues
}

// The photo endpoint needs the API key, so the full URL is resolved here
// and the planner only ever sees an opaque string.
func (g *GooglePlacesClient) photoURL(ref string) string {
	q := url.Values{}
	q.Set("maxwidth", "400")
	q.Set("photoreference", ref)
	q.Set("key", g.APIKey)
	return g.BaseURL + "/maps/api/place/photo?" + q.Encode()
}

func (g *GooglePlacesClient) getJSON(ctx context.Context, path string, q url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.BaseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := g.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("google places http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("google places bad status: %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("google places decode: %w", err)
	}
	return nil
}

func resolveFetchTypes(categories []string) []string {
	for _, c := range categories {
		if c == planner.CategoryAll {
			var all []string
			for _, fc := range fetchCategories {
				all = append(all, fc.Types...)
			}
			return all
		}
	}
	var types []string
	for _, c := range categories {
		for _, fc := range fetchCategories {
			if fc.Name == c {
				types = append(types, fc.Types...)
			}
		}
	}
	return types
}

func categorySelected(categories []string, name string) bool {
	for _, c := range categories {
		if c == planner.CategoryAll || c == name {
			return true
		}
	}
	return false
}
