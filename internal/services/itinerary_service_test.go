package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/planner"
	"voyago/pkg/utils"
)

type stubCatalog struct {
	venues []planner.Venue
	err    error
}

func (s *stubCatalog) FetchVenues(ctx context.Context, destination string, categories []string) ([]planner.Venue, error) {
	return s.venues, s.err
}

func (s *stubCatalog) AutocompleteCities(ctx context.Context, input string) ([]response_models.CityPrediction, error) {
	return nil, nil
}

type stubTravel struct {
	minutes int
	err     error
}

func (s *stubTravel) TravelMinutes(ctx context.Context, from, to planner.Venue) (int, error) {
	return s.minutes, s.err
}

func testVenue(id string, rating float64, reviews int, types ...string) planner.Venue {
	return planner.Venue{ID: id, Name: id, Rating: rating, UserRatingsTotal: reviews, Types: types}
}

func validRequest() request_models.ItineraryRequest {
	return request_models.ItineraryRequest{
		Destination: "Paris",
		StartDate:   "2026-05-01",
		EndDate:     "2026-05-02",
		Categories:  []string{"museum", "restaurant"},
	}
}

func TestPlanItineraryMissingFields(t *testing.T) {
	svc := NewItineraryService(&stubCatalog{}, &stubTravel{})

	cases := []request_models.ItineraryRequest{
		{StartDate: "2026-05-01", EndDate: "2026-05-02"},
		{Destination: "Paris", EndDate: "2026-05-02"},
		{Destination: "Paris", StartDate: "2026-05-01"},
		{Destination: "   ", StartDate: "2026-05-01", EndDate: "2026-05-02"},
	}
	for _, req := range cases {
		_, err := svc.PlanItinerary(context.Background(), req)
		assert.ErrorIs(t, err, utils.ErrMissingInput)
	}
}

func TestPlanItineraryMalformedDates(t *testing.T) {
	svc := NewItineraryService(&stubCatalog{}, &stubTravel{})

	req := validRequest()
	req.StartDate = "01/05/2026"
	_, err := svc.PlanItinerary(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrInvalidDateRange)

	req = validRequest()
	req.EndDate = "not-a-date"
	_, err = svc.PlanItinerary(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrInvalidDateRange)
}

func TestPlanItineraryInvertedRange(t *testing.T) {
	svc := NewItineraryService(&stubCatalog{}, &stubTravel{})

	req := validRequest()
	req.StartDate = "2026-05-10"
	req.EndDate = "2026-05-01"

	_, err := svc.PlanItinerary(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrInvalidDateRange)
}

func TestPlanItineraryEmptyCatalog(t *testing.T) {
	svc := NewItineraryService(&stubCatalog{}, &stubTravel{})

	_, err := svc.PlanItinerary(context.Background(), validRequest())
	assert.ErrorIs(t, err, utils.ErrNoVenuesFound)
}

func TestPlanItineraryCatalogFailureDegradesToNoVenues(t *testing.T) {
	svc := NewItineraryService(&stubCatalog{err: errors.New("catalog down")}, &stubTravel{})

	_, err := svc.PlanItinerary(context.Background(), validRequest())
	assert.ErrorIs(t, err, utils.ErrNoVenuesFound)
}

func TestPlanItineraryHappyPath(t *testing.T) {
	catalog := &stubCatalog{venues: []planner.Venue{
		testVenue("m1", 9, 100, "museum"),
		testVenue("r1", 8, 100, "restaurant"),
		testVenue("m2", 5, 100, "museum"),
	}}
	svc := NewItineraryService(catalog, &stubTravel{minutes: 10})

	resp, err := svc.PlanItinerary(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, resp.Days, 1)
	assert.Equal(t, "2026-05-01", resp.Days[0].Date)
	require.Len(t, resp.Days[0].Activities, 3)

	first := resp.Days[0].Activities[0]
	assert.Equal(t, "morning", first.Time)
	assert.Equal(t, "m1", first.PlaceID)
	assert.True(t, first.MustSee)
	assert.Equal(t, 120, first.DurationMinutes)
	assert.Equal(t, 10, first.TravelMinutesToNext)

	last := resp.Days[0].Activities[2]
	assert.Equal(t, 0, last.TravelMinutesToNext)

	assert.Len(t, resp.Tips, 3)
}

func TestPlanItineraryDefaultsToAllCategories(t *testing.T) {
	catalog := &stubCatalog{venues: []planner.Venue{
		testVenue("p1", 7, 100, "park"),
	}}
	svc := NewItineraryService(catalog, &stubTravel{})

	req := validRequest()
	req.Categories = nil

	resp, err := svc.PlanItinerary(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Days, 1)
	assert.Equal(t, "p1", resp.Days[0].Activities[0].PlaceID)
}
