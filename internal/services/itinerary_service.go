package services

import (
	"context"
	"log"
	"strings"

	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/planner"
	"voyago/pkg/utils"
)

type ItineraryServiceInterface interface {
	PlanItinerary(ctx context.Context, req request_models.ItineraryRequest) (*response_models.ItineraryResponse, error)
}

type ItineraryService struct {
	catalog PlaceCatalogInterface
	builder *planner.Builder
}

func NewItineraryService(catalog PlaceCatalogInterface, travel TravelTimeServiceInterface) ItineraryServiceInterface {
	return &ItineraryService{
		catalog: catalog,
		builder: planner.NewBuilder(travel),
	}
}

// PlanItinerary validates the request, fetches candidates and hands the
// allocation to the planner. A catalog failure degrades to an empty pool
// (and therefore ErrNoVenuesFound) instead of failing the request outright.
func (s *ItineraryService) PlanItinerary(ctx context.Context, req request_models.ItineraryRequest) (*response_models.ItineraryResponse, error) {
	destination := strings.TrimSpace(req.Destination)
	if destination == "" || req.StartDate == "" || req.EndDate == "" {
		return nil, utils.ErrMissingInput
	}

	start, err := utils.ParseCalendarDate(req.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidDateRange
	}
	end, err := utils.ParseCalendarDate(req.EndDate)
	if err != nil {
		return nil, utils.ErrInvalidDateRange
	}
	if end.Before(start) {
		return nil, utils.ErrInvalidDateRange
	}

	categories := req.Categories
	if len(categories) == 0 {
		categories = []string{planner.CategoryAll}
	}

	venues, err := s.catalog.FetchVenues(ctx, destination, categories)
	if err != nil {
		log.Printf("Place catalog fetch failed for %q: %v", destination, err)
		venues = nil
	}

	itinerary, err := s.builder.Build(ctx, planner.Request{
		Start:      start,
		End:        end,
		Categories: categories,
		Venues:     venues,
	})
	if err != nil {
		return nil, err
	}

	return response_models.BuildItineraryResponse(itinerary), nil
}
