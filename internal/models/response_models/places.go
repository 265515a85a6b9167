package response_models

import "voyago/internal/planner"

type PlacesResponse struct {
	Places []VenueResponse `json:"places"`
}

type VenueResponse struct {
	PlaceID          string           `json:"place_id"`
	Name             string           `json:"name"`
	Location         LocationResponse `json:"location"`
	Rating           float64          `json:"rating"`
	UserRatingsTotal int              `json:"user_ratings_total"`
	Types            []string         `json:"types"`
	Photo            string           `json:"photo,omitempty"`
	MustSee          bool             `json:"must_see,omitempty"`
}

type LocationResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type CityPrediction struct {
	Description string `json:"description"`
	PlaceID     string `json:"place_id"`
}

type AutocompleteResponse struct {
	Predictions []CityPrediction `json:"predictions"`
}

func BuildPlacesResponse(venues []planner.Venue) *PlacesResponse {
	out := &PlacesResponse{Places: make([]VenueResponse, 0, len(venues))}
	for _, v := range venues {
		out.Places = append(out.Places, VenueResponse{
			PlaceID:          v.ID,
			Name:             v.Name,
			Location:         LocationResponse{Lat: v.Lat, Lng: v.Lng},
			Rating:           v.Rating,
			UserRatingsTotal: v.UserRatingsTotal,
			Types:            v.Types,
			Photo:            v.PhotoURL,
			MustSee:          v.MustSee,
		})
	}
	return out
}
