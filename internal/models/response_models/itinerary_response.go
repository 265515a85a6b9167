package response_models

import (
	"voyago/internal/planner"
	"voyago/pkg/utils"
)

type ItineraryResponse struct {
	Days []DayPlanResponse `json:"days"`
	Tips []string          `json:"tips"`
}

type DayPlanResponse struct {
	Date       string             `json:"date"`
	Activities []ActivityResponse `json:"activities"`
}

type ActivityResponse struct {
	Time                string `json:"time"`
	Name                string `json:"name"`
	PlaceID             string `json:"place_id"`
	Description         string `json:"description"`
	DurationMinutes     int    `json:"duration_minutes"`
	TravelMinutesToNext int    `json:"travel_minutes_to_next"`
	MapURL              string `json:"map_url"`
	Photo               string `json:"photo,omitempty"`
	MustSee             bool   `json:"must_see"`
}

func BuildItineraryResponse(itinerary *planner.Itinerary) *ItineraryResponse {
	out := &ItineraryResponse{
		Days: make([]DayPlanResponse, 0, len(itinerary.Days)),
		Tips: itinerary.Tips,
	}
	for _, day := range itinerary.Days {
		activities := make([]ActivityResponse, 0, len(day.Activities))
		for _, a := range day.Activities {
			activities = append(activities, ActivityResponse{
				Time:                a.Slot,
				Name:                a.Name,
				PlaceID:             a.PlaceID,
				Description:         a.Description,
				DurationMinutes:     a.DurationMinutes,
				TravelMinutesToNext: a.TravelMinutesToNext,
				MapURL:              a.MapURL,
				Photo:               a.PhotoURL,
				MustSee:             a.MustSee,
			})
		}
		out.Days = append(out.Days, DayPlanResponse{
			Date:       utils.FormatCalendarDate(day.Date),
			Activities: activities,
		})
	}
	return out
}
