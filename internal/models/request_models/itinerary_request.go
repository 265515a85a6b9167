package request_models

// ItineraryRequest is the POST /api/itinerary body. Dates are plain
// calendar days ("2006-01-02"); Categories may be empty or carry the "ALL"
// sentinel.
type ItineraryRequest struct {
	Destination string   `json:"destination"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Categories  []string `json:"categories"`
}
