package planner

// Visit minutes by venue kind.
const (
	museumVisitMinutes     = 120
	parkVisitMinutes       = 90
	restaurantVisitMinutes = 75
	defaultVisitMinutes    = 90
)

// VisitDuration assigns the planned minutes at a stop. Precedence is fixed
// and first-match-wins: a venue tagged both museum and park gets the museum
// duration.
func VisitDuration(types []string) int {
	switch {
	case hasAnyTag(types, []string{"museum", "art_gallery"}):
		return museumVisitMinutes
	case hasAnyTag(types, []string{"park", "natural_feature"}):
		return parkVisitMinutes
	case hasAnyTag(types, []string{"restaurant", "cafe"}):
		return restaurantVisitMinutes
	default:
		return defaultVisitMinutes
	}
}
