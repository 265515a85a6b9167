package planner

import (
	"context"
	"sync"
)

// TravelLookup resolves the travel time in minutes between two consecutive
// stops. Implementations live outside the planner; they own their transport,
// caching and timeouts.
type TravelLookup interface {
	TravelMinutes(ctx context.Context, from, to Venue) (int, error)
}

// Used whenever a lookup fails or returns nonsense. A travel-time failure
// never aborts itinerary construction.
const fallbackTravelMinutes = 15

// travelLegs returns, for each venue, the minutes to the next one; the last
// entry is always 0. All pair lookups for the day run concurrently and the
// day waits for every one of them.
func travelLegs(ctx context.Context, lookup TravelLookup, day []Venue) []int {
	legs := make([]int, len(day))
	if len(day) < 2 || lookup == nil {
		return legs
	}

	var wg sync.WaitGroup
	for i := 0; i < len(day)-1; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			minutes, err := lookup.TravelMinutes(ctx, day[i], day[i+1])
			if err != nil || minutes < 0 {
				legs[i] = fallbackTravelMinutes
				return
			}
			legs[i] = minutes
		}(i)
	}
	wg.Wait()
	return legs
}
