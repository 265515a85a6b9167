package planner

import (
	"context"
	"net/url"
	"time"

	"voyago/pkg/utils"
)

const (
	maxSlotsPerDay = 5
	maxVenuesTotal = 50
	maxPerCategory = 10
)

// Positional slot labels. Index 0 is always "morning" no matter how many
// venues the day actually got; no open-hours scheduling is computed.
var slotLabels = [maxSlotsPerDay]string{
	"morning", "late morning", "afternoon", "late afternoon", "evening",
}

var tripTips = []string{
	"Book tickets early for popular attractions",
	"Check opening hours for each location",
	"Plan some buffer time for travel between locations",
}

// Activity is one scheduled stop within a day.
type Activity struct {
	Slot                string
	PlaceID             string
	Name                string
	Description         string
	DurationMinutes     int
	TravelMinutesToNext int
	MapURL              string
	PhotoURL            string
	MustSee             bool
}

type DayPlan struct {
	Date       time.Time
	Activities []Activity
}

type Itinerary struct {
	Days []DayPlan
	Tips []string
}

// Request carries everything a build needs. Venues is the raw candidate
// list as fetched; the builder filters, caps and consumes it.
type Request struct {
	Start      time.Time
	End        time.Time
	Categories []string
	Venues     []Venue
}

// Builder turns a candidate venue list plus a date range into a day-by-day
// plan. Stateless across requests; safe for concurrent use as long as the
// travel lookup is.
type Builder struct {
	travel TravelLookup
}

func NewBuilder(travel TravelLookup) *Builder {
	return &Builder{travel: travel}
}

// Build runs the whole allocation: filter and cap the pool, give day one
// its must-sees, round-robin the rest, then stitch travel legs per day.
// The itinerary may come out shorter than the requested range when the
// pool runs dry, never longer.
func (b *Builder) Build(ctx context.Context, req Request) (*Itinerary, error) {
	dates := ExpandDateRange(req.Start, req.End)
	if len(dates) == 0 {
		return nil, utils.ErrInvalidDateRange
	}

	candidates := FilterByCategories(req.Venues, req.Categories)
	candidates = LimitPerCategory(candidates, maxPerCategory)
	if len(candidates) > maxVenuesTotal {
		candidates = candidates[:maxVenuesTotal]
	}

	pool := NewPool(candidates)
	if pool.Len() == 0 {
		return nil, utils.ErrNoVenuesFound
	}

	itinerary := &Itinerary{Tips: tripTips}
	for i, date := range dates {
		if pool.Len() == 0 {
			break
		}
		var venues []Venue
		if i == 0 {
			// Must-sees keep the first slots of day one; fillers are
			// appended, never re-sorted past them.
			venues = pool.TakeMustSees()
			venues = append(venues, pool.TakeMixed(maxSlotsPerDay-len(venues))...)
		} else {
			venues = pool.TakeMixed(maxSlotsPerDay)
		}
		if len(venues) == 0 {
			break
		}
		itinerary.Days = append(itinerary.Days, b.buildDay(ctx, date, venues))
	}
	return itinerary, nil
}

func (b *Builder) buildDay(ctx context.Context, date time.Time, venues []Venue) DayPlan {
	legs := travelLegs(ctx, b.travel, venues)

	activities := make([]Activity, 0, len(venues))
	for i, v := range venues {
		activities = append(activities, Activity{
			Slot:                slotLabels[i],
			PlaceID:             v.ID,
			Name:                v.Name,
			Description:         "Visit " + v.Name,
			DurationMinutes:     VisitDuration(v.Types),
			TravelMinutesToNext: legs[i],
			MapURL:              mapURL(v),
			PhotoURL:            v.PhotoURL,
			MustSee:             v.MustSee,
		})
	}
	return DayPlan{Date: date, Activities: activities}
}

func mapURL(v Venue) string {
	q := url.Values{}
	q.Set("api", "1")
	q.Set("query", v.Name)
	q.Set("query_place_id", v.ID)
	return "https://www.google.com/maps/search/?" + q.Encode()
}
