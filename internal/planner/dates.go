package planner

import (
	"math"
	"time"
)

// ExpandDateRange lists the consecutive calendar dates covered by the
// inclusive start..end range. A same-day trip yields exactly one date; the
// result is clamped to at least one day. Reversed ranges are rejected
// upstream before this runs.
func ExpandDateRange(start, end time.Time) []time.Time {
	days := int(math.Ceil(end.Sub(start).Hours()/24)) + 1
	if days < 1 {
		days = 1
	}
	dates := make([]time.Time, days)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}
	return dates
}
