package utils

import (
	"strings"
	"time"
)

// Calendar dates on the wire are plain ISO days, no time-of-day.
const calendarDateLayout = "2006-01-02"

func ParseCalendarDate(s string) (time.Time, error) {
	return time.Parse(calendarDateLayout, strings.TrimSpace(s))
}

func FormatCalendarDate(t time.Time) string {
	return t.Format(calendarDateLayout)
}
