package utils

import "time"

// longDateLayout renders dates the way the itinerary shows them to
// travelers, e.g. "Monday, January 2, 2006".
const longDateLayout = "Monday, January 2, 2006"

func NowUnixSeconds() int64 { return time.Now().Unix() }

// FormatLongDate formats a calendar date for display inside an itinerary.
func FormatLongDate(t time.Time) string {
	return t.Format(longDateLayout)
}

// DayDate returns the calendar date for the itinerary day at the given
// zero-based offset from start.
func DayDate(start time.Time, offset int) time.Time {
	return start.AddDate(0, 0, offset)
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
