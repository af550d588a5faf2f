package timeutil

import "time"

// TruncateToDay returns the day bucket boundary for t (midnight, local).
func TruncateToDay(t time.Time) time.Time {
	return StartOfDay(t)
}

// TruncateToWeek returns the week bucket boundary for t, honoring the
// configured week start day ("monday" or "sunday").
func TruncateToWeek(t time.Time, weekStartDay string) time.Time {
	return StartOfWeekWithConfig(t, weekStartDay)
}
