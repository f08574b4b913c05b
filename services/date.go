package services

import "time"

// Location is the practice time zone; it decides where "today" starts and ends
var Location = time.UTC

// Now is the clock used by every time-window query
var Now = time.Now

// Windows used by the deadline queries
const (
	DeadlineListWindow      = 30 * 24 * time.Hour
	DashboardDeadlineWindow = 7 * 24 * time.Hour
	DefaultDeadlineLimit    = 10
)

// DayRange returns the half-open range [start of day, start of next day) that
// contains t in loc, expressed in UTC
func DayRange(t time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	// AddDate keeps DST days correct (23h or 25h long)
	end := start.AddDate(0, 0, 1)
	return start.UTC(), end.UTC()
}

// todayRange is DayRange for the current instant in the practice time zone
func todayRange() (time.Time, time.Time) {
	return DayRange(Now(), Location)
}
