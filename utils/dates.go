// utils/dates.go
package utils

import "time"

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// ValidDate checks a YYYY-MM-DD calendar date string.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ValidClockTime checks an HH:MM time-of-day string.
func ValidClockTime(s string) bool {
	_, err := time.Parse(ClockLayout, s)
	return err == nil
}

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}
