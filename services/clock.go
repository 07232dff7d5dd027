package services

import "time"

// Clock supplies "now" so that day/week/month boundaries can be fixed in
// tests instead of depending on wall-clock time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func NewRealClock() Clock { return realClock{} }

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// weekBounds returns the ISO week (Monday through Sunday) containing t.
func weekBounds(t time.Time) (time.Time, time.Time) {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // Sunday
	}
	start := dayStart(t).AddDate(0, 0, -(wd - 1))
	return start, dayEnd(start.AddDate(0, 0, 6))
}

// monthBounds returns the first and last instants of the given calendar month.
func monthBounds(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return start, dayEnd(start.AddDate(0, 1, -1))
}

func dayKey(t time.Time) string { return t.Format("2006-01-02") }
