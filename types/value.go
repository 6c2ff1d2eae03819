package types

import "time"

// Date wraps a calendar date with no time-of-day component.
type Date time.Time

// ClockTime wraps a wall-clock time of day, with no associated date.
type ClockTime time.Time

// DateTime wraps a civil date and time with no time zone.
type DateTime time.Time

func newClockTime(t time.Time) ClockTime {
	return ClockTime(time.Date(0, 1, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC))
}

func newDate(t time.Time) Date {
	return Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}
