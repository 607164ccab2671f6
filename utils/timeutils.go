package utils

import (
	"time"
)

const (
	DateLayout = "2006-01-02"
	HourLayout = "15"
)

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// ServiceWindow is the GTFS date and starting hour of a trip query.
type ServiceWindow struct {
	Date string // YYYY-MM-DD
	Hour string // HH, 00-23
}

// CurrentServiceWindow returns the window containing clock.Now() in loc.
// A nil loc means UTC, never the process-local zone.
func CurrentServiceWindow(clock Clock, loc *time.Location) ServiceWindow {
	if loc == nil {
		loc = time.UTC
	}
	now := clock.Now().In(loc)
	return ServiceWindow{
		Date: now.Format(DateLayout),
		Hour: now.Format(HourLayout),
	}
}

// Iso8601Now returns the current time in ISO8601 format
func Iso8601Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Iso8601FromUnixSeconds converts Unix timestamp to ISO8601 format
func Iso8601FromUnixSeconds(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(time.RFC3339)
}
