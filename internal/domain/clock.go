package domain

import (
	"fmt"
	"strings"
	"time"
)

// ClockTime is a wall-clock time of day expressed as minutes since midnight.
// It carries no date and no zone; shipment times and facility hours are
// assumed to share one local zone.
type ClockTime int

// clockLayouts covers the formats flight feeds actually emit
// (e.g. "9:30pm", "9:30 PM", "21:30").
var clockLayouts = []string{"3:04PM", "3:04 PM", "15:04"}

// ParseClock converts assorted time-of-day strings to a ClockTime.
// Input is normalized (trimmed, dots stripped, upper-cased) before the
// known layouts are tried in order.
func ParseClock(raw string) (ClockTime, error) {
	cleaned := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(raw), ".", ""))
	if cleaned == "" {
		return 0, fmt.Errorf("parse clock: empty time string")
	}

	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, cleaned)
		if err == nil {
			return ClockTime(t.Hour()*60 + t.Minute()), nil
		}
	}

	return 0, fmt.Errorf("parse clock: unrecognized time %q", raw)
}

// ClockOf extracts the time-of-day component of an instant.
func ClockOf(t time.Time) ClockTime {
	return ClockTime(t.Hour()*60 + t.Minute())
}

func (c ClockTime) Hour() int   { return int(c) / 60 }
func (c ClockTime) Minute() int { return int(c) % 60 }

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// At combines a calendar date with this clock time into an instant in the
// date's location.
func (c ClockTime) At(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour(), c.Minute(), 0, 0, date.Location())
}
