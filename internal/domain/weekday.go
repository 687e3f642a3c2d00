package domain

import (
	"fmt"
	"slices"
	"time"
)

// DayCode identifies a day of operation in canonical display order
// (Mon..Sun), with a sentinel for ad-hoc one-time searches that sorts last.
type DayCode int

const (
	Monday DayCode = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
	OneTime
)

var dayNames = [...]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun", "One-Time"}

func (d DayCode) String() string {
	if d < Monday || d > OneTime {
		return fmt.Sprintf("DayCode(%d)", int(d))
	}
	return dayNames[d]
}

// DayCodeOf maps a calendar date to its DayCode.
func DayCodeOf(t time.Time) DayCode {
	// time.Weekday starts the week on Sunday; DayCode starts on Monday.
	return DayCode((int(t.Weekday()) + 6) % 7)
}

// ParseDayCode accepts the short display names ("Mon".."Sun", "One-Time").
func ParseDayCode(s string) (DayCode, error) {
	for i, name := range dayNames {
		if s == name {
			return DayCode(i), nil
		}
	}
	return 0, fmt.Errorf("parse day code: unknown day %q", s)
}

// SortDayCodes orders days canonically Mon..Sun with One-Time last.
func SortDayCodes(days []DayCode) {
	slices.Sort(days)
}

// DayCategory buckets days for facility-hours lookup: cargo facilities
// publish weekday vs. Saturday vs. Sunday hours, not per-day tables.
type DayCategory int

const (
	WeekdayHours DayCategory = iota
	SaturdayHours
	SundayHours
)

func (c DayCategory) String() string {
	switch c {
	case SaturdayHours:
		return "saturday"
	case SundayHours:
		return "sunday"
	default:
		return "weekday"
	}
}

// CategoryOf maps a calendar date to its hours category.
func CategoryOf(t time.Time) DayCategory {
	switch t.Weekday() {
	case time.Saturday:
		return SaturdayHours
	case time.Sunday:
		return SundayHours
	default:
		return WeekdayHours
	}
}
