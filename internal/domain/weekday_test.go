package domain

import (
	"reflect"
	"testing"
	"time"
)

func TestDayCodeOf(t *testing.T) {
	// 2026-03-02 is a Monday.
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 7; i++ {
		want := DayCode(i)
		if got := DayCodeOf(monday.AddDate(0, 0, i)); got != want {
			t.Errorf("DayCodeOf(+%dd) = %v, want %v", i, got, want)
		}
	}
}

func TestSortDayCodesOneTimeLast(t *testing.T) {
	days := []DayCode{OneTime, Friday, Monday, Sunday}
	SortDayCodes(days)

	want := []DayCode{Monday, Friday, Sunday, OneTime}
	if !reflect.DeepEqual(days, want) {
		t.Fatalf("sorted days = %v, want %v", days, want)
	}
}

func TestCategoryOf(t *testing.T) {
	// 2026-03-06 Friday, 03-07 Saturday, 03-08 Sunday.
	friday := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)

	if got := CategoryOf(friday); got != WeekdayHours {
		t.Errorf("Friday category = %v", got)
	}
	if got := CategoryOf(friday.AddDate(0, 0, 1)); got != SaturdayHours {
		t.Errorf("Saturday category = %v", got)
	}
	if got := CategoryOf(friday.AddDate(0, 0, 2)); got != SundayHours {
		t.Errorf("Sunday category = %v", got)
	}
}

func TestParseDayCodeRoundTrip(t *testing.T) {
	for d := Monday; d <= OneTime; d++ {
		parsed, err := ParseDayCode(d.String())
		if err != nil {
			t.Fatalf("ParseDayCode(%q): %v", d.String(), err)
		}
		if parsed != d {
			t.Fatalf("round trip %v -> %v", d, parsed)
		}
	}

	if _, err := ParseDayCode("Funday"); err == nil {
		t.Fatal("ParseDayCode should reject unknown names")
	}
}
