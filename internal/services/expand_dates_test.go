package services

import (
	"cargo-feasibility-service/internal/domain"
	"testing"
	"time"
)

func TestExpandWeekdaysCanonicalOrder(t *testing.T) {
	// 2026-03-04 is a Wednesday.
	today := time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC)

	out := ExpandWeekdays([]domain.DayCode{domain.Friday, domain.Monday}, today)
	if len(out) != 2 {
		t.Fatalf("expected 2 search dates, got %d", len(out))
	}

	// Canonical Mon..Sun order regardless of input order.
	if out[0].Day != domain.Monday || out[1].Day != domain.Friday {
		t.Fatalf("order = [%v, %v], want [Mon, Fri]", out[0].Day, out[1].Day)
	}

	wantMon := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	if !out[0].Date.Equal(wantMon) {
		t.Errorf("Monday date = %v, want %v", out[0].Date, wantMon)
	}

	wantFri := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)
	if !out[1].Date.Equal(wantFri) {
		t.Errorf("Friday date = %v, want %v", out[1].Date, wantFri)
	}
}

func TestExpandWeekdaysSameDayRollsForwardWeek(t *testing.T) {
	// 2026-03-04 is a Wednesday.
	today := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	out := ExpandWeekdays([]domain.DayCode{domain.Wednesday}, today)
	if len(out) != 1 {
		t.Fatalf("expected 1 search date, got %d", len(out))
	}

	want := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	if !out[0].Date.Equal(want) {
		t.Fatalf("same-weekday expansion = %v, want %v", out[0].Date, want)
	}
}

func TestExpandWeekdaysDeduplicatesAndSkipsInvalid(t *testing.T) {
	today := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	out := ExpandWeekdays([]domain.DayCode{domain.Tuesday, domain.Tuesday, domain.OneTime}, today)
	if len(out) != 1 {
		t.Fatalf("expected 1 search date, got %d", len(out))
	}
	if out[0].Day != domain.Tuesday {
		t.Fatalf("day = %v, want Tue", out[0].Day)
	}
}

func TestExpandWeekdaysEmptySelection(t *testing.T) {
	today := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	if out := ExpandWeekdays(nil, today); len(out) != 0 {
		t.Fatalf("expected no search dates, got %d", len(out))
	}
}
