package repositories

import (
	"cargo-feasibility-service/internal/domain"
	"context"
	"errors"
	"testing"
)

type faultyHoursProvider struct{}

func (faultyHoursProvider) CarrierHours(context.Context, string, string, domain.DayCategory) (string, bool, error) {
	return "", false, errors.New("hours table offline")
}

func (faultyHoursProvider) AirportHours(context.Context, string, domain.DayCategory) (string, bool, error) {
	return "", false, errors.New("hours table offline")
}

func TestStaticProviderServesBuiltInTable(t *testing.T) {
	p := NewStaticHoursProvider()
	ctx := context.Background()

	hours, found, err := p.AirportHours(ctx, " sea ", domain.WeekdayHours)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found || hours != "05:00-23:00" {
		t.Fatalf("got (%q, %v), want (05:00-23:00, true)", hours, found)
	}

	if _, found, _ := p.AirportHours(ctx, "XXX", domain.WeekdayHours); found {
		t.Fatal("unknown airport should miss")
	}
	if _, found, _ := p.CarrierHours(ctx, "SEA", "AS", domain.WeekdayHours); found {
		t.Fatal("static table carries no carrier entries")
	}
}

func TestFallbackCoversEmptyPrimary(t *testing.T) {
	db := openTestDB(t)
	p := NewFallbackHoursProvider(NewSqliteHoursRepository(db), NewStaticHoursProvider())
	ctx := context.Background()

	// Nothing seeded: the built-in table answers.
	hours, found, err := p.AirportHours(ctx, "SEA", domain.WeekdayHours)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found || hours != "05:00-23:00" {
		t.Fatalf("got (%q, %v), want built-in hours", hours, found)
	}
}

func TestFallbackPrefersPrimaryRows(t *testing.T) {
	db := openTestDB(t)
	rows := []HoursSeed{{Airport: "SEA", DayCategory: "weekday", Hours: "06:00-21:00"}}
	if err := insertHours(db, rows); err != nil {
		t.Fatalf("insert hours: %v", err)
	}

	p := NewFallbackHoursProvider(NewSqliteHoursRepository(db), NewStaticHoursProvider())

	hours, found, err := p.AirportHours(context.Background(), "SEA", domain.WeekdayHours)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found || hours != "06:00-21:00" {
		t.Fatalf("got (%q, %v), want the seeded row to win", hours, found)
	}
}

func TestFallbackDegradesOnPrimaryFault(t *testing.T) {
	p := NewFallbackHoursProvider(faultyHoursProvider{}, NewStaticHoursProvider())

	hours, found, err := p.AirportHours(context.Background(), "MIA", domain.SundayHours)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found || hours != "05:00-23:00" {
		t.Fatalf("got (%q, %v), want built-in hours despite the fault", hours, found)
	}
}
