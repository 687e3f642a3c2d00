package services

import (
	"cargo-feasibility-service/internal/domain"
	"context"
	"errors"
	"testing"
	"time"
)

func TestParseHours(t *testing.T) {
	cases := []struct {
		raw  string
		kind domain.WindowKind
	}{
		{"05:00-23:00", domain.WindowBounded},
		{"22:00-05:00", domain.WindowBounded},
		{"9:30PM-2:45AM", domain.WindowBounded},
		{"Closed", domain.WindowClosed},
		{"No cargo on weekends", domain.WindowClosed},
		{"n/a", domain.WindowClosed},
		{"Unavailable", domain.WindowClosed},
		{"24/7", domain.WindowOpen24x7},
		{"open 24 hours", domain.WindowOpen24x7},
		{"Daily", domain.WindowOpen24x7},
		{"", domain.WindowUnknown},
		{"call for hours", domain.WindowUnknown},
	}

	for _, tc := range cases {
		if got := ParseHours(tc.raw); got.Kind != tc.kind {
			t.Errorf("ParseHours(%q).Kind = %v, want %v", tc.raw, got.Kind, tc.kind)
		}
	}
}

func TestParseHoursBoundedValues(t *testing.T) {
	w := ParseHours("22:00-05:00")
	if w.Open != clock(t, "22:00") || w.Close != clock(t, "05:00") {
		t.Fatalf("overnight window = %v-%v, want 22:00-05:00", w.Open, w.Close)
	}
	if w.Label != "22:00-05:00" {
		t.Fatalf("label = %q", w.Label)
	}
}

type stubHoursProvider struct {
	carrier map[string]string
	airport map[string]string

	carrierCalls int
	airportCalls int
	failAll      bool
}

func (s *stubHoursProvider) CarrierHours(_ context.Context, airport, carrier string, _ domain.DayCategory) (string, bool, error) {
	s.carrierCalls++
	if s.failAll {
		return "", false, errors.New("reference data offline")
	}
	raw, ok := s.carrier[airport+"|"+carrier]
	return raw, ok, nil
}

func (s *stubHoursProvider) AirportHours(_ context.Context, airport string, _ domain.DayCategory) (string, bool, error) {
	s.airportCalls++
	if s.failAll {
		return "", false, errors.New("reference data offline")
	}
	raw, ok := s.airport[airport]
	return raw, ok, nil
}

func TestHoursResolverFallbackChain(t *testing.T) {
	provider := &stubHoursProvider{
		carrier: map[string]string{"SEA|DL": "04:00-22:00"},
		airport: map[string]string{"SEA": "05:00-23:00"},
	}
	resolver := NewHoursResolver(provider)
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	// Carrier entry wins over the airport fallback.
	w := resolver.Resolve(context.Background(), "SEA", "DL", date)
	if w.Open != clock(t, "04:00") {
		t.Fatalf("carrier window open = %v, want 04:00", w.Open)
	}

	// Unknown carrier falls back to the airport table.
	w = resolver.Resolve(context.Background(), "SEA", "UA", date)
	if w.Open != clock(t, "05:00") {
		t.Fatalf("airport fallback open = %v, want 05:00", w.Open)
	}

	// Unknown airport resolves permissive, never an error.
	w = resolver.Resolve(context.Background(), "XXX", "UA", date)
	if w.Kind != domain.WindowUnknown || !w.AlwaysOpen() {
		t.Fatalf("unknown airport window = %+v, want permissive", w)
	}
}

func TestHoursResolverMemoizes(t *testing.T) {
	provider := &stubHoursProvider{airport: map[string]string{"SEA": "05:00-23:00"}}
	resolver := NewHoursResolver(provider)
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		resolver.Resolve(context.Background(), "SEA", "DL", date)
	}
	if provider.carrierCalls != 1 || provider.airportCalls != 1 {
		t.Fatalf("provider calls = (%d, %d), want (1, 1)", provider.carrierCalls, provider.airportCalls)
	}

	// A different date is a distinct memo entry.
	resolver.Resolve(context.Background(), "SEA", "DL", date.AddDate(0, 0, 1))
	if provider.carrierCalls != 2 {
		t.Fatalf("carrier calls after new date = %d, want 2", provider.carrierCalls)
	}
}

func TestHoursResolverProviderFaultIsPermissive(t *testing.T) {
	resolver := NewHoursResolver(&stubHoursProvider{failAll: true})
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	w := resolver.Resolve(context.Background(), "SEA", "DL", date)
	if !w.AlwaysOpen() {
		t.Fatalf("provider fault should degrade to permissive, got %+v", w)
	}
}
