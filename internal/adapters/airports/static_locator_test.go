package airports

import (
	"cargo-feasibility-service/internal/domain"
	"context"
	"testing"
)

type fixedGeocoder struct {
	coords domain.Coordinates
}

func (g *fixedGeocoder) Geocode(_ context.Context, _ string) (domain.Coordinates, error) {
	return g.coords, nil
}

func TestNearestAirportsCodeShortCircuits(t *testing.T) {
	locator := NewStaticLocator(nil)

	out, err := locator.NearestAirports(context.Background(), "sea", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].Code != "SEA" || out[0].AirMiles != 0 {
		t.Fatalf("code lookup = %+v", out)
	}
}

func TestNearestAirportsRanksByDistance(t *testing.T) {
	// Downtown Seattle: SEA then PDX are the closest entries.
	locator := NewStaticLocator(&fixedGeocoder{coords: domain.Coordinates{Lat: 47.6062, Lon: -122.3321}})

	out, err := locator.NearestAirports(context.Background(), "123 Pine St, Seattle, WA", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(out))
	}
	if out[0].Code != "SEA" || out[1].Code != "PDX" {
		t.Fatalf("ranking = [%s, %s], want [SEA, PDX]", out[0].Code, out[1].Code)
	}
	if out[0].AirMiles <= 0 || out[0].AirMiles >= out[1].AirMiles {
		t.Fatalf("distances not ascending: %v", out)
	}
}

func TestNearestAirportsRequiresGeocoderForAddresses(t *testing.T) {
	locator := NewStaticLocator(nil)

	if _, err := locator.NearestAirports(context.Background(), "123 Pine St, Seattle, WA", 1); err == nil {
		t.Fatal("expected error for address without geocoder")
	}
}
