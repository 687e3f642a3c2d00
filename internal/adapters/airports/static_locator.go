package airports

import (
	"cargo-feasibility-service/internal/domain"
	"cargo-feasibility-service/internal/ports"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// airportDB covers the major US cargo airports the service plans against.
// Reference data, not configuration: extending coverage means extending
// this table and the seeded hours data together.
var airportDB = map[string]domain.Coordinates{
	"SEA": {Lat: 47.4489, Lon: -122.3094},
	"PDX": {Lat: 45.5887, Lon: -122.5975},
	"SFO": {Lat: 37.6189, Lon: -122.3748},
	"LAX": {Lat: 33.9425, Lon: -118.4080},
	"ORD": {Lat: 41.9742, Lon: -87.9073},
	"DFW": {Lat: 32.8998, Lon: -97.0403},
	"JFK": {Lat: 40.6413, Lon: -73.7781},
	"ATL": {Lat: 33.6407, Lon: -84.4277},
	"MIA": {Lat: 25.7959, Lon: -80.2870},
	"CLT": {Lat: 35.2140, Lon: -80.9431},
	"MEM": {Lat: 35.0424, Lon: -89.9767},
	"CVG": {Lat: 39.0461, Lon: -84.6621},
	"DEN": {Lat: 39.8561, Lon: -104.6737},
	"PHX": {Lat: 33.4343, Lon: -112.0116},
	"IAH": {Lat: 29.9902, Lon: -95.3368},
	"BOS": {Lat: 42.3656, Lon: -71.0096},
	"EWR": {Lat: 40.6895, Lon: -74.1745},
	"MCO": {Lat: 28.4312, Lon: -81.3081},
	"LGA": {Lat: 40.7769, Lon: -73.8740},
	"DTW": {Lat: 42.2162, Lon: -83.3554},
	"MSP": {Lat: 44.8848, Lon: -93.2223},
	"SLC": {Lat: 40.7899, Lon: -111.9791},
}

// StaticLocator resolves addresses to nearby airports against the built-in
// airport table. Airport codes short-circuit; street addresses go through
// the geocoding collaborator first.
type StaticLocator struct {
	geocoder ports.Geocoder
}

func NewStaticLocator(geocoder ports.Geocoder) *StaticLocator {
	return &StaticLocator{geocoder: geocoder}
}

// Coordinates returns the known coordinates for an airport code.
func Coordinates(code string) (domain.Coordinates, bool) {
	c, ok := airportDB[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

// NearestAirports returns up to limit airports ordered by straight-line
// distance from the address.
func (l *StaticLocator) NearestAirports(ctx context.Context, address string, limit int) ([]ports.AirportDistance, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, errors.New("nearest airports: address must be non-empty")
	}
	if limit < 1 {
		return nil, fmt.Errorf("nearest airports: limit must be >= 1, got %d", limit)
	}

	if _, ok := Coordinates(address); ok {
		return []ports.AirportDistance{{Code: strings.ToUpper(address), AirMiles: 0}}, nil
	}

	if l.geocoder == nil {
		return nil, fmt.Errorf("nearest airports: %q is not an airport code and no geocoder is configured", address)
	}

	origin, err := l.geocoder.Geocode(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("nearest airports: geocode %q: %w", address, err)
	}

	candidates := make([]ports.AirportDistance, 0, len(airportDB))
	for code, coords := range airportDB {
		candidates = append(candidates, ports.AirportDistance{
			Code:     code,
			AirMiles: origin.MilesBetween(coords),
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].AirMiles != candidates[j].AirMiles {
			return candidates[i].AirMiles < candidates[j].AirMiles
		}
		return candidates[i].Code < candidates[j].Code
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}
