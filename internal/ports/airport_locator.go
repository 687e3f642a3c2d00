package ports

import "context"

// AirportDistance pairs an airport code with its straight-line distance
// from a searched address.
type AirportDistance struct {
	Code     string
	AirMiles float64
}

// Contract for resolving a street address (or airport code) to nearby
// airports, closest first.
type AirportLocator interface {
	NearestAirports(ctx context.Context, address string, limit int) ([]AirportDistance, error)
}
