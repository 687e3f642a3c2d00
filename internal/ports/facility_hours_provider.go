package ports

import (
	"cargo-feasibility-service/internal/domain"
	"context"
)

// Contract for retrieving raw facility-hours strings. The engine parses the
// strings itself; providers only answer "what does the reference data say
// for this airport (and carrier) on this category of day".
//
// The boolean result distinguishes "no row" from an empty hours string.
type FacilityHoursProvider interface {
	// CarrierHours returns the authoritative per-carrier entry, if any.
	CarrierHours(ctx context.Context, airport string, carrier string, category domain.DayCategory) (string, bool, error)

	// AirportHours returns the generic per-airport fallback entry, if any.
	AirportHours(ctx context.Context, airport string, category domain.DayCategory) (string, bool, error)
}
