package ports

import (
	"cargo-feasibility-service/internal/domain"
	"context"
	"time"
)

// Contract for retrieving candidate flights between two airports on a date.
// Providers must return full date-time departure/arrival values; feeds that
// only carry clock times apply arrival normalization before returning.
type FlightProvider interface {
	SearchFlights(ctx context.Context, origin string, destination string, date time.Time, allAirlines bool) ([]domain.FlightCandidate, error)
}
