package ports

import (
	"cargo-feasibility-service/internal/domain"
	"context"
)

// Contract for resolving a free-form address to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (domain.Coordinates, error)
}
