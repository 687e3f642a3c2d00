package ports

import (
	"cargo-feasibility-service/internal/domain"
	"context"
)

// Contract for retrieving road distance and drive duration between a street
// address and an airport (either direction). Implementations must return a
// usable estimate rather than failing when routing data is unavailable; the
// feasibility math requires a numeric duration to proceed.
type DriveMetricsProvider interface {
	// Return drive metrics between two locations (addresses or airport codes).
	GetDriveMetrics(ctx context.Context, origin string, destination string) (domain.DriveMetrics, error)
}
