package ports

import (
	"cargo-feasibility-service/internal/domain"
	"context"
)

// Contract for the optional flight-reliability collaborator. Scores feed
// ranking and advisory notes only; the classifier never rejects on them.
type ReliabilityScorer interface {
	Score(ctx context.Context, flightNumber string, destinationAirport string) (domain.ReliabilityReport, error)
}
