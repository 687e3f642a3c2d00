package api

import (
	"cargo-feasibility-service/internal/api/handlers"
	"cargo-feasibility-service/internal/ports"
	"cargo-feasibility-service/internal/services"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	locator ports.AirportLocator,
	drives ports.DriveMetricsProvider,
	flights ports.FlightProvider,
	hours *services.HoursResolver,
	scorer ports.ReliabilityScorer,
) http.Handler {
	mux := http.NewServeMux()

	feasibilityHandler := &handlers.FeasibilityHandler{
		Locator: locator,
		Drives:  drives,
		Flights: flights,
		Hours:   hours,
		Scorer:  scorer,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/feasibility", feasibilityHandler.Feasibility)

	return loggingMiddleware(mux)
}
