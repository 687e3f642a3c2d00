package domain

import (
	"strings"
	"time"
)

// DirectConnection is the sentinel connection airport for nonstop flights.
const DirectConnection = "Direct"

// FlightCandidate is one candidate air leg produced by the flight-search
// collaborator. Departure and Arrival carry full dates so overnight
// arrivals are unambiguous; feeds that only supply clock times must be
// normalized (services.NormalizeArrival) before classification.
type FlightCandidate struct {
	Carrier       string
	FlightNumbers []string

	Origin      string
	Destination string

	Departure time.Time
	Arrival   time.Time

	// ConnectionAirport is DirectConnection for nonstops.
	ConnectionAirport string
	ConnectionMinutes int

	DurationMinutes int

	// TimesValid is false when the feed's departure or arrival times could
	// not be parsed. Such candidates are rejected with a distinct reason
	// instead of crashing or silently passing classification.
	TimesValid bool
}

// FlightLabel renders the flight-number sequence ("UA123 / UA456").
func (f FlightCandidate) FlightLabel() string {
	return strings.Join(f.FlightNumbers, " / ")
}

// ReliabilityReport is the optional risk assessment from the
// weather/reliability collaborator. It feeds ranking and advisory notes
// only; it is never a rejection input.
type ReliabilityReport struct {
	Score       int
	Status      string
	RiskFactors []string
}
