package domain

// DriveMetrics describes one ground leg (door to airport or airport to
// door). Immutable once computed; passed by value into the engine.
// Only Minutes participates in feasibility math; Miles is presentation.
type DriveMetrics struct {
	Miles   float64
	Minutes int

	// Estimated marks metrics derived from a geodesic fallback rather
	// than a routing engine.
	Estimated bool
}
