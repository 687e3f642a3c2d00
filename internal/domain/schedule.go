package domain

// ScheduleRow is one recurring flight service: accepted candidates sharing
// (carrier, flight-number sequence, departure clock, arrival clock) across
// search dates, collapsed with the union of their operating days.
type ScheduleRow struct {
	Carrier       string
	FlightNumbers []string

	Origin      string
	Destination string

	DepartureClock ClockTime
	ArrivalClock   ClockTime

	// Days is sorted canonically Mon..Sun with One-Time last.
	Days []DayCode

	ConnectionAirport string
	ConnectionMinutes int

	DurationMinutes     int
	TotalTransitMinutes int

	// ReliabilityScore is -1 when the risk collaborator supplied nothing.
	ReliabilityScore int
	Notes            []string
}
