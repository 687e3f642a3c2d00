package domain

// RejectReason is the single reported cause for an ineligible flight.
// Rule evaluation order in the classifier is significant: the first failing
// rule determines the reason.
type RejectReason int

const (
	ReasonNone RejectReason = iota
	ReasonInvalidTimeData
	ReasonOriginClosed
	ReasonTooEarly
	ReasonShortConnection
	ReasonArrivesTooLate
)

func (r RejectReason) String() string {
	switch r {
	case ReasonInvalidTimeData:
		return "Invalid Time Data"
	case ReasonOriginClosed:
		return "Origin Closed"
	case ReasonTooEarly:
		return "Too Early"
	case ReasonShortConnection:
		return "Short Connection"
	case ReasonArrivesTooLate:
		return "Arrives Too Late"
	default:
		return ""
	}
}

// NoteRecoveryDelay flags an accepted flight whose freight cannot be
// recovered until the destination facility next opens.
const NoteRecoveryDelay = "Recovery Delay"

// EligibilityVerdict is the classifier's outcome for one candidate on one
// search date.
type EligibilityVerdict struct {
	Flight FlightCandidate
	Day    DayCode

	Accepted bool
	Reason   RejectReason

	// Populated for accepted flights only.
	TotalTransitMinutes  int
	RecoveryDelayMinutes int
	Notes                []string

	// Reliability is threaded through from the optional risk-scoring
	// collaborator when available.
	Reliability *ReliabilityReport
}
