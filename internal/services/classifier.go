package services

import (
	"cargo-feasibility-service/internal/domain"
	"time"
)

const (
	// TenderLeadMin is how long before departure freight must be tendered
	// at the origin facility.
	TenderLeadMin = 120

	// RecoveryLagMin is how long after arrival freight becomes available
	// for recovery at the destination facility.
	RecoveryLagMin = 60

	// ReleaseAfterOpenMin pads a next-day recovery to model realistic
	// release processing once the facility opens.
	ReleaseAfterOpenMin = 30
)

// ClassifyInput carries one candidate and the resolved context it is judged
// against. All fields are read-only; Classify is a pure function.
type ClassifyInput struct {
	Flight           domain.FlightCandidate
	Day              domain.DayCode
	Windows          FeasibilityWindows
	MinConnectionMin int
	OriginWindow     domain.CargoWindow
	DestWindow       domain.CargoWindow
	Reliability      *domain.ReliabilityReport
}

// Classify applies the ordered eligibility rule chain to one candidate.
//
// The first failing rule determines the single reported rejection reason,
// so evaluation order is load-bearing: invalid time data, origin facility
// closed at tender time, departs too early, connection too short, arrives
// too late. Origin and destination facility hours are treated
// asymmetrically on purpose: a closed origin blocks tender entirely, a
// closed destination only delays recovery and is reported as an advisory
// note with a transit-time penalty.
func Classify(in ClassifyInput) domain.EligibilityVerdict {
	v := domain.EligibilityVerdict{
		Flight:      in.Flight,
		Day:         in.Day,
		Reliability: in.Reliability,
	}

	if !in.Flight.TimesValid {
		v.Reason = domain.ReasonInvalidTimeData
		return v
	}

	tenderAt := in.Flight.Departure.Add(-TenderLeadMin * time.Minute)
	if !WindowContains(in.OriginWindow, domain.ClockOf(tenderAt)) {
		v.Reason = domain.ReasonOriginClosed
		return v
	}

	if in.Flight.Departure.Before(in.Windows.EarliestDeparture) {
		v.Reason = domain.ReasonTooEarly
		return v
	}

	if in.Flight.ConnectionAirport != domain.DirectConnection &&
		in.Flight.ConnectionMinutes < in.MinConnectionMin {
		v.Reason = domain.ReasonShortConnection
		return v
	}

	if in.Windows.LatestArrival != nil && in.Flight.Arrival.After(*in.Windows.LatestArrival) {
		v.Reason = domain.ReasonArrivesTooLate
		return v
	}

	v.Accepted = true

	recoverAt := in.Flight.Arrival.Add(RecoveryLagMin * time.Minute)
	if !WindowContains(in.DestWindow, domain.ClockOf(recoverAt)) {
		if in.DestWindow.Kind == domain.WindowBounded {
			release := NextOpen(in.DestWindow, recoverAt).Add(ReleaseAfterOpenMin * time.Minute)
			v.RecoveryDelayMinutes = int(release.Sub(recoverAt).Minutes())
		}
		v.Notes = append(v.Notes, domain.NoteRecoveryDelay)
	}

	airMinutes := int(in.Flight.Arrival.Sub(in.Flight.Departure).Minutes())
	v.TotalTransitMinutes = in.Windows.PrepMinutes + airMinutes + in.Windows.PostMinutes + v.RecoveryDelayMinutes

	return v
}
