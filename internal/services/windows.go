package services

import (
	"cargo-feasibility-service/internal/domain"
	"time"
)

// FixedHandlingMin is the mandatory tender/recovery processing time at each
// end of the air leg. It models fixed carrier dock handling and is
// deliberately not configurable, unlike the user-tunable drive buffers.
const FixedHandlingMin = 60

// MinFlightMinutes is the shortest plausible air leg used by the
// infeasible-by-construction diagnostic.
const MinFlightMinutes = 60

// FeasibilityWindows bounds the air leg for one search date.
type FeasibilityWindows struct {
	// EarliestDeparture is the first instant a flight may depart after
	// pickup, ground transfer and tender handling.
	EarliestDeparture time.Time

	// LatestArrival is the last acceptable arrival instant, nil when the
	// shipment has no delivery deadline.
	LatestArrival *time.Time

	PrepMinutes int
	PostMinutes int
}

// ComputeWindows derives the departure/arrival bounds for a shipment on one
// search base date.
//
// Prep = max(pickup drive, pickup buffer) + fixed handling; the earliest
// departure is pickup-ready plus prep. Post is the mirror on the delivery
// side; the latest arrival is the deadline (base date + transit offset)
// minus post, present only when a deadline is set.
func ComputeWindows(req domain.ShipmentRequest, pickupDrive, deliveryDrive domain.DriveMetrics, baseDate time.Time) FeasibilityWindows {
	prep := maxInt(pickupDrive.Minutes, req.Buffers.PickupDriveMin) + FixedHandlingMin
	post := maxInt(deliveryDrive.Minutes, req.Buffers.DeliveryDriveMin) + FixedHandlingMin

	w := FeasibilityWindows{
		EarliestDeparture: req.PickupReady.At(baseDate).Add(time.Duration(prep) * time.Minute),
		PrepMinutes:       prep,
		PostMinutes:       post,
	}

	if req.Deadline != nil {
		deadline := req.Deadline.Time.At(baseDate.AddDate(0, 0, req.Deadline.OffsetDays))
		latest := deadline.Add(-time.Duration(post) * time.Minute)
		w.LatestArrival = &latest
	}

	return w
}

// InfeasibleByConstruction reports whether the windows leave no room for
// any flight of at least minFlightMinutes. This is a diagnostic for the
// caller, not a precondition: classification still runs, so "your
// constraints are contradictory" can be surfaced distinctly from "no
// service exists".
func (w FeasibilityWindows) InfeasibleByConstruction(minFlightMinutes int) bool {
	if w.LatestArrival == nil {
		return false
	}
	return w.LatestArrival.Sub(w.EarliestDeparture) < time.Duration(minFlightMinutes)*time.Minute
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
