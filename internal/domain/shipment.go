package domain

import (
	"errors"
	"fmt"
	"time"
)

// RecurrenceMode distinguishes an ad-hoc single shipment from a weekly
// repeating pattern.
type RecurrenceMode int

const (
	OneTimeShipment RecurrenceMode = iota
	WeeklyShipment
)

// BufferConfig holds the user-tunable minute floors applied to ground legs
// and connections. Buffers act as floors over the actual drive duration,
// never as replacements for it.
type BufferConfig struct {
	PickupDriveMin   int
	DeliveryDriveMin int
	MinConnectionMin int
}

// DeliveryDeadline is an optional hard arrival constraint. OffsetDays is
// the number of calendar days between the pickup date and the deadline
// date (0 = same day).
type DeliveryDeadline struct {
	Time       ClockTime
	OffsetDays int
}

// ShipmentRequest describes one door-to-door ground-air-ground shipment.
// It is supplied once per feasibility run and is immutable thereafter.
type ShipmentRequest struct {
	PickupAddress   string
	DeliveryAddress string

	PickupDate  time.Time
	PickupReady ClockTime
	Deadline    *DeliveryDeadline

	Mode RecurrenceMode
	// Days is the weekly day-of-week selection; ignored for one-time mode.
	Days []DayCode

	Buffers BufferConfig

	// AllAirlines widens the candidate search beyond cargo-friendly
	// carriers. Filtering happens at the flight-candidate collaborator.
	AllAirlines bool
}

// Validate enforces the caller's construction contract. Violations here are
// programmer errors, not runtime conditions the engine recovers from.
func (r ShipmentRequest) Validate() error {
	if r.PickupAddress == "" {
		return errors.New("shipment request: pickup address must be non-empty")
	}
	if r.DeliveryAddress == "" {
		return errors.New("shipment request: delivery address must be non-empty")
	}

	if r.Deadline != nil && r.Deadline.OffsetDays < 0 {
		return fmt.Errorf("shipment request: transit offset must be >= 0, got %d", r.Deadline.OffsetDays)
	}

	if r.Mode == WeeklyShipment && len(r.Days) == 0 {
		return errors.New("shipment request: weekly mode requires at least one day")
	}

	for _, d := range r.Days {
		if d < Monday || d > Sunday {
			return fmt.Errorf("shipment request: invalid day selection %v", d)
		}
	}

	return nil
}
