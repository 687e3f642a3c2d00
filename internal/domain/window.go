package domain

// WindowKind classifies a facility's cargo operating window for a day.
type WindowKind int

const (
	// WindowUnknown means no hours data was found. Policy is permissive:
	// an unknown window never blocks a flight, since rejecting shipments
	// on missing data is worse than an optimistic accept a human reviews.
	WindowUnknown WindowKind = iota
	WindowOpen24x7
	WindowBounded
	WindowClosed
)

func (k WindowKind) String() string {
	switch k {
	case WindowOpen24x7:
		return "24/7"
	case WindowBounded:
		return "bounded"
	case WindowClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// CargoWindow is a facility's operating window for one date, in local
// facility time. Open > Close denotes an overnight wrap-around window
// (e.g. 22:00-05:00). Open == Close on a bounded window is treated as
// always open.
type CargoWindow struct {
	Kind  WindowKind
	Open  ClockTime
	Close ClockTime

	// Label is the human-readable hours string shown in plan summaries,
	// e.g. "05:00-23:00" or "24/7 (assumed)".
	Label string
}

// AlwaysOpen reports whether the window imposes no time restriction.
func (w CargoWindow) AlwaysOpen() bool {
	switch w.Kind {
	case WindowOpen24x7, WindowUnknown:
		return true
	case WindowBounded:
		return w.Open == w.Close
	}
	return false
}

// PermissiveWindow is the resolver's fallback when no hours data exists.
func PermissiveWindow() CargoWindow {
	return CargoWindow{Kind: WindowUnknown, Label: "24/7 (assumed)"}
}
