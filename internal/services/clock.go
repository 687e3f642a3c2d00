package services

import (
	"cargo-feasibility-service/internal/domain"
	"time"
)

// InRange reports whether clock time t falls inside [open, close].
// open == close is the always-open sentinel (24/7). open > close denotes an
// overnight wrap-around window, accepted when t >= open OR t <= close.
func InRange(t, open, close domain.ClockTime) bool {
	if open == close {
		return true
	}
	if open < close {
		return open <= t && t <= close
	}
	return t >= open || t <= close
}

// WindowContains applies InRange to a resolved cargo window, honoring the
// window kind. Unknown windows are permissive.
func WindowContains(w domain.CargoWindow, t domain.ClockTime) bool {
	switch w.Kind {
	case domain.WindowUnknown, domain.WindowOpen24x7:
		return true
	case domain.WindowClosed:
		return false
	}
	return InRange(t, w.Open, w.Close)
}

// NormalizeArrival resolves a clock-only arrival time against a full
// departure instant. When the arrival clock precedes the departure clock the
// arrival date advances one day. This assumes no flight spans more than 24
// hours; some feeds only carry clock times on the arrival side, so elapsed
// duration cannot be re-derived.
func NormalizeArrival(dep time.Time, arr domain.ClockTime) time.Time {
	arrived := arr.At(dep)
	if arr < domain.ClockOf(dep) {
		arrived = arrived.AddDate(0, 0, 1)
	}
	return arrived
}

// NextOpen returns the first instant at or after from when the window is
// open, wrap-around aware. Windows without a concrete opening time (24/7,
// unknown, closed) return from unchanged.
func NextOpen(w domain.CargoWindow, from time.Time) time.Time {
	if w.Kind != domain.WindowBounded || w.Open == w.Close {
		return from
	}
	if InRange(domain.ClockOf(from), w.Open, w.Close) {
		return from
	}

	next := w.Open.At(from)
	if next.Before(from) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
