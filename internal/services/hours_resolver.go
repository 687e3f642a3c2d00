package services

import (
	"cargo-feasibility-service/internal/domain"
	"cargo-feasibility-service/internal/ports"
	"context"
	"log"
	"strings"
	"sync"
	"time"
)

// closedVocabulary marks hours strings that mean "no cargo operation".
var closedVocabulary = []string{"closed", "no cargo", "n/a", "unavailable"}

// ParseHours converts a raw facility-hours string into a CargoWindow.
//
// A parseable "HH:MM-HH:MM" range wins over sentinel vocabulary so that
// bounded windows whose digits happen to contain "24" are not misread as
// around-the-clock operation. Unparsable strings resolve to the permissive
// unknown window, never to a rejection.
func ParseHours(raw string) domain.CargoWindow {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return domain.PermissiveWindow()
	}

	lower := strings.ToLower(trimmed)
	for _, word := range closedVocabulary {
		if strings.Contains(lower, word) {
			return domain.CargoWindow{Kind: domain.WindowClosed, Label: trimmed}
		}
	}

	if open, close, ok := parseHoursRange(trimmed); ok {
		return domain.CargoWindow{
			Kind:  domain.WindowBounded,
			Open:  open,
			Close: close,
			Label: trimmed,
		}
	}

	if strings.Contains(lower, "24") || strings.Contains(lower, "daily") {
		return domain.CargoWindow{Kind: domain.WindowOpen24x7, Label: trimmed}
	}

	return domain.PermissiveWindow()
}

func parseHoursRange(s string) (open, close domain.ClockTime, ok bool) {
	normalized := strings.ReplaceAll(s, "–", "-")
	parts := strings.SplitN(normalized, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}

	open, err := domain.ParseClock(parts[0])
	if err != nil {
		return 0, 0, false
	}
	close, err = domain.ParseClock(parts[1])
	if err != nil {
		return 0, 0, false
	}

	return open, close, true
}

type hoursKey struct {
	airport string
	carrier string
	date    string
}

// HoursResolver resolves an airport+carrier operating window for a date,
// memoizing lookups per run so the reference data is consulted once per
// (airport, carrier, date). The memo uses a mutex so classification for
// several search dates can share one resolver; there is no eviction, the
// resolver is discarded with the run.
type HoursResolver struct {
	provider ports.FacilityHoursProvider

	mu   sync.Mutex
	memo map[hoursKey]domain.CargoWindow
}

func NewHoursResolver(provider ports.FacilityHoursProvider) *HoursResolver {
	return &HoursResolver{
		provider: provider,
		memo:     make(map[hoursKey]domain.CargoWindow),
	}
}

// Resolve walks the fallback chain: authoritative per-carrier entry, then
// the generic per-airport table, then the permissive unknown default.
// Provider faults degrade to the permissive default rather than erroring;
// missing hours data must never silently reject a flight.
func (r *HoursResolver) Resolve(ctx context.Context, airport, carrier string, date time.Time) domain.CargoWindow {
	airport = strings.ToUpper(strings.TrimSpace(airport))
	carrier = strings.ToUpper(strings.TrimSpace(carrier))

	key := hoursKey{airport: airport, carrier: carrier, date: date.Format("2006-01-02")}

	r.mu.Lock()
	cached, ok := r.memo[key]
	r.mu.Unlock()
	if ok {
		return cached
	}

	window := r.lookup(ctx, airport, carrier, domain.CategoryOf(date))

	r.mu.Lock()
	r.memo[key] = window
	r.mu.Unlock()

	return window
}

func (r *HoursResolver) lookup(ctx context.Context, airport, carrier string, category domain.DayCategory) domain.CargoWindow {
	if r.provider == nil {
		return domain.PermissiveWindow()
	}

	if carrier != "" {
		raw, found, err := r.provider.CarrierHours(ctx, airport, carrier, category)
		if err != nil {
			log.Printf("hours lookup failed: airport=%s carrier=%s err=%v", airport, carrier, err)
		} else if found {
			return ParseHours(raw)
		}
	}

	raw, found, err := r.provider.AirportHours(ctx, airport, category)
	if err != nil {
		log.Printf("hours lookup failed: airport=%s err=%v", airport, err)
	} else if found {
		return ParseHours(raw)
	}

	return domain.PermissiveWindow()
}
