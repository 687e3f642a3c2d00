package repositories

import (
	"cargo-feasibility-service/internal/domain"
	"cargo-feasibility-service/internal/ports"
	"context"
	"log"
	"strings"
)

// defaultAirportHours holds simplified per-airport cargo windows in local
// time. Airports without an entry resolve to the permissive default
// upstream. These are airport-level hours; carrier-specific overrides come
// from the database when one is configured.
var defaultAirportHours = map[string]string{
	"SEA": "05:00-23:00",
	"PDX": "05:00-22:30",
	"SFO": "04:30-23:30",
	"LAX": "05:00-23:59",
	"ORD": "04:30-23:30",
	"DFW": "05:00-23:30",
	"JFK": "05:00-23:30",
	"ATL": "05:00-23:00",
	"MIA": "05:00-23:00",
	"CLT": "05:00-22:30",
	"MEM": "05:00-23:30",
	"CVG": "05:00-23:00",
	"DEN": "05:00-23:00",
	"PHX": "05:00-23:00",
	"IAH": "05:00-23:30",
	"BOS": "05:00-22:30",
	"EWR": "05:00-23:00",
	"MCO": "05:00-23:00",
	"LGA": "05:00-22:00",
	"DTW": "05:00-22:30",
	"MSP": "05:00-22:30",
	"SLC": "05:00-22:30",
}

// StaticHoursProvider serves the built-in airport hours table. It carries
// no carrier-specific entries and ignores the day category; the built-in
// table publishes one window per airport.
type StaticHoursProvider struct {
	hours map[string]string
}

func NewStaticHoursProvider() *StaticHoursProvider {
	return &StaticHoursProvider{hours: defaultAirportHours}
}

func (p *StaticHoursProvider) CarrierHours(context.Context, string, string, domain.DayCategory) (string, bool, error) {
	return "", false, nil
}

func (p *StaticHoursProvider) AirportHours(_ context.Context, airport string, _ domain.DayCategory) (string, bool, error) {
	h, ok := p.hours[strings.ToUpper(strings.TrimSpace(airport))]
	return h, ok, nil
}

// FallbackHoursProvider consults a primary source and falls back to a
// secondary on a miss or a fault, so an empty or unreachable hours table
// still answers with the built-in reference data.
type FallbackHoursProvider struct {
	primary   ports.FacilityHoursProvider
	secondary ports.FacilityHoursProvider
}

func NewFallbackHoursProvider(primary, secondary ports.FacilityHoursProvider) *FallbackHoursProvider {
	return &FallbackHoursProvider{primary: primary, secondary: secondary}
}

func (p *FallbackHoursProvider) CarrierHours(
	ctx context.Context,
	airport string,
	carrier string,
	category domain.DayCategory,
) (string, bool, error) {
	raw, found, err := p.primary.CarrierHours(ctx, airport, carrier, category)
	if err != nil {
		log.Printf("hours primary failed: airport=%s carrier=%s err=%v (using fallback)", airport, carrier, err)
	} else if found {
		return raw, true, nil
	}
	return p.secondary.CarrierHours(ctx, airport, carrier, category)
}

func (p *FallbackHoursProvider) AirportHours(
	ctx context.Context,
	airport string,
	category domain.DayCategory,
) (string, bool, error) {
	raw, found, err := p.primary.AirportHours(ctx, airport, category)
	if err != nil {
		log.Printf("hours primary failed: airport=%s err=%v (using fallback)", airport, err)
	} else if found {
		return raw, true, nil
	}
	return p.secondary.AirportHours(ctx, airport, category)
}
