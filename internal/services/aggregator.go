package services

import (
	"cargo-feasibility-service/internal/domain"
	"slices"
	"strings"
)

// Aggregate collapses accepted verdicts into schedule rows and ranks them.
//
// Candidates from different search dates are the same service iff carrier,
// flight-number sequence, departure clock time and arrival clock time all
// match; such candidates merge into one row carrying the union of their
// operating days. Rejected verdicts are ignored here; callers report them
// separately.
//
// Rows are ordered by total transit minutes ascending, ties broken by
// reliability score descending, then by carrier and flight label for
// deterministic output.
func Aggregate(verdicts []domain.EligibilityVerdict) []domain.ScheduleRow {
	type group struct {
		row  domain.ScheduleRow
		days map[domain.DayCode]struct{}
	}

	groups := make(map[string]*group)
	order := make([]string, 0, len(verdicts))

	for _, v := range verdicts {
		if !v.Accepted {
			continue
		}

		f := v.Flight
		key := strings.Join([]string{
			f.Carrier,
			f.FlightLabel(),
			domain.ClockOf(f.Departure).String(),
			domain.ClockOf(f.Arrival).String(),
		}, "|")

		g, ok := groups[key]
		if !ok {
			score := -1
			if v.Reliability != nil {
				score = v.Reliability.Score
			}

			g = &group{
				row: domain.ScheduleRow{
					Carrier:             f.Carrier,
					FlightNumbers:       slices.Clone(f.FlightNumbers),
					Origin:              f.Origin,
					Destination:         f.Destination,
					DepartureClock:      domain.ClockOf(f.Departure),
					ArrivalClock:        domain.ClockOf(f.Arrival),
					ConnectionAirport:   f.ConnectionAirport,
					ConnectionMinutes:   f.ConnectionMinutes,
					DurationMinutes:     f.DurationMinutes,
					TotalTransitMinutes: v.TotalTransitMinutes,
					ReliabilityScore:    score,
				},
				days: make(map[domain.DayCode]struct{}),
			}
			groups[key] = g
			order = append(order, key)
		}

		g.days[v.Day] = struct{}{}

		// Keep the best-case transit time when dates disagree (recovery
		// delays can differ by day category).
		if v.TotalTransitMinutes < g.row.TotalTransitMinutes {
			g.row.TotalTransitMinutes = v.TotalTransitMinutes
		}

		for _, note := range v.Notes {
			if !slices.Contains(g.row.Notes, note) {
				g.row.Notes = append(g.row.Notes, note)
			}
		}
	}

	rows := make([]domain.ScheduleRow, 0, len(groups))
	for _, key := range order {
		g := groups[key]

		days := make([]domain.DayCode, 0, len(g.days))
		for d := range g.days {
			days = append(days, d)
		}
		domain.SortDayCodes(days)
		g.row.Days = days

		rows = append(rows, g.row)
	}

	slices.SortStableFunc(rows, func(a, b domain.ScheduleRow) int {
		if a.TotalTransitMinutes != b.TotalTransitMinutes {
			return a.TotalTransitMinutes - b.TotalTransitMinutes
		}
		if a.ReliabilityScore != b.ReliabilityScore {
			return b.ReliabilityScore - a.ReliabilityScore
		}
		if c := strings.Compare(a.Carrier, b.Carrier); c != 0 {
			return c
		}
		return strings.Compare(strings.Join(a.FlightNumbers, "/"), strings.Join(b.FlightNumbers, "/"))
	})

	return rows
}
