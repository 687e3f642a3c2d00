package services

import (
	"cargo-feasibility-service/internal/domain"
	"time"
)

// SearchDate is one concrete calendar date to search flights for, tagged
// with the day-of-operation it represents.
type SearchDate struct {
	Day  domain.DayCode
	Date time.Time
}

// ExpandWeekdays maps a weekly day-of-week selection to concrete dates: for
// each selected weekday, the next occurrence strictly after today. When the
// selected weekday equals today's, the date rolls forward a full week.
//
// Output is one entry per distinct selected day in canonical Mon..Sun order
// regardless of input order. Pure function of today and the selection.
func ExpandWeekdays(days []domain.DayCode, today time.Time) []SearchDate {
	selected := make(map[domain.DayCode]struct{}, len(days))
	for _, d := range days {
		if d >= domain.Monday && d <= domain.Sunday {
			selected[d] = struct{}{}
		}
	}

	uniq := make([]domain.DayCode, 0, len(selected))
	for d := range selected {
		uniq = append(uniq, d)
	}
	domain.SortDayCodes(uniq)

	base := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	todayCode := domain.DayCodeOf(today)

	out := make([]SearchDate, 0, len(uniq))
	for _, d := range uniq {
		delta := (int(d) - int(todayCode) + 7) % 7
		if delta == 0 {
			delta = 7
		}
		out = append(out, SearchDate{Day: d, Date: base.AddDate(0, 0, delta)})
	}

	return out
}
