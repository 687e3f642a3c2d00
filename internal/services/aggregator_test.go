package services

import (
	"cargo-feasibility-service/internal/domain"
	"reflect"
	"testing"
	"time"
)

func acceptedVerdict(day domain.DayCode, date time.Time, depClock, arrClock string, transit int, t *testing.T) domain.EligibilityVerdict {
	t.Helper()

	dep := clock(t, depClock).At(date)
	arr := NormalizeArrival(dep, clock(t, arrClock))

	return domain.EligibilityVerdict{
		Flight: domain.FlightCandidate{
			Carrier:           "AA",
			FlightNumbers:     []string{"AA210"},
			Origin:            "SEA",
			Destination:       "MIA",
			Departure:         dep,
			Arrival:           arr,
			ConnectionAirport: domain.DirectConnection,
			TimesValid:        true,
		},
		Day:                 day,
		Accepted:            true,
		TotalTransitMinutes: transit,
	}
}

func TestAggregateGroupsSameServiceAcrossDates(t *testing.T) {
	mon := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	thu := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	verdicts := []domain.EligibilityVerdict{
		acceptedVerdict(domain.Thursday, thu, "13:10", "21:45", 700, t),
		acceptedVerdict(domain.Monday, mon, "13:10", "21:45", 700, t),
	}

	rows := Aggregate(verdicts)
	if len(rows) != 1 {
		t.Fatalf("expected 1 merged row, got %d", len(rows))
	}

	wantDays := []domain.DayCode{domain.Monday, domain.Thursday}
	if !reflect.DeepEqual(rows[0].Days, wantDays) {
		t.Fatalf("days = %v, want %v", rows[0].Days, wantDays)
	}

	if rows[0].DepartureClock.String() != "13:10" || rows[0].ArrivalClock.String() != "21:45" {
		t.Fatalf("row clocks = %s/%s", rows[0].DepartureClock, rows[0].ArrivalClock)
	}
}

func TestAggregateSplitsOnDifferentClockTimes(t *testing.T) {
	mon := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	thu := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	verdicts := []domain.EligibilityVerdict{
		acceptedVerdict(domain.Monday, mon, "13:10", "21:45", 700, t),
		acceptedVerdict(domain.Thursday, thu, "14:10", "22:45", 700, t),
	}

	if rows := Aggregate(verdicts); len(rows) != 2 {
		t.Fatalf("expected 2 rows for distinct services, got %d", len(rows))
	}
}

func TestAggregateSortsByTransitThenReliability(t *testing.T) {
	mon := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	slow := acceptedVerdict(domain.Monday, mon, "08:10", "18:45", 900, t)
	slow.Flight.FlightNumbers = []string{"AA1"}

	fast := acceptedVerdict(domain.Monday, mon, "13:10", "19:45", 700, t)
	fast.Flight.FlightNumbers = []string{"AA2"}

	risky := acceptedVerdict(domain.Monday, mon, "09:10", "15:45", 700, t)
	risky.Flight.FlightNumbers = []string{"AA3"}
	risky.Reliability = &domain.ReliabilityReport{Score: 40}

	safe := acceptedVerdict(domain.Monday, mon, "10:10", "16:45", 700, t)
	safe.Flight.FlightNumbers = []string{"AA4"}
	safe.Reliability = &domain.ReliabilityReport{Score: 95}

	rows := Aggregate([]domain.EligibilityVerdict{slow, fast, risky, safe})
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}

	got := []string{
		rows[0].FlightNumbers[0],
		rows[1].FlightNumbers[0],
		rows[2].FlightNumbers[0],
		rows[3].FlightNumbers[0],
	}
	// 700-minute ties sort by reliability descending (95, 40, none), the
	// 900-minute row last.
	want := []string{"AA4", "AA3", "AA2", "AA1"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("row order = %v, want %v", got, want)
	}
}

func TestAggregateIgnoresRejections(t *testing.T) {
	mon := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	rejected := acceptedVerdict(domain.Monday, mon, "13:10", "21:45", 700, t)
	rejected.Accepted = false
	rejected.Reason = domain.ReasonTooEarly

	if rows := Aggregate([]domain.EligibilityVerdict{rejected}); len(rows) != 0 {
		t.Fatalf("rejected verdicts must not produce rows, got %d", len(rows))
	}
}

func TestAggregateKeepsBestCaseTransitAndUnionsNotes(t *testing.T) {
	mon := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	sat := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)

	weekday := acceptedVerdict(domain.Monday, mon, "13:10", "21:45", 700, t)

	weekend := acceptedVerdict(domain.Saturday, sat, "13:10", "21:45", 1210, t)
	weekend.RecoveryDelayMinutes = 510
	weekend.Notes = []string{domain.NoteRecoveryDelay}

	rows := Aggregate([]domain.EligibilityVerdict{weekend, weekday})
	if len(rows) != 1 {
		t.Fatalf("expected 1 merged row, got %d", len(rows))
	}
	if rows[0].TotalTransitMinutes != 700 {
		t.Fatalf("merged transit = %d, want best-case 700", rows[0].TotalTransitMinutes)
	}
	if len(rows[0].Notes) != 1 || rows[0].Notes[0] != domain.NoteRecoveryDelay {
		t.Fatalf("merged notes = %v", rows[0].Notes)
	}
}
