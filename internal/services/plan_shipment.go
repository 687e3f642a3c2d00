package services

import (
	"cargo-feasibility-service/internal/domain"
	"cargo-feasibility-service/internal/ports"
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"
)

// ErrNoAirportCandidates reports that an address resolved to no known
// airport. Callers branch on it to distinguish a bad address from an
// internal failure.
var ErrNoAirportCandidates = errors.New("no airport candidates")

// estimatedDriveFallback stands in when the drive-metrics collaborator
// fails entirely. The feasibility math requires a numeric duration, so a
// short conservative estimate beats an aborted run.
var estimatedDriveFallback = domain.DriveMetrics{Miles: 20, Minutes: 30, Estimated: true}

type flightFetch struct {
	date    SearchDate
	flights []domain.FlightCandidate
	err     error
}

// PlanResult is the complete output of one feasibility run: the resolved
// geography, the window arithmetic, ranked schedule rows and every
// rejection with its reason.
type PlanResult struct {
	PickupAirport   string
	DeliveryAirport string

	PickupDrive   domain.DriveMetrics
	DeliveryDrive domain.DriveMetrics

	PrepMinutes       int
	PostMinutes       int
	EarliestDeparture time.Time
	LatestArrival     *time.Time

	OriginHoursLabel string
	DestHoursLabel   string

	// Infeasible flags constraints that are contradictory by construction
	// (latest arrival leaves no room for any flight), distinct from the
	// case where simply no candidate matched.
	Infeasible bool

	SearchDates []SearchDate
	Rows        []domain.ScheduleRow
	Rejected    []domain.EligibilityVerdict
}

// PlanShipment runs the full feasibility pipeline for one shipment request:
// airport resolution, drive metrics, date expansion, candidate retrieval,
// classification and aggregation.
//
// Candidate retrieval fans out per search date through a bounded worker
// pool; classification itself is pure and runs after every fetch has
// completed. A failed fetch skips that date rather than aborting the run.
// scorer may be nil when no reliability collaborator is configured.
func PlanShipment(
	ctx context.Context,
	req domain.ShipmentRequest,
	locator ports.AirportLocator,
	drives ports.DriveMetricsProvider,
	flights ports.FlightProvider,
	hours *HoursResolver,
	scorer ports.ReliabilityScorer,
) (*PlanResult, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("plan shipment: %w", err)
	}

	pickupAirports, err := locator.NearestAirports(ctx, req.PickupAddress, 1)
	if err != nil {
		return nil, fmt.Errorf("plan shipment: locate pickup airport for %q: %w", req.PickupAddress, err)
	}
	deliveryAirports, err := locator.NearestAirports(ctx, req.DeliveryAddress, 1)
	if err != nil {
		return nil, fmt.Errorf("plan shipment: locate delivery airport for %q: %w", req.DeliveryAddress, err)
	}
	if len(pickupAirports) == 0 || len(deliveryAirports) == 0 {
		return nil, fmt.Errorf("plan shipment: route %q -> %q: %w", req.PickupAddress, req.DeliveryAddress, ErrNoAirportCandidates)
	}

	originCode := pickupAirports[0].Code
	destCode := deliveryAirports[0].Code

	pickupDrive := driveOrEstimate(ctx, drives, req.PickupAddress, originCode)
	deliveryDrive := driveOrEstimate(ctx, drives, destCode, req.DeliveryAddress)

	var searchDates []SearchDate
	if req.Mode == domain.OneTimeShipment {
		base := time.Date(req.PickupDate.Year(), req.PickupDate.Month(), req.PickupDate.Day(), 0, 0, 0, 0, req.PickupDate.Location())
		searchDates = []SearchDate{{Day: domain.OneTime, Date: base}}
	} else {
		// PickupDate anchors the weekly expansion ("search from" date).
		searchDates = ExpandWeekdays(req.Days, req.PickupDate)
	}
	if len(searchDates) == 0 {
		return nil, fmt.Errorf("plan shipment: no search dates for request")
	}

	baseWindows := ComputeWindows(req, pickupDrive, deliveryDrive, searchDates[0].Date)

	// Fetch candidates for all search dates concurrently; classification
	// stays sequential and pure once the fetch phase completes.
	sem := make(chan struct{}, 4)
	fetches := make(chan flightFetch, len(searchDates))
	var wg sync.WaitGroup

	for _, sd := range searchDates {
		wg.Add(1)
		go func(sd SearchDate) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			found, err := flights.SearchFlights(ctx, originCode, destCode, sd.Date, req.AllAirlines)
			fetches <- flightFetch{date: sd, flights: found, err: err}
		}(sd)
	}

	wg.Wait()
	close(fetches)

	byDate := make(map[string]flightFetch, len(searchDates))
	for f := range fetches {
		if f.err != nil {
			log.Printf("flight search failed: date=%s err=%v", f.date.Date.Format("2006-01-02"), f.err)
			continue
		}
		byDate[f.date.Date.Format("2006-01-02")] = f
	}

	result := &PlanResult{
		PickupAirport:     originCode,
		DeliveryAirport:   destCode,
		PickupDrive:       pickupDrive,
		DeliveryDrive:     deliveryDrive,
		PrepMinutes:       baseWindows.PrepMinutes,
		PostMinutes:       baseWindows.PostMinutes,
		EarliestDeparture: baseWindows.EarliestDeparture,
		LatestArrival:     baseWindows.LatestArrival,
		OriginHoursLabel:  hours.Resolve(ctx, originCode, "", searchDates[0].Date).Label,
		DestHoursLabel:    hours.Resolve(ctx, destCode, "", searchDates[0].Date).Label,
		Infeasible:        baseWindows.InfeasibleByConstruction(MinFlightMinutes),
		SearchDates:       searchDates,
	}

	// Reliability is a property of the flight number, not of the search
	// date, so one run scores each number at most once.
	scores := make(map[string]*domain.ReliabilityReport)

	var accepted []domain.EligibilityVerdict
	for _, sd := range searchDates {
		fetch, ok := byDate[sd.Date.Format("2006-01-02")]
		if !ok {
			continue
		}

		// Windows are recomputed per date: the deadline is relative to
		// each search date plus the transit offset.
		windows := ComputeWindows(req, pickupDrive, deliveryDrive, sd.Date)

		for _, flight := range fetch.flights {
			verdict := Classify(ClassifyInput{
				Flight:           flight,
				Day:              sd.Day,
				Windows:          windows,
				MinConnectionMin: req.Buffers.MinConnectionMin,
				OriginWindow:     hours.Resolve(ctx, originCode, flight.Carrier, sd.Date),
				DestWindow:       hours.Resolve(ctx, destCode, flight.Carrier, sd.Date),
				Reliability:      scoreFlight(ctx, scorer, scores, flight, destCode),
			})

			if verdict.Accepted {
				accepted = append(accepted, verdict)
			} else {
				result.Rejected = append(result.Rejected, verdict)
			}
		}
	}

	result.Rows = Aggregate(accepted)
	return result, nil
}

func driveOrEstimate(ctx context.Context, drives ports.DriveMetricsProvider, origin, destination string) domain.DriveMetrics {
	metrics, err := drives.GetDriveMetrics(ctx, origin, destination)
	if err != nil {
		log.Printf("drive metrics failed: from=%q to=%q err=%v (using estimate)", origin, destination, err)
		return estimatedDriveFallback
	}
	return metrics
}

// scoreFlight consults the optional reliability collaborator, memoized per
// flight number for the run. Scoring failures are advisory-only and never
// block classification; a failure is memoized too so a dead upstream is
// hit once, not once per search date.
func scoreFlight(
	ctx context.Context,
	scorer ports.ReliabilityScorer,
	memo map[string]*domain.ReliabilityReport,
	flight domain.FlightCandidate,
	destCode string,
) *domain.ReliabilityReport {
	if scorer == nil || len(flight.FlightNumbers) == 0 {
		return nil
	}

	number := flight.FlightNumbers[0]
	if report, ok := memo[number]; ok {
		return report
	}

	report, err := scorer.Score(ctx, number, destCode)
	if err != nil {
		log.Printf("reliability score failed: flight=%s err=%v", number, err)
		memo[number] = nil
		return nil
	}

	memo[number] = &report
	return memo[number]
}
