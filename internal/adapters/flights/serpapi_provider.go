package flights

import (
	"cargo-feasibility-service/internal/domain"
	"cargo-feasibility-service/internal/platform/obs"
	"cargo-feasibility-service/internal/services"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const serpDatetimeLayout = "2006-01-02 15:04"

// Carriers with established cargo programs; the default search is limited
// to these unless the caller asks for all airlines.
var cargoCarriers = map[string]struct{}{
	"Alaska":    {},
	"American":  {},
	"Delta":     {},
	"United":    {},
	"Southwest": {},
}

// SerpFlightProvider searches Google Flights through the SerpApi proxy and
// converts itineraries into flight candidates. Itineraries with more than
// one stop are dropped; ground cargo transfers don't survive double
// connections in practice.
type SerpFlightProvider struct {
	session *http.Client
	baseURL string
	apiKey  string
}

func NewSerpFlightProvider(apiKey string) *SerpFlightProvider {
	return &SerpFlightProvider{
		session: &http.Client{Timeout: 30 * time.Second},
		baseURL: "https://serpapi.com",
		apiKey:  apiKey,
	}
}

type serpAirport struct {
	ID   string `json:"id"`
	Time string `json:"time"`
}

type serpLeg struct {
	DepartureAirport serpAirport `json:"departure_airport"`
	ArrivalAirport   serpAirport `json:"arrival_airport"`
	Duration         int         `json:"duration"`
	Airline          string      `json:"airline"`
	FlightNumber     string      `json:"flight_number"`
}

type serpLayover struct {
	Duration int    `json:"duration"`
	ID       string `json:"id"`
}

type serpItinerary struct {
	Flights       []serpLeg     `json:"flights"`
	Layovers      []serpLayover `json:"layovers"`
	TotalDuration int           `json:"total_duration"`
}

type serpResponse struct {
	Error        string          `json:"error"`
	BestFlights  []serpItinerary `json:"best_flights"`
	OtherFlights []serpItinerary `json:"other_flights"`
}

func (p *SerpFlightProvider) SearchFlights(
	ctx context.Context,
	origin string,
	destination string,
	date time.Time,
	allAirlines bool,
) (_ []domain.FlightCandidate, err error) {
	defer obs.Time(ctx, "serpapi.SearchFlights")(&err)

	if p.apiKey == "" {
		return nil, errors.New("search flights: missing SerpApi key")
	}

	decoded, err := p.fetch(ctx, origin, destination, date)
	if err != nil {
		return nil, err
	}
	if decoded.Error != "" {
		return nil, fmt.Errorf("search flights: api error: %s", decoded.Error)
	}

	itineraries := append(decoded.BestFlights, decoded.OtherFlights...)
	out := make([]domain.FlightCandidate, 0, len(itineraries))
	for _, it := range itineraries {
		candidate, ok := convertItinerary(it, date)
		if !ok {
			continue
		}
		if !allAirlines {
			if _, cargo := cargoCarriers[candidate.Carrier]; !cargo {
				continue
			}
		}
		out = append(out, candidate)
	}

	return out, nil
}

func (p *SerpFlightProvider) fetch(ctx context.Context, origin, destination string, date time.Time) (*serpResponse, error) {
	q := url.Values{}
	q.Set("engine", "google_flights")
	q.Set("departure_id", strings.ToUpper(origin))
	q.Set("arrival_id", strings.ToUpper(destination))
	q.Set("outbound_date", date.Format("2006-01-02"))
	q.Set("type", "2") // one-way
	q.Set("api_key", p.apiKey)

	endpoint := p.baseURL + "/search.json?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("search flights: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search flights: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("search flights: status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var decoded serpResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("search flights: decode response: %w", err)
	}

	return &decoded, nil
}

// convertItinerary flattens a SerpApi itinerary into one candidate. The
// second return is false only when the itinerary shape is unusable (no
// legs, more than one layover); time-parse failures instead yield a
// candidate with TimesValid unset so it surfaces as a rejection.
func convertItinerary(it serpItinerary, searchDate time.Time) (domain.FlightCandidate, bool) {
	if len(it.Flights) == 0 || len(it.Layovers) > 1 {
		return domain.FlightCandidate{}, false
	}

	first := it.Flights[0]
	last := it.Flights[len(it.Flights)-1]

	numbers := make([]string, 0, len(it.Flights))
	for _, leg := range it.Flights {
		numbers = append(numbers, strings.ReplaceAll(leg.FlightNumber, " ", ""))
	}

	c := domain.FlightCandidate{
		Carrier:           first.Airline,
		FlightNumbers:     numbers,
		Origin:            first.DepartureAirport.ID,
		Destination:       last.ArrivalAirport.ID,
		ConnectionAirport: domain.DirectConnection,
		DurationMinutes:   it.TotalDuration,
		TimesValid:        true,
	}

	if len(it.Layovers) == 1 {
		c.ConnectionAirport = it.Layovers[0].ID
		c.ConnectionMinutes = it.Layovers[0].Duration
	}

	dep, _, depErr := parseLegTime(first.DepartureAirport.Time, searchDate)
	arr, arrDated, arrErr := parseLegTime(last.ArrivalAirport.Time, searchDate)
	if depErr != nil || arrErr != nil {
		log.Printf("serpapi: unparseable itinerary times dep=%q arr=%q", first.DepartureAirport.Time, last.ArrivalAirport.Time)
		c.TimesValid = false
		return c, true
	}

	c.Departure = dep
	if arrDated {
		c.Arrival = arr
	} else {
		// Clock-only arrivals need the overnight fixup.
		c.Arrival = services.NormalizeArrival(dep, domain.ClockOf(arr))
	}

	return c, true
}

// parseLegTime handles both full datetimes and bare clock strings; bare
// clocks are anchored on the search date and reported as undated so the
// caller can apply arrival normalization.
func parseLegTime(raw string, searchDate time.Time) (time.Time, bool, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.ParseInLocation(serpDatetimeLayout, raw, searchDate.Location()); err == nil {
		return t, true, nil
	}

	clock, err := domain.ParseClock(raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse leg time %q: %w", raw, err)
	}

	return clock.At(searchDate), false, nil
}
