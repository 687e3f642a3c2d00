package reliability

import (
	"cargo-feasibility-service/internal/domain"
	"cargo-feasibility-service/internal/platform/obs"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	StatusGo      = "GO / GREEN"
	StatusCaution = "CAUTION / YELLOW"
	StatusNoGo    = "NO-GO / RED"
)

// AvEdgeScorer assesses flight reliability from two sources: the Aviation
// Edge flight-status feed and the destination's terminal aerodrome forecast
// from the Aviation Weather Center. A dead flight zeroes the score; weather
// phenomena subtract from it.
type AvEdgeScorer struct {
	session   *http.Client
	avedgeURL string
	awcURL    string
	apiKey    string
}

func NewAvEdgeScorer(apiKey string) *AvEdgeScorer {
	return &AvEdgeScorer{
		session:   &http.Client{Timeout: 10 * time.Second},
		avedgeURL: "https://aviation-edge.com/v2/public/flights",
		awcURL:    "https://aviationweather.gov/api/data/taf",
		apiKey:    apiKey,
	}
}

type avedgeFlight struct {
	Flight struct {
		IataNumber string `json:"iataNumber"`
	} `json:"flight"`
	Arrival struct {
		IcaoCode string `json:"icaoCode"`
	} `json:"arrival"`
	Status string `json:"status"`
}

type tafEntry struct {
	RawTAF string `json:"rawTAF"`
}

// weatherPenalties maps TAF phenomena to score deductions.
var weatherPenalties = []struct {
	codes   []string
	penalty int
	risk    string
}{
	{codes: []string{"TS"}, penalty: 30, risk: "Thunderstorms in Forecast"},
	{codes: []string{"FG", "BR"}, penalty: 20, risk: "Low Visibility (Fog/Mist)"},
	{codes: []string{"SN"}, penalty: 40, risk: "Snow/Icing Operations"},
	{codes: []string{"VV"}, penalty: 30, risk: "Obscured Ceiling (Low Approach)"},
}

// deadStatuses zero the score outright regardless of weather.
var deadStatuses = map[string]string{
	"cancelled": "Flight Already Cancelled",
	"incident":  "Active Incident",
	"diverted":  "Flight Diverted",
}

func (s *AvEdgeScorer) Score(
	ctx context.Context,
	flightNumber string,
	destinationAirport string,
) (_ domain.ReliabilityReport, err error) {
	defer obs.Time(ctx, "reliability.Score")(&err)

	if s.apiKey == "" {
		return domain.ReliabilityReport{}, errors.New("reliability: missing Aviation Edge key")
	}

	flight, err := s.flightDetails(ctx, flightNumber)
	if err != nil {
		return domain.ReliabilityReport{}, err
	}

	// The status feed reports the destination in ICAO form, which the TAF
	// endpoint also expects. Fall back to a K-prefixed IATA code when the
	// feed omits it; that covers the continental US.
	icao := flight.Arrival.IcaoCode
	if icao == "" {
		icao = "K" + strings.ToUpper(destinationAirport)
	}

	taf := s.forecast(ctx, icao)

	return scoreReport(flight.Status, taf), nil
}

func (s *AvEdgeScorer) flightDetails(ctx context.Context, flightNumber string) (*avedgeFlight, error) {
	q := url.Values{}
	q.Set("key", s.apiKey)
	q.Set("flightIata", flightNumber)

	endpoint := s.avedgeURL + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("reliability: create request: %w", err)
	}

	resp, err := s.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reliability: flight status: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reliability: read flight status: %w", err)
	}

	// The feed answers errors as a JSON object and matches as a list.
	var flights []avedgeFlight
	if err := json.Unmarshal(body, &flights); err != nil || len(flights) == 0 {
		return nil, fmt.Errorf("reliability: flight %q not found in status feed", flightNumber)
	}

	return &flights[0], nil
}

// forecast fetches the raw TAF. Weather faults never fail scoring; an
// empty forecast simply contributes no penalties.
func (s *AvEdgeScorer) forecast(ctx context.Context, icao string) string {
	q := url.Values{}
	q.Set("ids", icao)
	q.Set("format", "json")

	endpoint := s.awcURL + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ""
	}

	resp, err := s.session.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	var entries []tafEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil || len(entries) == 0 {
		return ""
	}

	return entries[0].RawTAF
}

func scoreReport(status, taf string) domain.ReliabilityReport {
	score := 100
	var risks []string

	for _, p := range weatherPenalties {
		for _, code := range p.codes {
			if strings.Contains(taf, code) {
				score -= p.penalty
				risks = append(risks, p.risk)
				break
			}
		}
	}

	if risk, dead := deadStatuses[strings.ToLower(status)]; dead {
		score = 0
		risks = append(risks, risk)
	}

	label := StatusNoGo
	switch {
	case score > 80:
		label = StatusGo
	case score > 50:
		label = StatusCaution
	}

	return domain.ReliabilityReport{
		Score:       score,
		Status:      label,
		RiskFactors: risks,
	}
}
