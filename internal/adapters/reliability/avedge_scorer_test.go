package reliability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestScoreReportWeatherPenalties(t *testing.T) {
	cases := []struct {
		name      string
		status    string
		taf       string
		wantScore int
		wantLabel string
	}{
		{"clear skies", "scheduled", "KSEA 041730Z 0418/0524 20008KT P6SM SCT035", 100, StatusGo},
		{"thunderstorms", "scheduled", "TAF KMIA ... TSRA BKN020CB", 70, StatusCaution},
		{"fog", "active", "TAF KSFO ... 1/4SM FG VV002", 50, StatusNoGo},
		{"snow", "scheduled", "TAF KDEN ... -SN BKN008", 60, StatusCaution},
		{"stacked phenomena", "scheduled", "TAF KORD ... TSRA BR SN", 10, StatusNoGo},
		{"cancelled zeroes everything", "cancelled", "CAVOK", 0, StatusNoGo},
		{"diverted", "diverted", "", 0, StatusNoGo},
		{"incident", "Incident", "", 0, StatusNoGo},
		{"no forecast", "en-route", "", 100, StatusGo},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := scoreReport(tc.status, tc.taf)
			if got.Score != tc.wantScore {
				t.Fatalf("score = %d, want %d", got.Score, tc.wantScore)
			}
			if got.Status != tc.wantLabel {
				t.Fatalf("status = %q, want %q", got.Status, tc.wantLabel)
			}
		})
	}
}

func TestScoreReportRiskFactors(t *testing.T) {
	got := scoreReport("cancelled", "TAF KBOS ... FG")

	if len(got.RiskFactors) != 2 {
		t.Fatalf("risk factors = %v, want visibility + cancellation", got.RiskFactors)
	}
	if got.RiskFactors[1] != "Flight Already Cancelled" {
		t.Fatalf("risk factors = %v", got.RiskFactors)
	}
}

func TestScoreEndToEnd(t *testing.T) {
	avedge := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("flightIata"); got != "AS14" {
			t.Errorf("flightIata = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"flight":{"iataNumber":"AS14"},"arrival":{"icaoCode":"KMIA"},"status":"scheduled"}]`))
	}))
	defer avedge.Close()

	awc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("ids"); got != "KMIA" {
			t.Errorf("ids = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"rawTAF":"TAF KMIA 041740Z TSRA BKN020CB"}]`))
	}))
	defer awc.Close()

	s := NewAvEdgeScorer("test-key")
	s.avedgeURL = avedge.URL
	s.awcURL = awc.URL

	report, err := s.Score(context.Background(), "AS14", "MIA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Score != 70 || report.Status != StatusCaution {
		t.Fatalf("report = %+v", report)
	}
}

func TestScoreUnknownFlightErrors(t *testing.T) {
	avedge := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":"No Record Found"}`))
	}))
	defer avedge.Close()

	s := NewAvEdgeScorer("test-key")
	s.avedgeURL = avedge.URL

	if _, err := s.Score(context.Background(), "ZZ999", "MIA"); err == nil {
		t.Fatal("expected error for a flight missing from the status feed")
	}
}
