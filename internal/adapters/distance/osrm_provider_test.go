package distance

import (
	"cargo-feasibility-service/internal/domain"
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

func testProvider(osrmURL, nominatimURL string) *OSRMDriveProvider {
	return &OSRMDriveProvider{
		session:      &http.Client{Timeout: 2 * time.Second},
		baseURL:      osrmURL,
		nominatimURL: nominatimURL,
		userAgent:    "test",
	}
}

type memDriveCache struct {
	mu sync.Mutex
	m  map[string]domain.DriveMetrics
}

func (c *memDriveCache) Get(_ context.Context, origin, destination string) (domain.DriveMetrics, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	m, ok := c.m[origin+"|"+destination]
	return m, ok, nil
}

func (c *memDriveCache) Put(_ context.Context, origin, destination string, m domain.DriveMetrics) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.m == nil {
		c.m = make(map[string]domain.DriveMetrics)
	}
	c.m[origin+"|"+destination] = m
	return nil
}

func TestGetDriveMetricsAirportToAirport(t *testing.T) {
	osrm := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// 30 miles, 45 minutes.
		_, _ = w.Write([]byte(`{"code":"Ok","routes":[{"distance":48280.3,"duration":2700}]}`))
	}))
	defer osrm.Close()

	p := testProvider(osrm.URL, "http://unused.invalid")

	m, err := p.GetDriveMetrics(context.Background(), "SEA", "PDX")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Minutes != 45 {
		t.Fatalf("minutes = %d, want 45", m.Minutes)
	}
	if m.Miles != 30.0 {
		t.Fatalf("miles = %v, want 30.0", m.Miles)
	}
	if m.Estimated {
		t.Fatal("routed metrics flagged as estimated")
	}
}

func TestGetDriveMetricsGeocodesAddresses(t *testing.T) {
	nominatim := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "123 Pine St, Seattle, WA" {
			t.Errorf("geocode query = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat":"47.6062","lon":"-122.3321"}]`))
	}))
	defer nominatim.Close()

	osrm := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":"Ok","routes":[{"distance":24140.2,"duration":1500}]}`))
	}))
	defer osrm.Close()

	p := testProvider(osrm.URL, nominatim.URL)

	m, err := p.GetDriveMetrics(context.Background(), "123 Pine St,   Seattle, WA", "SEA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Minutes != 25 {
		t.Fatalf("minutes = %d, want 25", m.Minutes)
	}
}

func TestGetDriveMetricsFallsBackToGeodesicEstimate(t *testing.T) {
	osrm := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":"NoRoute","routes":[]}`))
	}))
	defer osrm.Close()

	p := testProvider(osrm.URL, "http://unused.invalid")

	m, err := p.GetDriveMetrics(context.Background(), "SEA", "PDX")
	if err != nil {
		t.Fatalf("routing failure should estimate, got error: %v", err)
	}
	if !m.Estimated {
		t.Fatal("fallback metrics not flagged as estimated")
	}
	if m.Miles <= 0 || m.Minutes <= 30 {
		t.Fatalf("implausible estimate: %+v", m)
	}
}

func TestGetDriveMetricsUsesCache(t *testing.T) {
	calls := 0
	osrm := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":"Ok","routes":[{"distance":48280.3,"duration":2700}]}`))
	}))
	defer osrm.Close()

	p := testProvider(osrm.URL, "http://unused.invalid")
	p.driveCache = &memDriveCache{}

	for i := 0; i < 3; i++ {
		if _, err := p.GetDriveMetrics(context.Background(), "SEA", "PDX"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if calls != 1 {
		t.Fatalf("OSRM calls = %d, want 1 (cache should absorb repeats)", calls)
	}
}
