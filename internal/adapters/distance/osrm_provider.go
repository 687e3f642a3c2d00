package distance

import (
	"cargo-feasibility-service/internal/adapters/airports"
	"cargo-feasibility-service/internal/domain"
	"cargo-feasibility-service/internal/platform/obs"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"strings"
	"time"
)

const metersPerMile = 1609.344

// DriveCache persists resolved drive metrics across runs.
type DriveCache interface {
	Get(ctx context.Context, origin, destination string) (domain.DriveMetrics, bool, error)
	Put(ctx context.Context, origin, destination string, m domain.DriveMetrics) error
}

// GeocodeCache persists address -> coordinate resolutions across runs.
type GeocodeCache interface {
	Get(ctx context.Context, address string) (domain.Coordinates, bool, error)
	Put(ctx context.Context, address string, c domain.Coordinates) error
}

// OSRMDriveProvider implements DriveMetricsProvider against the public OSRM
// routing service, with Nominatim geocoding for street addresses.
//
// It coordinates:
//   - Address normalization and airport-code short-circuiting
//   - Persistent geocode caching
//   - Persistent drive-metrics caching
//   - External API calls with retry/backoff
//   - A geodesic estimate when routing fails but geocoding succeeded
//
// The provider is safe for concurrent use.
type OSRMDriveProvider struct {
	session      *http.Client
	baseURL      string
	nominatimURL string
	userAgent    string
	driveCache   DriveCache
	geocodeCache GeocodeCache
}

func NewOSRMDriveProvider(driveCache DriveCache, geocodeCache GeocodeCache) *OSRMDriveProvider {
	return &OSRMDriveProvider{
		session:      &http.Client{Timeout: 15 * time.Second},
		baseURL:      "https://router.project-osrm.org",
		nominatimURL: "https://nominatim.openstreetmap.org",
		userAgent:    "cargo-feasibility-service/1.0",
		driveCache:   driveCache,
		geocodeCache: geocodeCache,
	}
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (o *OSRMDriveProvider) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// GetDriveMetrics returns road miles and drive minutes between two
// locations (street addresses or airport codes). Routing failures degrade
// to a geodesic estimate rather than an error; only geocoding failures
// propagate, since without coordinates no estimate is possible.
func (o *OSRMDriveProvider) GetDriveMetrics(
	ctx context.Context,
	origin string,
	destination string,
) (_ domain.DriveMetrics, err error) {
	defer obs.Time(ctx, "osrm.GetDriveMetrics")(&err)

	normOrigin := o.normalize(origin)
	normDestination := o.normalize(destination)
	if normOrigin == "" || normDestination == "" {
		return domain.DriveMetrics{}, errors.New("get drive metrics: origin and destination must be non-empty")
	}

	if o.driveCache != nil {
		cached, ok, err := o.driveCache.Get(ctx, normOrigin, normDestination)
		if err != nil {
			return domain.DriveMetrics{}, fmt.Errorf("get drive metrics: drive cache: %w", err)
		}
		if ok {
			return cached, nil
		}
	}

	from, err := o.coordsFor(ctx, normOrigin)
	if err != nil {
		return domain.DriveMetrics{}, fmt.Errorf("get drive metrics: resolve %q: %w", normOrigin, err)
	}
	to, err := o.coordsFor(ctx, normDestination)
	if err != nil {
		return domain.DriveMetrics{}, fmt.Errorf("get drive metrics: resolve %q: %w", normDestination, err)
	}

	metrics, err := o.fetchRoute(ctx, from, to)
	if err != nil {
		log.Printf("osrm route failed: from=%q to=%q err=%v (using geodesic estimate)", normOrigin, normDestination, err)
		return estimateDrive(from, to), nil
	}

	// Estimates are never cached; only real routing results are durable.
	if o.driveCache != nil {
		if err := o.driveCache.Put(ctx, normOrigin, normDestination, metrics); err != nil {
			log.Printf("drive cache write failed: %v", err)
		}
	}

	return metrics, nil
}

// coordsFor resolves a location to coordinates: airport table first, then
// the geocode cache, then Nominatim.
func (o *OSRMDriveProvider) coordsFor(ctx context.Context, location string) (domain.Coordinates, error) {
	if coords, ok := airports.Coordinates(location); ok {
		return coords, nil
	}

	if o.geocodeCache != nil {
		cached, ok, err := o.geocodeCache.Get(ctx, location)
		if err != nil {
			return domain.Coordinates{}, fmt.Errorf("geocode cache: %w", err)
		}
		if ok {
			return cached, nil
		}
	}

	coords, err := o.geocode(ctx, location)
	if err != nil {
		return domain.Coordinates{}, err
	}

	if o.geocodeCache != nil {
		if err := o.geocodeCache.Put(ctx, location, coords); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}
	}

	return coords, nil
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

// fetchRoute retrieves driving distance and duration between two points.
func (o *OSRMDriveProvider) fetchRoute(ctx context.Context, from, to domain.Coordinates) (domain.DriveMetrics, error) {
	endpoint := fmt.Sprintf(
		"%s/route/v1/driving/%f,%f;%f,%f",
		o.baseURL, from.Lon, from.Lat, to.Lon, to.Lat,
	)

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := o.newRequest(ctx, endpoint)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("overview", "false")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return domain.DriveMetrics{}, fmt.Errorf("route request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.DriveMetrics{}, fmt.Errorf("decode route response: %w", err)
	}

	if decoded.Code != "Ok" || len(decoded.Routes) == 0 {
		return domain.DriveMetrics{}, fmt.Errorf("no route found (code=%q)", decoded.Code)
	}

	route := decoded.Routes[0]
	return domain.DriveMetrics{
		Miles:   math.Round(route.Distance/metersPerMile*10) / 10,
		Minutes: int(math.Round(route.Duration / 60)),
	}, nil
}

// estimateDrive approximates road metrics from the great-circle distance:
// a 1.3 road-winding factor at 50 mph average, plus half an hour of local
// driving.
func estimateDrive(from, to domain.Coordinates) domain.DriveMetrics {
	miles := from.MilesBetween(to) * 1.3
	hours := miles/50 + 0.5
	return domain.DriveMetrics{
		Miles:     math.Round(miles*10) / 10,
		Minutes:   int(math.Round(hours * 60)),
		Estimated: true,
	}
}
