package distance

import (
	"cargo-feasibility-service/internal/domain"
	"cargo-feasibility-service/internal/platform/obs"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves a free-form address to coordinates via Nominatim.
// Suite/unit markers are stripped first; they routinely break geocoders.
// Implements ports.Geocoder so the airport locator can share this client.
func (o *OSRMDriveProvider) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	return o.coordsFor(ctx, o.normalize(address))
}

func (o *OSRMDriveProvider) geocode(ctx context.Context, address string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "nominatim.geocode")(&err)

	cleaned := o.normalize(strings.NewReplacer("Suite", "", "#", "").Replace(address))
	if cleaned == "" {
		return domain.Coordinates{}, fmt.Errorf("geocode: empty address after cleanup")
	}

	endpoint := o.nominatimURL + "/search"
	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := o.newRequest(ctx, endpoint)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("q", cleaned)
		q.Set("format", "json")
		q.Set("countrycodes", "us")
		q.Set("limit", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return domain.Coordinates{}, fmt.Errorf("decode geocode response: %w", err)
	}
	if len(results) == 0 {
		return domain.Coordinates{}, fmt.Errorf("no geocode results for %q", address)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("invalid latitude for %q: %w", address, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("invalid longitude for %q: %w", address, err)
	}

	return domain.Coordinates{Lat: lat, Lon: lon}, nil
}
