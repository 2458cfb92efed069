package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/wxdeck/wxdeck/internal/httputil"
	"github.com/wxdeck/wxdeck/internal/metrics"
	"github.com/wxdeck/wxdeck/internal/models"
)

// NominatimClient queries the Nominatim search API restricted to US results.
type NominatimClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewNominatimClient creates a Nominatim geocoder client. Nominatim requires
// an identifying User-Agent on every request.
func NewNominatimClient(baseURL, userAgent string, timeout time.Duration) *NominatimClient {
	return &NominatimClient{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: httputil.NewClient(timeout),
	}
}

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode resolves a free-text query to coordinates. Exactly one result is
// requested; no results yields ErrNoResults.
func (c *NominatimClient) Geocode(ctx context.Context, query string) (models.GeoLocation, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("countrycodes", "us")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return models.GeoLocation{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.UpstreamCallsTotal.WithLabelValues("nominatim", "search", "error").Inc()
		return models.GeoLocation{}, fmt.Errorf("nominatim request: %w", err)
	}
	defer resp.Body.Close()
	metrics.UpstreamLatency.WithLabelValues("nominatim", "search").Observe(time.Since(start).Seconds())
	metrics.UpstreamCallsTotal.WithLabelValues("nominatim", "search", strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode != http.StatusOK {
		return models.GeoLocation{}, fmt.Errorf("nominatim status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return models.GeoLocation{}, fmt.Errorf("decode nominatim response: %w", err)
	}
	if len(results) == 0 {
		return models.GeoLocation{}, ErrNoResults
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return models.GeoLocation{}, fmt.Errorf("parse latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return models.GeoLocation{}, fmt.Errorf("parse longitude %q: %w", results[0].Lon, err)
	}

	return models.GeoLocation{
		Latitude:    lat,
		Longitude:   lon,
		DisplayName: results[0].DisplayName,
	}, nil
}
