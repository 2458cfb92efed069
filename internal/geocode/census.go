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

// CensusClient queries the US Census Bureau single-line address geocoder.
// Its address parsing differs from Nominatim's and it handles bare zip codes
// well, which makes it a useful fallback tier.
type CensusClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewCensusClient creates a Census Bureau geocoder client.
func NewCensusClient(baseURL string, timeout time.Duration) *CensusClient {
	return &CensusClient{
		baseURL:    baseURL,
		httpClient: httputil.NewClient(timeout),
	}
}

type censusResponse struct {
	Result struct {
		AddressMatches []struct {
			Coordinates struct {
				X float64 `json:"x"`
				Y float64 `json:"y"`
			} `json:"coordinates"`
			MatchedAddress string `json:"matchedAddress"`
		} `json:"addressMatches"`
	} `json:"result"`
}

// Geocode resolves a query through the onelineaddress endpoint. The Census
// geocoder reports x/y as lon/lat.
func (c *CensusClient) Geocode(ctx context.Context, query string) (models.GeoLocation, error) {
	q := url.Values{}
	q.Set("address", query)
	q.Set("benchmark", "Public_AR_Current")
	q.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/geocoder/locations/onelineaddress?"+q.Encode(), nil)
	if err != nil {
		return models.GeoLocation{}, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.UpstreamCallsTotal.WithLabelValues("census", "onelineaddress", "error").Inc()
		return models.GeoLocation{}, fmt.Errorf("census request: %w", err)
	}
	defer resp.Body.Close()
	metrics.UpstreamLatency.WithLabelValues("census", "onelineaddress").Observe(time.Since(start).Seconds())
	metrics.UpstreamCallsTotal.WithLabelValues("census", "onelineaddress", strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode != http.StatusOK {
		return models.GeoLocation{}, fmt.Errorf("census status %d", resp.StatusCode)
	}

	var data censusResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return models.GeoLocation{}, fmt.Errorf("decode census response: %w", err)
	}
	if len(data.Result.AddressMatches) == 0 {
		return models.GeoLocation{}, ErrNoResults
	}

	match := data.Result.AddressMatches[0]
	name := match.MatchedAddress
	if name == "" {
		name = query
	}
	return models.GeoLocation{
		Latitude:    match.Coordinates.Y,
		Longitude:   match.Coordinates.X,
		DisplayName: name,
	}, nil
}
