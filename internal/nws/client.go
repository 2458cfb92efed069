package nws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker"

	"github.com/wxdeck/wxdeck/internal/httputil"
	"github.com/wxdeck/wxdeck/internal/metrics"
	"github.com/wxdeck/wxdeck/internal/models"
)

// ErrPointNotFound is returned when the NWS has no grid coverage for the
// requested coordinates. It is never retried.
var ErrPointNotFound = errors.New("no NWS coverage for these coordinates")

// NWS asks API consumers to stay under a handful of requests per second.
const (
	requestsPerSecond = 4
	requestBurst      = 8
)

// Client talks to the NWS API. One client serves both the primary forecast
// protocol and the best-effort extended-data fetches; the breaker only
// guards the latter.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker

	// RetryDelay is the pause before the single retry on a 5xx response.
	RetryDelay time.Duration
}

// NewClient creates an NWS API client. The userAgent string identifies the
// deployment to the NWS per their API guidelines.
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: httputil.NewThrottledClient(timeout, requestsPerSecond, requestBurst),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "nws-extended",
			Timeout: 30 * time.Second,
		}),
		RetryDelay: 5 * time.Second,
	}
}

// PointsData is the grid metadata resolved from /points/{lat},{lon}. The
// forecast flow and the extended-data flow both start here, so callers can
// pass it along to avoid a duplicate points call.
type PointsData struct {
	ForecastURL            string
	ForecastHourlyURL      string
	ObservationStationsURL string
	LocationName           string
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// formatCoords renders coordinates the way the NWS points endpoint expects,
// rounded to 4 decimal places for upstream cache friendliness.
func formatCoords(lat, lon float64) string {
	return strconv.FormatFloat(round4(lat), 'f', -1, 64) + "," + strconv.FormatFloat(round4(lon), 'f', -1, 64)
}

// get performs a GET with the NWS headers and the retry policy: a single
// retry after RetryDelay on a 5xx, nothing else retried.
func (c *Client) get(ctx context.Context, endpoint, rawURL string) ([]byte, error) {
	var body []byte
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("create request: %w", err))
		}
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("Accept", "application/geo+json")

		start := time.Now()
		resp, err := c.httpClient.Do(req)
		if err != nil {
			metrics.UpstreamCallsTotal.WithLabelValues("nws", endpoint, "error").Inc()
			return backoff.Permanent(fmt.Errorf("request to NWS failed: %w", err))
		}
		defer resp.Body.Close()
		metrics.UpstreamLatency.WithLabelValues("nws", endpoint).Observe(time.Since(start).Seconds())
		metrics.UpstreamCallsTotal.WithLabelValues("nws", endpoint, strconv.Itoa(resp.StatusCode)).Inc()

		if resp.StatusCode == http.StatusNotFound {
			return backoff.Permanent(ErrPointNotFound)
		}
		if resp.StatusCode >= 500 {
			return fmt.Errorf("NWS server error: status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("unexpected NWS status %d", resp.StatusCode))
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("read NWS response: %w", err))
		}
		return nil
	}

	bo := backoff.WithMaxRetries(backoff.NewConstantBackOff(c.RetryDelay), 1)
	if err := backoff.Retry(operation, backoff.WithContext(bo, ctx)); err != nil {
		return nil, err
	}
	return body, nil
}

// Points resolves grid metadata for the coordinates. Missing forecast URLs
// or the relative-location label mean the upstream schema changed; that is a
// hard error, not something a retry can fix.
func (c *Client) Points(ctx context.Context, lat, lon float64) (*PointsData, error) {
	body, err := c.get(ctx, "points", c.baseURL+"/points/"+formatCoords(lat, lon))
	if err != nil {
		return nil, err
	}

	var data pointsResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("invalid JSON from NWS points endpoint: %w", err)
	}

	props := data.Properties
	rel := props.RelativeLocation.Properties
	if props.Forecast == "" || props.ForecastHourly == "" || rel.City == "" {
		return nil, errors.New("unexpected response format from NWS points endpoint")
	}

	return &PointsData{
		ForecastURL:            props.Forecast,
		ForecastHourlyURL:      props.ForecastHourly,
		ObservationStationsURL: props.ObservationStations,
		LocationName:           rel.City + ", " + rel.State,
	}, nil
}

// Forecast fetches the full forecast for the coordinates: points metadata,
// then 12-hour periods, then hourly periods. The hourly step is an
// enhancement; its failure empties HourlyPeriods instead of propagating.
func (c *Client) Forecast(ctx context.Context, lat, lon float64) (models.Forecast, error) {
	points, err := c.Points(ctx, lat, lon)
	if err != nil {
		return models.Forecast{}, err
	}

	body, err := c.get(ctx, "forecast", points.ForecastURL)
	if err != nil {
		return models.Forecast{}, err
	}
	var raw forecastResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return models.Forecast{}, fmt.Errorf("invalid JSON from NWS forecast endpoint: %w", err)
	}
	if raw.Properties.Periods == nil {
		return models.Forecast{}, errors.New("unexpected forecast response format from NWS")
	}

	periods := make([]models.ForecastPeriod, 0, len(*raw.Properties.Periods))
	for _, p := range *raw.Properties.Periods {
		periods = append(periods, models.ForecastPeriod{
			Name:             p.Name,
			Temperature:      p.Temperature,
			TemperatureUnit:  p.TemperatureUnit,
			WindSpeed:        p.WindSpeed,
			WindDirection:    p.WindDirection,
			ShortForecast:    p.ShortForecast,
			DetailedForecast: p.DetailedForecast,
			IsDaytime:        p.IsDaytime,
			StartTime:        p.StartTime,
			IconURL:          p.Icon,
		})
	}

	hourly, err := c.hourly(ctx, points.ForecastHourlyURL)
	if err != nil {
		log.Printf("nws: hourly forecast unavailable: %v", err)
		hourly = nil
	}

	return models.Forecast{
		LocationName:  points.LocationName,
		GeneratedAt:   raw.Properties.GeneratedAt,
		Periods:       periods,
		HourlyPeriods: hourly,
	}, nil
}

func (c *Client) hourly(ctx context.Context, url string) ([]models.HourlyPeriod, error) {
	body, err := c.get(ctx, "forecast_hourly", url)
	if err != nil {
		return nil, err
	}
	var raw forecastResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON from NWS hourly endpoint: %w", err)
	}
	if raw.Properties.Periods == nil {
		return nil, errors.New("unexpected hourly forecast response format from NWS")
	}

	hourly := make([]models.HourlyPeriod, 0, len(*raw.Properties.Periods))
	for _, p := range *raw.Properties.Periods {
		hourly = append(hourly, models.HourlyPeriod{
			StartTime:       p.StartTime,
			Temperature:     p.Temperature,
			TemperatureUnit: p.TemperatureUnit,
			WindSpeed:       p.WindSpeed,
			WindDirection:   p.WindDirection,
			ShortForecast:   p.ShortForecast,
			IconURL:         p.Icon,
			IsDaytime:       p.IsDaytime,
		})
	}
	return hourly, nil
}
