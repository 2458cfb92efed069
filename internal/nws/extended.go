package nws

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/wxdeck/wxdeck/internal/metrics"
	"github.com/wxdeck/wxdeck/internal/models"
)

// Extended fetches supplemental data for the coordinates: the latest
// observation from the nearest station and per-hour precipitation
// probability. Everything is best-effort; a failed step leaves its field
// absent and never fails the call. A pre-fetched points response avoids a
// duplicate /points call when the caller already ran the forecast flow.
func (c *Client) Extended(ctx context.Context, lat, lon float64, points *PointsData) models.ExtendedData {
	var out models.ExtendedData

	if points == nil {
		p, err := c.Points(ctx, lat, lon)
		if err != nil {
			return out
		}
		points = p
	}

	if points.ObservationStationsURL != "" {
		out.Current = c.fetchCurrentConditions(ctx, points.ObservationStationsURL)
	}
	if points.ForecastHourlyURL != "" {
		out.HourlyPrecip = c.fetchHourlyPrecip(ctx, points.ForecastHourlyURL)
	}
	return out
}

// safeGet is the best-effort counterpart to get: one attempt, no retries,
// nil on any failure. The circuit breaker keeps a flapping upstream from
// stalling every request on the enhancement tier's timeout.
func (c *Client) safeGet(ctx context.Context, endpoint, rawURL string) []byte {
	body, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("Accept", "application/geo+json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			metrics.UpstreamCallsTotal.WithLabelValues("nws", endpoint, "error").Inc()
			return nil, err
		}
		defer resp.Body.Close()
		metrics.UpstreamCallsTotal.WithLabelValues("nws", endpoint, strconv.Itoa(resp.StatusCode)).Inc()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("status %d", resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	})
	if err != nil {
		return nil
	}
	return body.([]byte)
}

func (c *Client) fetchCurrentConditions(ctx context.Context, stationsURL string) *models.CurrentConditions {
	body := c.safeGet(ctx, "stations", stationsURL)
	if body == nil {
		return nil
	}
	var stations stationsResponse
	if err := json.Unmarshal(body, &stations); err != nil || len(stations.Features) == 0 {
		return nil
	}
	stationID := stations.Features[0].Properties.StationIdentifier
	if stationID == "" {
		return nil
	}

	obsBody := c.safeGet(ctx, "observations_latest", c.baseURL+"/stations/"+stationID+"/observations/latest")
	if obsBody == nil {
		return nil
	}
	var obs observationResponse
	if err := json.Unmarshal(obsBody, &obs); err != nil {
		return nil
	}
	return parseObservation(obs)
}

func (c *Client) fetchHourlyPrecip(ctx context.Context, hourlyURL string) map[string]int {
	body := c.safeGet(ctx, "forecast_hourly", hourlyURL)
	if body == nil {
		return nil
	}
	var raw forecastResponse
	if err := json.Unmarshal(body, &raw); err != nil || raw.Properties.Periods == nil {
		return nil
	}

	precip := make(map[string]int)
	for _, p := range *raw.Properties.Periods {
		if p.StartTime == "" || p.ProbabilityOfPrecipitation == nil || p.ProbabilityOfPrecipitation.Value == nil {
			continue
		}
		precip[p.StartTime] = int(*p.ProbabilityOfPrecipitation.Value)
	}
	return precip
}

// parseObservation converts a raw station observation to display units.
// Feels-like prefers wind chill and falls back to heat index; it stays nil
// when the station reports neither.
func parseObservation(obs observationResponse) *models.CurrentConditions {
	props := obs.Properties
	out := &models.CurrentConditions{
		Description: props.TextDescription,
	}

	if props.Temperature.Value != nil {
		f := CelsiusToFahrenheit(*props.Temperature.Value)
		out.TemperatureF = &f
	}
	if props.Dewpoint.Value != nil {
		f := CelsiusToFahrenheit(*props.Dewpoint.Value)
		out.DewpointF = &f
	}

	feels := props.WindChill.Value
	if feels == nil {
		feels = props.HeatIndex.Value
	}
	if feels != nil {
		f := CelsiusToFahrenheit(*feels)
		out.FeelsLikeF = &f
	}

	if props.RelativeHumidity.Value != nil {
		h := round1(*props.RelativeHumidity.Value)
		out.Humidity = &h
	}
	if props.WindSpeed.Value != nil {
		mph := KmhToMph(*props.WindSpeed.Value)
		out.WindSpeedMPH = &mph
	}
	if props.WindDirection.Value != nil {
		out.WindDirection = CardinalDirection(*props.WindDirection.Value)
	}
	if props.BarometricPressure.Value != nil {
		mbar := PaToMbar(*props.BarometricPressure.Value)
		out.PressureMbar = &mbar
	}
	if props.Visibility.Value != nil {
		mi := MetersToMiles(*props.Visibility.Value)
		out.VisibilityMiles = &mi
	}

	return out
}
