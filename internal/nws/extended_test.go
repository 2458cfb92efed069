package nws

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newExtendedFixture(t *testing.T, obsJSON string) (*httptest.Server, *PointsData) {
	t.Helper()
	var srv *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/stations", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"features": [
			{"properties": {"stationIdentifier": "KDEN"}},
			{"properties": {"stationIdentifier": "KBJC"}}
		]}`)
	})
	mux.HandleFunc("/stations/KDEN/observations/latest", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, obsJSON)
	})
	mux.HandleFunc("/hourly", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"properties": {"periods": [
			{"startTime": "2026-01-05T12:00:00-07:00", "probabilityOfPrecipitation": {"value": 30}},
			{"startTime": "2026-01-05T13:00:00-07:00", "probabilityOfPrecipitation": {"value": null}},
			{"startTime": "2026-01-05T14:00:00-07:00", "probabilityOfPrecipitation": {"value": 55}}
		]}}`)
	})
	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv, &PointsData{
		ObservationStationsURL: srv.URL + "/stations",
		ForecastHourlyURL:      srv.URL + "/hourly",
	}
}

func TestExtended(t *testing.T) {
	srv, points := newExtendedFixture(t, `{"properties": {
		"temperature": {"value": 10.0},
		"dewpoint": {"value": 0.0},
		"relativeHumidity": {"value": 45.67},
		"windSpeed": {"value": 16.09},
		"windDirection": {"value": 225},
		"barometricPressure": {"value": 101325},
		"visibility": {"value": 16093.4},
		"windChill": {"value": 5.0},
		"heatIndex": {"value": null},
		"textDescription": "Mostly Cloudy"
	}}`)
	c := newTestClient(srv.URL)

	ext := c.Extended(context.Background(), 39.7392, -104.9903, points)

	cur := ext.Current
	if cur == nil {
		t.Fatal("expected current conditions")
	}
	if cur.TemperatureF == nil || *cur.TemperatureF != 50 {
		t.Errorf("expected 50F, got %v", cur.TemperatureF)
	}
	if cur.FeelsLikeF == nil || *cur.FeelsLikeF != 41 {
		t.Errorf("expected feels-like from wind chill (41F), got %v", cur.FeelsLikeF)
	}
	if cur.DewpointF == nil || *cur.DewpointF != 32 {
		t.Errorf("expected dewpoint 32F, got %v", cur.DewpointF)
	}
	if cur.Humidity == nil || *cur.Humidity != 45.7 {
		t.Errorf("expected humidity 45.7, got %v", cur.Humidity)
	}
	if cur.WindSpeedMPH == nil || *cur.WindSpeedMPH != 10.0 {
		t.Errorf("expected 10.0 mph, got %v", cur.WindSpeedMPH)
	}
	if cur.WindDirection != "SW" {
		t.Errorf("expected SW, got %q", cur.WindDirection)
	}
	if cur.PressureMbar == nil || *cur.PressureMbar != 1013.2 {
		t.Errorf("expected 1013.2 mbar, got %v", cur.PressureMbar)
	}
	if cur.VisibilityMiles == nil || *cur.VisibilityMiles != 10.0 {
		t.Errorf("expected 10.0 mi, got %v", cur.VisibilityMiles)
	}
	if cur.Description != "Mostly Cloudy" {
		t.Errorf("unexpected description %q", cur.Description)
	}

	if len(ext.HourlyPrecip) != 2 {
		t.Fatalf("expected 2 precip entries (null skipped), got %d", len(ext.HourlyPrecip))
	}
	if ext.HourlyPrecip["2026-01-05T12:00:00-07:00"] != 30 {
		t.Errorf("unexpected precip map %v", ext.HourlyPrecip)
	}
}

func TestExtended_FeelsLikeFallsBackToHeatIndex(t *testing.T) {
	srv, points := newExtendedFixture(t, `{"properties": {
		"temperature": {"value": 32.0},
		"windChill": {"value": null},
		"heatIndex": {"value": 37.0},
		"textDescription": "Hot"
	}}`)
	c := newTestClient(srv.URL)

	ext := c.Extended(context.Background(), 39.7392, -104.9903, points)
	if ext.Current == nil || ext.Current.FeelsLikeF == nil {
		t.Fatal("expected feels-like from heat index")
	}
	if *ext.Current.FeelsLikeF != 99 {
		t.Errorf("expected 99F, got %d", *ext.Current.FeelsLikeF)
	}
}

func TestExtended_FeelsLikeAbsentWhenBothMissing(t *testing.T) {
	srv, points := newExtendedFixture(t, `{"properties": {
		"temperature": {"value": 20.0},
		"windChill": {"value": null},
		"heatIndex": {"value": null},
		"textDescription": "Mild"
	}}`)
	c := newTestClient(srv.URL)

	ext := c.Extended(context.Background(), 39.7392, -104.9903, points)
	if ext.Current == nil {
		t.Fatal("expected current conditions")
	}
	if ext.Current.FeelsLikeF != nil {
		t.Errorf("expected absent feels-like, got %d", *ext.Current.FeelsLikeF)
	}
}

func TestExtended_ObservationFailureDoesNotBlockPrecip(t *testing.T) {
	var srv *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/stations", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/hourly", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"properties": {"periods": [
			{"startTime": "2026-01-05T12:00:00-07:00", "probabilityOfPrecipitation": {"value": 80}}
		]}}`)
	})
	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c := newTestClient(srv.URL)
	ext := c.Extended(context.Background(), 39.7392, -104.9903, &PointsData{
		ObservationStationsURL: srv.URL + "/stations",
		ForecastHourlyURL:      srv.URL + "/hourly",
	})

	if ext.Current != nil {
		t.Error("expected absent current conditions")
	}
	if len(ext.HourlyPrecip) != 1 {
		t.Errorf("precip should survive the observation failure, got %v", ext.HourlyPrecip)
	}
}

func TestExtended_NeverFails(t *testing.T) {
	// Points lookup against a dead server: every field degrades to absent.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(srv.URL)
	ext := c.Extended(context.Background(), 39.7392, -104.9903, nil)
	if ext.Current != nil || ext.HourlyPrecip != nil {
		t.Errorf("expected empty extended data, got %+v", ext)
	}
}
