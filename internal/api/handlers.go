package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/wxdeck/wxdeck/internal/chat"
	"github.com/wxdeck/wxdeck/internal/forecast"
	"github.com/wxdeck/wxdeck/internal/geocode"
	"github.com/wxdeck/wxdeck/internal/metrics"
	"github.com/wxdeck/wxdeck/internal/models"
	"github.com/wxdeck/wxdeck/internal/nws"
)

// maxHourlyDisplay caps the hourly periods returned to the UI; the upstream
// feed runs to 156 entries.
const maxHourlyDisplay = 24

// ForecastResponse is the full payload for one resolved location.
type ForecastResponse struct {
	Location models.GeoLocation    `json:"location"`
	Forecast models.Forecast       `json:"forecast"`
	Days     []forecast.DaySummary `json:"days"`
	Extended models.ExtendedData   `json:"extended"`
}

type chatRequest struct {
	Location string         `json:"location"`
	Question string         `json:"question"`
	History  []chat.Message `json:"history"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("api: encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeResolveError maps the error taxonomy to user-facing messages. A
// jurisdiction rejection reads differently from a resolution failure since
// one is a policy boundary and the other a data gap.
func writeResolveError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, geocode.ErrEmptyQuery):
		writeError(w, http.StatusBadRequest, "Please enter a location.")
	case errors.Is(err, geocode.ErrOutsideUS):
		writeError(w, http.StatusBadRequest,
			"This app only supports US locations. The National Weather Service only covers US territories.")
	case errors.Is(err, geocode.ErrNoMatch):
		writeError(w, http.StatusNotFound,
			"Could not find that location. Try a different format (e.g., 'Denver, CO' or '80202').")
	case errors.Is(err, nws.ErrPointNotFound):
		writeError(w, http.StatusNotFound,
			"The National Weather Service does not have data for this location. Try a nearby city.")
	default:
		writeError(w, http.StatusBadGateway,
			"The National Weather Service is temporarily unavailable. Please try again.")
	}
}

func coordKey(lat, lon float64) string {
	return fmt.Sprintf("%.4f,%.4f", lat, lon)
}

// resolveCached runs the resolver behind the geocode cache.
func (s *Server) resolveCached(r *http.Request, query string) (models.GeoLocation, error) {
	key := strings.ToLower(strings.TrimSpace(query))
	var loc models.GeoLocation
	if s.cache != nil && key != "" {
		if ok, err := s.cache.Get("geocode", key, &loc); err == nil && ok {
			metrics.CacheLookups.WithLabelValues("geocode", "hit").Inc()
			return loc, nil
		}
		metrics.CacheLookups.WithLabelValues("geocode", "miss").Inc()
	}

	loc, err := s.resolver.Resolve(r.Context(), query)
	if err != nil {
		return models.GeoLocation{}, err
	}
	if s.cache != nil {
		if err := s.cache.Put("geocode", key, loc, s.cfg.GeocodeTTL); err != nil {
			log.Printf("api: cache geocode: %v", err)
		}
	}
	return loc, nil
}

// forecastCached runs the forecast fetch behind the forecast cache.
func (s *Server) forecastCached(r *http.Request, loc models.GeoLocation) (models.Forecast, error) {
	key := coordKey(loc.Latitude, loc.Longitude)
	var fc models.Forecast
	if s.cache != nil {
		if ok, err := s.cache.Get("forecast", key, &fc); err == nil && ok {
			metrics.CacheLookups.WithLabelValues("forecast", "hit").Inc()
			return fc, nil
		}
		metrics.CacheLookups.WithLabelValues("forecast", "miss").Inc()
	}

	fc, err := s.weather.Forecast(r.Context(), loc.Latitude, loc.Longitude)
	if err != nil {
		return models.Forecast{}, err
	}
	if s.cache != nil {
		if err := s.cache.Put("forecast", key, fc, s.cfg.ForecastTTL); err != nil {
			log.Printf("api: cache forecast: %v", err)
		}
	}
	return fc, nil
}

// extendedCached runs the best-effort extended fetch behind its cache. It
// never fails: worst case is an empty ExtendedData.
func (s *Server) extendedCached(r *http.Request, loc models.GeoLocation) models.ExtendedData {
	key := coordKey(loc.Latitude, loc.Longitude)
	var ext models.ExtendedData
	if s.cache != nil {
		if ok, err := s.cache.Get("extended", key, &ext); err == nil && ok {
			metrics.CacheLookups.WithLabelValues("extended", "hit").Inc()
			return ext
		}
		metrics.CacheLookups.WithLabelValues("extended", "miss").Inc()
	}

	ext = s.weather.Extended(r.Context(), loc.Latitude, loc.Longitude, nil)
	if s.cache != nil {
		if err := s.cache.Put("extended", key, ext, s.cfg.ExtendedTTL); err != nil {
			log.Printf("api: cache extended: %v", err)
		}
	}
	return ext
}

func (s *Server) handleForecast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	loc, err := s.resolveCached(r, r.URL.Query().Get("location"))
	if err != nil {
		writeResolveError(w, err)
		return
	}

	fc, err := s.forecastCached(r, loc)
	if err != nil {
		writeResolveError(w, err)
		return
	}

	ext := s.extendedCached(r, loc)

	if len(fc.HourlyPeriods) > maxHourlyDisplay {
		fc.HourlyPeriods = fc.HourlyPeriods[:maxHourlyDisplay]
	}

	writeJSON(w, http.StatusOK, ForecastResponse{
		Location: loc,
		Forecast: fc,
		Days:     forecast.ComputeTempBars(forecast.PairDays(fc.Periods)),
		Extended: ext,
	})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if s.chat == nil {
		writeError(w, http.StatusServiceUnavailable,
			"Chat is not configured: the API key is missing.")
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeError(w, http.StatusBadRequest, "Please enter a question.")
		return
	}

	loc, err := s.resolveCached(r, req.Location)
	if err != nil {
		writeResolveError(w, err)
		return
	}
	fc, err := s.forecastCached(r, loc)
	if err != nil {
		writeResolveError(w, err)
		return
	}

	answer, err := s.chat.Ask(r.Context(), req.Question, fc, loc, req.History)
	if err != nil {
		log.Printf("api: chat: %v", err)
		writeError(w, http.StatusBadGateway, "The weather assistant is unavailable right now.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"answer": answer})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
