package api

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wxdeck/wxdeck/internal/chat"
	"github.com/wxdeck/wxdeck/internal/models"
	"github.com/wxdeck/wxdeck/internal/nws"
	"github.com/wxdeck/wxdeck/internal/store"
)

// Resolver turns a free-text location query into coordinates.
type Resolver interface {
	Resolve(ctx context.Context, query string) (models.GeoLocation, error)
}

// WeatherAPI is the forecast-and-extended-data surface of the NWS client.
type WeatherAPI interface {
	Forecast(ctx context.Context, lat, lon float64) (models.Forecast, error)
	Extended(ctx context.Context, lat, lon float64, points *nws.PointsData) models.ExtendedData
}

// Asker answers forecast questions through the text-generation collaborator.
type Asker interface {
	Ask(ctx context.Context, question string, f models.Forecast, loc models.GeoLocation, history []chat.Message) (string, error)
}

// Config carries the server's tunables. TTLs are independent per data kind:
// geocode results outlive forecasts, which outlive extended data.
type Config struct {
	Port        string
	GeocodeTTL  time.Duration
	ForecastTTL time.Duration
	ExtendedTTL time.Duration
}

// Server is the HTTP boundary: it runs the resolve -> forecast -> extended
// -> transform pipeline per request and maps pipeline errors to user-facing
// messages.
type Server struct {
	resolver Resolver
	weather  WeatherAPI
	chat     Asker // nil when the chat credential is not configured
	cache    *store.Store
	cfg      Config
}

func NewServer(resolver Resolver, weather WeatherAPI, asker Asker, cache *store.Store, cfg Config) *Server {
	if cfg.GeocodeTTL <= 0 {
		cfg.GeocodeTTL = time.Hour
	}
	if cfg.ForecastTTL <= 0 {
		cfg.ForecastTTL = 15 * time.Minute
	}
	if cfg.ExtendedTTL <= 0 {
		cfg.ExtendedTTL = 10 * time.Minute
	}
	return &Server{
		resolver: resolver,
		weather:  weather,
		chat:     asker,
		cache:    cache,
		cfg:      cfg,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/forecast", s.handleForecast)
	mux.HandleFunc("/api/chat", s.handleChat)
	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    ":" + s.cfg.Port,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}
