package main

import (
	"context"
	"database/sql"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	kongdotenv "github.com/titusjaka/kong-dotenv-go"
	_ "modernc.org/sqlite"

	"github.com/wxdeck/wxdeck/internal/api"
	"github.com/wxdeck/wxdeck/internal/chat"
	"github.com/wxdeck/wxdeck/internal/geocode"
	"github.com/wxdeck/wxdeck/internal/nws"
	"github.com/wxdeck/wxdeck/internal/store"
)

var cli struct {
	Port   string `env:"PORT" default:"8080" help:"HTTP server port."`
	DBPath string `name:"db" env:"DB_PATH" default:"data/wxdeck.db" help:"Path to the sqlite response cache."`

	NWSBaseURL   string        `env:"NWS_API_BASE_URL" default:"https://api.weather.gov" help:"NWS API base URL."`
	NWSUserAgent string        `env:"NWS_USER_AGENT" default:"(wxdeck, wxdeck@example.com)" help:"Identifying contact header for NWS requests."`
	NWSTimeout   time.Duration `env:"NWS_REQUEST_TIMEOUT" default:"15s" help:"Per-call timeout for NWS requests."`

	NominatimBaseURL   string        `env:"NOMINATIM_BASE_URL" default:"https://nominatim.openstreetmap.org" help:"Nominatim base URL."`
	NominatimUserAgent string        `env:"NOMINATIM_USER_AGENT" default:"wxdeck-weather-app" help:"Identifying User-Agent for Nominatim."`
	NominatimTimeout   time.Duration `env:"NOMINATIM_TIMEOUT" default:"10s" help:"Per-call timeout for geocoding requests."`
	CensusBaseURL      string        `env:"CENSUS_BASE_URL" default:"https://geocoding.geo.census.gov" help:"US Census geocoder base URL."`

	ChatAPIKey    string `env:"OPENAI_API_KEY" help:"Credential for the chat assistant. Chat is disabled when unset."`
	ChatBaseURL   string `env:"CHAT_BASE_URL" help:"Override endpoint for the chat assistant."`
	ChatModel     string `env:"CHAT_MODEL" default:"gpt-4o-mini" help:"Chat model identifier."`
	ChatMaxTokens int    `env:"CHAT_MAX_TOKENS" default:"1024" help:"Response token cap for chat answers."`

	GeocodeTTL  time.Duration `env:"GEOCODE_CACHE_TTL" default:"1h" help:"Geocode cache TTL."`
	ForecastTTL time.Duration `env:"FORECAST_CACHE_TTL" default:"15m" help:"Forecast cache TTL."`
	ExtendedTTL time.Duration `env:"EXTENDED_CACHE_TTL" default:"10m" help:"Extended-data cache TTL."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("wxdeck"),
		kong.Description("US weather forecast service with a forecast-grounded Q&A assistant."),
		kong.Configuration(kongdotenv.ENVFileReader, ".env"),
	)

	db, err := sql.Open("sqlite", cli.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")

	cache := store.New(db)
	if err := cache.Migrate(); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if n, err := cache.PruneExpired(); err == nil && n > 0 {
		log.Printf("pruned %d expired cache entries", n)
	}

	resolver := geocode.NewResolver(
		geocode.NewNominatimClient(cli.NominatimBaseURL, cli.NominatimUserAgent, cli.NominatimTimeout),
		geocode.NewCensusClient(cli.CensusBaseURL, cli.NominatimTimeout),
	)
	weather := nws.NewClient(cli.NWSBaseURL, cli.NWSUserAgent, cli.NWSTimeout)

	// Chat is optional: a missing credential disables the assistant but
	// never blocks forecast display.
	var asker api.Asker
	if c, err := chat.NewClient(cli.ChatAPIKey, cli.ChatBaseURL, cli.ChatModel, cli.ChatMaxTokens); err != nil {
		log.Printf("chat assistant disabled: %v", err)
	} else {
		asker = c
	}

	server := api.NewServer(resolver, weather, asker, cache, api.Config{
		Port:        cli.Port,
		GeocodeTTL:  cli.GeocodeTTL,
		ForecastTTL: cli.ForecastTTL,
		ExtendedTTL: cli.ExtendedTTL,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Printf("starting server on :%s", cli.Port)
	if err := server.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
