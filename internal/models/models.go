package models

// GeoLocation is a resolved geographic location. Values are immutable once
// created by the geocode resolver.
type GeoLocation struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DisplayName string  `json:"display_name"`
}

// ForecastPeriod is a single 12-hour forecast period from the NWS.
type ForecastPeriod struct {
	Name             string `json:"name"`
	Temperature      int    `json:"temperature"`
	TemperatureUnit  string `json:"temperature_unit"`
	WindSpeed        string `json:"wind_speed"`
	WindDirection    string `json:"wind_direction"`
	ShortForecast    string `json:"short_forecast"`
	DetailedForecast string `json:"detailed_forecast"`
	IsDaytime        bool   `json:"is_daytime"`
	StartTime        string `json:"start_time"`
	IconURL          string `json:"icon_url"`
}

// HourlyPeriod is a single hourly forecast period.
type HourlyPeriod struct {
	StartTime       string `json:"start_time"`
	Temperature     int    `json:"temperature"`
	TemperatureUnit string `json:"temperature_unit"`
	WindSpeed       string `json:"wind_speed"`
	WindDirection   string `json:"wind_direction"`
	ShortForecast   string `json:"short_forecast"`
	IconURL         string `json:"icon_url"`
	IsDaytime       bool   `json:"is_daytime"`
}

// Forecast is the complete NWS forecast for a point. HourlyPeriods may be
// empty when the hourly endpoint is unavailable; Periods is always non-empty
// for a usable forecast.
type Forecast struct {
	LocationName  string           `json:"location_name"`
	GeneratedAt   string           `json:"generated_at"`
	Periods       []ForecastPeriod `json:"periods"`
	HourlyPeriods []HourlyPeriod   `json:"hourly_periods"`
}

// CurrentConditions holds the latest observation from the nearest NWS
// station. Every numeric field is optional; nil means the station did not
// report it.
type CurrentConditions struct {
	TemperatureF    *int     `json:"temperature_f"`
	FeelsLikeF      *int     `json:"feels_like_f"`
	Humidity        *float64 `json:"humidity"`
	WindSpeedMPH    *float64 `json:"wind_speed_mph"`
	WindDirection   string   `json:"wind_direction"`
	PressureMbar    *float64 `json:"pressure_mbar"`
	VisibilityMiles *float64 `json:"visibility_miles"`
	Description     string   `json:"description"`
	DewpointF       *int     `json:"dewpoint_f"`
}

// ExtendedData aggregates best-effort supplemental data. Each field degrades
// independently: a nil Current never blocks HourlyPrecip and vice versa.
type ExtendedData struct {
	Current      *CurrentConditions `json:"current"`
	HourlyPrecip map[string]int     `json:"hourly_precip"`
}
