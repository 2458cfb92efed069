package nws

// Wire structs for the NWS geo-JSON API. Only the fields the service reads
// are declared; the upstream payloads carry much more.

type pointsResponse struct {
	Properties struct {
		Forecast            string `json:"forecast"`
		ForecastHourly      string `json:"forecastHourly"`
		ObservationStations string `json:"observationStations"`
		RelativeLocation    struct {
			Properties struct {
				City  string `json:"city"`
				State string `json:"state"`
			} `json:"properties"`
		} `json:"relativeLocation"`
	} `json:"properties"`
}

// valueField is the NWS quantitative-value wrapper. Value is nil when the
// station did not report the measurement.
type valueField struct {
	Value *float64 `json:"value"`
}

type periodJSON struct {
	Name                       string      `json:"name"`
	StartTime                  string      `json:"startTime"`
	IsDaytime                  bool        `json:"isDaytime"`
	Temperature                int         `json:"temperature"`
	TemperatureUnit            string      `json:"temperatureUnit"`
	WindSpeed                  string      `json:"windSpeed"`
	WindDirection              string      `json:"windDirection"`
	ShortForecast              string      `json:"shortForecast"`
	DetailedForecast           string      `json:"detailedForecast"`
	Icon                       string      `json:"icon"`
	ProbabilityOfPrecipitation *valueField `json:"probabilityOfPrecipitation"`
}

// forecastResponse covers both the standard and hourly forecast endpoints.
// Periods is a pointer so a response missing the field entirely (schema
// drift) is distinguishable from an empty list.
type forecastResponse struct {
	Properties struct {
		GeneratedAt string        `json:"generatedAt"`
		Periods     *[]periodJSON `json:"periods"`
	} `json:"properties"`
}

type stationsResponse struct {
	Features []struct {
		Properties struct {
			StationIdentifier string `json:"stationIdentifier"`
		} `json:"properties"`
	} `json:"features"`
}

type observationResponse struct {
	Properties struct {
		Temperature        valueField `json:"temperature"`
		Dewpoint           valueField `json:"dewpoint"`
		RelativeHumidity   valueField `json:"relativeHumidity"`
		WindSpeed          valueField `json:"windSpeed"`
		WindDirection      valueField `json:"windDirection"`
		BarometricPressure valueField `json:"barometricPressure"`
		Visibility         valueField `json:"visibility"`
		WindChill          valueField `json:"windChill"`
		HeatIndex          valueField `json:"heatIndex"`
		TextDescription    string     `json:"textDescription"`
	} `json:"properties"`
}
