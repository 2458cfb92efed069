package chat

import (
	"fmt"
	"strings"

	"github.com/wxdeck/wxdeck/internal/models"
)

// DefaultMaxHours caps the hourly lines embedded in the chat context. The
// upstream hourly feed runs to 156 entries; feeding all of them in bloats
// the prompt without improving answers.
const DefaultMaxHours = 48

// noHourlyData is the literal placeholder emitted when the forecast carries
// no hourly periods, so the collaborator knows the data is absent rather
// than silently empty.
const noHourlyData = "Hourly data not available."

const systemPromptFormat = `You are a helpful weather assistant. You answer questions about the weather
based on official National Weather Service (NWS) forecast data provided below.

Rules:
- Base your answers ONLY on the forecast data provided. Do not make up weather information.
- Be specific about times, temperatures, and conditions when the data supports it.
- If the forecast data does not contain enough information to answer a question, say so honestly.
- Keep answers concise and conversational.
- When discussing timing (e.g., "when will the storm arrive"), reference the forecast period names and times.
- For activity-related questions (e.g., "can I mow the lawn"), consider temperature, precipitation, and wind.

Location: %s
Coordinates: %g, %g

--- STANDARD FORECAST (12-hour periods) ---
%s

--- HOURLY FORECAST (next 24+ hours) ---
%s
`

// StandardContext renders every 12-hour period as one line of readable text.
func StandardContext(f models.Forecast) string {
	lines := make([]string, 0, len(f.Periods))
	for _, p := range f.Periods {
		lines = append(lines, fmt.Sprintf("%s: %s (Temp: %d%s, Wind: %s %s)",
			p.Name, p.DetailedForecast, p.Temperature, p.TemperatureUnit, p.WindSpeed, p.WindDirection))
	}
	return strings.Join(lines, "\n")
}

// HourlyContext renders up to maxHours hourly periods as one line each. An
// empty hourly sequence yields the placeholder sentence instead of an empty
// block.
func HourlyContext(f models.Forecast, maxHours int) string {
	if maxHours <= 0 {
		maxHours = DefaultMaxHours
	}
	if len(f.HourlyPeriods) == 0 {
		return noHourlyData
	}

	periods := f.HourlyPeriods
	if len(periods) > maxHours {
		periods = periods[:maxHours]
	}
	lines := make([]string, 0, len(periods))
	for _, p := range periods {
		lines = append(lines, fmt.Sprintf("%s: %s, %d%s, Wind %s %s",
			p.StartTime, p.ShortForecast, p.Temperature, p.TemperatureUnit, p.WindSpeed, p.WindDirection))
	}
	return strings.Join(lines, "\n")
}

// BuildContext assembles the complete system prompt grounding the
// collaborator in the forecast. It is deterministic and references nothing
// outside the passed-in forecast and location.
func BuildContext(f models.Forecast, loc models.GeoLocation, maxHours int) string {
	return fmt.Sprintf(systemPromptFormat,
		loc.DisplayName, loc.Latitude, loc.Longitude,
		StandardContext(f), HourlyContext(f, maxHours))
}
