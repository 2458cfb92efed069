package nws

import "math"

// Unit conversions for NWS observation data, which arrives in SI units
// (Celsius, km/h, Pascals, meters). Rounding happens at parse time so the
// stored values are already display-ready.

// round1 rounds to 1 decimal, half to even, matching how the upstream
// values are conventionally reported (101325 Pa is 1013.2 mbar, not 1013.3).
func round1(v float64) float64 {
	return math.RoundToEven(v*10) / 10
}

// CelsiusToFahrenheit converts to Fahrenheit, rounded to the nearest degree.
func CelsiusToFahrenheit(c float64) int {
	return int(math.Round(c*9/5 + 32))
}

// KmhToMph converts km/h to mph, rounded to 1 decimal.
func KmhToMph(kmh float64) float64 {
	return round1(kmh / 1.609)
}

// PaToMbar converts Pascals to millibars, rounded to 1 decimal.
func PaToMbar(pa float64) float64 {
	return round1(pa / 100)
}

// MetersToMiles converts meters to miles, rounded to 1 decimal.
func MetersToMiles(m float64) float64 {
	return round1(m / 1609.34)
}

var compassPoints = []string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// CardinalDirection converts compass degrees to one of the 16 standard
// compass point labels. Each point spans 22.5 degrees centered on its
// heading; round-half-to-even keeps both 348.75 and 11.25 on N.
func CardinalDirection(degrees float64) string {
	idx := int(math.RoundToEven(degrees/22.5)) % 16
	if idx < 0 {
		idx += 16
	}
	return compassPoints[idx]
}
