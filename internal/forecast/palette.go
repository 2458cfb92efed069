package forecast

import "math"

// Temperature bands map a Fahrenheit reading to a fixed color, used to tint
// both ends of each day's temperature bar.
type tempBand struct {
	maxF  int
	color string
}

var tempBands = []tempBand{
	{10, "#4a148c"}, // deep purple, frigid
	{32, "#5c6bc0"}, // indigo, freezing
	{50, "#42a5f5"}, // blue, cold
	{65, "#26c6da"}, // cyan, cool
	{75, "#66bb6a"}, // green, comfortable
	{85, "#ffca28"}, // amber, warm
	{95, "#ff7043"}, // deep orange, hot
}

// extremeHeatColor covers everything above the last band.
const extremeHeatColor = "#ef5350"

// TempColor maps a Fahrenheit temperature to its band color.
func TempColor(tempF int) string {
	for _, b := range tempBands {
		if tempF <= b.maxF {
			return b.color
		}
	}
	return extremeHeatColor
}

// MbarToInHg converts millibars to inches of mercury for the pressure detail
// card, rounded to 2 decimals.
func MbarToInHg(mbar float64) float64 {
	return math.Round(mbar*0.02953*100) / 100
}
