package forecast

import (
	"strings"

	"github.com/wxdeck/wxdeck/internal/models"
)

// DaySummary is one calendar day (or partial day) distilled from the NWS
// period sequence. High or Low is nil when the day is missing its daytime or
// nighttime half.
type DaySummary struct {
	Name          string  `json:"name"`
	FullName      string  `json:"full_name"`
	Short         string  `json:"short"`
	Detailed      string  `json:"detailed"`
	NightDetailed string  `json:"night_detailed"`
	High          *int    `json:"high"`
	Low           *int    `json:"low"`
	BarLeftPct    float64 `json:"bar_left_pct"`
	BarWidthPct   float64 `json:"bar_width_pct"`
	ColorLow      string  `json:"color_low"`
	ColorHigh     string  `json:"color_high"`
}

// dayAbbrev shortens a period name to a three-letter label for compact
// display ("Tuesday Night" -> "Tue").
func dayAbbrev(name string) string {
	name = strings.ReplaceAll(name, "This Afternoon", "Today")
	if len(name) <= 3 {
		return name
	}
	return name[:3]
}

// PairDays walks the ordered period sequence pairing each daytime period
// with the immediately following nighttime period into a single day record
// (high from the day, low from the night). An unpaired daytime period emits
// a day-only record; a leading nighttime period emits a night-only record.
//
// Periods that do not strictly alternate are not treated as an error: two
// consecutive daytime periods simply produce two day-only records, which
// keeps an upstream data anomaly visible instead of misattributing a low.
func PairDays(periods []models.ForecastPeriod) []DaySummary {
	var days []DaySummary
	for i := 0; i < len(periods); {
		p := periods[i]
		day := DaySummary{
			Name:     dayAbbrev(p.Name),
			FullName: strings.ReplaceAll(p.Name, "This Afternoon", "Today"),
			Short:    p.ShortForecast,
			Detailed: p.DetailedForecast,
		}

		if p.IsDaytime {
			high := p.Temperature
			day.High = &high
			if i+1 < len(periods) && !periods[i+1].IsDaytime {
				low := periods[i+1].Temperature
				day.Low = &low
				day.NightDetailed = periods[i+1].DetailedForecast
				i += 2
			} else {
				i++
			}
		} else {
			day.FullName = p.Name
			low := p.Temperature
			day.Low = &low
			i++
		}

		days = append(days, day)
	}
	return days
}

// ComputeTempBars positions each day's temperature-range bar relative to the
// global min/max across the whole sequence, so bars are comparable between
// days in one view. Width has a floor of 3% so a single-degree span stays
// visible; a day missing its low or high borrows the global min or max for
// geometry only.
func ComputeTempBars(days []DaySummary) []DaySummary {
	haveLow, haveHigh := false, false
	var globalMin, globalMax int
	for _, d := range days {
		if d.Low != nil && (!haveLow || *d.Low < globalMin) {
			globalMin = *d.Low
			haveLow = true
		}
		if d.High != nil && (!haveHigh || *d.High > globalMax) {
			globalMax = *d.High
			haveHigh = true
		}
	}
	if !haveLow || !haveHigh {
		return days
	}

	spread := globalMax - globalMin
	if spread < 1 {
		spread = 1
	}

	for i := range days {
		lo, hi := globalMin, globalMax
		if days[i].Low != nil {
			lo = *days[i].Low
		}
		if days[i].High != nil {
			hi = *days[i].High
		}

		days[i].BarLeftPct = float64(lo-globalMin) / float64(spread) * 100
		width := float64(hi-lo) / float64(spread) * 100
		if width < 3 {
			width = 3
		}
		days[i].BarWidthPct = width
		days[i].ColorLow = TempColor(lo)
		days[i].ColorHigh = TempColor(hi)
	}
	return days
}
