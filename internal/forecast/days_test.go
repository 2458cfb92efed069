package forecast

import (
	"testing"

	"github.com/wxdeck/wxdeck/internal/models"
)

func period(name string, temp int, daytime bool) models.ForecastPeriod {
	return models.ForecastPeriod{
		Name:             name,
		Temperature:      temp,
		TemperatureUnit:  "F",
		IsDaytime:        daytime,
		ShortForecast:    "Mostly Sunny",
		DetailedForecast: "Mostly sunny, with a high near 45.",
	}
}

func TestPairDays(t *testing.T) {
	t.Parallel()

	periods := []models.ForecastPeriod{
		period("Today", 45, true),
		period("Tonight", 28, false),
		period("Tuesday", 50, true),
		period("Tuesday Night", 31, false),
	}

	days := PairDays(periods)
	if len(days) != 2 {
		t.Fatalf("len(days) = %d, want 2", len(days))
	}

	first := days[0]
	if first.High == nil || *first.High != 45 {
		t.Errorf("High = %v, want 45", first.High)
	}
	if first.Low == nil || *first.Low != 28 {
		t.Errorf("Low = %v, want 28", first.Low)
	}
	if first.Name != "Tod" {
		t.Errorf("Name = %q, want Tod", first.Name)
	}
	if first.FullName != "Today" {
		t.Errorf("FullName = %q, want Today", first.FullName)
	}

	second := days[1]
	if second.Name != "Tue" {
		t.Errorf("Name = %q, want Tue", second.Name)
	}
	if second.High == nil || *second.High != 50 || second.Low == nil || *second.Low != 31 {
		t.Errorf("day 2 = high %v low %v, want 50/31", second.High, second.Low)
	}
}

func TestPairDaysLeadingNight(t *testing.T) {
	t.Parallel()

	// A forecast fetched in the evening starts with "Tonight": the first
	// record has a low but no high.
	days := PairDays([]models.ForecastPeriod{
		period("Tonight", 28, false),
		period("Tuesday", 50, true),
		period("Tuesday Night", 31, false),
	})
	if len(days) != 2 {
		t.Fatalf("len(days) = %d, want 2", len(days))
	}
	if days[0].High != nil {
		t.Errorf("High = %v, want nil for a night-only record", *days[0].High)
	}
	if days[0].Low == nil || *days[0].Low != 28 {
		t.Errorf("Low = %v, want 28", days[0].Low)
	}
	if days[0].FullName != "Tonight" {
		t.Errorf("FullName = %q, want Tonight", days[0].FullName)
	}
}

func TestPairDaysThisAfternoon(t *testing.T) {
	t.Parallel()

	days := PairDays([]models.ForecastPeriod{
		period("This Afternoon", 72, true),
		period("Tonight", 55, false),
	})
	if len(days) != 1 {
		t.Fatalf("len(days) = %d, want 1", len(days))
	}
	if days[0].Name != "Tod" || days[0].FullName != "Today" {
		t.Errorf("names = %q / %q, want Tod / Today", days[0].Name, days[0].FullName)
	}
}

func TestPairDaysConsecutiveDaytime(t *testing.T) {
	t.Parallel()

	// Non-alternating input is passed through, not rejected: each daytime
	// period becomes its own day-only record.
	days := PairDays([]models.ForecastPeriod{
		period("Tuesday", 50, true),
		period("Wednesday", 52, true),
	})
	if len(days) != 2 {
		t.Fatalf("len(days) = %d, want 2", len(days))
	}
	for i, d := range days {
		if d.Low != nil {
			t.Errorf("days[%d].Low = %v, want nil", i, *d.Low)
		}
		if d.High == nil {
			t.Errorf("days[%d].High = nil, want a value", i)
		}
	}
}

func TestPairDaysTrailingDaytime(t *testing.T) {
	t.Parallel()

	days := PairDays([]models.ForecastPeriod{
		period("Today", 45, true),
		period("Tonight", 28, false),
		period("Tuesday", 50, true),
	})
	if len(days) != 2 {
		t.Fatalf("len(days) = %d, want 2", len(days))
	}
	last := days[1]
	if last.High == nil || *last.High != 50 {
		t.Errorf("High = %v, want 50", last.High)
	}
	if last.Low != nil {
		t.Errorf("Low = %v, want nil", *last.Low)
	}
}

func TestPairDaysEmpty(t *testing.T) {
	t.Parallel()

	if days := PairDays(nil); len(days) != 0 {
		t.Errorf("len(days) = %d, want 0", len(days))
	}
}

func TestComputeTempBars(t *testing.T) {
	t.Parallel()

	iptr := func(v int) *int { return &v }
	days := []DaySummary{
		{High: iptr(40), Low: iptr(20)},
		{High: iptr(50), Low: iptr(30)},
	}

	days = ComputeTempBars(days)

	// Global range is 20..50, spread 30.
	if got := days[0].BarLeftPct; got != 0 {
		t.Errorf("days[0].BarLeftPct = %v, want 0", got)
	}
	if got := days[0].BarWidthPct; !approx(got, 66.6667) {
		t.Errorf("days[0].BarWidthPct = %v, want ~66.67", got)
	}
	if got := days[1].BarLeftPct; !approx(got, 33.3333) {
		t.Errorf("days[1].BarLeftPct = %v, want ~33.33", got)
	}
	if got := days[1].BarWidthPct; !approx(got, 66.6667) {
		t.Errorf("days[1].BarWidthPct = %v, want ~66.67", got)
	}

	if days[0].ColorLow != TempColor(20) || days[0].ColorHigh != TempColor(40) {
		t.Errorf("days[0] colors = %q/%q", days[0].ColorLow, days[0].ColorHigh)
	}
}

func TestComputeTempBarsWidthFloor(t *testing.T) {
	t.Parallel()

	iptr := func(v int) *int { return &v }
	days := ComputeTempBars([]DaySummary{
		{High: iptr(100), Low: iptr(0)},
		{High: iptr(51), Low: iptr(50)},
	})
	if got := days[1].BarWidthPct; got != 3 {
		t.Errorf("BarWidthPct = %v, want the 3%% floor", got)
	}
}

func TestComputeTempBarsSpreadFloor(t *testing.T) {
	t.Parallel()

	// All temperatures identical: spread clamps to 1 so nothing divides by
	// zero, and every bar sits at the left edge at minimum width.
	iptr := func(v int) *int { return &v }
	days := ComputeTempBars([]DaySummary{
		{High: iptr(70), Low: iptr(70)},
	})
	if days[0].BarLeftPct != 0 || days[0].BarWidthPct != 3 {
		t.Errorf("bar = left %v width %v, want 0 / 3", days[0].BarLeftPct, days[0].BarWidthPct)
	}
}

func TestComputeTempBarsMissingHalfBorrowsGlobal(t *testing.T) {
	t.Parallel()

	iptr := func(v int) *int { return &v }
	days := ComputeTempBars([]DaySummary{
		{Low: iptr(28)},             // leading night, no high
		{High: iptr(50), Low: iptr(30)},
	})

	// The night-only record spans from its low to the global max.
	if got := days[0].BarLeftPct; got != 0 {
		t.Errorf("BarLeftPct = %v, want 0", got)
	}
	if got := days[0].BarWidthPct; got != 100 {
		t.Errorf("BarWidthPct = %v, want 100", got)
	}
	if days[0].High != nil {
		t.Error("geometry must not materialize a High value")
	}
}

func TestComputeTempBarsNoCompleteRange(t *testing.T) {
	t.Parallel()

	iptr := func(v int) *int { return &v }
	days := ComputeTempBars([]DaySummary{{Low: iptr(28)}})
	if days[0].BarWidthPct != 0 || days[0].ColorLow != "" {
		t.Errorf("geometry computed without a global range: %+v", days[0])
	}
}

func approx(got, want float64) bool {
	d := got - want
	return d < 0.01 && d > -0.01
}
