package tui

import (
	"fmt"

	"github.com/dmitrijs2005/econdash/internal/client/models"
)

// formatValue renders an indicator value for display. Currency values are
// abbreviated to trillions/billions/millions, counts to billions/millions,
// percentages with one decimal place.
func formatValue(v float64, kind models.ValueKind) string {
	switch kind {
	case models.KindCurrency:
		switch {
		case v >= 1e12 || v <= -1e12:
			return fmt.Sprintf("$%.2fT", v/1e12)
		case v >= 1e9 || v <= -1e9:
			return fmt.Sprintf("$%.2fB", v/1e9)
		case v >= 1e6 || v <= -1e6:
			return fmt.Sprintf("$%.2fM", v/1e6)
		default:
			return fmt.Sprintf("$%.0f", v)
		}
	case models.KindCount:
		switch {
		case v >= 1e9:
			return fmt.Sprintf("%.2fB", v/1e9)
		case v >= 1e6:
			return fmt.Sprintf("%.2fM", v/1e6)
		default:
			return fmt.Sprintf("%.0f", v)
		}
	default:
		return fmt.Sprintf("%.1f%%", v)
	}
}

// formatDelta renders the year-over-year change between the last two series
// points as a signed percentage. Returns "n/a" when the series is too short
// or the previous value is zero.
func formatDelta(series []models.SeriesPoint) string {
	if len(series) < 2 {
		return "n/a"
	}
	prev := series[len(series)-2].Value
	last := series[len(series)-1].Value
	if prev == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%+.1f%%", (last-prev)/prev*100)
}
