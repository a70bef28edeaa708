package tui

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/econdash/internal/client/models"
)

const (
	sparkLevels  = "▁▂▃▄▅▆▇█"
	barMaxWidth  = 28
	barNameWidth = 16
)

// renderSeriesChart renders the single-country time series as a sparkline
// with a year axis and a value range line underneath.
func renderSeriesChart(points []models.SeriesPoint, kind models.ValueKind, st Styles) string {
	if len(points) == 0 {
		return st.Muted.Render("no data points")
	}

	min, max := points[0].Value, points[0].Value
	for _, p := range points[1:] {
		if p.Value < min {
			min = p.Value
		}
		if p.Value > max {
			max = p.Value
		}
	}

	levels := []rune(sparkLevels)
	var spark strings.Builder
	for _, p := range points {
		idx := len(levels) / 2
		if max > min {
			idx = int((p.Value - min) / (max - min) * float64(len(levels)-1))
		}
		spark.WriteRune(levels[idx])
	}

	axis := fmt.Sprintf("%d", points[0].Year)
	last := fmt.Sprintf("%d", points[len(points)-1].Year)
	if gap := len(points) - len(axis) - len(last); gap > 0 {
		axis += strings.Repeat(" ", gap)
	} else {
		axis += " "
	}
	axis += last

	lines := []string{
		st.Chart.Render(spark.String()),
		st.Muted.Render(axis),
		st.Muted.Render(fmt.Sprintf("min %s  max %s", formatValue(min, kind), formatValue(max, kind))),
	}
	return strings.Join(lines, "\n")
}

// renderComparisonChart renders the cross-country snapshot as horizontal
// bars scaled against the largest value. Non-positive values get an empty
// bar but keep their row.
func renderComparisonChart(points []models.ComparisonPoint, kind models.ValueKind, st Styles) string {
	if len(points) == 0 {
		return st.Muted.Render("no data points")
	}

	var max float64
	for _, p := range points {
		if p.Value > max {
			max = p.Value
		}
	}

	lines := make([]string, 0, len(points))
	for _, p := range points {
		// truncate by rune, provider labels are not guaranteed ASCII
		name := p.Name
		if runes := []rune(name); len(runes) > barNameWidth {
			name = string(runes[:barNameWidth])
		}

		width := 0
		if max > 0 && p.Value > 0 {
			width = int(p.Value / max * barMaxWidth)
			if width == 0 {
				width = 1
			}
		}

		lines = append(lines, fmt.Sprintf("%-*s %s %s",
			barNameWidth, name,
			st.Bar.Render(strings.Repeat("█", width)),
			formatValue(p.Value, kind)))
	}
	return strings.Join(lines, "\n")
}
