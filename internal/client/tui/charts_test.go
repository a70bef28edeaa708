package tui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/econdash/internal/client/models"
)

func plainStyles() Styles {
	// zero-value styles render without ANSI escapes, keeping assertions
	// readable
	return Styles{}
}

func TestRenderSeriesChart(t *testing.T) {
	points := []models.SeriesPoint{
		{Year: 2020, Value: 1e12},
		{Year: 2021, Value: 2e12},
		{Year: 2022, Value: 3e12},
	}

	out := renderSeriesChart(points, models.KindCurrency, plainStyles())

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, 3, len([]rune(lines[0])), "one spark column per point")
	assert.Contains(t, lines[1], "2020")
	assert.Contains(t, lines[1], "2022")
	assert.Contains(t, lines[2], "$1.00T")
	assert.Contains(t, lines[2], "$3.00T")
}

func TestRenderSeriesChart_FlatSeries(t *testing.T) {
	points := []models.SeriesPoint{
		{Year: 2020, Value: 5},
		{Year: 2021, Value: 5},
	}

	out := renderSeriesChart(points, models.KindPercent, plainStyles())
	require.NotEmpty(t, out)
}

func TestRenderSeriesChart_Empty(t *testing.T) {
	out := renderSeriesChart(nil, models.KindPercent, plainStyles())
	assert.Contains(t, out, "no data points")
}

func TestRenderComparisonChart(t *testing.T) {
	points := []models.ComparisonPoint{
		{Name: "United States", Value: 4e12},
		{Name: "China", Value: 2e12},
		{Name: "Japan", Value: 1e12},
	}

	out := renderComparisonChart(points, models.KindCurrency, plainStyles())
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)

	barWidth := func(line string) int { return strings.Count(line, "█") }
	assert.Greater(t, barWidth(lines[0]), barWidth(lines[1]))
	assert.Greater(t, barWidth(lines[1]), barWidth(lines[2]))
	assert.Contains(t, lines[0], "United States")
	assert.Contains(t, lines[0], "$4.00T")
}

func TestRenderComparisonChart_TruncatesLongLabelsByRune(t *testing.T) {
	points := []models.ComparisonPoint{
		{Name: "日本とその近隣諸国の経済圏データ概要", Value: 10},
	}

	out := renderComparisonChart(points, models.KindPercent, plainStyles())

	assert.True(t, utf8.ValidString(out))
	assert.Contains(t, out, "日本とその近隣諸国の経済圏データ")
	assert.NotContains(t, out, "概要", "label keeps at most 16 runes")
}

func TestRenderComparisonChart_NonPositiveValues(t *testing.T) {
	points := []models.ComparisonPoint{
		{Name: "A", Value: 10},
		{Name: "B", Value: -2},
	}

	out := renderComparisonChart(points, models.KindPercent, plainStyles())
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Zero(t, strings.Count(lines[1], "█"), "negative values get an empty bar")
}
