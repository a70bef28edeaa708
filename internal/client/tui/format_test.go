package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/econdash/internal/client/models"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		kind models.ValueKind
		want string
	}{
		{name: "currency trillions", v: 1.5e13, kind: models.KindCurrency, want: "$15.00T"},
		{name: "currency billions", v: 2.5e9, kind: models.KindCurrency, want: "$2.50B"},
		{name: "currency millions", v: 3.25e6, kind: models.KindCurrency, want: "$3.25M"},
		{name: "currency small", v: 950, kind: models.KindCurrency, want: "$950"},
		{name: "count billions", v: 1.4e9, kind: models.KindCount, want: "1.40B"},
		{name: "count millions", v: 3.3e8, kind: models.KindCount, want: "330.00M"},
		{name: "count small", v: 1234, kind: models.KindCount, want: "1234"},
		{name: "percent", v: 3.14, kind: models.KindPercent, want: "3.1%"},
		{name: "percent negative", v: -0.5, kind: models.KindPercent, want: "-0.5%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatValue(tt.v, tt.kind))
		})
	}
}

func TestFormatDelta(t *testing.T) {
	series := []models.SeriesPoint{
		{Year: 2020, Value: 100},
		{Year: 2021, Value: 110},
	}
	assert.Equal(t, "+10.0%", formatDelta(series))

	falling := []models.SeriesPoint{
		{Year: 2020, Value: 200},
		{Year: 2021, Value: 150},
	}
	assert.Equal(t, "-25.0%", formatDelta(falling))
}

func TestFormatDelta_Degenerate(t *testing.T) {
	assert.Equal(t, "n/a", formatDelta(nil))
	assert.Equal(t, "n/a", formatDelta([]models.SeriesPoint{{Year: 2020, Value: 1}}))
	assert.Equal(t, "n/a", formatDelta([]models.SeriesPoint{{Year: 2020, Value: 0}, {Year: 2021, Value: 5}}))
}
