// Package reshape turns provider observations into chart-ready point lists.
// Both functions are pure and total over well-formed input: an empty input
// yields an empty output and no input makes them fail.
package reshape

import (
	"sort"

	"github.com/dmitrijs2005/econdash/internal/client/models"
)

// ToSeries extracts the chronological single-country series for the line
// chart. The country code is resolved through the same catalog as the data
// client; observations match on either the provider alpha-2 id or the ISO3
// code. A nil value maps to 0 rather than failing — the data client already
// drops nulls, this is purely defensive.
func ToSeries(observations []models.Observation, country string) []models.SeriesPoint {
	code := models.ResolveCountry(country).ProviderCode

	points := make([]models.SeriesPoint, 0, len(observations))
	for _, o := range observations {
		if o.CountryID != code && o.CountryISO3 != code {
			continue
		}
		var value float64
		if o.Value != nil {
			value = *o.Value
		}
		points = append(points, models.SeriesPoint{Year: o.Year, Value: value})
	}

	// The client sorts its output already; re-sorting keeps the contract
	// independent of the caller.
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Year < points[j].Year
	})

	return points
}

// ToComparison extracts the single-year cross-country snapshot for the bar
// chart. Observations are matched on the exact target year (observations
// whose provider date was non-numeric never match). Points are keyed by
// country display label: the last value for a label wins, while the output
// order is the insertion order of first-seen labels.
func ToComparison(observations []models.Observation, year int) []models.ComparisonPoint {
	index := make(map[string]int, len(observations))
	points := make([]models.ComparisonPoint, 0, len(observations))

	for _, o := range observations {
		if o.Year != year || o.Value == nil {
			continue
		}
		if i, ok := index[o.CountryLabel]; ok {
			points[i].Value = *o.Value
			continue
		}
		index[o.CountryLabel] = len(points)
		points = append(points, models.ComparisonPoint{Name: o.CountryLabel, Value: *o.Value})
	}

	return points
}
