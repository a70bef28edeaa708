// Package models defines the data types shared by the econdash client:
// provider observations, chart points, the committed filter set, the
// authenticated session, and the country/indicator catalogs.
package models

// Observation is one (country, indicator, year) data point as parsed from
// the statistics provider. Observations are immutable once constructed.
type Observation struct {
	IndicatorID    string
	IndicatorLabel string
	CountryID      string // provider alpha-2 code
	CountryLabel   string
	CountryISO3    string
	Year           int // 0 when the provider date string is not numeric
	Value          *float64
	Unit           string
	ObsStatus      string
	Decimal        int
}

// SeriesPoint is one point of the single-country chronological series.
type SeriesPoint struct {
	Year  int
	Value float64
}

// ComparisonPoint is one country's value in the single-year cross-country
// snapshot. Name is the country display label.
type ComparisonPoint struct {
	Name  string
	Value float64
}
