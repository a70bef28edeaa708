package services

import (
	"math/rand"

	"github.com/dmitrijs2005/econdash/internal/client/models"
)

// syntheticSeries builds a randomized but plausibly shaped series over the
// inclusive year range: the base magnitude with ±5% noise and a 2% per-year
// growth trend.
func syntheticSeries(rnd *rand.Rand, base float64, startYear, endYear int) []models.SeriesPoint {
	points := make([]models.SeriesPoint, 0, endYear-startYear+1)
	for year := startYear; year <= endYear; year++ {
		noise := 1 + rnd.Float64()*0.1 - 0.05
		trend := 1 + float64(year-startYear)*0.02
		points = append(points, models.SeriesPoint{Year: year, Value: base * noise * trend})
	}
	return points
}

// syntheticComparison builds randomized values between 80% and 120% of the
// base magnitude for the fixed fallback country set.
func syntheticComparison(rnd *rand.Rand, base float64) []models.ComparisonPoint {
	countries := models.FallbackCountries()
	points := make([]models.ComparisonPoint, 0, len(countries))
	for _, code := range countries {
		points = append(points, models.ComparisonPoint{
			Name:  code,
			Value: base * (0.8 + rnd.Float64()*0.4),
		})
	}
	return points
}
