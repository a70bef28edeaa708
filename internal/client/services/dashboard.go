package services

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/econdash/internal/client/models"
	"github.com/dmitrijs2005/econdash/internal/client/reshape"
	"github.com/dmitrijs2005/econdash/internal/client/worldbank"
	"github.com/dmitrijs2005/econdash/internal/logging"
)

// Snapshot is the outcome of one fetch cycle. When Fallback is set, both
// point lists hold synthetic data and Err carries the failure message.
type Snapshot struct {
	Series     []models.SeriesPoint
	Comparison []models.ComparisonPoint
	Fallback   bool
	Err        string
}

// DashboardService runs the fetch cycle feeding both charts: one request
// for the selected country over the full year range, one for the fixed
// comparison set at the end year. A failed cycle yields synthetic fallback
// data instead of an empty dashboard.
type DashboardService struct {
	data worldbank.Client
	rnd  *rand.Rand
	log  logging.Logger
}

// NewDashboardService constructs the service. rnd feeds the fallback
// generator only; pass a seeded source in tests, nil for a time-seeded one.
func NewDashboardService(data worldbank.Client, rnd *rand.Rand, log logging.Logger) *DashboardService {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &DashboardService{data: data, rnd: rnd, log: log}
}

// Load runs one fetch cycle for the committed filter set. It never returns
// an error: any failure is reported through the snapshot's Err/Fallback
// fields. In-flight cycles are not cancelled by later ones; staleness is
// handled by the caller.
func (s *DashboardService) Load(ctx context.Context, f models.FilterSet) Snapshot {
	log := s.log.With("cycle_id", uuid.NewString())
	log.Info(ctx, "fetch cycle started",
		"country", f.Country, "indicator", f.Indicator,
		"year_start", f.YearStart, "year_end", f.YearEnd)

	seriesRaw, err := s.data.Fetch(ctx, []string{f.Country}, f.Indicator, f.YearStart, f.YearEnd)
	if err != nil {
		return s.fallback(ctx, log, f, err)
	}

	comparisonRaw, err := s.data.Fetch(ctx, models.ComparisonCountries(), f.Indicator, f.YearEnd, f.YearEnd)
	if err != nil {
		return s.fallback(ctx, log, f, err)
	}

	snap := Snapshot{
		Series:     reshape.ToSeries(seriesRaw, f.Country),
		Comparison: reshape.ToComparison(comparisonRaw, f.YearEnd),
	}
	log.Info(ctx, "fetch cycle finished",
		"series_points", len(snap.Series), "comparison_points", len(snap.Comparison))
	return snap
}

func (s *DashboardService) fallback(ctx context.Context, log logging.Logger, f models.FilterSet, cause error) Snapshot {
	log.Error(ctx, "fetch cycle failed, serving fallback data", "error", cause)

	msg := cause.Error()
	if msg == "" {
		msg = "failed to fetch data"
	}

	base := models.ResolveIndicator(f.Indicator).BaseMagnitude
	return Snapshot{
		Series:     syntheticSeries(s.rnd, base, f.YearStart, f.YearEnd),
		Comparison: syntheticComparison(s.rnd, base),
		Fallback:   true,
		Err:        msg,
	}
}
