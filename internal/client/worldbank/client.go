// Package worldbank implements the indicator data client: one bulk request
// against the public statistics API per call, parsed into typed observations.
package worldbank

import (
	"context"

	"github.com/dmitrijs2005/econdash/internal/client/models"
)

// Client fetches indicator observations for a set of countries over an
// inclusive year range. Implementations perform exactly one remote call per
// Fetch and keep no state between calls: no caching, no retry.
type Client interface {
	Fetch(ctx context.Context, countries []string, indicator string, startYear, endYear int) ([]models.Observation, error)
}
