package worldbank

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/econdash/internal/client/models"
	"github.com/dmitrijs2005/econdash/internal/logging"
)

// DefaultBaseURL is the public World Bank v2 endpoint.
const DefaultBaseURL = "https://api.worldbank.org/v2"

// perPage is sized so one page covers the expected data volume
// (8 countries x ~60 years) and pagination never kicks in.
const perPage = 1000

// codeValue is the provider's {id, value} pair used for both the indicator
// and the country of a data point.
type codeValue struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// dataPoint mirrors one element of the provider's data array.
type dataPoint struct {
	Indicator   codeValue `json:"indicator"`
	Country     codeValue `json:"country"`
	CountryISO3 string    `json:"countryiso3code"`
	Date        string    `json:"date"`
	Value       *float64  `json:"value"`
	Unit        string    `json:"unit"`
	ObsStatus   string    `json:"obs_status"`
	Decimal     int       `json:"decimal"`
}

// HTTPClient is the Client implementation over net/http.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	log     logging.Logger
}

// NewHTTPClient constructs an HTTPClient against baseURL. The injected
// http.Client is used as-is; fetches carry no timeout beyond the caller's
// context.
func NewHTTPClient(baseURL string, hc *http.Client, log logging.Logger) *HTTPClient {
	if hc == nil {
		hc = &http.Client{}
	}
	return &HTTPClient{baseURL: strings.TrimRight(baseURL, "/"), hc: hc, log: log}
}

// Fetch requests the indicator for all countries in one bulk call over the
// inclusive [startYear, endYear] range. Country codes and the indicator key
// are resolved through the fixed catalogs, falling back to the raw value
// when unmapped.
//
// Observations with a null value are dropped; the rest are returned sorted
// ascending by year with stable ties. A null data array is a valid empty
// result (e.g. no data for the range).
func (c *HTTPClient) Fetch(ctx context.Context, countries []string, indicator string, startYear, endYear int) ([]models.Observation, error) {
	codes := make([]string, len(countries))
	for n, country := range countries {
		codes[n] = models.ResolveCountry(country).ProviderCode
	}
	ind := models.ResolveIndicator(indicator)

	url := fmt.Sprintf("%s/country/%s/indicator/%s?format=json&date=%d:%d&per_page=%d",
		c.baseURL, strings.Join(codes, ";"), ind.ProviderCode, startYear, endYear, perPage)

	c.log.Debug(ctx, "fetching indicator data", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("world bank request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Status: resp.StatusCode}
	}

	// The provider wraps every payload in a [metadata, dataPoints] array.
	var outer []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&outer); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponseShape, err)
	}
	if len(outer) < 2 {
		return nil, ErrInvalidResponseShape
	}

	var points []dataPoint
	if string(outer[1]) != "null" {
		if err := json.Unmarshal(outer[1], &points); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponseShape, err)
		}
	}

	observations := make([]models.Observation, 0, len(points))
	for _, p := range points {
		if p.Value == nil {
			continue
		}
		observations = append(observations, p.toObservation())
	}

	sort.SliceStable(observations, func(i, j int) bool {
		return observations[i].Year < observations[j].Year
	})

	c.log.Debug(ctx, "indicator data received", "points", len(observations), "indicator", ind.Key)

	return observations, nil
}

func (p dataPoint) toObservation() models.Observation {
	// Non-numeric provider dates map to year 0 and are excluded from any
	// exact-year match downstream.
	year, err := strconv.Atoi(p.Date)
	if err != nil {
		year = 0
	}
	return models.Observation{
		IndicatorID:    p.Indicator.ID,
		IndicatorLabel: p.Indicator.Value,
		CountryID:      p.Country.ID,
		CountryLabel:   p.Country.Value,
		CountryISO3:    p.CountryISO3,
		Year:           year,
		Value:          p.Value,
		Unit:           p.Unit,
		ObsStatus:      p.ObsStatus,
		Decimal:        p.Decimal,
	}
}
