package adjust

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mysticbob/foodwastecalc/internal/domain"
	"github.com/shopspring/decimal"
)

// BLS public API defaults
const (
	DefaultBLSEndpoint = "https://api.bls.gov/publicAPI/v2/timeseries/data/"
	SeriesFoodAtHome   = "CUSR0000SAF11"
	SeriesFoodAway     = "CUSR0000SEFV"
)

// BLSSource fetches national food CPI series from the Bureau of Labor
// Statistics. The same national figures are returned for every region.
type BLSSource struct {
	Endpoint string
	APIKey   string
	Client   *http.Client
	Now      func() time.Time
}

// NewBLSSource creates a source for the public BLS endpoint
func NewBLSSource(apiKey string) *BLSSource {
	return &BLSSource{
		Endpoint: DefaultBLSEndpoint,
		APIKey:   apiKey,
		Client:   &http.Client{Timeout: 30 * time.Second},
		Now:      time.Now,
	}
}

type blsRequest struct {
	SeriesID        []string `json:"seriesid"`
	StartYear       string   `json:"startyear"`
	EndYear         string   `json:"endyear"`
	RegistrationKey string   `json:"registrationkey,omitempty"`
}

type blsResponse struct {
	Status  string   `json:"status"`
	Message []string `json:"message"`
	Results struct {
		Series []blsSeries `json:"series"`
	} `json:"Results"`
}

type blsSeries struct {
	SeriesID string         `json:"seriesID"`
	Data     []blsDataPoint `json:"data"`
}

type blsDataPoint struct {
	Year   string `json:"year"`
	Period string `json:"period"`
	Value  string `json:"value"`
}

// Fetch implements PriceIndexSource
func (s *BLSSource) Fetch(ctx context.Context, _ string) (domain.PriceIndices, error) {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}

	body, err := json.Marshal(blsRequest{
		SeriesID:        []string{SeriesFoodAtHome, SeriesFoodAway},
		StartYear:       strconv.Itoa(now.Year() - 1),
		EndYear:         strconv.Itoa(now.Year()),
		RegistrationKey: s.APIKey,
	})
	if err != nil {
		return domain.PriceIndices{}, fmt.Errorf("failed to encode BLS request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader(body))
	if err != nil {
		return domain.PriceIndices{}, fmt.Errorf("failed to build BLS request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return domain.PriceIndices{}, fmt.Errorf("BLS request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.PriceIndices{}, fmt.Errorf("BLS returned %s: %s", resp.Status, strings.TrimSpace(string(snippet)))
	}

	var parsed blsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return domain.PriceIndices{}, fmt.Errorf("failed to decode BLS response: %w", err)
	}
	if parsed.Status != "REQUEST_SUCCEEDED" {
		return domain.PriceIndices{}, fmt.Errorf("BLS request not successful: %s %s", parsed.Status, strings.Join(parsed.Message, "; "))
	}

	var indices domain.PriceIndices
	found := 0
	for _, series := range parsed.Results.Series {
		idx, err := summarizeSeries(series.Data, now)
		if err != nil {
			return domain.PriceIndices{}, fmt.Errorf("series %s: %w", series.SeriesID, err)
		}
		switch series.SeriesID {
		case SeriesFoodAtHome:
			indices.Groceries = idx
			found++
		case SeriesFoodAway:
			indices.Restaurant = idx
			found++
		}
	}
	if found != 2 {
		return domain.PriceIndices{}, fmt.Errorf("BLS response missing series (got %d of 2)", found)
	}
	return indices, nil
}

type observation struct {
	year  int
	month int
	value decimal.Decimal
}

// summarizeSeries turns monthly observations into the latest value and its
// month-over-month and year-over-year percent changes
func summarizeSeries(points []blsDataPoint, fetched time.Time) (domain.PriceIndex, error) {
	obs := make([]observation, 0, len(points))
	for _, p := range points {
		// M13 is the annual average
		if !strings.HasPrefix(p.Period, "M") || p.Period == "M13" {
			continue
		}
		year, err := strconv.Atoi(p.Year)
		if err != nil {
			continue
		}
		month, err := strconv.Atoi(strings.TrimPrefix(p.Period, "M"))
		if err != nil {
			continue
		}
		value, err := decimal.NewFromString(p.Value)
		if err != nil {
			continue
		}
		obs = append(obs, observation{year: year, month: month, value: value})
	}
	if len(obs) == 0 {
		return domain.PriceIndex{}, fmt.Errorf("no monthly observations")
	}

	sort.Slice(obs, func(i, j int) bool {
		if obs[i].year != obs[j].year {
			return obs[i].year > obs[j].year
		}
		return obs[i].month > obs[j].month
	})

	latest := obs[0]
	idx := domain.PriceIndex{
		Timestamp:          fetched,
		BaseValue:          latest.value,
		MonthlyChange:      decimal.Zero,
		YearOverYearChange: decimal.Zero,
	}
	if len(obs) > 1 {
		idx.MonthlyChange = percentChange(obs[1].value, latest.value)
	}
	for _, o := range obs[1:] {
		if o.year == latest.year-1 && o.month == latest.month {
			idx.YearOverYearChange = percentChange(o.value, latest.value)
			break
		}
	}
	return idx, nil
}

func percentChange(from, to decimal.Decimal) decimal.Decimal {
	if from.IsZero() {
		return decimal.Zero
	}
	return to.Sub(from).Div(from).Mul(hundred).Round(2)
}
