package adjust

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mysticbob/foodwastecalc/internal/data"
	"github.com/mysticbob/foodwastecalc/internal/domain"
	"github.com/mysticbob/foodwastecalc/internal/logging"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// Defaults for the refresh policy
const (
	DefaultStaleAfter     = 24 * time.Hour
	DefaultRefreshTimeout = 10 * time.Second
	DefaultRetryAfter     = 5 * time.Minute
)

// PriceIndexSource supplies current grocery and restaurant price indices
// for a region key
type PriceIndexSource interface {
	Fetch(ctx context.Context, regionKey string) (domain.PriceIndices, error)
}

// Adjuster produces seasonal and inflation multipliers from regional data.
// Reads never wait on a refresh: stale data is served with Fresh=false
// while a single background refresh per region runs.
type Adjuster struct {
	mu       sync.RWMutex
	regions  map[string]domain.RegionalData
	plans    map[string]domain.FoodPlanCosts
	category string

	source         PriceIndexSource
	staleAfter     time.Duration
	refreshTimeout time.Duration
	retryAfter     time.Duration

	group   singleflight.Group
	pending sync.WaitGroup

	attemptMu   sync.Mutex
	lastAttempt map[string]time.Time
}

// Option configures an Adjuster
type Option func(*Adjuster)

// WithSource sets the external price index source. Without one, data is
// never refreshed.
func WithSource(s PriceIndexSource) Option {
	return func(a *Adjuster) { a.source = s }
}

// WithStaleAfter sets the age after which price indices are refreshed
func WithStaleAfter(d time.Duration) Option {
	return func(a *Adjuster) {
		if d > 0 {
			a.staleAfter = d
		}
	}
}

// WithRefreshTimeout bounds each refresh
func WithRefreshTimeout(d time.Duration) Option {
	return func(a *Adjuster) {
		if d > 0 {
			a.refreshTimeout = d
		}
	}
}

// WithRetryAfter sets how long a region waits between background refresh
// attempts while its data stays stale
func WithRetryAfter(d time.Duration) Option {
	return func(a *Adjuster) {
		if d > 0 {
			a.retryAfter = d
		}
	}
}

// WithCategory selects the food plan category used for benchmarking
func WithCategory(category string) Option {
	return func(a *Adjuster) { a.category = category }
}

// NewAdjuster creates an adjuster over a private copy of the regional data
func NewAdjuster(regions map[string]domain.RegionalData, plans map[string]domain.FoodPlanCosts, opts ...Option) *Adjuster {
	a := &Adjuster{
		regions:        make(map[string]domain.RegionalData, len(regions)),
		plans:          plans,
		category:       data.CategoryIndividual,
		staleAfter:     DefaultStaleAfter,
		refreshTimeout: DefaultRefreshTimeout,
		retryAfter:     DefaultRetryAfter,
		lastAttempt:    make(map[string]time.Time),
	}
	for k, v := range regions {
		a.regions[k] = v
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Category returns the food plan category used for benchmarking
func (a *Adjuster) Category() string {
	return a.category
}

// Adjust computes the multiplier for a region at time now and compares
// monthlyBudget against the food plan benchmarks. An unknown region key
// returns *domain.RegionNotFoundError.
func (a *Adjuster) Adjust(ctx context.Context, regionKey string, monthlyBudget decimal.Decimal, now time.Time) (*domain.CostAdjustmentResult, error) {
	rd, ok := a.lookup(regionKey)
	if !ok {
		return nil, &domain.RegionNotFoundError{Key: regionKey}
	}

	fresh := !a.isStale(rd, now)
	if !fresh && a.source != nil && a.claimAttempt(regionKey, now) {
		a.refreshInBackground(ctx, regionKey)
	}

	season := domain.SeasonFor(now)
	seasonal := rd.SeasonalFactors.For(season)
	inflation := InflationAdjustment(rd.PriceIndices.Groceries.YearOverYearChange)

	plans, ok := a.plans[a.category]
	if !ok {
		return nil, fmt.Errorf("no food plan benchmarks for category %q", a.category)
	}

	return &domain.CostAdjustmentResult{
		RegionKey:           regionKey,
		RegionName:          rd.Name,
		Season:              season,
		BaseMultiplier:      rd.CostMultiplier,
		SeasonalMultiplier:  seasonal,
		InflationAdjustment: inflation,
		TotalMultiplier:     rd.CostMultiplier.Mul(seasonal).Mul(inflation),
		LastUpdated:         rd.PriceIndices.Groceries.Timestamp,
		Fresh:               fresh,
		PriceIndices:        rd.PriceIndices,
		PlanComparison:      NearestPlan(a.category, plans, monthlyBudget),
	}, nil
}

// Refresh fetches price indices for a region and waits for the result.
// Concurrent refreshes of the same region share one fetch. Failures wrap
// domain.ErrRefreshFailed and leave the resident data untouched.
func (a *Adjuster) Refresh(ctx context.Context, regionKey string) error {
	if a.source == nil {
		return fmt.Errorf("%w: no price index source configured", domain.ErrRefreshFailed)
	}
	if _, ok := a.lookup(regionKey); !ok {
		return &domain.RegionNotFoundError{Key: regionKey}
	}

	ch := a.group.DoChan(regionKey, func() (interface{}, error) {
		return nil, a.fetchAndStore(ctx, regionKey)
	})
	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", domain.ErrRefreshFailed, ctx.Err())
	}
}

// Wait blocks until background refreshes started so far have finished
func (a *Adjuster) Wait() {
	a.pending.Wait()
}

// InflationAdjustment converts a year-over-year percent change into a multiplier
func InflationAdjustment(yoyPercent decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Add(yoyPercent.Div(decimal.NewFromInt(100)))
}

func (a *Adjuster) lookup(key string) (domain.RegionalData, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	rd, ok := a.regions[key]
	return rd, ok
}

func (a *Adjuster) isStale(rd domain.RegionalData, now time.Time) bool {
	return now.Sub(rd.PriceIndices.Groceries.Timestamp) > a.staleAfter
}

// claimAttempt records a background refresh attempt for regionKey at now,
// reporting false while the previous attempt is inside the retry window
func (a *Adjuster) claimAttempt(regionKey string, now time.Time) bool {
	a.attemptMu.Lock()
	defer a.attemptMu.Unlock()
	if last, ok := a.lastAttempt[regionKey]; ok && now.Sub(last) < a.retryAfter {
		return false
	}
	a.lastAttempt[regionKey] = now
	return true
}

func (a *Adjuster) refreshInBackground(ctx context.Context, regionKey string) {
	// detach from the caller so the refresh outlives the estimate
	bg := context.WithoutCancel(ctx)

	a.pending.Add(1)
	go func() {
		defer a.pending.Done()
		_, _, _ = a.group.Do(regionKey, func() (interface{}, error) {
			// an earlier refresh may have landed while this one was queued
			if rd, ok := a.lookup(regionKey); ok && !a.isStale(rd, time.Now()) {
				return nil, nil
			}
			err := a.fetchAndStore(bg, regionKey)
			if err != nil {
				logging.FromContext(bg).Warn().
					Str("component", "adjust").
					Str("region", regionKey).
					Err(err).
					Msg("price index refresh failed, keeping cached data")
			}
			return nil, err
		})
	}()
}

func (a *Adjuster) fetchAndStore(ctx context.Context, regionKey string) error {
	ctx, cancel := context.WithTimeout(ctx, a.refreshTimeout)
	defer cancel()

	log := logging.FromContext(ctx)
	log.Debug().Str("component", "adjust").Str("region", regionKey).Msg("refreshing price indices")

	indices, err := a.source.Fetch(ctx, regionKey)
	if err != nil {
		return fmt.Errorf("%w: region %s: %w", domain.ErrRefreshFailed, regionKey, err)
	}

	fetched := time.Now()
	if indices.Groceries.Timestamp.IsZero() {
		indices.Groceries.Timestamp = fetched
	}
	if indices.Restaurant.Timestamp.IsZero() {
		indices.Restaurant.Timestamp = fetched
	}

	a.mu.Lock()
	rd := a.regions[regionKey]
	rd.PriceIndices = indices
	a.regions[regionKey] = rd
	a.mu.Unlock()

	log.Info().
		Str("component", "adjust").
		Str("region", regionKey).
		Str("groceries_yoy", indices.Groceries.YearOverYearChange.String()).
		Msg("price indices refreshed")
	return nil
}
