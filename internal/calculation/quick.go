package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/mysticbob/foodwastecalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Quick estimate modes
const (
	QuickModeBlend    = "blend"
	QuickModeAdjusted = "adjusted"
)

const (
	MealsPerDay  = 3
	MealsPerWeek = MealsPerDay * 7
)

var (
	mealsPerDay = decimal.NewFromInt(MealsPerDay)

	// RestaurantMultiplier is the cost of a meal out relative to the same meal at home
	RestaurantMultiplier = decimal.RequireFromString("3.5")

	mealsOutShare = decimal.RequireFromString("0.4")
	mealsInShare  = decimal.RequireFromString("0.6")
)

// CostAdjuster supplies the seasonal/inflation multiplier used by the
// adjusted quick estimate
type CostAdjuster interface {
	Adjust(ctx context.Context, regionKey string, monthlyBudget decimal.Decimal, now time.Time) (*domain.CostAdjustmentResult, error)
}

// QuickEstimator prices a single person. It is kept separate from the
// household aggregator because its multiplier formulas differ.
type QuickEstimator struct {
	Mode     string
	Regions  RegionResolver
	Adjuster CostAdjuster
	Logger   Logger
	Now      func() time.Time
}

// NewBlendEstimator creates a quick estimator that blends meals in and
// meals out with the regional multiplier
func NewBlendEstimator(regions RegionResolver) *QuickEstimator {
	return &QuickEstimator{Mode: QuickModeBlend, Regions: regions, Logger: NopLogger{}, Now: time.Now}
}

// NewAdjustedEstimator creates a quick estimator driven by the seasonal
// and inflation adjuster
func NewAdjustedEstimator(regions RegionResolver, adjuster CostAdjuster) *QuickEstimator {
	return &QuickEstimator{Mode: QuickModeAdjusted, Regions: regions, Adjuster: adjuster, Logger: NopLogger{}, Now: time.Now}
}

// EstimatePerson prices one person
func (q *QuickEstimator) EstimatePerson(ctx context.Context, person domain.Person, unit domain.UnitSystem, zip string, prefs domain.ShoppingPreferences, mealsOutPerWeek int) (*domain.CostEstimate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if mealsOutPerWeek < 0 || mealsOutPerWeek > MealsPerWeek {
		return nil, domain.NewValidationError("meals_out_per_week", "must be between 0 and %d", MealsPerWeek)
	}

	now := time.Now()
	if q.Now != nil {
		now = q.Now()
	}

	calories := EstimateDailyCalories(person.PersonProfile, unit)
	baseDaily := decimal.NewFromInt(int64(calories)).Mul(BaseCostPerCalorie)
	prefFactor := ComposeFactor(prefs.WithDefaults())

	switch q.Mode {
	case "", QuickModeBlend:
		return q.blend(calories, baseDaily, prefFactor, zip, mealsOutPerWeek, now), nil
	case QuickModeAdjusted:
		return q.adjusted(ctx, calories, baseDaily, prefFactor, zip, now)
	default:
		return nil, fmt.Errorf("unknown quick estimate mode %q", q.Mode)
	}
}

// MealsOutBlend is the weekly cost of eating mealsOutPerWeek of the 21
// meals out, relative to eating every meal at home
func MealsOutBlend(mealsOutPerWeek int) decimal.Decimal {
	pctOut := decimal.NewFromInt(int64(mealsOutPerWeek)).Div(decimal.NewFromInt(MealsPerWeek))
	pctIn := decimal.NewFromInt(1).Sub(pctOut)
	return pctIn.Add(RestaurantMultiplier.Mul(pctOut))
}

func (q *QuickEstimator) blend(calories int, baseDaily, prefFactor decimal.Decimal, zip string, mealsOut int, now time.Time) *domain.CostEstimate {
	region := q.Regions.Resolve(zip)

	total := prefFactor.Mul(MealsOutBlend(mealsOut)).Mul(region.Multiplier)

	daily := baseDaily.Mul(total)
	homeMeal := baseDaily.Mul(prefFactor).Mul(region.Multiplier)

	return &domain.CostEstimate{
		Mode:               QuickModeBlend,
		Calories:           calories,
		Daily:              daily,
		Monthly:            daily.Mul(DaysPerMonth),
		Seasonal:           domain.SeasonFor(now),
		Regional:           region.DisplayName,
		RegionalMultiplier: region.Multiplier,
		TotalMultiplier:    total,
		MealsOutCost:       homeMeal.Mul(RestaurantMultiplier).Div(mealsPerDay),
		MealsInCost:        homeMeal.Div(mealsPerDay),
	}
}

func (q *QuickEstimator) adjusted(ctx context.Context, calories int, baseDaily, prefFactor decimal.Decimal, zip string, now time.Time) (*domain.CostEstimate, error) {
	if q.Adjuster == nil {
		return nil, fmt.Errorf("adjusted estimate requires a cost adjuster")
	}

	daily := baseDaily.Mul(prefFactor)
	adj, err := q.Adjuster.Adjust(ctx, domain.RegionKeyForZIP(zip), daily.Mul(DaysPerMonth), now)
	if err != nil {
		return nil, fmt.Errorf("cost adjustment failed: %w", err)
	}
	if !adj.Fresh && q.Logger != nil {
		q.Logger.Warnf("price indices for region %s are stale (last updated %s)", adj.RegionKey, adj.LastUpdated.Format(time.RFC3339))
	}

	adjustedDaily := daily.Mul(adj.TotalMultiplier)
	name := adj.RegionName
	if name == "" && q.Regions != nil {
		name = q.Regions.Resolve(zip).DisplayName
	}

	return &domain.CostEstimate{
		Mode:               QuickModeAdjusted,
		Calories:           calories,
		Daily:              adjustedDaily,
		Monthly:            adjustedDaily.Mul(DaysPerMonth),
		Seasonal:           adj.Season,
		Regional:           name,
		RegionalMultiplier: adj.TotalMultiplier,
		TotalMultiplier:    adj.TotalMultiplier,
		MealsOutCost:       adjustedDaily.Mul(mealsOutShare).Div(mealsPerDay),
		MealsInCost:        adjustedDaily.Mul(mealsInShare).Div(mealsPerDay),
	}, nil
}
