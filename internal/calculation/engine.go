package calculation

import (
	"context"

	"github.com/mysticbob/foodwastecalc/internal/domain"
	"github.com/shopspring/decimal"
)

// BaseCostPerCalorie is the raw grocery cost of one calorie in USD
var BaseCostPerCalorie = decimal.RequireFromString("0.0025")

// DaysPerMonth converts daily figures to monthly ones
var DaysPerMonth = decimal.NewFromInt(30)

// DefaultLeftoversPerPerson is the assumed monthly count of thrown-away
// leftovers per household member when none is given
const DefaultLeftoversPerPerson = 3

// RegionResolver maps a ZIP code to a regional multiplier
type RegionResolver interface {
	Resolve(zip string) domain.RegionMatch
}

// HouseholdInput is everything an estimate depends on
type HouseholdInput struct {
	People          []domain.Person
	UnitSystem      domain.UnitSystem
	ZIPCode         string
	Preferences     domain.ShoppingPreferences
	MealsOutPerWeek int
	LeftoversWasted *int

	// PriceMealsOut scales every member's cost by MealsOutBlend. The
	// household estimate leaves it off; scenario comparisons turn it on.
	PriceMealsOut bool
}

// InputFromConfiguration builds an estimate input from a parsed configuration
func InputFromConfiguration(cfg *domain.Configuration) HouseholdInput {
	return HouseholdInput{
		People:          cfg.People,
		UnitSystem:      cfg.UnitSystem,
		ZIPCode:         cfg.ZIPCode,
		Preferences:     cfg.Preferences,
		MealsOutPerWeek: cfg.MealsOutPerWeek,
		LeftoversWasted: cfg.LeftoversWasted,
	}
}

// Engine aggregates per-person calorie needs into household cost and
// waste figures. It holds no per-call state, so one engine can serve
// concurrent estimates.
type Engine struct {
	Regions RegionResolver
	Waste   WastePolicy
	Logger  Logger
}

// NewEngine creates an engine using the percentage waste model
func NewEngine(regions RegionResolver) *Engine {
	return &Engine{
		Regions: regions,
		Waste:   PercentageWaste{},
		Logger:  NopLogger{},
	}
}

// SetLogger sets the logger; nil selects the no-op logger
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// SetWastePolicy sets the waste policy; nil selects the percentage model
func (e *Engine) SetWastePolicy(p WastePolicy) {
	if p == nil {
		e.Waste = PercentageWaste{}
		return
	}
	e.Waste = p
}

// Aggregate computes the household result for a list of people. The
// breakdown follows the order of people.
func (e *Engine) Aggregate(ctx context.Context, people []domain.Person, unit domain.UnitSystem, zip string, prefs domain.ShoppingPreferences) (*domain.HouseholdResult, error) {
	return e.AggregateInput(ctx, HouseholdInput{
		People:      people,
		UnitSystem:  unit,
		ZIPCode:     zip,
		Preferences: prefs,
	})
}

// AggregateInput is Aggregate with the full input, including the
// leftovers count used by the leftovers waste model
func (e *Engine) AggregateInput(ctx context.Context, in HouseholdInput) (*domain.HouseholdResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prefs := in.Preferences.WithDefaults()
	region := e.Regions.Resolve(in.ZIPCode)
	prefFactor := ComposeFactor(prefs)
	perCalorie := BaseCostPerCalorie.Mul(prefFactor).Mul(region.Multiplier)
	if in.PriceMealsOut {
		if in.MealsOutPerWeek < 0 || in.MealsOutPerWeek > MealsPerWeek {
			return nil, domain.NewValidationError("meals_out_per_week", "must be between 0 and %d", MealsPerWeek)
		}
		perCalorie = perCalorie.Mul(MealsOutBlend(in.MealsOutPerWeek))
	}

	e.Logger.Debugf("aggregating %d people zip=%q region=%s multiplier=%s preference=%s",
		len(in.People), in.ZIPCode, region.DisplayName, region.Multiplier, prefFactor)

	result := &domain.HouseholdResult{
		TotalDailyCost:     decimal.Zero,
		Breakdown:          make([]domain.PersonBreakdown, 0, len(in.People)),
		RegionName:         region.DisplayName,
		RegionalMultiplier: region.Multiplier,
		PreferenceFactor:   prefFactor,
	}

	for _, person := range in.People {
		calories := EstimateDailyCalories(person.PersonProfile, in.UnitSystem)
		daily := decimal.NewFromInt(int64(calories)).Mul(perCalorie)

		e.Logger.Debugf("  %s: %d kcal, %s/day", person.Label, calories, daily.StringFixed(2))

		result.Breakdown = append(result.Breakdown, domain.PersonBreakdown{
			Label:     person.Label,
			Calories:  calories,
			DailyCost: daily,
		})
		result.TotalCalories += calories
		result.TotalDailyCost = result.TotalDailyCost.Add(daily)
	}
	result.TotalMonthlyCost = result.TotalDailyCost.Mul(DaysPerMonth)

	leftovers := len(in.People) * DefaultLeftoversPerPerson
	if in.LeftoversWasted != nil {
		leftovers = *in.LeftoversWasted
	}

	waste := e.Waste
	if waste == nil {
		waste = PercentageWaste{}
	}
	result.WasteModel = waste.Name()
	result.WastedCalories, result.WastedCost = waste.Apply(WasteInput{
		People:           len(in.People),
		TotalCalories:    result.TotalCalories,
		TotalMonthlyCost: result.TotalMonthlyCost,
		PreferenceFactor: prefFactor,
		RegionalFactor:   region.Multiplier,
		WasteLevel:       prefs.WasteLevel,
		LeftoversWasted:  leftovers,
	})

	return result, nil
}
