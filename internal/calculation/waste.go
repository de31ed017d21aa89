package calculation

import (
	"fmt"

	"github.com/mysticbob/foodwastecalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Waste model names
const (
	WasteModelPercentage = "percentage"
	WasteModelLeftovers  = "leftovers"
)

// WasteInput carries the household totals a waste policy works from
type WasteInput struct {
	People           int
	TotalCalories    int
	TotalMonthlyCost decimal.Decimal
	PreferenceFactor decimal.Decimal
	RegionalFactor   decimal.Decimal
	WasteLevel       domain.WasteLevel
	LeftoversWasted  int
}

// WastePolicy derives wasted calories and monthly wasted cost from
// household totals. A result is produced by exactly one policy.
type WastePolicy interface {
	Name() string
	Apply(in WasteInput) (wastedCalories, wastedCost decimal.Decimal)
}

var wastePercentages = map[domain.WasteLevel]decimal.Decimal{
	domain.WasteLow:     decimal.RequireFromString("0.05"),
	domain.WasteAverage: decimal.RequireFromString("0.20"),
	domain.WasteHigh:    decimal.RequireFromString("0.35"),
}

// WastePercentage returns the share of food wasted at a level.
// Unknown levels are treated as average.
func WastePercentage(level domain.WasteLevel) decimal.Decimal {
	if p, ok := wastePercentages[level]; ok {
		return p
	}
	return wastePercentages[domain.WasteAverage]
}

// PercentageWaste applies the waste level's fixed share to both the
// monthly cost and the total calories
type PercentageWaste struct{}

func (PercentageWaste) Name() string { return WasteModelPercentage }

func (PercentageWaste) Apply(in WasteInput) (decimal.Decimal, decimal.Decimal) {
	pct := WastePercentage(in.WasteLevel)
	return decimal.NewFromInt(int64(in.TotalCalories)).Mul(pct), in.TotalMonthlyCost.Mul(pct)
}

// leftover portions are a sixth of an average person's daily calories and
// cost twice the raw ingredient rate
var (
	portionsPerDay      = decimal.NewFromInt(6)
	preparedFoodPremium = decimal.NewFromInt(2)
)

// LeftoversWaste counts thrown-away leftover portions per month
type LeftoversWaste struct{}

func (LeftoversWaste) Name() string { return WasteModelLeftovers }

func (LeftoversWaste) Apply(in WasteInput) (decimal.Decimal, decimal.Decimal) {
	if in.People <= 0 || in.LeftoversWasted <= 0 {
		return decimal.Zero, decimal.Zero
	}
	avgDaily := decimal.NewFromInt(int64(in.TotalCalories)).Div(decimal.NewFromInt(int64(in.People)))
	calories := decimal.NewFromInt(int64(in.LeftoversWasted)).Mul(avgDaily).Div(portionsPerDay)
	cost := calories.Mul(BaseCostPerCalorie).
		Mul(in.PreferenceFactor).
		Mul(in.RegionalFactor).
		Mul(preparedFoodPremium)
	return calories, cost
}

// CreateWastePolicy returns the policy registered under name. An empty
// name selects the percentage model.
func CreateWastePolicy(name string) (WastePolicy, error) {
	switch name {
	case "", WasteModelPercentage:
		return PercentageWaste{}, nil
	case WasteModelLeftovers:
		return LeftoversWaste{}, nil
	default:
		return nil, fmt.Errorf("unknown waste model %q", name)
	}
}

// PaybackMonths is how many months of avoided waste pay for a purchase
// of the given price. ok is false when there is no waste to recover.
func PaybackMonths(price, monthlyWastedCost decimal.Decimal) (months int, ok bool) {
	if !monthlyWastedCost.IsPositive() {
		return 0, false
	}
	return int(price.Div(monthlyWastedCost).Ceil().IntPart()), true
}
