package adjust

import (
	"github.com/mysticbob/foodwastecalc/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// NearestPlan returns the food plan whose monthly cost is closest to
// budget. Plans are scanned thrifty to liberal and only a strictly
// smaller difference replaces the current pick, so ties keep the cheaper plan.
func NearestPlan(category string, plans domain.FoodPlanCosts, budget decimal.Decimal) domain.PlanComparison {
	var best domain.FoodPlan
	var bestDiff decimal.Decimal
	for i, plan := range plans.Plans() {
		diff := budget.Sub(plan.MonthlyCost).Abs()
		if i == 0 || diff.LessThan(bestDiff) {
			best, bestDiff = plan, diff
		}
	}

	pct := decimal.Zero
	if !best.MonthlyCost.IsZero() {
		pct = budget.Sub(best.MonthlyCost).Div(best.MonthlyCost).Mul(hundred)
	}

	return domain.PlanComparison{
		Category:          category,
		PlanName:          best.Name,
		MonthlyCost:       best.MonthlyCost,
		PercentDifference: pct,
	}
}
