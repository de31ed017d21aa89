package compare

import (
	"fmt"

	"github.com/mysticbob/foodwastecalc/internal/domain"
	"github.com/mysticbob/foodwastecalc/internal/output"
	"github.com/shopspring/decimal"
)

// ComparisonResult represents a single scenario comparison with calculated metrics
type ComparisonResult struct {
	ScenarioName string                  `json:"scenarioName"`
	Description  string                  `json:"description,omitempty"`
	Scenario     domain.Scenario         `json:"scenario"`
	Result       *domain.HouseholdResult `json:"-"`

	// Key Metrics
	DailyCost        decimal.Decimal `json:"dailyCost"`
	MonthlyCost      decimal.Decimal `json:"monthlyCost"`
	WastedCost       decimal.Decimal `json:"wastedCost"`
	WastedCalories   decimal.Decimal `json:"wastedCalories"`
	PreferenceFactor decimal.Decimal `json:"preferenceFactor"`

	// Comparison to Base
	MonthlyDiffFromBase decimal.Decimal `json:"monthlyDiffFromBase"`
	MonthlyPctFromBase  decimal.Decimal `json:"monthlyPctFromBase"`
	WasteDiffFromBase   decimal.Decimal `json:"wasteDiffFromBase"`
	WastePctFromBase    decimal.Decimal `json:"wastePctFromBase"`
}

// ComparisonSet represents a collection of scenario comparisons
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"configPath,omitempty"`
}

// Rounded returns a copy with money in cents, calories whole and
// percentages to one decimal place
func (cs *ComparisonSet) Rounded() *ComparisonSet {
	c := *cs
	if cs.BaseResult != nil {
		base := cs.BaseResult.rounded()
		c.BaseResult = &base
	}
	c.AlternativeResults = make([]ComparisonResult, len(cs.AlternativeResults))
	for i, alt := range cs.AlternativeResults {
		c.AlternativeResults[i] = alt.rounded()
	}
	return &c
}

func (r ComparisonResult) rounded() ComparisonResult {
	r.DailyCost = r.DailyCost.Round(2)
	r.MonthlyCost = r.MonthlyCost.Round(2)
	r.WastedCost = r.WastedCost.Round(2)
	r.WastedCalories = r.WastedCalories.Round(0)
	r.MonthlyDiffFromBase = r.MonthlyDiffFromBase.Round(2)
	r.WasteDiffFromBase = r.WasteDiffFromBase.Round(2)
	r.MonthlyPctFromBase = r.MonthlyPctFromBase.Round(1)
	r.WastePctFromBase = r.WastePctFromBase.Round(1)
	return r
}

// MetricsCalculator extracts key metrics from household results
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes the comparison metrics for one scenario's result
func (mc *MetricsCalculator) CalculateMetrics(scenario *domain.Scenario, result *domain.HouseholdResult) ComparisonResult {
	return ComparisonResult{
		ScenarioName:     scenario.Name,
		Scenario:         *scenario.DeepCopy(),
		Result:           result,
		DailyCost:        result.TotalDailyCost,
		MonthlyCost:      result.TotalMonthlyCost,
		WastedCost:       result.WastedCost,
		WastedCalories:   result.WastedCalories,
		PreferenceFactor: result.PreferenceFactor,
	}
}

// CalculateComparison computes comparison metrics between a scenario and a base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.MonthlyDiffFromBase = scenario.MonthlyCost.Sub(base.MonthlyCost)
	scenario.MonthlyPctFromBase = percentOf(scenario.MonthlyDiffFromBase, base.MonthlyCost)

	scenario.WasteDiffFromBase = scenario.WastedCost.Sub(base.WastedCost)
	scenario.WastePctFromBase = percentOf(scenario.WasteDiffFromBase, base.WastedCost)

	return scenario
}

func percentOf(diff, base decimal.Decimal) decimal.Decimal {
	if base.IsZero() {
		return decimal.Zero
	}
	return diff.Div(base).Mul(decimal.NewFromInt(100))
}

var monthsPerYear = decimal.NewFromInt(12)

// GenerateRecommendations creates recommendations based on comparison results.
// Ties go to the scenario listed first.
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if len(compSet.AlternativeResults) == 0 || compSet.BaseResult == nil {
		return recommendations
	}
	base := compSet.BaseResult

	cheapest := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.MonthlyCost.LessThan(cheapest.MonthlyCost) {
			cheapest = alt
		}
	}

	if cheapest != base {
		saving := base.MonthlyCost.Sub(cheapest.MonthlyCost)
		recommendations = append(recommendations,
			fmt.Sprintf("Biggest Saving: %s saves %s per month (%s per year) over %s",
				cheapest.ScenarioName,
				output.FormatCurrency(saving),
				output.FormatCurrency(saving.Mul(monthsPerYear)),
				base.ScenarioName))
	} else {
		recommendations = append(recommendations,
			fmt.Sprintf("No alternative costs less than %s", base.ScenarioName))
	}

	leastWaste := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.WastedCost.LessThan(leastWaste.WastedCost) {
			leastWaste = alt
		}
	}

	if leastWaste != base {
		cut := base.WastedCost.Sub(leastWaste.WastedCost)
		recommendations = append(recommendations,
			fmt.Sprintf("Least Waste: %s throws away %s less food per month",
				leastWaste.ScenarioName, output.FormatCurrency(cut)))
	}

	return recommendations
}
