package compare

import (
	"encoding/csv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"Daily Cost",
		"Monthly Cost",
		"Wasted Cost",
		"Wasted Calories",
		"Preference Factor",
		"Monthly Diff from Base",
		"Monthly % Change",
		"Waste Diff from Base",
		"Waste % Change",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if compSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
			return "", err
		}
	}

	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	return []string{
		result.ScenarioName,
		scenarioType,
		result.DailyCost.StringFixed(2),
		result.MonthlyCost.StringFixed(2),
		result.WastedCost.StringFixed(2),
		result.WastedCalories.StringFixed(0),
		result.PreferenceFactor.StringFixed(3),
		result.MonthlyDiffFromBase.StringFixed(2),
		result.MonthlyPctFromBase.StringFixed(1),
		result.WasteDiffFromBase.StringFixed(2),
		result.WastePctFromBase.StringFixed(1),
	}
}
