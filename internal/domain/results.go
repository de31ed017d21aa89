package domain

import "github.com/shopspring/decimal"

// CostEstimate is the output of a single-person quick estimate
type CostEstimate struct {
	Mode               string          `json:"mode"`
	Calories           int             `json:"calories"`
	Daily              decimal.Decimal `json:"daily"`
	Monthly            decimal.Decimal `json:"monthly"`
	Seasonal           Season          `json:"seasonal"`
	Regional           string          `json:"regional"`
	RegionalMultiplier decimal.Decimal `json:"regionalMultiplier"`
	TotalMultiplier    decimal.Decimal `json:"totalMultiplier"`
	MealsOutCost       decimal.Decimal `json:"mealsOutCost"`
	MealsInCost        decimal.Decimal `json:"mealsInCost"`
}

// PersonBreakdown is one household member's share of the estimate
type PersonBreakdown struct {
	Label     string          `json:"label"`
	Calories  int             `json:"calories"`
	DailyCost decimal.Decimal `json:"dailyCost"`
}

// HouseholdResult is the aggregate estimate for a household.
// Breakdown is in the same order as the people it was computed from.
type HouseholdResult struct {
	TotalCalories      int               `json:"totalCalories"`
	TotalDailyCost     decimal.Decimal   `json:"totalDailyCost"`
	TotalMonthlyCost   decimal.Decimal   `json:"totalMonthlyCost"`
	WastedCalories     decimal.Decimal   `json:"wastedCalories"`
	WastedCost         decimal.Decimal   `json:"wastedCost"`
	Breakdown          []PersonBreakdown `json:"breakdown"`
	WasteModel         string            `json:"wasteModel"`
	RegionName         string            `json:"regionName"`
	RegionalMultiplier decimal.Decimal   `json:"regionalMultiplier"`
	PreferenceFactor   decimal.Decimal   `json:"preferenceFactor"`
}
