package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Season is a calendar quarter used for seasonal price factors
type Season string

const (
	SeasonWinter Season = "winter"
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
)

// SeasonFor returns the season a date falls in. March-May is spring,
// June-August summer, September-November fall, everything else winter.
func SeasonFor(t time.Time) Season {
	switch t.Month() {
	case time.March, time.April, time.May:
		return SeasonSpring
	case time.June, time.July, time.August:
		return SeasonSummer
	case time.September, time.October, time.November:
		return SeasonFall
	default:
		return SeasonWinter
	}
}

// SeasonalFactors holds a price multiplier per season
type SeasonalFactors struct {
	Winter decimal.Decimal `yaml:"winter" json:"winter"`
	Spring decimal.Decimal `yaml:"spring" json:"spring"`
	Summer decimal.Decimal `yaml:"summer" json:"summer"`
	Fall   decimal.Decimal `yaml:"fall" json:"fall"`
}

// For returns the factor for the given season
func (sf SeasonalFactors) For(s Season) decimal.Decimal {
	switch s {
	case SeasonSpring:
		return sf.Spring
	case SeasonSummer:
		return sf.Summer
	case SeasonFall:
		return sf.Fall
	default:
		return sf.Winter
	}
}

// PriceIndex is a snapshot of a consumer price index series
type PriceIndex struct {
	Timestamp          time.Time       `yaml:"timestamp" json:"timestamp"`
	BaseValue          decimal.Decimal `yaml:"base_value" json:"baseValue"`
	MonthlyChange      decimal.Decimal `yaml:"monthly_change" json:"monthlyChange"`           // percent
	YearOverYearChange decimal.Decimal `yaml:"year_over_year_change" json:"yearOverYearChange"` // percent
}

// PriceIndices groups the grocery and restaurant index series
type PriceIndices struct {
	Groceries  PriceIndex `yaml:"groceries" json:"groceries"`
	Restaurant PriceIndex `yaml:"restaurant" json:"restaurant"`
}

// RegionalData is the seasonal/inflation record for one coarse region
type RegionalData struct {
	Name            string          `yaml:"name" json:"name"`
	CostMultiplier  decimal.Decimal `yaml:"cost_multiplier" json:"costMultiplier"`
	SeasonalFactors SeasonalFactors `yaml:"seasonal_factors" json:"seasonalFactors"`
	PriceIndices    PriceIndices    `yaml:"price_indices" json:"priceIndices"`
}

// RegionTier identifies which lookup table produced a regional match
type RegionTier string

const (
	RegionTierMetro   RegionTier = "metro"
	RegionTierState   RegionTier = "state"
	RegionTierDefault RegionTier = "default"
)

// RegionMatch is the outcome of resolving a ZIP code
type RegionMatch struct {
	Multiplier  decimal.Decimal `json:"multiplier"`
	DisplayName string          `json:"displayName"`
	Tier        RegionTier      `json:"tier"`
	Key         string          `json:"key,omitempty"`
}

// Food plan names in benchmark table order
const (
	PlanThrifty  = "thrifty"
	PlanLowCost  = "lowCost"
	PlanModerate = "moderate"
	PlanLiberal  = "liberal"
)

// FoodPlan is a single named monthly benchmark
type FoodPlan struct {
	Name        string          `json:"name"`
	MonthlyCost decimal.Decimal `json:"monthlyCost"`
}

// FoodPlanCosts holds USDA-style monthly food plan costs for one category
type FoodPlanCosts struct {
	Thrifty  decimal.Decimal `yaml:"thrifty" json:"thrifty"`
	LowCost  decimal.Decimal `yaml:"low_cost" json:"lowCost"`
	Moderate decimal.Decimal `yaml:"moderate" json:"moderate"`
	Liberal  decimal.Decimal `yaml:"liberal" json:"liberal"`
}

// Plans returns the plans in fixed table order
func (fp FoodPlanCosts) Plans() []FoodPlan {
	return []FoodPlan{
		{Name: PlanThrifty, MonthlyCost: fp.Thrifty},
		{Name: PlanLowCost, MonthlyCost: fp.LowCost},
		{Name: PlanModerate, MonthlyCost: fp.Moderate},
		{Name: PlanLiberal, MonthlyCost: fp.Liberal},
	}
}

// PlanComparison reports the benchmark plan nearest to a budget
type PlanComparison struct {
	Category          string          `json:"category"`
	PlanName          string          `json:"planName"`
	MonthlyCost       decimal.Decimal `json:"monthlyCost"`
	PercentDifference decimal.Decimal `json:"percentDifference"`
}

// CostAdjustmentResult is the output of the seasonal/inflation adjuster
type CostAdjustmentResult struct {
	RegionKey           string          `json:"regionKey"`
	RegionName          string          `json:"regionName,omitempty"`
	Season              Season          `json:"season"`
	BaseMultiplier      decimal.Decimal `json:"baseMultiplier"`
	SeasonalMultiplier  decimal.Decimal `json:"seasonalMultiplier"`
	InflationAdjustment decimal.Decimal `json:"inflationAdjustment"`
	TotalMultiplier     decimal.Decimal `json:"totalMultiplier"`
	LastUpdated         time.Time       `json:"lastUpdated"`
	Fresh               bool            `json:"fresh"`
	PriceIndices        PriceIndices    `json:"priceIndices"`
	PlanComparison      PlanComparison  `json:"usdaPlanComparison"`
}

// RegionKeyForZIP returns the single-character region key used by the
// seasonal adjuster: the first character of the ZIP code
func RegionKeyForZIP(zip string) string {
	if zip == "" {
		return ""
	}
	return zip[:1]
}
