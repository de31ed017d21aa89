package calculation

import (
	"math"

	"github.com/mysticbob/foodwastecalc/internal/domain"
	"github.com/mysticbob/foodwastecalc/internal/units"
)

// Fallbacks applied when a person is missing a numeric field. One
// incomplete household member must not abort the whole estimate.
const (
	DefaultAge            = 30.0
	DefaultMetricWeight   = 70.0  // kg
	DefaultMetricHeight   = 170.0 // cm
	DefaultImperialWeight = 154.0 // lb
)

// activityMultipliers scale BMR to total daily energy expenditure
var activityMultipliers = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:  1.2,
	domain.ActivityLight:      1.375,
	domain.ActivityModerate:   1.55,
	domain.ActivityActive:     1.725,
	domain.ActivityVeryActive: 1.9,
}

// ActivityMultiplier returns the TDEE multiplier for an activity level.
// Unknown levels use the moderate multiplier.
func ActivityMultiplier(level domain.ActivityLevel) float64 {
	if m, ok := activityMultipliers[level]; ok {
		return m
	}
	return activityMultipliers[domain.ActivityModerate]
}

// BodyMetrics resolves weight in kg and height in cm for the unit system,
// substituting defaults for missing values
func BodyMetrics(p domain.PersonProfile, unit domain.UnitSystem) (weightKg, heightCm float64) {
	if unit == domain.UnitImperial {
		lbs := p.ImperialWeight
		if lbs <= 0 {
			lbs = DefaultImperialWeight
		}
		weightKg = units.PoundsToKg(lbs)

		if inches, ok := units.ParseHeightToInches(p.ImperialHeight); ok && inches > 0 {
			heightCm = units.InchesToCm(float64(inches))
		} else {
			heightCm = metricHeightOrDefault(p)
		}
		return weightKg, heightCm
	}

	weightKg = p.MetricWeight
	if weightKg <= 0 {
		weightKg = DefaultMetricWeight
	}
	return weightKg, metricHeightOrDefault(p)
}

func metricHeightOrDefault(p domain.PersonProfile) float64 {
	if p.MetricHeight > 0 {
		return p.MetricHeight
	}
	return DefaultMetricHeight
}

// BasalMetabolicRate computes BMR with the Mifflin-St Jeor equation
func BasalMetabolicRate(p domain.PersonProfile, unit domain.UnitSystem) float64 {
	weightKg, heightCm := BodyMetrics(p, unit)

	age := p.Age
	if age <= 0 {
		age = DefaultAge
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*age
	if p.Gender == domain.GenderMale {
		return bmr + 5
	}
	return bmr - 161
}

// EstimateDailyCalories returns a person's daily calorie need, rounded
// once to whole calories
func EstimateDailyCalories(p domain.PersonProfile, unit domain.UnitSystem) int {
	bmr := BasalMetabolicRate(p, unit)
	return int(math.Round(bmr * ActivityMultiplier(p.ActivityLevel)))
}
