package calculation

import (
	"testing"

	"github.com/mysticbob/foodwastecalc/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestEstimateDailyCalories(t *testing.T) {
	tests := []struct {
		name     string
		profile  domain.PersonProfile
		unit     domain.UnitSystem
		expected int
	}{
		{
			name: "imperial adult male, active",
			profile: domain.PersonProfile{
				Age: 53, Gender: domain.GenderMale,
				ImperialHeight: "5'10\"", ImperialWeight: 170,
				ActivityLevel: domain.ActivityActive,
			},
			unit:     domain.UnitImperial,
			expected: 2799,
		},
		{
			name: "metric adult female, moderate",
			profile: domain.PersonProfile{
				Age: 45, Gender: domain.GenderFemale,
				MetricHeight: 165, MetricWeight: 63.5,
				ActivityLevel: domain.ActivityModerate,
			},
			unit:     domain.UnitMetric,
			expected: 1984,
		},
		{
			name: "imperial adult female, moderate",
			profile: domain.PersonProfile{
				Age: 45, Gender: domain.GenderFemale,
				ImperialHeight: "5'5\"", ImperialWeight: 140,
				ActivityLevel: domain.ActivityModerate,
			},
			unit:     domain.UnitImperial,
			expected: 1985,
		},
		{
			name:     "all fields missing falls back to defaults",
			profile:  domain.PersonProfile{},
			unit:     domain.UnitMetric,
			expected: 2250,
		},
		{
			name: "unknown activity level uses moderate",
			profile: domain.PersonProfile{
				Age: 45, Gender: domain.GenderFemale,
				MetricHeight: 165, MetricWeight: 63.5,
				ActivityLevel: "marathon",
			},
			unit:     domain.UnitMetric,
			expected: 1984,
		},
		{
			name: "unparseable imperial height uses metric height",
			profile: domain.PersonProfile{
				Age: 30, Gender: domain.GenderMale,
				ImperialHeight: "tall", MetricHeight: 180, ImperialWeight: 154,
				ActivityLevel: domain.ActivitySedentary,
			},
			unit: domain.UnitImperial,
			// 10*69.853168 + 6.25*180 - 150 + 5 = 1678.53168; *1.2
			expected: 2014,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EstimateDailyCalories(tt.profile, tt.unit))
		})
	}
}

func TestBasalMetabolicRate_MifflinStJeor(t *testing.T) {
	male := domain.PersonProfile{
		Age: 53, Gender: domain.GenderMale,
		ImperialHeight: "5'10\"", ImperialWeight: 170,
	}
	assert.InDelta(t, 1622.3564, BasalMetabolicRate(male, domain.UnitImperial), 1e-6)

	female := male
	female.Gender = domain.GenderFemale
	assert.InDelta(t, 1622.3564-166, BasalMetabolicRate(female, domain.UnitImperial), 1e-6)
}

func TestEstimateDailyCalories_MonotonicInWeight(t *testing.T) {
	for _, unit := range []domain.UnitSystem{domain.UnitMetric, domain.UnitImperial} {
		prev := 0
		for w := 20.0; w <= 200; w += 5 {
			p := domain.PersonProfile{
				Age: 40, Gender: domain.GenderFemale,
				MetricHeight: 165, MetricWeight: w,
				ImperialHeight: "5'5\"", ImperialWeight: w,
				ActivityLevel: domain.ActivityLight,
			}
			got := EstimateDailyCalories(p, unit)
			assert.Greater(t, got, prev, "unit=%s weight=%v", unit, w)
			prev = got
		}
	}
}

func TestEstimateDailyCalories_MonotonicInActivity(t *testing.T) {
	prev := 0
	for _, level := range domain.ActivityLevels {
		p := domain.PersonProfile{
			Age: 35, Gender: domain.GenderMale,
			MetricHeight: 180, MetricWeight: 80,
			ActivityLevel: level,
		}
		got := EstimateDailyCalories(p, domain.UnitMetric)
		assert.Greater(t, got, prev, string(level))
		prev = got
	}
}

func TestActivityMultiplier(t *testing.T) {
	assert.Equal(t, 1.2, ActivityMultiplier(domain.ActivitySedentary))
	assert.Equal(t, 1.375, ActivityMultiplier(domain.ActivityLight))
	assert.Equal(t, 1.55, ActivityMultiplier(domain.ActivityModerate))
	assert.Equal(t, 1.725, ActivityMultiplier(domain.ActivityActive))
	assert.Equal(t, 1.9, ActivityMultiplier(domain.ActivityVeryActive))
	assert.Equal(t, 1.55, ActivityMultiplier(""))
}

func TestBodyMetrics_ImperialDefaults(t *testing.T) {
	w, h := BodyMetrics(domain.PersonProfile{}, domain.UnitImperial)
	assert.InDelta(t, 154*0.453592, w, 1e-9)
	assert.Equal(t, DefaultMetricHeight, h)
}
