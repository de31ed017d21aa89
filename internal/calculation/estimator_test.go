package calculation

import (
	"context"
	"errors"
	"testing"

	"github.com/mysticbob/foodwastecalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEstimator(t *testing.T) {
	adj := &fakeAdjuster{result: &domain.CostAdjustmentResult{TotalMultiplier: decimal.NewFromInt(1), Fresh: true}}
	deps := Dependencies{Regions: iowa(), Adjuster: adj}

	tests := []struct {
		name     string
		expected string
	}{
		{"", ModeHousehold},
		{ModeHousehold, ModeHousehold},
		{ModeBlend, ModeBlend},
		{ModeAdjusted, ModeAdjusted},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			est, err := CreateEstimator(tt.name, deps)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, est.Name())
		})
	}

	_, err := CreateEstimator("crystal-ball", deps)
	assert.ErrorContains(t, err, "unknown estimator")

	_, err = CreateEstimator(ModeAdjusted, Dependencies{Regions: iowa()})
	assert.ErrorContains(t, err, "requires a cost adjuster")

	_, err = CreateEstimator(ModeHousehold, Dependencies{})
	assert.ErrorContains(t, err, "requires a region resolver")
}

func TestEstimators_ProduceTheirOwnResultKind(t *testing.T) {
	deps := Dependencies{
		Regions:  iowa(),
		Adjuster: &fakeAdjuster{result: &domain.CostAdjustmentResult{TotalMultiplier: decimal.NewFromInt(1), Fresh: true}},
		Waste:    LeftoversWaste{},
	}
	in := HouseholdInput{
		People:      []domain.Person{adultFemale()},
		UnitSystem:  domain.UnitMetric,
		ZIPCode:     "50309",
		Preferences: domain.DefaultPreferences(),
	}

	household, err := CreateEstimator(ModeHousehold, deps)
	require.NoError(t, err)
	got, err := household.Estimate(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, got.Household)
	assert.Nil(t, got.Quick)
	assert.Equal(t, WasteModelLeftovers, got.Household.WasteModel)

	for _, mode := range []string{ModeBlend, ModeAdjusted} {
		est, err := CreateEstimator(mode, deps)
		require.NoError(t, err)
		got, err := est.Estimate(context.Background(), in)
		require.NoError(t, err, mode)
		require.NotNil(t, got.Quick, mode)
		assert.Nil(t, got.Household, mode)
		assert.Equal(t, mode, got.Quick.Mode)
	}
}

func TestQuickEstimatorRequiresOnePerson(t *testing.T) {
	est, err := CreateEstimator(ModeBlend, Dependencies{Regions: iowa()})
	require.NoError(t, err)

	_, err = est.Estimate(context.Background(), HouseholdInput{
		People: []domain.Person{adultFemale(), adultMale()},
	})
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "people", ve.Field)
}
