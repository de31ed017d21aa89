package calculation

import (
	"testing"

	"github.com/mysticbob/foodwastecalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComposeFactor(t *testing.T) {
	tests := []struct {
		name     string
		prefs    domain.ShoppingPreferences
		expected string
	}{
		{"neutral", domain.DefaultPreferences(), "1"},
		{"cheapest", domain.ShoppingPreferences{CostTier: domain.CostTierBudget, PrepStyle: domain.PrepMostlyHome, StoreType: domain.StoreDiscount}, "0.544"},
		{"most expensive", domain.ShoppingPreferences{CostTier: domain.CostTierPremium, PrepStyle: domain.PrepMostlyPrepared, StoreType: domain.StorePremium}, "2.275"},
		{"premium tier only", domain.ShoppingPreferences{CostTier: domain.CostTierPremium, PrepStyle: domain.PrepMixed, StoreType: domain.StoreStandard}, "1.3"},
		{"unknown selections count as neutral", domain.ShoppingPreferences{CostTier: "gold", PrepStyle: "raw", StoreType: "farm"}, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComposeFactor(tt.prefs)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)), "got %s, want %s", got, tt.expected)
		})
	}
}

func TestComposeFactor_WithinBounds(t *testing.T) {
	tiers := []domain.CostTier{domain.CostTierBudget, domain.CostTierModerate, domain.CostTierPremium}
	styles := []domain.PrepStyle{domain.PrepMostlyHome, domain.PrepMixed, domain.PrepMostlyPrepared}
	stores := []domain.StoreType{domain.StoreDiscount, domain.StoreStandard, domain.StorePremium}

	for _, tier := range tiers {
		for _, style := range styles {
			for _, store := range stores {
				f := ComposeFactor(domain.ShoppingPreferences{CostTier: tier, PrepStyle: style, StoreType: store})
				assert.True(t, f.GreaterThanOrEqual(MinPreferenceFactor), "%s/%s/%s = %s", tier, style, store, f)
				assert.True(t, f.LessThanOrEqual(MaxPreferenceFactor), "%s/%s/%s = %s", tier, style, store, f)
			}
		}
	}
}

func TestComposeFactor_OrderIndependent(t *testing.T) {
	prefs := domain.ShoppingPreferences{CostTier: domain.CostTierBudget, PrepStyle: domain.PrepMostlyPrepared, StoreType: domain.StorePremium}

	forward := costTierFactors[prefs.CostTier].Mul(prepStyleFactors[prefs.PrepStyle]).Mul(storeTypeFactors[prefs.StoreType])
	backward := storeTypeFactors[prefs.StoreType].Mul(prepStyleFactors[prefs.PrepStyle]).Mul(costTierFactors[prefs.CostTier])

	assert.True(t, forward.Equal(backward))
	assert.True(t, ComposeFactor(prefs).Equal(forward))
}
