package calculation

import (
	"github.com/mysticbob/foodwastecalc/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	costTierFactors = map[domain.CostTier]decimal.Decimal{
		domain.CostTierBudget:   decimal.RequireFromString("0.8"),
		domain.CostTierModerate: decimal.NewFromInt(1),
		domain.CostTierPremium:  decimal.RequireFromString("1.3"),
	}
	prepStyleFactors = map[domain.PrepStyle]decimal.Decimal{
		domain.PrepMostlyHome:     decimal.RequireFromString("0.8"),
		domain.PrepMixed:          decimal.NewFromInt(1),
		domain.PrepMostlyPrepared: decimal.RequireFromString("1.4"),
	}
	storeTypeFactors = map[domain.StoreType]decimal.Decimal{
		domain.StoreDiscount: decimal.RequireFromString("0.85"),
		domain.StoreStandard: decimal.NewFromInt(1),
		domain.StorePremium:  decimal.RequireFromString("1.25"),
	}
)

// Bounds of ComposeFactor over the fixed factor tables
var (
	MinPreferenceFactor = decimal.RequireFromString("0.544")
	MaxPreferenceFactor = decimal.RequireFromString("2.275")
)

// ComposeFactor multiplies the cost tier, prep style and store type
// factors into one preference factor. An unknown selection contributes 1.
func ComposeFactor(prefs domain.ShoppingPreferences) decimal.Decimal {
	return factorOrOne(costTierFactors, prefs.CostTier).
		Mul(factorOrOne(prepStyleFactors, prefs.PrepStyle)).
		Mul(factorOrOne(storeTypeFactors, prefs.StoreType))
}

func factorOrOne[K comparable](table map[K]decimal.Decimal, key K) decimal.Decimal {
	if f, ok := table[key]; ok {
		return f
	}
	return decimal.NewFromInt(1)
}
