package region

import (
	"testing"

	"github.com/mysticbob/foodwastecalc/internal/data"
	"github.com/mysticbob/foodwastecalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	tables, err := data.Load()
	require.NoError(t, err)
	return NewResolver(tables.States, tables.Metros)
}

func TestResolver_Resolve(t *testing.T) {
	r := newTestResolver(t)

	tests := []struct {
		name       string
		zip        string
		multiplier string
		display    string
		tier       domain.RegionTier
	}{
		{"manhattan beats new york state", "10001", "1.45", "Manhattan", domain.RegionTierMetro},
		{"brooklyn", "11201", "1.35", "Brooklyn", domain.RegionTierMetro},
		{"san francisco", "94501", "1.5", "San Francisco", domain.RegionTierMetro},
		{"state only", "12208", "1.05", "New York", domain.RegionTierState},
		{"iowa", "50309", "0.85", "Iowa", domain.RegionTierState},
		{"three digit prefix", "606", "1.25", "Chicago", domain.RegionTierMetro},
		{"two digit prefix", "48", "1", "Michigan", domain.RegionTierState},
		{"unknown prefix", "88901", "1", DefaultName, domain.RegionTierDefault},
		{"single character", "1", "1", DefaultName, domain.RegionTierDefault},
		{"empty", "", "1", DefaultName, domain.RegionTierDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(tt.zip)
			assert.True(t, got.Multiplier.Equal(decimal.RequireFromString(tt.multiplier)),
				"multiplier %s, want %s", got.Multiplier, tt.multiplier)
			assert.Equal(t, tt.display, got.DisplayName)
			assert.Equal(t, tt.tier, got.Tier)
		})
	}
}

func TestResolver_Deterministic(t *testing.T) {
	r := newTestResolver(t)

	for _, zip := range []string{"10001", "12208", "99999", "4"} {
		first := r.Resolve(zip)
		second := r.Resolve(zip)
		assert.Equal(t, first, second, zip)
	}
}

func TestResolver_MetroPrecedence(t *testing.T) {
	r := newTestResolver(t)
	tables, err := data.Load()
	require.NoError(t, err)

	for key, metro := range tables.Metros {
		got := r.Resolve(key + "01")
		assert.Equal(t, domain.RegionTierMetro, got.Tier, key)
		assert.True(t, got.Multiplier.Equal(metro.Multiplier), key)
		assert.Equal(t, key, got.Key)
	}
}

func TestResolver_UnnamedMetro(t *testing.T) {
	r := NewResolver(
		map[string]data.RegionEntry{"10": {Name: "New York", Multiplier: decimal.NewFromFloat(1.15)}},
		map[string]data.RegionEntry{
			"103": {Multiplier: decimal.NewFromFloat(1.25)},
			"899": {Multiplier: decimal.NewFromFloat(1.10)},
		},
	)

	got := r.Resolve("10301")
	assert.Equal(t, "New York Metro Area", got.DisplayName)
	assert.True(t, got.Multiplier.Equal(decimal.NewFromFloat(1.25)))

	got = r.Resolve("89901")
	assert.Equal(t, "United States Metro Area", got.DisplayName)
}
