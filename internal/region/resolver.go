package region

import (
	"github.com/mysticbob/foodwastecalc/internal/data"
	"github.com/mysticbob/foodwastecalc/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultName is the display name used when no table matches
const DefaultName = "United States"

const metroSuffix = " Metro Area"

// Resolver maps ZIP codes to a regional cost multiplier. Metro (3-digit)
// entries win over state (2-digit) entries, which win over the national
// default. The tables are never modified after construction.
type Resolver struct {
	states map[string]data.RegionEntry
	metros map[string]data.RegionEntry
}

// NewResolver creates a resolver over the given state and metro tables
func NewResolver(states, metros map[string]data.RegionEntry) *Resolver {
	return &Resolver{states: states, metros: metros}
}

// Resolve returns the multiplier and display name for a ZIP code. A miss
// in every table is not an error: it resolves to the default tier.
func (r *Resolver) Resolve(zip string) domain.RegionMatch {
	var metroKey, stateKey string
	if len(zip) >= 3 {
		metroKey = zip[:3]
	}
	if len(zip) >= 2 {
		stateKey = zip[:2]
	}

	metro, hasMetro := r.metros[metroKey]
	if metroKey != "" && hasMetro {
		name := metro.Name
		if name == "" {
			name = r.stateName(stateKey) + metroSuffix
		}
		return domain.RegionMatch{
			Multiplier:  metro.Multiplier,
			DisplayName: name,
			Tier:        domain.RegionTierMetro,
			Key:         metroKey,
		}
	}

	if state, ok := r.states[stateKey]; stateKey != "" && ok {
		return domain.RegionMatch{
			Multiplier:  state.Multiplier,
			DisplayName: state.Name,
			Tier:        domain.RegionTierState,
			Key:         stateKey,
		}
	}

	return domain.RegionMatch{
		Multiplier:  decimal.NewFromInt(1),
		DisplayName: DefaultName,
		Tier:        domain.RegionTierDefault,
	}
}

func (r *Resolver) stateName(key string) string {
	if state, ok := r.states[key]; ok && state.Name != "" {
		return state.Name
	}
	return DefaultName
}
