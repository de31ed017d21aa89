// Package data holds the static lookup tables shipped with foodcost: the
// person archetype catalog, ZIP prefix cost multipliers, USDA food plan
// benchmarks and the seasonal/inflation records used by the adjuster.
package data

import (
	_ "embed"
	"fmt"

	"github.com/mysticbob/foodwastecalc/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed profiles.yaml
var profilesYAML []byte

//go:embed regions.yaml
var regionsYAML []byte

//go:embed food_plans.yaml
var foodPlansYAML []byte

//go:embed regional_indices.yaml
var regionalIndicesYAML []byte

// Food plan categories
const (
	CategoryIndividual = "individual"
	CategoryFamily     = "family"
)

// ProfileEntry is one archetype in the profile catalog
type ProfileEntry struct {
	ID                   string `yaml:"id"`
	Group                string `yaml:"group"`
	domain.PersonProfile `yaml:",inline"`
}

// RegionEntry is one row of a ZIP prefix multiplier table
type RegionEntry struct {
	Name       string          `yaml:"name"`
	Multiplier decimal.Decimal `yaml:"multiplier"`
}

// Tables is the full set of static data, loaded once at start-up and
// shared read-only afterwards
type Tables struct {
	Profiles  []ProfileEntry
	States    map[string]RegionEntry
	Metros    map[string]RegionEntry
	FoodPlans map[string]domain.FoodPlanCosts
	Regional  map[string]domain.RegionalData
}

// Load parses the embedded tables
func Load() (*Tables, error) {
	var profiles struct {
		Profiles []ProfileEntry `yaml:"profiles"`
	}
	if err := yaml.Unmarshal(profilesYAML, &profiles); err != nil {
		return nil, fmt.Errorf("failed to parse profiles.yaml: %w", err)
	}

	var regions struct {
		States map[string]RegionEntry `yaml:"states"`
		Metros map[string]RegionEntry `yaml:"metros"`
	}
	if err := yaml.Unmarshal(regionsYAML, &regions); err != nil {
		return nil, fmt.Errorf("failed to parse regions.yaml: %w", err)
	}

	plans := make(map[string]domain.FoodPlanCosts)
	if err := yaml.Unmarshal(foodPlansYAML, &plans); err != nil {
		return nil, fmt.Errorf("failed to parse food_plans.yaml: %w", err)
	}

	var regional struct {
		Regions map[string]domain.RegionalData `yaml:"regions"`
	}
	if err := yaml.Unmarshal(regionalIndicesYAML, &regional); err != nil {
		return nil, fmt.Errorf("failed to parse regional_indices.yaml: %w", err)
	}

	t := &Tables{
		Profiles:  profiles.Profiles,
		States:    regions.States,
		Metros:    regions.Metros,
		FoodPlans: plans,
		Regional:  regional.Regions,
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tables) validate() error {
	seen := make(map[string]bool, len(t.Profiles))
	for _, p := range t.Profiles {
		if p.ID == "" {
			return fmt.Errorf("profile with empty id")
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate profile id %q", p.ID)
		}
		seen[p.ID] = true
		if !p.Gender.Valid() || !p.ActivityLevel.Valid() {
			return fmt.Errorf("profile %q has invalid gender or activity level", p.ID)
		}
	}

	for key, e := range t.States {
		if len(key) != 2 || e.Multiplier.IsNegative() {
			return fmt.Errorf("invalid state entry %q", key)
		}
	}
	for key, e := range t.Metros {
		if len(key) != 3 || e.Multiplier.IsNegative() {
			return fmt.Errorf("invalid metro entry %q", key)
		}
	}

	for _, category := range []string{CategoryIndividual, CategoryFamily} {
		if _, ok := t.FoodPlans[category]; !ok {
			return fmt.Errorf("missing food plan category %q", category)
		}
	}

	for key, r := range t.Regional {
		if r.CostMultiplier.IsNegative() {
			return fmt.Errorf("regional data %q has a negative cost multiplier", key)
		}
	}
	return nil
}
