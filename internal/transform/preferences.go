package transform

import (
	"fmt"

	"github.com/mysticbob/foodwastecalc/internal/domain"
)

// SetCostTier switches the quality tier of groceries bought
type SetCostTier struct {
	Tier domain.CostTier
}

func (t *SetCostTier) Name() string { return "set_cost_tier" }

func (t *SetCostTier) Description() string {
	return fmt.Sprintf("Buy %s groceries", t.Tier)
}

func (t *SetCostTier) Validate(base *domain.Scenario) error {
	if base == nil {
		return NewTransformError(t.Name(), "validate", "base scenario cannot be nil", nil)
	}
	if !t.Tier.Valid() {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("unknown cost tier %q", t.Tier), nil)
	}
	return nil
}

func (t *SetCostTier) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.Preferences.CostTier = t.Tier
	return modified, nil
}

// SetPrepStyle changes how much food is prepared at home
type SetPrepStyle struct {
	Style domain.PrepStyle
}

func (t *SetPrepStyle) Name() string { return "set_prep_style" }

func (t *SetPrepStyle) Description() string {
	return fmt.Sprintf("Switch food preparation to %s", t.Style)
}

func (t *SetPrepStyle) Validate(base *domain.Scenario) error {
	if base == nil {
		return NewTransformError(t.Name(), "validate", "base scenario cannot be nil", nil)
	}
	if !t.Style.Valid() {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("unknown prep style %q", t.Style), nil)
	}
	return nil
}

func (t *SetPrepStyle) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.Preferences.PrepStyle = t.Style
	return modified, nil
}

// SetStoreType changes where most groceries are bought
type SetStoreType struct {
	Store domain.StoreType
}

func (t *SetStoreType) Name() string { return "set_store_type" }

func (t *SetStoreType) Description() string {
	return fmt.Sprintf("Shop mainly at %s stores", t.Store)
}

func (t *SetStoreType) Validate(base *domain.Scenario) error {
	if base == nil {
		return NewTransformError(t.Name(), "validate", "base scenario cannot be nil", nil)
	}
	if !t.Store.Valid() {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("unknown store type %q", t.Store), nil)
	}
	return nil
}

func (t *SetStoreType) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.Preferences.StoreType = t.Store
	return modified, nil
}

// SetWasteLevel changes the self-reported amount of food thrown away
type SetWasteLevel struct {
	Level domain.WasteLevel
}

func (t *SetWasteLevel) Name() string { return "set_waste_level" }

func (t *SetWasteLevel) Description() string {
	return fmt.Sprintf("Reduce or increase waste to %s", t.Level)
}

func (t *SetWasteLevel) Validate(base *domain.Scenario) error {
	if base == nil {
		return NewTransformError(t.Name(), "validate", "base scenario cannot be nil", nil)
	}
	if !t.Level.Valid() {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("unknown waste level %q", t.Level), nil)
	}
	return nil
}

func (t *SetWasteLevel) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.Preferences.WasteLevel = t.Level
	return modified, nil
}

// SetMealsOut changes how many meals a week are eaten out
type SetMealsOut struct {
	Meals int
}

func (t *SetMealsOut) Name() string { return "set_meals_out" }

func (t *SetMealsOut) Description() string {
	return fmt.Sprintf("Eat out %d meals per week", t.Meals)
}

func (t *SetMealsOut) Validate(base *domain.Scenario) error {
	if base == nil {
		return NewTransformError(t.Name(), "validate", "base scenario cannot be nil", nil)
	}
	if t.Meals < 0 || t.Meals > 21 {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("meals must be between 0 and 21, got %d", t.Meals), nil)
	}
	return nil
}

func (t *SetMealsOut) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.MealsOutPerWeek = t.Meals
	return modified, nil
}

// SetLeftovers changes the monthly count of leftovers thrown away.
// Only the leftovers waste model reads it.
type SetLeftovers struct {
	Count int
}

func (t *SetLeftovers) Name() string { return "set_leftovers" }

func (t *SetLeftovers) Description() string {
	return fmt.Sprintf("Throw away %d leftovers per month", t.Count)
}

func (t *SetLeftovers) Validate(base *domain.Scenario) error {
	if base == nil {
		return NewTransformError(t.Name(), "validate", "base scenario cannot be nil", nil)
	}
	if t.Count < 0 {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("count must be non-negative, got %d", t.Count), nil)
	}
	return nil
}

func (t *SetLeftovers) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	n := t.Count
	modified.LeftoversWasted = &n
	return modified, nil
}
