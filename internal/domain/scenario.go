package domain

// Scenario is the part of a configuration that what-if comparisons vary.
// Household members and location stay fixed across scenarios.
type Scenario struct {
	Name            string              `json:"name"`
	Preferences     ShoppingPreferences `json:"preferences"`
	MealsOutPerWeek int                 `json:"mealsOutPerWeek"`
	LeftoversWasted *int                `json:"leftoversWasted,omitempty"`
}

// ScenarioFromConfiguration extracts the variable part of a configuration
func ScenarioFromConfiguration(name string, cfg *Configuration) *Scenario {
	s := &Scenario{
		Name:            name,
		Preferences:     cfg.Preferences.WithDefaults(),
		MealsOutPerWeek: cfg.MealsOutPerWeek,
	}
	if cfg.LeftoversWasted != nil {
		n := *cfg.LeftoversWasted
		s.LeftoversWasted = &n
	}
	return s
}

// DeepCopy returns a copy that shares no pointers with s
func (s *Scenario) DeepCopy() *Scenario {
	if s == nil {
		return nil
	}
	c := *s
	if s.LeftoversWasted != nil {
		n := *s.LeftoversWasted
		c.LeftoversWasted = &n
	}
	return &c
}
