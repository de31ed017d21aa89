package domain

// Household size limits accepted by the composer
const (
	MinAdults   = 1
	MaxAdults   = 4
	MinChildren = 0
	MaxChildren = 6
)

// HouseholdConfig drives regeneration of the person list
type HouseholdConfig struct {
	Adults   int `yaml:"adults" json:"adults"`
	Children int `yaml:"children" json:"children"`
}

// Size returns the number of household members
func (hc HouseholdConfig) Size() int {
	return hc.Adults + hc.Children
}

// Configuration represents a complete household estimate input file
type Configuration struct {
	UnitSystem      UnitSystem          `yaml:"unit_system" json:"unitSystem"`
	ZIPCode         string              `yaml:"zip_code" json:"zipCode"`
	Household       HouseholdConfig     `yaml:"household" json:"household"`
	People          []Person            `yaml:"people,omitempty" json:"people,omitempty"`
	Preferences     ShoppingPreferences `yaml:"preferences" json:"preferences"`
	MealsOutPerWeek int                 `yaml:"meals_out_per_week" json:"mealsOutPerWeek"`
	LeftoversWasted *int                `yaml:"leftovers_wasted,omitempty" json:"leftoversWasted,omitempty"`
	WasteModel      string              `yaml:"waste_model,omitempty" json:"wasteModel,omitempty"`
}
