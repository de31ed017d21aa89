package config

import (
	"fmt"
	"os"

	"github.com/mysticbob/foodwastecalc/internal/calculation"
	"github.com/mysticbob/foodwastecalc/internal/domain"
	"github.com/mysticbob/foodwastecalc/internal/household"
	"gopkg.in/yaml.v3"
)

// MaxMealsOutPerWeek is the number of meals in a week
const MaxMealsOutPerWeek = calculation.MealsPerWeek

// InputParser handles parsing of household input files
type InputParser struct {
	// Composer fills in members when a file gives only household counts.
	// Without one, such files load with an empty member list.
	Composer *household.Composer
}

// NewInputParser creates a new input parser
func NewInputParser(composer *household.Composer) *InputParser {
	return &InputParser{Composer: composer}
}

// LoadFromFile loads a household configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes, defaults and validates a configuration document
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ApplyDefaults(&config)

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	if len(config.People) == 0 && ip.Composer != nil {
		people, err := ip.Composer.Synthesize(config.Household)
		if err != nil {
			return nil, fmt.Errorf("failed to compose household: %w", err)
		}
		config.People = people
	}

	return &config, nil
}

// ApplyDefaults fills unset optional fields
func ApplyDefaults(config *domain.Configuration) {
	if config.UnitSystem == "" {
		config.UnitSystem = domain.UnitImperial
	}
	if config.WasteModel == "" {
		config.WasteModel = calculation.WasteModelPercentage
	}
	config.Preferences = config.Preferences.WithDefaults()

	if len(config.People) == 0 && config.Household == (domain.HouseholdConfig{}) {
		config.Household = domain.HouseholdConfig{Adults: 1}
	}

	for i := range config.People {
		p := &config.People[i]
		if p.ID == "" {
			p.ID = fmt.Sprintf("person-%d", i+1)
		}
		if p.Label == "" {
			p.Label = fmt.Sprintf("Person %d", i+1)
		}
		if p.ActivityLevel == "" {
			p.ActivityLevel = domain.ActivityModerate
		}
	}

	if config.LeftoversWasted == nil {
		n := household.DefaultLeftovers(config.Household)
		if len(config.People) > 0 {
			n = len(config.People) * calculation.DefaultLeftoversPerPerson
		}
		config.LeftoversWasted = &n
	}
}

// ValidateConfiguration validates a configuration. The first problem found
// is returned as a *domain.ValidationError.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if !config.UnitSystem.Valid() {
		return domain.NewValidationError("unit_system", "must be %q or %q, got %q",
			domain.UnitImperial, domain.UnitMetric, config.UnitSystem)
	}
	if err := ValidateZIP(config.ZIPCode); err != nil {
		return err
	}

	if len(config.People) == 0 {
		if err := household.ValidateConfig(config.Household); err != nil {
			return err
		}
	}
	for i := range config.People {
		if err := validatePerson(i, &config.People[i]); err != nil {
			return err
		}
	}

	if err := validatePreferences(config.Preferences); err != nil {
		return err
	}

	if config.MealsOutPerWeek < 0 || config.MealsOutPerWeek > MaxMealsOutPerWeek {
		return domain.NewValidationError("meals_out_per_week", "must be between 0 and %d, got %d",
			MaxMealsOutPerWeek, config.MealsOutPerWeek)
	}
	if config.LeftoversWasted != nil && *config.LeftoversWasted < 0 {
		return domain.NewValidationError("leftovers_wasted", "cannot be negative")
	}
	if _, err := calculation.CreateWastePolicy(config.WasteModel); err != nil {
		return domain.NewValidationError("waste_model", "must be %q or %q, got %q",
			calculation.WasteModelPercentage, calculation.WasteModelLeftovers, config.WasteModel)
	}
	return nil
}

// ValidateZIP checks that zip is a ZIP code or a prefix of one: one to
// five digits. Prefixes resolve at the coarsest tier they match.
func ValidateZIP(zip string) error {
	if zip == "" {
		return domain.NewValidationError("zip_code", "is required")
	}
	if len(zip) > 5 {
		return domain.NewValidationError("zip_code", "must be at most 5 digits, got %q", zip)
	}
	for _, r := range zip {
		if r < '0' || r > '9' {
			return domain.NewValidationError("zip_code", "must contain only digits, got %q", zip)
		}
	}
	return nil
}

func validatePerson(index int, p *domain.Person) error {
	field := fmt.Sprintf("people[%d]", index)
	if !p.Gender.Valid() {
		return domain.NewValidationError(field+".gender", "must be %q or %q, got %q",
			domain.GenderMale, domain.GenderFemale, p.Gender)
	}
	if !p.ActivityLevel.Valid() {
		return domain.NewValidationError(field+".activity_level", "unknown activity level %q", p.ActivityLevel)
	}
	if p.Age <= 0 {
		return domain.NewValidationError(field+".age", "must be positive")
	}
	if p.ImperialWeight < 0 || p.MetricWeight < 0 || p.MetricHeight < 0 {
		return domain.NewValidationError(field, "height and weight cannot be negative")
	}
	return nil
}

func validatePreferences(prefs domain.ShoppingPreferences) error {
	if !prefs.CostTier.Valid() {
		return domain.NewValidationError("preferences.cost_tier", "unknown value %q", prefs.CostTier)
	}
	if !prefs.PrepStyle.Valid() {
		return domain.NewValidationError("preferences.prep_style", "unknown value %q", prefs.PrepStyle)
	}
	if !prefs.StoreType.Valid() {
		return domain.NewValidationError("preferences.store_type", "unknown value %q", prefs.StoreType)
	}
	if !prefs.WasteLevel.Valid() {
		return domain.NewValidationError("preferences.waste_level", "unknown value %q", prefs.WasteLevel)
	}
	return nil
}
