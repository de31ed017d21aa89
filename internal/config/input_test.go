package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mysticbob/foodwastecalc/internal/data"
	"github.com/mysticbob/foodwastecalc/internal/domain"
	"github.com/mysticbob/foodwastecalc/internal/household"
	"github.com/mysticbob/foodwastecalc/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type zeroRandom struct{}

func (zeroRandom) Intn(int) int { return 0 }

func newTestParser(t *testing.T) *InputParser {
	t.Helper()
	tables, err := data.Load()
	require.NoError(t, err)
	return NewInputParser(household.NewComposer(profile.NewStore(tables.Profiles), zeroRandom{}))
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInputParser_LoadFromFile_FileNotFound(t *testing.T) {
	config, err := newTestParser(t).LoadFromFile("nonexistent.yaml")

	assert.Nil(t, config)
	assert.ErrorContains(t, err, "failed to read file")
}

func TestInputParser_LoadFromFile_InvalidYAML(t *testing.T) {
	path := writeFile(t, "invalid.yaml", "zip_code: [unclosed")

	config, err := newTestParser(t).LoadFromFile(path)

	assert.Nil(t, config)
	assert.ErrorContains(t, err, "failed to parse YAML")
}

func TestInputParser_LoadFromFile_HouseholdCounts(t *testing.T) {
	path := writeFile(t, "household.yaml", `
zip_code: "10001"
household:
  adults: 2
  children: 1
preferences:
  cost_tier: budget
  waste_level: high
meals_out_per_week: 4
`)

	config, err := newTestParser(t).LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, domain.UnitImperial, config.UnitSystem)
	assert.Equal(t, "percentage", config.WasteModel)
	assert.Equal(t, domain.CostTierBudget, config.Preferences.CostTier)
	assert.Equal(t, domain.PrepMixed, config.Preferences.PrepStyle)
	assert.Equal(t, domain.StoreStandard, config.Preferences.StoreType)
	assert.Equal(t, domain.WasteHigh, config.Preferences.WasteLevel)
	assert.Equal(t, 4, config.MealsOutPerWeek)
	require.NotNil(t, config.LeftoversWasted)
	assert.Equal(t, 9, *config.LeftoversWasted)

	require.Len(t, config.People, 3)
	assert.Equal(t, "adult-1", config.People[0].ID)
	assert.Equal(t, "Child 1", config.People[2].Label)
	assert.Equal(t, domain.GenderMale, config.People[0].Gender)
}

func TestInputParser_Parse_ExplicitPeople(t *testing.T) {
	config, err := newTestParser(t).Parse([]byte(`{
  "unit_system": "metric",
  "zip_code": "50309",
  "leftovers_wasted": 0,
  "waste_model": "leftovers",
  "people": [
    {"age": 53, "gender": "male", "metric_height": 178, "metric_weight": 77, "activity_level": "active"},
    {"label": "Grandma", "age": 80, "gender": "female", "metric_height": 160, "metric_weight": 60}
  ]
}`))
	require.NoError(t, err)

	assert.Equal(t, domain.UnitMetric, config.UnitSystem)
	assert.Equal(t, "leftovers", config.WasteModel)
	assert.Equal(t, 0, *config.LeftoversWasted, "explicit zero is kept")
	require.Len(t, config.People, 2)
	assert.Equal(t, "person-1", config.People[0].ID)
	assert.Equal(t, "Person 1", config.People[0].Label)
	assert.Equal(t, "Grandma", config.People[1].Label)
	assert.Equal(t, domain.ActivityModerate, config.People[1].ActivityLevel)
	assert.Equal(t, domain.ActivityActive, config.People[0].ActivityLevel)
}

func TestInputParser_Parse_WithoutComposer(t *testing.T) {
	config, err := NewInputParser(nil).Parse([]byte(`zip_code: "02108"`))
	require.NoError(t, err)

	assert.Empty(t, config.People)
	assert.Equal(t, domain.HouseholdConfig{Adults: 1}, config.Household)
	assert.Equal(t, 3, *config.LeftoversWasted)
}

func TestInputParser_ValidateConfiguration(t *testing.T) {
	valid := func() *domain.Configuration {
		c := &domain.Configuration{
			ZIPCode:   "10001",
			Household: domain.HouseholdConfig{Adults: 2, Children: 1},
		}
		ApplyDefaults(c)
		return c
	}

	tests := []struct {
		name   string
		mutate func(c *domain.Configuration)
		field  string
	}{
		{"unit system", func(c *domain.Configuration) { c.UnitSystem = "cubits" }, "unit_system"},
		{"missing zip", func(c *domain.Configuration) { c.ZIPCode = "" }, "zip_code"},
		{"long zip", func(c *domain.Configuration) { c.ZIPCode = "100011" }, "zip_code"},
		{"letters in zip", func(c *domain.Configuration) { c.ZIPCode = "1000A" }, "zip_code"},
		{"too many adults", func(c *domain.Configuration) { c.Household.Adults = 5 }, "household.adults"},
		{"no adults", func(c *domain.Configuration) { c.Household.Adults = 0 }, "household.adults"},
		{"too many children", func(c *domain.Configuration) { c.Household.Children = 7 }, "household.children"},
		{"cost tier", func(c *domain.Configuration) { c.Preferences.CostTier = "gold" }, "preferences.cost_tier"},
		{"prep style", func(c *domain.Configuration) { c.Preferences.PrepStyle = "raw" }, "preferences.prep_style"},
		{"store type", func(c *domain.Configuration) { c.Preferences.StoreType = "online" }, "preferences.store_type"},
		{"waste level", func(c *domain.Configuration) { c.Preferences.WasteLevel = "none" }, "preferences.waste_level"},
		{"meals out negative", func(c *domain.Configuration) { c.MealsOutPerWeek = -1 }, "meals_out_per_week"},
		{"meals out too many", func(c *domain.Configuration) { c.MealsOutPerWeek = 22 }, "meals_out_per_week"},
		{"negative leftovers", func(c *domain.Configuration) { n := -2; c.LeftoversWasted = &n }, "leftovers_wasted"},
		{"waste model", func(c *domain.Configuration) { c.WasteModel = "guess" }, "waste_model"},
		{"person gender", func(c *domain.Configuration) {
			c.People = []domain.Person{{PersonProfile: domain.PersonProfile{Age: 30, ActivityLevel: domain.ActivityLight}}}
		}, "people[0].gender"},
		{"person activity", func(c *domain.Configuration) {
			c.People = []domain.Person{{PersonProfile: domain.PersonProfile{Age: 30, Gender: domain.GenderMale, ActivityLevel: "couch"}}}
		}, "people[0].activity_level"},
		{"person age", func(c *domain.Configuration) {
			c.People = []domain.Person{{PersonProfile: domain.PersonProfile{Gender: domain.GenderMale, ActivityLevel: domain.ActivityLight}}}
		}, "people[0].age"},
		{"person weight", func(c *domain.Configuration) {
			c.People = []domain.Person{{PersonProfile: domain.PersonProfile{Age: 30, Gender: domain.GenderMale, ActivityLevel: domain.ActivityLight, MetricWeight: -1}}}
		}, "people[0]"},
	}

	parser := NewInputParser(nil)
	require.NoError(t, parser.ValidateConfiguration(valid()))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)

			err := parser.ValidateConfiguration(c)
			var ve *domain.ValidationError
			require.True(t, errors.As(err, &ve), "got %v", err)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestInputParser_ExplicitPeopleSkipHouseholdLimits(t *testing.T) {
	c := &domain.Configuration{
		ZIPCode: "10001",
		People: []domain.Person{
			{PersonProfile: domain.PersonProfile{Age: 30, Gender: domain.GenderFemale, ActivityLevel: domain.ActivityLight}},
		},
	}
	ApplyDefaults(c)
	assert.NoError(t, NewInputParser(nil).ValidateConfiguration(c))
}

func TestLoadSettings(t *testing.T) {
	env := func(vars map[string]string) func(string) (string, bool) {
		return func(k string) (string, bool) {
			v, ok := vars[k]
			return v, ok
		}
	}

	t.Run("defaults", func(t *testing.T) {
		s := LoadSettings(env(nil))
		assert.Equal(t, DefaultSettings(), s)
		assert.Equal(t, "console", s.LogFormat)
		assert.Equal(t, 10*time.Second, s.RefreshTimeout)
	})

	t.Run("overrides", func(t *testing.T) {
		s := LoadSettings(env(map[string]string{
			EnvLogLevel:       "DEBUG",
			EnvLogFormat:      "JSON",
			EnvBLSAPIKey:      " abc123 ",
			EnvRefreshTimeout: "3s",
		}))
		assert.Equal(t, "debug", s.LogLevel)
		assert.Equal(t, "json", s.LogFormat)
		assert.Equal(t, "abc123", s.BLSAPIKey)
		assert.Equal(t, 3*time.Second, s.RefreshTimeout)
	})

	t.Run("invalid values fall back", func(t *testing.T) {
		s := LoadSettings(env(map[string]string{
			EnvLogFormat:      "xml",
			EnvRefreshTimeout: "soon",
		}))
		assert.Equal(t, "console", s.LogFormat)
		assert.Equal(t, 10*time.Second, s.RefreshTimeout)
	})
}
