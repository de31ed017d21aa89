package domain

import (
	"fmt"
	"math"

	"github.com/mysticbob/foodwastecalc/internal/units"
)

// Gender selects the sex-specific constant of the BMR equation
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Valid reports whether g is a known gender
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// ActivityLevel is the qualitative activity bucket used to scale BMR
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "veryActive"
)

// ActivityLevels lists the activity levels from least to most active
var ActivityLevels = []ActivityLevel{
	ActivitySedentary,
	ActivityLight,
	ActivityModerate,
	ActivityActive,
	ActivityVeryActive,
}

// Valid reports whether a is a known activity level
func (a ActivityLevel) Valid() bool {
	for _, level := range ActivityLevels {
		if a == level {
			return true
		}
	}
	return false
}

// UnitSystem selects which set of body measurements drives the calculation
type UnitSystem string

const (
	UnitImperial UnitSystem = "imperial"
	UnitMetric   UnitSystem = "metric"
)

// Valid reports whether u is a known unit system
func (u UnitSystem) Valid() bool {
	return u == UnitImperial || u == UnitMetric
}

// PersonProfile is an immutable demographic template.
// Imperial and metric fields are kept consistent when the template is authored.
type PersonProfile struct {
	Age            float64       `yaml:"age" json:"age"`
	Gender         Gender        `yaml:"gender" json:"gender"`
	ImperialHeight string        `yaml:"imperial_height" json:"imperialHeight"`
	ImperialWeight float64       `yaml:"imperial_weight" json:"imperialWeight"`
	MetricHeight   float64       `yaml:"metric_height" json:"metricHeight"`
	MetricWeight   float64       `yaml:"metric_weight" json:"metricWeight"`
	ActivityLevel  ActivityLevel `yaml:"activity_level" json:"activityLevel"`
}

// Person is a live household member derived from a profile
type Person struct {
	PersonProfile `yaml:",inline"`
	ID            string `yaml:"id" json:"id"`
	Label         string `yaml:"label" json:"label"`
}

// NewPerson creates a person from a profile template
func NewPerson(id, label string, profile PersonProfile) Person {
	return Person{PersonProfile: profile, ID: id, Label: label}
}

// SetImperialHeight applies a user-entered height. On unparseable input the
// previous height is kept and a *ParseError is returned.
func (p *Person) SetImperialHeight(input string) error {
	inches, ok := units.ParseHeightToInches(input)
	if !ok {
		return &ParseError{Input: input, Message: "expected a height like 5'10\", 5ft 10in, 5.8 or 70"}
	}
	p.ImperialHeight = units.FormatHeight(inches)
	p.MetricHeight = math.Round(units.InchesToCm(float64(inches)))
	return nil
}

// SetImperialWeight applies a user-entered weight in pounds and keeps the
// metric weight in step, rounded to whole kilograms
func (p *Person) SetImperialWeight(lbs float64) {
	p.ImperialWeight = lbs
	p.MetricWeight = math.Round(units.PoundsToKg(lbs))
}

// Describe returns a one-line human summary of the profile
func (pp PersonProfile) Describe() string {
	gender := "Female"
	if pp.Gender == GenderMale {
		gender = "Male"
	}
	return fmt.Sprintf("%s, %g years, %s, %g lbs", gender, pp.Age, pp.ImperialHeight, pp.ImperialWeight)
}
