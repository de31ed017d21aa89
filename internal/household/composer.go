package household

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mysticbob/foodwastecalc/internal/calculation"
	"github.com/mysticbob/foodwastecalc/internal/domain"
)

// Age ranges for members beyond the fixed templates
const (
	ExtraAdultMinAge = 20
	ExtraAdultMaxAge = 50
	ExtraChildMinAge = 1
	ExtraChildMaxAge = 18
)

// RandomSource supplies the randomness used for extra household members.
// *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// ProfileLookup resolves an archetype id to its template
type ProfileLookup interface {
	Lookup(id string) (domain.PersonProfile, error)
}

// Composer builds the default member list for a household size
type Composer struct {
	profiles ProfileLookup
	rng      RandomSource
}

// NewComposer creates a composer. A nil rng uses a time-seeded source.
func NewComposer(profiles ProfileLookup, rng RandomSource) *Composer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Composer{profiles: profiles, rng: rng}
}

// Synthesize returns a fresh ordered member list for config, adults first.
// The list replaces any earlier one; edits to previous members are not carried over.
func (c *Composer) Synthesize(config domain.HouseholdConfig) ([]domain.Person, error) {
	if err := ValidateConfig(config); err != nil {
		return nil, err
	}

	people := make([]domain.Person, 0, config.Size())

	adults, err := c.adults(config.Adults)
	if err != nil {
		return nil, err
	}
	people = append(people, adults...)

	children, err := c.children(config.Children)
	if err != nil {
		return nil, err
	}
	return append(people, children...), nil
}

// ValidateConfig checks the household size limits
func ValidateConfig(config domain.HouseholdConfig) error {
	if config.Adults < domain.MinAdults || config.Adults > domain.MaxAdults {
		return domain.NewValidationError("household.adults", "must be between %d and %d, got %d",
			domain.MinAdults, domain.MaxAdults, config.Adults)
	}
	if config.Children < domain.MinChildren || config.Children > domain.MaxChildren {
		return domain.NewValidationError("household.children", "must be between %d and %d, got %d",
			domain.MinChildren, domain.MaxChildren, config.Children)
	}
	return nil
}

// DefaultLeftovers returns the default monthly count of wasted leftovers
func DefaultLeftovers(config domain.HouseholdConfig) int {
	return config.Size() * calculation.DefaultLeftoversPerPerson
}

func (c *Composer) adults(n int) ([]domain.Person, error) {
	if n == 1 {
		p, err := c.member("adult-female", "adult", 1)
		if err != nil {
			return nil, err
		}
		return []domain.Person{p}, nil
	}

	out := make([]domain.Person, 0, n)
	for i, id := range []string{"adult-male", "adult-female"} {
		p, err := c.member(id, "adult", i+1)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	for i := 3; i <= n; i++ {
		id := "adult-male"
		if genderForIndex(i) == domain.GenderFemale {
			id = "adult-female"
		}
		p, err := c.member(id, "adult", i)
		if err != nil {
			return nil, err
		}
		p.Age = float64(c.randomAge(ExtraAdultMinAge, ExtraAdultMaxAge))
		out = append(out, p)
	}
	return out, nil
}

var fixedChildren = []string{"kid-7y-male", "kid-10y-female", "teen-13y-male"}

func (c *Composer) children(n int) ([]domain.Person, error) {
	out := make([]domain.Person, 0, n)
	for i := 1; i <= n; i++ {
		if i <= len(fixedChildren) {
			p, err := c.member(fixedChildren[i-1], "child", i)
			if err != nil {
				return nil, err
			}
			out = append(out, p)
			continue
		}

		age := c.randomAge(ExtraChildMinAge, ExtraChildMaxAge)
		p, err := c.member(childTemplate(age, genderForIndex(i)), "child", i)
		if err != nil {
			return nil, err
		}
		p.Age = float64(age)
		out = append(out, p)
	}
	return out, nil
}

func (c *Composer) member(templateID, kind string, index int) (domain.Person, error) {
	profile, err := c.profiles.Lookup(templateID)
	if err != nil {
		return domain.Person{}, fmt.Errorf("failed to compose %s %d: %w", kind, index, err)
	}
	label := "Adult"
	if kind == "child" {
		label = "Child"
	}
	return domain.NewPerson(fmt.Sprintf("%s-%d", kind, index), fmt.Sprintf("%s %d", label, index), profile), nil
}

// randomAge is uniform over [lo, hi]
func (c *Composer) randomAge(lo, hi int) int {
	return lo + c.rng.Intn(hi-lo+1)
}

func genderForIndex(i int) domain.Gender {
	if i%2 == 0 {
		return domain.GenderFemale
	}
	return domain.GenderMale
}

// childTemplate picks the archetype for an age band: up to 5, up to 12, older
func childTemplate(age int, g domain.Gender) string {
	switch {
	case age <= 5:
		return "kid-7y-" + string(g)
	case age <= 12:
		return "kid-10y-" + string(g)
	default:
		return "teen-13y-" + string(g)
	}
}
