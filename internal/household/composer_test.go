package household

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/mysticbob/foodwastecalc/internal/calculation"
	"github.com/mysticbob/foodwastecalc/internal/data"
	"github.com/mysticbob/foodwastecalc/internal/domain"
	"github.com/mysticbob/foodwastecalc/internal/profile"
	"github.com/mysticbob/foodwastecalc/internal/region"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRandom returns its values in order
type scriptedRandom struct {
	values []int
	calls  []int
}

func (s *scriptedRandom) Intn(n int) int {
	s.calls = append(s.calls, n)
	v := s.values[0]
	s.values = s.values[1:]
	return v
}

type missingProfiles struct{}

func (missingProfiles) Lookup(id string) (domain.PersonProfile, error) {
	return domain.PersonProfile{}, &domain.NotFoundError{Kind: "profile", ID: id}
}

func testStore(t *testing.T) (*profile.Store, *data.Tables) {
	t.Helper()
	tables, err := data.Load()
	require.NoError(t, err)
	return profile.NewStore(tables.Profiles), tables
}

func ids(people []domain.Person) []string {
	out := make([]string, len(people))
	for i, p := range people {
		out[i] = p.ID
	}
	return out
}

func TestComposer_SingleAdult(t *testing.T) {
	store, _ := testStore(t)
	c := NewComposer(store, &scriptedRandom{})

	people, err := c.Synthesize(domain.HouseholdConfig{Adults: 1})
	require.NoError(t, err)
	require.Len(t, people, 1)

	want, _ := store.Lookup("adult-female")
	assert.Equal(t, "adult-1", people[0].ID)
	assert.Equal(t, "Adult 1", people[0].Label)
	assert.Equal(t, want, people[0].PersonProfile)
}

func TestComposer_FixedTemplates(t *testing.T) {
	store, _ := testStore(t)
	c := NewComposer(store, &scriptedRandom{})

	people, err := c.Synthesize(domain.HouseholdConfig{Adults: 2, Children: 3})
	require.NoError(t, err)

	assert.Equal(t, []string{"adult-1", "adult-2", "child-1", "child-2", "child-3"}, ids(people))
	templates := []string{"adult-male", "adult-female", "kid-7y-male", "kid-10y-female", "teen-13y-male"}
	for i, id := range templates {
		want, err := store.Lookup(id)
		require.NoError(t, err)
		assert.Equal(t, want, people[i].PersonProfile, "member %s", people[i].ID)
	}
	assert.Equal(t, "Child 3", people[4].Label)
}

func TestComposer_ExtraMembersUseRandomAges(t *testing.T) {
	store, _ := testStore(t)
	rng := &scriptedRandom{values: []int{10, 25, 2, 10, 16}}
	c := NewComposer(store, rng)

	people, err := c.Synthesize(domain.HouseholdConfig{Adults: 4, Children: 6})
	require.NoError(t, err)
	require.Len(t, people, 10)
	assert.Equal(t, []int{31, 31, 18, 18, 18}, rng.calls, "ages drawn from [20,50] and [1,18]")

	tests := []struct {
		index    int
		template string
		age      float64
	}{
		{2, "adult-male", 30},
		{3, "adult-female", 45},
		{7, "kid-7y-female", 3},
		{8, "kid-10y-male", 11},
		{9, "teen-13y-female", 17},
	}
	for _, tt := range tests {
		t.Run(people[tt.index].ID, func(t *testing.T) {
			want, err := store.Lookup(tt.template)
			require.NoError(t, err)
			want.Age = tt.age
			assert.Equal(t, want, people[tt.index].PersonProfile)
		})
	}
}

func TestComposer_SeededSourceIsReproducible(t *testing.T) {
	store, _ := testStore(t)
	cfg := domain.HouseholdConfig{Adults: 4, Children: 6}

	a, err := NewComposer(store, rand.New(rand.NewSource(42))).Synthesize(cfg)
	require.NoError(t, err)
	b, err := NewComposer(store, rand.New(rand.NewSource(42))).Synthesize(cfg)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	for _, p := range a[2:4] {
		assert.GreaterOrEqual(t, p.Age, float64(ExtraAdultMinAge))
		assert.LessOrEqual(t, p.Age, float64(ExtraAdultMaxAge))
	}
	for _, p := range a[7:] {
		assert.GreaterOrEqual(t, p.Age, float64(ExtraChildMinAge))
		assert.LessOrEqual(t, p.Age, float64(ExtraChildMaxAge))
	}
}

func TestComposer_RegenerationDiscardsEdits(t *testing.T) {
	store, _ := testStore(t)
	c := NewComposer(store, &scriptedRandom{})
	cfg := domain.HouseholdConfig{Adults: 2}

	first, err := c.Synthesize(cfg)
	require.NoError(t, err)
	first[0].SetImperialWeight(300)

	second, err := c.Synthesize(cfg)
	require.NoError(t, err)
	want, _ := store.Lookup("adult-male")
	assert.Equal(t, want.ImperialWeight, second[0].ImperialWeight)
}

func TestComposer_InvalidConfig(t *testing.T) {
	store, _ := testStore(t)
	c := NewComposer(store, nil)

	tests := []struct {
		cfg   domain.HouseholdConfig
		field string
	}{
		{domain.HouseholdConfig{Adults: 0}, "household.adults"},
		{domain.HouseholdConfig{Adults: 5}, "household.adults"},
		{domain.HouseholdConfig{Adults: 1, Children: -1}, "household.children"},
		{domain.HouseholdConfig{Adults: 1, Children: 7}, "household.children"},
	}
	for _, tt := range tests {
		_, err := c.Synthesize(tt.cfg)
		var ve *domain.ValidationError
		require.True(t, errors.As(err, &ve), "%+v", tt.cfg)
		assert.Equal(t, tt.field, ve.Field)
	}
}

func TestComposer_MissingTemplate(t *testing.T) {
	c := NewComposer(missingProfiles{}, nil)

	_, err := c.Synthesize(domain.HouseholdConfig{Adults: 1})
	var nf *domain.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "adult-female", nf.ID)
	assert.Contains(t, err.Error(), "failed to compose adult 1")
}

func TestDefaultLeftovers(t *testing.T) {
	assert.Equal(t, 3, DefaultLeftovers(domain.HouseholdConfig{Adults: 1}))
	assert.Equal(t, 9, DefaultLeftovers(domain.HouseholdConfig{Adults: 2, Children: 1}))
	assert.Equal(t, 30, DefaultLeftovers(domain.HouseholdConfig{Adults: 4, Children: 6}))
}

func TestComposeThenAggregateIsRepeatable(t *testing.T) {
	store, tables := testStore(t)
	engine := calculation.NewEngine(region.NewResolver(tables.States, tables.Metros))
	cfg := domain.HouseholdConfig{Adults: 2, Children: 1}

	run := func() *domain.HouseholdResult {
		people, err := NewComposer(store, &scriptedRandom{}).Synthesize(cfg)
		require.NoError(t, err)
		res, err := engine.Aggregate(context.Background(), people, domain.UnitImperial, "10001", domain.DefaultPreferences())
		require.NoError(t, err)
		return res
	}

	first, second := run(), run()
	assert.Equal(t, first.TotalCalories, second.TotalCalories)
	assert.Equal(t, first.TotalDailyCost.String(), second.TotalDailyCost.String())
	assert.Equal(t, first.TotalMonthlyCost.String(), second.TotalMonthlyCost.String())
	assert.Equal(t, first.WastedCost.String(), second.WastedCost.String())
	assert.Equal(t, first.WastedCalories.String(), second.WastedCalories.String())
	require.Len(t, second.Breakdown, 3)
	assert.Equal(t, []string{"Adult 1", "Adult 2", "Child 1"}, []string{
		second.Breakdown[0].Label, second.Breakdown[1].Label, second.Breakdown[2].Label,
	})
	assert.Equal(t, "Manhattan", second.RegionName)
}
