package calculation

import (
	"context"
	"fmt"

	"github.com/mysticbob/foodwastecalc/internal/domain"
)

// Estimator mode names
const (
	ModeHousehold = "household"
	ModeBlend     = QuickModeBlend
	ModeAdjusted  = QuickModeAdjusted
)

// Estimate is the output of an Estimator. Exactly one of Household and
// Quick is set, matching Mode.
type Estimate struct {
	Mode      string
	Household *domain.HouseholdResult
	Quick     *domain.CostEstimate
}

// Estimator is a named cost estimation strategy
type Estimator interface {
	Name() string
	Estimate(ctx context.Context, in HouseholdInput) (*Estimate, error)
}

// Dependencies are the collaborators estimators are built from
type Dependencies struct {
	Regions  RegionResolver
	Adjuster CostAdjuster
	Waste    WastePolicy
	Logger   Logger
}

type householdEstimator struct {
	engine *Engine
}

func (h householdEstimator) Name() string { return ModeHousehold }

func (h householdEstimator) Estimate(ctx context.Context, in HouseholdInput) (*Estimate, error) {
	result, err := h.engine.AggregateInput(ctx, in)
	if err != nil {
		return nil, err
	}
	return &Estimate{Mode: ModeHousehold, Household: result}, nil
}

type quickEstimator struct {
	quick *QuickEstimator
}

func (q quickEstimator) Name() string { return q.quick.Mode }

func (q quickEstimator) Estimate(ctx context.Context, in HouseholdInput) (*Estimate, error) {
	if len(in.People) != 1 {
		return nil, domain.NewValidationError("people", "a %s estimate takes exactly one person, got %d", q.quick.Mode, len(in.People))
	}
	est, err := q.quick.EstimatePerson(ctx, in.People[0], in.UnitSystem, in.ZIPCode, in.Preferences, in.MealsOutPerWeek)
	if err != nil {
		return nil, err
	}
	return &Estimate{Mode: q.quick.Mode, Quick: est}, nil
}

// CreateEstimator builds the estimator registered under name. An empty
// name selects the household aggregator.
func CreateEstimator(name string, deps Dependencies) (Estimator, error) {
	if deps.Regions == nil {
		return nil, fmt.Errorf("estimator %q requires a region resolver", name)
	}

	switch name {
	case "", ModeHousehold:
		engine := NewEngine(deps.Regions)
		engine.SetLogger(deps.Logger)
		engine.SetWastePolicy(deps.Waste)
		return householdEstimator{engine: engine}, nil
	case ModeBlend:
		q := NewBlendEstimator(deps.Regions)
		if deps.Logger != nil {
			q.Logger = deps.Logger
		}
		return quickEstimator{quick: q}, nil
	case ModeAdjusted:
		if deps.Adjuster == nil {
			return nil, fmt.Errorf("estimator %q requires a cost adjuster", name)
		}
		q := NewAdjustedEstimator(deps.Regions, deps.Adjuster)
		if deps.Logger != nil {
			q.Logger = deps.Logger
		}
		return quickEstimator{quick: q}, nil
	default:
		return nil, fmt.Errorf("unknown estimator %q (available: %s, %s, %s)", name, ModeHousehold, ModeBlend, ModeAdjusted)
	}
}
