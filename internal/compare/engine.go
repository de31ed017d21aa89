package compare

import (
	"context"
	"fmt"
	"strings"

	"github.com/mysticbob/foodwastecalc/internal/calculation"
	"github.com/mysticbob/foodwastecalc/internal/domain"
	"github.com/mysticbob/foodwastecalc/internal/transform"
)

// DefaultBaseScenarioName names the scenario built from the configuration as given
const DefaultBaseScenarioName = "current"

// CompareEngine orchestrates scenario comparison
type CompareEngine struct {
	CalcEngine        *calculation.Engine
	MetricsCalculator *MetricsCalculator
	TemplateRegistry  *transform.TemplateRegistry
	TransformRegistry *transform.TransformRegistry
}

// NewCompareEngine creates a new comparison engine with the built-in templates
func NewCompareEngine(calcEngine *calculation.Engine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
		TemplateRegistry:  transform.CreateBuiltInTemplates(),
		TransformRegistry: transform.NewTransformRegistry(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	BaseScenarioName string   // Label for the configuration as given
	Templates        []string // Template names, one alternative each
	Transforms       []string // Transform specs combined into a single "custom" alternative
	ConfigPath       string
}

// Compare estimates the configured household under its own preferences
// and under each requested alternative, then ranks the alternatives
// against it. Household members and ZIP code are the same in every
// scenario.
func (ce *CompareEngine) Compare(
	ctx context.Context,
	config *domain.Configuration,
	options CompareOptions,
) (*ComparisonSet, error) {
	if config == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if len(config.People) == 0 {
		return nil, domain.NewValidationError("people", "comparison needs at least one household member")
	}
	if len(options.Templates) == 0 && len(options.Transforms) == 0 {
		return nil, fmt.Errorf("no templates or transforms to compare against")
	}

	baseName := options.BaseScenarioName
	if baseName == "" {
		baseName = DefaultBaseScenarioName
	}
	baseScenario := domain.ScenarioFromConfiguration(baseName, config)

	baseSummary, err := ce.run(ctx, config, baseScenario)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base scenario: %w", err)
	}
	baseResult := ce.MetricsCalculator.CalculateMetrics(baseScenario, baseSummary)

	alternatives := []ComparisonResult{}

	for _, templateName := range options.Templates {
		template, ok := ce.TemplateRegistry.Get(templateName)
		if !ok {
			return nil, fmt.Errorf("template %s not found", templateName)
		}

		modifiedScenario, err := transform.ApplyTemplate(baseScenario, template)
		if err != nil {
			return nil, fmt.Errorf("failed to apply template %s: %w", templateName, err)
		}
		modifiedScenario.Name = baseName + "_" + template.Name

		altResult, err := ce.alternative(ctx, config, modifiedScenario, template.Description, baseResult)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate scenario %s: %w", templateName, err)
		}
		alternatives = append(alternatives, altResult)
	}

	if len(options.Transforms) > 0 {
		transforms := make([]transform.ScenarioTransform, 0, len(options.Transforms))
		descriptions := make([]string, 0, len(options.Transforms))
		for _, spec := range options.Transforms {
			t, err := ce.TransformRegistry.ParseTransformSpec(spec)
			if err != nil {
				return nil, fmt.Errorf("invalid transform %q: %w", spec, err)
			}
			transforms = append(transforms, t)
			descriptions = append(descriptions, t.Description())
		}

		modifiedScenario, err := transform.ApplyTransforms(baseScenario, transforms)
		if err != nil {
			return nil, fmt.Errorf("failed to apply transforms: %w", err)
		}
		modifiedScenario.Name = baseName + "_custom"

		altResult, err := ce.alternative(ctx, config, modifiedScenario, strings.Join(descriptions, "; "), baseResult)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate custom scenario: %w", err)
		}
		alternatives = append(alternatives, altResult)
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   baseName,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
		ConfigPath:         options.ConfigPath,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

func (ce *CompareEngine) alternative(ctx context.Context, config *domain.Configuration, scenario *domain.Scenario, description string, base ComparisonResult) (ComparisonResult, error) {
	summary, err := ce.run(ctx, config, scenario)
	if err != nil {
		return ComparisonResult{}, err
	}
	result := ce.MetricsCalculator.CalculateMetrics(scenario, summary)
	result.Description = description
	return ce.MetricsCalculator.CalculateComparison(result, base), nil
}

// run estimates the configuration's household under a scenario's choices
func (ce *CompareEngine) run(ctx context.Context, config *domain.Configuration, scenario *domain.Scenario) (*domain.HouseholdResult, error) {
	in := calculation.InputFromConfiguration(config)
	in.Preferences = scenario.Preferences
	in.MealsOutPerWeek = scenario.MealsOutPerWeek
	in.LeftoversWasted = scenario.LeftoversWasted
	in.PriceMealsOut = true
	return ce.CalcEngine.AggregateInput(ctx, in)
}
