package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mysticbob/foodwastecalc/internal/domain"
)

// TemplateRegistry manages built-in scenario templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string
	Description string
	Transforms  []ScenarioTransform
}

// NewTemplateRegistry creates a new template registry with built-in templates
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names, sorted
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateBuiltInTemplates creates a template registry with common shopping changes
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	registry.Register(Template{
		Name:        "budget_shopper",
		Description: "Buy budget-tier groceries",
		Transforms: []ScenarioTransform{
			&SetCostTier{Tier: domain.CostTierBudget},
		},
	})

	registry.Register(Template{
		Name:        "discount_store",
		Description: "Shop mainly at discount stores",
		Transforms: []ScenarioTransform{
			&SetStoreType{Store: domain.StoreDiscount},
		},
	})

	registry.Register(Template{
		Name:        "home_cooking",
		Description: "Cook mostly from scratch and stop eating out",
		Transforms: []ScenarioTransform{
			&SetPrepStyle{Style: domain.PrepMostlyHome},
			&SetMealsOut{Meals: 0},
		},
	})

	registry.Register(Template{
		Name:        "low_waste",
		Description: "Cut waste to the low level and finish all leftovers",
		Transforms: []ScenarioTransform{
			&SetWasteLevel{Level: domain.WasteLow},
			&SetLeftovers{Count: 0},
		},
	})

	registry.Register(Template{
		Name:        "premium_everything",
		Description: "Premium groceries, mostly prepared food, premium stores",
		Transforms: []ScenarioTransform{
			&SetCostTier{Tier: domain.CostTierPremium},
			&SetPrepStyle{Style: domain.PrepMostlyPrepared},
			&SetStoreType{Store: domain.StorePremium},
		},
	})

	registry.Register(Template{
		Name:        "frugal",
		Description: "Budget groceries from discount stores, home cooking, low waste",
		Transforms: []ScenarioTransform{
			&SetCostTier{Tier: domain.CostTierBudget},
			&SetStoreType{Store: domain.StoreDiscount},
			&SetPrepStyle{Style: domain.PrepMostlyHome},
			&SetWasteLevel{Level: domain.WasteLow},
		},
	})

	return registry
}

// ApplyTemplate applies a template to a base scenario
func ApplyTemplate(base *domain.Scenario, template Template) (*domain.Scenario, error) {
	if len(template.Transforms) == 0 {
		return base.DeepCopy(), nil
	}
	return ApplyTransforms(base, template.Transforms)
}

// ParseTemplateList parses a comma-separated list of template names
func ParseTemplateList(templateList string) []string {
	if templateList == "" {
		return nil
	}

	parts := strings.Split(templateList, ",")
	templates := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			templates = append(templates, trimmed)
		}
	}
	return templates
}

// GetTemplateHelp returns formatted help text for all templates
func GetTemplateHelp(registry *TemplateRegistry) string {
	if len(registry.templates) == 0 {
		return "No templates registered"
	}

	var sb strings.Builder
	sb.WriteString("Available Templates:\n\n")

	categories := map[string][]Template{
		"Spending":    {},
		"Habits":      {},
		"Combination": {},
	}

	for _, template := range registry.templates {
		switch {
		case len(template.Transforms) > 2:
			categories["Combination"] = append(categories["Combination"], template)
		case template.Name == "home_cooking" || template.Name == "low_waste":
			categories["Habits"] = append(categories["Habits"], template)
		default:
			categories["Spending"] = append(categories["Spending"], template)
		}
	}

	for _, category := range []string{"Spending", "Habits", "Combination"} {
		templates := categories[category]
		if len(templates) == 0 {
			continue
		}
		sort.Slice(templates, func(i, j int) bool { return templates[i].Name < templates[j].Name })

		sb.WriteString(fmt.Sprintf("%s:\n", category))
		for _, t := range templates {
			sb.WriteString(fmt.Sprintf("  %-30s %s\n", t.Name, t.Description))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Usage:\n")
	sb.WriteString("  foodcost compare household.yaml --with budget_shopper,low_waste\n")
	sb.WriteString("  foodcost compare household.yaml --with frugal --transform set_meals_out:meals=2\n")

	return sb.String()
}
