package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mysticbob/foodwastecalc/internal/domain"
)

// TransformRegistry provides a central registry for all available transforms.
// It enables creation of transforms from string parameters, useful for CLI commands.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(params map[string]string) (ScenarioTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	registry.Register("set_cost_tier", createSetCostTier)
	registry.Register("set_prep_style", createSetPrepStyle)
	registry.Register("set_store_type", createSetStoreType)
	registry.Register("set_waste_level", createSetWasteLevel)
	registry.Register("set_meals_out", createSetMealsOut)
	registry.Register("set_leftovers", createSetLeftovers)

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (ScenarioTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}

	return factory(params)
}

// List returns the names of all registered transforms, sorted.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses a transform specification string.
// Format: "transform_name:param1=value1,param2=value2"
// Example: "set_cost_tier:tier=budget"
func (r *TransformRegistry) ParseTransformSpec(spec string) (ScenarioTransform, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}

	name := strings.TrimSpace(parts[0])
	paramsStr := strings.TrimSpace(parts[1])

	params := make(map[string]string)
	if paramsStr != "" {
		for _, paramPair := range strings.Split(paramsStr, ",") {
			kv := strings.SplitN(paramPair, "=", 2)
			if len(kv) != 2 {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
			}
			params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	return r.Create(name, params)
}

func requireParam(transform, key string, params map[string]string) (string, error) {
	v, ok := params[key]
	if !ok || v == "" {
		return "", fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	return v, nil
}

func createSetCostTier(params map[string]string) (ScenarioTransform, error) {
	v, err := requireParam("set_cost_tier", "tier", params)
	if err != nil {
		return nil, err
	}
	return &SetCostTier{Tier: domain.CostTier(v)}, nil
}

func createSetPrepStyle(params map[string]string) (ScenarioTransform, error) {
	v, err := requireParam("set_prep_style", "style", params)
	if err != nil {
		return nil, err
	}
	return &SetPrepStyle{Style: domain.PrepStyle(v)}, nil
}

func createSetStoreType(params map[string]string) (ScenarioTransform, error) {
	v, err := requireParam("set_store_type", "store", params)
	if err != nil {
		return nil, err
	}
	return &SetStoreType{Store: domain.StoreType(v)}, nil
}

func createSetWasteLevel(params map[string]string) (ScenarioTransform, error) {
	v, err := requireParam("set_waste_level", "level", params)
	if err != nil {
		return nil, err
	}
	return &SetWasteLevel{Level: domain.WasteLevel(v)}, nil
}

func createSetMealsOut(params map[string]string) (ScenarioTransform, error) {
	v, err := requireParam("set_meals_out", "meals", params)
	if err != nil {
		return nil, err
	}
	meals, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("invalid meals value: %w", err)
	}
	return &SetMealsOut{Meals: meals}, nil
}

func createSetLeftovers(params map[string]string) (ScenarioTransform, error) {
	v, err := requireParam("set_leftovers", "count", params)
	if err != nil {
		return nil, err
	}
	count, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("invalid count value: %w", err)
	}
	return &SetLeftovers{Count: count}, nil
}
