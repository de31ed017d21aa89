package transform

import (
	"strings"
	"testing"

	"github.com/mysticbob/foodwastecalc/internal/domain"
)

func TestTemplateRegistry_RegisterAndGet(t *testing.T) {
	registry := NewTemplateRegistry()
	registry.Register(Template{Name: "test_template", Description: "A test template"})

	if _, ok := registry.Get("test_template"); !ok {
		t.Fatal("Expected to find template")
	}
	if _, ok := registry.Get("TEST_TEMPLATE"); !ok {
		t.Fatal("Expected case-insensitive lookup to work")
	}
	if _, ok := registry.Get("nonexistent"); ok {
		t.Error("Expected not to find nonexistent template")
	}
}

func TestCreateBuiltInTemplates(t *testing.T) {
	registry := CreateBuiltInTemplates()

	want := []string{"budget_shopper", "discount_store", "frugal", "home_cooking", "low_waste", "premium_everything"}
	if got := registry.List(); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("Expected %v, got %v", want, got)
	}

	base := createTestScenario()
	for _, name := range want {
		tmpl, _ := registry.Get(name)
		if _, err := ApplyTemplate(base, tmpl); err != nil {
			t.Errorf("Template %s failed to apply: %v", name, err)
		}
	}
}

func TestApplyTemplate(t *testing.T) {
	registry := CreateBuiltInTemplates()
	base := createTestScenario()

	tests := []struct {
		template  string
		prefs     domain.ShoppingPreferences
		mealsOut  int
		leftovers int
	}{
		{
			template:  "home_cooking",
			prefs:     domain.ShoppingPreferences{CostTier: domain.CostTierModerate, PrepStyle: domain.PrepMostlyHome, StoreType: domain.StoreStandard, WasteLevel: domain.WasteAverage},
			mealsOut:  0,
			leftovers: 6,
		},
		{
			template:  "low_waste",
			prefs:     domain.ShoppingPreferences{CostTier: domain.CostTierModerate, PrepStyle: domain.PrepMixed, StoreType: domain.StoreStandard, WasteLevel: domain.WasteLow},
			mealsOut:  4,
			leftovers: 0,
		},
		{
			template:  "frugal",
			prefs:     domain.ShoppingPreferences{CostTier: domain.CostTierBudget, PrepStyle: domain.PrepMostlyHome, StoreType: domain.StoreDiscount, WasteLevel: domain.WasteLow},
			mealsOut:  4,
			leftovers: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			tmpl, ok := registry.Get(tt.template)
			if !ok {
				t.Fatalf("Template %s not registered", tt.template)
			}
			result, err := ApplyTemplate(base, tmpl)
			if err != nil {
				t.Fatal(err)
			}
			if result.Preferences != tt.prefs {
				t.Errorf("Expected %+v, got %+v", tt.prefs, result.Preferences)
			}
			if result.MealsOutPerWeek != tt.mealsOut {
				t.Errorf("Expected %d meals out, got %d", tt.mealsOut, result.MealsOutPerWeek)
			}
			if *result.LeftoversWasted != tt.leftovers {
				t.Errorf("Expected %d leftovers, got %d", tt.leftovers, *result.LeftoversWasted)
			}
		})
	}

	empty, err := ApplyTemplate(base, Template{Name: "noop"})
	if err != nil || empty == base {
		t.Errorf("Expected a copy for an empty template, got %v %v", empty, err)
	}
}

func TestParseTemplateList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"frugal", []string{"frugal"}},
		{" budget_shopper , ,low_waste ", []string{"budget_shopper", "low_waste"}},
	}
	for _, tt := range tests {
		got := ParseTemplateList(tt.in)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("ParseTemplateList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGetTemplateHelp(t *testing.T) {
	help := GetTemplateHelp(CreateBuiltInTemplates())

	for _, want := range []string{"Spending:", "Habits:", "Combination:", "frugal", "home_cooking", "foodcost compare"} {
		if !strings.Contains(help, want) {
			t.Errorf("Expected help to contain %q", want)
		}
	}
	if strings.Index(help, "Spending:") > strings.Index(help, "Combination:") {
		t.Error("Expected categories in fixed order")
	}

	if got := GetTemplateHelp(NewTemplateRegistry()); got != "No templates registered" {
		t.Errorf("Unexpected help for empty registry: %q", got)
	}
}
