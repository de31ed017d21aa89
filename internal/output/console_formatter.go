package output

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"
)

// ConsoleFormatter renders a human readable report
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(report *Report) ([]byte, error) {
	r := report.Rounded()
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "HOUSEHOLD FOOD COST ESTIMATE")
	fmt.Fprintln(&buf, "=================================================================================")
	if r.ZIPCode != "" {
		fmt.Fprintf(&buf, "ZIP Code: %s", r.ZIPCode)
		if r.Region != nil {
			fmt.Fprintf(&buf, " (%s, %s)", r.Region.DisplayName, FormatMultiplier(r.Region.Multiplier))
		}
		fmt.Fprintln(&buf)
	}
	if p := r.Preferences; p != nil {
		fmt.Fprintf(&buf, "Shopping: %s groceries, %s prep, %s stores, %s waste\n",
			p.CostTier, strings.ReplaceAll(string(p.PrepStyle), "_", " "), p.StoreType, p.WasteLevel)
	}
	fmt.Fprintln(&buf)

	if h := r.Household; h != nil {
		fmt.Fprintln(&buf, "HOUSEHOLD BREAKDOWN")
		fmt.Fprintln(&buf, "-------------------")
		tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "Member\tCalories\tDaily Cost")
		for _, b := range h.Breakdown {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", b.Label, FormatCalories(b.Calories), FormatCurrency(b.DailyCost))
		}
		fmt.Fprintf(tw, "TOTAL\t%s\t%s\n", FormatCalories(h.TotalCalories), FormatCurrency(h.TotalDailyCost))
		if err := tw.Flush(); err != nil {
			return nil, err
		}
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Monthly Food Cost:   %s\n", FormatCurrency(h.TotalMonthlyCost))
		fmt.Fprintf(&buf, "Wasted Each Month:   %s (%s kcal, %s model)\n",
			FormatCurrency(h.WastedCost), h.WastedCalories.String(), h.WasteModel)
		fmt.Fprintf(&buf, "Preference Factor:   %s\n", FormatMultiplier(h.PreferenceFactor))
		if r.Payback != nil {
			fmt.Fprintf(&buf, "A %s waste tracker would pay for itself in %d month(s).\n",
				FormatCurrency(r.Payback.Price), r.Payback.Months)
		}
		fmt.Fprintln(&buf)
	}

	if q := r.Quick; q != nil {
		fmt.Fprintf(&buf, "QUICK ESTIMATE (%s)\n", strings.ToUpper(q.Mode))
		fmt.Fprintln(&buf, "------------------------")
		fmt.Fprintf(&buf, "Calories:            %s\n", FormatCalories(q.Calories))
		fmt.Fprintf(&buf, "Daily Cost:          %s\n", FormatCurrency(q.Daily))
		fmt.Fprintf(&buf, "Monthly Cost:        %s\n", FormatCurrency(q.Monthly))
		fmt.Fprintf(&buf, "Meal Out:            %s\n", FormatCurrency(q.MealsOutCost))
		fmt.Fprintf(&buf, "Meal At Home:        %s\n", FormatCurrency(q.MealsInCost))
		fmt.Fprintf(&buf, "Season:              %s\n", q.Seasonal)
		fmt.Fprintf(&buf, "Pricing:             %s (%s total)\n", q.Regional, FormatMultiplier(q.TotalMultiplier))
		fmt.Fprintln(&buf)
	}

	if a := r.Adjustment; a != nil {
		fmt.Fprintln(&buf, "SEASONAL & INFLATION ADJUSTMENT")
		fmt.Fprintln(&buf, "-------------------------------")
		name := a.RegionName
		if name == "" {
			name = "region " + a.RegionKey
		}
		fmt.Fprintf(&buf, "Region:              %s\n", name)
		fmt.Fprintf(&buf, "Base Multiplier:     %s\n", FormatMultiplier(a.BaseMultiplier))
		fmt.Fprintf(&buf, "%-21s%s\n", "Seasonal ("+string(a.Season)+"):", FormatMultiplier(a.SeasonalMultiplier))
		fmt.Fprintf(&buf, "Inflation:           %s\n", FormatMultiplier(a.InflationAdjustment))
		fmt.Fprintf(&buf, "Total Multiplier:    %s\n", FormatMultiplier(a.TotalMultiplier))
		freshness := "current"
		if !a.Fresh {
			freshness = "stale, refresh requested"
		}
		fmt.Fprintf(&buf, "Price Data:          %s (%s)\n", a.LastUpdated.Format("2006-01-02"), freshness)
		pc := a.PlanComparison
		fmt.Fprintf(&buf, "Closest USDA Plan:   %s %s at %s (%s)\n",
			pc.Category, pc.PlanName, FormatCurrency(pc.MonthlyCost), FormatPercentage(pc.PercentDifference))
		fmt.Fprintln(&buf)
	}

	assumptions := r.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range assumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	return buf.Bytes(), nil
}
