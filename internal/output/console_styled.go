package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	styledTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))
	styledSection = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33"))
	styledLabel = lipgloss.NewStyle().
			Width(21)
	styledValue = lipgloss.NewStyle().
			Bold(true)
	styledWaste = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208"))
	styledMuted = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246"))
	styledBox = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// StyledConsoleFormatter renders the console report with colors and
// borders for an interactive terminal. Saved and piped output use
// ConsoleFormatter.
type StyledConsoleFormatter struct{}

func (StyledConsoleFormatter) Name() string { return "console" }

func (StyledConsoleFormatter) Format(report *Report) ([]byte, error) {
	r := report.Rounded()
	var b strings.Builder

	b.WriteString(styledTitle.Render("HOUSEHOLD FOOD COST ESTIMATE"))
	b.WriteString("\n")
	if r.ZIPCode != "" {
		location := "ZIP " + r.ZIPCode
		if r.Region != nil {
			location += fmt.Sprintf(" · %s · %s", r.Region.DisplayName, FormatMultiplier(r.Region.Multiplier))
		}
		b.WriteString(styledMuted.Render(location))
		b.WriteString("\n")
	}
	if p := r.Preferences; p != nil {
		b.WriteString(styledMuted.Render(fmt.Sprintf("%s groceries, %s prep, %s stores, %s waste",
			p.CostTier, strings.ReplaceAll(string(p.PrepStyle), "_", " "), p.StoreType, p.WasteLevel)))
		b.WriteString("\n")
	}

	if h := r.Household; h != nil {
		b.WriteString("\n")
		b.WriteString(styledSection.Render("HOUSEHOLD BREAKDOWN"))
		b.WriteString("\n")

		rows := make([][]string, 0, len(h.Breakdown)+1)
		for _, m := range h.Breakdown {
			rows = append(rows, []string{m.Label, FormatCalories(m.Calories), FormatCurrency(m.DailyCost)})
		}
		rows = append(rows, []string{"TOTAL", FormatCalories(h.TotalCalories), FormatCurrency(h.TotalDailyCost)})
		last := len(rows) - 1

		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(styledMuted).
			Headers("Member", "Calories", "Daily Cost").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				s := lipgloss.NewStyle().Padding(0, 1)
				if col > 0 {
					s = s.Align(lipgloss.Right)
				}
				if row == table.HeaderRow || row == last {
					s = s.Bold(true)
				}
				return s
			})
		b.WriteString(t.String())
		b.WriteString("\n\n")

		writeStyledLine(&b, "Monthly Food Cost", styledValue.Render(FormatCurrency(h.TotalMonthlyCost)))
		writeStyledLine(&b, "Wasted Each Month", styledWaste.Render(FormatCurrency(h.WastedCost))+
			styledMuted.Render(fmt.Sprintf(" (%s kcal, %s model)", h.WastedCalories.String(), h.WasteModel)))
		writeStyledLine(&b, "Preference Factor", FormatMultiplier(h.PreferenceFactor))
		if r.Payback != nil {
			b.WriteString(fmt.Sprintf("A %s waste tracker would pay for itself in %d month(s).\n",
				FormatCurrency(r.Payback.Price), r.Payback.Months))
		}
	}

	if q := r.Quick; q != nil {
		b.WriteString("\n")
		b.WriteString(styledSection.Render("QUICK ESTIMATE (" + strings.ToUpper(q.Mode) + ")"))
		b.WriteString("\n")
		writeStyledLine(&b, "Calories", FormatCalories(q.Calories))
		writeStyledLine(&b, "Daily Cost", FormatCurrency(q.Daily))
		writeStyledLine(&b, "Monthly Cost", styledValue.Render(FormatCurrency(q.Monthly)))
		writeStyledLine(&b, "Meal Out", FormatCurrency(q.MealsOutCost))
		writeStyledLine(&b, "Meal At Home", FormatCurrency(q.MealsInCost))
		writeStyledLine(&b, "Season", string(q.Seasonal))
		writeStyledLine(&b, "Pricing", fmt.Sprintf("%s (%s total)", q.Regional, FormatMultiplier(q.TotalMultiplier)))
	}

	if a := r.Adjustment; a != nil {
		b.WriteString("\n")
		b.WriteString(styledSection.Render("SEASONAL & INFLATION ADJUSTMENT"))
		b.WriteString("\n")
		name := a.RegionName
		if name == "" {
			name = "region " + a.RegionKey
		}
		writeStyledLine(&b, "Region", name)
		writeStyledLine(&b, "Base Multiplier", FormatMultiplier(a.BaseMultiplier))
		writeStyledLine(&b, "Seasonal ("+string(a.Season)+")", FormatMultiplier(a.SeasonalMultiplier))
		writeStyledLine(&b, "Inflation", FormatMultiplier(a.InflationAdjustment))
		writeStyledLine(&b, "Total Multiplier", styledValue.Render(FormatMultiplier(a.TotalMultiplier)))
		freshness := "current"
		if !a.Fresh {
			freshness = styledWaste.Render("stale, refresh requested")
		}
		writeStyledLine(&b, "Price Data", a.LastUpdated.Format("2006-01-02")+" ("+freshness+")")
		pc := a.PlanComparison
		writeStyledLine(&b, "Closest USDA Plan", fmt.Sprintf("%s %s at %s (%s)",
			pc.Category, pc.PlanName, FormatCurrency(pc.MonthlyCost), FormatPercentage(pc.PercentDifference)))
	}

	assumptions := r.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}
	b.WriteString("\n")
	b.WriteString(styledSection.Render("KEY ASSUMPTIONS"))
	b.WriteString("\n")
	for _, a := range assumptions {
		b.WriteString(styledMuted.Render("• " + a))
		b.WriteString("\n")
	}

	return []byte(styledBox.Render(strings.TrimRight(b.String(), "\n")) + "\n"), nil
}

func writeStyledLine(b *strings.Builder, label, value string) {
	b.WriteString(styledLabel.Render(label + ":"))
	b.WriteString(value)
	b.WriteString("\n")
}
