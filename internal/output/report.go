package output

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mysticbob/foodwastecalc/internal/calculation"
	"github.com/mysticbob/foodwastecalc/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultTrackerPrice is the price of the waste tracker used for payback figures
var DefaultTrackerPrice = decimal.NewFromInt(20)

// Report collects everything one CLI run produced. Sections that were not
// computed are nil and omitted from every format.
type Report struct {
	GeneratedAt time.Time                    `json:"generatedAt"`
	RunID       string                       `json:"runId,omitempty"`
	ZIPCode     string                       `json:"zipCode,omitempty"`
	Region      *domain.RegionMatch          `json:"region,omitempty"`
	Preferences *domain.ShoppingPreferences  `json:"preferences,omitempty"`
	Household   *domain.HouseholdResult      `json:"household,omitempty"`
	Quick       *domain.CostEstimate         `json:"quick,omitempty"`
	Adjustment  *domain.CostAdjustmentResult `json:"adjustment,omitempty"`
	Payback     *Payback                     `json:"payback,omitempty"`
	Assumptions []string                     `json:"assumptions,omitempty"`
}

// Payback is how long avoided waste takes to cover a purchase
type Payback struct {
	Price  decimal.Decimal `json:"price"`
	Months int             `json:"months"`
}

// AttachPayback fills Payback from the household's wasted cost. Nothing is
// attached when there is no household or no waste.
func (r *Report) AttachPayback(price decimal.Decimal) {
	if r.Household == nil {
		return
	}
	if months, ok := calculation.PaybackMonths(price, r.Household.WastedCost); ok {
		r.Payback = &Payback{Price: price, Months: months}
	}
}

// Rounded returns a copy with money rounded to cents and calories to whole
// numbers. Formatters render this copy; the engine never rounds.
func (r *Report) Rounded() *Report {
	out := *r
	if r.Household != nil {
		h := *r.Household
		h.TotalDailyCost = cents(h.TotalDailyCost)
		h.TotalMonthlyCost = cents(h.TotalMonthlyCost)
		h.WastedCost = cents(h.WastedCost)
		h.WastedCalories = h.WastedCalories.Round(0)
		h.Breakdown = make([]domain.PersonBreakdown, len(r.Household.Breakdown))
		for i, b := range r.Household.Breakdown {
			b.DailyCost = cents(b.DailyCost)
			h.Breakdown[i] = b
		}
		out.Household = &h
	}
	if r.Quick != nil {
		q := *r.Quick
		q.Daily = cents(q.Daily)
		q.Monthly = cents(q.Monthly)
		q.MealsOutCost = cents(q.MealsOutCost)
		q.MealsInCost = cents(q.MealsInCost)
		out.Quick = &q
	}
	if r.Adjustment != nil {
		a := *r.Adjustment
		a.PlanComparison.PercentDifference = a.PlanComparison.PercentDifference.Round(1)
		out.Adjustment = &a
	}
	return &out
}

func cents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

var printer = message.NewPrinter(language.English)

// FormatCurrency formats a decimal as dollars with thousands separators
func FormatCurrency(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	fixed := amount.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return sign + "$" + fixed
	}
	return sign + "$" + printer.Sprintf("%d", n) + "." + frac
}

// FormatCalories formats a calorie count with thousands separators
func FormatCalories(kcal int) string {
	return printer.Sprintf("%d", kcal) + " kcal"
}

// FormatPercentage formats a decimal as a signed percentage
func FormatPercentage(amount decimal.Decimal) string {
	s := amount.StringFixed(1) + "%"
	if amount.IsPositive() {
		return "+" + s
	}
	return s
}

// FormatMultiplier formats a multiplier like 1.45x
func FormatMultiplier(m decimal.Decimal) string {
	return m.StringFixed(3) + "x"
}

// WriteFormatted writes the formatted report to a timestamped file in the
// working directory and returns its name
func WriteFormatted(f Formatter, r *Report, ext string) (string, error) {
	data, err := f.Format(r)
	if err != nil {
		return "", fmt.Errorf("failed to format report: %w", err)
	}
	filename := fmt.Sprintf("foodcost_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}
