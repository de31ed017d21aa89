package main

import (
	"context"
	"fmt"

	"github.com/mysticbob/foodwastecalc/internal/adjust"
	"github.com/mysticbob/foodwastecalc/internal/calculation"
	"github.com/mysticbob/foodwastecalc/internal/config"
	"github.com/mysticbob/foodwastecalc/internal/domain"
	"github.com/mysticbob/foodwastecalc/internal/logging"
	"github.com/mysticbob/foodwastecalc/internal/output"
	"github.com/spf13/cobra"
)

func estimateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate [input-file]",
		Short: "Estimate monthly food cost and waste for a household file",
		Example: `  foodcost estimate household.yaml
  foodcost estimate household.yaml --format json
  foodcost estimate household.yaml --waste-model leftovers --save`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.parser().LoadFromFile(args[0])
			if err != nil {
				return err
			}

			mode, _ := cmd.Flags().GetString("mode")
			wasteModel := cfg.WasteModel
			if cmd.Flags().Changed("waste-model") {
				wasteModel, _ = cmd.Flags().GetString("waste-model")
			}

			report, err := a.estimate(cmd.Context(), cfg, mode, wasteModel)
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			save, _ := cmd.Flags().GetBool("save")
			return render(cmd, report, format, save)
		},
	}

	cmd.Flags().StringP("format", "f", "console", "Output format (console, json, yaml, csv, html)")
	cmd.Flags().String("mode", calculation.ModeHousehold, "Estimator (household, blend, adjusted); blend and adjusted take a single person")
	cmd.Flags().String("waste-model", "", "Waste model (percentage, leftovers); overrides the file")
	cmd.Flags().Bool("save", false, "Write the report to a timestamped file instead of stdout")
	return cmd
}

// estimate runs the selected estimator over a validated configuration and
// wraps the result in a report
func (a *app) estimate(ctx context.Context, cfg *domain.Configuration, mode, wasteModel string) (*output.Report, error) {
	logger := logging.FromContext(ctx)

	policy, err := calculation.CreateWastePolicy(wasteModel)
	if err != nil {
		return nil, err
	}

	deps := calculation.Dependencies{
		Regions: a.regions,
		Waste:   policy,
		Logger:  a.engineLogger(ctx),
	}
	var adjuster *adjust.Adjuster
	if mode == calculation.ModeAdjusted {
		adjuster = a.newAdjuster("")
		deps.Adjuster = adjuster
	}

	estimator, err := calculation.CreateEstimator(mode, deps)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("mode", estimator.Name()).Int("people", len(cfg.People)).Str("zip", cfg.ZIPCode).Msg("estimating")

	est, err := estimator.Estimate(ctx, calculation.InputFromConfiguration(cfg))
	if adjuster != nil {
		adjuster.Wait()
	}
	if err != nil {
		return nil, fmt.Errorf("estimate failed: %w", err)
	}

	region := a.regions.Resolve(cfg.ZIPCode)
	prefs := cfg.Preferences.WithDefaults()

	report := a.newReport(cfg.ZIPCode)
	report.Region = &region
	report.Preferences = &prefs
	report.Household = est.Household
	report.Quick = est.Quick
	report.AttachPayback(output.DefaultTrackerPrice)
	return report, nil
}

func quickCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quick",
		Short: "Quick single-person estimate from a profile or body measurements",
		Example: `  foodcost quick --zip 10001 --profile adult-female
  foodcost quick --zip 50309 --age 34 --gender male --height "5'11\"" --weight 180 --meals-out 6
  foodcost quick --zip 02139 --profile teen-15y-male --mode adjusted`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			person, err := a.quickPerson(cmd)
			if err != nil {
				return err
			}

			zip, _ := cmd.Flags().GetString("zip")
			mealsOut, _ := cmd.Flags().GetInt("meals-out")
			cfg := &domain.Configuration{
				ZIPCode:         zip,
				People:          []domain.Person{person},
				MealsOutPerWeek: mealsOut,
			}
			cfg.Preferences.CostTier = domain.CostTier(flagString(cmd, "cost-tier"))
			cfg.Preferences.PrepStyle = domain.PrepStyle(flagString(cmd, "prep-style"))
			cfg.Preferences.StoreType = domain.StoreType(flagString(cmd, "store-type"))
			cfg.Preferences.WasteLevel = domain.WasteLevel(flagString(cmd, "waste-level"))

			config.ApplyDefaults(cfg)
			if err := a.parser().ValidateConfiguration(cfg); err != nil {
				return err
			}

			mode, _ := cmd.Flags().GetString("mode")
			report, err := a.estimate(cmd.Context(), cfg, mode, "")
			if err != nil {
				return err
			}
			// payback is a household figure
			report.Payback = nil

			format, _ := cmd.Flags().GetString("format")
			save, _ := cmd.Flags().GetBool("save")
			return render(cmd, report, format, save)
		},
	}

	def := domain.DefaultPreferences()
	cmd.Flags().String("zip", "", "ZIP code or prefix, up to five digits (required)")
	cmd.Flags().String("profile", "adult-male", "Profile id to start from (see 'foodcost profiles')")
	cmd.Flags().Float64("age", 0, "Age in years; with the other body flags, replaces the profile")
	cmd.Flags().String("gender", "", "Gender (male, female)")
	cmd.Flags().String("height", "", "Height, e.g. 5'10\", 5ft 10in, 5.8 or 70")
	cmd.Flags().Float64("weight", 0, "Weight in pounds")
	cmd.Flags().String("activity", string(domain.ActivityModerate), "Activity level (sedentary, light, moderate, active, veryActive)")
	cmd.Flags().Int("meals-out", 0, "Meals eaten out per week (0-21)")
	cmd.Flags().String("cost-tier", string(def.CostTier), "Cost tier (budget, moderate, premium)")
	cmd.Flags().String("prep-style", string(def.PrepStyle), "Prep style (mostly_home, mixed, mostly_prepared)")
	cmd.Flags().String("store-type", string(def.StoreType), "Store type (discount, standard, premium)")
	cmd.Flags().String("waste-level", string(def.WasteLevel), "Waste level (low, average, high)")
	cmd.Flags().String("mode", calculation.ModeBlend, "Quick estimator (blend, adjusted, household)")
	cmd.Flags().StringP("format", "f", "console", "Output format (console, json, yaml, csv, html)")
	cmd.Flags().Bool("save", false, "Write the report to a timestamped file instead of stdout")
	_ = cmd.MarkFlagRequired("zip")
	return cmd
}

// quickPerson builds the person for a quick estimate. A profile is the
// starting point; body flags that were given override its fields.
func (a *app) quickPerson(cmd *cobra.Command) (domain.Person, error) {
	profileID, _ := cmd.Flags().GetString("profile")
	base, err := a.profiles.Lookup(profileID)
	if err != nil {
		return domain.Person{}, err
	}
	person := domain.NewPerson("person-1", "Person 1", base)

	if cmd.Flags().Changed("age") {
		person.Age, _ = cmd.Flags().GetFloat64("age")
	}
	if cmd.Flags().Changed("gender") {
		person.Gender = domain.Gender(flagString(cmd, "gender"))
	}
	if cmd.Flags().Changed("activity") || base.ActivityLevel == "" {
		person.ActivityLevel = domain.ActivityLevel(flagString(cmd, "activity"))
	}
	if cmd.Flags().Changed("height") {
		if err := person.SetImperialHeight(flagString(cmd, "height")); err != nil {
			return domain.Person{}, err
		}
	}
	if cmd.Flags().Changed("weight") {
		lbs, _ := cmd.Flags().GetFloat64("weight")
		person.SetImperialWeight(lbs)
	}
	return person, nil
}

func flagString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}
