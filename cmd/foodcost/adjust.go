package main

import (
	"fmt"

	"github.com/mysticbob/foodwastecalc/internal/config"
	"github.com/mysticbob/foodwastecalc/internal/data"
	"github.com/mysticbob/foodwastecalc/internal/domain"
	"github.com/mysticbob/foodwastecalc/internal/logging"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func adjustCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adjust",
		Short: "Apply seasonal and inflation adjustments to a monthly food budget",
		Long: "Adjusts a monthly food budget for the region's cost level, the current season and\n" +
			"food price inflation, then compares it with the nearest USDA food plan.\n\n" +
			"Price indices older than a day are refreshed in the background when " + config.EnvBLSAPIKey + " is set.",
		Example: `  foodcost adjust --zip 02139 --budget 350
  foodcost adjust --zip 94103 --budget 1100 --category family --refresh`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := logging.FromContext(ctx)

			zip, _ := cmd.Flags().GetString("zip")
			if err := config.ValidateZIP(zip); err != nil {
				return err
			}
			budgetStr, _ := cmd.Flags().GetString("budget")
			budget, err := decimal.NewFromString(budgetStr)
			if err != nil || budget.IsNegative() {
				return domain.NewValidationError("budget", "must be a non-negative amount, got %q", budgetStr)
			}
			category, _ := cmd.Flags().GetString("category")

			adjuster := a.newAdjuster(category)
			defer adjuster.Wait()

			regionKey := domain.RegionKeyForZIP(zip)
			logger.Info().Str("region", regionKey).Str("category", adjuster.Category()).Msg("adjusting budget")
			if refresh, _ := cmd.Flags().GetBool("refresh"); refresh {
				if err := adjuster.Refresh(ctx, regionKey); err != nil {
					logger.Warn().Err(err).Str("region", regionKey).Msg("price index refresh failed, using stored indices")
				}
			}

			result, err := adjuster.Adjust(ctx, regionKey, budget, a.now())
			if err != nil {
				return fmt.Errorf("adjustment failed: %w", err)
			}

			report := a.newReport(zip)
			report.Adjustment = result

			format, _ := cmd.Flags().GetString("format")
			save, _ := cmd.Flags().GetBool("save")
			return render(cmd, report, format, save)
		},
	}

	cmd.Flags().String("zip", "", "ZIP code or prefix, up to five digits (required)")
	cmd.Flags().String("budget", "", "Monthly food budget in dollars (required)")
	cmd.Flags().String("category", data.CategoryIndividual, "USDA plan category (individual, family)")
	cmd.Flags().Bool("refresh", false, "Refresh price indices before adjusting")
	cmd.Flags().StringP("format", "f", "console", "Output format (console, json, yaml, csv, html)")
	cmd.Flags().Bool("save", false, "Write the report to a timestamped file instead of stdout")
	_ = cmd.MarkFlagRequired("zip")
	_ = cmd.MarkFlagRequired("budget")
	return cmd
}
