package main

import (
	"fmt"

	"github.com/mysticbob/foodwastecalc/internal/calculation"
	"github.com/mysticbob/foodwastecalc/internal/compare"
	"github.com/mysticbob/foodwastecalc/internal/logging"
	"github.com/mysticbob/foodwastecalc/internal/transform"
	"github.com/spf13/cobra"
)

func compareCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [input-file]",
		Short: "Compare a household's food cost under different shopping habits",
		Long: `Compare the household in a file against what-if scenarios built from
templates (--with) or individual transforms (--transform). Members and ZIP code
stay the same; only shopping preferences, meals out and leftovers change.`,
		Example: `  foodcost compare household.yaml --with frugal,low_waste
  foodcost compare household.yaml --transform set_cost_tier:tier=budget --transform set_store_type:store=discount
  foodcost compare household.yaml --with budget_shopper --format csv
  foodcost compare --list-templates`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if list, _ := cmd.Flags().GetBool("list-templates"); list {
				fmt.Fprintln(cmd.OutOrStdout(), transform.GetTemplateHelp(transform.CreateBuiltInTemplates()))
				return nil
			}
			if len(args) != 1 {
				return fmt.Errorf("an input file is required (or use --list-templates)")
			}

			templatesStr, _ := cmd.Flags().GetString("with")
			transforms, _ := cmd.Flags().GetStringArray("transform")
			templates := transform.ParseTemplateList(templatesStr)
			if len(templates) == 0 && len(transforms) == 0 {
				return fmt.Errorf("--with or --transform is required to specify what to compare (or use --list-templates)")
			}

			cfg, err := a.parser().LoadFromFile(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			policy, err := calculation.CreateWastePolicy(cfg.WasteModel)
			if err != nil {
				return err
			}
			engine := calculation.NewEngine(a.regions)
			engine.SetLogger(a.engineLogger(ctx))
			engine.SetWastePolicy(policy)

			base, _ := cmd.Flags().GetString("base")
			logging.FromContext(ctx).Info().
				Strs("templates", templates).
				Strs("transforms", transforms).
				Msg("comparing scenarios")

			compSet, err := compare.NewCompareEngine(engine).Compare(ctx, cfg, compare.CompareOptions{
				BaseScenarioName: base,
				Templates:        templates,
				Transforms:       transforms,
				ConfigPath:       args[0],
			})
			if err != nil {
				return fmt.Errorf("comparison failed: %w", err)
			}

			format, _ := cmd.Flags().GetString("format")
			var out string
			switch format {
			case "csv":
				out, err = (&compare.CSVFormatter{}).Format(compSet)
			case "json":
				out, err = (&compare.JSONFormatter{Pretty: true}).Format(compSet)
				out += "\n"
			case "table", "console", "":
				out = (&compare.TableFormatter{}).Format(compSet)
			default:
				return fmt.Errorf("unsupported format: %s (use table, csv or json)", format)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().String("base", compare.DefaultBaseScenarioName, "Name for the household as configured")
	cmd.Flags().String("with", "", "Comma-separated list of templates to compare")
	cmd.Flags().StringArray("transform", nil, "Transform spec name:key=value; repeat to combine into one custom scenario")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")
	cmd.Flags().Bool("list-templates", false, "List all available scenario templates")
	return cmd
}
