package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/mysticbob/foodwastecalc/internal/config"
	"github.com/mysticbob/foodwastecalc/internal/domain"
	"github.com/mysticbob/foodwastecalc/internal/output"
	"github.com/spf13/cobra"
)

func profilesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List the person profiles households are built from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			group, _ := cmd.Flags().GetString("group")

			ids := a.profiles.IDs()
			if group != "" {
				ids = a.profiles.Group(group)
				if len(ids) == 0 {
					return &domain.NotFoundError{Kind: "profile group", ID: group}
				}
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tDESCRIPTION")
			for _, id := range ids {
				desc, err := a.profiles.Describe(id)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%s\n", id, desc)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().String("group", "", "Only list one group (adults, babies, kids, teens)")
	return cmd
}

func regionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "region [zip]",
		Short: "Show the regional cost multiplier for a ZIP code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			zip := args[0]
			if err := config.ValidateZIP(zip); err != nil {
				return err
			}

			match := a.regions.Resolve(zip)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ZIP Code:    %s\n", zip)
			fmt.Fprintf(out, "Region:      %s\n", match.DisplayName)
			fmt.Fprintf(out, "Match:       %s", match.Tier)
			if match.Key != "" {
				fmt.Fprintf(out, " (prefix %s)", match.Key)
			}
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Multiplier:  %s\n", output.FormatMultiplier(match.Multiplier))

			key := domain.RegionKeyForZIP(zip)
			if rd, ok := a.tables.Regional[key]; ok {
				fmt.Fprintf(out, "Price Index: %s (key %s, base multiplier %s)\n",
					rd.Name, key, output.FormatMultiplier(rd.CostMultiplier))
			}
			return nil
		},
	}
}

func validateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [input-file]",
		Short: "Validate a household file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.parser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file %s is valid (%d people, ZIP %s)\n",
				args[0], len(cfg.People), cfg.ZIPCode)
			return nil
		},
	}
}
