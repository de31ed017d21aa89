package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/mysticbob/foodwastecalc/internal/adjust"
	"github.com/mysticbob/foodwastecalc/internal/calculation"
	"github.com/mysticbob/foodwastecalc/internal/config"
	"github.com/mysticbob/foodwastecalc/internal/data"
	"github.com/mysticbob/foodwastecalc/internal/household"
	"github.com/mysticbob/foodwastecalc/internal/logging"
	"github.com/mysticbob/foodwastecalc/internal/output"
	"github.com/mysticbob/foodwastecalc/internal/profile"
	"github.com/mysticbob/foodwastecalc/internal/region"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app holds what every command shares. It is filled in by the root
// command's pre-run hook.
type app struct {
	lookupEnv func(string) (string, bool)
	now       func() time.Time

	settings config.Settings
	runID    string
	tables   *data.Tables
	regions  *region.Resolver
	profiles *profile.Store
}

// NewRootCmd creates the root command reading settings from the process environment
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithEnv(os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit environment lookup
func NewRootCmdWithEnv(lookupEnv func(string) (string, bool)) *cobra.Command {
	a := &app{lookupEnv: lookupEnv, now: time.Now}

	cmd := &cobra.Command{
		Use:   "foodcost",
		Short: "Household food cost estimator",
		Long: "Estimates what a household spends on food each month from its members' calorie needs,\n" +
			"shopping habits and ZIP code, and how much of that is thrown away.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentFlags().String("log-format", "", "Log format (console, json)")

	cmd.AddCommand(
		estimateCmd(a),
		quickCmd(a),
		adjustCmd(a),
		compareCmd(a),
		profilesCmd(a),
		regionCmd(a),
		validateCmd(a),
		versionCmd(),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	a.settings = config.LoadSettings(a.lookupEnv)
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		a.settings.LogLevel = "debug"
	}
	if cmd.Flags().Changed("log-format") {
		a.settings.LogFormat, _ = cmd.Flags().GetString("log-format")
	}

	logger := logging.ComponentLogger(logging.New(logging.Config{
		Level:  a.settings.LogLevel,
		Format: a.settings.LogFormat,
		Output: cmd.ErrOrStderr(),
	}), "cli")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a.runID = logging.NewRunID()
	ctx = logging.WithRunID(ctx, logger, a.runID)
	cmd.SetContext(ctx)

	tables, err := data.Load()
	if err != nil {
		return fmt.Errorf("failed to load reference data: %w", err)
	}
	a.tables = tables
	a.regions = region.NewResolver(tables.States, tables.Metros)
	a.profiles = profile.NewStore(tables.Profiles)

	logging.FromContext(ctx).Debug().Str("command", cmd.Name()).Msg("command started")
	return nil
}

// parser returns an input parser that composes households from the profile catalog
func (a *app) parser() *config.InputParser {
	return config.NewInputParser(household.NewComposer(a.profiles, nil))
}

// engineLogger adapts the run's logger for the calculation package
func (a *app) engineLogger(ctx context.Context) calculation.Logger {
	return logging.Printf{Logger: *logging.FromContext(ctx)}
}

// newAdjuster builds an adjuster over the embedded regional data. Live
// price indices are only fetched when a BLS API key is configured.
func (a *app) newAdjuster(category string) *adjust.Adjuster {
	opts := []adjust.Option{
		adjust.WithRefreshTimeout(a.settings.RefreshTimeout),
	}
	if category != "" {
		opts = append(opts, adjust.WithCategory(category))
	}
	if a.settings.BLSAPIKey != "" {
		opts = append(opts, adjust.WithSource(adjust.NewBLSSource(a.settings.BLSAPIKey)))
	}
	return adjust.NewAdjuster(a.tables.Regional, a.tables.FoodPlans, opts...)
}

func (a *app) newReport(zip string) *output.Report {
	return &output.Report{
		GeneratedAt: a.now(),
		RunID:       a.runID,
		ZIPCode:     zip,
		Assumptions: output.DefaultAssumptions,
	}
}

// isTerminal reports whether f is a terminal
var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func isWriterTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isTerminal(f)
	}
	return false
}

// formatterFor picks the formatter for a destination. Console output to a
// terminal is styled; saved files and pipes get plain text.
func formatterFor(w io.Writer, format string, save bool) (output.Formatter, error) {
	f, err := output.GetFormatterByName(format)
	if err != nil {
		return nil, err
	}
	if f.Name() == "console" && !save && isWriterTerminal(w) {
		return output.StyledConsoleFormatter{}, nil
	}
	return f, nil
}

// render writes the report to stdout, or to a timestamped file when save is set
func render(cmd *cobra.Command, report *output.Report, format string, save bool) error {
	f, err := formatterFor(cmd.OutOrStdout(), format, save)
	if err != nil {
		return err
	}

	if save {
		ext := format
		if format == "console" {
			ext = "txt"
		}
		filename, err := output.WriteFormatted(f, report, ext)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report saved to %s\n", filename)
		return nil
	}

	out, err := f.Format(report)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "foodcost %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.Main.Version
	}
	return ""
}

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
