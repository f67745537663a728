// Package cli wires flags and configuration into the pipeline driver.
package cli

import (
	"context"
	"io"
	"log"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/pssmlab/loorun/internal/config"
	"github.com/pssmlab/loorun/internal/runner"
	"github.com/pssmlab/loorun/pkg/loo"
	"github.com/pssmlab/loorun/pkg/loo/drawer"
	"github.com/pssmlab/loorun/pkg/loo/measure"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitConfig  = 2
)

type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// NewRootCommand builds the loorun command. Job output streams to stdout and
// stderr; orchestrator logs go to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var (
		flagConfig      string
		flagDataset     string
		flagOutputDir   string
		flagItems       []string
		flagThreshold   float64
		flagMaxResults  int
		flagSearchCmd   string
		flagPlotCmd     string
		flagConcurrency int
		flagDraw        string
		flagMeasure     bool
	)

	cmd := &cobra.Command{
		Use:           "loorun",
		Short:         "run a two-phase leave-one-out analysis over a fixed item set",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if flagConfig != "" {
				loaded, err := config.Load(flagConfig)
				if err != nil {
					return &exitError{code: ExitConfig, err: err}
				}
				cfg = loaded
			}

			flags := cmd.Flags()
			if flags.Changed("dataset") {
				cfg.Dataset = flagDataset
			}
			if flags.Changed("output-dir") {
				cfg.OutputDir = flagOutputDir
			}
			if flags.Changed("items") {
				cfg.Items = flagItems
			}
			if flags.Changed("threshold") {
				cfg.Threshold = flagThreshold
			}
			if flags.Changed("max-results") {
				cfg.MaxResults = flagMaxResults
			}
			if flags.Changed("search-cmd") {
				cfg.SearchCmd = flagSearchCmd
			}
			if flags.Changed("plot-cmd") {
				cfg.PlotCmd = flagPlotCmd
			}
			if flags.Changed("concurrency") {
				cfg.Concurrency = flagConcurrency
			}
			if flags.Changed("draw") {
				cfg.Draw = flagDraw
			}
			if flags.Changed("measure") {
				cfg.Measure = flagMeasure
			}

			if err := cfg.Validate(); err != nil {
				return &exitError{code: ExitConfig, err: err}
			}

			return run(cmd.Context(), cfg, stdout, stderr)
		},
	}

	cmd.Flags().StringVar(&flagConfig, "config", "", "path to a YAML run configuration")
	cmd.Flags().StringVar(&flagDataset, "dataset", "", "directory of per-item dataset files")
	cmd.Flags().StringVar(&flagOutputDir, "output-dir", ".", "directory receiving per-item artifacts")
	cmd.Flags().StringSliceVar(&flagItems, "items", nil, "comma-separated item names (at least two)")
	cmd.Flags().Float64Var(&flagThreshold, "threshold", 0.05, "significance threshold passed to every search job")
	cmd.Flags().IntVar(&flagMaxResults, "max-results", 20, "result-count cap passed to every search job")
	cmd.Flags().StringVar(&flagSearchCmd, "search-cmd", "search_sensor", "search job executable")
	cmd.Flags().StringVar(&flagPlotCmd, "plot-cmd", "plot_distributions", "plot job executable")
	cmd.Flags().IntVar(&flagConcurrency, "concurrency", 0, "max jobs in flight per phase (0 = unlimited)")
	cmd.Flags().StringVar(&flagDraw, "draw", "", "write the run plan as a Graphviz DOT file")
	cmd.Flags().BoolVar(&flagMeasure, "measure", false, "record per-job and per-phase wall times")

	return cmd
}

func run(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) error {
	logger := log.New(stderr, "loorun ", log.LstdFlags)

	opts := []loo.DriverOption{
		loo.DriverLogger(logger),
		loo.DriverConcurrency(cfg.Concurrency),
	}
	var msr measure.Measure
	if cfg.Measure || cfg.Draw != "" {
		msr = measure.NewDefaultMeasure()
		opts = append(opts, loo.DriverMeasure(msr))
	}
	if cfg.Draw != "" {
		opts = append(opts, loo.DriverDrawer(drawer.NewDOTDrawer(cfg.Draw)))
	}

	driver := loo.NewDriver(
		cfg.ItemSet(),
		loo.SearchBuilder{
			Exec:       cfg.SearchCmd,
			Dataset:    cfg.Dataset,
			Threshold:  cfg.Threshold,
			MaxResults: cfg.MaxResults,
			OutputDir:  cfg.OutputDir,
		},
		loo.PlotBuilder{
			Exec:      cfg.PlotCmd,
			Dataset:   cfg.Dataset,
			OutputDir: cfg.OutputDir,
		},
		runner.New(stdout, stderr),
		opts...,
	)

	report, err := driver.Run(ctx)
	if err != nil {
		if errors.Is(err, loo.ErrTooFewItems) || errors.Is(err, loo.ErrDuplicateItem) {
			return &exitError{code: ExitConfig, err: err}
		}

		return &exitError{code: ExitFailure, err: err}
	}
	if report.Failed() {
		return &exitError{code: ExitFailure, err: errors.New("at least one job or extraction failed")}
	}

	return nil
}

// Execute runs the root command and maps errors onto process exit codes.
func Execute(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand(stdout, stderr)
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		log.New(stderr, "loorun ", log.LstdFlags).Printf("error: %v", err)

		var ee *exitError
		if errors.As(err, &ee) {
			return ee.code
		}

		return ExitConfig
	}

	return ExitOK
}
