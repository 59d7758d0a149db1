// Package command implements the sortbench command line.
package command

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/sortlab/bench"
	"github.com/katalvlaran/sortlab/chart"
	"github.com/katalvlaran/sortlab/sorting"
	"github.com/katalvlaran/sortlab/verify"
)

const defaultPNG = "throughput.png"

type runParams struct {
	planPath string
	seed     int64
	png      string
	csv      string
	ascii    bool
	noColor  bool
	progress bool
	logLevel levelFlag
	strict   bool
}

// levelFlag adapts zapcore.Level to a pflag.Value.
type levelFlag struct {
	zapcore.Level
}

var _ pflag.Value = (*levelFlag)(nil)

// Type implements pflag.Value.
func (*levelFlag) Type() string { return "level" }

// Execute runs the command line and returns the process exit status.
func Execute(args []string, stdout, stderr io.Writer) int {
	root := RootCommand(stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("sortbench:"), err)
		return 1
	}

	return 0
}

// RootCommand returns the sortbench command; running it without a
// subcommand executes the benchmark.
func RootCommand(stdout, stderr io.Writer) *cobra.Command {
	var params runParams
	root := &cobra.Command{
		Use:   "sortbench",
		Short: "Benchmark insertion, selection, column, bubble and quick sort",
		Long: `sortbench sorts random inputs of growing size with every algorithm of the
plan, checks each result and reports the throughput in items per second as
a PNG chart, an ASCII chart and an optional CSV file.

Any unsorted result aborts the run with exit status 1.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBenchmark(params, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.Flags()
	flags.StringVar(&params.planPath, "plan", "", "YAML plan file replacing the default benchmark")
	flags.Int64Var(&params.seed, "seed", 0, "input generator seed (0 picks one from the clock)")
	flags.StringVar(&params.png, "png", defaultPNG, "PNG chart path (empty disables)")
	flags.StringVar(&params.csv, "csv", "", "CSV export path (empty disables)")
	flags.BoolVar(&params.ascii, "ascii", true, "print the ASCII chart to stdout")
	flags.BoolVar(&params.noColor, "no-color", false, "disable coloured output")
	flags.BoolVar(&params.progress, "progress", true, "draw a progress bar per trial on stderr")
	flags.Var(&params.logLevel, "log-level", "log level: debug, info, warn or error")
	flags.BoolVar(&params.strict, "strict", false, "also check that every output is a permutation of its input")

	root.AddCommand(planCommand(), listCommand())

	return root
}

// planCommand prints the default plan, a starting point for --plan files.
func planCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Print the default benchmark plan as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return bench.DefaultPlan().Encode(cmd.OutOrStdout())
		},
	}
}

// listCommand prints the registered algorithms.
func listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available algorithms",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, a := range sorting.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-8s %s\n", a.Name, a.Input, a.Title)
			}
		},
	}
}

// newLogger builds a console zap logger writing to w.
func newLogger(level zapcore.Level, w io.Writer) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.TimeEncoderOfLayout(time.TimeOnly)
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)

	return zap.New(core)
}

// runBenchmark executes the plan selected by params and renders the report.
// extra options are applied after the ones derived from params.
func runBenchmark(params runParams, stdout, stderr io.Writer, extra ...bench.RunnerOption) error {
	if params.noColor {
		color.NoColor = true
	}
	logger := newLogger(params.logLevel.Level, stderr)
	defer func() { _ = logger.Sync() }()

	var err error
	plan := bench.DefaultPlan()
	if params.planPath != "" {
		if plan, err = bench.LoadPlan(params.planPath); err != nil {
			return err
		}
	}

	seed := params.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("benchmark started",
		zap.Int("trials", len(plan.Trials)),
		zap.Int64("seed", seed),
		zap.Bool("strict", params.strict))

	opts := []bench.RunnerOption{
		bench.WithClock(clock.New()),
		bench.WithLogger(logger),
		bench.WithSeed(seed),
		bench.WithStrict(params.strict),
	}
	if params.progress {
		opts = append(opts, bench.WithProgress(bench.NewConsoleProgress(stderr, clock.New())))
	}
	rep, err := bench.NewRunner(append(opts, extra...)...).Run(plan)
	if err != nil {
		var v *verify.PostconditionViolation
		if errors.As(err, &v) {
			logger.Error("post-condition violated",
				zap.String("algorithm", v.Algorithm),
				zap.String("property", v.Property),
				zap.Int("index", v.Index))
		}
		return err
	}

	return render(rep, params, stdout, logger)
}

// render writes the summary table and every enabled chart output.
func render(rep *bench.Report, params runParams, stdout io.Writer, logger *zap.Logger) error {
	sums, err := rep.Summaries()
	if err != nil {
		return err
	}
	chart.WriteSummary(stdout, sums)

	var result *multierror.Error
	if params.ascii {
		fmt.Fprintln(stdout)
		if err = chart.WriteASCII(stdout, rep); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if params.png != "" {
		if err = chart.SavePNG(rep, params.png); err != nil {
			result = multierror.Append(result, err)
		} else {
			logger.Info("chart written", zap.String("path", params.png))
		}
	}
	if params.csv != "" {
		if err = chart.SaveCSV(rep, params.csv); err != nil {
			result = multierror.Append(result, err)
		} else {
			logger.Info("csv written", zap.String("path", params.csv))
		}
	}

	return result.ErrorOrNil()
}
