package commands

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/lintpreset/internal/cli/output"
	"github.com/leapstack-labs/lintpreset/internal/syntaxcheck"
	"github.com/leapstack-labs/lintpreset/pkg/harness"
)

// ErrSelfTestFailed is returned when a scenario fails.
var ErrSelfTestFailed = errors.New("self-test failed")

// SelfTestOptions holds options for the selftest command.
type SelfTestOptions struct {
	Scenarios   string   // Scenario file; empty runs the built-in suites
	Suites      []string // Only run these suites
	Syntax      bool     // Parse snippets with the syntax engine
	Warnings    bool     // Report parser warnings as findings
	Watch       bool     // Re-run when the scenario file changes
	Concurrency int      // Parallel scenarios; 0 means GOMAXPROCS
	Format      string   // Output format
}

// NewSelfTestCommand creates the selftest command.
func NewSelfTestCommand() *cobra.Command {
	opts := &SelfTestOptions{}
	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Check the preset against its scenario suites",
		Long: `Run scenario suites against the configured preset. Each scenario names
a file path and states what must hold for it: whether the path is
ignored, which rules apply at which severity, which rules are absent,
and whether a source snippet parses cleanly.

Without --scenarios the built-in suites run. Snippet scenarios need
--syntax and are skipped otherwise.`,
		Example: `  # Built-in suites
  lintpreset selftest

  # Project scenarios, parsing snippets, re-running on change
  lintpreset selftest --scenarios scenarios.yaml --syntax --watch

  # Only the ignore suite, as JSON
  lintpreset selftest --suite ignore-patterns -f json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := getConfig()
			if !cmd.Flags().Changed("scenarios") && cfg.Scenarios != "" {
				opts.Scenarios = cfg.Scenarios
			}
			if !cmd.Flags().Changed("concurrency") && cfg.Concurrency > 0 {
				opts.Concurrency = cfg.Concurrency
			}
			return runSelfTest(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Scenarios, "scenarios", "", "Scenario file (default: built-in suites)")
	cmd.Flags().StringSliceVar(&opts.Suites, "suite", nil, "Only run the named suites (repeatable)")
	cmd.Flags().BoolVar(&opts.Syntax, "syntax", false, "Parse source snippets")
	cmd.Flags().BoolVar(&opts.Warnings, "warnings", false, "Report parser warnings")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-run when the scenario file changes")
	cmd.Flags().IntVarP(&opts.Concurrency, "concurrency", "j", 0, "Parallel scenarios (default: number of CPUs)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json, yaml")

	return cmd
}

func runSelfTest(cmd *cobra.Command, opts *SelfTestOptions) error {
	if opts.Watch && opts.Scenarios == "" {
		return errors.New("--watch needs a scenario file (--scenarios)")
	}
	if opts.Concurrency < 0 {
		return fmt.Errorf("concurrency must not be negative, got %d", opts.Concurrency)
	}

	cmdCtx, err := NewCommandContext(cmd, opts.Format)
	if err != nil {
		return err
	}

	runner := &harness.Runner{
		Config:      cmdCtx.Preset,
		Logger:      cmdCtx.Logger,
		Concurrency: opts.Concurrency,
	}
	if opts.Syntax {
		runner.Engine = syntaxcheck.New(
			syntaxcheck.WithLogger(cmdCtx.Logger),
			syntaxcheck.WithWarnings(opts.Warnings),
		)
	}

	if !opts.Watch {
		return runSuitesOnce(cmd.Context(), cmdCtx, runner, opts)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	run := func() {
		if err := runSuitesOnce(ctx, cmdCtx, runner, opts); err != nil && !errors.Is(err, ErrSelfTestFailed) {
			cmdCtx.Renderer.Error(err.Error())
		}
		cmdCtx.Renderer.Muted(fmt.Sprintf("Watching %s for changes (Ctrl+C to stop)", opts.Scenarios))
	}
	run()
	return watchFile(ctx, opts.Scenarios, 100*time.Millisecond, cmdCtx.Logger, run)
}

func runSuitesOnce(ctx context.Context, cmdCtx *CommandContext, runner *harness.Runner, opts *SelfTestOptions) error {
	scenarios, err := loadSelfTestScenarios(opts)
	if err != nil {
		return err
	}

	report, err := runner.Run(ctx, scenarios)
	if err != nil {
		return err
	}

	if err := renderReport(cmdCtx.Renderer, report); err != nil {
		return err
	}
	if !report.OK() {
		return fmt.Errorf("%w: %d of %d scenarios failed", ErrSelfTestFailed, report.Failed, len(report.Results))
	}
	return nil
}

func loadSelfTestScenarios(opts *SelfTestOptions) ([]harness.Scenario, error) {
	var scenarios []harness.Scenario
	if opts.Scenarios == "" {
		scenarios = harness.Builtin()
	} else {
		var err error
		scenarios, err = harness.LoadScenarios(opts.Scenarios)
		if err != nil {
			return nil, err
		}
	}
	if len(opts.Suites) == 0 {
		return scenarios, nil
	}

	want := make(map[string]bool, len(opts.Suites))
	for _, s := range opts.Suites {
		want[s] = true
	}
	var filtered []harness.Scenario
	for _, sc := range scenarios {
		if want[sc.Suite] {
			filtered = append(filtered, sc)
		}
	}
	if len(filtered) == 0 {
		return nil, fmt.Errorf("no scenarios in suites %v", opts.Suites)
	}
	return filtered, nil
}

func renderReport(r *output.Renderer, report *harness.Report) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(report)
	case output.ModeYAML:
		return r.YAML(report)
	}

	markdown := r.EffectiveMode() == output.ModeMarkdown
	r.Header(1, "Self-test")
	for _, suite := range report.Suites() {
		r.Header(2, suite)
		for _, res := range report.Results {
			if res.Scenario.Suite != suite {
				continue
			}
			if markdown {
				r.Printf("- `%s` %s", res.Status, res.Scenario.Name)
				if res.Note != "" {
					r.Printf(" (%s)", res.Note)
				}
				r.Println("")
			} else {
				r.StatusLine(res.Scenario.Name, string(res.Status), res.Note)
			}
			for _, failure := range res.Failures {
				r.Println("      " + r.Styles().Error.Render(failure))
			}
		}
		r.Println("")
	}

	summary := fmt.Sprintf("%d passed, %d failed, %d skipped in %s",
		report.Passed, report.Failed, report.Skipped, report.Duration.Round(time.Millisecond))
	switch {
	case markdown:
		r.Println(output.FormatKeyValue("Result", summary))
	case report.OK():
		r.Success(summary)
	default:
		r.Println(r.Styles().Error.Render("✗ " + summary))
	}
	return nil
}
