package harness

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/lintpreset/pkg/core"
	"github.com/leapstack-labs/lintpreset/pkg/flatconfig"
)

// Status is the outcome of one scenario.
type Status string

// Scenario outcomes.
const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusSkip Status = "skip"
)

// Result is the outcome of one scenario.
type Result struct {
	Scenario Scenario      `json:"scenario"`
	Status   Status        `json:"status"`
	Failures []string      `json:"failures,omitempty"`
	Findings []Finding     `json:"findings,omitempty"`
	Note     string        `json:"note,omitempty"`
	Duration time.Duration `json:"duration"`
}

// Report collects the results of one run, in scenario order.
type Report struct {
	RunID    string        `json:"run_id"`
	Started  time.Time     `json:"started"`
	Duration time.Duration `json:"duration"`
	Results  []Result      `json:"results"`
	Passed   int           `json:"passed"`
	Failed   int           `json:"failed"`
	Skipped  int           `json:"skipped"`
}

// OK reports whether no scenario failed.
func (r *Report) OK() bool {
	return r.Failed == 0
}

// Suites returns the suite names in first-seen order.
func (r *Report) Suites() []string {
	seen := make(map[string]bool)
	var out []string
	for _, res := range r.Results {
		if !seen[res.Scenario.Suite] {
			seen[res.Scenario.Suite] = true
			out = append(out, res.Scenario.Suite)
		}
	}
	return out
}

// Runner executes scenarios against a configuration.
type Runner struct {
	Config flatconfig.Config

	// Engine lints snippets. Scenarios that only check snippets are skipped
	// when it is nil.
	Engine Engine

	Logger *slog.Logger

	// Concurrency bounds parallel scenarios. Zero means GOMAXPROCS.
	Concurrency int
}

// Run executes scenarios and returns their report. Scenario failures are
// recorded in the report; the error is only set when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) (*Report, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	limit := r.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	report := &Report{
		RunID:   uuid.New().String(),
		Started: time.Now(),
		Results: make([]Result, len(scenarios)),
	}
	logger = logger.With("run_id", report.RunID)
	logger.Debug("running scenarios", "count", len(scenarios), "concurrency", limit)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, sc := range scenarios {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := r.runOne(gctx, sc)
			report.Results[i] = res
			logger.Debug("scenario finished",
				"suite", sc.Suite,
				"scenario", sc.Name,
				"status", res.Status,
				"duration", res.Duration,
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scenario run interrupted: %w", err)
	}

	for _, res := range report.Results {
		switch res.Status {
		case StatusPass:
			report.Passed++
		case StatusFail:
			report.Failed++
		case StatusSkip:
			report.Skipped++
		}
	}
	report.Duration = time.Since(report.Started)
	logger.Info("scenarios complete",
		"passed", report.Passed,
		"failed", report.Failed,
		"skipped", report.Skipped,
		"duration", report.Duration,
	)
	return report, nil
}

func (r *Runner) runOne(ctx context.Context, sc Scenario) Result {
	start := time.Now()
	res := Result{Scenario: sc}

	if err := sc.Validate(); err != nil {
		res.Status = StatusFail
		res.Failures = append(res.Failures, err.Error())
		res.Duration = time.Since(start)
		return res
	}
	if sc.NeedsEngine() && r.Engine == nil && !sc.hasConfigChecks() {
		res.Status = StatusSkip
		res.Note = "no engine configured"
		res.Duration = time.Since(start)
		return res
	}

	res.Failures = checkConfig(r.Config, sc)

	switch {
	case !sc.NeedsEngine():
	case r.Engine == nil:
		res.Note = "engine check skipped: no engine configured"
	default:
		findings, failure := r.checkEngine(ctx, sc)
		res.Findings = findings
		if failure != "" {
			res.Failures = append(res.Failures, failure)
		}
	}

	res.Status = StatusPass
	if len(res.Failures) > 0 {
		res.Status = StatusFail
	}
	res.Duration = time.Since(start)
	return res
}

// checkConfig verifies the configuration-level expectations of sc.
func checkConfig(cfg flatconfig.Config, sc Scenario) []string {
	var failures []string

	if sc.ExpectIgnored != nil {
		if got := cfg.IsIgnored(sc.Path); got != *sc.ExpectIgnored {
			failures = append(failures, fmt.Sprintf("ignored: want %t, got %t", *sc.ExpectIgnored, got))
		}
	}
	if len(sc.ExpectRules) == 0 && len(sc.ExpectAbsent) == 0 {
		return failures
	}

	eff := cfg.Resolve(sc.Path)
	for _, name := range sortedRuleNames(sc.ExpectRules) {
		want, _ := core.ParseSeverity(sc.ExpectRules[name])
		rule, ok := eff.Rule(name)
		switch {
		case !ok && want != core.SeverityOff:
			failures = append(failures, fmt.Sprintf("rule %s: want %s, not declared", name, want))
		case ok && rule.Severity != want:
			failures = append(failures, fmt.Sprintf("rule %s: want %s, got %s", name, want, rule.Severity))
		}
	}
	for _, name := range sc.ExpectAbsent {
		if rule, ok := eff.Rule(name); ok {
			failures = append(failures, fmt.Sprintf("rule %s: want absent, got %s", name, rule.Severity))
		}
	}
	return failures
}

// checkEngine lints the snippet and compares the outcome with ExpectPass.
func (r *Runner) checkEngine(ctx context.Context, sc Scenario) ([]Finding, string) {
	want := *sc.ExpectPass

	eff := r.Config.Resolve(sc.Path)
	if eff.Excluded {
		if want {
			return nil, ""
		}
		return nil, "want findings, path is ignored"
	}

	findings, err := r.Engine.Lint(ctx, sc.Path, []byte(sc.Source), eff)
	if err != nil {
		return nil, fmt.Sprintf("engine: %v", err)
	}

	got := !hasErrors(findings)
	switch {
	case want && !got:
		return findings, fmt.Sprintf("want pass, got %d finding(s)", len(findings))
	case !want && got:
		return findings, "want failure, got no errors"
	}
	return findings, ""
}
