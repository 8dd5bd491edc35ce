// Package syntaxcheck provides a harness engine that parses snippets with
// esbuild and reports syntax errors as findings.
package syntaxcheck

import (
	"context"
	"log/slog"
	"path"
	"strings"

	"github.com/evanw/esbuild/pkg/api"

	"github.com/leapstack-labs/lintpreset/pkg/core"
	"github.com/leapstack-labs/lintpreset/pkg/flatconfig"
	"github.com/leapstack-labs/lintpreset/pkg/harness"
	"github.com/leapstack-labs/lintpreset/pkg/lint"
)

// Rule names used for findings.
const (
	RuleParse   = "syntax/parse"
	RuleWarning = "syntax/warning"
)

// Checker is a harness.Engine backed by the esbuild parser.
type Checker struct {
	logger   *slog.Logger
	warnings bool
}

// Option configures a Checker.
type Option func(*Checker)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Checker) { c.logger = l }
}

// WithWarnings reports parser warnings as warn-level findings.
func WithWarnings(on bool) Option {
	return func(c *Checker) { c.warnings = on }
}

// New creates a Checker.
func New(opts ...Option) *Checker {
	c := &Checker{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ harness.Engine = (*Checker)(nil)

// Lint parses src as the language its path implies. Files of unknown type
// and excluded paths produce no findings.
func (c *Checker) Lint(ctx context.Context, file string, src []byte, eff flatconfig.EffectiveConfig) ([]harness.Finding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if eff.Excluded {
		return nil, nil
	}

	loader, ok := loaderFor(file, jsxEnabled(eff))
	if !ok {
		c.logger.Debug("no parser for file type", "path", file)
		return nil, nil
	}

	result := api.Transform(string(src), api.TransformOptions{
		Loader:     loader,
		Sourcefile: file,
		JSX:        api.JSXPreserve,
		Target:     api.ESNext,
		LogLevel:   api.LogLevelSilent,
	})

	findings := make([]harness.Finding, 0, len(result.Errors))
	for _, msg := range result.Errors {
		findings = append(findings, toFinding(RuleParse, core.SeverityError, msg))
	}
	if c.warnings {
		for _, msg := range result.Warnings {
			findings = append(findings, toFinding(RuleWarning, core.SeverityWarn, msg))
		}
	}
	c.logger.Debug("parsed snippet", "path", file, "errors", len(result.Errors), "warnings", len(result.Warnings))
	return findings, nil
}

func toFinding(rule string, sev core.Severity, msg api.Message) harness.Finding {
	f := harness.Finding{Rule: rule, Severity: sev, Message: msg.Text}
	if msg.Location != nil {
		f.Line = msg.Location.Line
		f.Column = msg.Location.Column + 1
	}
	return f
}

// jsxEnabled reads parserOptions.ecmaFeatures.jsx from the effective settings.
func jsxEnabled(eff flatconfig.EffectiveConfig) bool {
	parserOptions := lint.OptionsMap(eff.Settings["parserOptions"])
	features := lint.OptionsMap(parserOptions["ecmaFeatures"])
	return lint.GetBoolOption(features, "jsx", false)
}

func loaderFor(file string, jsx bool) (api.Loader, bool) {
	switch strings.ToLower(path.Ext(file)) {
	case ".js", ".mjs", ".cjs":
		if jsx {
			return api.LoaderJSX, true
		}
		return api.LoaderJS, true
	case ".jsx":
		return api.LoaderJSX, true
	case ".ts", ".mts", ".cts":
		return api.LoaderTS, true
	case ".tsx":
		return api.LoaderTSX, true
	case ".json":
		return api.LoaderJSON, true
	case ".css":
		return api.LoaderCSS, true
	default:
		return api.LoaderNone, false
	}
}
