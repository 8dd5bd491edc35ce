package harness_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/lintpreset/internal/testutil"
	"github.com/leapstack-labs/lintpreset/pkg/core"
	"github.com/leapstack-labs/lintpreset/pkg/flatconfig"
	"github.com/leapstack-labs/lintpreset/pkg/harness"
	"github.com/leapstack-labs/lintpreset/pkg/preset"
)

// fakeEngine reports a syntax error for any snippet containing "const = ".
var fakeEngine = harness.EngineFunc(func(_ context.Context, _ string, src []byte, _ flatconfig.EffectiveConfig) ([]harness.Finding, error) {
	if bytes.Contains(src, []byte("const = ")) {
		return []harness.Finding{{Rule: "syntax/parse", Severity: core.SeverityError, Message: "Unexpected \"=\"", Line: 1, Column: 6}}, nil
	}
	return nil, nil
})

func ptr[T any](v T) *T { return &v }

func TestBuiltinSuites_PassAgainstDefault(t *testing.T) {
	runner := &harness.Runner{
		Config:      preset.Default,
		Engine:      fakeEngine,
		Logger:      testutil.NewTestLogger(t),
		Concurrency: 4,
	}

	report, err := runner.Run(context.Background(), harness.Builtin())
	require.NoError(t, err)

	for _, res := range report.Results {
		assert.Equal(t, harness.StatusPass, res.Status, "%s/%s: %v", res.Scenario.Suite, res.Scenario.Name, res.Failures)
	}
	assert.True(t, report.OK())
	assert.Equal(t, len(harness.Builtin()), report.Passed)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, []string{
		harness.SuiteConfiguration,
		harness.SuiteReact,
		harness.SuiteTypeScript,
		harness.SuitePrettier,
		harness.SuiteAccessibility,
		harness.SuiteIgnorePatterns,
	}, report.Suites())
}

func TestRunner_WithoutEngine(t *testing.T) {
	runner := &harness.Runner{Config: preset.Default}

	report, err := runner.Run(context.Background(), []harness.Scenario{
		{Name: "engine only", Path: "a.js", Source: "const = ;", ExpectPass: ptr(false)},
		{Name: "mixed", Path: "a.js", Source: "let a = 1", ExpectPass: ptr(true), ExpectRules: map[string]string{"no-var": "error"}},
	})
	require.NoError(t, err)

	assert.Equal(t, harness.StatusSkip, report.Results[0].Status)
	assert.Equal(t, harness.StatusPass, report.Results[1].Status)
	assert.Contains(t, report.Results[1].Note, "engine check skipped")
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 1, report.Passed)
}

func TestRunner_ReportsFailures(t *testing.T) {
	runner := &harness.Runner{Config: preset.Default, Engine: fakeEngine}

	scenarios := []harness.Scenario{
		{Name: "wrong severity", Suite: "x", Path: "a.tsx", ExpectRules: map[string]string{"react/prop-types": "error"}},
		{Name: "undeclared", Suite: "x", Path: "a.js", ExpectRules: map[string]string{"react/jsx-key": "error"}},
		{Name: "undeclared off is fine", Suite: "x", Path: "a.js", ExpectRules: map[string]string{"react/jsx-key": "off"}},
		{Name: "not absent", Suite: "x", Path: "a.ts", ExpectAbsent: []string{"@typescript-eslint/no-explicit-any"}},
		{Name: "ignore mismatch", Suite: "x", Path: "dist/a.js", ExpectIgnored: ptr(false)},
		{Name: "unexpected pass", Suite: "x", Path: "a.js", Source: "const a = 1", ExpectPass: ptr(false)},
		{Name: "unexpected failure", Suite: "x", Path: "a.js", Source: "const = 1", ExpectPass: ptr(true)},
		{Name: "ignored path cannot fail", Suite: "x", Path: "dist/a.js", Source: "const = 1", ExpectPass: ptr(false)},
		{Name: "", Suite: "x", Path: "a.js", ExpectIgnored: ptr(false)},
	}

	report, err := runner.Run(context.Background(), scenarios)
	require.NoError(t, err)

	require.Len(t, report.Results, len(scenarios))
	want := []harness.Status{
		harness.StatusFail, harness.StatusFail, harness.StatusPass, harness.StatusFail,
		harness.StatusFail, harness.StatusFail, harness.StatusFail, harness.StatusFail,
		harness.StatusFail,
	}
	for i, res := range report.Results {
		assert.Equal(t, scenarios[i].Name, res.Scenario.Name, "results keep input order")
		assert.Equal(t, want[i], res.Status, "scenario %d (%s): %v", i, res.Scenario.Name, res.Failures)
	}
	assert.Equal(t, []string{"rule react/prop-types: want error, got off"}, report.Results[0].Failures)
	assert.Equal(t, []string{"rule react/jsx-key: want error, not declared"}, report.Results[1].Failures)
	assert.Len(t, report.Results[6].Findings, 1)
	assert.False(t, report.OK())
	assert.Equal(t, 8, report.Failed)
}

func TestRunner_EngineError(t *testing.T) {
	broken := harness.EngineFunc(func(context.Context, string, []byte, flatconfig.EffectiveConfig) ([]harness.Finding, error) {
		return nil, errors.New("boom")
	})
	runner := &harness.Runner{Config: preset.Default, Engine: broken}

	report, err := runner.Run(context.Background(), []harness.Scenario{
		{Name: "engine fails", Path: "a.js", Source: "x", ExpectPass: ptr(true)},
	})
	require.NoError(t, err)
	assert.Equal(t, harness.StatusFail, report.Results[0].Status)
	assert.Equal(t, []string{"engine: boom"}, report.Results[0].Failures)
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := &harness.Runner{Config: preset.Default, Concurrency: 1}
	_, err := runner.Run(ctx, harness.Builtin())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseScenarios(t *testing.T) {
	t.Run("single suite", func(t *testing.T) {
		scenarios, err := harness.ParseScenarios([]byte(`
suite: custom
scenarios:
  - name: generated code is ignored
    path: dist/generated.js
    ignored: true
  - name: components
    path: src/App.tsx
    rules:
      react/self-closing-comp: error
      react/prop-types: off
    absent:
      - react/jsx-indent-props-missing
  - name: snippet
    suite: snippets
    path: src/a.js
    source: |
      const a = 1
    pass: true
`))
		require.NoError(t, err)
		require.Len(t, scenarios, 3)

		assert.Equal(t, "custom", scenarios[0].Suite)
		require.NotNil(t, scenarios[0].ExpectIgnored)
		assert.True(t, *scenarios[0].ExpectIgnored)
		assert.Equal(t, map[string]string{"react/self-closing-comp": "error", "react/prop-types": "off"}, scenarios[1].ExpectRules)
		assert.Equal(t, "snippets", scenarios[2].Suite)
		assert.Equal(t, "const a = 1\n", scenarios[2].Source)
		require.NotNil(t, scenarios[2].ExpectPass)
		assert.True(t, *scenarios[2].ExpectPass)
	})

	t.Run("list of suites", func(t *testing.T) {
		scenarios, err := harness.ParseScenarios([]byte(`
- suite: one
  scenarios:
    - {name: a, path: a.js, ignored: false}
- suite: two
  scenarios:
    - {name: b, path: b.js, ignored: false}
`))
		require.NoError(t, err)
		require.Len(t, scenarios, 2)
		assert.Equal(t, "one", scenarios[0].Suite)
		assert.Equal(t, "two", scenarios[1].Suite)
	})

	t.Run("empty document", func(t *testing.T) {
		scenarios, err := harness.ParseScenarios(nil)
		require.NoError(t, err)
		assert.Empty(t, scenarios)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := harness.ParseScenarios([]byte(`
suite: bad
scenarios:
  - name: no path
    ignored: true
  - name: no expectations
    path: a.js
  - name: bad severity
    path: a.js
    rules: {no-var: fatal}
`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"no path" has no path`)
		assert.Contains(t, err.Error(), `"no expectations" has no expectations`)
		assert.Contains(t, err.Error(), `invalid severity "fatal"`)
	})

	t.Run("scalar document", func(t *testing.T) {
		_, err := harness.ParseScenarios([]byte("just a string"))
		assert.Error(t, err)
	})
}

func TestLoadScenarios(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte("suite: file\nscenarios:\n  - {name: a, path: a.js, ignored: false}\n"), 0o644))

	scenarios, err := harness.LoadScenarios(path)
	require.NoError(t, err)
	require.Len(t, scenarios, 1)
	assert.Equal(t, "file", scenarios[0].Suite)

	_, err = harness.LoadScenarios(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "failed to read scenario file"))
}
