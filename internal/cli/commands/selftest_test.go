package commands

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/lintpreset/internal/testutil"
	"github.com/leapstack-labs/lintpreset/pkg/harness"
)

const scenarioFile = `
- suite: project
  scenarios:
    - name: components use hooks rules
      path: src/App.tsx
      rules:
        react-hooks/rules-of-hooks: error
    - name: generated code is linted
      path: src/gen/api.ts
      ignored: false
    - name: snippet parses
      path: src/util.ts
      source: "export const x: number = 1"
      pass: true
`

func TestSelfTest_Builtin(t *testing.T) {
	out, _, err := run(t, NewSelfTestCommand(), "--format", "json")
	require.NoError(t, err)

	var report harness.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Zero(t, report.Failed)
	assert.Positive(t, report.Passed)
	assert.Equal(t, len(harness.Builtin()), len(report.Results))
	assert.NotEmpty(t, report.RunID)
}

func TestSelfTest_ScenarioFile(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "scenarios.yaml", scenarioFile)

	t.Run("without syntax engine", func(t *testing.T) {
		out, _, err := run(t, NewSelfTestCommand(), "--scenarios", path)
		require.NoError(t, err)
		assert.Contains(t, out, "## project")
		assert.Contains(t, out, "2 passed, 0 failed, 1 skipped")
	})

	t.Run("with syntax engine", func(t *testing.T) {
		out, _, err := run(t, NewSelfTestCommand(), "--scenarios", path, "--syntax", "-j", "2")
		require.NoError(t, err)
		assert.Contains(t, out, "3 passed, 0 failed, 0 skipped")
	})
}

func TestSelfTest_Failure(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "scenarios.yaml", `
- suite: broken
  scenarios:
    - name: wrong severity
      path: src/App.tsx
      rules:
        react-hooks/exhaustive-deps: error
`)

	out, _, err := run(t, NewSelfTestCommand(), "--scenarios", path, "--format", "text")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSelfTestFailed))
	assert.Contains(t, out, "wrong severity")
	assert.Contains(t, out, "0 passed, 1 failed, 0 skipped")
}

func TestSelfTest_SuiteFilter(t *testing.T) {
	out, _, err := run(t, NewSelfTestCommand(), "--suite", harness.SuiteIgnorePatterns, "--format", "json")
	require.NoError(t, err)

	var report harness.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, []string{harness.SuiteIgnorePatterns}, report.Suites())

	_, _, err = run(t, NewSelfTestCommand(), "--suite", "nope")
	assert.ErrorContains(t, err, "no scenarios")
}

func TestSelfTest_InvalidFlags(t *testing.T) {
	_, _, err := run(t, NewSelfTestCommand(), "--watch")
	assert.ErrorContains(t, err, "--watch needs a scenario file")

	_, _, err = run(t, NewSelfTestCommand(), "-j", "-1")
	assert.ErrorContains(t, err, "concurrency")

	_, _, err = run(t, NewSelfTestCommand(), "--scenarios", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestWatchFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "scenarios.yaml", "[]\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, path, 10*time.Millisecond, testutil.NewTestLogger(t), func() {
			calls.Add(1)
		})
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0600))
	require.NoError(t, os.WriteFile(path, []byte("[]\n# edited\n"), 0600))

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}
