// Package commands_test provides tests for CLI command creation.
package commands

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

// run executes cmd with args and returns stdout and stderr.
func run(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestNewPrintConfigCommand(t *testing.T) {
	cmd := NewPrintConfigCommand()

	assert.Equal(t, "print-config <path>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	for _, flag := range []string{"format", "rule"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewIgnoredCommand(t *testing.T) {
	cmd := NewIgnoredCommand()

	assert.Equal(t, "ignored <path>...", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	for _, flag := range []string{"format", "fail"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewSelfTestCommand(t *testing.T) {
	cmd := NewSelfTestCommand()

	assert.Equal(t, "selftest", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	for _, flag := range []string{"scenarios", "suite", "syntax", "warnings", "watch", "concurrency", "format"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewCommandContext_BadFormat(t *testing.T) {
	_, _, err := run(t, NewPrintConfigCommand(), "src/App.tsx", "--format", "html")
	assert.ErrorContains(t, err, "unknown output format")
}
