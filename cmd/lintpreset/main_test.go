// Package main provides tests for the lintpreset CLI.
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/lintpreset/internal/cli"
	"github.com/leapstack-labs/lintpreset/internal/cli/config"
)

// execute runs the root command inside an empty project directory.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.ResetConfig()
	t.Chdir(t.TempDir())

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Errorf("version command error = %v", err)
	}
	if !strings.Contains(out, "lintpreset v") {
		t.Errorf("version output should contain 'lintpreset v', got: %s", out)
	}
}

func TestHelpCommand(t *testing.T) {
	out, err := execute(t, "--help")
	if err != nil {
		t.Errorf("help command error = %v", err)
	}

	for _, expected := range []string{"print-config", "ignored", "rules", "selftest", "version", "completion"} {
		if !strings.Contains(out, expected) {
			t.Errorf("help output should contain '%s', got: %s", expected, out)
		}
	}
}

func TestPrintConfigJSON(t *testing.T) {
	out, err := execute(t, "print-config", "src/App.tsx", "-o", "json")
	if err != nil {
		t.Fatalf("print-config error = %v", err)
	}

	var eff struct {
		Path      string   `json:"path"`
		Excluded  bool     `json:"excluded"`
		Fragments []string `json:"fragments"`
		Rules     []struct {
			Name     string `json:"name"`
			Severity string `json:"severity"`
		} `json:"rules"`
	}
	if err := json.Unmarshal([]byte(out), &eff); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if eff.Path != "src/App.tsx" || eff.Excluded {
		t.Errorf("unexpected path/excluded: %q %v", eff.Path, eff.Excluded)
	}
	if eff.Fragments[len(eff.Fragments)-1] != "prettier" {
		t.Errorf("prettier should be the last matching fragment, got %v", eff.Fragments)
	}
	found := false
	for _, r := range eff.Rules {
		if r.Name == "prettier/prettier" && r.Severity == "error" {
			found = true
		}
	}
	if !found {
		t.Errorf("prettier/prettier should be an error, got %+v", eff.Rules)
	}
}

func TestIgnoredFail(t *testing.T) {
	out, err := execute(t, "ignored", "node_modules/x/y.js", ".github/workflows/ci.yml", "--fail", "-o", "markdown")
	if err == nil {
		t.Fatal("expected --fail to report the ignored path")
	}
	if !strings.Contains(out, "**/node_modules/**") {
		t.Errorf("output should name the deciding pattern, got: %s", out)
	}
	if !strings.Contains(out, "!.github") {
		t.Errorf("output should show the re-including pattern, got: %s", out)
	}
}

func TestSelfTestBuiltin(t *testing.T) {
	out, err := execute(t, "selftest", "-o", "markdown")
	if err != nil {
		t.Fatalf("selftest error = %v\n%s", err, out)
	}
	if !strings.Contains(out, "0 failed") {
		t.Errorf("built-in suites should pass, got: %s", out)
	}
}

func TestConfigFileFormatOptions(t *testing.T) {
	config.ResetConfig()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "lintpreset.yaml"), []byte("format:\n  printWidth: 100\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"print-config", "src/index.ts", "--rule", "prettier/prettier", "-o", "json"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("print-config error = %v", err)
	}
	if !strings.Contains(buf.String(), `"printWidth": 100`) {
		t.Errorf("configured print width should reach the formatter rule, got: %s", buf.String())
	}
}
