package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/lintpreset/internal/cli/output"
)

// ErrPathsIgnored is returned by ignored --fail when a path is ignored.
var ErrPathsIgnored = errors.New("ignored paths found")

// IgnoredOptions holds options for the ignored command.
type IgnoredOptions struct {
	Format string
	Fail   bool // Exit with an error when any path is ignored
}

// IgnoredPath is one row of the ignored report.
type IgnoredPath struct {
	Path    string `json:"path" yaml:"path"`
	Ignored bool   `json:"ignored" yaml:"ignored"`
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
}

// NewIgnoredCommand creates the ignored command.
func NewIgnoredCommand() *cobra.Command {
	opts := &IgnoredOptions{}
	cmd := &cobra.Command{
		Use:   "ignored <path>...",
		Short: "Check paths against the global ignores",
		Long: `Report whether each path is excluded by the preset's global ignore
patterns, and which pattern decided it. A negated pattern that re-includes
a path is reported too.

With --fail the command exits with an error when any path is ignored,
which suits pre-commit hooks.`,
		Example: `  lintpreset ignored node_modules/react/index.js src/App.tsx
  lintpreset ignored .github/workflows/ci.yml --fail`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIgnored(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json, yaml")
	cmd.Flags().BoolVar(&opts.Fail, "fail", false, "Exit with an error when any path is ignored")

	return cmd
}

func runIgnored(cmd *cobra.Command, paths []string, opts *IgnoredOptions) error {
	cmdCtx, err := NewCommandContext(cmd, opts.Format)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	results := make([]IgnoredPath, 0, len(paths))
	ignored := 0
	for _, p := range paths {
		abs := absPath(p)
		res := IgnoredPath{
			Path:    p,
			Ignored: cmdCtx.Preset.IsIgnored(abs),
			Pattern: cmdCtx.Preset.IgnoredBy(abs),
		}
		if res.Ignored {
			ignored++
		}
		results = append(results, res)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		err = r.JSON(results)
	case output.ModeYAML:
		err = r.YAML(results)
	case output.ModeMarkdown:
		rows := make([][]string, 0, len(results))
		for _, res := range results {
			rows = append(rows, []string{res.Path, fmt.Sprintf("%t", res.Ignored), res.Pattern})
		}
		r.Table([]string{"Path", "Ignored", "Pattern"}, rows)
	default:
		styles := r.Styles()
		for _, res := range results {
			status := styles.Success.Render("included")
			if res.Ignored {
				status = styles.Warning.Render("ignored ")
			}
			line := fmt.Sprintf("  %s  %s", status, res.Path)
			if res.Pattern != "" {
				line += "  " + styles.Muted.Render(res.Pattern)
			}
			r.Println(line)
		}
	}
	if err != nil {
		return err
	}

	if opts.Fail && ignored > 0 {
		return fmt.Errorf("%w: %d of %d", ErrPathsIgnored, ignored, len(paths))
	}
	return nil
}
