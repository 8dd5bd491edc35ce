package commands

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/lintpreset/internal/cli/output"
	"github.com/leapstack-labs/lintpreset/pkg/core"
	"github.com/leapstack-labs/lintpreset/pkg/flatconfig"
	"github.com/leapstack-labs/lintpreset/pkg/lint/plugins"
	"github.com/leapstack-labs/lintpreset/pkg/preset"
)

// PrintConfigOptions holds options for the print-config command.
type PrintConfigOptions struct {
	Format string   // Output format
	Rules  []string // Only show these rules
}

// NewPrintConfigCommand creates the print-config command.
func NewPrintConfigCommand() *cobra.Command {
	opts := &PrintConfigOptions{}
	cmd := &cobra.Command{
		Use:   "print-config <path>",
		Short: "Show the effective configuration for a file",
		Long: `Resolve the preset for one file and print the result: the matching
fragments in order, the merged settings and the rules with their
severities and options.

Paths are resolved against the configured root. A globally ignored
path prints the ignore pattern that excluded it.`,
		Example: `  # Effective configuration of a component
  lintpreset print-config src/App.tsx

  # Only the formatter rule, as JSON
  lintpreset print-config src/App.tsx --rule prettier/prettier -f json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrintConfig(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json, yaml")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Only show the named rules (repeatable)")
	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return output.Modes(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runPrintConfig(cmd *cobra.Command, path string, opts *PrintConfigOptions) error {
	cmdCtx, err := NewCommandContext(cmd, opts.Format)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	eff := cmdCtx.Preset.Resolve(absPath(path))
	if len(opts.Rules) > 0 {
		eff.Rules, err = filterRules(eff.Rules, opts.Rules)
		if err != nil {
			return err
		}
	}
	cmdCtx.Logger.Debug("resolved configuration",
		"path", eff.Path,
		"excluded", eff.Excluded,
		"fragments", len(eff.Fragments),
		"rules", len(eff.Rules),
	)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(eff)
	case output.ModeYAML:
		return r.YAML(eff)
	default:
		printEffective(r, cmdCtx.Preset, path, eff)
		return nil
	}
}

// filterRules keeps the named rules in resolution order. Naming a rule the
// path does not configure is an error.
func filterRules(rules []core.Rule, names []string) ([]core.Rule, error) {
	var out []core.Rule
	for _, rule := range rules {
		if slices.Contains(names, rule.Name) {
			out = append(out, rule)
		}
	}
	for _, name := range names {
		if !slices.ContainsFunc(out, func(r core.Rule) bool { return r.Name == name }) {
			return nil, fmt.Errorf("rule %q is not configured for this path", name)
		}
	}
	return out, nil
}

func printEffective(r *output.Renderer, cfg flatconfig.Config, path string, eff flatconfig.EffectiveConfig) {
	styles := r.Styles()
	markdown := r.EffectiveMode() == output.ModeMarkdown

	r.Header(1, "Effective configuration: "+path)

	if eff.Excluded {
		msg := fmt.Sprintf("%s is ignored by %q", path, cfg.IgnoredBy(absPath(path)))
		if markdown {
			r.Println(output.FormatKeyValue("Ignored", msg))
		} else {
			r.Println(styles.Warning.Render(msg))
		}
		return
	}
	if eff.IsEmpty() {
		r.Println(styles.Muted.Render("No fragment matches this path."))
		return
	}

	fragments := strings.Join(eff.Fragments, " → ")
	if markdown {
		r.Println(output.FormatKeyValue("Path", eff.Path))
		r.Println(output.FormatKeyValue("Fragments", fragments))
		r.Println(output.FormatKeyValue("Plugins", strings.Join(eff.PluginNames(), ", ")))
	} else {
		r.Printf("  %s: %s\n", styles.Bold.Render("Path"), eff.Path)
		r.Printf("  %s: %s\n", styles.Bold.Render("Fragments"), fragments)
		r.Printf("  %s: %s\n", styles.Bold.Render("Plugins"), strings.Join(eff.PluginNames(), ", "))
	}
	r.Println("")

	if keys := eff.SettingKeys(); len(keys) > 0 {
		r.Header(2, "Settings")
		rows := make([][]string, 0, len(keys))
		for _, key := range keys {
			rows = append(rows, []string{key, output.FormatValue(eff.Settings[key])})
		}
		r.Table([]string{"Key", "Value"}, rows)
		r.Println("")
	}

	if len(eff.Rules) > 0 {
		r.Header(2, fmt.Sprintf("Rules (%d enabled of %d)", len(eff.EnabledRules()), len(eff.Rules)))
		rows := make([][]string, 0, len(eff.Rules))
		for _, rule := range eff.Rules {
			rows = append(rows, []string{rule.Name, rule.Severity.String(), output.FormatValue(rule.Options)})
		}
		r.Table([]string{"Rule", "Severity", "Options"}, rows)
	}

	if rule, ok := eff.Rule(plugins.PrettierRule); ok && rule.Severity.Enabled() {
		r.Println("")
		r.Header(2, "Formatter")
		r.Table([]string{"Option", "Value"}, formatterRows(preset.FormatOptionsFrom(rule.Options)))
	}
}

func formatterRows(o preset.FormatOptions) [][]string {
	quotes := "double"
	if o.SingleQuote {
		quotes = "single"
	}
	semicolons := "never"
	if o.Semicolons {
		semicolons = "always"
	}
	return [][]string{
		{"Print width", strconv.Itoa(o.PrintWidth)},
		{"Tab width", strconv.Itoa(o.TabWidth)},
		{"Quotes", quotes},
		{"Trailing commas", string(o.TrailingComma)},
		{"Arrow parens", string(o.ArrowParens)},
		{"Semicolons", semicolons},
		{"Line ending", string(o.LineEnding)},
	}
}
