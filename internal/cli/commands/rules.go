package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/lintpreset/internal/cli/output"
	"github.com/leapstack-labs/lintpreset/pkg/core"
	"github.com/leapstack-labs/lintpreset/pkg/lint"
	_ "github.com/leapstack-labs/lintpreset/pkg/lint/plugins" // register rule sets
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Plugin  string // Filter by plugin binding name
	Group   string // Filter by group
	Verbose bool   // Show descriptions
	Format  string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-name]",
		Short: "List the rules of the bundled plugins",
		Long: `List every rule the preset's plugins ship, grouped by plugin and
category, with the plugin's recommended severity.

Stylistic rules are marked: the formatter bridge turns them off.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON/YAML: Machine-readable format`,
		Example: `  # List all rules
  lintpreset rules

  # Show details for a specific rule
  lintpreset rules react-hooks/exhaustive-deps

  # List the accessibility plugin's rules
  lintpreset rules --plugin jsx-a11y

  # Output as JSON
  lintpreset rules --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Plugin, "plugin", "p", "", "Filter by plugin")
	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "V", false, "Show rule descriptions")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json, yaml")
	_ = cmd.RegisterFlagCompletionFunc("plugin", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, p := range lint.Providers() {
			names = append(names, p.Name())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	cmdCtx, err := NewCommandContextWithoutPreset(cmd, opts.Format)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	if opts.Plugin != "" {
		if _, ok := lint.GetProvider(opts.Plugin); !ok {
			return fmt.Errorf("plugin %q not found", opts.Plugin)
		}
	}
	rules := filterRulesByOptions(lint.AllRules(), opts)

	// Sort by plugin, then group, then name
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].Plugin != rules[j].Plugin {
			return rules[i].Plugin < rules[j].Plugin
		}
		if rules[i].Group != rules[j].Group {
			return rules[i].Group < rules[j].Group
		}
		return rules[i].Name < rules[j].Name
	})

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(newRulesOutput(rules))
	case output.ModeYAML:
		return r.YAML(newRulesOutput(rules))
	case output.ModeMarkdown:
		listRulesMarkdown(r, rules, opts.Verbose)
	default:
		listRulesText(r, rules, opts.Verbose)
	}
	return nil
}

func filterRulesByOptions(rules []lint.RuleInfo, opts *RulesOptions) []lint.RuleInfo {
	if opts.Plugin == "" && opts.Group == "" {
		return rules
	}

	var filtered []lint.RuleInfo
	for _, rule := range rules {
		if opts.Plugin != "" && rule.Plugin != opts.Plugin {
			continue
		}
		if opts.Group != "" && rule.Group != opts.Group {
			continue
		}
		filtered = append(filtered, rule)
	}
	return filtered
}

func showRule(cmd *cobra.Command, name string, opts *RulesOptions) error {
	cmdCtx, err := NewCommandContextWithoutPreset(cmd, opts.Format)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	def, provider, ok := lint.FindRule(name)
	if !ok {
		return fmt.Errorf("rule %q not found", name)
	}
	info := lint.GetRuleInfo(provider, def)
	detail := RuleDetail{RuleInfo: info, Options: def.Options}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(detail)
	case output.ModeYAML:
		return r.YAML(detail)
	case output.ModeMarkdown:
		showRuleMarkdown(r, detail)
	default:
		showRuleText(r, detail)
	}
	return nil
}

// listRulesText outputs rules in styled text format.
func listRulesText(r *output.Renderer, rules []lint.RuleInfo, verbose bool) {
	styles := r.Styles()
	titleCaser := cases.Title(language.English)

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("Lint Rules (%d in %d plugins)", len(rules), countPlugins(rules))))
	r.Println("")

	currentPlugin := ""
	currentGroup := ""
	for _, rule := range rules {
		if rule.Plugin != currentPlugin {
			currentPlugin = rule.Plugin
			currentGroup = ""
			r.Println(styles.Header2.Render(pluginTitle(rule.Plugin)))
			r.Println("")
		}

		if rule.Group != currentGroup {
			currentGroup = rule.Group
			r.Println(styles.Bold.Render("  " + titleCaser.String(groupLabel(currentGroup))))
		}

		severityStyle := getSeverityStyle(styles, rule.Recommended)
		line := fmt.Sprintf("    %s  %s", rule.Name, severityStyle.Render(rule.Recommended.String()))
		if marks := ruleMarks(rule); marks != "" {
			line += " " + styles.Muted.Render(marks)
		}
		r.Println(line)

		if verbose {
			r.Println(styles.Muted.Render("        " + rule.Description))
		}
	}

	r.Println("")
	r.Println(styles.Muted.Render("Use 'lintpreset rules <rule-name>' for details"))
	r.Println("")
}

// listRulesMarkdown outputs rules in markdown format.
func listRulesMarkdown(r *output.Renderer, rules []lint.RuleInfo, verbose bool) {
	titleCaser := cases.Title(language.English)

	r.Println("# Lint Rules")
	r.Println("")

	currentPlugin := ""
	currentGroup := ""
	for _, rule := range rules {
		if rule.Plugin != currentPlugin {
			currentPlugin = rule.Plugin
			currentGroup = ""
			r.Println("## " + pluginTitle(rule.Plugin))
			r.Println("")
		}

		if rule.Group != currentGroup {
			currentGroup = rule.Group
			r.Println("### " + titleCaser.String(groupLabel(currentGroup)))
			r.Println("")
		}

		line := fmt.Sprintf("- **%s** (`%s`)", rule.Name, rule.Recommended.String())
		if marks := ruleMarks(rule); marks != "" {
			line += " " + marks
		}
		r.Println(line)
		if verbose {
			r.Println("  " + rule.Description)
		}
	}

	r.Println("")
}

// RulesOutput is the structured output for rules listing.
type RulesOutput struct {
	Rules []lint.RuleInfo `json:"rules" yaml:"rules"`
	Count struct {
		Plugins     int `json:"plugins" yaml:"plugins"`
		Recommended int `json:"recommended" yaml:"recommended"`
		Total       int `json:"total" yaml:"total"`
	} `json:"count" yaml:"count"`
}

func newRulesOutput(rules []lint.RuleInfo) RulesOutput {
	out := RulesOutput{Rules: rules}
	if out.Rules == nil {
		out.Rules = []lint.RuleInfo{}
	}
	for _, rule := range rules {
		if rule.Recommended.Enabled() {
			out.Count.Recommended++
		}
	}
	out.Count.Plugins = countPlugins(rules)
	out.Count.Total = len(rules)
	return out
}

// RuleDetail is a rule's metadata plus its recommended options.
type RuleDetail struct {
	lint.RuleInfo `yaml:",inline"`
	Options       any `json:"options,omitempty" yaml:"options,omitempty"`
}

// showRuleText displays detailed rule info in text format.
func showRuleText(r *output.Renderer, rule RuleDetail) {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(rule.Name))
	r.Println("")

	r.Printf("  %s: %s\n", styles.Bold.Render("Plugin"), rule.Plugin)
	r.Printf("  %s: %s\n", styles.Bold.Render("Group"), groupLabel(rule.Group))
	r.Printf("  %s: %s\n", styles.Bold.Render("Recommended"),
		getSeverityStyle(styles, rule.Recommended).Render(rule.Recommended.String()))
	if marks := ruleMarks(rule.RuleInfo); marks != "" {
		r.Printf("  %s: %s\n", styles.Bold.Render("Flags"), marks)
	}
	r.Println("")

	r.Println(styles.Bold.Render("Description"))
	r.Println("  " + rule.Description)
	r.Println("")

	if rule.Options != nil {
		r.Println(styles.Bold.Render("Recommended Options"))
		r.Println("  " + output.FormatValue(rule.Options))
		r.Println("")
	}
}

// showRuleMarkdown displays detailed rule info in markdown format.
func showRuleMarkdown(r *output.Renderer, rule RuleDetail) {
	r.Printf("# %s\n\n", rule.Name)
	r.Printf("**Plugin:** %s | **Group:** %s | **Recommended:** `%s`\n\n",
		rule.Plugin, groupLabel(rule.Group), rule.Recommended.String())
	r.Println(rule.Description)
	r.Println("")

	if rule.Options != nil {
		r.Println("## Recommended Options")
		r.Println("")
		r.Println("`" + output.FormatValue(rule.Options) + "`")
		r.Println("")
	}
}

// Helper functions

func getSeverityStyle(styles *output.Styles, sev core.Severity) lipgloss.Style {
	switch sev {
	case core.SeverityError:
		return styles.Error
	case core.SeverityWarn:
		return styles.Warning
	default:
		return styles.Muted
	}
}

func ruleMarks(rule lint.RuleInfo) string {
	var marks []string
	if rule.Fixable {
		marks = append(marks, "fixable")
	}
	if rule.Stylistic {
		marks = append(marks, "stylistic")
	}
	if len(marks) == 0 {
		return ""
	}
	return "[" + strings.Join(marks, ", ") + "]"
}

func pluginTitle(name string) string {
	if p, ok := lint.GetProvider(name); ok && p.Prefix() != "" {
		return fmt.Sprintf("%s (%s/*)", name, p.Prefix())
	}
	return name
}

func groupLabel(group string) string {
	if group == "" {
		return "general"
	}
	return strings.ReplaceAll(group, "-", " ")
}

func countPlugins(rules []lint.RuleInfo) int {
	seen := make(map[string]struct{})
	for _, rule := range rules {
		seen[rule.Plugin] = struct{}{}
	}
	return len(seen)
}
