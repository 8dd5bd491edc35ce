package commands

import (
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/lintpreset/internal/cli/output"
	"github.com/leapstack-labs/lintpreset/pkg/core"
	"github.com/leapstack-labs/lintpreset/pkg/lint"
)

func TestNewRulesCommand(t *testing.T) {
	cmd := NewRulesCommand()

	assert.Equal(t, "rules [rule-name]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	for _, flag := range []string{"plugin", "group", "verbose", "format"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestRulesCommand_ListAll(t *testing.T) {
	out, _, err := run(t, NewRulesCommand())
	require.NoError(t, err)

	// Buffers are not terminals, so auto mode renders markdown.
	assert.Contains(t, out, "# Lint Rules")
	assert.Contains(t, out, "## react (react/*)")
	assert.Contains(t, out, "## jsx-a11y (jsx-a11y/*)")
	assert.Contains(t, out, "## js")
	assert.Contains(t, out, "### Hooks")
	assert.Contains(t, out, "- **react-hooks/exhaustive-deps** (`warn`) [fixable]")
}

func TestRulesCommand_FilterByPlugin(t *testing.T) {
	out, _, err := run(t, NewRulesCommand(), "--plugin", "react-hooks")
	require.NoError(t, err)

	assert.Contains(t, out, "react-hooks/rules-of-hooks")
	assert.NotContains(t, out, "react-hooks-extra/")
	assert.NotContains(t, out, "jsx-a11y/")
}

func TestRulesCommand_UnknownPlugin(t *testing.T) {
	_, _, err := run(t, NewRulesCommand(), "--plugin", "vue")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRulesCommand_Text(t *testing.T) {
	out, _, err := run(t, NewRulesCommand(), "--plugin", "prettier", "--format", "text", "-V")
	require.NoError(t, err)

	assert.Contains(t, out, "Lint Rules (1 in 1 plugins)")
	assert.Contains(t, out, "prettier/prettier")
	assert.Contains(t, out, "lintpreset rules <rule-name>")
}

func TestRulesCommand_JSON(t *testing.T) {
	out, _, err := run(t, NewRulesCommand(), "--format", "json")
	require.NoError(t, err)

	var result RulesOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, len(lint.AllRules()), result.Count.Total)
	assert.Equal(t, len(lint.Providers()), result.Count.Plugins)
	assert.Positive(t, result.Count.Recommended)
	assert.Less(t, result.Count.Recommended, result.Count.Total)
}

func TestRulesCommand_ShowRule(t *testing.T) {
	t.Run("markdown", func(t *testing.T) {
		out, _, err := run(t, NewRulesCommand(), "react-hooks/exhaustive-deps")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "# react-hooks/exhaustive-deps"))
		assert.Contains(t, out, "**Plugin:** react-hooks")
	})

	t.Run("json", func(t *testing.T) {
		out, _, err := run(t, NewRulesCommand(), "import/order", "--format", "json")
		require.NoError(t, err)

		var result map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Equal(t, "import/order", result["name"])
		assert.Equal(t, "off", result["recommended"])
		assert.Contains(t, result, "options")
	})

	t.Run("not found", func(t *testing.T) {
		_, _, err := run(t, NewRulesCommand(), "react/not-a-rule")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestFilterRulesByOptions(t *testing.T) {
	rules := []lint.RuleInfo{
		{Name: "eqeqeq", Plugin: "js", Group: "suggestions"},
		{Name: "react/jsx-key", Plugin: "react", Group: "possible-problems"},
		{Name: "react/jsx-indent", Plugin: "react", Group: "layout"},
	}

	tests := []struct {
		name string
		opts RulesOptions
		want []string
	}{
		{name: "no filter", opts: RulesOptions{}, want: []string{"eqeqeq", "react/jsx-key", "react/jsx-indent"}},
		{name: "plugin", opts: RulesOptions{Plugin: "react"}, want: []string{"react/jsx-key", "react/jsx-indent"}},
		{name: "plugin and group", opts: RulesOptions{Plugin: "react", Group: "layout"}, want: []string{"react/jsx-indent"}},
		{name: "no match", opts: RulesOptions{Group: "types"}, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, r := range filterRulesByOptions(rules, &tt.opts) {
				got = append(got, r.Name)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRuleHelpers(t *testing.T) {
	assert.Equal(t, "general", groupLabel(""))
	assert.Equal(t, "possible problems", groupLabel("possible-problems"))
	assert.Equal(t, "[fixable, stylistic]", ruleMarks(lint.RuleInfo{Fixable: true, Stylistic: true}))
	assert.Empty(t, ruleMarks(lint.RuleInfo{}))
	assert.Equal(t, "@typescript-eslint (@typescript-eslint/*)", pluginTitle("@typescript-eslint"))
	assert.Equal(t, "js", pluginTitle("js"))
	assert.Equal(t, 2, countPlugins([]lint.RuleInfo{{Plugin: "a"}, {Plugin: "b"}, {Plugin: "a"}}))

	styles := output.NewRenderer(io.Discard, io.Discard, output.ModeText).Styles()
	assert.Equal(t, styles.Error.Render("x"), getSeverityStyle(styles, core.SeverityError).Render("x"))
}
