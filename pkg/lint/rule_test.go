package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/lintpreset/pkg/core"
)

func testRuleSet() *RuleSet {
	return &RuleSet{
		ShortName:  "demo",
		RulePrefix: "demo",
		Meta:       Meta{Name: "eslint-plugin-demo", Version: "1.0.0"},
		Defs: []RuleDef{
			{ID: "alpha", Description: "Alpha rule", Group: "problems", Recommended: core.SeverityError},
			{ID: "beta", Description: "Beta rule", Recommended: core.SeverityOff},
			{ID: "gamma", Description: "Gamma rule", Recommended: core.SeverityWarn,
				Options: map[string]any{"max": 3}},
			{ID: "indent", Description: "Indentation", Group: "layout", Stylistic: true, Fixable: true},
		},
	}
}

func TestRuleSet_Recommended(t *testing.T) {
	set := testRuleSet()

	rules := set.Recommended()
	require.Len(t, rules, 2)
	assert.Equal(t, "demo/alpha", rules[0].Name)
	assert.Equal(t, core.SeverityError, rules[0].Severity)
	assert.Equal(t, "demo/gamma", rules[1].Name)
	assert.Equal(t, map[string]any{"max": 3}, rules[1].Options)

	// Options are copies; mutating them leaves the definition alone.
	rules[1].Options.(map[string]any)["max"] = 10
	def, ok := set.Rule("gamma")
	require.True(t, ok)
	assert.Equal(t, 3, def.Options.(map[string]any)["max"])
}

func TestRuleSet_QualifiedName(t *testing.T) {
	set := testRuleSet()
	assert.Equal(t, "demo/alpha", set.QualifiedName("alpha"))

	builtin := &RuleSet{ShortName: "js"}
	assert.Equal(t, "no-var", builtin.QualifiedName("no-var"))
}

func TestRuleSet_RulesIsCopy(t *testing.T) {
	set := testRuleSet()
	rules := set.Rules()
	rules[0].ID = "changed"
	assert.Equal(t, "alpha", set.Defs[0].ID)
}

func TestGetRuleInfo(t *testing.T) {
	set := testRuleSet()
	def, ok := set.Rule("indent")
	require.True(t, ok)

	info := GetRuleInfo(set, def)
	assert.Equal(t, "demo/indent", info.Name)
	assert.Equal(t, "demo", info.Plugin)
	assert.Equal(t, "layout", info.Group)
	assert.True(t, info.Fixable)
	assert.True(t, info.Stylistic)
	assert.Equal(t, core.SeverityOff, info.Recommended)
}

func TestStylisticRules(t *testing.T) {
	builtin := &RuleSet{ShortName: "js", Defs: []RuleDef{
		{ID: "curly", Stylistic: true},
		{ID: "no-var"},
	}}
	assert.Equal(t, []string{"demo/indent", "curly"}, StylisticRules(testRuleSet(), builtin))
}
