// Package plugins declares the rule tables of the external rule sets the
// preset composes: the language baseline, the TypeScript rule set, the UI
// component framework rules, hooks rules, accessibility rules, import
// ordering, and the formatter bridge.
//
// The tables carry metadata only. The checks live in the external plugins;
// the preset needs names, recommended severities and default options to
// build configuration fragments.
//
// All rule sets register themselves with pkg/lint in init().
package plugins

import (
	"github.com/leapstack-labs/lintpreset/pkg/core"
	"github.com/leapstack-labs/lintpreset/pkg/lint"
)

// Rule groups.
const (
	GroupProblems    = "possible-problems"
	GroupSuggestions = "suggestions"
	GroupLayout      = "layout"
	GroupTypes       = "types"
	GroupHooks       = "hooks"
	GroupA11y        = "accessibility"
)

func init() {
	for _, set := range All() {
		lint.Register(set)
	}
}

// All returns every rule set shipped with the preset, in composition order.
func All() []*lint.RuleSet {
	return []*lint.RuleSet{
		JavaScript,
		Import,
		TypeScript,
		React,
		ReactHooks,
		ReactHooksExtra,
		JSXA11y,
		Prettier,
	}
}

// FormatterConflicts returns the rules the formatter bridge turns off: every
// rule flagged stylistic across the shipped rule sets, in composition order.
func FormatterConflicts() []core.Rule {
	providers := make([]lint.RuleSetProvider, 0, len(All()))
	for _, set := range All() {
		providers = append(providers, set)
	}
	names := lint.StylisticRules(providers...)
	rules := make([]core.Rule, 0, len(names))
	for _, name := range names {
		rules = append(rules, core.Off(name))
	}
	return rules
}
