package lint

import "github.com/leapstack-labs/lintpreset/pkg/core"

// RuleDef is a data-driven rule definition.
// The check itself lives in the external plugin; this is only what the
// preset needs to compose configuration and document it.
type RuleDef struct {
	ID          string        // Short identifier within the plugin, e.g. "jsx-key"
	Description string        // Human-readable description
	Group       string        // Category, e.g. "possible-problems", "suggestions", "layout"
	Recommended core.Severity // Severity in the plugin's recommended preset (off = not recommended)
	Options     any           // Options used by the recommended preset
	Fixable     bool          // Plugin can auto-fix findings
	Stylistic   bool          // Formatting-only rule, turned off by the formatter bridge
}

// RuleInfo provides metadata about a rule for documentation/tooling.
type RuleInfo struct {
	Name        string        `json:"name" yaml:"name"`
	Plugin      string        `json:"plugin" yaml:"plugin"`
	Group       string        `json:"group,omitempty" yaml:"group,omitempty"`
	Description string        `json:"description" yaml:"description"`
	Recommended core.Severity `json:"recommended" yaml:"recommended"`
	Fixable     bool          `json:"fixable,omitempty" yaml:"fixable,omitempty"`
	Stylistic   bool          `json:"stylistic,omitempty" yaml:"stylistic,omitempty"`
}

// GetRuleInfo extracts metadata from a rule definition of p.
func GetRuleInfo(p RuleSetProvider, def RuleDef) RuleInfo {
	name := def.ID
	if p.Prefix() != "" {
		name = p.Prefix() + "/" + def.ID
	}
	return RuleInfo{
		Name:        name,
		Plugin:      p.Name(),
		Group:       def.Group,
		Description: def.Description,
		Recommended: def.Recommended,
		Fixable:     def.Fixable,
		Stylistic:   def.Stylistic,
	}
}

// StylisticRules returns the qualified names of every formatting-only rule
// the given providers ship, in provider then declaration order.
func StylisticRules(providers ...RuleSetProvider) []string {
	var names []string
	for _, p := range providers {
		for _, def := range p.Rules() {
			if def.Stylistic {
				names = append(names, GetRuleInfo(p, def).Name)
			}
		}
	}
	return names
}
