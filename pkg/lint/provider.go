package lint

import "github.com/leapstack-labs/lintpreset/pkg/core"

// Provider is the base interface for all rule-set plugins.
// It is the only thing a configuration fragment needs from a plugin binding.
type Provider interface {
	Name() string
}

// RuleSetProvider describes the rules a plugin ships.
// Implemented by the declarative rule tables in pkg/lint/plugins.
type RuleSetProvider interface {
	Provider

	// Prefix is prepended to rule IDs, e.g. "react" -> "react/jsx-key".
	// Empty for the language's built-in rules.
	Prefix() string

	// Rules returns every rule the plugin ships, in declaration order.
	Rules() []RuleDef

	// Recommended returns the plugin's recommended capability entries.
	Recommended() []core.Rule
}

// Meta carries plugin package metadata.
type Meta struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
}

// RuleSet is a data-driven RuleSetProvider.
type RuleSet struct {
	ShortName  string // binding name, e.g. "react-hooks"
	RulePrefix string // rule prefix; may differ from ShortName
	Meta       Meta
	Defs       []RuleDef
}

// Name returns the binding name.
func (s *RuleSet) Name() string { return s.ShortName }

// Prefix returns the rule prefix.
func (s *RuleSet) Prefix() string { return s.RulePrefix }

// Rules returns a copy of the rule definitions.
func (s *RuleSet) Rules() []RuleDef {
	out := make([]RuleDef, len(s.Defs))
	copy(out, s.Defs)
	return out
}

// QualifiedName returns the configuration key for a rule of this set.
func (s *RuleSet) QualifiedName(id string) string {
	if s.RulePrefix == "" {
		return id
	}
	return s.RulePrefix + "/" + id
}

// Recommended returns every rule whose recommended severity is not off,
// in declaration order, with cloned default options.
func (s *RuleSet) Recommended() []core.Rule {
	var rules []core.Rule
	for _, def := range s.Defs {
		if def.Recommended == core.SeverityOff {
			continue
		}
		rules = append(rules, core.Rule{
			Name:     s.QualifiedName(def.ID),
			Severity: def.Recommended,
			Options:  core.CloneValue(def.Options),
		})
	}
	return rules
}

// Rule looks up a definition by short ID.
func (s *RuleSet) Rule(id string) (RuleDef, bool) {
	for _, def := range s.Defs {
		if def.ID == id {
			return def, true
		}
	}
	return RuleDef{}, false
}
