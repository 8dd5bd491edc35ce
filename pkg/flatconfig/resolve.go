package flatconfig

import (
	"github.com/leapstack-labs/lintpreset/pkg/core"
	"github.com/leapstack-labs/lintpreset/pkg/glob"
	"github.com/leapstack-labs/lintpreset/pkg/lint"
)

// EffectiveConfig is the resolved configuration for one file.
type EffectiveConfig struct {
	// Path is the normalised, root-relative path that was resolved.
	Path string `json:"path" yaml:"path"`

	// Excluded is set when a global ignore removed the path.
	Excluded bool `json:"excluded" yaml:"excluded"`

	Settings map[string]any `json:"settings,omitempty" yaml:"settings,omitempty"`

	// Rules are ordered by first declaration; each value comes from the
	// last matching fragment that declared the rule.
	Rules []core.Rule `json:"rules,omitempty" yaml:"rules,omitempty"`

	Plugins map[string]lint.Provider `json:"-" yaml:"-"`

	// Fragments names the matching fragments in order.
	Fragments []string `json:"fragments,omitempty" yaml:"fragments,omitempty"`
}

// Resolve computes the effective configuration for path under cfg.
func Resolve(path string, cfg Config) EffectiveConfig {
	return cfg.Resolve(path)
}

// Resolve computes the effective configuration for path.
//
// Fragments are visited in order. Every matching fragment overlays its
// settings key by key, replaces whole rule entries by name and rebinds
// plugins; the last writer wins. Resolve never fails: a path nothing
// matches yields an empty configuration.
func (c Config) Resolve(path string) EffectiveConfig {
	name := glob.Normalize(c.BasePath, path)
	eff := EffectiveConfig{Path: name}
	if c.ignored(name) {
		eff.Excluded = true
		return eff
	}

	index := make(map[string]int)
	for i, f := range c.fragments {
		m := c.compiled[i]
		if m.global || !m.matches(name) {
			continue
		}
		eff.Fragments = append(eff.Fragments, f.Name)

		for k, v := range f.Settings {
			if eff.Settings == nil {
				eff.Settings = make(map[string]any)
			}
			eff.Settings[k] = core.CloneValue(v)
		}
		for _, r := range f.Rules {
			if j, ok := index[r.Name]; ok {
				eff.Rules[j] = r.Clone()
				continue
			}
			index[r.Name] = len(eff.Rules)
			eff.Rules = append(eff.Rules, r.Clone())
		}
		for k, p := range f.Plugins {
			if eff.Plugins == nil {
				eff.Plugins = make(map[string]lint.Provider)
			}
			eff.Plugins[k] = p
		}
	}
	return eff
}

// Rule returns the effective entry for name.
func (e EffectiveConfig) Rule(name string) (core.Rule, bool) {
	for _, r := range e.Rules {
		if r.Name == name {
			return r, true
		}
	}
	return core.Rule{}, false
}

// Severity returns the effective severity of name; off when undeclared.
func (e EffectiveConfig) Severity(name string) core.Severity {
	r, _ := e.Rule(name)
	return r.Severity
}

// EnabledRules returns the rules whose severity is not off.
func (e EffectiveConfig) EnabledRules() []core.Rule {
	var out []core.Rule
	for _, r := range e.Rules {
		if r.Severity.Enabled() {
			out = append(out, r)
		}
	}
	return out
}

// IsEmpty reports whether there is nothing to check for the path.
func (e EffectiveConfig) IsEmpty() bool {
	return e.Excluded || (len(e.Rules) == 0 && len(e.Settings) == 0 && len(e.Plugins) == 0)
}

// SettingKeys returns the effective setting keys in sorted order.
func (e EffectiveConfig) SettingKeys() []string {
	return sortedKeys(e.Settings)
}

// PluginNames returns the bound plugin names in sorted order.
func (e EffectiveConfig) PluginNames() []string {
	return sortedKeys(e.Plugins)
}
