package flatconfig

import (
	"github.com/leapstack-labs/lintpreset/pkg/core"
	"github.com/leapstack-labs/lintpreset/pkg/lint"
)

// Fragment is one partial configuration: which files it targets, which it
// skips, and the settings, rules and plugin bindings it contributes.
type Fragment struct {
	// Name labels the fragment in diagnostics. It takes no part in matching.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Files selects the paths the fragment applies to. Empty means all files.
	Files []string `json:"files,omitempty" yaml:"files,omitempty"`

	// Ignores excludes paths; a leading "!" re-includes.
	Ignores []string `json:"ignores,omitempty" yaml:"ignores,omitempty"`

	// Settings holds parser choice, language options, globals and shared
	// plugin settings. Overlaid key by key at resolution time.
	Settings map[string]any `json:"settings,omitempty" yaml:"settings,omitempty"`

	// Rules is ordered; names are unique within one fragment.
	Rules []core.Rule `json:"rules,omitempty" yaml:"rules,omitempty"`

	// Plugins binds short names to rule-set providers. Never inspected here.
	Plugins map[string]lint.Provider `json:"-" yaml:"-"`
}

// IsGlobalIgnore reports whether the fragment only lists ignore patterns.
// Such a fragment excludes paths from the whole configuration.
func (f Fragment) IsGlobalIgnore() bool {
	return len(f.Ignores) > 0 &&
		len(f.Files) == 0 &&
		len(f.Settings) == 0 &&
		len(f.Rules) == 0 &&
		len(f.Plugins) == 0
}

// Rule returns the entry for name declared by this fragment.
func (f Fragment) Rule(name string) (core.Rule, bool) {
	for _, r := range f.Rules {
		if r.Name == name {
			return r, true
		}
	}
	return core.Rule{}, false
}

// PluginNames returns the bound plugin names in sorted order.
func (f Fragment) PluginNames() []string {
	return sortedKeys(f.Plugins)
}

// Clone returns a deep copy of the fragment. Plugin providers are shared;
// only the binding map is copied.
func (f Fragment) Clone() Fragment {
	out := Fragment{
		Name:     f.Name,
		Files:    cloneStrings(f.Files),
		Ignores:  cloneStrings(f.Ignores),
		Settings: core.CloneMap(f.Settings),
	}
	if f.Rules != nil {
		out.Rules = make([]core.Rule, len(f.Rules))
		for i, r := range f.Rules {
			out.Rules[i] = r.Clone()
		}
	}
	if f.Plugins != nil {
		out.Plugins = make(map[string]lint.Provider, len(f.Plugins))
		for k, p := range f.Plugins {
			out.Plugins[k] = p
		}
	}
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
