package lint

import (
	"sort"
	"strings"
	"sync"
)

// globalRegistry is the single global registry for all rule-set providers.
var globalRegistry = &Registry{
	providers: make(map[string]RuleSetProvider),
}

// Registry stores registered providers for discovery.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]RuleSetProvider // keyed by Name()
}

// Register adds a provider to the global registry.
// Call this from init() functions in plugin packages.
func Register(p RuleSetProvider) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.providers[p.Name()] = p
}

// GetProvider returns a provider by binding name.
func GetProvider(name string) (RuleSetProvider, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	p, ok := globalRegistry.providers[name]
	return p, ok
}

// Providers returns all registered providers sorted by name.
func Providers() []RuleSetProvider {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	out := make([]RuleSetProvider, 0, len(globalRegistry.providers))
	for _, p := range globalRegistry.providers {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// FindRule resolves a qualified rule name ("react/jsx-key", "no-var") to its
// definition and provider. The longest matching prefix wins so that scoped
// prefixes like "@typescript-eslint" resolve correctly.
func FindRule(name string) (RuleDef, RuleSetProvider, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	var (
		best    RuleSetProvider
		bestLen = -1
		id      string
	)
	for _, p := range globalRegistry.providers {
		prefix := p.Prefix()
		switch {
		case prefix == "" && !strings.Contains(name, "/"):
			if bestLen < 0 {
				best, bestLen, id = p, 0, name
			}
		case prefix != "" && strings.HasPrefix(name, prefix+"/"):
			if len(prefix) > bestLen {
				best, bestLen, id = p, len(prefix), strings.TrimPrefix(name, prefix+"/")
			}
		}
	}
	if best == nil {
		return RuleDef{}, nil, false
	}
	for _, def := range best.Rules() {
		if def.ID == id {
			return def, best, true
		}
	}
	return RuleDef{}, nil, false
}

// AllRules returns metadata for every rule of every registered provider,
// sorted by qualified name.
func AllRules() []RuleInfo {
	var rules []RuleInfo
	for _, p := range Providers() {
		for _, def := range p.Rules() {
			rules = append(rules, GetRuleInfo(p, def))
		}
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].Name < rules[j].Name })
	return rules
}

// Count returns the number of registered providers.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.providers)
}

// Clear removes all registered providers. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.providers = make(map[string]RuleSetProvider)
}
