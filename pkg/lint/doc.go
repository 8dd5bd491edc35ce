// Package lint models the external rule-set plugins the preset composes.
//
// # Providers
//
// Each third-party rule set (the language baseline, the UI component
// framework rules, hooks rules, accessibility rules, the formatter bridge)
// is a Provider: a named, opaque capability source that configuration
// fragments bind under a short name. The configuration core stores
// providers and passes them through; it never inspects them.
//
// Providers that also describe their rules implement RuleSetProvider. The
// preset uses that to pull a plugin's recommended rule table without caring
// which plugin supplied it.
//
// # Registration
//
// Providers are registered via init() functions when their packages are imported:
//
//	import _ "github.com/leapstack-labs/lintpreset/pkg/lint/plugins"
//
// Query the registry:
//
//	all := lint.Providers()
//	p, ok := lint.GetProvider("react")
//	def, p, ok := lint.FindRule("react/self-closing-comp")
//
// # Rule options
//
// Rule options are opaque to the core. The typed getters in this package
// (GetIntOption, GetStringOption, GetBoolOption) read the object form used by most
// plugins.
package lint
