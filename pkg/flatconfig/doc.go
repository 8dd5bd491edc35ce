// Package flatconfig composes ordered rule-set fragments into a merged
// configuration and resolves the effective configuration for one file.
//
// A Config is an ordered sequence of Fragments. Merge validates fragments and
// concatenates them without collapsing anything; precedence is decided only at
// resolution time. Resolve walks the fragments in order, keeps those whose
// file patterns select the path, and overlays settings and rules so that the
// last matching fragment wins per key.
//
// Fragments that carry nothing but ignore patterns are global ignores: they
// exclude paths from every other fragment.
//
//	cfg, err := flatconfig.Merge(
//		flatconfig.Fragment{Ignores: []string{"**/node_modules/**"}},
//		flatconfig.Fragment{Files: []string{"**/*.ts"}, Rules: []core.Rule{core.Error("no-var")}},
//	)
//	eff := cfg.Resolve("src/index.ts")
package flatconfig
