// Package preset builds the shipped lint configuration.
//
// Default is the configuration built with the default formatting options.
// CreateConfiguration builds the same fragment pipeline with caller
// overrides layered over those defaults:
//
//	cfg, err := preset.CreateConfiguration(
//		preset.WithPrintWidth(100),
//		preset.WithSemicolons(true),
//	)
//
// Fragment order is fixed: global ignores, the language baseline, TypeScript,
// TypeScript declarations, React, hooks, accessibility, and the formatter
// bridge last so it can switch off every stylistic rule before it.
package preset
