package preset

import (
	"github.com/leapstack-labs/lintpreset/pkg/core"
	"github.com/leapstack-labs/lintpreset/pkg/flatconfig"
	"github.com/leapstack-labs/lintpreset/pkg/lint"
	"github.com/leapstack-labs/lintpreset/pkg/lint/plugins"
)

// Fragment names, in pipeline order.
const (
	FragmentIgnores                = "ignores"
	FragmentJavaScript             = "javascript"
	FragmentTypeScript             = "typescript"
	FragmentTypeScriptDeclarations = "typescript-declarations"
	FragmentReact                  = "react"
	FragmentReactHooks             = "react-hooks"
	FragmentJSXA11y                = "jsx-a11y"
	FragmentPrettier               = "prettier"
)

// File sets the fragments target.
var (
	SourceFiles      = []string{"**/*.{js,jsx,ts,tsx,mjs,cjs}"}
	TypeScriptFiles  = []string{"**/*.{ts,tsx}"}
	DeclarationFiles = []string{"**/*.d.ts"}
	ComponentFiles   = []string{"**/*.{js,jsx,ts,tsx}"}
)

// DefaultIgnores are the global ignore patterns. Dotfiles and dot-directories
// are skipped except the CI workflow directory.
var DefaultIgnores = []string{
	"**/node_modules/**",
	"**/dist/**",
	"**/build/**",
	"**/.next/**",
	"**/coverage/**",
	"**/*.min.js",
	"**/.*",
	"!.github",
}

// fragments returns the pipeline for o in its fixed order.
func fragments(o FormatOptions) []flatconfig.Fragment {
	return []flatconfig.Fragment{
		ignoresFragment(),
		javascriptFragment(),
		typescriptFragment(),
		typescriptDeclarationsFragment(),
		reactFragment(),
		reactHooksFragment(),
		jsxA11yFragment(),
		prettierFragment(o),
	}
}

func ignoresFragment() flatconfig.Fragment {
	return flatconfig.Fragment{
		Name:    FragmentIgnores,
		Ignores: append([]string(nil), DefaultIgnores...),
	}
}

func javascriptFragment() flatconfig.Fragment {
	var rules ruleTable
	rules.set(plugins.JavaScript.Recommended()...)
	rules.set(
		core.Warn("no-console"),
		core.Error("no-debugger"),
		core.Error("no-duplicate-imports"),
		core.Error("no-unused-expressions"),
		core.Error("prefer-const"),
		core.Error("no-var"),
		core.Error("object-shorthand"),
		core.Error("prefer-template"),
	)
	if def, ok := plugins.Import.Rule("order"); ok {
		rules.set(core.Error(plugins.Import.QualifiedName(def.ID), core.CloneValue(def.Options)))
	}

	return flatconfig.Fragment{
		Name:  FragmentJavaScript,
		Files: append([]string(nil), SourceFiles...),
		Settings: map[string]any{
			"ecmaVersion": "latest",
			"sourceType":  "module",
			"parser":      "@typescript-eslint/parser",
			"parserOptions": map[string]any{
				"ecmaFeatures": map[string]any{"jsx": true},
			},
			"globals": globals(),
			"linterOptions": map[string]any{
				"reportUnusedDisableDirectives": "error",
			},
			"import/resolver": map[string]any{
				"typescript": map[string]any{
					"alwaysTryTypes": true,
					"project":        "./tsconfig.json",
				},
				"node": map[string]any{
					"extensions": []any{".js", ".jsx", ".ts", ".tsx"},
				},
			},
			"import/parsers": map[string]any{
				"@typescript-eslint/parser": []any{".ts", ".tsx"},
			},
		},
		Rules:   rules.list(),
		Plugins: bind(plugins.Import),
	}
}

func typescriptFragment() flatconfig.Fragment {
	var rules ruleTable
	rules.set(plugins.TypeScriptCoreOverrides()...)
	rules.set(plugins.TypeScript.Recommended()...)
	rules.set(
		core.Error("@typescript-eslint/no-unused-vars", map[string]any{"argsIgnorePattern": "^_"}),
		core.Error("@typescript-eslint/consistent-type-imports", map[string]any{"prefer": "type-imports"}),
		core.Off("@typescript-eslint/explicit-function-return-type"),
		core.Off("@typescript-eslint/explicit-module-boundary-types"),
		core.Warn("@typescript-eslint/no-explicit-any"),
		core.Warn("@typescript-eslint/no-non-null-assertion"),
	)

	return flatconfig.Fragment{
		Name:  FragmentTypeScript,
		Files: append([]string(nil), TypeScriptFiles...),
		Settings: map[string]any{
			"parserOptions": map[string]any{
				"ecmaFeatures": map[string]any{"jsx": true},
				"project":      true,
			},
		},
		Rules:   rules.list(),
		Plugins: bind(plugins.TypeScript),
	}
}

func typescriptDeclarationsFragment() flatconfig.Fragment {
	return flatconfig.Fragment{
		Name:  FragmentTypeScriptDeclarations,
		Files: append([]string(nil), DeclarationFiles...),
		Rules: []core.Rule{
			core.Off("no-var"),
			core.Off("@typescript-eslint/no-unused-vars"),
			core.Off("@typescript-eslint/no-explicit-any"),
			core.Off("@typescript-eslint/triple-slash-reference"),
			core.Off("@typescript-eslint/consistent-type-imports"),
		},
	}
}

func reactFragment() flatconfig.Fragment {
	var rules ruleTable
	rules.set(plugins.React.Recommended()...)
	rules.set(
		core.Error("react/self-closing-comp"),
		core.Off("react/react-in-jsx-scope"),
		core.Off("react/prop-types"),
		core.Error("react/no-unknown-property"),
		core.Error("react/jsx-key"),
		core.Error("react/jsx-no-duplicate-props"),
		core.Error("react/jsx-no-undef"),
		core.Warn("react/no-deprecated"),
		core.Off("react/jsx-uses-react"),
		core.Error("react/jsx-uses-vars"),
	)

	return flatconfig.Fragment{
		Name:  FragmentReact,
		Files: append([]string(nil), ComponentFiles...),
		Settings: map[string]any{
			"react": map[string]any{"version": "detect"},
		},
		Rules:   rules.list(),
		Plugins: bind(plugins.React),
	}
}

func reactHooksFragment() flatconfig.Fragment {
	var rules ruleTable
	rules.set(plugins.ReactHooks.Recommended()...)
	rules.set(
		core.Error("react-hooks/rules-of-hooks"),
		core.Warn("react-hooks/exhaustive-deps"),
		core.Warn("react-hooks-extra/no-unnecessary-use-callback"),
		core.Warn("react-hooks-extra/no-unnecessary-use-memo"),
		core.Warn("react-hooks-extra/prefer-use-state-lazy-initialization"),
	)

	return flatconfig.Fragment{
		Name:    FragmentReactHooks,
		Files:   append([]string(nil), ComponentFiles...),
		Rules:   rules.list(),
		Plugins: bind(plugins.ReactHooks, plugins.ReactHooksExtra),
	}
}

func jsxA11yFragment() flatconfig.Fragment {
	var rules ruleTable
	rules.set(plugins.JSXA11y.Recommended()...)
	rules.set(
		core.Warn("jsx-a11y/alt-text", map[string]any{
			"elements": []any{"img"},
			"img":      []any{"Image"},
		}),
		core.Warn("jsx-a11y/aria-props"),
		core.Warn("jsx-a11y/aria-proptypes"),
		core.Warn("jsx-a11y/aria-unsupported-elements"),
		core.Warn("jsx-a11y/role-has-required-aria-props"),
		core.Warn("jsx-a11y/role-supports-aria-props"),
	)

	return flatconfig.Fragment{
		Name:    FragmentJSXA11y,
		Files:   append([]string(nil), ComponentFiles...),
		Rules:   rules.list(),
		Plugins: bind(plugins.JSXA11y),
	}
}

func prettierFragment(o FormatOptions) flatconfig.Fragment {
	var rules ruleTable
	rules.set(plugins.FormatterConflicts()...)
	rules.set(core.Error(plugins.PrettierRule, o.ToMap()))

	return flatconfig.Fragment{
		Name:    FragmentPrettier,
		Rules:   rules.list(),
		Plugins: bind(plugins.Prettier),
	}
}

// globals are the ambient identifiers of browser, node and jest code.
func globals() map[string]any {
	names := []string{
		// browser
		"window", "document", "navigator", "localStorage", "fetch",
		// node
		"console", "process", "Buffer", "__dirname", "__filename", "global", "module", "require",
		// jest
		"describe", "test", "it", "expect", "beforeEach", "afterEach", "beforeAll", "afterAll", "jest",
	}
	out := make(map[string]any, len(names))
	for _, n := range names {
		out[n] = "readonly"
	}
	return out
}

func bind(sets ...*lint.RuleSet) map[string]lint.Provider {
	out := make(map[string]lint.Provider, len(sets))
	for _, s := range sets {
		out[s.Name()] = s
	}
	return out
}

// ruleTable accumulates rule entries for one fragment. A later entry for the
// same name replaces the earlier one in place.
type ruleTable struct {
	rules []core.Rule
	index map[string]int
}

func (t *ruleTable) set(rules ...core.Rule) {
	if t.index == nil {
		t.index = make(map[string]int)
	}
	for _, r := range rules {
		if i, ok := t.index[r.Name]; ok {
			t.rules[i] = r
			continue
		}
		t.index[r.Name] = len(t.rules)
		t.rules = append(t.rules, r)
	}
}

func (t *ruleTable) list() []core.Rule {
	return t.rules
}
