package plugins

import (
	"github.com/leapstack-labs/lintpreset/pkg/core"
	"github.com/leapstack-labs/lintpreset/pkg/lint"
)

// TypeScript is the TypeScript rule set.
var TypeScript = &lint.RuleSet{
	ShortName:  "@typescript-eslint",
	RulePrefix: "@typescript-eslint",
	Meta:       lint.Meta{Name: "@typescript-eslint/eslint-plugin", Version: "8.x"},
	Defs: []lint.RuleDef{
		{ID: "ban-ts-comment", Group: GroupTypes, Recommended: core.SeverityError, Description: "Disallow @ts-<directive> comments or require descriptions after directives"},
		{ID: "no-array-constructor", Group: GroupSuggestions, Recommended: core.SeverityError, Fixable: true, Description: "Disallow generic Array constructors"},
		{ID: "no-duplicate-enum-values", Group: GroupTypes, Recommended: core.SeverityError, Description: "Disallow duplicate enum member values"},
		{ID: "no-empty-object-type", Group: GroupTypes, Recommended: core.SeverityError, Description: "Disallow accidentally using the empty object type"},
		{ID: "no-explicit-any", Group: GroupTypes, Recommended: core.SeverityError, Description: "Disallow the any type"},
		{ID: "no-extra-non-null-assertion", Group: GroupTypes, Recommended: core.SeverityError, Fixable: true, Description: "Disallow extra non-null assertions"},
		{ID: "no-misused-new", Group: GroupTypes, Recommended: core.SeverityError, Description: "Enforce valid definition of new and constructor"},
		{ID: "no-namespace", Group: GroupTypes, Recommended: core.SeverityError, Description: "Disallow TypeScript namespaces"},
		{ID: "no-non-null-asserted-optional-chain", Group: GroupTypes, Recommended: core.SeverityError, Description: "Disallow non-null assertions after an optional chain expression"},
		{ID: "no-require-imports", Group: GroupSuggestions, Recommended: core.SeverityError, Description: "Disallow invocation of require()"},
		{ID: "no-this-alias", Group: GroupSuggestions, Recommended: core.SeverityError, Description: "Disallow aliasing this"},
		{ID: "no-unnecessary-type-constraint", Group: GroupTypes, Recommended: core.SeverityError, Description: "Disallow unnecessary constraints on generic types"},
		{ID: "no-unsafe-declaration-merging", Group: GroupTypes, Recommended: core.SeverityError, Description: "Disallow unsafe declaration merging"},
		{ID: "no-unsafe-function-type", Group: GroupTypes, Recommended: core.SeverityError, Description: "Disallow using the unsafe built-in Function type"},
		{ID: "no-unused-expressions", Group: GroupSuggestions, Recommended: core.SeverityError, Description: "Disallow unused expressions"},
		{ID: "no-unused-vars", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow unused variables"},
		{ID: "no-wrapper-object-types", Group: GroupTypes, Recommended: core.SeverityError, Fixable: true, Description: "Disallow using confusing built-in primitive class wrappers"},
		{ID: "prefer-as-const", Group: GroupTypes, Recommended: core.SeverityError, Fixable: true, Description: "Enforce the use of as const over literal type"},
		{ID: "prefer-namespace-keyword", Group: GroupTypes, Recommended: core.SeverityError, Fixable: true, Description: "Require using namespace keyword over module keyword to declare custom TypeScript modules"},
		{ID: "triple-slash-reference", Group: GroupTypes, Recommended: core.SeverityError, Description: "Disallow certain triple slash directives in favor of ES6-style import declarations"},

		{ID: "consistent-type-imports", Group: GroupTypes, Fixable: true, Description: "Enforce consistent usage of type imports"},
		{ID: "explicit-function-return-type", Group: GroupTypes, Description: "Require explicit return types on functions and class methods"},
		{ID: "explicit-module-boundary-types", Group: GroupTypes, Description: "Require explicit return and argument types on exported functions"},
		{ID: "no-non-null-assertion", Group: GroupTypes, Description: "Disallow non-null assertions using the ! postfix operator"},
	},
}

// TypeScriptCoreOverrides turns off built-in rules that the TypeScript
// compiler already checks or that the TypeScript rule set replaces, and
// upgrades the ES2015+ suggestions the TypeScript rule set expects.
func TypeScriptCoreOverrides() []core.Rule {
	return []core.Rule{
		core.Off("constructor-super"),
		core.Off("getter-return"),
		core.Off("no-class-assign"),
		core.Off("no-const-assign"),
		core.Off("no-dupe-args"),
		core.Off("no-dupe-class-members"),
		core.Off("no-dupe-keys"),
		core.Off("no-func-assign"),
		core.Off("no-import-assign"),
		core.Off("no-new-native-nonconstructor"),
		core.Off("no-obj-calls"),
		core.Off("no-redeclare"),
		core.Off("no-setter-return"),
		core.Off("no-this-before-super"),
		core.Off("no-undef"),
		core.Off("no-unreachable"),
		core.Off("no-unsafe-negation"),
		core.Off("no-unused-vars"),
		core.Off("no-unused-expressions"),
		core.Error("no-var"),
		core.Error("prefer-const"),
		core.Error("prefer-rest-params"),
		core.Error("prefer-spread"),
	}
}
