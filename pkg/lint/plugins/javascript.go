package plugins

import (
	"github.com/leapstack-labs/lintpreset/pkg/core"
	"github.com/leapstack-labs/lintpreset/pkg/lint"
)

// JavaScript is the language's built-in rule set. Its rules carry no prefix.
var JavaScript = &lint.RuleSet{
	ShortName: "js",
	Meta:      lint.Meta{Name: "@eslint/js", Version: "9.x"},
	Defs: []lint.RuleDef{
		// Possible problems (recommended)
		{ID: "constructor-super", Group: GroupProblems, Recommended: core.SeverityError, Description: "Require super() calls in constructors"},
		{ID: "for-direction", Group: GroupProblems, Recommended: core.SeverityError, Description: "Enforce for loop update clause moving the counter in the right direction"},
		{ID: "getter-return", Group: GroupProblems, Recommended: core.SeverityError, Description: "Enforce return statements in getters"},
		{ID: "no-async-promise-executor", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow using an async function as a Promise executor"},
		{ID: "no-class-assign", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow reassigning class members"},
		{ID: "no-compare-neg-zero", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow comparing against -0"},
		{ID: "no-cond-assign", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow assignment operators in conditional expressions"},
		{ID: "no-const-assign", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow reassigning const variables"},
		{ID: "no-constant-binary-expression", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow expressions where the operation doesn't affect the value"},
		{ID: "no-constant-condition", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow constant expressions in conditions"},
		{ID: "no-control-regex", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow control characters in regular expressions"},
		{ID: "no-debugger", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow the use of debugger"},
		{ID: "no-dupe-args", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow duplicate arguments in function definitions"},
		{ID: "no-dupe-class-members", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow duplicate class members"},
		{ID: "no-dupe-else-if", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow duplicate conditions in if-else-if chains"},
		{ID: "no-dupe-keys", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow duplicate keys in object literals"},
		{ID: "no-duplicate-case", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow duplicate case labels"},
		{ID: "no-empty-character-class", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow empty character classes in regular expressions"},
		{ID: "no-empty-pattern", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow empty destructuring patterns"},
		{ID: "no-ex-assign", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow reassigning exceptions in catch clauses"},
		{ID: "no-fallthrough", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow fallthrough of case statements"},
		{ID: "no-func-assign", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow reassigning function declarations"},
		{ID: "no-import-assign", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow assigning to imported bindings"},
		{ID: "no-invalid-regexp", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow invalid regular expression strings in RegExp constructors"},
		{ID: "no-irregular-whitespace", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow irregular whitespace"},
		{ID: "no-loss-of-precision", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow literal numbers that lose precision"},
		{ID: "no-misleading-character-class", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow characters made with multiple code points in character class syntax"},
		{ID: "no-new-native-nonconstructor", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow new operators with global non-constructor functions"},
		{ID: "no-obj-calls", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow calling global object properties as functions"},
		{ID: "no-prototype-builtins", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow calling some Object.prototype methods directly on objects"},
		{ID: "no-self-assign", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow assignments where both sides are exactly the same"},
		{ID: "no-setter-return", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow returning values from setters"},
		{ID: "no-sparse-arrays", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow sparse arrays"},
		{ID: "no-this-before-super", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow this/super before calling super() in constructors"},
		{ID: "no-undef", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow the use of undeclared variables"},
		{ID: "no-unexpected-multiline", Group: GroupProblems, Recommended: core.SeverityError, Stylistic: true, Description: "Disallow confusing multiline expressions"},
		{ID: "no-unreachable", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow unreachable code after return, throw, continue, and break statements"},
		{ID: "no-unsafe-finally", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow control flow statements in finally blocks"},
		{ID: "no-unsafe-negation", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow negating the left operand of relational operators"},
		{ID: "no-unsafe-optional-chaining", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow use of optional chaining in contexts where undefined is not allowed"},
		{ID: "no-unused-private-class-members", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow unused private class members"},
		{ID: "no-unused-vars", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow unused variables"},
		{ID: "no-useless-backreference", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow useless backreferences in regular expressions"},
		{ID: "use-isnan", Group: GroupProblems, Recommended: core.SeverityError, Description: "Require calls to isNaN() when checking for NaN"},
		{ID: "valid-typeof", Group: GroupProblems, Recommended: core.SeverityError, Description: "Enforce comparing typeof expressions against valid strings"},

		// Suggestions (recommended)
		{ID: "no-case-declarations", Group: GroupSuggestions, Recommended: core.SeverityError, Description: "Disallow lexical declarations in case clauses"},
		{ID: "no-delete-var", Group: GroupSuggestions, Recommended: core.SeverityError, Description: "Disallow deleting variables"},
		{ID: "no-empty", Group: GroupSuggestions, Recommended: core.SeverityError, Description: "Disallow empty block statements"},
		{ID: "no-empty-static-block", Group: GroupSuggestions, Recommended: core.SeverityError, Description: "Disallow empty static blocks"},
		{ID: "no-extra-boolean-cast", Group: GroupSuggestions, Recommended: core.SeverityError, Fixable: true, Description: "Disallow unnecessary boolean casts"},
		{ID: "no-global-assign", Group: GroupSuggestions, Recommended: core.SeverityError, Description: "Disallow assignments to native objects or read-only global variables"},
		{ID: "no-nonoctal-decimal-escape", Group: GroupSuggestions, Recommended: core.SeverityError, Description: "Disallow \\8 and \\9 escape sequences in string literals"},
		{ID: "no-octal", Group: GroupSuggestions, Recommended: core.SeverityError, Description: "Disallow octal literals"},
		{ID: "no-redeclare", Group: GroupSuggestions, Recommended: core.SeverityError, Description: "Disallow variable redeclaration"},
		{ID: "no-regex-spaces", Group: GroupSuggestions, Recommended: core.SeverityError, Fixable: true, Description: "Disallow multiple spaces in regular expressions"},
		{ID: "no-shadow-restricted-names", Group: GroupSuggestions, Recommended: core.SeverityError, Description: "Disallow identifiers from shadowing restricted names"},
		{ID: "no-unused-labels", Group: GroupSuggestions, Recommended: core.SeverityError, Fixable: true, Description: "Disallow unused labels"},
		{ID: "no-useless-catch", Group: GroupSuggestions, Recommended: core.SeverityError, Description: "Disallow unnecessary catch clauses"},
		{ID: "no-useless-escape", Group: GroupSuggestions, Recommended: core.SeverityError, Description: "Disallow unnecessary escape characters"},
		{ID: "no-with", Group: GroupSuggestions, Recommended: core.SeverityError, Description: "Disallow with statements"},
		{ID: "require-yield", Group: GroupSuggestions, Recommended: core.SeverityError, Description: "Require generator functions to contain yield"},

		// Not in the recommended set
		{ID: "no-console", Group: GroupSuggestions, Description: "Disallow the use of console"},
		{ID: "no-duplicate-imports", Group: GroupProblems, Description: "Disallow duplicate module imports"},
		{ID: "no-unused-expressions", Group: GroupSuggestions, Description: "Disallow unused expressions"},
		{ID: "prefer-const", Group: GroupSuggestions, Fixable: true, Description: "Require const declarations for variables that are never reassigned"},
		{ID: "no-var", Group: GroupSuggestions, Fixable: true, Description: "Require let or const instead of var"},
		{ID: "object-shorthand", Group: GroupSuggestions, Fixable: true, Description: "Require method and property shorthand syntax for object literals"},
		{ID: "prefer-template", Group: GroupSuggestions, Fixable: true, Description: "Require template literals instead of string concatenation"},
		{ID: "prefer-rest-params", Group: GroupSuggestions, Description: "Require rest parameters instead of arguments"},
		{ID: "prefer-spread", Group: GroupSuggestions, Description: "Require spread operators instead of .apply()"},
		{ID: "eqeqeq", Group: GroupSuggestions, Fixable: true, Description: "Require the use of === and !=="},
		{ID: "curly", Group: GroupSuggestions, Fixable: true, Stylistic: true, Description: "Enforce consistent brace style for all control statements"},
	},
}
