package plugins

import (
	"github.com/leapstack-labs/lintpreset/pkg/core"
	"github.com/leapstack-labs/lintpreset/pkg/lint"
)

// React is the UI component framework rule set.
var React = &lint.RuleSet{
	ShortName:  "react",
	RulePrefix: "react",
	Meta:       lint.Meta{Name: "eslint-plugin-react", Version: "7.x"},
	Defs: []lint.RuleDef{
		{ID: "display-name", Group: GroupSuggestions, Recommended: core.SeverityError, Description: "Disallow missing displayName in a React component definition"},
		{ID: "jsx-key", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow missing key props in iterators/collection literals"},
		{ID: "jsx-no-comment-textnodes", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow comments from being inserted as text nodes"},
		{ID: "jsx-no-duplicate-props", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow duplicate properties in JSX elements"},
		{ID: "jsx-no-target-blank", Group: GroupProblems, Recommended: core.SeverityError, Fixable: true, Description: "Disallow target=\"_blank\" attribute without rel=\"noreferrer\""},
		{ID: "jsx-no-undef", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow undeclared variables in JSX"},
		{ID: "jsx-uses-react", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow React to be incorrectly marked as unused"},
		{ID: "jsx-uses-vars", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow variables used in JSX to be incorrectly marked as unused"},
		{ID: "no-children-prop", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow passing of children as props"},
		{ID: "no-danger-with-children", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow when a DOM element is using both children and dangerouslySetInnerHTML"},
		{ID: "no-deprecated", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow usage of deprecated methods"},
		{ID: "no-direct-mutation-state", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow direct mutation of this.state"},
		{ID: "no-find-dom-node", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow usage of findDOMNode"},
		{ID: "no-is-mounted", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow usage of isMounted"},
		{ID: "no-render-return-value", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow usage of the return value of ReactDOM.render"},
		{ID: "no-string-refs", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow using string references"},
		{ID: "no-unescaped-entities", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow unescaped HTML entities from appearing in markup"},
		{ID: "no-unknown-property", Group: GroupProblems, Recommended: core.SeverityError, Fixable: true, Description: "Disallow usage of unknown DOM property"},
		{ID: "prop-types", Group: GroupSuggestions, Recommended: core.SeverityError, Description: "Disallow missing props validation in a React component definition"},
		{ID: "react-in-jsx-scope", Group: GroupProblems, Recommended: core.SeverityError, Description: "Disallow missing React when using JSX"},
		{ID: "require-render-return", Group: GroupProblems, Recommended: core.SeverityError, Description: "Enforce ES5 or ES6 class for returning value in render function"},

		{ID: "self-closing-comp", Group: GroupSuggestions, Fixable: true, Description: "Disallow extra closing tags for components without children"},
		{ID: "no-unsafe", Group: GroupSuggestions, Description: "Disallow usage of unsafe lifecycle methods"},

		// Layout rules owned by the formatter.
		{ID: "jsx-closing-bracket-location", Group: GroupLayout, Fixable: true, Stylistic: true, Description: "Enforce closing bracket location in JSX"},
		{ID: "jsx-curly-spacing", Group: GroupLayout, Fixable: true, Stylistic: true, Description: "Enforce or disallow spaces inside of curly braces in JSX attributes and expressions"},
		{ID: "jsx-indent", Group: GroupLayout, Fixable: true, Stylistic: true, Description: "Enforce JSX indentation"},
		{ID: "jsx-indent-props", Group: GroupLayout, Fixable: true, Stylistic: true, Description: "Enforce props indentation in JSX"},
		{ID: "jsx-one-expression-per-line", Group: GroupLayout, Fixable: true, Stylistic: true, Description: "Require one JSX element per line"},
		{ID: "jsx-wrap-multilines", Group: GroupLayout, Fixable: true, Stylistic: true, Description: "Disallow missing parentheses around multiline JSX"},
	},
}
