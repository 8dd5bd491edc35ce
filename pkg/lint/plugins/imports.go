package plugins

import (
	"github.com/leapstack-labs/lintpreset/pkg/core"
	"github.com/leapstack-labs/lintpreset/pkg/lint"
)

// Import checks module import statements.
var Import = &lint.RuleSet{
	ShortName:  "import",
	RulePrefix: "import",
	Meta:       lint.Meta{Name: "eslint-plugin-import", Version: "2.x"},
	Defs: []lint.RuleDef{
		{ID: "no-unresolved", Group: GroupProblems, Recommended: core.SeverityError, Description: "Ensure imports point to a file/module that can be resolved"},
		{ID: "named", Group: GroupProblems, Recommended: core.SeverityError, Description: "Ensure named imports correspond to a named export in the remote file"},
		{ID: "namespace", Group: GroupProblems, Recommended: core.SeverityError, Description: "Ensure imported namespaces contain dereferenced properties as they are dereferenced"},
		{ID: "default", Group: GroupProblems, Recommended: core.SeverityError, Description: "Ensure a default export is present, given a default import"},
		{ID: "export", Group: GroupProblems, Recommended: core.SeverityError, Description: "Forbid any invalid exports"},
		{ID: "no-named-as-default", Group: GroupSuggestions, Recommended: core.SeverityWarn, Description: "Forbid use of exported name as identifier of default export"},
		{ID: "no-named-as-default-member", Group: GroupSuggestions, Recommended: core.SeverityWarn, Description: "Forbid use of exported name as property of default export"},
		{ID: "no-duplicates", Group: GroupSuggestions, Recommended: core.SeverityWarn, Fixable: true, Description: "Forbid repeated import of the same module in multiple places"},
		{ID: "order", Group: GroupSuggestions, Fixable: true, Description: "Enforce a convention in module import order",
			Options: map[string]any{
				"groups":           []any{"builtin", "external", "internal", "parent", "sibling", "index"},
				"newlines-between": "always",
			}},
	},
}
