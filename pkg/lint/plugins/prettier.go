package plugins

import (
	"github.com/leapstack-labs/lintpreset/pkg/core"
	"github.com/leapstack-labs/lintpreset/pkg/lint"
)

// Prettier bridges the code formatter into the lint pipeline: formatting
// differences are reported as findings of a single rule.
var Prettier = &lint.RuleSet{
	ShortName:  "prettier",
	RulePrefix: "prettier",
	Meta:       lint.Meta{Name: "eslint-plugin-prettier", Version: "5.x"},
	Defs: []lint.RuleDef{
		{ID: "prettier", Group: GroupLayout, Recommended: core.SeverityError, Fixable: true, Description: "Report differences from the formatter's output"},
	},
}

// PrettierRule is the qualified name of the formatter rule.
const PrettierRule = "prettier/prettier"
