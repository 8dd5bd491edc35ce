package plugins

import (
	"github.com/leapstack-labs/lintpreset/pkg/core"
	"github.com/leapstack-labs/lintpreset/pkg/lint"
)

// ReactHooks checks the hooks usage contract.
var ReactHooks = &lint.RuleSet{
	ShortName:  "react-hooks",
	RulePrefix: "react-hooks",
	Meta:       lint.Meta{Name: "eslint-plugin-react-hooks", Version: "5.x"},
	Defs: []lint.RuleDef{
		{ID: "rules-of-hooks", Group: GroupHooks, Recommended: core.SeverityError, Description: "Enforce the Rules of Hooks"},
		{ID: "exhaustive-deps", Group: GroupHooks, Recommended: core.SeverityWarn, Fixable: true, Description: "Verify the list of dependencies for Hooks like useEffect and similar"},
	},
}

// ReactHooksExtra adds hook-usage suggestions beyond the official set.
var ReactHooksExtra = &lint.RuleSet{
	ShortName:  "react-hooks-extra",
	RulePrefix: "react-hooks-extra",
	Meta:       lint.Meta{Name: "eslint-plugin-react-hooks-extra", Version: "1.x"},
	Defs: []lint.RuleDef{
		{ID: "no-direct-set-state-in-use-effect", Group: GroupHooks, Recommended: core.SeverityWarn, Description: "Disallow direct calls to the set function of useState in useEffect"},
		{ID: "no-unnecessary-use-callback", Group: GroupHooks, Description: "Disallow unnecessary usage of useCallback"},
		{ID: "no-unnecessary-use-memo", Group: GroupHooks, Description: "Disallow unnecessary usage of useMemo"},
		{ID: "prefer-use-state-lazy-initialization", Group: GroupHooks, Description: "Enforce function calls in useState initialisers to be lazy"},
	},
}
