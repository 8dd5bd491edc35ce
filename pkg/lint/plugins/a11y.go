package plugins

import (
	"github.com/leapstack-labs/lintpreset/pkg/core"
	"github.com/leapstack-labs/lintpreset/pkg/lint"
)

// JSXA11y is the accessibility rule set for JSX markup.
var JSXA11y = &lint.RuleSet{
	ShortName:  "jsx-a11y",
	RulePrefix: "jsx-a11y",
	Meta:       lint.Meta{Name: "eslint-plugin-jsx-a11y", Version: "6.x"},
	Defs: []lint.RuleDef{
		{ID: "alt-text", Recommended: core.SeverityError, Description: "Enforce all elements that require alternative text have meaningful information"},
		{ID: "anchor-has-content", Recommended: core.SeverityError, Description: "Enforce all anchors to contain accessible content"},
		{ID: "anchor-is-valid", Recommended: core.SeverityError, Description: "Enforce all anchors are valid, navigable elements"},
		{ID: "aria-activedescendant-has-tabindex", Recommended: core.SeverityError, Description: "Enforce elements with aria-activedescendant are tabbable"},
		{ID: "aria-props", Recommended: core.SeverityError, Description: "Enforce all aria-* props are valid"},
		{ID: "aria-proptypes", Recommended: core.SeverityError, Description: "Enforce ARIA state and property values are valid"},
		{ID: "aria-role", Recommended: core.SeverityError, Description: "Enforce that elements with ARIA roles use a valid, non-abstract role"},
		{ID: "aria-unsupported-elements", Recommended: core.SeverityError, Description: "Enforce that elements that do not support ARIA roles, states, and properties do not have those attributes"},
		{ID: "autocomplete-valid", Recommended: core.SeverityError, Description: "Enforce that autocomplete attributes are used correctly"},
		{ID: "click-events-have-key-events", Recommended: core.SeverityError, Description: "Enforce a clickable non-interactive element has at least one keyboard event listener"},
		{ID: "heading-has-content", Recommended: core.SeverityError, Description: "Enforce heading elements contain accessible content"},
		{ID: "html-has-lang", Recommended: core.SeverityError, Description: "Enforce html element has lang prop"},
		{ID: "iframe-has-title", Recommended: core.SeverityError, Description: "Enforce iframe elements have a title attribute"},
		{ID: "img-redundant-alt", Recommended: core.SeverityError, Description: "Enforce img alt prop does not contain the word image, picture, or photo"},
		{ID: "interactive-supports-focus", Recommended: core.SeverityError, Description: "Enforce that elements with interactive handlers must be focusable"},
		{ID: "label-has-associated-control", Recommended: core.SeverityError, Description: "Enforce that a label tag has a text label and an associated control"},
		{ID: "media-has-caption", Recommended: core.SeverityError, Description: "Enforces that audio and video elements must have a track for captions"},
		{ID: "mouse-events-have-key-events", Recommended: core.SeverityError, Description: "Enforce that onMouseOver/onMouseOut are accompanied by onFocus/onBlur"},
		{ID: "no-access-key", Recommended: core.SeverityError, Description: "Enforce that the accessKey prop is not used on any element"},
		{ID: "no-autofocus", Recommended: core.SeverityError, Description: "Enforce autoFocus prop is not used"},
		{ID: "no-distracting-elements", Recommended: core.SeverityError, Description: "Enforce distracting elements are not used"},
		{ID: "no-interactive-element-to-noninteractive-role", Recommended: core.SeverityError, Description: "Interactive elements should not be assigned non-interactive roles"},
		{ID: "no-noninteractive-element-interactions", Recommended: core.SeverityError, Description: "Non-interactive elements should not be assigned mouse or keyboard event listeners"},
		{ID: "no-noninteractive-element-to-interactive-role", Recommended: core.SeverityError, Description: "Non-interactive elements should not be assigned interactive roles"},
		{ID: "no-noninteractive-tabindex", Recommended: core.SeverityError, Description: "tabIndex should only be declared on interactive elements"},
		{ID: "no-redundant-roles", Recommended: core.SeverityError, Description: "Enforce explicit role property is not the same as implicit/default role property on element"},
		{ID: "no-static-element-interactions", Recommended: core.SeverityError, Description: "Enforce that non-interactive, visible elements with click handlers use the role attribute"},
		{ID: "role-has-required-aria-props", Recommended: core.SeverityError, Description: "Enforce that elements with ARIA roles must have all required attributes for that role"},
		{ID: "role-supports-aria-props", Recommended: core.SeverityError, Description: "Enforce that elements with explicit or implicit roles defined contain only aria-* properties supported by that role"},
		{ID: "scope", Recommended: core.SeverityError, Description: "Enforce scope prop is only used on th elements"},
		{ID: "tabindex-no-positive", Recommended: core.SeverityError, Description: "Enforce tabIndex value is not greater than zero"},
	},
}

func init() {
	for i := range JSXA11y.Defs {
		JSXA11y.Defs[i].Group = GroupA11y
	}
}
