package flatconfig

import "github.com/leapstack-labs/lintpreset/pkg/glob"

// Matches reports whether fragment f applies to path on its own terms: the
// path is selected by Files (or Files is empty) and not excluded by Ignores.
//
// path is normalised to a forward-slash, root-relative form first. Paths
// outside the root and fragments with malformed patterns match nothing.
// Global ignores of an enclosing Config are not consulted; use
// Config.Resolve for the full decision.
func Matches(path string, f Fragment) bool {
	m, errs := compile(0, f)
	if len(errs) > 0 {
		return false
	}
	return m.matches(glob.Normalize("", path))
}
