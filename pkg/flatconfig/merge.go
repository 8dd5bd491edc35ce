package flatconfig

import (
	"errors"

	"github.com/leapstack-labs/lintpreset/pkg/core"
	"github.com/leapstack-labs/lintpreset/pkg/glob"
)

// Merge validates fragments and concatenates them into a Config.
//
// The output holds the same fragments in the same order; nothing is
// collapsed. Every structural defect of every fragment is reported, joined
// into one error. The returned Config owns deep copies of its input.
func Merge(fragments ...Fragment) (Config, error) {
	if len(fragments) == 0 {
		return Config{}, &core.StructuralError{
			Code:    core.CodeEmptyConfig,
			Index:   -1,
			Message: "no fragments to merge",
		}
	}

	var errs []error
	c := Config{
		fragments: make([]Fragment, 0, len(fragments)),
		compiled:  make([]matcher, 0, len(fragments)),
	}
	for i, f := range fragments {
		m, ferrs := compile(i, f)
		if len(ferrs) > 0 {
			errs = append(errs, ferrs...)
			continue
		}
		c.fragments = append(c.fragments, f.Clone())
		c.compiled = append(c.compiled, m)
		if m.global {
			c.global = c.global.Append(m.ignores)
		}
	}
	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}
	return c, nil
}

// matcher is the compiled form of a fragment's patterns.
type matcher struct {
	files   glob.List
	ignores glob.List
	global  bool
}

func compile(index int, f Fragment) (matcher, []error) {
	var errs []error

	seen := make(map[string]bool, len(f.Rules))
	for _, r := range f.Rules {
		if seen[r.Name] {
			errs = append(errs, &core.StructuralError{
				Code:     core.CodeDuplicateRule,
				Fragment: f.Name,
				Index:    index,
				Key:      r.Name,
				Message:  "rule declared more than once",
			})
			continue
		}
		seen[r.Name] = true
	}

	files, ferrs := compileList(index, f.Name, "files", f.Files)
	errs = append(errs, ferrs...)
	ignores, ierrs := compileList(index, f.Name, "ignores", f.Ignores)
	errs = append(errs, ierrs...)

	return matcher{files: files, ignores: ignores, global: f.IsGlobalIgnore()}, errs
}

func compileList(index int, fragment, field string, raw []string) (glob.List, []error) {
	var errs []error
	valid := make([]string, 0, len(raw))
	for _, r := range raw {
		if err := glob.Validate(r); err != nil {
			code := core.CodeInvalidPattern
			if errors.Is(err, glob.ErrEmptyPattern) {
				code = core.CodeEmptyPattern
			}
			errs = append(errs, &core.StructuralError{
				Code:     code,
				Fragment: fragment,
				Index:    index,
				Key:      r,
				Message:  field + ": " + err.Error(),
			})
			continue
		}
		valid = append(valid, r)
	}
	if len(errs) > 0 {
		return glob.List{}, errs
	}
	return glob.MustList(valid...), nil
}

// matches applies the fragment's own patterns to a normalised path.
func (m matcher) matches(name string) bool {
	if name == "" || glob.Escapes(name) {
		return false
	}
	if m.files.Len() > 0 && !m.files.Selects(name) {
		return false
	}
	return !m.ignores.Ignored(name)
}
