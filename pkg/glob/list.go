package glob

import "strings"

// List is an ordered, negation-aware ignore list.
// The zero value ignores nothing.
type List struct {
	patterns []Pattern
}

// NewList compiles raw patterns in order. The first invalid pattern aborts.
func NewList(raw ...string) (List, error) {
	patterns := make([]Pattern, 0, len(raw))
	for _, r := range raw {
		p, err := Compile(r)
		if err != nil {
			return List{}, err
		}
		patterns = append(patterns, p)
	}
	return List{patterns: patterns}, nil
}

// MustList is like NewList but panics on error.
func MustList(raw ...string) List {
	l, err := NewList(raw...)
	if err != nil {
		panic(err)
	}
	return l
}

// Append returns a new list with other's patterns after l's.
func (l List) Append(other List) List {
	patterns := make([]Pattern, 0, len(l.patterns)+len(other.patterns))
	patterns = append(patterns, l.patterns...)
	patterns = append(patterns, other.patterns...)
	return List{patterns: patterns}
}

// Len returns the number of patterns.
func (l List) Len() int { return len(l.patterns) }

// Patterns returns the patterns as written.
func (l List) Patterns() []string {
	out := make([]string, len(l.patterns))
	for i, p := range l.patterns {
		out[i] = p.raw
	}
	return out
}

// decide returns the verdict of the last pattern matching name exactly,
// without looking at ancestors. matched is false when no pattern applies.
func (l List) decide(name string) (ignored, matched bool) {
	for i := len(l.patterns) - 1; i >= 0; i-- {
		if l.patterns[i].Match(name) {
			return !l.patterns[i].negated, true
		}
	}
	return false, false
}

// Selects reports whether the last pattern matching name exactly is a
// positive one. Ancestors are not consulted; this is the rule for inclusion
// lists, where "!" carves exceptions out of earlier patterns.
func (l List) Selects(name string) bool {
	v, ok := l.decide(name)
	return ok && v
}

// Ignored reports whether the normalised path is excluded by the list.
//
// The verdict is computed for every ancestor directory first and then for
// the path itself; each level that has a matching pattern replaces the
// inherited verdict.
func (l List) Ignored(name string) bool {
	if name == "" || len(l.patterns) == 0 {
		return false
	}
	ignored := false
	for i := 0; i <= len(name); i++ {
		if i < len(name) && name[i] != '/' {
			continue
		}
		if v, ok := l.decide(name[:i]); ok {
			ignored = v
		}
	}
	return ignored
}

// Explain returns the pattern that produced the verdict for name, or "" when
// no pattern applies at any level.
func (l List) Explain(name string) string {
	var last string
	segs := strings.Split(name, "/")
	for i := range segs {
		prefix := strings.Join(segs[:i+1], "/")
		for j := len(l.patterns) - 1; j >= 0; j-- {
			if l.patterns[j].Match(prefix) {
				last = l.patterns[j].raw
				break
			}
		}
	}
	return last
}
