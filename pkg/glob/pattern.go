package glob

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Pattern validation errors.
var (
	ErrEmptyPattern = errors.New("empty pattern")
	ErrBackslash    = errors.New("backslash in pattern")
	ErrSyntax       = errors.New("malformed pattern")
)

// Pattern is a compiled glob, optionally negated.
type Pattern struct {
	raw     string
	expr    string
	negated bool
}

// Compile parses raw into a Pattern.
func Compile(raw string) (Pattern, error) {
	expr := raw
	negated := false
	if strings.HasPrefix(expr, "!") {
		negated = true
		expr = expr[1:]
	}
	// Patterns are always root-relative; a leading slash only anchors.
	expr = strings.TrimPrefix(expr, "/")

	switch {
	case expr == "":
		return Pattern{}, fmt.Errorf("%w: %q", ErrEmptyPattern, raw)
	case strings.Contains(expr, `\`):
		return Pattern{}, fmt.Errorf("%w: %q", ErrBackslash, raw)
	case !doublestar.ValidatePattern(expr):
		return Pattern{}, fmt.Errorf("%w: %q", ErrSyntax, raw)
	}
	return Pattern{raw: raw, expr: expr, negated: negated}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(raw string) Pattern {
	p, err := Compile(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// Validate reports whether raw is a well-formed pattern.
func Validate(raw string) error {
	_, err := Compile(raw)
	return err
}

// String returns the pattern as written.
func (p Pattern) String() string { return p.raw }

// Negated reports whether the pattern carries a leading "!".
func (p Pattern) Negated() bool { return p.negated }

// Match reports whether the normalised path matches the pattern body.
// Negation does not invert the result; callers decide what a negated match means.
func (p Pattern) Match(name string) bool {
	if p.expr == "" || name == "" {
		return false
	}
	ok, err := doublestar.Match(p.expr, name)
	return err == nil && ok
}

// MatchAny reports whether name matches at least one of patterns.
func MatchAny(patterns []Pattern, name string) bool {
	for _, p := range patterns {
		if p.Match(name) {
			return true
		}
	}
	return false
}

// Normalize converts p into the form patterns are matched against: a
// cleaned, forward-slash path relative to root. Absolute paths are made
// relative to root when root is set. The root itself normalises to "".
func Normalize(root, p string) string {
	if p == "" {
		return ""
	}
	if root != "" && filepath.IsAbs(p) {
		if rel, err := filepath.Rel(root, p); err == nil {
			p = rel
		}
	}
	p = strings.ReplaceAll(filepath.ToSlash(p), `\`, "/")
	p = path.Clean(p)
	if p == "." {
		return ""
	}
	return strings.TrimSuffix(p, "/")
}

// Escapes reports whether a normalised path points outside the root.
func Escapes(name string) bool {
	return name == ".." || strings.HasPrefix(name, "../")
}
