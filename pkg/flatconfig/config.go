package flatconfig

import (
	"sort"

	"github.com/leapstack-labs/lintpreset/pkg/glob"
)

// Config is a merged configuration: an ordered, validated sequence of
// fragments. Build one with Merge. A Config is immutable and safe for
// concurrent use.
type Config struct {
	// BasePath is the root paths are made relative to. Empty means paths are
	// already root-relative.
	BasePath string

	fragments []Fragment
	compiled  []matcher
	global    glob.List
}

// Len returns the number of fragments.
func (c Config) Len() int { return len(c.fragments) }

// Fragments returns deep copies of the fragments in order.
func (c Config) Fragments() []Fragment {
	out := make([]Fragment, len(c.fragments))
	for i, f := range c.fragments {
		out[i] = f.Clone()
	}
	return out
}

// Fragment returns a copy of the first fragment with the given name.
func (c Config) Fragment(name string) (Fragment, bool) {
	for _, f := range c.fragments {
		if f.Name == name {
			return f.Clone(), true
		}
	}
	return Fragment{}, false
}

// Names returns the fragment names in order.
func (c Config) Names() []string {
	out := make([]string, len(c.fragments))
	for i, f := range c.fragments {
		out[i] = f.Name
	}
	return out
}

// Clone returns an independent deep copy.
func (c Config) Clone() Config {
	return Config{
		BasePath:  c.BasePath,
		fragments: c.Fragments(),
		compiled:  append([]matcher(nil), c.compiled...),
		global:    c.global,
	}
}

// With returns a new Config with extra fragments appended. The receiver is
// unchanged.
func (c Config) With(fragments ...Fragment) (Config, error) {
	all := make([]Fragment, 0, len(c.fragments)+len(fragments))
	all = append(all, c.fragments...)
	all = append(all, fragments...)
	merged, err := Merge(all...)
	if err != nil {
		return Config{}, err
	}
	merged.BasePath = c.BasePath
	return merged, nil
}

// WithBasePath returns a copy of the Config resolving paths against root.
func (c Config) WithBasePath(root string) Config {
	out := c.Clone()
	out.BasePath = root
	return out
}

// GlobalIgnores returns the combined global ignore patterns in declaration order.
func (c Config) GlobalIgnores() []string {
	return c.global.Patterns()
}

// IsIgnored reports whether path is excluded by the global ignores.
// Paths outside the base path are always ignored.
func (c Config) IsIgnored(path string) bool {
	return c.ignored(glob.Normalize(c.BasePath, path))
}

// IgnoredBy returns the global ignore pattern deciding path's verdict, or ""
// when none applies.
func (c Config) IgnoredBy(path string) string {
	name := glob.Normalize(c.BasePath, path)
	if glob.Escapes(name) {
		return ".."
	}
	return c.global.Explain(name)
}

func (c Config) ignored(name string) bool {
	if glob.Escapes(name) {
		return true
	}
	return c.global.Ignored(name)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
