package core

// Rule is one capability entry in a fragment: a named check with a severity
// and an opaque options value. The core never interprets Options.
type Rule struct {
	Name     string   `json:"name" yaml:"name"`
	Severity Severity `json:"severity" yaml:"severity"`
	Options  any      `json:"options,omitempty" yaml:"options,omitempty"`
}

// Off returns a rule entry that disables name.
func Off(name string) Rule {
	return Rule{Name: name, Severity: SeverityOff}
}

// Warn returns a warn-level rule entry with optional options.
func Warn(name string, options ...any) Rule {
	return Rule{Name: name, Severity: SeverityWarn, Options: firstOption(options)}
}

// Error returns an error-level rule entry with optional options.
func Error(name string, options ...any) Rule {
	return Rule{Name: name, Severity: SeverityError, Options: firstOption(options)}
}

func firstOption(options []any) any {
	if len(options) == 0 {
		return nil
	}
	return options[0]
}

// Clone returns a copy of the rule whose Options share no mutable state
// with the receiver.
func (r Rule) Clone() Rule {
	r.Options = CloneValue(r.Options)
	return r
}

// CloneValue deep-copies the container types used in settings and rule
// options. Other values are returned as is.
func CloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return CloneMap(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = CloneValue(item)
		}
		return out
	case []string:
		return append([]string(nil), t...)
	case map[string]string:
		out := make(map[string]string, len(t))
		for k, s := range t {
			out[k] = s
		}
		return out
	default:
		return v
	}
}

// CloneMap deep-copies a settings map. A nil map stays nil.
func CloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = CloneValue(v)
	}
	return out
}
