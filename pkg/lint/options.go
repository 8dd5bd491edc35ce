package lint

// OptionsMap returns the object form of a rule's options.
// Rules configured as [severity, {...}] carry a map; anything else yields nil.
func OptionsMap(opts any) map[string]any {
	switch m := opts.(type) {
	case map[string]any:
		return m
	case []any:
		// Positional form: the first object wins.
		for _, item := range m {
			if obj, ok := item.(map[string]any); ok {
				return obj
			}
		}
	}
	return nil
}

// GetOption extracts a typed option with a default value.
func GetOption[T any](opts map[string]any, key string, defaultVal T) T {
	v, ok := opts[key]
	if !ok {
		return defaultVal
	}
	if typed, ok := v.(T); ok {
		return typed
	}
	return defaultVal
}

// GetIntOption extracts an int option, handling float64 from JSON/YAML.
func GetIntOption(opts map[string]any, key string, defaultVal int) int {
	switch n := opts[key].(type) {
	case int:
		return n
	case int64:
		return int(n)
	case uint64:
		return int(n)
	case float64:
		return int(n)
	default:
		return defaultVal
	}
}

// GetStringOption extracts a string option. Named string types are accepted
// through their underlying value when they implement fmt.Stringer.
func GetStringOption(opts map[string]any, key string, defaultVal string) string {
	switch s := opts[key].(type) {
	case string:
		return s
	case interface{ String() string }:
		return s.String()
	default:
		return defaultVal
	}
}

// GetBoolOption extracts a bool option.
func GetBoolOption(opts map[string]any, key string, defaultVal bool) bool {
	return GetOption(opts, key, defaultVal)
}
