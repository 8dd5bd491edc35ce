package core

import (
	"fmt"
	"strconv"
	"strings"
)

// =============================================================================
// Severity
// =============================================================================

// Severity is the reported strength of a rule's findings.
// The numeric values match the conventional 0/1/2 rule levels.
type Severity int

// Severity levels for rules.
const (
	// SeverityOff disables the rule.
	SeverityOff Severity = iota
	// SeverityWarn reports findings without failing the run.
	SeverityWarn
	// SeverityError reports findings and fails the run.
	SeverityError
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityOff:
		return "off"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Enabled reports whether the rule produces findings at all.
func (s Severity) Enabled() bool {
	return s == SeverityWarn || s == SeverityError
}

// ParseSeverity converts a string to a Severity value.
// Accepts the names and the numeric forms ("0", "1", "2").
// Returns the severity and true if valid, or SeverityOff and false if invalid.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "0":
		return SeverityOff, true
	case "warn", "warning", "1":
		return SeverityWarn, true
	case "error", "2":
		return SeverityError, true
	default:
		return SeverityOff, false
	}
}

// MarshalText implements encoding.TextMarshaler so severities render as names
// in JSON and YAML output.
func (s Severity) MarshalText() ([]byte, error) {
	if s < SeverityOff || s > SeverityError {
		return nil, fmt.Errorf("invalid severity %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	sev, ok := ParseSeverity(string(text))
	if !ok {
		return fmt.Errorf("invalid severity %s", strconv.Quote(string(text)))
	}
	*s = sev
	return nil
}
