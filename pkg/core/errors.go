package core

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a class of structural configuration defect.
type ErrorCode string

// Structural error codes.
const (
	CodeDuplicateRule  ErrorCode = "DUPLICATE_RULE"
	CodeInvalidPattern ErrorCode = "INVALID_PATTERN"
	CodeEmptyPattern   ErrorCode = "EMPTY_PATTERN"
	CodeEmptyConfig    ErrorCode = "EMPTY_CONFIG"
)

// Sentinels for errors.Is checks against a StructuralError's code.
var (
	ErrDuplicateRule  = &StructuralError{Code: CodeDuplicateRule}
	ErrInvalidPattern = &StructuralError{Code: CodeInvalidPattern}
	ErrEmptyPattern   = &StructuralError{Code: CodeEmptyPattern}
	ErrEmptyConfig    = &StructuralError{Code: CodeEmptyConfig}
)

// StructuralError reports a fragment that violates a data-model invariant.
// It is returned by the merger and never auto-corrected.
type StructuralError struct {
	Code     ErrorCode
	Fragment string // fragment name, may be empty
	Index    int    // position of the fragment in the sequence; -1 for the whole config
	Key      string // offending rule name or pattern
	Message  string
}

// Error implements the error interface.
func (e *StructuralError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	where := fmt.Sprintf("fragment %d", e.Index)
	if e.Fragment != "" {
		where = fmt.Sprintf("fragment %d (%s)", e.Index, e.Fragment)
	}
	if e.Key != "" {
		return fmt.Sprintf("[%s] %s: %s: %q", e.Code, where, e.Message, e.Key)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, where, e.Message)
}

// Is matches any StructuralError carrying the same code.
func (e *StructuralError) Is(target error) bool {
	var t *StructuralError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}
