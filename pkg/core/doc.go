// Package core defines the shared language of the lint preset.
//
// This package contains:
//   - Severity levels (off, warn, error)
//   - Rule, the capability entry carried by configuration fragments
//   - StructuralError, the coded error returned for invariant violations
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
