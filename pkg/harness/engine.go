package harness

import (
	"context"

	"github.com/leapstack-labs/lintpreset/pkg/core"
	"github.com/leapstack-labs/lintpreset/pkg/flatconfig"
)

// Finding is one diagnostic reported by an engine.
type Finding struct {
	Rule     string        `json:"rule" yaml:"rule"`
	Severity core.Severity `json:"severity" yaml:"severity"`
	Message  string        `json:"message" yaml:"message"`
	Line     int           `json:"line,omitempty" yaml:"line,omitempty"`
	Column   int           `json:"column,omitempty" yaml:"column,omitempty"`
}

// Engine analyses a source snippet under an effective configuration.
type Engine interface {
	Lint(ctx context.Context, path string, src []byte, eff flatconfig.EffectiveConfig) ([]Finding, error)
}

// EngineFunc adapts a function to Engine.
type EngineFunc func(ctx context.Context, path string, src []byte, eff flatconfig.EffectiveConfig) ([]Finding, error)

// Lint calls f.
func (f EngineFunc) Lint(ctx context.Context, path string, src []byte, eff flatconfig.EffectiveConfig) ([]Finding, error) {
	return f(ctx, path, src, eff)
}

// hasErrors reports whether any finding fails a run.
func hasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == core.SeverityError {
			return true
		}
	}
	return false
}
