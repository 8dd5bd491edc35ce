package core_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/lintpreset/pkg/core"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input string
		want  core.Severity
		ok    bool
	}{
		{"off", core.SeverityOff, true},
		{"0", core.SeverityOff, true},
		{"warn", core.SeverityWarn, true},
		{"warning", core.SeverityWarn, true},
		{"1", core.SeverityWarn, true},
		{"error", core.SeverityError, true},
		{"ERROR", core.SeverityError, true},
		{"2", core.SeverityError, true},
		{"fatal", core.SeverityOff, false},
		{"", core.SeverityOff, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := core.ParseSeverity(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeverity_Text(t *testing.T) {
	out, err := core.SeverityWarn.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "warn", string(out))

	var s core.Severity
	require.NoError(t, s.UnmarshalText([]byte("error")))
	assert.Equal(t, core.SeverityError, s)
	assert.True(t, s.Enabled())
	assert.False(t, core.SeverityOff.Enabled())

	assert.Error(t, s.UnmarshalText([]byte("loud")))
}

func TestRuleHelpers(t *testing.T) {
	assert.Equal(t, core.Rule{Name: "no-var", Severity: core.SeverityOff}, core.Off("no-var"))
	assert.Equal(t, core.Rule{Name: "no-console", Severity: core.SeverityWarn}, core.Warn("no-console"))

	r := core.Error("import/order", map[string]any{"newlines-between": "always"})
	assert.Equal(t, core.SeverityError, r.Severity)
	assert.Equal(t, map[string]any{"newlines-between": "always"}, r.Options)
}

func TestRule_CloneIsDeep(t *testing.T) {
	orig := core.Warn("jsx-a11y/alt-text", map[string]any{
		"elements": []any{"img"},
		"img":      []string{"Image"},
	})

	clone := orig.Clone()
	opts := clone.Options.(map[string]any)
	opts["elements"].([]any)[0] = "object"
	opts["img"].([]string)[0] = "Picture"
	opts["extra"] = true

	origOpts := orig.Options.(map[string]any)
	assert.Equal(t, []any{"img"}, origOpts["elements"])
	assert.Equal(t, []string{"Image"}, origOpts["img"])
	assert.NotContains(t, origOpts, "extra")
}

func TestCloneMap_Nil(t *testing.T) {
	assert.Nil(t, core.CloneMap(nil))
}

func TestStructuralError(t *testing.T) {
	err := &core.StructuralError{
		Code:     core.CodeDuplicateRule,
		Fragment: "react",
		Index:    4,
		Key:      "react/jsx-key",
		Message:  "rule declared more than once",
	}

	assert.Equal(t, `[DUPLICATE_RULE] fragment 4 (react): rule declared more than once: "react/jsx-key"`, err.Error())
	assert.ErrorIs(t, err, core.ErrDuplicateRule)
	assert.NotErrorIs(t, err, core.ErrInvalidPattern)

	wrapped := fmt.Errorf("build preset: %w", errors.Join(err, &core.StructuralError{Code: core.CodeEmptyPattern, Index: 0}))
	assert.ErrorIs(t, wrapped, core.ErrDuplicateRule)
	assert.ErrorIs(t, wrapped, core.ErrEmptyPattern)

	var se *core.StructuralError
	require.ErrorAs(t, wrapped, &se)
	assert.Equal(t, "react", se.Fragment)

	whole := &core.StructuralError{Code: core.CodeEmptyConfig, Index: -1, Message: "no fragments to merge"}
	assert.Equal(t, "[EMPTY_CONFIG] no fragments to merge", whole.Error())
}
