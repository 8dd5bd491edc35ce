package preset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_Defaults(t *testing.T) {
	assert.Equal(t, DefaultFormatOptions(), Apply())
	assert.Equal(t, DefaultFormatOptions(), Apply(nil))
}

func TestApply_LastOptionWins(t *testing.T) {
	o := Apply(WithPrintWidth(100), WithPrintWidth(120))
	assert.Equal(t, 120, o.PrintWidth)

	replaced := Apply(WithPrintWidth(100), WithFormatOptions(FormatOptions{TabWidth: 8}))
	assert.Equal(t, FormatOptions{TabWidth: 8}, replaced)
}

func TestOptionsFromMap(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]any
		want  FormatOptions
	}{
		{
			name:  "empty keeps defaults",
			input: nil,
			want:  DefaultFormatOptions(),
		},
		{
			name:  "explicit false overrides true default",
			input: map[string]any{"singleQuote": false},
			want: func() FormatOptions {
				o := DefaultFormatOptions()
				o.SingleQuote = false
				return o
			}(),
		},
		{
			name:  "weakly typed numbers",
			input: map[string]any{"printWidth": "100", "tabWidth": 4.0},
			want: func() FormatOptions {
				o := DefaultFormatOptions()
				o.PrintWidth = 100
				o.TabWidth = 4
				return o
			}(),
		},
		{
			name: "aliases",
			input: map[string]any{
				"semicolons":    true,
				"lineEnding":    "crlf",
				"trailingComma": "none",
				"arrowParens":   "avoid",
			},
			want: FormatOptions{
				PrintWidth:    80,
				TabWidth:      2,
				SingleQuote:   true,
				TrailingComma: TrailingCommaNone,
				ArrowParens:   ArrowParensAvoid,
				Semicolons:    true,
				LineEnding:    LineEndingCRLF,
			},
		},
		{
			name:  "formatter spelling",
			input: map[string]any{"semi": true, "endOfLine": "lf"},
			want: func() FormatOptions {
				o := DefaultFormatOptions()
				o.Semicolons = true
				o.LineEnding = LineEndingLF
				return o
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := OptionsFromMap(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Apply(opts...))
		})
	}
}

func TestOptionsFromMap_Errors(t *testing.T) {
	_, err := OptionsFromMap(map[string]any{"printWidht": 100})
	assert.Error(t, err)

	_, err = OptionsFromMap(map[string]any{"printWidth": "wide"})
	assert.Error(t, err)
}

func TestFormatOptions_ToMap(t *testing.T) {
	m := DefaultFormatOptions().ToMap()
	assert.Equal(t, "auto", m["endOfLine"])
	assert.Equal(t, false, m["semi"])
	assert.Len(t, m, 7)
}

func TestRuleTable(t *testing.T) {
	var rt ruleTable
	rt.set(Default.Fragments()[1].Rules[:2]...)
	first := rt.list()[0]
	first.Severity = 0
	rt.set(first)

	require.Len(t, rt.list(), 2)
	assert.Equal(t, first, rt.list()[0])
}

func TestFromMap(t *testing.T) {
	cfg, err := FromMap(map[string]any{"printWidth": 120})
	require.NoError(t, err)

	r, ok := cfg.Resolve("a.ts").Rule("prettier/prettier")
	require.True(t, ok)
	assert.Equal(t, 120, r.Options.(map[string]any)["printWidth"])

	_, err = FromMap(map[string]any{"bogus": 1})
	assert.Error(t, err)
}

func TestFormatOptionsFrom(t *testing.T) {
	want := Apply(WithPrintWidth(100), WithSingleQuote(false), WithLineEnding(LineEndingLF))

	tests := []struct {
		name string
		opts any
		want FormatOptions
	}{
		{"object form", want.ToMap(), want},
		{"positional form", []any{"error", want.ToMap()}, want},
		{"decoded numbers", map[string]any{"printWidth": float64(120)}, Apply(WithPrintWidth(120))},
		{"mistyped values keep defaults", map[string]any{"tabWidth": "4", "semi": "yes"}, DefaultFormatOptions()},
		{"no options", nil, DefaultFormatOptions()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatOptionsFrom(tt.opts))
		})
	}
}

func TestOptionKeysDecode(t *testing.T) {
	values := map[string]any{
		"printWidth": 1, "tabWidth": 1, "singleQuote": true, "trailingComma": "none",
		"arrowParens": "avoid", "semi": true, "semicolons": true, "endOfLine": "lf", "lineEnding": "lf",
	}
	for _, key := range OptionKeys {
		_, err := OptionsFromMap(map[string]any{key: values[key]})
		assert.NoError(t, err, key)
	}
}
