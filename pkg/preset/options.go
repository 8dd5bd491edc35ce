package preset

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/leapstack-labs/lintpreset/pkg/lint"
)

// TrailingComma controls where the formatter prints trailing commas.
type TrailingComma string

// Trailing comma styles.
const (
	TrailingCommaAll  TrailingComma = "all"
	TrailingCommaES5  TrailingComma = "es5"
	TrailingCommaNone TrailingComma = "none"
)

// ArrowParens controls parentheses around a sole arrow function parameter.
type ArrowParens string

// Arrow parameter styles.
const (
	ArrowParensAlways ArrowParens = "always"
	ArrowParensAvoid  ArrowParens = "avoid"
)

// LineEnding is the line terminator the formatter enforces.
type LineEnding string

// Line endings.
const (
	LineEndingAuto LineEnding = "auto"
	LineEndingLF   LineEnding = "lf"
	LineEndingCRLF LineEnding = "crlf"
	LineEndingCR   LineEnding = "cr"
)

// FormatOptions are the formatting parameters threaded into the formatter rule.
// Values are passed through as given; the formatter validates them.
type FormatOptions struct {
	PrintWidth    int           `json:"printWidth" yaml:"printWidth" mapstructure:"printWidth"`
	TabWidth      int           `json:"tabWidth" yaml:"tabWidth" mapstructure:"tabWidth"`
	SingleQuote   bool          `json:"singleQuote" yaml:"singleQuote" mapstructure:"singleQuote"`
	TrailingComma TrailingComma `json:"trailingComma" yaml:"trailingComma" mapstructure:"trailingComma"`
	ArrowParens   ArrowParens   `json:"arrowParens" yaml:"arrowParens" mapstructure:"arrowParens"`
	Semicolons    bool          `json:"semi" yaml:"semi" mapstructure:"semi"`
	LineEnding    LineEnding    `json:"endOfLine" yaml:"endOfLine" mapstructure:"endOfLine"`
}

// DefaultFormatOptions returns the options the default configuration uses.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{
		PrintWidth:    80,
		TabWidth:      2,
		SingleQuote:   true,
		TrailingComma: TrailingCommaAll,
		ArrowParens:   ArrowParensAlways,
		Semicolons:    false,
		LineEnding:    LineEndingAuto,
	}
}

// ToMap returns the options object of the formatter rule.
func (o FormatOptions) ToMap() map[string]any {
	return map[string]any{
		"printWidth":    o.PrintWidth,
		"tabWidth":      o.TabWidth,
		"singleQuote":   o.SingleQuote,
		"trailingComma": string(o.TrailingComma),
		"arrowParens":   string(o.ArrowParens),
		"semi":          o.Semicolons,
		"endOfLine":     string(o.LineEnding),
	}
}

// Option overrides one or more formatting options.
type Option func(*FormatOptions)

// WithPrintWidth sets the line length the formatter wraps at.
func WithPrintWidth(n int) Option {
	return func(o *FormatOptions) { o.PrintWidth = n }
}

// WithTabWidth sets the number of spaces per indentation level.
func WithTabWidth(n int) Option {
	return func(o *FormatOptions) { o.TabWidth = n }
}

// WithSingleQuote selects single (true) or double (false) quotes.
func WithSingleQuote(single bool) Option {
	return func(o *FormatOptions) { o.SingleQuote = single }
}

// WithTrailingComma sets the trailing comma style.
func WithTrailingComma(tc TrailingComma) Option {
	return func(o *FormatOptions) { o.TrailingComma = tc }
}

// WithArrowParens sets the arrow parameter style.
func WithArrowParens(ap ArrowParens) Option {
	return func(o *FormatOptions) { o.ArrowParens = ap }
}

// WithSemicolons turns statement-terminating semicolons on or off.
func WithSemicolons(semi bool) Option {
	return func(o *FormatOptions) { o.Semicolons = semi }
}

// WithLineEnding sets the enforced line ending.
func WithLineEnding(le LineEnding) Option {
	return func(o *FormatOptions) { o.LineEnding = le }
}

// WithFormatOptions replaces all options at once.
func WithFormatOptions(opts FormatOptions) Option {
	return func(o *FormatOptions) { *o = opts }
}

// Apply returns the defaults with opts applied in order.
func Apply(opts ...Option) FormatOptions {
	o := DefaultFormatOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// OptionKeys are the keys OptionsFromMap accepts, spelled as in a config file.
var OptionKeys = []string{
	"printWidth",
	"tabWidth",
	"singleQuote",
	"trailingComma",
	"arrowParens",
	"semi",
	"semicolons",
	"endOfLine",
	"lineEnding",
}

// FormatOptionsFrom reads the options of a resolved formatter rule. Keys that
// are missing or of the wrong type keep their default.
func FormatOptionsFrom(ruleOptions any) FormatOptions {
	m := lint.OptionsMap(ruleOptions)
	d := DefaultFormatOptions()
	return FormatOptions{
		PrintWidth:    lint.GetIntOption(m, "printWidth", d.PrintWidth),
		TabWidth:      lint.GetIntOption(m, "tabWidth", d.TabWidth),
		SingleQuote:   lint.GetBoolOption(m, "singleQuote", d.SingleQuote),
		TrailingComma: TrailingComma(lint.GetStringOption(m, "trailingComma", string(d.TrailingComma))),
		ArrowParens:   ArrowParens(lint.GetStringOption(m, "arrowParens", string(d.ArrowParens))),
		Semicolons:    lint.GetBoolOption(m, "semi", d.Semicolons),
		LineEnding:    LineEnding(lint.GetStringOption(m, "endOfLine", string(d.LineEnding))),
	}
}

// optionsPatch is the boundary form of the options object. Only keys present
// in the input end up non-nil.
type optionsPatch struct {
	PrintWidth    *int    `mapstructure:"printWidth"`
	TabWidth      *int    `mapstructure:"tabWidth"`
	SingleQuote   *bool   `mapstructure:"singleQuote"`
	TrailingComma *string `mapstructure:"trailingComma"`
	ArrowParens   *string `mapstructure:"arrowParens"`
	Semi          *bool   `mapstructure:"semi"`
	Semicolons    *bool   `mapstructure:"semicolons"`
	EndOfLine     *string `mapstructure:"endOfLine"`
	LineEnding    *string `mapstructure:"lineEnding"`
}

// OptionsFromMap decodes an options object such as the "format" section of a
// config file. Only keys present in m become Options, so the defaults stay in
// place for everything else. Unknown keys are an error.
func OptionsFromMap(m map[string]any) ([]Option, error) {
	if len(m) == 0 {
		return nil, nil
	}

	var patch optionsPatch
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &patch,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create options decoder: %w", err)
	}
	if err := dec.Decode(m); err != nil {
		return nil, fmt.Errorf("failed to decode format options: %w", err)
	}

	var opts []Option
	if patch.PrintWidth != nil {
		opts = append(opts, WithPrintWidth(*patch.PrintWidth))
	}
	if patch.TabWidth != nil {
		opts = append(opts, WithTabWidth(*patch.TabWidth))
	}
	if patch.SingleQuote != nil {
		opts = append(opts, WithSingleQuote(*patch.SingleQuote))
	}
	if patch.TrailingComma != nil {
		opts = append(opts, WithTrailingComma(TrailingComma(*patch.TrailingComma)))
	}
	if patch.ArrowParens != nil {
		opts = append(opts, WithArrowParens(ArrowParens(*patch.ArrowParens)))
	}
	if patch.Semi != nil {
		opts = append(opts, WithSemicolons(*patch.Semi))
	}
	if patch.Semicolons != nil {
		opts = append(opts, WithSemicolons(*patch.Semicolons))
	}
	if patch.EndOfLine != nil {
		opts = append(opts, WithLineEnding(LineEnding(*patch.EndOfLine)))
	}
	if patch.LineEnding != nil {
		opts = append(opts, WithLineEnding(LineEnding(*patch.LineEnding)))
	}
	return opts, nil
}
