package preset

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/leapstack-labs/lintpreset/pkg/flatconfig"
)

// Default is the configuration built with DefaultFormatOptions.
// A structural defect in the shipped fragments panics at package init.
var Default = MustCreate()

// built holds configurations per option set. Callers always receive clones.
var built = newCache(64)

func newCache(size int) *lru.Cache[FormatOptions, flatconfig.Config] {
	cache, err := lru.New[FormatOptions, flatconfig.Config](size)
	if err != nil {
		panic(fmt.Sprintf("preset: create cache: %v", err))
	}
	return cache
}

// CreateConfiguration builds the configuration with opts layered over the
// defaults, the caller winning per key. Every call returns an independent
// Config.
func CreateConfiguration(opts ...Option) (flatconfig.Config, error) {
	return ForOptions(Apply(opts...))
}

// ForOptions builds the configuration for a complete option set.
func ForOptions(o FormatOptions) (flatconfig.Config, error) {
	if cfg, ok := built.Get(o); ok {
		return cfg.Clone(), nil
	}

	cfg, err := flatconfig.Merge(fragments(o)...)
	if err != nil {
		return flatconfig.Config{}, fmt.Errorf("build preset configuration: %w", err)
	}
	built.Add(o, cfg)
	return cfg.Clone(), nil
}

// MustCreate is like CreateConfiguration but panics on error.
func MustCreate(opts ...Option) flatconfig.Config {
	cfg, err := CreateConfiguration(opts...)
	if err != nil {
		panic(err)
	}
	return cfg
}

// FromMap builds the configuration from a boundary options object.
func FromMap(m map[string]any) (flatconfig.Config, error) {
	opts, err := OptionsFromMap(m)
	if err != nil {
		return flatconfig.Config{}, err
	}
	return CreateConfiguration(opts...)
}
