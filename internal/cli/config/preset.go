package config

import (
	"fmt"

	"github.com/leapstack-labs/lintpreset/pkg/flatconfig"
	"github.com/leapstack-labs/lintpreset/pkg/preset"
)

// Preset builds the preset configuration this Config describes: the format
// options applied over the defaults, extra global ignores appended after the
// shipped ones, and paths resolved against Root.
func (c *Config) Preset() (flatconfig.Config, error) {
	cfg, err := preset.FromMap(c.Format)
	if err != nil {
		return flatconfig.Config{}, err
	}
	if len(c.Ignores) > 0 {
		cfg, err = cfg.With(flatconfig.Fragment{
			Name:    UserIgnoresFragment,
			Ignores: c.Ignores,
		})
		if err != nil {
			return flatconfig.Config{}, fmt.Errorf("apply configured ignores: %w", err)
		}
	}
	return cfg.WithBasePath(c.Root), nil
}
