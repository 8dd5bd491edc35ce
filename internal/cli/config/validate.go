package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/leapstack-labs/lintpreset/internal/cli/output"
	"github.com/leapstack-labs/lintpreset/pkg/glob"
	"github.com/leapstack-labs/lintpreset/pkg/preset"
)

// Validate checks the configuration values that can be checked without
// building the preset.
func (c *Config) Validate() error {
	var errs []error

	if _, err := output.ParseMode(c.OutputFormat); err != nil {
		errs = append(errs, err)
	}
	if c.Concurrency < 0 {
		errs = append(errs, fmt.Errorf("concurrency must not be negative, got %d", c.Concurrency))
	}
	if _, err := preset.OptionsFromMap(c.Format); err != nil {
		errs = append(errs, err)
	}
	for _, p := range c.Ignores {
		if err := glob.Validate(p); err != nil {
			errs = append(errs, fmt.Errorf("ignores: %w", err))
		}
	}
	return errors.Join(errs...)
}

// ValidateRoot checks that the root directory exists.
func (c *Config) ValidateRoot() error {
	info, err := os.Stat(c.Root)
	if err != nil {
		return fmt.Errorf("root directory does not exist: %s\nHint: use --root to specify a different path", c.Root)
	}
	if !info.IsDir() {
		return fmt.Errorf("root is not a directory: %s", c.Root)
	}
	return nil
}
