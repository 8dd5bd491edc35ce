package commands

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/lintpreset/internal/cli/config"
	"github.com/leapstack-labs/lintpreset/internal/cli/output"
	"github.com/leapstack-labs/lintpreset/pkg/flatconfig"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Preset   flatconfig.Config
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with the preset built from the
// loaded configuration. format overrides the configured output mode when set.
func NewCommandContext(cmd *cobra.Command, format string) (*CommandContext, error) {
	cmdCtx, err := NewCommandContextWithoutPreset(cmd, format)
	if err != nil {
		return nil, err
	}
	cmdCtx.Preset, err = cmdCtx.Cfg.Preset()
	if err != nil {
		return nil, err
	}
	cmdCtx.Logger.Debug("preset built",
		"fragments", cmdCtx.Preset.Len(),
		"root", cmdCtx.Preset.BasePath,
	)
	return cmdCtx, nil
}

// NewCommandContextWithoutPreset creates a CommandContext without building
// the preset. Useful for commands that only read the rule registry.
func NewCommandContextWithoutPreset(cmd *cobra.Command, format string) (*CommandContext, error) {
	cfg := getConfig()
	if format == "" {
		format = cfg.OutputFormat
	}
	mode, err := output.ParseMode(format)
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode),
	}, nil
}

// Helper functions shared across commands

// getConfig returns the current configuration, or the defaults when the
// command runs outside the root command.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	root, err := os.Getwd()
	if err != nil {
		root = "."
	}
	return &config.Config{
		Root:         root,
		ProjectRoot:  root,
		OutputFormat: config.DefaultOutput,
	}
}

// absPath makes a command-line path absolute so the preset can relate it to
// its root.
func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
