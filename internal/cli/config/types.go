// Package config provides configuration management for the lintpreset CLI.
//
// Configuration is layered with koanf: built-in defaults, then a
// lintpreset.yaml found by searching upward from the working directory,
// then LINTPRESET_* environment variables, then explicitly set flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	// Root is the directory file paths are matched relative to. It defaults
	// to the project root: the directory holding lintpreset.yaml, or the
	// working directory when there is none.
	Root         string         `koanf:"root"`
	OutputFormat string         `koanf:"output"`
	Verbose      bool           `koanf:"verbose"`
	Format       map[string]any `koanf:"format"`
	Ignores      []string       `koanf:"ignores"`
	Scenarios    string         `koanf:"scenarios"`
	Concurrency  int            `koanf:"concurrency"`

	// ProjectRoot is where the config file was found (not loaded from config).
	ProjectRoot string `koanf:"-"`
}

// Config file names, in lookup order.
var configFileNames = []string{"lintpreset.yaml", "lintpreset.yml", ".lintpreset.yaml"}

// Default configuration values.
const (
	DefaultOutput      = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultConcurrency = 0      // GOMAXPROCS
	EnvPrefix          = "LINTPRESET_"

	// UserIgnoresFragment names the global-ignore fragment built from the
	// ignores key.
	UserIgnoresFragment = "user-ignores"
)
