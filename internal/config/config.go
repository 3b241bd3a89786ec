// Package config provides configuration loading and management.
package config

import "github.com/promptlib/cli/internal/templates"

// Environment variables recognized by the CLI.
const (
	// EnvConfig overrides the config file path.
	EnvConfig = "PROMPTLIB_CONFIG"

	// EnvTemplatesDir overrides the template root directory.
	EnvTemplatesDir = "PROMPTLIB_TEMPLATES_DIR"

	// EnvVerbose enables debug logging.
	EnvVerbose = "PROMPTLIB_VERBOSE"

	// EnvTimestamps toggles timestamps in log output.
	EnvTimestamps = "PROMPTLIB_TIMESTAMPS"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Verbose enables debug output.
	// Env: PROMPTLIB_VERBOSE, Default: false
	Verbose bool `mapstructure:"verbose"`

	// Timestamps controls whether timestamps are shown in log output.
	// Env: PROMPTLIB_TIMESTAMPS, Default: off (verbose forces on)
	Timestamps *bool `mapstructure:"timestamps"`
}

// Config represents the promptlib configuration.
// Loaded from ~/.promptlib/config.yaml, overridden by environment variables.
type Config struct {
	// TemplatesDir is the template root directory.
	// Env: PROMPTLIB_TEMPLATES_DIR, Default: "templates"
	TemplatesDir string `mapstructure:"templatesDir"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log"`
}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{
		TemplatesDir: templates.DefaultRoot,
	}
}
