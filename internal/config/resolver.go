package config

import (
	"os"

	"github.com/promptlib/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a configuration value together with its source.
type ResolvedValue struct {
	Value  string
	Source ConfigSource
}

// ResolvedConfig holds every value the CLI needs after applying precedence.
type ResolvedConfig struct {
	// ConfigPath is the config file that was consulted.
	ConfigPath ResolvedValue

	// TemplatesDir is the template root directory.
	TemplatesDir ResolvedValue

	// Log is the logging configuration.
	Log LogConfig
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) PROMPTLIB_CONFIG env, (2) ~/.promptlib/config.yaml default.
func ResolveConfigPath() (ResolvedValue, error) {
	if envValue := os.Getenv(EnvConfig); envValue != "" {
		return ResolvedValue{Value: envValue, Source: SourceEnv}, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, err
	}
	return ResolvedValue{Value: paths.ConfigFile, Source: SourceDefault}, nil
}

// ResolveTemplatesDir resolves the template root using precedence:
// (1) PROMPTLIB_TEMPLATES_DIR env, (2) config.templatesDir, (3) "templates".
// A leading ~ is expanded.
func ResolveTemplatesDir(cfg *Config) (ResolvedValue, error) {
	var result ResolvedValue

	envValue := os.Getenv(EnvTemplatesDir)
	switch {
	case envValue != "":
		result = ResolvedValue{Value: envValue, Source: SourceEnv}
	case cfg != nil && cfg.TemplatesDir != "":
		result = ResolvedValue{Value: cfg.TemplatesDir, Source: SourceConfig}
	default:
		result = ResolvedValue{Value: DefaultConfig().TemplatesDir, Source: SourceDefault}
	}

	expanded, err := ExpandPath(result.Value)
	if err != nil {
		return ResolvedValue{}, err
	}
	result.Value = expanded
	return result, nil
}

// ResolveAll loads the config file and resolves every value. A config file
// that cannot be read is reported and defaults are used.
func ResolveAll() (*ResolvedConfig, error) {
	cfg := &Config{}

	configPath, err := ResolveConfigPath()
	if err != nil {
		output.Debug("cannot determine config path", "error", err)
	} else if loaded, err := NewLoader().Load(configPath.Value); err != nil {
		output.Warn("ignoring config file", "path", configPath.Value, "error", err)
	} else {
		cfg = loaded
	}

	templatesDir, err := ResolveTemplatesDir(cfg)
	if err != nil {
		return nil, err
	}

	return &ResolvedConfig{
		ConfigPath:   configPath,
		TemplatesDir: templatesDir,
		Log:          cfg.Log,
	}, nil
}
