package main

import (
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/alnah/go-tinymd/internal/config"
)

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath string // TINYMD_CONFIG: config file name or path
	LogLevel   string // TINYMD_LOG_LEVEL: debug, info, warn, error
	LogFormat  string // TINYMD_LOG_FORMAT: console, json
}

// knownEnvVars lists valid TINYMD_* environment variables.
var knownEnvVars = map[string]bool{
	"TINYMD_CONFIG":     true,
	"TINYMD_LOG_LEVEL":  true,
	"TINYMD_LOG_FORMAT": true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath: os.Getenv("TINYMD_CONFIG"),
		LogLevel:   os.Getenv("TINYMD_LOG_LEVEL"),
		LogFormat:  os.Getenv("TINYMD_LOG_FORMAT"),
	}
}

// warnUnknownEnvVars logs warnings for unrecognized TINYMD_* variables.
func warnUnknownEnvVars(logger zerolog.Logger) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "TINYMD_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				logger.Warn().Str("variable", name).Msg("unknown environment variable (typo?)")
			}
		}
	}
}

// applyEnvConfig overrides config file values with environment values.
// Priority: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
	if env.LogFormat != "" {
		cfg.Log.Format = env.LogFormat
	}
}

// mergeFlags applies --quiet and --verbose. Verbose wins if both are set.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.quiet {
		cfg.Log.Level = config.LevelError
	}
	if flags.verbose {
		cfg.Log.Level = config.LevelDebug
	}
}

// resolveConfig builds the effective configuration.
// The config file comes from --config, falling back to TINYMD_CONFIG.
func resolveConfig(flags *cliFlags, env *envConfig) (*config.Config, error) {
	cfg := config.DefaultConfig()

	name := flags.config
	if name == "" {
		name = env.ConfigPath
	}
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	applyEnvConfig(env, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
