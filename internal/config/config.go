package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-tinymd/internal/fileutil"
	"github.com/alnah/go-tinymd/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound   = errors.New("config file not found")
	ErrEmptyConfigName  = errors.New("config name cannot be empty")
	ErrConfigParse      = errors.New("failed to parse config")
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("invalid log format")
)

// Accepted log settings.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"

	FormatConsole = "console"
	FormatJSON    = "json"
)

// configDirName is the directory under the user config dir searched for named configs.
const configDirName = "go-tinymd"

// Config holds all configuration for a tinymd run.
type Config struct {
	Log LogConfig `yaml:"log"`
}

// LogConfig defines diagnostic logging options.
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error" (default: "info")
	Format string `yaml:"format"` // "console", "json" (default: "console")
}

// Validate checks that log settings hold known values. Empty values are
// accepted and mean the default.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "", LevelDebug, LevelInfo, LevelWarn, LevelError:
	default:
		return fmt.Errorf("%w: log.level %q (must be debug, info, warn, or error)", ErrInvalidLogLevel, c.Log.Level)
	}

	switch strings.ToLower(c.Log.Format) {
	case "", FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("%w: log.format %q (must be console or json)", ErrInvalidLogFormat, c.Log.Format)
	}

	return nil
}

// DefaultConfig returns info-level console logging.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: LevelInfo, Format: FormatConsole},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields missing from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the candidate locations for a named config, in lookup order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, configDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries the current directory first, then ~/.config/go-tinymd/.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
