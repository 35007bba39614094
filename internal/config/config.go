package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/DeusData/ts-highlight/internal/lang"
)

// FileName is the config file base name searched for, without extension.
const FileName = ".ts-highlight"

// EnvPrefix prefixes environment overrides (e.g. TSHL_LOG_LEVEL).
const EnvPrefix = "TSHL"

// Config holds the settings not passed per invocation.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
	// Queries maps a language name to a highlights.scm file used when no
	// query is given on the command line.
	Queries map[string]string `mapstructure:"queries"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Queries:  map[string]string{},
	}
}

// Load reads configuration with priority env > file > defaults. path names
// an explicit file; when empty, FileName is searched for in the working
// directory and the home directory, and a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := Default()
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("queries", defaults.Queries)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.Queries == nil {
		cfg.Queries = map[string]string{}
	}
	if used := v.ConfigFileUsed(); used != "" {
		cfg.resolvePaths(filepath.Dir(used))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// resolvePaths makes relative query paths relative to the config file.
func (c *Config) resolvePaths(dir string) {
	for name, p := range c.Queries {
		if p != "" && !filepath.IsAbs(p) {
			c.Queries[name] = filepath.Join(dir, p)
		}
	}
}

// Validate checks the log level and that every query key names a language.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q must be one of debug, info, warn, error", c.LogLevel)
	}
	for name := range c.Queries {
		if _, ok := lang.ForName(name); !ok {
			return fmt.Errorf("queries: unknown language %q", name)
		}
	}
	return nil
}

// QueryFile returns the configured highlights file for l, if any.
func (c *Config) QueryFile(l lang.Language) (string, bool) {
	for name, p := range c.Queries {
		if resolved, ok := lang.ForName(name); ok && resolved == l && p != "" {
			return p, true
		}
	}
	return "", false
}
