// Package config loads boxlayout settings from defaults, an optional YAML
// file and BOXLAYOUT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/grindlemire/go-boxlayout/internal/debug"
)

// EnvPrefix is the prefix of environment overrides (viewport.width -> BOXLAYOUT_VIEWPORT_WIDTH).
const EnvPrefix = "BOXLAYOUT"

// LoggerConfig controls the zap logger.
type LoggerConfig = debug.Config

// ViewportConfig is the root size used when no flag overrides it. render
// prefers the terminal size when stdout is a terminal.
type ViewportConfig struct {
	Width  int `mapstructure:"width" yaml:"width"`
	Height int `mapstructure:"height" yaml:"height"`
}

// OutputConfig controls how solved documents are printed.
type OutputConfig struct {
	Format  string `mapstructure:"format" yaml:"format"`
	Workers int    `mapstructure:"workers" yaml:"workers"`
}

// Config holds the entire application configuration.
type Config struct {
	Logger   LoggerConfig   `mapstructure:"logger" yaml:"logger"`
	Viewport ViewportConfig `mapstructure:"viewport" yaml:"viewport"`
	Output   OutputConfig   `mapstructure:"output" yaml:"output"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)

	v.SetDefault("viewport.width", 80)
	v.SetDefault("viewport.height", 24)

	v.SetDefault("output.format", "table")
	v.SetDefault("output.workers", 4)
}

// NewDefaultConfig returns the configuration produced by defaults alone.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)
	var cfg Config
	// Defaults always decode.
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// Load reads configuration into v. When path is empty, boxlayout.yaml in the
// working directory is used if present. Environment variables override both.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("boxlayout")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.Logger.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logger.format must be console or json, got %q", c.Logger.Format)
	}
	switch c.Output.Format {
	case "table", "json":
	default:
		return fmt.Errorf("output.format must be table or json, got %q", c.Output.Format)
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("viewport must be positive, got %dx%d", c.Viewport.Width, c.Viewport.Height)
	}
	if c.Output.Workers < 1 {
		return fmt.Errorf("output.workers must be at least 1, got %d", c.Output.Workers)
	}
	return nil
}
