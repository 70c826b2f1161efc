package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Alias   AliasConfig   `mapstructure:"alias"`
	Scan    ScanConfig    `mapstructure:"scan"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Path   string `mapstructure:"path"`
}

// AliasConfig holds the settings of the alias conversion.
type AliasConfig struct {
	CodePage string `mapstructure:"codepage"`
}

// ScanConfig holds the settings of directory scans.
type ScanConfig struct {
	Workers   int      `mapstructure:"workers"`
	Recursive bool     `mapstructure:"recursive"`
	Ignore    []string `mapstructure:"ignore"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Alias: AliasConfig{
			CodePage: "437",
		},
		Scan: ScanConfig{
			Workers: 4,
			Ignore:  []string{},
		},
	}
}

// Load reads configuration from file and environment variables.
// Priority: environment variables > config file > defaults
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("gofatfs")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/gofatfs")
	}

	v.SetEnvPrefix("GOFATFS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// A missing config file is fine, defaults and environment remain.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := Default()

	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("logging.path", def.Logging.Path)

	v.SetDefault("alias.codepage", def.Alias.CodePage)

	v.SetDefault("scan.workers", def.Scan.Workers)
	v.SetDefault("scan.recursive", def.Scan.Recursive)
	v.SetDefault("scan.ignore", def.Scan.Ignore)
}

// Validate checks the values which cannot be used as they are.
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid logging.format %q: must be console or json", c.Logging.Format)
	}
	if c.Scan.Workers < 1 {
		return fmt.Errorf("invalid scan.workers %d: must be at least 1", c.Scan.Workers)
	}
	return nil
}
