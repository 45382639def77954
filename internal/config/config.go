// Package config loads settings from defaults, an optional YAML file,
// CUBESOLVER_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the settings shared by every command.
type Config struct {
	DBPath         string `mapstructure:"db"`
	LogLevel       string `mapstructure:"log-level"`
	Optimize       bool   `mapstructure:"optimize"`
	ScrambleLength int    `mapstructure:"length"`
	Workers        int    `mapstructure:"workers"`
	Format         string `mapstructure:"format"`
}

// Dir returns ~/.cubesolver.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".cubesolver"), nil
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("db", "")
	v.SetDefault("log-level", "warn")
	v.SetDefault("optimize", true)
	v.SetDefault("length", 20)
	v.SetDefault("workers", 0)
	v.SetDefault("format", "text")

	v.SetEnvPrefix("cubesolver")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file (the explicit path, or config.yaml in Dir when
// empty), then binds flags. A missing default file is not an error.
func Load(v *viper.Viper, file string, flags *pflag.FlagSet) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := Dir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	switch cfg.Format {
	case "text", "json", "yaml":
	default:
		return nil, fmt.Errorf("unknown output format %q", cfg.Format)
	}
	return &cfg, nil
}
