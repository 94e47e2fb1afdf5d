// Package config loads the executor configuration.
//
// Configuration sources (in order of precedence):
//  1. Environment variables (EXECUTOR_*)
//  2. Configuration file (YAML), when a path is given
//  3. Default values
//
// The log severity threshold is deliberately absent: it is fixed at INFO.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. EXECUTOR_LOGGING_FORMAT=json.
const EnvPrefix = "EXECUTOR"

type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig controls where and how log events are written.
type LoggingConfig struct {
	// Valid values: text, json
	Format string `mapstructure:"format" validate:"required,oneof=text json"`

	// Valid values: stdout, stderr, or a file path
	Output string `mapstructure:"output" validate:"required"`
}

func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Format: "text",
			Output: "stdout",
		},
	}
}

// Load reads configuration from configPath (optional) and the environment,
// then validates it. An explicitly named file that does not exist is an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setupViper(v, configPath)

	if configPath != "" {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("configuration file not found: %s", configPath)
			}
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Logging.Format = strings.ToLower(cfg.Logging.Format)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks struct constraints.
func Validate(cfg *Config) error {
	return validator.New().Struct(cfg)
}

func setupViper(v *viper.Viper, configPath string) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults double as the key registry AutomaticEnv needs for Unmarshal.
	def := Default()
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("logging.output", def.Logging.Output)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
	}
}
