package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagBindings maps command line flags to configuration keys
var flagBindings = map[string]string{
	"api-key":    "tenor.api_key",
	"client-key": "tenor.client_key",
	"base-url":   "tenor.base_url",
	"country":    "search.country",
	"locale":     "search.locale",
	"output":     "output.format",
	"log-level":  "logging.level",
}

// Load loads the configuration from file and the given flags. Flags that were
// set on the command line take precedence over the file. A missing file is
// only an error when configPath is given explicitly.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".tenor"))
		}

		v.AddConfigPath("/etc/tenor/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configPath != "" {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagBindings {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Tenor defaults
	v.SetDefault("tenor.base_url", "https://tenor.googleapis.com/v2")
	v.SetDefault("tenor.timeout", "30s")

	// Output defaults
	v.SetDefault("output.format", "text")
	v.SetDefault("output.show_details", false)
	v.SetDefault("output.formats", []string{"gif", "tinygif", "mp4"})

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid. The API key is checked by
// the commands that need it.
func validate(cfg *Config) error {
	if cfg.Tenor.APIKey == "your-api-key-here" {
		return fmt.Errorf("tenor.api_key must be set to a valid API key")
	}

	if cfg.Tenor.Timeout < 0 {
		return fmt.Errorf("tenor.timeout must not be negative")
	}

	if cfg.Search.Limit < 0 || cfg.Search.Limit > 50 {
		return fmt.Errorf("invalid search.limit: %d (must be between 1 and 50, or 0 for the service default)", cfg.Search.Limit)
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	validOutputs := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validOutputs[cfg.Output.Format] {
		return fmt.Errorf("invalid output format: %s (must be 'text' or 'json')", cfg.Output.Format)
	}

	return nil
}
