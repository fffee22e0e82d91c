package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Tenor   TenorConfig   `mapstructure:"tenor"`
	Search  SearchConfig  `mapstructure:"search"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TenorConfig holds Tenor API connection details
type TenorConfig struct {
	APIKey    string        `mapstructure:"api_key"`
	ClientKey string        `mapstructure:"client_key"`
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// SearchConfig holds default request parameters. Empty values are not sent.
type SearchConfig struct {
	Country       string `mapstructure:"country"`
	Locale        string `mapstructure:"locale"`
	ContentFilter string `mapstructure:"contentfilter"`
	MediaFilter   string `mapstructure:"media_filter"`
	Limit         int    `mapstructure:"limit"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	Format      string `mapstructure:"format"`
	ShowDetails bool   `mapstructure:"show_details"`
	// Formats lists the content formats shown per post in text output
	Formats []string `mapstructure:"formats"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
