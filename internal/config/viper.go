// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Classification struct {
		// StatementColumn forces the statement column; empty means
		// auto-detect.
		StatementColumn  string `mapstructure:"statement_column" yaml:"statement_column"`
		PresentSuffix    string `mapstructure:"present_suffix" yaml:"present_suffix"`
		CountSuffix      string `mapstructure:"count_suffix" yaml:"count_suffix"`
		MatchesSuffix    string `mapstructure:"matches_suffix" yaml:"matches_suffix"`
		MatchesSeparator string `mapstructure:"matches_separator" yaml:"matches_separator"`
	} `mapstructure:"classification" yaml:"classification"`

	Dictionary struct {
		// File is the dictionary YAML file; empty means the default
		// dictionaries.yaml resolved through the standard locations.
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"dictionary" yaml:"dictionary"`

	Report struct {
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"report" yaml:"report"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.tactics-csv")
	v.AddConfigPath(".tactics-csv")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("TACTICS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
		// Config file not found or invalid is OK, we'll use defaults and env vars
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// CSV defaults
	v.SetDefault("csv.delimiter", ",")

	// Classification defaults
	v.SetDefault("classification.statement_column", "")
	v.SetDefault("classification.present_suffix", "_present")
	v.SetDefault("classification.count_suffix", "_count")
	v.SetDefault("classification.matches_suffix", "_matches")
	v.SetDefault("classification.matches_separator", ", ")

	// Dictionary defaults
	v.SetDefault("dictionary.file", "")

	// Report defaults
	v.SetDefault("report.format", "text")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	// Validate CSV delimiter
	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	// Validate report format
	if config.Report.Format != "text" && config.Report.Format != "json" && config.Report.Format != "csv" {
		return fmt.Errorf("invalid report format: %s (must be 'text', 'json' or 'csv')", config.Report.Format)
	}

	// The three derived-column suffixes must not collide
	if config.Classification.PresentSuffix == config.Classification.CountSuffix ||
		config.Classification.PresentSuffix == config.Classification.MatchesSuffix ||
		config.Classification.CountSuffix == config.Classification.MatchesSuffix {
		return fmt.Errorf("derived column suffixes must be distinct")
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	// Parse and set log level
	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Configure log format
	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
