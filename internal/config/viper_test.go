package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultTestConfig() *Config {
	c := &Config{}
	c.Log.Level = "info"
	c.Log.Format = "text"
	c.CSV.Delimiter = ","
	c.Classification.PresentSuffix = "_present"
	c.Classification.CountSuffix = "_count"
	c.Classification.MatchesSuffix = "_matches"
	c.Classification.MatchesSeparator = ", "
	c.Report.Format = "text"
	return c
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "bad log level", mutate: func(c *Config) { c.Log.Level = "verbose" }, expectError: true},
		{name: "bad log format", mutate: func(c *Config) { c.Log.Format = "xml" }, expectError: true},
		{name: "multi-char delimiter", mutate: func(c *Config) { c.CSV.Delimiter = ",," }, expectError: true},
		{name: "empty delimiter", mutate: func(c *Config) { c.CSV.Delimiter = "" }, expectError: true},
		{name: "semicolon delimiter", mutate: func(c *Config) { c.CSV.Delimiter = ";" }},
		{name: "bad report format", mutate: func(c *Config) { c.Report.Format = "yaml" }, expectError: true},
		{name: "csv report format", mutate: func(c *Config) { c.Report.Format = "csv" }},
		{name: "colliding suffixes", mutate: func(c *Config) { c.Classification.CountSuffix = "_present" }, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaultTestConfig()
			tt.mutate(c)

			err := validateConfig(c)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInitializeConfig_Defaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, "_present", cfg.Classification.PresentSuffix)
	assert.Equal(t, "_count", cfg.Classification.CountSuffix)
	assert.Equal(t, "_matches", cfg.Classification.MatchesSuffix)
	assert.Equal(t, ", ", cfg.Classification.MatchesSeparator)
	assert.Equal(t, "", cfg.Classification.StatementColumn)
	assert.Equal(t, "text", cfg.Report.Format)
}

func TestInitializeConfig_EnvOverride(t *testing.T) {
	t.Setenv("TACTICS_LOG_LEVEL", "debug")
	t.Setenv("TACTICS_CLASSIFICATION_STATEMENT_COLUMN", "Statement")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "Statement", cfg.Classification.StatementColumn)
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg := defaultTestConfig()
	cfg.Log.Level = "debug"

	logger := ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	cfg.Log.Format = "json"
	logger = ConfigureLoggingFromConfig(cfg)
	_, ok := logger.Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok)
}
