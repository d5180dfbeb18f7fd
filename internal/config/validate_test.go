package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate("default"))
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"history size", func(c *Config) { c.Session.HistorySize = -2 }, "session.history_size"},
		{"host", func(c *Config) { c.Session.Host = " " }, "session.host is required"},
		{"shell path", func(c *Config) { c.Shell.Path = "" }, "shell.path is required"},
		{"ui mode", func(c *Config) { c.UI.Mode = "gui" }, "ui.mode must be one of"},
		{"log level", func(c *Config) { c.Log.Level = "chatty" }, "log.level \"chatty\" is invalid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate("cfg.toml")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "cfg.toml")
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
