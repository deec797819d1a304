package app

import (
	"termfolio/internal/config"
)

// Config holds the application configuration
type Config struct {
	// UI mode
	NoTUI bool

	// Debug settings
	Debug bool

	// ConfigPath replaces the layered configuration lookup when set.
	ConfigPath string

	// Flag overrides; empty values keep the configured ones.
	Page  string
	Theme string
	MCP   bool

	// Version is reported by the control server.
	Version string

	// Loaded configuration, filled in by NewApplication.
	Settings *config.Config
}

// NewConfig creates a new application configuration
func NewConfig(noTUI, debug bool, configPath string) *Config {
	return &Config{
		NoTUI:      noTUI,
		Debug:      debug,
		ConfigPath: configPath,
	}
}

// applyOverrides lets command line flags win over every configuration layer.
func (c *Config) applyOverrides(settings config.Config) config.Config {
	if c.Page != "" {
		settings.Page = c.Page
	}
	if c.Theme != "" {
		settings.Theme = c.Theme
	}
	if c.MCP {
		settings.MCP.Enabled = true
	}
	if c.Debug {
		settings.LogLevel = "debug"
	}
	return settings
}
