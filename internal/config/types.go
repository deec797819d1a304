package config

import (
	"time"
)

// Config is the top-level configuration structure for termfolio.
type Config struct {
	// Page is the portfolio HTML file the profile is scraped from.
	Page       string         `yaml:"page,omitempty"`
	Theme      string         `yaml:"theme,omitempty"`
	ScrollStep int            `yaml:"scrollStep,omitempty"` // lines moved by j/k
	CRT        *bool          `yaml:"crt,omitempty"`        // start with the CRT overlay on
	LogLevel   string         `yaml:"logLevel,omitempty"`
	Terminal   TerminalConfig `yaml:"terminal"`
	Contact    ContactConfig  `yaml:"contact"`
	MCP        MCPConfig      `yaml:"mcp"`
}

// TerminalConfig tunes the simulated shell.
type TerminalConfig struct {
	// CommandDelay separates the echo of a command from its output. Zero is allowed.
	CommandDelay *time.Duration `yaml:"commandDelay,omitempty"`
	// FocusDelay postpones the initial input focus until after the first layout.
	FocusDelay *time.Duration `yaml:"focusDelay,omitempty"`
}

// ContactConfig tunes the contact form.
type ContactConfig struct {
	ResetDelay time.Duration `yaml:"resetDelay,omitempty"`
}

// MCP transports.
const (
	MCPTransportStdio = "stdio"
	MCPTransportSSE   = "sse"
)

// MCPConfig configures the control surface server.
type MCPConfig struct {
	Enabled   bool   `yaml:"enabled,omitempty"` // start alongside the TUI
	Transport string `yaml:"transport,omitempty"`
	Host      string `yaml:"host,omitempty"`
	Port      int    `yaml:"port,omitempty"`
}

// Addr returns host:port for the SSE transport.
func (m MCPConfig) Addr() string {
	return m.Host + ":" + itoa(m.Port)
}

// CRTEnabled reports whether the overlay starts on.
func (c Config) CRTEnabled() bool {
	return c.CRT != nil && *c.CRT
}
