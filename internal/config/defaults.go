package config

import (
	"strconv"
	"time"

	"termfolio/internal/theme"
)

const (
	DefaultCommandDelay = 120 * time.Millisecond
	DefaultFocusDelay   = 0
	DefaultResetDelay   = 3 * time.Second
	DefaultScrollStep   = 3
	DefaultMCPPort      = 8091
)

// GetDefaultConfig returns the built-in configuration every layer is merged onto.
func GetDefaultConfig() Config {
	commandDelay := DefaultCommandDelay
	focusDelay := time.Duration(DefaultFocusDelay)
	crt := false
	return Config{
		Theme:      theme.Default,
		ScrollStep: DefaultScrollStep,
		CRT:        &crt,
		LogLevel:   "info",
		Terminal: TerminalConfig{
			CommandDelay: &commandDelay,
			FocusDelay:   &focusDelay,
		},
		Contact: ContactConfig{ResetDelay: DefaultResetDelay},
		MCP: MCPConfig{
			Transport: MCPTransportStdio,
			Host:      "localhost",
			Port:      DefaultMCPPort,
		},
	}
}

func itoa(i int) string { return strconv.Itoa(i) }
