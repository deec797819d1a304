package controller

import (
	"fmt"
	"strings"
	"time"

	"termfolio/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// submitCommand echoes raw and schedules its execution after the command
// delay. With no delay the command runs immediately.
func submitCommand(m *model.Model, raw string) tea.Cmd {
	if m.Engine == nil {
		return nil
	}
	m.Engine.Echo(raw)
	m.TranscriptDirty = true
	LogDebug(m, controllerSubsystem, "Echoed command %q", raw)

	if m.CommandDelay <= 0 {
		runCommand(m, raw)
		return nil
	}
	m.PendingCommands++
	return tea.Tick(m.CommandDelay, func(time.Time) tea.Msg {
		return model.RunCommandMsg{Raw: raw}
	})
}

// runCommand executes a previously echoed command.
func runCommand(m *model.Model, raw string) {
	if m.PendingCommands > 0 {
		m.PendingCommands--
	}
	if m.Engine == nil {
		return
	}
	m.Engine.Run(raw)
	m.TranscriptDirty = true
}

// completeCommand replaces the input with the best completion and lists
// the alternatives in the status bar.
func completeCommand(m *model.Model) tea.Cmd {
	if m.Engine == nil {
		return nil
	}
	matches := m.Engine.Complete(m.TerminalInput.Value())
	if len(matches) == 0 {
		return nil
	}
	m.TerminalInput.SetValue(matches[0])
	m.TerminalInput.CursorEnd()
	if len(matches) == 1 {
		return nil
	}
	return m.SetStatusMessage(fmt.Sprintf("Matches: %s", strings.Join(matches, " ")), model.StatusBarInfo, statusDuration)
}
