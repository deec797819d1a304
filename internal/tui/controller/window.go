package controller

import (
	"termfolio/internal/tui/model"
	"termfolio/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
)

// handleWindowSizeMsg resizes every width-dependent component.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) *model.Model {
	m.Width = msg.Width
	m.Height = msg.Height

	content := m.ContentWidth()
	m.TerminalViewport.Width = view.TerminalContentWidth(m)
	m.TerminalInput.Width = m.TerminalViewport.Width - len(m.TerminalInput.Prompt) - 1
	m.Presenter.SetWidth(content)

	barWidth := m.SkillBarWidth()
	for i := range m.SkillBars {
		m.SkillBars[i].Width = barWidth
	}

	field := content - 4
	m.ContactName.Width = field
	m.ContactEmail.Width = field
	m.ContactMessage.SetWidth(field)
	m.Help.Width = content

	m.TranscriptDirty = true
	LogDebug(m, controllerSubsystem, "Window resized to %dx%d", msg.Width, msg.Height)
	return m
}

// handleMouseMsg scrolls with the wheel and focuses the terminal input on
// a click inside the transcript.
func handleMouseMsg(m *model.Model, msg tea.MouseMsg) (*model.Model, tea.Cmd) {
	if m.CurrentAppMode == model.ModeLogOverlay {
		var cmd tea.Cmd
		m.LogViewport, cmd = m.LogViewport.Update(msg)
		return m, cmd
	}
	if m.CurrentAppMode != model.ModeMain {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelDown:
		m.PageViewport.SetYOffset(m.PageViewport.YOffset + m.ScrollStep)
		return m, nil
	case tea.MouseButtonWheelUp:
		m.PageViewport.SetYOffset(m.PageViewport.YOffset - m.ScrollStep)
		return m, nil
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress || m.Engine == nil {
			return m, nil
		}
		y := msg.Y + m.PageViewport.YOffset
		if y >= m.TerminalTop && y <= m.TerminalBottom {
			return m, focusTerminal(m)
		}
	}
	return m, nil
}
