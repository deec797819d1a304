package controller

import (
	"termfolio/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsgInputMode processes keys while the terminal or a contact
// field has focus. Page shortcuts are off; esc leaves the input.
func handleKeyMsgInputMode(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if key.Matches(keyMsg, m.Keys.Esc) {
		blurAll(m)
		return m, nil
	}

	if m.Focus == model.FocusTerminal {
		switch {
		case key.Matches(keyMsg, m.Keys.Submit):
			raw := m.TerminalInput.Value()
			m.TerminalInput.Reset()
			return m, submitCommand(m, raw)
		case key.Matches(keyMsg, m.Keys.Complete):
			return m, completeCommand(m)
		}
		var cmd tea.Cmd
		m.TerminalInput, cmd = m.TerminalInput.Update(keyMsg)
		return m, cmd
	}

	// Contact form
	switch {
	case key.Matches(keyMsg, m.Keys.SendForm):
		return m, submitContact(m)
	case key.Matches(keyMsg, m.Keys.NextField):
		return m, focusContact(m, nextField(m.Focus, 1))
	case key.Matches(keyMsg, m.Keys.PrevField):
		return m, focusContact(m, nextField(m.Focus, -1))
	case keyMsg.Type == tea.KeyEnter && m.Focus != model.FocusContactMessage:
		return m, focusContact(m, nextField(m.Focus, 1))
	}
	return m, updateFocusedInput(m, keyMsg)
}

// updateFocusedInput forwards msg to whichever input has focus.
func updateFocusedInput(m *model.Model, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.Focus {
	case model.FocusTerminal:
		m.TerminalInput, cmd = m.TerminalInput.Update(msg)
	case model.FocusContactName:
		m.ContactName, cmd = m.ContactName.Update(msg)
	case model.FocusContactEmail:
		m.ContactEmail, cmd = m.ContactEmail.Update(msg)
	case model.FocusContactMessage:
		m.ContactMessage, cmd = m.ContactMessage.Update(msg)
	}
	return cmd
}

func blurAll(m *model.Model) {
	m.TerminalInput.Blur()
	m.ContactName.Blur()
	m.ContactEmail.Blur()
	m.ContactMessage.Blur()
	m.Focus = model.FocusNone
}

func focusTerminal(m *model.Model) tea.Cmd {
	blurAll(m)
	m.Focus = model.FocusTerminal
	return m.TerminalInput.Focus()
}

var contactFields = []model.Focus{model.FocusContactName, model.FocusContactEmail, model.FocusContactMessage}

func nextField(current model.Focus, dir int) model.Focus {
	for i, f := range contactFields {
		if f == current {
			return contactFields[(i+dir+len(contactFields))%len(contactFields)]
		}
	}
	return contactFields[0]
}

func focusContact(m *model.Model, f model.Focus) tea.Cmd {
	blurAll(m)
	m.Focus = f
	switch f {
	case model.FocusContactEmail:
		return m.ContactEmail.Focus()
	case model.FocusContactMessage:
		return m.ContactMessage.Focus()
	default:
		m.Focus = model.FocusContactName
		return m.ContactName.Focus()
	}
}
