package controller

import (
	"errors"
	"time"

	"termfolio/internal/contact"
	"termfolio/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// submitContact stubs the form submission: the mailto link goes to the
// clipboard and the button stays disabled until ContactResetMsg arrives.
func submitContact(m *model.Model) tea.Cmd {
	sub, err := m.Contact.Submit(contact.Form{
		Name:    m.ContactName.Value(),
		Email:   m.ContactEmail.Value(),
		Message: m.ContactMessage.Value(),
	})
	if errors.Is(err, contact.ErrBusy) {
		return m.SetStatusMessage("Message already sent", model.StatusBarInfo, statusDuration)
	}
	if err != nil {
		LogError(controllerSubsystem, err, "Contact submission failed")
		return m.SetStatusMessage("Sending failed", model.StatusBarError, statusDuration)
	}

	m.ContactSeq++
	seq := m.ContactSeq
	m.LastMailto = sub.MailtoURL
	blurAll(m)

	label := contact.SentLabel
	if sub.MailtoURL != "" {
		if err := clipboardWrite(sub.MailtoURL); err != nil {
			LogDebug(m, controllerSubsystem, "Clipboard unavailable for mailto link: %v", err)
		} else {
			label += " mailto link copied"
		}
	}
	status := m.SetStatusMessage(label, model.StatusBarSuccess, m.Contact.ResetDelay())

	reset := tea.Tick(m.Contact.ResetDelay(), func(time.Time) tea.Msg {
		return model.ContactResetMsg{Seq: seq}
	})
	return tea.Batch(status, reset)
}

// resetContact restores the button and clears the fields.
func resetContact(m *model.Model) {
	m.Contact.Reset()
	m.ContactName.Reset()
	m.ContactEmail.Reset()
	m.ContactMessage.Reset()
}
