package controller

import (
	"fmt"
	"strings"
	"time"

	"termfolio/internal/presenter"
	"termfolio/internal/tui/model"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const statusDuration = 3 * time.Second

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

// handleKeyMsgGlobal processes shortcut keys while no input has focus.
func handleKeyMsgGlobal(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	// --- Overlay-specific key handling --------------------------------------
	if m.CurrentAppMode == model.ModeLogOverlay {
		switch {
		case key.Matches(keyMsg, m.Keys.ToggleLog), key.Matches(keyMsg, m.Keys.Esc):
			m.CurrentAppMode = model.ModeMain
			return m, nil
		case key.Matches(keyMsg, m.Keys.CopyOutput):
			if err := clipboardWrite(strings.Join(m.ActivityLog, "\n")); err != nil {
				LogError(controllerSubsystem, err, "Failed to copy logs")
				return m, m.SetStatusMessage("Copy logs failed", model.StatusBarError, statusDuration)
			}
			return m, m.SetStatusMessage("Logs copied to clipboard", model.StatusBarSuccess, statusDuration)
		default:
			var vpCmd tea.Cmd
			m.LogViewport, vpCmd = m.LogViewport.Update(keyMsg)
			return m, vpCmd
		}
	}

	if m.CurrentAppMode == model.ModeHelpOverlay {
		if key.Matches(keyMsg, m.Keys.Esc) || key.Matches(keyMsg, m.Keys.Help) {
			m.CurrentAppMode = model.ModeMain
		}
		return m, nil
	}

	// --- Page shortcuts -----------------------------------------------------
	switch {
	case key.Matches(keyMsg, m.Keys.Quit):
		return quit(m)

	case key.Matches(keyMsg, m.Keys.JumpTerminal):
		jumpTo(m, model.SectionTerminal)
	case key.Matches(keyMsg, m.Keys.JumpProjects):
		jumpTo(m, model.SectionProjects)
	case key.Matches(keyMsg, m.Keys.JumpContact):
		jumpTo(m, model.SectionContact)
	case key.Matches(keyMsg, m.Keys.Top):
		m.PageViewport.GotoTop()
	case key.Matches(keyMsg, m.Keys.Bottom):
		m.PageViewport.GotoBottom()
	case key.Matches(keyMsg, m.Keys.Down):
		m.PageViewport.SetYOffset(m.PageViewport.YOffset + m.ScrollStep)
	case key.Matches(keyMsg, m.Keys.Up):
		m.PageViewport.SetYOffset(m.PageViewport.YOffset - m.ScrollStep)

	case key.Matches(keyMsg, m.Keys.CycleTheme):
		m.Session.Theme.CycleTheme()
		return m, m.SetStatusMessage(fmt.Sprintf("Theme: %s", m.Session.Theme.Current()), model.StatusBarInfo, statusDuration)
	case key.Matches(keyMsg, m.Keys.ToggleCRT):
		m.CRT = !m.CRT
	case key.Matches(keyMsg, m.Keys.Help):
		m.CurrentAppMode = model.ModeHelpOverlay
	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.CurrentAppMode = model.ModeLogOverlay
		m.LogViewport.GotoBottom()

	case key.Matches(keyMsg, m.Keys.FocusInput):
		if m.Engine == nil {
			return m, nil
		}
		jumpTo(m, model.SectionTerminal)
		return m, focusTerminal(m)
	case key.Matches(keyMsg, m.Keys.FocusContact):
		jumpTo(m, model.SectionContact)
		return m, focusContact(m, model.FocusContactName)

	case key.Matches(keyMsg, m.Keys.ToggleView):
		m.Presenter.Toggle()
	case key.Matches(keyMsg, m.Keys.TabFeatured):
		m.Presenter.SelectTab(presenter.TabFeatured)
	case key.Matches(keyMsg, m.Keys.TabAll):
		m.Presenter.SelectTab(presenter.TabAll)

	case key.Matches(keyMsg, m.Keys.CopyOutput):
		return m, copyTranscript(m)
	}
	return m, nil
}

func jumpTo(m *model.Model, s model.Section) {
	m.PageViewport.SetYOffset(m.SectionOffsets[s])
}

func copyTranscript(m *model.Model) tea.Cmd {
	if m.Engine == nil {
		return nil
	}
	var b strings.Builder
	for _, l := range m.Engine.Transcript() {
		b.WriteString(l.Text)
		b.WriteByte('\n')
	}
	if err := clipboardWrite(b.String()); err != nil {
		LogError(controllerSubsystem, err, "Failed to copy transcript")
		return m.SetStatusMessage("Copy transcript failed", model.StatusBarError, statusDuration)
	}
	return m.SetStatusMessage("Transcript copied to clipboard", model.StatusBarSuccess, statusDuration)
}
