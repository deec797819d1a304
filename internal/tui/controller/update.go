package controller

import (
	"termfolio/internal/tui/model"
	"termfolio/internal/tui/view"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// mainControllerDispatch is the central message routing function. It
// directs every message to its handler and then refreshes the viewports
// once, after all state changes of this message have been applied.
func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.Keys.ForceQuit) {
			return quit(m)
		}
		if m.CurrentAppMode == model.ModeMain && m.InputFocused() {
			m, cmd = handleKeyMsgInputMode(m, msg)
		} else {
			m, cmd = handleKeyMsgGlobal(m, msg)
		}
		if m.CurrentAppMode == model.ModeQuitting {
			return m, cmd
		}
		cmds = append(cmds, cmd)

	case tea.WindowSizeMsg:
		m = handleWindowSizeMsg(m, msg)

	case tea.MouseMsg:
		m, cmd = handleMouseMsg(m, msg)
		cmds = append(cmds, cmd)

	case model.DispatchMsg:
		if msg.Fn != nil {
			msg.Fn()
		}

	case model.RunCommandMsg:
		runCommand(m, msg.Raw)

	case model.FocusTerminalMsg:
		if m.Engine != nil && !m.InputFocused() {
			cmds = append(cmds, focusTerminal(m))
		}

	case model.ContactResetMsg:
		if msg.Seq == m.ContactSeq {
			resetContact(m)
		}

	case model.ClearStatusBarMsg:
		m.StatusBarMessage = ""
		if m.StatusBarClearCancel != nil {
			close(m.StatusBarClearCancel)
			m.StatusBarClearCancel = nil
		}

	case model.NewLogEntryMsg:
		model.AddRawLineToActivityLog(m, msg.Entry.String())
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))

	default:
		// Cursor blinks and similar internal messages go to the focused input.
		cmds = append(cmds, updateFocusedInput(m, msg))
	}

	refreshViewports(m)
	return m, tea.Batch(cmds...)
}

// refreshViewports pushes changed content into the viewports and lays out the page.
func refreshViewports(m *model.Model) {
	if m.Engine != nil && m.TranscriptDirty {
		m.TerminalViewport.SetContent(view.PrepareTranscript(m, m.Engine.Transcript()))
		m.TerminalViewport.GotoBottom()
		m.TranscriptDirty = false
	}

	w, h := view.LogViewportSize(m)
	logSizeChanged := m.LogViewport.Width != w || m.LogViewport.Height != h
	if m.ActivityLogDirty || logSizeChanged {
		wasAtBottom := m.LogViewport.AtBottom()
		m.LogViewport.Width, m.LogViewport.Height = w, h
		m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog))
		if wasAtBottom {
			m.LogViewport.GotoBottom()
		}
		m.ActivityLogDirty = false
	}

	view.PreparePage(m)
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	m.CurrentAppMode = model.ModeQuitting
	m.Close()
	LogInfo(controllerSubsystem, "Quitting")
	return m, tea.Quit
}
