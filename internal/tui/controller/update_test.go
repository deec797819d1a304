package controller

import (
	"errors"
	"strings"
	"testing"
	"time"

	"termfolio/internal/api"
	"termfolio/internal/presenter"
	"termfolio/internal/profile"
	"termfolio/internal/state"
	"termfolio/internal/terminal"
	"termfolio/internal/tui/model"
	"termfolio/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile() profile.Data {
	return profile.Data{
		Name:  "Jane Doe",
		Title: "Platform Engineer",
		Bio:   "Seasoned platform engineer.",
		Skills: []profile.Skill{
			{Name: "Go", Level: "expert", Percentage: 90},
			{Name: "Rust", Level: "intermediate", Percentage: 60},
		},
		Projects: []profile.Project{
			{Name: "envoy-lab", Description: "Service mesh experiments", Featured: true},
			{Name: "tinykv", Description: "Embedded key-value store", Featured: true},
		},
		Contact: profile.ContactInfo{Email: "jane@example.com", LinkedIn: "linkedin.com/in/jane"},
	}
}

func newTestModel(t *testing.T, delay time.Duration) *model.Model {
	t.Helper()
	session := state.NewSession(testProfile(), "green")
	m, err := model.InitializeModel(model.TUIConfig{
		Session:      session,
		Surface:      api.NewSurface(session),
		CommandDelay: delay,
		ResetDelay:   time.Second,
		Hash:         func() string { return "abc1234" },
	}, make(chan logging.LogEntry, 10))
	require.NoError(t, err)
	t.Cleanup(m.Close)

	m, _ = mainControllerDispatch(m, tea.WindowSizeMsg{Width: 100, Height: 20})
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func transcriptText(m *model.Model) string {
	var b strings.Builder
	for _, l := range m.Engine.Transcript() {
		b.WriteString(l.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

func stubClipboard(t *testing.T, err error) *string {
	t.Helper()
	var copied string
	orig := clipboardWrite
	clipboardWrite = func(s string) error {
		copied = s
		return err
	}
	t.Cleanup(func() { clipboardWrite = orig })
	return &copied
}

func TestSubmitCommand_NoDelayRunsImmediately(t *testing.T) {
	m := newTestModel(t, 0)
	m, _ = mainControllerDispatch(m, model.FocusTerminalMsg{})
	require.Equal(t, model.FocusTerminal, m.Focus)

	m.TerminalInput.SetValue("whoami")
	m, _ = mainControllerDispatch(m, tea.KeyMsg{Type: tea.KeyEnter})

	lines := m.Engine.Transcript()
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, terminal.LineEcho, lines[len(lines)-2].Kind)
	assert.Equal(t, "$ whoami", lines[len(lines)-2].Text)
	assert.Equal(t, "Jane Doe", lines[len(lines)-1].Text)
	assert.Empty(t, m.TerminalInput.Value())
	assert.Zero(t, m.PendingCommands)
}

func TestSubmitCommand_DelaySchedulesRun(t *testing.T) {
	m := newTestModel(t, 50*time.Millisecond)
	m, _ = mainControllerDispatch(m, model.FocusTerminalMsg{})

	m.TerminalInput.SetValue("about")
	m, cmd := mainControllerDispatch(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, 1, m.PendingCommands)
	assert.Equal(t, terminal.StateExecuting, m.Engine.State())
	assert.NotContains(t, transcriptText(m), "Seasoned platform engineer.")

	m, _ = mainControllerDispatch(m, model.RunCommandMsg{Raw: "about"})
	assert.Zero(t, m.PendingCommands)
	assert.Equal(t, terminal.StateIdle, m.Engine.State())
	assert.Contains(t, transcriptText(m), "Seasoned platform engineer.")
}

func TestClearCommand(t *testing.T) {
	m := newTestModel(t, 0)
	m, _ = mainControllerDispatch(m, model.FocusTerminalMsg{})
	m.TerminalInput.SetValue("clear")
	m, _ = mainControllerDispatch(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, m.Engine.Transcript())
}

func TestShortcutsSuppressedWhileInputFocused(t *testing.T) {
	m := newTestModel(t, 0)
	m, _ = mainControllerDispatch(m, model.FocusTerminalMsg{})

	m, _ = mainControllerDispatch(m, runes("t"))
	assert.Equal(t, "green", m.Session.Theme.Current())
	assert.Equal(t, "t", m.TerminalInput.Value())

	m, _ = mainControllerDispatch(m, tea.KeyMsg{Type: tea.KeyEscape})
	assert.Equal(t, model.FocusNone, m.Focus)

	m, _ = mainControllerDispatch(m, runes("t"))
	assert.Equal(t, "amber", m.Session.Theme.Current())
	assert.Equal(t, "amber", m.FooterLabel)
	assert.Equal(t, "jane-doe — zsh — amber", m.TitleLabel)
}

func TestTabFocusesTerminal(t *testing.T) {
	m := newTestModel(t, 0)
	m, cmd := mainControllerDispatch(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.NotNil(t, cmd)
	assert.Equal(t, model.FocusTerminal, m.Focus)
	assert.True(t, m.TerminalInput.Focused())
}

func TestTabCompletesCommand(t *testing.T) {
	m := newTestModel(t, 0)
	m, _ = mainControllerDispatch(m, model.FocusTerminalMsg{})
	m.TerminalInput.SetValue("neo")
	m, _ = mainControllerDispatch(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "neofetch", m.TerminalInput.Value())
	assert.Equal(t, model.FocusTerminal, m.Focus)
}

func TestHelpOverlayToggle(t *testing.T) {
	m := newTestModel(t, 0)
	m, _ = mainControllerDispatch(m, runes("?"))
	assert.Equal(t, model.ModeHelpOverlay, m.CurrentAppMode)

	// Shortcuts are inactive behind the overlay.
	m, _ = mainControllerDispatch(m, runes("t"))
	assert.Equal(t, "green", m.Session.Theme.Current())

	m, _ = mainControllerDispatch(m, tea.KeyMsg{Type: tea.KeyEscape})
	assert.Equal(t, model.ModeMain, m.CurrentAppMode)
}

func TestPageNavigation(t *testing.T) {
	m := newTestModel(t, 0)

	m, _ = mainControllerDispatch(m, runes("j"))
	assert.Equal(t, m.ScrollStep, m.PageViewport.YOffset)
	m, _ = mainControllerDispatch(m, runes("k"))
	assert.Zero(t, m.PageViewport.YOffset)

	m, _ = mainControllerDispatch(m, runes("2"))
	assert.Positive(t, m.PageViewport.YOffset)
	assert.LessOrEqual(t, m.PageViewport.YOffset, m.SectionOffsets[model.SectionProjects])

	m, _ = mainControllerDispatch(m, runes("g"))
	assert.Zero(t, m.PageViewport.YOffset)

	m, _ = mainControllerDispatch(m, runes("G"))
	assert.True(t, m.PageViewport.AtBottom())
}

func TestProjectShortcuts(t *testing.T) {
	m := newTestModel(t, 0)

	m, _ = mainControllerDispatch(m, runes("v"))
	assert.Equal(t, presenter.ViewLog, m.Presenter.Active())
	m, _ = mainControllerDispatch(m, runes("a"))
	assert.Equal(t, presenter.TabAll, m.Presenter.ActiveTab())
	m, _ = mainControllerDispatch(m, runes("f"))
	assert.Equal(t, presenter.TabFeatured, m.Presenter.ActiveTab())
	m, _ = mainControllerDispatch(m, runes("v"))
	assert.Equal(t, presenter.ViewCards, m.Presenter.Active())
}

func TestToggleCRT(t *testing.T) {
	m := newTestModel(t, 0)
	m, _ = mainControllerDispatch(m, runes("c"))
	assert.True(t, m.CRT)
	m, _ = mainControllerDispatch(m, runes("c"))
	assert.False(t, m.CRT)
}

func TestCopyTranscript(t *testing.T) {
	copied := stubClipboard(t, nil)
	m := newTestModel(t, 0)

	m, _ = mainControllerDispatch(m, runes("y"))
	assert.Contains(t, *copied, "Welcome to jane-doe@portfolio")
	assert.Equal(t, model.StatusBarSuccess, m.StatusBarMessageType)
}

func TestCopyTranscript_ClipboardError(t *testing.T) {
	stubClipboard(t, errors.New("no clipboard"))
	m := newTestModel(t, 0)

	m, _ = mainControllerDispatch(m, runes("y"))
	assert.Equal(t, model.StatusBarError, m.StatusBarMessageType)
}

func TestDispatchMsgRunsOnUpdateLoop(t *testing.T) {
	m := newTestModel(t, 0)
	called := false
	m, _ = mainControllerDispatch(m, model.DispatchMsg{Fn: func() {
		called = true
		m.Session.Theme.SetTheme("purple")
	}})
	assert.True(t, called)
	assert.Equal(t, "purple", m.ThemeID)
}

func TestContactSubmitAndReset(t *testing.T) {
	copied := stubClipboard(t, nil)
	m := newTestModel(t, 0)

	m, _ = mainControllerDispatch(m, runes("m"))
	require.Equal(t, model.FocusContactName, m.Focus)
	m.ContactName.SetValue("Sam")
	m, _ = mainControllerDispatch(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, model.FocusContactEmail, m.Focus)
	m.ContactEmail.SetValue("sam@example.com")
	m, _ = mainControllerDispatch(m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, model.FocusContactMessage, m.Focus)
	m.ContactMessage.SetValue("Hello there")

	m, cmd := mainControllerDispatch(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.True(t, m.Contact.Disabled())
	assert.Equal(t, model.FocusNone, m.Focus)
	assert.True(t, strings.HasPrefix(m.LastMailto, "mailto:jane@example.com?"))
	assert.Equal(t, m.LastMailto, *copied)

	// A reset scheduled by an earlier submission is ignored.
	m, _ = mainControllerDispatch(m, model.ContactResetMsg{Seq: m.ContactSeq - 1})
	assert.True(t, m.Contact.Disabled())

	m, _ = mainControllerDispatch(m, model.ContactResetMsg{Seq: m.ContactSeq})
	assert.False(t, m.Contact.Disabled())
	assert.Empty(t, m.ContactName.Value())
	assert.Empty(t, m.ContactMessage.Value())
}

func TestMouseClickInTranscriptFocusesInput(t *testing.T) {
	m := newTestModel(t, 0)
	require.Equal(t, model.FocusNone, m.Focus)

	m, _ = mainControllerDispatch(m, tea.MouseMsg{
		X:      5,
		Y:      m.TerminalTop - m.PageViewport.YOffset,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionPress,
	})
	assert.Equal(t, model.FocusTerminal, m.Focus)
}

func TestMouseWheelScrollsPage(t *testing.T) {
	m := newTestModel(t, 0)
	m, _ = mainControllerDispatch(m, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	assert.Equal(t, m.ScrollStep, m.PageViewport.YOffset)
}

func TestLogEntryAppendsToActivityLog(t *testing.T) {
	m := newTestModel(t, 0)
	entry := logging.LogEntry{Timestamp: time.Now(), Level: logging.LevelInfo, Subsystem: "Theme", Message: "switched"}
	m, cmd := mainControllerDispatch(m, model.NewLogEntryMsg{Entry: entry})
	assert.NotNil(t, cmd)
	require.NotEmpty(t, m.ActivityLog)
	assert.Contains(t, m.ActivityLog[len(m.ActivityLog)-1], "Theme: switched")

	m, _ = mainControllerDispatch(m, runes("L"))
	assert.Equal(t, model.ModeLogOverlay, m.CurrentAppMode)
	m, _ = mainControllerDispatch(m, tea.KeyMsg{Type: tea.KeyEscape})
	assert.Equal(t, model.ModeMain, m.CurrentAppMode)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, 0)
	m, cmd := mainControllerDispatch(m, runes("q"))
	assert.Equal(t, model.ModeQuitting, m.CurrentAppMode)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
