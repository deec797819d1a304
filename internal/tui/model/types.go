package model

import (
	"time"

	"termfolio/internal/api"
	"termfolio/internal/contact"
	"termfolio/internal/presenter"
	"termfolio/internal/profile"
	"termfolio/internal/state"
	"termfolio/internal/terminal"
	"termfolio/internal/tui/design"
	"termfolio/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeMain AppMode = iota
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeMain:
		return "Main"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// Focus identifies the input that receives typed keys.
type Focus int

const (
	FocusNone Focus = iota
	FocusTerminal
	FocusContactName
	FocusContactEmail
	FocusContactMessage
)

// Section is a jump target on the page.
type Section int

const (
	SectionTerminal Section = iota
	SectionProjects
	SectionSkills
	SectionContact
)

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
)

// Constants for UI
const (
	MaxActivityLogLines = 1000
	DefaultScrollStep   = 3
)

// TUIConfig carries everything the program needs from bootstrap.
type TUIConfig struct {
	Session      *state.Session
	Surface      *api.Surface
	CommandDelay time.Duration
	FocusDelay   time.Duration
	ResetDelay   time.Duration
	ScrollStep   int
	CRT          bool
	DebugMode    bool
	// Hash generates log-view commit tokens; nil picks random ones.
	Hash presenter.HashFunc
}

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	JumpTerminal key.Binding
	JumpProjects key.Binding
	JumpContact  key.Binding
	Top          key.Binding
	Bottom       key.Binding
	Down         key.Binding
	Up           key.Binding
	CycleTheme   key.Binding
	ToggleCRT    key.Binding
	Help         key.Binding
	Esc          key.Binding
	FocusInput   key.Binding
	FocusContact key.Binding
	ToggleView   key.Binding
	TabFeatured  key.Binding
	TabAll       key.Binding
	CopyOutput   key.Binding
	ToggleLog    key.Binding
	Quit         key.Binding
	ForceQuit    key.Binding

	// Active only while an input has focus.
	Submit    key.Binding
	Complete  key.Binding
	NextField key.Binding
	PrevField key.Binding
	SendForm  key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusInput, k.CycleTheme, k.ToggleView, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.JumpTerminal, k.JumpProjects, k.JumpContact, k.Top, k.Bottom, k.Down, k.Up},
		{k.FocusInput, k.FocusContact, k.Esc, k.Complete, k.SendForm},
		{k.ToggleView, k.TabFeatured, k.TabAll, k.CycleTheme, k.ToggleCRT},
		{k.CopyOutput, k.ToggleLog, k.Help, k.Quit},
	}
}

// Model is the state of the portfolio page.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	CurrentAppMode AppMode
	Focus          Focus
	DebugMode      bool
	CRT            bool

	// Session components
	Session   *state.Session
	Surface   *api.Surface
	Engine    *terminal.Engine // nil when the terminal is disabled
	Presenter *presenter.Presenter
	Contact   *contact.Controller

	// Theme-bound presentation, refreshed by palette subscriptions
	Styles      design.Themed
	ThemeID     string
	TitleLabel  string
	FooterLabel string

	// Terminal
	TerminalInput    textinput.Model
	TerminalViewport viewport.Model
	TranscriptDirty  bool
	PendingCommands  int
	CommandDelay     time.Duration
	FocusDelay       time.Duration

	// Page
	PageViewport   viewport.Model
	SectionOffsets map[Section]int
	TerminalTop    int // first transcript line, in page coordinates
	TerminalBottom int
	ScrollStep     int

	// Skills
	Skills    []profile.Skill
	SkillBars []progress.Model

	// Contact form
	ContactName    textinput.Model
	ContactEmail   textinput.Model
	ContactMessage textarea.Model
	ContactSeq     int
	LastMailto     string

	// UI State & Output
	Keys                 KeyMap
	Help                 help.Model
	ActivityLog          []string
	ActivityLogDirty     bool
	LogViewport          viewport.Model
	LogChannel           <-chan logging.LogEntry
	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	unsubscribe func()
}

// InputFocused reports whether typed keys go to an input instead of the shortcuts.
func (m *Model) InputFocused() bool {
	return m.Focus != FocusNone
}

// Close releases theme subscriptions.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// SetStatusMessage updates the status bar message
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}
