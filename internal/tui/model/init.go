package model

import (
	"errors"
	"fmt"
	"time"

	"termfolio/internal/contact"
	"termfolio/internal/presenter"
	"termfolio/internal/profile"
	"termfolio/internal/terminal"
	"termfolio/internal/theme"
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

// ErrNoSession is returned when the TUI is started without session state.
var ErrNoSession = errors.New("tui: session state is required")

// DefaultKeyMap returns the page shortcuts.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		JumpTerminal: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "jump to terminal"),
		),
		JumpProjects: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "jump to projects"),
		),
		JumpContact: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "jump to contact"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "scroll up"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "cycle theme"),
		),
		ToggleCRT: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "crt effect"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close / leave input"),
		),
		FocusInput: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus terminal"),
		),
		FocusContact: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "write a message"),
		),
		ToggleView: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "cards/log view"),
		),
		TabFeatured: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "featured tab"),
		),
		TabAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "all tab"),
		),
		CopyOutput: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy transcript"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "activity log"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run command"),
		),
		Complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete command"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		SendForm: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "send message"),
		),
	}
}

// InitializeModel builds the page model and binds it to the session's theme
// controller and profile store.
func InitializeModel(cfg TUIConfig, logChannel <-chan logging.LogEntry) (*Model, error) {
	if cfg.Session == nil {
		return nil, ErrNoSession
	}
	data := cfg.Session.Profile.Get()

	engine, err := terminal.New(cfg.Session.Profile, cfg.Session.Theme)
	if err != nil {
		if !errors.Is(err, terminal.ErrNotInteractive) {
			return nil, fmt.Errorf("create terminal: %w", err)
		}
		logging.Warn("TUI", "Terminal disabled: %v", err)
		engine = nil
	}

	scrollStep := cfg.ScrollStep
	if scrollStep <= 0 {
		scrollStep = DefaultScrollStep
	}

	termInput := textinput.New()
	termInput.Prompt = "$ "
	termInput.Placeholder = `type "help"`
	termInput.CharLimit = 256

	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 100
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 200
	message := textarea.New()
	message.Placeholder = "Your message"
	message.ShowLineNumbers = false
	message.SetHeight(design.ContactFieldHeight)

	m := &Model{
		CurrentAppMode:   ModeMain,
		DebugMode:        cfg.DebugMode,
		CRT:              cfg.CRT,
		Session:          cfg.Session,
		Surface:          cfg.Surface,
		Engine:           engine,
		Presenter:        presenter.New(cfg.Session.Profile, cfg.Hash),
		Contact:          contact.NewController(data.Contact.Email, cfg.ResetDelay),
		TerminalInput:    termInput,
		TerminalViewport: viewport.New(0, design.TranscriptHeight),
		CommandDelay:     cfg.CommandDelay,
		FocusDelay:       cfg.FocusDelay,
		PageViewport:     viewport.New(0, 0),
		SectionOffsets:   map[Section]int{},
		ScrollStep:       scrollStep,
		ContactName:      name,
		ContactEmail:     email,
		ContactMessage:   message,
		TranscriptDirty:  true,
		Keys:             DefaultKeyMap(),
		Help:             help.New(),
		LogViewport:      viewport.New(0, 0),
		LogChannel:       logChannel,
	}
	m.RefreshSkills(data.Skills)
	m.bind()

	if cfg.Surface != nil {
		cfg.Surface.RegisterSkillsHandler(m)
	}
	return m, nil
}

// bind subscribes the theme-dependent parts of the page to the controller,
// in the order they appear on screen.
func (m *Model) bind() {
	ctrl := m.Session.Theme
	unsubs := []func(){
		ctrl.Subscribe(theme.BindingFunc(func(p theme.Palette) {
			m.ThemeID = p.ID
			m.Styles = design.NewThemed(p, ctrl.Styles(), ctrl.Sheet())
			m.TerminalInput.PromptStyle = m.Styles.Prompt
			m.TranscriptDirty = true
		})),
		ctrl.Subscribe(theme.BindingFunc(func(p theme.Palette) {
			m.TitleLabel = TitleLabel(m.Session.Profile.Get().Handle(), p.ID)
		})),
		ctrl.Subscribe(m.Presenter),
		ctrl.Subscribe(theme.BindingFunc(func(p theme.Palette) {
			m.rebuildSkillBars(p)
		})),
		ctrl.Subscribe(theme.BindingFunc(func(p theme.Palette) {
			m.FooterLabel = p.ID
		})),
	}
	m.unsubscribe = func() {
		for _, u := range unsubs {
			u()
		}
	}

	m.Session.Profile.Watch(m.applyProfile)
}

// TitleLabel formats the terminal window title.
func TitleLabel(handle, themeID string) string {
	return fmt.Sprintf("%s — zsh — %s", handle, themeID)
}

// applyProfile refreshes everything derived from the profile.
func (m *Model) applyProfile(data profile.Data) {
	m.Presenter.Invalidate()
	m.Contact.SetRecipient(data.Contact.Email)
	m.TitleLabel = TitleLabel(data.Handle(), m.ThemeID)
	m.RefreshSkills(data.Skills)
	logging.Debug("TUI", "Profile refreshed for %s", data.Handle())
}

// RefreshSkills implements api.SkillsHandler: it rebuilds one progress bar
// per skill in the active palette and returns how many were built.
func (m *Model) RefreshSkills(skills []profile.Skill) int {
	m.Skills = make([]profile.Skill, 0, len(skills))
	for _, s := range skills {
		m.Skills = append(m.Skills, profile.NormalizeSkill(s))
	}
	m.rebuildSkillBars(m.Session.Theme.Palette())
	return len(m.SkillBars)
}

func (m *Model) rebuildSkillBars(p theme.Palette) {
	width := m.SkillBarWidth()
	bars := make([]progress.Model, len(m.Skills))
	for i := range m.Skills {
		bars[i] = progress.New(
			progress.WithSolidFill(p.Primary),
			progress.WithoutPercentage(),
			progress.WithWidth(width),
		)
	}
	m.SkillBars = bars
}

// SkillBarWidth is the bar width for the current terminal width.
func (m *Model) SkillBarWidth() int {
	w := m.ContentWidth() / 2
	if w < design.SkillBarMinWidth {
		w = design.SkillBarMinWidth
	}
	return w
}

// ContentWidth is the usable page width.
func (m *Model) ContentWidth() int {
	w := m.Width - 2
	if w > design.MaxContentWidth {
		w = design.MaxContentWidth
	}
	if w < design.MinPanelWidth {
		w = design.MinPanelWidth
	}
	return w
}

// Init starts the log listener and schedules the initial input focus
// for after the first layout.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{ListenForLogEntriesCmd(m.LogChannel)}
	if m.Engine != nil {
		cmds = append(cmds, FocusTerminalCmd(m.FocusDelay))
	}
	return tea.Batch(cmds...)
}

// FocusTerminalCmd delivers FocusTerminalMsg after delay.
func FocusTerminalCmd(delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return FocusTerminalMsg{} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg { return FocusTerminalMsg{} })
}
