package view

import (
	"strings"
	"testing"

	"termfolio/internal/profile"
	"termfolio/internal/state"
	"termfolio/internal/terminal"
	"termfolio/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderModel(t *testing.T) *model.Model {
	t.Helper()
	session := state.NewSession(profile.Data{
		Name:  "Jane Doe",
		Title: "Platform Engineer",
		Skills: []profile.Skill{
			{Name: "go", Level: "expert", Percentage: 90},
		},
		Projects: []profile.Project{
			{Name: "envoy-lab", Description: "Service mesh experiments", Featured: true},
			{Name: "tinykv", Description: "Embedded key-value store", Featured: true},
			{Name: "dotfiles", Description: "Shell setup", Featured: true},
		},
		Contact: profile.ContactInfo{Email: "jane@example.com"},
	}, "amber")
	m, err := model.InitializeModel(model.TUIConfig{
		Session: session,
		Hash:    func() string { return "0a1b2c3" },
	}, nil)
	require.NoError(t, err)
	t.Cleanup(m.Close)

	m.Width, m.Height = 100, 30
	m.TerminalViewport.Width = TerminalContentWidth(m)
	m.TerminalViewport.SetContent(PrepareTranscript(m, m.Engine.Transcript()))
	PreparePage(m)
	return m
}

func TestRender_Loading(t *testing.T) {
	m := &model.Model{CurrentAppMode: model.ModeMain}
	assert.Equal(t, "Loading...", Render(m))
}

func TestRender_Quitting(t *testing.T) {
	m := &model.Model{CurrentAppMode: model.ModeQuitting, Width: 80, Height: 20}
	assert.Empty(t, Render(m))
}

func TestPreparePage_ContainsSections(t *testing.T) {
	m := newRenderModel(t)
	m.PageViewport.Height = 500
	page := ansi.Strip(m.PageViewport.View())

	for _, want := range []string{
		"Jane Doe",
		"jane-doe — zsh — amber",
		"Welcome to jane-doe@portfolio",
		"featured (3)",
		"all (3)",
		"Technical Expertise",
		"Get In Touch",
		"Send Message",
		"theme amber",
	} {
		assert.Contains(t, page, want)
	}
}

func TestPreparePage_SectionOffsetsAscend(t *testing.T) {
	m := newRenderModel(t)
	order := []model.Section{model.SectionTerminal, model.SectionProjects, model.SectionSkills, model.SectionContact}
	for i := 1; i < len(order); i++ {
		assert.Greater(t, m.SectionOffsets[order[i]], m.SectionOffsets[order[i-1]])
	}
	assert.Greater(t, m.TerminalTop, m.SectionOffsets[model.SectionTerminal])
	assert.Equal(t, m.TerminalTop+m.TerminalViewport.Height, m.TerminalBottom)
}

func TestPreparePage_LogView(t *testing.T) {
	m := newRenderModel(t)
	m.Presenter.Toggle()
	PreparePage(m)
	m.PageViewport.Height = 500
	page := ansi.Strip(m.PageViewport.View())

	assert.Contains(t, page, "git log --oneline --graph --decorate")
	assert.Equal(t, 3, strings.Count(page, "0a1b2c3"))
}

func TestRenderTerminal_Disabled(t *testing.T) {
	m := newRenderModel(t)
	m.Engine = nil
	assert.Contains(t, ansi.Strip(renderTerminal(m, m.ContentWidth())), "terminal unavailable")
}

func TestRenderTerminal_FitsContentWidth(t *testing.T) {
	m := newRenderModel(t)
	out := renderTerminal(m, m.ContentWidth())
	assert.LessOrEqual(t, lipgloss.Width(out), m.ContentWidth())
}

func TestPrepareTranscript_KeepsOrder(t *testing.T) {
	m := newRenderModel(t)
	out := ansi.Strip(PrepareTranscript(m, []terminal.Line{
		{Kind: terminal.LineEcho, Text: "$ whoami"},
		{Kind: terminal.LineOutput, Text: "Jane Doe"},
		{Kind: terminal.LineArt, Text: "  .--."},
	}))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "$ whoami")
	assert.Contains(t, lines[1], "Jane Doe")
	assert.Contains(t, lines[2], ".--.")
}

func TestRender_Overlays(t *testing.T) {
	m := newRenderModel(t)

	m.CurrentAppMode = model.ModeHelpOverlay
	help := ansi.Strip(Render(m))
	assert.Contains(t, help, "KEYBOARD SHORTCUTS")
	assert.Contains(t, help, "neofetch")

	m.CurrentAppMode = model.ModeLogOverlay
	m.ActivityLog = []string{"12:00:00 [INFO] Theme: switched"}
	assert.Contains(t, ansi.Strip(Render(m)), "Activity Log (1)")
}

func TestRenderStatusBar_Mode(t *testing.T) {
	m := newRenderModel(t)
	assert.Contains(t, ansi.Strip(renderStatusBar(m, m.Width)), "PAGE")
	m.Focus = model.FocusTerminal
	assert.Contains(t, ansi.Strip(renderStatusBar(m, m.Width)), "INPUT")
}

func TestPrepareLogContent(t *testing.T) {
	out := ansi.Strip(PrepareLogContent([]string{"a [ERROR] x", "b [INFO] y"}))
	assert.Equal(t, "a [ERROR] x\nb [INFO] y", out)
}
