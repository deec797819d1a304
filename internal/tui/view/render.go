package view

import (
	"strings"

	"termfolio/internal/tui/design"
	"termfolio/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// Render produces the whole screen for the current mode.
func Render(m *model.Model) string {
	if m.CurrentAppMode == model.ModeQuitting {
		return ""
	}
	if m.Width == 0 || m.Height == 0 {
		return "Loading..."
	}

	switch m.CurrentAppMode {
	case model.ModeHelpOverlay:
		return renderHelpOverlay(m)
	case model.ModeLogOverlay:
		return renderLogOverlay(m)
	}

	page := m.PageViewport.View()
	if m.CRT {
		page = ApplyCRT(page, m.Styles.Scanline)
	}
	return lipgloss.JoinVertical(lipgloss.Left, page, renderStatusBar(m, m.Width))
}

// PreparePage lays out every section into the page viewport and records
// where each section starts so the jump shortcuts can scroll to it.
func PreparePage(m *model.Model) {
	width := m.ContentWidth()

	type block struct {
		section model.Section
		jump    bool
		content string
	}
	blocks := []block{
		{content: renderHeader(m, width)},
		{section: model.SectionTerminal, jump: true, content: renderTerminal(m, width)},
		{section: model.SectionProjects, jump: true, content: renderProjects(m, width)},
		{section: model.SectionSkills, jump: true, content: renderSkills(m, width)},
		{section: model.SectionContact, jump: true, content: renderContact(m, width)},
		{content: renderFooter(m, width)},
	}

	var parts []string
	offset := 0
	for _, b := range blocks {
		if b.jump {
			m.SectionOffsets[b.section] = offset
		}
		if b.section == model.SectionTerminal && b.jump {
			// Border and title bar sit above the transcript.
			m.TerminalTop = offset + 2
			m.TerminalBottom = m.TerminalTop + m.TerminalViewport.Height
		}
		parts = append(parts, b.content)
		offset += lipgloss.Height(b.content) + 1
	}

	m.PageViewport.Width = m.Width
	m.PageViewport.Height = max(m.Height-1, 1)
	m.PageViewport.SetContent(strings.Join(parts, "\n\n"))
}

func renderStatusBar(m *model.Model, width int) string {
	left := m.StatusBarMessage
	style := design.StatusBarStyle
	switch {
	case left == "":
		left = m.Help.ShortHelpView(m.Keys.ShortHelp())
	case m.StatusBarMessageType == model.StatusBarError:
		style = style.Foreground(design.ColorError)
	case m.StatusBarMessageType == model.StatusBarSuccess:
		style = style.Inherit(m.Styles.Echo)
	}

	mode := "PAGE"
	if m.InputFocused() {
		mode = "INPUT"
	}
	right := m.Styles.Badge.Render(mode)

	gap := width - lipgloss.Width(right) - style.GetHorizontalFrameSize()
	if gap < 0 {
		gap = 0
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		style.Width(gap).MaxWidth(gap+style.GetHorizontalFrameSize()).Render(left),
		right,
	)
}
