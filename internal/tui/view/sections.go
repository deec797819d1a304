package view

import (
	"fmt"
	"strings"

	"termfolio/internal/contact"
	"termfolio/internal/presenter"
	"termfolio/internal/terminal"
	"termfolio/internal/tui/design"
	"termfolio/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

func renderHeader(m *model.Model, width int) string {
	data := m.Session.Profile.Get()
	name := data.Name
	if name == "" {
		name = "Unknown User"
	}
	lines := []string{m.Styles.Heading.Render(name)}
	if data.Title != "" {
		lines = append(lines, design.TextSecondaryStyle.Render(data.Title))
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

func renderTerminal(m *model.Model, width int) string {
	frame := m.Styles.Terminal
	if m.Focus == model.FocusTerminal {
		frame = m.Styles.PanelFocused
	}
	inner := TerminalContentWidth(m)
	title := m.Styles.TitleBar.Width(inner).Render(runewidth.Truncate(m.TitleLabel, inner-2, "…"))

	var body string
	if m.Engine == nil {
		body = design.DimStyle.Render("terminal unavailable")
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.TerminalViewport.View(),
			m.TerminalInput.View(),
		)
	}
	return frame.Width(inner + frame.GetHorizontalPadding()).Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
}

// TerminalContentWidth is the width available inside the terminal frame.
func TerminalContentWidth(m *model.Model) int {
	return max(m.ContentWidth()-m.Styles.Terminal.GetHorizontalFrameSize(), 1)
}

// PrepareTranscript styles transcript lines by kind for the terminal viewport.
func PrepareTranscript(m *model.Model, lines []terminal.Line) string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		switch l.Kind {
		case terminal.LineEcho:
			out = append(out, m.Styles.Echo.Render(l.Text))
		case terminal.LineArt:
			out = append(out, m.Styles.Art.Render(l.Text))
		default:
			out = append(out, m.Styles.Output.Render(l.Text))
		}
	}
	return strings.Join(out, "\n")
}

func renderProjects(m *model.Model, width int) string {
	featured, all := m.Presenter.TabLabels()
	tab := func(label string, active bool) string {
		if active {
			return m.Styles.TabActive.Render(label)
		}
		return m.Styles.TabInactive.Render(label)
	}
	activeTab := m.Presenter.ActiveTab()
	tabs := tab(featured, activeTab == presenter.TabFeatured) + "   " + tab(all, activeTab == presenter.TabAll)

	active := m.Presenter.Active()
	toggles := tab("▦ "+presenter.ViewCards.String(), active == presenter.ViewCards) + "  " +
		tab("▤ "+presenter.ViewLog.String(), active == presenter.ViewLog)

	gap := width - lipgloss.Width(tabs) - lipgloss.Width(toggles)
	if gap < 1 {
		gap = 1
	}
	controls := tabs + strings.Repeat(" ", gap) + toggles

	return lipgloss.JoinVertical(lipgloss.Left,
		design.SectionTitleStyle.Render("Projects"),
		controls,
		"",
		m.Presenter.Render(),
	)
}

func renderSkills(m *model.Model, width int) string {
	lines := []string{design.SectionTitleStyle.Render("Technical Expertise")}
	if len(m.Skills) == 0 {
		lines = append(lines, design.DimStyle.Render("no skills listed"))
	}

	nameWidth := 0
	for _, s := range m.Skills {
		nameWidth = max(nameWidth, runewidth.StringWidth(s.Name))
	}
	nameWidth = min(nameWidth, width/4)

	for i, s := range m.Skills {
		if i >= len(m.SkillBars) {
			break
		}
		name := runewidth.FillRight(runewidth.Truncate(s.Name, nameWidth, "…"), nameWidth)
		bar := m.SkillBars[i].ViewAs(float64(s.Percentage) / 100)
		lines = append(lines, fmt.Sprintf("%s  %s %3d%%  %s",
			design.TextStyle.Render(name), bar, s.Percentage, design.DimStyle.Render(s.Level)))
	}
	return strings.Join(lines, "\n")
}

func renderContact(m *model.Model, width int) string {
	data := m.Session.Profile.Get()
	lines := []string{design.SectionTitleStyle.Render("Get In Touch")}
	if data.Contact.Email != "" {
		lines = append(lines, "✉ "+m.Styles.Echo.Render(data.Contact.Email))
	}
	if data.Contact.LinkedIn != "" {
		lines = append(lines, "in "+m.Styles.Echo.Render(data.Contact.LinkedIn))
	}
	lines = append(lines, "")

	fieldWidth := min(width-4, 60)
	field := func(label, view string, focused bool) string {
		style := design.InputStyle
		if focused {
			style = m.Styles.InputFocused
		}
		return design.TextSecondaryStyle.Render(label) + "\n" + style.Width(fieldWidth).Render(view)
	}
	lines = append(lines,
		field("Name", m.ContactName.View(), m.Focus == model.FocusContactName),
		field("Email", m.ContactEmail.View(), m.Focus == model.FocusContactEmail),
		field("Message", m.ContactMessage.View(), m.Focus == model.FocusContactMessage),
		"",
	)

	button := m.Styles.Button
	if m.Contact.Disabled() {
		button = design.ButtonDisabledStyle
	}
	lines = append(lines, button.Render(m.Contact.Label()))
	if m.Contact.Label() == contact.SubmitLabel && m.InputFocused() && m.Focus != model.FocusTerminal {
		lines = append(lines, design.DimStyle.Render("ctrl+s to send"))
	}
	return strings.Join(lines, "\n")
}

func renderFooter(m *model.Model, width int) string {
	data := m.Session.Profile.Get()
	left := design.DimStyle.Render("© " + data.Name)
	right := design.DimStyle.Render("theme ") + m.Styles.Echo.Render(m.FooterLabel) +
		design.DimStyle.Render("  ·  press ? for shortcuts")
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
