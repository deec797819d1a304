package view

import (
	"fmt"
	"strings"

	"termfolio/internal/tui/design"
	"termfolio/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// renderHelpOverlay renders the keyboard shortcut panel
func renderHelpOverlay(m *model.Model) string {
	titleView := design.HelpTitleStyle.Render("KEYBOARD SHORTCUTS")

	h := m.Help
	h.ShowAll = true
	helpContent := h.FullHelpView(m.Keys.FullHelp())

	var commands []string
	if m.Engine != nil {
		for _, c := range m.Engine.Commands() {
			commands = append(commands, c.Name)
		}
	}
	if len(commands) > 0 {
		helpContent += "\n\n" + design.TextSecondaryStyle.Render("Terminal commands: ") + strings.Join(commands, ", ")
	}
	helpContent += "\n\n" + design.DimStyle.Render("Shortcuts are off while an input has focus. esc leaves the input.")

	container := design.CenteredOverlayContainerStyle.Render(titleView + "\n" + helpContent)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, container)
}

// renderLogOverlay renders the activity log overlay
func renderLogOverlay(m *model.Model) string {
	title := design.LogPanelTitleStyle.Render(fmt.Sprintf("Activity Log (%d)  (↑/↓ scroll  •  y copy  •  Esc close)", len(m.ActivityLog)))
	viewportView := m.LogViewport.View()
	content := lipgloss.JoinVertical(lipgloss.Left, title, viewportView)

	overlayTotalWidth, overlayTotalHeight := LogOverlaySize(m)
	overlay := design.LogOverlayStyle.
		Width(overlayTotalWidth - design.LogOverlayStyle.GetHorizontalBorderSize()).
		Height(overlayTotalHeight - design.LogOverlayStyle.GetVerticalBorderSize()).
		Render(content)

	overlayCanvas := lipgloss.Place(m.Width, m.Height-1, lipgloss.Center, lipgloss.Center, overlay)
	return lipgloss.JoinVertical(lipgloss.Left, overlayCanvas, renderStatusBar(m, m.Width))
}

// LogOverlaySize returns the outer size of the log overlay.
func LogOverlaySize(m *model.Model) (width, height int) {
	return int(float64(m.Width) * 0.8), int(float64(m.Height) * 0.7)
}

// LogViewportSize returns the viewport size inside the log overlay.
func LogViewportSize(m *model.Model) (width, height int) {
	w, h := LogOverlaySize(m)
	titleHeight := lipgloss.Height(design.LogPanelTitleStyle.Render("x"))
	width = max(w-design.LogOverlayStyle.GetHorizontalFrameSize(), 0)
	height = max(h-design.LogOverlayStyle.GetVerticalFrameSize()-titleHeight, 0)
	return width, height
}
