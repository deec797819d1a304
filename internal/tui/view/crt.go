package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ApplyCRT imitates scanlines: every second row loses its own colors and
// is redrawn dimmed in the scanline style.
func ApplyCRT(content string, scanline lipgloss.Style) string {
	lines := strings.Split(content, "\n")
	for i := 1; i < len(lines); i += 2 {
		lines[i] = scanline.Render(ansi.Strip(lines[i]))
	}
	return strings.Join(lines, "\n")
}
