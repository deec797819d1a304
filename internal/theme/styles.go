package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Role names a theme-sensitive rendering role.
type Role int

const (
	RoleBorder Role = iota
	RoleText
	RoleBackground
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleBorder:
		return "border"
	case RoleText:
		return "text"
	case RoleBackground:
		return "background"
	default:
		return "unknown"
	}
}

// Root variable names propagated on every theme change.
const (
	VarPrimary    = "--theme-primary"
	VarPrimaryRGB = "--theme-primary-rgb"
	VarAccent     = "--theme-accent"
)

// SheetID identifies the generated stylesheet fragment. Only one fragment
// with this id exists at a time.
const SheetID = "theme-style"

// surface is the page background that alpha-composed colors are flattened onto.
const surface = "#0a0d0a"

// Styles are the per-role styles derived from the active palette.
type Styles struct {
	Border     lipgloss.Style
	Text       lipgloss.Style
	Background lipgloss.Style
	// Glow stands in for the drop shadow around the terminal container.
	Glow lipgloss.Style
	// Art is the preformatted block style used by the terminal.
	Art lipgloss.Style
}

// ForRole returns the style bound to role.
func (s Styles) ForRole(r Role) lipgloss.Style {
	switch r {
	case RoleBorder:
		return s.Border
	case RoleBackground:
		return s.Background
	default:
		return s.Text
	}
}

func buildStyles(p Palette) Styles {
	return Styles{
		Border:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.PrimaryColor()),
		Text:       lipgloss.NewStyle().Foreground(p.PrimaryColor()),
		Background: lipgloss.NewStyle().Background(p.PrimaryColor()).Foreground(lipgloss.Color(surface)),
		Glow: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.Alpha(0.3, surface)),
		Art: lipgloss.NewStyle().Foreground(p.PrimaryColor()),
	}
}

// Sheet is the scoped fragment with hover, focus and selection rules.
type Sheet struct {
	ID        string
	Selection lipgloss.Style
	Hover     lipgloss.Style
	Focus     lipgloss.Style

	palette Palette
}

func buildSheet(p Palette) Sheet {
	return Sheet{
		ID:        SheetID,
		Selection: lipgloss.NewStyle().Background(p.Alpha(0.2, surface)).Foreground(p.AccentColor()),
		Hover:     lipgloss.NewStyle().Foreground(p.PrimaryColor()).BorderForeground(p.PrimaryColor()),
		Focus:     lipgloss.NewStyle().BorderForeground(p.PrimaryColor()),
		palette:   p,
	}
}

// CSS renders the fragment as the equivalent stylesheet text.
func (s Sheet) CSS() string {
	p := s.palette
	var b strings.Builder
	fmt.Fprintf(&b, "/* #%s */\n", s.ID)
	fmt.Fprintf(&b, "::selection { background-color: rgba(%s, 0.2); color: %s; }\n", p.PrimaryRGB, p.Accent)
	fmt.Fprintf(&b, ".hover\\:text-primary:hover { color: %s !important; }\n", p.Primary)
	fmt.Fprintf(&b, ".hover\\:border-primary:hover { border-color: %s !important; }\n", p.Primary)
	fmt.Fprintf(&b, ".focus\\:border-primary:focus { border-color: %s !important; }\n", p.Primary)
	return b.String()
}

func buildVariables(p Palette) map[string]string {
	return map[string]string{
		VarPrimary:    p.Primary,
		VarPrimaryRGB: p.PrimaryRGB.String(),
		VarAccent:     p.Accent,
	}
}
