package design

import (
	"termfolio/internal/theme"

	"github.com/charmbracelet/lipgloss"
)

// Design System Constants
// Following 4px base unit for consistent spacing
const (
	// Spacing units (based on 4px)
	SpaceNone = 0
	SpaceXS   = 1 // 4px
	SpaceSM   = 2 // 8px
	SpaceMD   = 3 // 12px
	SpaceLG   = 4 // 16px

	// Component dimensions
	MinPanelWidth      = 20
	MaxContentWidth    = 100
	TranscriptHeight   = 12
	SkillBarMinWidth   = 10
	ContactFieldHeight = 4
)

// Neutral colors. Accent colors come from the active theme palette.
var (
	ColorBackground = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#0A0D0A",
	}
	ColorSurface = lipgloss.AdaptiveColor{
		Light: "#F9FAFB",
		Dark:  "#111827",
	}
	ColorBorder = lipgloss.AdaptiveColor{
		Light: "#E5E7EB",
		Dark:  "#374151",
	}
	ColorText = lipgloss.AdaptiveColor{
		Light: "#111827",
		Dark:  "#F9FAFB",
	}
	ColorTextSecondary = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}
	ColorTextMuted = lipgloss.AdaptiveColor{
		Light: "#9CA3AF",
		Dark:  "#6B7280",
	}
	ColorError = lipgloss.AdaptiveColor{
		Light: "#DC2626",
		Dark:  "#EF4444",
	}
	ColorWarning = lipgloss.AdaptiveColor{
		Light: "#D97706",
		Dark:  "#F59E0B",
	}
	ColorBackgroundOverlay = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#1E1E1E",
	}
)

// Base Styles
var (
	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	TextSecondaryStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	TextErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	SectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorText).
				MarginBottom(SpaceXS)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Padding(0, SpaceXS).
			Height(1)

	ButtonDisabledStyle = lipgloss.NewStyle().
				Padding(0, SpaceSM).
				Foreground(ColorTextMuted).
				Border(lipgloss.NormalBorder()).
				BorderForeground(ColorBorder)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder).
			Padding(0, SpaceXS)
)

// Overlay styles
var (
	HelpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1).
			Align(lipgloss.Center).
			Foreground(ColorText)

	CenteredOverlayContainerStyle = lipgloss.NewStyle().
					Border(lipgloss.RoundedBorder()).
					BorderForeground(ColorBorder).
					Background(ColorBackgroundOverlay).
					Foreground(ColorText).
					Padding(1, 2)

	LogOverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Background(ColorBackgroundOverlay).
			Foreground(ColorText).
			Padding(1, 2)

	LogPanelTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				MarginBottom(1).
				Foreground(ColorText)
)

// Log level styles
var (
	LogInfoStyle  = lipgloss.NewStyle().Foreground(ColorText)
	LogWarnStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	LogErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	LogDebugStyle = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
)

// Themed holds the palette-dependent component styles. It is rebuilt on
// every theme change.
type Themed struct {
	Panel        lipgloss.Style
	PanelFocused lipgloss.Style
	Terminal     lipgloss.Style
	TitleBar     lipgloss.Style
	Prompt       lipgloss.Style
	Echo         lipgloss.Style
	Output       lipgloss.Style
	Art          lipgloss.Style
	Heading      lipgloss.Style
	Badge        lipgloss.Style
	TabActive    lipgloss.Style
	TabInactive  lipgloss.Style
	Button       lipgloss.Style
	InputFocused lipgloss.Style
	Scanline     lipgloss.Style
}

// NewThemed derives component styles from the theme controller's role styles.
func NewThemed(p theme.Palette, roles theme.Styles, sheet theme.Sheet) Themed {
	panel := roles.Border.
		Border(lipgloss.RoundedBorder()).
		Padding(0, SpaceXS)

	return Themed{
		Panel:        panel,
		PanelFocused: panel.Border(lipgloss.ThickBorder()),
		Terminal:     roles.Glow.Padding(0, SpaceXS),
		TitleBar:     roles.Background.Padding(0, SpaceXS),
		Prompt:       roles.Text.Bold(true),
		Echo:         roles.Text,
		Output:       TextStyle,
		Art:          roles.Art,
		Heading:      roles.Text.Bold(true),
		Badge:        lipgloss.NewStyle().Foreground(ColorBackground).Background(p.PrimaryColor()).Padding(0, SpaceXS).Bold(true),
		TabActive:    roles.Text.Bold(true).Underline(true),
		TabInactive:  DimStyle,
		Button:       lipgloss.NewStyle().Padding(0, SpaceSM).Foreground(ColorBackground).Background(p.PrimaryColor()).Bold(true),
		InputFocused: InputStyle.Inherit(sheet.Focus),
		Scanline:     lipgloss.NewStyle().Foreground(p.Alpha(0.35, "#0a0d0a")),
	}
}

// Layout Helpers
func CenterHorizontal(width int, content string) string {
	contentWidth := lipgloss.Width(content)
	if contentWidth >= width {
		return content
	}
	padding := (width - contentWidth) / 2
	return lipgloss.NewStyle().
		PaddingLeft(padding).
		Width(width).
		Render(content)
}

// Initialize sets up the design system
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}
