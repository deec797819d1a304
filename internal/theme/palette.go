package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette identifiers, in cycle order.
const (
	Green  = "green"
	Amber  = "amber"
	Blue   = "blue"
	Purple = "purple"
)

// Default is the palette applied at startup when none is configured.
const Default = Green

// RGB is the primary color as a separable numeric triple, used for alpha composition.
type RGB struct {
	R, G, B uint8
}

// String renders the triple the way it is stored in the --theme-primary-rgb variable.
func (c RGB) String() string {
	return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
}

// Palette is an immutable named set of theme colors.
type Palette struct {
	ID         string
	Primary    string
	PrimaryRGB RGB
	Accent     string
}

// PrimaryColor returns the primary color for lipgloss styles.
func (p Palette) PrimaryColor() lipgloss.Color { return lipgloss.Color(p.Primary) }

// AccentColor returns the accent color for lipgloss styles.
func (p Palette) AccentColor() lipgloss.Color { return lipgloss.Color(p.Accent) }

// Alpha composes the primary color at the given opacity over a solid background.
// Terminals have no alpha channel, so rgba(primary, a) is flattened here.
func (p Palette) Alpha(a float64, background string) lipgloss.Color {
	bg, err := colorful.Hex(background)
	if err != nil {
		bg = colorful.Color{}
	}
	fg := colorful.Color{
		R: float64(p.PrimaryRGB.R) / 255,
		G: float64(p.PrimaryRGB.G) / 255,
		B: float64(p.PrimaryRGB.B) / 255,
	}
	return lipgloss.Color(bg.BlendRgb(fg, a).Clamped().Hex())
}

func newPalette(id, primary, accent string) Palette {
	c, err := colorful.Hex(primary)
	if err != nil {
		panic(fmt.Sprintf("theme: invalid primary color %q for %s: %v", primary, id, err))
	}
	r, g, b := c.RGB255()
	return Palette{ID: id, Primary: primary, PrimaryRGB: RGB{R: r, G: g, B: b}, Accent: accent}
}

var (
	order = []string{Green, Amber, Blue, Purple}

	palettes = map[string]Palette{
		Green:  newPalette(Green, "#10b981", "#34d399"),
		Amber:  newPalette(Amber, "#f59e0b", "#fbbf24"),
		Blue:   newPalette(Blue, "#3b82f6", "#60a5fa"),
		Purple: newPalette(Purple, "#8b5cf6", "#a78bfa"),
	}
)

// Lookup returns the palette registered under id.
func Lookup(id string) (Palette, bool) {
	p, ok := palettes[id]
	return p, ok
}

// IDs returns every palette id in cycle order.
func IDs() []string {
	return append([]string(nil), order...)
}

// next returns the id following id in cycle order, wrapping from last to first.
// Unknown ids restart the cycle.
func next(id string) string {
	for i, candidate := range order {
		if candidate == id {
			return order[(i+1)%len(order)]
		}
	}
	return order[0]
}
