package terminal

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// LineKind selects how a transcript line is rendered.
type LineKind int

const (
	// LineOutput is regular command output.
	LineOutput LineKind = iota
	// LineEcho is the prompt echo of a submitted command.
	LineEcho
	// LineArt is a preformatted block rendered in the theme color.
	LineArt
)

// Line is one rendered transcript entry.
type Line struct {
	Kind LineKind
	Text string
}

func out(s string) Line { return Line{Kind: LineOutput, Text: s} }

func blank() Line { return Line{Kind: LineOutput} }

// sanitize makes user input safe to render: escape sequences and other
// control characters are dropped, everything else is kept verbatim.
func sanitize(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
