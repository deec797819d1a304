package presenter

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"termfolio/internal/profile"
	"termfolio/internal/theme"
	"termfolio/pkg/logging"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// View selects one of the two project renderings.
type View int

const (
	ViewCards View = iota
	ViewLog
)

// String returns the label used on the toggle buttons.
func (v View) String() string {
	if v == ViewLog {
		return "terminal"
	}
	return "cards"
}

// Tab is the Featured/All selector.
type Tab int

const (
	TabFeatured Tab = iota
	TabAll
)

const (
	firstGlyph = "●"
	restGlyph  = "│"
	hashLength = 7
)

// HashFunc produces the stand-in commit hash for one log entry.
type HashFunc func() string

// RandomHash returns 7 random lowercase hex characters.
func RandomHash() string {
	return fmt.Sprintf("%07x", rand.Uint32()&0x0fffffff)
}

// ProjectSource provides the project list.
type ProjectSource interface {
	Get() profile.Data
}

// LogEntry is one line of the commit-log view.
type LogEntry struct {
	Glyph       string
	Hash        string
	Name        string
	Description string
}

// Presenter renders the project list as a card grid or a commit log. Each
// view is built on first activation and reused until invalidated.
type Presenter struct {
	mu      sync.Mutex
	source  ProjectSource
	hash    HashFunc
	palette theme.Palette
	width   int
	active  View
	tab     Tab
	cache   map[View]string
	entries []LogEntry
}

// New creates a presenter showing the card view and the featured tab.
// A nil hash uses RandomHash.
func New(source ProjectSource, hash HashFunc) *Presenter {
	if hash == nil {
		hash = RandomHash
	}
	p, _ := theme.Lookup(theme.Default)
	return &Presenter{
		source:  source,
		hash:    hash,
		palette: p,
		width:   80,
		cache:   map[View]string{},
	}
}

// ApplyPalette implements theme.Binding. Cached views carry baked-in
// colors, so they are dropped.
func (p *Presenter) ApplyPalette(pal theme.Palette) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.palette = pal
	p.invalidateLocked()
}

// Invalidate drops both cached views, e.g. after the profile changed.
func (p *Presenter) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.invalidateLocked()
}

func (p *Presenter) invalidateLocked() {
	clear(p.cache)
	p.entries = nil
}

// SetWidth sets the render width; a change invalidates the cache.
func (p *Presenter) SetWidth(w int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if w == p.width || w <= 0 {
		return
	}
	p.width = w
	p.invalidateLocked()
}

// Show activates v and returns its rendering.
func (p *Presenter) Show(v View) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.active = v
	return p.renderLocked()
}

// Toggle switches to the other view and returns its rendering.
func (p *Presenter) Toggle() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.active == ViewCards {
		p.active = ViewLog
	} else {
		p.active = ViewCards
	}
	logging.Debug("Presenter", "switched to %s view", p.active)
	return p.renderLocked()
}

// Render returns the active view.
func (p *Presenter) Render() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.renderLocked()
}

// Active returns the visible view.
func (p *Presenter) Active() View {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

func (p *Presenter) renderLocked() string {
	if s, ok := p.cache[p.active]; ok {
		return s
	}
	projects := p.source.Get().Projects
	var s string
	if p.active == ViewLog {
		p.entries = buildEntries(projects, p.hash)
		s = p.renderLog()
	} else {
		s = p.renderCards(projects)
	}
	p.cache[p.active] = s
	return s
}

// LogEntries returns the entries behind the commit-log view, building the
// view if needed. It does not change the active view.
func (p *Presenter) LogEntries() []LogEntry {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.cache[ViewLog]; !ok {
		prev := p.active
		p.active = ViewLog
		p.renderLocked()
		p.active = prev
	}
	return append([]LogEntry(nil), p.entries...)
}

func buildEntries(projects []profile.Project, hash HashFunc) []LogEntry {
	entries := make([]LogEntry, len(projects))
	for i, pr := range projects {
		glyph := restGlyph
		if i == 0 {
			glyph = firstGlyph
		}
		entries[i] = LogEntry{Glyph: glyph, Hash: hash(), Name: pr.Name, Description: pr.Description}
	}
	return entries
}

var (
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	nameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#e5e7eb")).Bold(true)
	descStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ca3af"))
	cardStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#1f2937")).
			Padding(0, 1)
)

func (p *Presenter) renderLog() string {
	primary := lipgloss.NewStyle().Foreground(p.palette.PrimaryColor())
	var b strings.Builder
	b.WriteString(primary.Render("⎇ ") + mutedStyle.Render(fmt.Sprintf("git log --oneline --graph --decorate -n %d", len(p.entries))))
	for i, e := range p.entries {
		glyph := mutedStyle.Render(e.Glyph)
		if i == 0 {
			glyph = primary.Render(e.Glyph)
		}
		prefix := glyph + " " + primary.Render(e.Hash) + " "
		room := p.width - lipgloss.Width(prefix)
		text := runewidth.Truncate(e.Name+" — "+e.Description, max(room, 1), "…")
		name, desc, _ := strings.Cut(text, " — ")
		line := prefix + nameStyle.Render(name)
		if desc != "" {
			line += descStyle.Render(" — " + desc)
		}
		b.WriteString("\n" + line)
	}
	return b.String()
}

func (p *Presenter) renderCards(projects []profile.Project) string {
	columns := 2
	if p.width < 60 {
		columns = 1
	}
	cardWidth := p.width/columns - cardStyle.GetHorizontalFrameSize()
	if cardWidth < 10 {
		cardWidth = 10
	}

	var rows []string
	var row []string
	for _, pr := range projects {
		body := nameStyle.Render(runewidth.Truncate(pr.Name, cardWidth, "…"))
		if pr.Description != "" {
			body += "\n" + descStyle.Width(cardWidth).Render(pr.Description)
		}
		row = append(row, cardStyle.Width(cardWidth).Render(body))
		if len(row) == columns {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	if len(rows) == 0 {
		return mutedStyle.Render("no projects")
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
