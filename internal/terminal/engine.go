package terminal

import (
	"errors"
	"strings"
	"sync"

	"termfolio/internal/profile"
	"termfolio/pkg/logging"

	"github.com/google/uuid"
	"github.com/sahilm/fuzzy"
)

// ErrNotInteractive reports that a required collaborator is missing; the
// terminal feature is disabled instead of partially initialized.
var ErrNotInteractive = errors.New("terminal: required collaborators missing, terminal disabled")

// State is the engine's interpreter state.
type State int

const (
	// StateIdle waits for input.
	StateIdle State = iota
	// StateExecuting has echoed a command whose output is pending.
	StateExecuting
)

// String returns the state name.
func (s State) String() string {
	if s == StateExecuting {
		return "Executing"
	}
	return "Idle"
}

// ProfileSource provides the profile the commands read.
type ProfileSource interface {
	Get() profile.Data
}

// Themer is the part of the theme controller the theme command drives.
type Themer interface {
	CycleTheme()
	Current() string
}

// Engine interprets submitted lines against the fixed command table and
// owns the transcript. Methods are safe for concurrent use.
type Engine struct {
	mu         sync.Mutex
	id         string
	profile    ProfileSource
	themes     Themer
	transcript []Line
	state      State
}

// New creates an engine and writes the welcome lines. It returns
// ErrNotInteractive if either collaborator is nil.
func New(p ProfileSource, t Themer) (*Engine, error) {
	if p == nil || t == nil {
		return nil, ErrNotInteractive
	}
	e := &Engine{
		id:      uuid.NewString(),
		profile: p,
		themes:  t,
	}
	handle := p.Get().Handle()
	e.transcript = append(e.transcript,
		out("Welcome to "+handle+"@portfolio"),
		out(`Type "help" for available commands.`),
		blank(),
	)
	logging.Debug("Terminal", "session %s started for %s", e.id, handle)
	return e, nil
}

// SessionID identifies this terminal session in logs.
func (e *Engine) SessionID() string { return e.id }

// Echo appends the prompt line for raw and enters StateExecuting. The
// input is echoed verbatim apart from sanitizing.
func (e *Engine) Echo(raw string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.transcript = append(e.transcript, Line{Kind: LineEcho, Text: "$ " + sanitize(raw)})
	e.state = StateExecuting
}

// Run dispatches raw and appends its output, returning the appended lines.
// Matching is case-insensitive on the trimmed input; blank input produces nothing.
func (e *Engine) Run(raw string) []Line {
	name := strings.ToLower(strings.TrimSpace(raw))

	var (
		lines []Line
		clear bool
	)
	if name != "" {
		// Commands run unlocked: theme cycling notifies subscribers that may
		// read the transcript.
		if cmd, ok := lookup(name); ok {
			lines = cmd.run(e, e.profile.Get())
			clear = cmd.clears
			logging.Debug("Terminal", "session %s ran %s (%d lines)", e.id, name, len(lines))
		} else {
			lines = notFound(raw)
			logging.Debug("Terminal", "session %s: command not found %q", e.id, name)
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if clear {
		e.transcript = e.transcript[:0]
	}
	e.transcript = append(e.transcript, lines...)
	e.state = StateIdle
	return append([]Line(nil), lines...)
}

// Submit echoes raw and runs it without any pacing delay.
func (e *Engine) Submit(raw string) []Line {
	e.Echo(raw)
	return e.Run(raw)
}

// Transcript returns a copy of the transcript lines. The live input row is
// not part of it; renderers always place it after the last line.
func (e *Engine) Transcript() []Line {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Line(nil), e.transcript...)
}

// State reports whether a command is pending.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Handle returns the prompt user name.
func (e *Engine) Handle() string {
	return e.profile.Get().Handle()
}

// Commands returns the fixed command table.
func (e *Engine) Commands() []Command {
	return append([]Command(nil), commandTable...)
}

// Complete returns command names matching prefix, best match first. A
// prefix match always ranks before fuzzy matches.
func (e *Engine) Complete(prefix string) []string {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	names := make([]string, len(commandTable))
	for i, c := range commandTable {
		names[i] = c.Name
	}
	if prefix == "" {
		return names
	}

	var result []string
	seen := map[string]bool{}
	for _, n := range names {
		if strings.HasPrefix(n, prefix) {
			result = append(result, n)
			seen[n] = true
		}
	}
	for _, m := range fuzzy.Find(prefix, names) {
		if !seen[m.Str] {
			result = append(result, m.Str)
		}
	}
	return result
}
