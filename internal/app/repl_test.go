package app

import (
	"bytes"
	"context"
	"io"
	"testing"

	"termfolio/internal/profile"
	"termfolio/internal/state"
	"termfolio/internal/terminal"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedReader struct {
	lines []string
	errs  []error
}

func (s *scriptedReader) Readline() (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line, err := s.lines[0], s.errs[0]
	s.lines, s.errs = s.lines[1:], s.errs[1:]
	return line, err
}

func script(lines ...string) *scriptedReader {
	return &scriptedReader{lines: lines, errs: make([]error, len(lines))}
}

func newTestEngine(t *testing.T) (*terminal.Engine, *state.Session) {
	t.Helper()
	session := state.NewSession(profile.Data{Name: "Jane Doe"}, "green")
	engine, err := terminal.New(session.Profile, session.Theme)
	require.NoError(t, err)
	return engine, session
}

func TestREPL_RunsCommands(t *testing.T) {
	engine, session := newTestEngine(t)
	var out bytes.Buffer

	err := newREPL(engine, script("whoami", "theme", "exit", "nope"), &out, 0).Run(context.Background())
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Welcome to jane-doe@portfolio")
	assert.Contains(t, text, "Jane Doe\n")
	assert.Contains(t, text, "Theme cycled!")
	assert.Contains(t, text, "Connection closed.")
	assert.Contains(t, text, "Command not found: nope")
	assert.Equal(t, "amber", session.Theme.Current())
	assert.NotContains(t, text, "$ whoami")
}

func TestREPL_ClearResetsScreen(t *testing.T) {
	engine, _ := newTestEngine(t)
	var out bytes.Buffer

	require.NoError(t, newREPL(engine, script("clear"), &out, 0).Run(context.Background()))
	assert.Contains(t, out.String(), clearScreen)
	assert.Empty(t, engine.Transcript())
}

func TestREPL_InterruptOnEmptyLineStops(t *testing.T) {
	engine, _ := newTestEngine(t)
	var out bytes.Buffer
	in := &scriptedReader{
		lines: []string{"", "whoami"},
		errs:  []error{readline.ErrInterrupt, nil},
	}

	require.NoError(t, newREPL(engine, in, &out, 0).Run(context.Background()))
	assert.NotContains(t, out.String(), "Jane Doe\n")
}

func TestREPL_CancelledContext(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	require.NoError(t, newREPL(engine, script("whoami"), &out, 0).Run(ctx))
	assert.NotContains(t, out.String(), "Jane Doe\n")
}

func TestNewCompleter(t *testing.T) {
	engine, _ := newTestEngine(t)
	c := newCompleter(engine)
	assert.Len(t, c.GetChildren(), len(engine.Commands()))
}
