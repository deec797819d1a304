package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"termfolio/internal/terminal"
	"termfolio/pkg/logging"

	"github.com/chzyer/readline"
)

const clearScreen = "\033[H\033[2J"

// lineReader is the part of readline the REPL consumes.
type lineReader interface {
	Readline() (string, error)
}

// repl feeds lines into a terminal engine and prints what each command appends.
type repl struct {
	engine *terminal.Engine
	in     lineReader
	out    io.Writer
	delay  time.Duration
}

func newREPL(engine *terminal.Engine, in lineReader, out io.Writer, delay time.Duration) *repl {
	return &repl{engine: engine, in: in, out: out, delay: delay}
}

// Run prints the welcome lines and then serves commands until EOF, an
// interrupt on an empty line, or ctx is done. The exit command prints its
// message but keeps the session open.
func (r *repl) Run(ctx context.Context) error {
	r.print(r.engine.Transcript())

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := r.in.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			if len(line) == 0 {
				return nil
			}
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return fmt.Errorf("readline error: %w", err)
		}

		// The prompt line is already on screen, so the echo is recorded but not printed.
		r.engine.Echo(line)
		if r.delay > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(r.delay):
			}
		}
		out := r.engine.Run(line)
		if len(out) == 0 && len(r.engine.Transcript()) == 0 {
			fmt.Fprint(r.out, clearScreen)
		}
		r.print(out)
	}
}

func (r *repl) print(lines []terminal.Line) {
	for _, l := range lines {
		fmt.Fprintln(r.out, l.Text)
	}
}

// newCompleter offers the command table for tab completion.
func newCompleter(engine *terminal.Engine) *readline.PrefixCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(engine.Commands()))
	for _, c := range engine.Commands() {
		items = append(items, readline.PcItem(c.Name))
	}
	logging.Debug("CLI", "Completion offers %d commands", len(items))
	return readline.NewPrefixCompleter(items...)
}
