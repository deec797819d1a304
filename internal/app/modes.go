package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"termfolio/internal/api"
	"termfolio/internal/config"
	"termfolio/internal/mcpserver"
	"termfolio/internal/state"
	"termfolio/internal/terminal"
	"termfolio/internal/tui/controller"
	"termfolio/internal/tui/design"
	"termfolio/internal/tui/model"
	"termfolio/pkg/logging"

	"github.com/chzyer/readline"
)

// runCLIMode runs the terminal commands as a line-based REPL.
func runCLIMode(ctx context.Context, cfg *Config, session *state.Session) error {
	logging.Info("CLI", "Running in no-TUI mode.")

	engine, err := terminal.New(session.Profile, session.Theme)
	if err != nil {
		return fmt.Errorf("failed to start terminal: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "$ ",
		HistoryFile:       filepath.Join(os.TempDir(), ".termfolio_history"),
		AutoComplete:      newCompleter(engine),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create readline instance: %w", err)
	}
	defer rl.Close()

	return newREPL(engine, rl, rl.Stdout(), commandDelay(cfg.Settings)).Run(ctx)
}

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, cfg *Config, session *state.Session, surface *api.Surface) error {
	logging.Info("CLI", "Starting TUI mode...")
	settings := cfg.Settings

	// Initialize design system for TUI (dark mode by default)
	design.Initialize(true)

	// Switch logging to channel-based system for TUI integration
	logChan := logging.InitForTUI(logging.ParseLevel(settings.LogLevel))
	defer logging.CloseTUIChannel()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if settings.MCP.Enabled {
		srv := mcpserver.New(surface, mcpserver.Config{
			Host:    settings.MCP.Host,
			Port:    settings.MCP.Port,
			Version: cfg.Version,
		})
		if err := srv.Start(ctx); err != nil {
			logging.Error("TUI-Lifecycle", err, "Control server not started")
		}
	}

	focusDelay := time.Duration(config.DefaultFocusDelay)
	if settings.Terminal.FocusDelay != nil {
		focusDelay = *settings.Terminal.FocusDelay
	}

	p, err := controller.NewProgram(model.TUIConfig{
		Session:      session,
		Surface:      surface,
		CommandDelay: commandDelay(settings),
		FocusDelay:   focusDelay,
		ResetDelay:   settings.Contact.ResetDelay,
		ScrollStep:   settings.ScrollStep,
		CRT:          settings.CRTEnabled(),
		DebugMode:    cfg.Debug,
	}, logChan)
	if err != nil {
		logging.Error("TUI-Lifecycle", err, "Error creating TUI program")
		return err
	}
	// Control surface calls run directly again once the program is gone.
	defer surface.SetDispatcher(nil)

	// Run the TUI until user exits
	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")

	return nil
}

func commandDelay(settings *config.Config) time.Duration {
	if settings == nil || settings.Terminal.CommandDelay == nil {
		return config.DefaultCommandDelay
	}
	return *settings.Terminal.CommandDelay
}
