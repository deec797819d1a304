package controller

import (
	"termfolio/internal/tui/model"
	"termfolio/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program for the portfolio page. When a
// control surface is configured, its mutations are routed through the
// program so they run inside the update loop.
func NewProgram(cfg model.TUIConfig, logChannel <-chan logging.LogEntry) (*tea.Program, error) {
	m, err := model.InitializeModel(cfg, logChannel)
	if err != nil {
		return nil, err
	}

	app := NewAppModel(m)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if cfg.Surface != nil {
		cfg.Surface.SetDispatcher(func(fn func()) {
			p.Send(model.DispatchMsg{Fn: fn})
		})
	}
	return p, nil
}
