package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"termfolio/internal/api"
	"termfolio/internal/config"
	"termfolio/internal/extractor"
	"termfolio/internal/profile"
	"termfolio/internal/state"
	"termfolio/pkg/logging"
)

// Application is the main application structure that bootstraps and runs termfolio
type Application struct {
	config  *Config
	session *state.Session
	surface *api.Surface
}

// NewApplication loads the configuration, extracts the profile from the
// portfolio page and builds the session state.
func NewApplication(cfg *Config) (*Application, error) {
	// Initialize logging for CLI output (will be replaced for TUI mode)
	appLogLevel := logging.LevelInfo
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}
	logging.InitForCLI(appLogLevel, os.Stderr)

	settings, err := LoadSettings(cfg.ConfigPath)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to load configuration")
		return nil, err
	}
	settings = cfg.applyOverrides(settings)
	cfg.Settings = &settings

	// Re-initialize with the configured level now that it is known.
	logging.InitForCLI(logging.ParseLevel(settings.LogLevel), os.Stderr)

	data, err := LoadProfile(settings.Page)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to extract profile")
		return nil, err
	}

	session := state.NewSession(data, settings.Theme)
	logging.Info("Bootstrap", "Session ready: %s with %d skills and %d projects, theme %s",
		data.Handle(), len(data.Skills), len(data.Projects), session.Theme.Current())

	return &Application{
		config:  cfg,
		session: session,
		surface: api.NewSurface(session),
	}, nil
}

// LoadSettings loads configuration from path, or from the layered
// locations when path is empty.
func LoadSettings(path string) (config.Config, error) {
	if path != "" {
		settings, err := config.LoadConfigFromPath(path)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load configuration from path %s: %w", path, err)
		}
		logging.Info("Bootstrap", "Loaded configuration from custom path: %s", path)
		return settings, nil
	}

	settings, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load configuration: %w", err)
	}
	logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	return settings, nil
}

// LoadProfile extracts the profile from page. Without a page, or with an
// empty one, the session starts with an empty profile.
func LoadProfile(page string) (profile.Data, error) {
	if page == "" {
		logging.Warn("Bootstrap", "No portfolio page configured, starting with an empty profile")
		return profile.Data{}, nil
	}
	data, err := extractor.FromFile(page)
	if errors.Is(err, extractor.ErrEmptyDocument) {
		logging.Warn("Bootstrap", "Portfolio page %s is empty, starting with an empty profile", page)
		return profile.Data{}, nil
	}
	if err != nil {
		return profile.Data{}, err
	}
	return data, nil
}

// Session returns the application state.
func (a *Application) Session() *state.Session { return a.session }

// Surface returns the control surface bound to the session.
func (a *Application) Surface() *api.Surface { return a.surface }

// Run executes the application in the appropriate mode
func (a *Application) Run(ctx context.Context) error {
	if a.config.NoTUI {
		return runCLIMode(ctx, a.config, a.session)
	}
	return runTUIMode(ctx, a.config, a.session, a.surface)
}
