package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/termfolio"
	projectConfigDir = ".termfolio"
	configFileName   = "config.yaml"

	envPage     = "TERMFOLIO_PAGE"
	envTheme    = "TERMFOLIO_THEME"
	envLogLevel = "TERMFOLIO_LOG_LEVEL"
)

// LoadConfig layers default, user, project and environment settings.
func LoadConfig() (Config, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional.
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if config, err = overlayFile(config, userConfigPath); err != nil {
		return Config{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else if config, err = overlayFile(config, projectConfigPath); err != nil {
		return Config{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
	}

	return applyEnv(config), nil
}

// LoadConfigFromPath loads defaults plus the single file at path, then the environment.
func LoadConfigFromPath(path string) (Config, error) {
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	return applyEnv(mergeConfigs(GetDefaultConfig(), overlay)), nil
}

func overlayFile(base Config, path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return base, err
	}
	return mergeConfigs(base, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a Config from a YAML file.
func loadConfigFromFile(filePath string) (Config, error) {
	var config Config
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Set fields win.
func mergeConfigs(base, overlay Config) Config {
	merged := base

	if overlay.Page != "" {
		merged.Page = overlay.Page
	}
	if overlay.Theme != "" {
		merged.Theme = overlay.Theme
	}
	if overlay.ScrollStep > 0 {
		merged.ScrollStep = overlay.ScrollStep
	}
	if overlay.CRT != nil {
		merged.CRT = overlay.CRT
	}
	if overlay.LogLevel != "" {
		merged.LogLevel = overlay.LogLevel
	}

	if overlay.Terminal.CommandDelay != nil {
		merged.Terminal.CommandDelay = overlay.Terminal.CommandDelay
	}
	if overlay.Terminal.FocusDelay != nil {
		merged.Terminal.FocusDelay = overlay.Terminal.FocusDelay
	}
	if overlay.Contact.ResetDelay > 0 {
		merged.Contact.ResetDelay = overlay.Contact.ResetDelay
	}

	if overlay.MCP.Enabled {
		merged.MCP.Enabled = true
	}
	if overlay.MCP.Transport != "" {
		merged.MCP.Transport = overlay.MCP.Transport
	}
	if overlay.MCP.Host != "" {
		merged.MCP.Host = overlay.MCP.Host
	}
	if overlay.MCP.Port != 0 {
		merged.MCP.Port = overlay.MCP.Port
	}

	return merged
}

// applyEnv overlays TERMFOLIO_* variables, reading a .env file in the
// working directory first when one exists. Real environment values win.
func applyEnv(config Config) Config {
	_ = godotenv.Load()

	if v := os.Getenv(envPage); v != "" {
		config.Page = v
	}
	if v := os.Getenv(envTheme); v != "" {
		config.Theme = v
	}
	if v := os.Getenv(envLogLevel); v != "" {
		config.LogLevel = v
	}
	return config
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
