package cmd

import (
	"context"
	"fmt"

	"termfolio/internal/app"

	"github.com/spf13/cobra"
)

var (
	// serveNoTUI runs the shell as a line-based REPL instead of the full page.
	serveNoTUI bool

	// serveDebug enables verbose logging across the application.
	serveDebug bool

	servePage  string
	serveTheme string
	serveMCP   bool
)

// serveCmd defines the serve command structure.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Open the portfolio as an interactive TUI or a plain REPL.",
	Long: `Scrapes the portfolio page and opens it in the terminal.
It can run in two modes:

1. Interactive TUI Mode (default):
   - Header, simulated shell, projects, skills, contact form and footer on one scrollable page.
   - Keyboard shortcuts (press ? for the list) and mouse wheel scrolling.
   - With --mcp, a control server lets 'termfolio ctl' and MCP clients drive the session.

2. Non-TUI / REPL Mode (using --no-tui flag):
   - Runs the shell commands (help, whoami, skills, neofetch, ...) on a plain prompt.

Configuration:
  termfolio loads configuration from ~/.config/termfolio/config.yaml and
  .termfolio/config.yaml in the current directory, then TERMFOLIO_* environment
  variables (a .env file is honored). Flags win over all of them.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

// runServe is the main entry point for the serve command
func runServe(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(serveNoTUI, serveDebug, configPath)
	cfg.Page = servePage
	cfg.Theme = serveTheme
	cfg.MCP = serveMCP
	cfg.Version = rootCmd.Version

	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&serveNoTUI, "no-tui", false, "Run the shell as a plain REPL")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable general debug logging")
	serveCmd.Flags().StringVarP(&servePage, "page", "p", "", "Portfolio HTML page to scrape")
	serveCmd.Flags().StringVarP(&serveTheme, "theme", "t", "", "Initial theme (green, amber, blue, purple)")
	serveCmd.Flags().BoolVar(&serveMCP, "mcp", false, "Start the control server alongside the TUI")
}
