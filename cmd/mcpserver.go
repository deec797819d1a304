package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"termfolio/internal/api"
	"termfolio/internal/app"
	"termfolio/internal/config"
	"termfolio/internal/mcpserver"
	"termfolio/internal/state"
	"termfolio/pkg/logging"

	"github.com/spf13/cobra"
)

var (
	mcpTransport string
	mcpPage      string
	mcpTheme     string
	mcpDebug     bool
)

// mcpServerCmd serves the control surface without a TUI.
var mcpServerCmd = &cobra.Command{
	Use:   "mcp-server",
	Short: "Serve the portfolio control surface over MCP",
	Long: `Starts an MCP server exposing the control surface tools:

  set_theme, cycle_theme, get_current_theme, list_themes,
  get_profile, update_profile, refresh_skills

The session is headless: it holds the scraped profile and the active theme
for the lifetime of the process. Use --transport stdio to launch it from an
MCP client, or --transport sse to listen on the configured host and port.`,
	Args: cobra.NoArgs,
	RunE: runMCPServer,
}

func runMCPServer(cmd *cobra.Command, args []string) error {
	level := logging.LevelInfo
	if mcpDebug {
		level = logging.LevelDebug
	}
	// stdout carries the protocol on stdio; logs always go to stderr.
	logging.InitForCLI(level, os.Stderr)

	settings, err := app.LoadSettings(configPath)
	if err != nil {
		return err
	}
	if mcpPage != "" {
		settings.Page = mcpPage
	}
	if mcpTheme != "" {
		settings.Theme = mcpTheme
	}
	transport := settings.MCP.Transport
	if cmd.Flags().Changed("transport") {
		transport = mcpTransport
	}

	data, err := app.LoadProfile(settings.Page)
	if err != nil {
		return err
	}
	surface := api.NewSurface(state.NewSession(data, settings.Theme))
	srv := mcpserver.New(surface, mcpserver.Config{
		Host:    settings.MCP.Host,
		Port:    settings.MCP.Port,
		Version: rootCmd.Version,
	})

	switch transport {
	case config.MCPTransportStdio, "":
		return srv.ServeStdio()
	case config.MCPTransportSSE:
		ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := srv.Start(ctx); err != nil {
			return err
		}
		logging.Info("MCP", "Control server listening on %s", srv.Addr())
		select {
		case <-ctx.Done():
		case err, ok := <-srv.Errors():
			if ok && err != nil {
				return err
			}
		}
		return srv.Stop(context.Background())
	default:
		return fmt.Errorf("unsupported transport %q (use stdio or sse)", transport)
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func init() {
	rootCmd.AddCommand(mcpServerCmd)

	mcpServerCmd.Flags().StringVar(&mcpTransport, "transport", config.MCPTransportStdio, "Transport (stdio, sse)")
	mcpServerCmd.Flags().StringVarP(&mcpPage, "page", "p", "", "Portfolio HTML page to scrape")
	mcpServerCmd.Flags().StringVarP(&mcpTheme, "theme", "t", "", "Initial theme")
	mcpServerCmd.Flags().BoolVar(&mcpDebug, "debug", false, "Enable debug logging")
}
