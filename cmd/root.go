package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// configPath overrides the layered configuration lookup for every command.
var configPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "termfolio",
	Short: "Browse a developer portfolio in your terminal",
	Long: `termfolio turns a portfolio web page into an interactive terminal
application: a simulated shell, switchable project views, themed skill
bars and a contact form. The page is scraped once at startup; a control
server lets scripts and assistants re-theme or update the running session.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. a missing page or an unreachable control server)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v // Set cobra's version field as well
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "termfolio version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default layers ~/.config/termfolio/config.yaml and .termfolio/config.yaml)")
}
