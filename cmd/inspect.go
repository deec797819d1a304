package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"termfolio/internal/app"
	"termfolio/internal/profile"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var inspectOutput string

func newInspectCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "inspect [page]",
		Short: "Print the profile extracted from a portfolio page",
		Long: `Scrapes the page (or the configured one) and prints the profile the
terminal would show: name, title, bio, skills, projects and contact links.
Elements the page does not have are left empty.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInspect,
	}
	c.Flags().StringVarP(&inspectOutput, "output", "o", "yaml", "Output format (yaml, json)")
	return c
}

func runInspect(cmd *cobra.Command, args []string) error {
	settings, err := app.LoadSettings(configPath)
	if err != nil {
		return err
	}
	page := settings.Page
	if len(args) == 1 {
		page = args[0]
	}
	if page == "" {
		return fmt.Errorf("no page given and none configured")
	}

	data, err := app.LoadProfile(page)
	if err != nil {
		return err
	}
	return writeProfile(cmd.OutOrStdout(), data, inspectOutput)
}

func writeProfile(w io.Writer, data profile.Data, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(data)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func init() {
	rootCmd.AddCommand(newInspectCmd())
}
