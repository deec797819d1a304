package cmd

import (
	"termfolio/internal/api/tools"
	"termfolio/internal/app"
	"termfolio/internal/cli"

	"github.com/spf13/cobra"
)

var (
	ctlEndpoint string
	ctlOutput   string
	ctlQuiet    bool

	profileName     string
	profileTitle    string
	profileBio      string
	profileEmail    string
	profileLinkedIn string
)

// ctlCmd drives a running session through its control server.
var ctlCmd = &cobra.Command{
	Use:   "ctl",
	Short: "Control a running termfolio session",
	Long: `Sends control surface calls to a running session.

Note: the session must expose its control server ('termfolio serve --mcp'
or 'termfolio mcp-server --transport sse') before using these commands.`,
}

var ctlThemeCmd = &cobra.Command{
	Use:   "theme [id]",
	Short: "Show the active theme or switch to another one",
	Long: `Without an argument, prints the active theme and its root variables.
With an id, switches the session to that theme. Unknown ids leave the
active theme in place.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runCtlTool(cmd, tools.ToolGetCurrentTheme, nil)
		}
		return runCtlTool(cmd, tools.ToolSetTheme, map[string]interface{}{"theme": args[0]})
	},
}

var ctlCycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Advance to the next theme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCtlTool(cmd, tools.ToolCycleTheme, nil)
	},
}

var ctlThemesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the themes the session accepts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCtlTool(cmd, tools.ToolListThemes, nil)
	},
}

var ctlProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the session profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCtlTool(cmd, tools.ToolGetProfile, nil)
	},
}

var ctlProfileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	Long: `Updates the given fields of the session profile; unset flags keep
their current values. The page re-renders immediately.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCtlTool(cmd, tools.ToolUpdateProfile, profileArgs(cmd))
	},
}

var ctlSkillsCmd = &cobra.Command{
	Use:   "refresh-skills",
	Short: "Rebuild the skill bars from the current profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCtlTool(cmd, tools.ToolRefreshSkills, nil)
	},
}

var ctlToolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the control surface tools",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		executor, err := newCtlExecutor(cmd)
		if err != nil {
			return err
		}
		defer executor.Close()
		return executor.ListTools(commandContext(cmd))
	},
}

// profileArgs collects the profile flags the user actually set.
func profileArgs(cmd *cobra.Command) map[string]interface{} {
	args := map[string]interface{}{}
	for flag, value := range map[string]string{
		"name":     profileName,
		"title":    profileTitle,
		"bio":      profileBio,
		"email":    profileEmail,
		"linkedin": profileLinkedIn,
	} {
		if cmd.Flags().Changed(flag) {
			args[flag] = value
		}
	}
	return args
}

func newCtlExecutor(cmd *cobra.Command) (*cli.ToolExecutor, error) {
	format, err := cli.ParseOutputFormat(ctlOutput)
	if err != nil {
		return nil, err
	}

	endpoint := ctlEndpoint
	if endpoint == "" {
		settings, err := app.LoadSettings(configPath)
		if err != nil {
			return nil, err
		}
		endpoint = cli.EndpointFromConfig(settings)
	}

	executor := cli.NewToolExecutor(cli.NewClient(endpoint), cli.ExecutorOptions{
		Format: format,
		Quiet:  ctlQuiet,
		Out:    cmd.OutOrStdout(),
	})
	if err := executor.Connect(commandContext(cmd)); err != nil {
		return nil, err
	}
	return executor, nil
}

func runCtlTool(cmd *cobra.Command, tool string, args map[string]interface{}) error {
	executor, err := newCtlExecutor(cmd)
	if err != nil {
		return err
	}
	defer executor.Close()
	return executor.Execute(commandContext(cmd), tool, args)
}

func init() {
	rootCmd.AddCommand(ctlCmd)

	ctlCmd.AddCommand(ctlThemeCmd, ctlCycleCmd, ctlThemesCmd, ctlProfileCmd, ctlSkillsCmd, ctlToolsCmd)
	ctlProfileCmd.AddCommand(ctlProfileSetCmd)

	ctlCmd.PersistentFlags().StringVar(&ctlEndpoint, "endpoint", "", "Control server SSE endpoint (default from config, http://localhost:8091/sse)")
	ctlCmd.PersistentFlags().StringVarP(&ctlOutput, "output", "o", "table", "Output format (table, json, yaml)")
	ctlCmd.PersistentFlags().BoolVarP(&ctlQuiet, "quiet", "q", false, "Suppress non-essential output")

	ctlProfileSetCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	ctlProfileSetCmd.Flags().StringVar(&profileTitle, "title", "", "Job title")
	ctlProfileSetCmd.Flags().StringVar(&profileBio, "bio", "", "Biography line")
	ctlProfileSetCmd.Flags().StringVar(&profileEmail, "email", "", "Contact email")
	ctlProfileSetCmd.Flags().StringVar(&profileLinkedIn, "linkedin", "", "LinkedIn URL")
}
