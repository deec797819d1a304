package cmd

import (
	"fmt"

	"termfolio/internal/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

var themesCSS string

func newThemesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "themes",
		Short: "List the color themes",
		Long: `Lists every theme in cycle order with its primary, RGB and accent colors.
With --css, prints the stylesheet fragment and root variables of one theme.`,
		Args: cobra.NoArgs,
		RunE: runThemes,
	}
	c.Flags().StringVar(&themesCSS, "css", "", "Print the stylesheet fragment of the given theme")
	return c
}

func runThemes(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if themesCSS != "" {
		if _, ok := theme.Lookup(themesCSS); !ok {
			return fmt.Errorf("unknown theme %q", themesCSS)
		}
		ctrl := theme.NewController(themesCSS)
		vars := ctrl.Variables()
		fmt.Fprintln(out, ":root {")
		for _, name := range []string{theme.VarPrimary, theme.VarPrimaryRGB, theme.VarAccent} {
			fmt.Fprintf(out, "  %s: %s;\n", name, vars[name])
		}
		fmt.Fprintln(out, "}")
		fmt.Fprint(out, ctrl.Sheet().CSS())
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("THEME"),
		text.FgHiCyan.Sprint("PRIMARY"),
		text.FgHiCyan.Sprint("RGB"),
		text.FgHiCyan.Sprint("ACCENT"),
		text.FgHiCyan.Sprint("SWATCH"),
	})
	for _, id := range theme.IDs() {
		p, _ := theme.Lookup(id)
		swatch := lipgloss.NewStyle().Foreground(p.PrimaryColor()).Render("███") +
			lipgloss.NewStyle().Foreground(p.AccentColor()).Render("███")
		marker := id
		if id == theme.Default {
			marker += " (default)"
		}
		t.AppendRow(table.Row{marker, p.Primary, p.PrimaryRGB.String(), p.Accent, swatch})
	}
	t.Render()
	return nil
}

func init() {
	rootCmd.AddCommand(newThemesCmd())
}
