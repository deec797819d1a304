package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inspectPage = `<html><body>
<header><div class="text-xl font-bold">Jane Doe</div><div class="text-xs text-gray-400">Platform Engineer</div></header>
<section><div class="grid"><div><h3>Go</h3><span class="text-xs px-2 py-1">Expert</span><div style="width: 90%"></div></div></div></section>
</body></html>`

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInspectCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg := writeTemp(t, "config.yaml", "theme: green\n")
	page := writeTemp(t, "index.html", inspectPage)

	out, err := executeRoot(t, "inspect", page, "--config", cfg, "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: Jane Doe")
	assert.Contains(t, out, "level: expert")
	assert.Contains(t, out, "percentage: 90")

	out, err = executeRoot(t, "inspect", page, "--config", cfg, "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"title": "Platform Engineer"`)
}

func TestInspectCommand_NoPage(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TERMFOLIO_PAGE", "")
	os.Unsetenv("TERMFOLIO_PAGE")
	cfg := writeTemp(t, "config.yaml", "theme: green\n")

	_, err := executeRoot(t, "inspect", "--config", cfg, "-o", "yaml")
	assert.ErrorContains(t, err, "no page")
}

func TestThemesCommand(t *testing.T) {
	out, err := executeRoot(t, "themes")
	require.NoError(t, err)
	for _, want := range []string{"green (default)", "amber", "blue", "purple", "#8b5cf6", "245, 158, 11"} {
		assert.Contains(t, out, want)
	}
}

func TestThemesCommand_CSS(t *testing.T) {
	t.Cleanup(func() { themesCSS = "" })

	out, err := executeRoot(t, "themes", "--css", "blue")
	require.NoError(t, err)
	assert.Contains(t, out, "--theme-primary: #3b82f6;")
	assert.Contains(t, out, "--theme-primary-rgb: 59, 130, 246;")
	assert.Contains(t, out, "#theme-style")

	_, err = executeRoot(t, "themes", "--css", "sepia")
	assert.ErrorContains(t, err, "unknown theme")
}

func TestVersionCommand(t *testing.T) {
	SetVersion("1.2.3")
	out, err := executeRoot(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "termfolio version 1.2.3\n", out)
}

func TestServeFlags(t *testing.T) {
	for _, name := range []string{"no-tui", "debug", "page", "theme", "mcp"} {
		assert.NotNil(t, serveCmd.Flags().Lookup(name), name)
	}
}

func TestCtlSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range ctlCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"theme", "cycle", "themes", "profile", "refresh-skills", "tools"} {
		assert.True(t, names[want], want)
	}
}

func TestCtlProfileArgs(t *testing.T) {
	require.NoError(t, ctlProfileSetCmd.Flags().Set("name", "John Roe"))
	require.NoError(t, ctlProfileSetCmd.Flags().Set("email", "john@example.com"))
	t.Cleanup(func() {
		profileName, profileEmail = "", ""
	})

	args := profileArgs(ctlProfileSetCmd)
	assert.Equal(t, map[string]interface{}{"name": "John Roe", "email": "john@example.com"}, args)
}

func TestCtlRejectsBadOutput(t *testing.T) {
	t.Cleanup(func() { ctlOutput = "table" })
	_, err := executeRoot(t, "ctl", "cycle", "-o", "xml", "--endpoint", "http://127.0.0.1:1/sse")
	assert.ErrorContains(t, err, "unsupported output format")
}
