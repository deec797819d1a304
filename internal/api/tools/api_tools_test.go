package tools

import (
	"context"
	"encoding/json"
	"testing"

	"termfolio/internal/api"
	"termfolio/internal/profile"
	"termfolio/internal/state"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTools() (*APITools, *state.Session) {
	session := state.NewSession(profile.Data{
		Name:    "Jane Doe",
		Title:   "Platform Engineer",
		Skills:  []profile.Skill{{Name: "go", Level: "expert", Percentage: 90}},
		Contact: profile.ContactInfo{Email: "jane@example.com"},
	}, "green")
	return NewAPITools(api.NewSurface(session)), session
}

func callRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	text, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok, "Expected TextContent")
	return text.Text
}

func TestGetAPITools(t *testing.T) {
	at, _ := newTestTools()
	tools := at.GetAPITools()

	toolNames := make(map[string]bool)
	for _, tool := range tools {
		toolNames[tool.Name] = true
	}

	assert.Len(t, tools, 7)
	for _, name := range []string{
		ToolSetTheme, ToolCycleTheme, ToolUpdateProfile, ToolGetProfile,
		ToolRefreshSkills, ToolGetCurrentTheme, ToolListThemes,
	} {
		assert.True(t, toolNames[name], name)
	}
}

func TestServerTools_EveryToolHasHandler(t *testing.T) {
	at, _ := newTestTools()
	for _, st := range at.ServerTools() {
		assert.NotNil(t, st.Handler, st.Tool.Name)
	}
}

func TestSetThemeHandler(t *testing.T) {
	at, session := newTestTools()

	result, err := at.HandleSetTheme(context.Background(), callRequest(ToolSetTheme, map[string]interface{}{"theme": "amber"}))
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "Theme set to 'amber'", resultText(t, result))
	assert.Equal(t, "amber", session.Theme.Current())
}

func TestSetThemeHandler_UnknownTheme(t *testing.T) {
	at, session := newTestTools()

	result, err := at.HandleSetTheme(context.Background(), callRequest(ToolSetTheme, map[string]interface{}{"theme": "sepia"}))
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Contains(t, resultText(t, result), "'green' remains active")
	assert.Equal(t, "green", session.Theme.Current())
}

func TestSetThemeHandler_MissingTheme(t *testing.T) {
	at, _ := newTestTools()

	result, err := at.HandleSetTheme(context.Background(), callRequest(ToolSetTheme, map[string]interface{}{}))
	assert.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestCycleThemeHandler(t *testing.T) {
	at, _ := newTestTools()

	result, err := at.HandleCycleTheme(context.Background(), callRequest(ToolCycleTheme, nil))
	require.NoError(t, err)
	assert.Equal(t, "Theme cycled to 'amber'", resultText(t, result))
}

func TestGetCurrentThemeHandler(t *testing.T) {
	at, _ := newTestTools()

	result, err := at.HandleGetCurrentTheme(context.Background(), callRequest(ToolGetCurrentTheme, nil))
	require.NoError(t, err)

	var payload struct {
		Theme     string            `json:"theme"`
		Variables map[string]string `json:"variables"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &payload))
	assert.Equal(t, "green", payload.Theme)
	assert.Equal(t, "16, 185, 129", payload.Variables["--theme-primary-rgb"])
}

func TestListThemesHandler(t *testing.T) {
	at, _ := newTestTools()

	result, err := at.HandleListThemes(context.Background(), callRequest(ToolListThemes, nil))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, result), `"purple"`)
	assert.Contains(t, resultText(t, result), `"total": 4`)
}

func TestUpdateProfileHandler(t *testing.T) {
	at, session := newTestTools()

	result, err := at.HandleUpdateProfile(context.Background(), callRequest(ToolUpdateProfile, map[string]interface{}{
		"title":    "Staff Engineer",
		"linkedin": "https://linkedin.com/in/jane",
		"skills": []interface{}{
			map[string]interface{}{"name": "Rust", "level": "Advanced", "percentage": 70},
		},
	}))
	require.NoError(t, err)
	require.False(t, result.IsError, resultText(t, result))

	got := session.Profile.Get()
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, "Staff Engineer", got.Title)
	assert.Equal(t, "jane@example.com", got.Contact.Email)
	assert.Equal(t, "https://linkedin.com/in/jane", got.Contact.LinkedIn)
	assert.Equal(t, []profile.Skill{{Name: "Rust", Level: "advanced", Percentage: 70}}, got.Skills)
}

func TestUpdateProfileHandler_SkillDefaults(t *testing.T) {
	at, session := newTestTools()

	result, err := at.HandleUpdateProfile(context.Background(), callRequest(ToolUpdateProfile, map[string]interface{}{
		"skills": []interface{}{
			map[string]interface{}{"name": "Rust"},
			map[string]interface{}{"name": "Zig", "level": "beginner", "percentage": 0},
		},
	}))
	require.NoError(t, err)
	require.False(t, result.IsError, resultText(t, result))

	assert.Equal(t, []profile.Skill{
		{Name: "Rust", Level: profile.DefaultLevel, Percentage: profile.DefaultPercentage},
		{Name: "Zig", Level: "beginner", Percentage: 0},
	}, session.Profile.Get().Skills)
}

func TestSetThemeHandler_CaseSensitive(t *testing.T) {
	at, session := newTestTools()

	result, err := at.HandleSetTheme(context.Background(), callRequest(ToolSetTheme, map[string]interface{}{"theme": "Amber"}))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, result), "Unknown theme 'Amber'")
	assert.Equal(t, "green", session.Theme.Current())
}

func TestUpdateProfileHandler_BadArguments(t *testing.T) {
	at, _ := newTestTools()

	result, err := at.HandleUpdateProfile(context.Background(), callRequest(ToolUpdateProfile, map[string]interface{}{
		"name": 42,
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)

	result, err = at.HandleUpdateProfile(context.Background(), callRequest(ToolUpdateProfile, map[string]interface{}{
		"skills": "go",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestGetProfileHandler(t *testing.T) {
	at, _ := newTestTools()

	result, err := at.HandleGetProfile(context.Background(), callRequest(ToolGetProfile, nil))
	require.NoError(t, err)

	var data profile.Data
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &data))
	assert.Equal(t, "Jane Doe", data.Name)
}

func TestRefreshSkillsHandler(t *testing.T) {
	at, _ := newTestTools()

	result, err := at.HandleRefreshSkills(context.Background(), callRequest(ToolRefreshSkills, nil))
	require.NoError(t, err)
	assert.Equal(t, "Rebuilt 1 skill bars", resultText(t, result))
}
