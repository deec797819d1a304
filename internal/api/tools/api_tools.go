package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"termfolio/internal/api"
	"termfolio/internal/profile"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Tool names exposed by the control surface.
const (
	ToolSetTheme        = "set_theme"
	ToolCycleTheme      = "cycle_theme"
	ToolUpdateProfile   = "update_profile"
	ToolGetProfile      = "get_profile"
	ToolRefreshSkills   = "refresh_skills"
	ToolGetCurrentTheme = "get_current_theme"
	ToolListThemes      = "list_themes"
)

// APITools provides MCP tools for driving a termfolio session
type APITools struct {
	surface *api.Surface
}

// NewAPITools creates API tools backed by surface
func NewAPITools(surface *api.Surface) *APITools {
	return &APITools{surface: surface}
}

// GetAPITools returns all API tools
func (at *APITools) GetAPITools() []mcp.Tool {
	tools := []mcp.Tool{}

	// Theme Tools
	tools = append(tools, at.getThemeTools()...)

	// Profile Tools
	tools = append(tools, at.getProfileTools()...)

	return tools
}

// ServerTools pairs every tool with its handler for registration on an MCP server
func (at *APITools) ServerTools() []server.ServerTool {
	handlers := map[string]server.ToolHandlerFunc{
		ToolSetTheme:        at.HandleSetTheme,
		ToolCycleTheme:      at.HandleCycleTheme,
		ToolGetCurrentTheme: at.HandleGetCurrentTheme,
		ToolListThemes:      at.HandleListThemes,
		ToolUpdateProfile:   at.HandleUpdateProfile,
		ToolGetProfile:      at.HandleGetProfile,
		ToolRefreshSkills:   at.HandleRefreshSkills,
	}

	var out []server.ServerTool
	for _, tool := range at.GetAPITools() {
		out = append(out, server.ServerTool{Tool: tool, Handler: handlers[tool.Name]})
	}
	return out
}

// Theme Tools
func (at *APITools) getThemeTools() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool(ToolSetTheme,
			mcp.WithDescription("Activate a color theme. Unknown themes are ignored."),
			mcp.WithString("theme",
				mcp.Required(),
				mcp.Description("Theme id: green, amber, blue or purple"),
			),
		),
		mcp.NewTool(ToolCycleTheme,
			mcp.WithDescription("Switch to the next theme in order"),
		),
		mcp.NewTool(ToolGetCurrentTheme,
			mcp.WithDescription("Get the active theme and its colors"),
		),
		mcp.NewTool(ToolListThemes,
			mcp.WithDescription("List all available themes"),
		),
	}
}

// Profile Tools
func (at *APITools) getProfileTools() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool(ToolGetProfile,
			mcp.WithDescription("Get the portfolio profile shown in the session"),
		),
		mcp.NewTool(ToolUpdateProfile,
			mcp.WithDescription("Merge fields into the portfolio profile. Omitted fields are kept."),
			mcp.WithString("name", mcp.Description("Display name")),
			mcp.WithString("title", mcp.Description("Job title")),
			mcp.WithString("bio", mcp.Description("Biography line")),
			mcp.WithString("email", mcp.Description("Contact email")),
			mcp.WithString("linkedin", mcp.Description("LinkedIn profile URL")),
			mcp.WithArray("skills",
				mcp.Description("Replacement skill list: objects with name, level (default intermediate) and percentage (default 50)"),
				mcp.Items(map[string]interface{}{"type": "object"}),
			),
			mcp.WithArray("projects",
				mcp.Description("Replacement project list: objects with name, description and featured"),
				mcp.Items(map[string]interface{}{"type": "object"}),
			),
		),
		mcp.NewTool(ToolRefreshSkills,
			mcp.WithDescription("Rebuild the skill bars from the current profile"),
		),
	}
}

func jsonResult(v interface{}) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format result: %v", err))
	}
	return mcp.NewToolResultText(string(data))
}

// HandleSetTheme handles the set_theme tool
func (at *APITools) HandleSetTheme(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("theme")
	if err != nil {
		return mcp.NewToolResultError("theme is required"), nil
	}

	applied, err := at.surface.SetTheme(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to set theme: %v", err)), nil
	}
	if !applied {
		current, _ := at.surface.CurrentTheme()
		return mcp.NewToolResultText(fmt.Sprintf("Unknown theme '%s'; '%s' remains active", id, current)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Theme set to '%s'", id)), nil
}

// HandleCycleTheme handles the cycle_theme tool
func (at *APITools) HandleCycleTheme(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := at.surface.CycleTheme(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to cycle theme: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Theme cycled to '%s'", id)), nil
}

// HandleGetCurrentTheme handles the get_current_theme tool
func (at *APITools) HandleGetCurrentTheme(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := at.surface.CurrentTheme()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get theme: %v", err)), nil
	}
	return jsonResult(map[string]interface{}{
		"theme":     id,
		"variables": at.surface.ThemeVariables(),
	}), nil
}

// HandleListThemes handles the list_themes tool
func (at *APITools) HandleListThemes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	themes := at.surface.AvailableThemes()
	return jsonResult(map[string]interface{}{
		"themes": themes,
		"total":  len(themes),
	}), nil
}

// HandleGetProfile handles the get_profile tool
func (at *APITools) HandleGetProfile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := at.surface.Profile()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get profile: %v", err)), nil
	}
	return jsonResult(data), nil
}

// HandleUpdateProfile handles the update_profile tool
func (at *APITools) HandleUpdateProfile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	patch, err := patchFromArguments(req.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	data, err := at.surface.UpdateProfile(ctx, patch)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to update profile: %v", err)), nil
	}
	return jsonResult(data), nil
}

// HandleRefreshSkills handles the refresh_skills tool
func (at *APITools) HandleRefreshSkills(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n, err := at.surface.RefreshSkills(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to refresh skills: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Rebuilt %d skill bars", n)), nil
}

// skillArgument is a skill as sent by a tool caller. A missing percentage
// gets the same default as a scraped card without a readable bar.
type skillArgument struct {
	Name       string `json:"name"`
	Level      string `json:"level"`
	Percentage *int   `json:"percentage"`
}

func (a skillArgument) skill() profile.Skill {
	pct := profile.DefaultPercentage
	if a.Percentage != nil {
		pct = *a.Percentage
	}
	return profile.Skill{Name: a.Name, Level: a.Level, Percentage: pct}
}

// patchFromArguments converts loosely typed tool arguments into a profile patch.
// Contact fields are merged onto the current contact info rather than replacing it.
func patchFromArguments(args map[string]interface{}) (profile.Patch, error) {
	var patch profile.Patch

	str := func(key string) (*string, error) {
		raw, ok := args[key]
		if !ok || raw == nil {
			return nil, nil
		}
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%s must be a string", key)
		}
		return &s, nil
	}

	var err error
	if patch.Name, err = str("name"); err != nil {
		return patch, err
	}
	if patch.Title, err = str("title"); err != nil {
		return patch, err
	}
	if patch.Bio, err = str("bio"); err != nil {
		return patch, err
	}

	email, err := str("email")
	if err != nil {
		return patch, err
	}
	linkedin, err := str("linkedin")
	if err != nil {
		return patch, err
	}
	if email != nil || linkedin != nil {
		patch.ContactEmail = email
		patch.ContactLinkedIn = linkedin
	}

	if raw, ok := args["skills"]; ok && raw != nil {
		var in []skillArgument
		if err := remarshal(raw, &in); err != nil {
			return patch, fmt.Errorf("skills must be an array of skill objects: %w", err)
		}
		skills := make([]profile.Skill, len(in))
		for i, sk := range in {
			skills[i] = sk.skill()
		}
		patch.Skills = &skills
	}
	if raw, ok := args["projects"]; ok && raw != nil {
		var projects []profile.Project
		if err := remarshal(raw, &projects); err != nil {
			return patch, fmt.Errorf("projects must be an array of project objects: %w", err)
		}
		patch.Projects = &projects
	}

	return patch, nil
}

func remarshal(in interface{}, out interface{}) error {
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
