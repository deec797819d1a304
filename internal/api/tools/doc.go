// Package tools provides MCP tool implementations over the termfolio control
// surface, so MCP clients can re-theme a running session and edit the
// displayed profile.
//
// Tools:
//
//   - set_theme, cycle_theme, get_current_theme, list_themes
//   - get_profile, update_profile, refresh_skills
//
// Handlers never return protocol errors for bad input; they answer with an
// error result instead. Structured answers are indented JSON text.
//
// Example:
//
//	{
//	  "method": "tools/call",
//	  "params": {
//	    "name": "set_theme",
//	    "arguments": {"theme": "amber"}
//	  }
//	}
package tools
