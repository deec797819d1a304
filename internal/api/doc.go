// Package api exposes a controlled surface for driving a running termfolio
// session from outside the UI.
//
// The Surface wraps the session state (profile store and theme
// controller) and offers the operations external callers need:
//
//   - SetTheme / CycleTheme / CurrentTheme / AvailableThemes
//   - UpdateProfile / Profile
//   - RefreshSkills
//
// Components register handlers at startup. The TUI installs a Dispatcher so
// that mutations arriving from server goroutines are applied inside the
// bubbletea update loop, and a SkillsHandler that rebuilds its progress bars.
// Without a UI (CLI mode, tests) operations run inline.
//
// The tools subpackage adapts the surface to MCP tools.
package api
