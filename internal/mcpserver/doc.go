// Package mcpserver serves the termfolio control surface over the Model
// Context Protocol.
//
// Two transports are supported: stdio, used by the mcp-server command for
// editor and assistant integrations, and SSE, started next to the TUI when
// mcp.enabled is set so a running session can be driven from outside.
package mcpserver
