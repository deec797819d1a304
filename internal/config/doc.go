// Package config provides configuration management for termfolio.
//
// Configuration is loaded from several sources and merged in order, later
// sources overriding earlier ones:
//
//  1. Default Configuration (embedded in binary)
//  2. User Configuration (~/.config/termfolio/config.yaml)
//  3. Project Configuration (./.termfolio/config.yaml)
//  4. Environment (TERMFOLIO_PAGE, TERMFOLIO_THEME, TERMFOLIO_LOG_LEVEL),
//     optionally read from a .env file in the working directory
//
// Command line flags are applied on top by the cmd package.
//
// # Configuration Structure
//
//	page: ./index.html
//	theme: amber
//	scrollStep: 3
//	crt: false
//	logLevel: info
//	terminal:
//	  commandDelay: 120ms   # 0s prints output immediately
//	  focusDelay: 0s
//	contact:
//	  resetDelay: 3s
//	mcp:
//	  enabled: false
//	  transport: stdio      # or "sse"
//	  host: localhost
//	  port: 8091
package config
