// Package paths provides path resolution for the canonical settings document
// and the deployed config files of each AI coding assistant target.
//
// # Target Configuration Files
//
// Each target consumes its own file, at its own well-known location:
//
//	| Target         | Format | Path                                            |
//	|----------------|--------|-------------------------------------------------|
//	| claude-desktop | JSON   | <ConfigHome>/Claude/claude_desktop_config.json  |
//	| codex          | TOML   | ~/.codex/config.toml                            |
//	| gemini         | JSON   | ~/.gemini/settings.json                         |
//	| claude-code    | JSON   | ~/.claude/mcp.json                              |
//
// The package wraps github.com/adrg/xdg for cross-platform XDG Base Directory
// compliance; on macOS ConfigHome resolves to ~/Library/Application Support,
// which is where Claude Desktop keeps its configuration.
//
// # Settings Document
//
// The canonical mcp-settings.json lives in the user's dotfiles directory,
// found via the DOTFILES_DIR environment variable or a small list of
// conventional locations. See [DotfilesDir].
//
// # Error Handling
//
// Functions that accept a target identifier return empty strings for unknown
// targets. Use [ValidTarget] to check validity before calling.
package paths
