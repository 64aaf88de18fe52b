// Package config provides configuration management for the vibe CLI.
//
// This package handles loading and validating the vibe tool's own
// configuration file. It is distinct from the MCP settings document, which
// describes servers to deploy; this file only tunes how vibe itself behaves.
//
// # Configuration File
//
// The default configuration file location is ~/.config/vibe/config.yaml.
// The configuration file uses YAML format with the following structure:
//
//	settings_file: /custom/mcp-settings.json  # optional
//	backup:
//	  retention_count: 5
//
// # Loading Configuration
//
// Call [Init] once at startup, then [Load]:
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//
// With an empty path, Load searches the current directory and the vibe config
// directory, and falls back to defaults when no file exists. Every key can
// also be set through the environment with a VIBE_ prefix, for example
// VIBE_BACKUP_RETENTION_COUNT=10.
package config
