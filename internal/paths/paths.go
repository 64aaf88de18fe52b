package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// Target identifiers for supported AI coding assistants.
const (
	TargetClaudeDesktop = "claude-desktop"
	TargetCodex         = "codex"
	TargetGemini        = "gemini"
	TargetClaudeCode    = "claude-code"
)

// SettingsFileName is the canonical settings document inside the dotfiles
// directory.
const SettingsFileName = "mcp-settings.json"

// DotfilesDirEnv overrides the dotfiles directory search when set.
const DotfilesDirEnv = "DOTFILES_DIR"

// targetConfigFiles maps target identifiers to their config file paths
// relative to the user's home directory. The claude-desktop target is
// special-cased in TargetConfigPath because it lives under the platform's
// application-support directory, not a home dotfile.
var targetConfigFiles = map[string]string{
	TargetCodex:      ".codex/config.toml",
	TargetGemini:     ".gemini/settings.json",
	TargetClaudeCode: ".claude/mcp.json",
}

// dotfilesSearchDirs are the dotfiles directory candidates, relative to the
// home directory, checked in order when DOTFILES_DIR is not set.
var dotfilesSearchDirs = []string{
	"Developer/repo/dotfiles",
	".dotfiles",
	"dotfiles",
}

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrDotfilesNotFound indicates no dotfiles directory candidate exists.
	ErrDotfilesNotFound = errors.New("dotfiles directory not found")
)

// DefaultDirPerm is the default permission for newly created directories.
const DefaultDirPerm = 0o755

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// Home returns the user's home directory.
// This is a thin wrapper around os.UserHomeDir for consistency.
// Note: It returns an empty string on error for backward compatibility.
// Use ResolveHome for proper error handling.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// AppConfigDir returns the directory holding vibe's own configuration.
// Returns: <ConfigHome>/vibe/
func AppConfigDir() string {
	return filepath.Join(ConfigHome(), "vibe")
}

// ValidTarget returns true if the target identifier is recognized.
func ValidTarget(target string) bool {
	if target == TargetClaudeDesktop {
		return true
	}
	_, ok := targetConfigFiles[target]
	return ok
}

// Targets returns a slice of all supported target identifiers in
// deterministic order.
func Targets() []string {
	return []string{
		TargetClaudeDesktop,
		TargetCodex,
		TargetGemini,
		TargetClaudeCode,
	}
}

// TargetConfigPath returns the deployed config file path for a target.
//
// Target paths:
//   - claude-desktop: <ConfigHome>/Claude/claude_desktop_config.json
//   - codex: ~/.codex/config.toml
//   - gemini: ~/.gemini/settings.json
//   - claude-code: ~/.claude/mcp.json
//
// Returns an empty string for unknown targets.
func TargetConfigPath(target string) string {
	// Claude Desktop is special: its config lives under the per-user
	// application-support directory, which xdg.ConfigHome resolves to
	// on every platform.
	if target == TargetClaudeDesktop {
		return filepath.Join(ConfigHome(), "Claude", "claude_desktop_config.json")
	}

	relPath, ok := targetConfigFiles[target]
	if !ok {
		return ""
	}
	home := Home()
	if home == "" {
		return ""
	}
	return filepath.Join(home, relPath)
}

// DotfilesDir returns the dotfiles directory holding the canonical settings
// document.
//
// Resolution order:
//  1. DOTFILES_DIR environment variable, if set and the directory exists
//  2. ~/Developer/repo/dotfiles
//  3. ~/.dotfiles
//  4. ~/dotfiles
//
// Returns ErrDotfilesNotFound if no candidate exists.
func DotfilesDir() (string, error) {
	if dir := os.Getenv(DotfilesDirEnv); dir != "" {
		if _, err := os.Stat(dir); err == nil {
			return dir, nil
		}
	}

	home, err := ResolveHome()
	if err != nil {
		return "", err
	}

	for _, rel := range dotfilesSearchDirs {
		candidate := filepath.Join(home, rel)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Wrapf(ErrDotfilesNotFound, "searched %s and %v under %s",
		DotfilesDirEnv, dotfilesSearchDirs, home)
}

// SettingsPath returns the path to the canonical settings document inside the
// dotfiles directory. The file itself is not required to exist.
func SettingsPath() (string, error) {
	dir, err := DotfilesDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}
