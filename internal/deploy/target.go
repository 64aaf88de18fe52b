package deploy

import (
	"strings"

	"github.com/thoreinstein/vibe/internal/errors"
	"github.com/thoreinstein/vibe/internal/paths"
	"github.com/thoreinstein/vibe/internal/settings"
)

// Format identifies a target's native serialization.
type Format string

const (
	// FormatJSON is indented JSON of the full settings document.
	FormatJSON Format = "json"
	// FormatTOML is the codex config.toml rendering of the server map.
	FormatTOML Format = "toml"
)

// Encoder renders a filtered, expanded settings document into a target's
// native serialization.
type Encoder func(doc *settings.Document) ([]byte, error)

// Target describes one deployment destination: where its config file lives
// and how to encode it. The table of targets is built once at process start
// and immutable thereafter.
type Target struct {
	// Name is the target identifier (claude-desktop, codex, gemini, claude-code).
	Name string

	// DisplayName is the human-readable name used in output.
	DisplayName string

	// Path is the absolute path of the deployed config file.
	Path string

	// Format is the target's native serialization.
	Format Format

	// Encode renders the document for this target.
	Encode Encoder
}

// ErrUnknownTarget indicates a deployment target identifier is not recognized.
var ErrUnknownTarget = errors.New("unknown deployment target")

// DefaultTargets builds the target table from home-directory and platform
// conventions. Called once at process start; the result is treated as
// immutable.
func DefaultTargets() []Target {
	return []Target{
		{
			Name:        paths.TargetClaudeDesktop,
			DisplayName: "Claude Desktop",
			Path:        paths.TargetConfigPath(paths.TargetClaudeDesktop),
			Format:      FormatJSON,
			Encode:      EncodeJSON,
		},
		{
			Name:        paths.TargetCodex,
			DisplayName: "Codex CLI",
			Path:        paths.TargetConfigPath(paths.TargetCodex),
			Format:      FormatTOML,
			Encode:      EncodeCodexTOML,
		},
		{
			Name:        paths.TargetGemini,
			DisplayName: "Gemini CLI",
			Path:        paths.TargetConfigPath(paths.TargetGemini),
			Format:      FormatJSON,
			Encode:      EncodeJSON,
		},
		{
			Name:        paths.TargetClaudeCode,
			DisplayName: "Claude Code",
			Path:        paths.TargetConfigPath(paths.TargetClaudeCode),
			Format:      FormatJSON,
			Encode:      EncodeJSON,
		},
	}
}

// lookupTarget finds a target by identifier in the given table.
// Returns ErrUnknownTarget naming the valid identifiers when not found.
func lookupTarget(targets []Target, name string) (Target, error) {
	for _, t := range targets {
		if t.Name == name {
			return t, nil
		}
	}

	valid := make([]string, len(targets))
	for i, t := range targets {
		valid[i] = t.Name
	}
	return Target{}, errors.Wrapf(ErrUnknownTarget, "%q (valid: %s)", name, strings.Join(valid, ", "))
}
