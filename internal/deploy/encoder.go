package deploy

import (
	"encoding/json"

	"github.com/pelletier/go-toml/v2"

	"github.com/thoreinstein/vibe/internal/errors"
	"github.com/thoreinstein/vibe/internal/settings"
)

// ErrEncode indicates a document could not be rendered in a target's native
// format. In practice every input already conforms to the settings schema, so
// this surfaces only on programmer error.
var ErrEncode = errors.New("encoding failed")

// EncodeJSON renders the full settings document as indented JSON (2-space
// indent, trailing newline). All original top-level fields are included, with
// mcpServers carrying the filtered and expanded server map.
func EncodeJSON(doc *settings.Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrapf(ErrEncode, "marshaling JSON: %v", err)
	}
	return append(data, '\n'), nil
}

// codexServer is the TOML shape of one server subtable in codex's
// config.toml. Absent fields are omitted entirely, never emitted as empty.
type codexServer struct {
	Command string            `toml:"command,omitempty"`
	Args    []string          `toml:"args,omitempty"`
	Env     map[string]string `toml:"env,omitempty,inline"`
}

// codexConfig is the root of codex's config.toml: a single mcp_servers table
// with one subtable per server.
type codexConfig struct {
	MCPServers map[string]codexServer `toml:"mcp_servers"`
}

// EncodeCodexTOML renders only the server map (not the full document) as
// codex's config.toml. Each server becomes an [mcp_servers.<name>] subtable
// with command as a string, args as an array of strings, and env as an inline
// table of string pairs.
func EncodeCodexTOML(doc *settings.Document) ([]byte, error) {
	cfg := codexConfig{
		MCPServers: make(map[string]codexServer, len(doc.MCPServers)),
	}
	for name, entry := range doc.MCPServers {
		cfg.MCPServers[name] = codexServer{
			Command: entry.Command,
			Args:    entry.Args,
			Env:     entry.Env,
		}
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrapf(ErrEncode, "marshaling TOML: %v", err)
	}
	return data, nil
}
