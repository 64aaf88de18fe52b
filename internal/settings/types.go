package settings

import (
	"encoding/json"
	"sort"
)

// ServerEntry describes one launchable MCP server process.
// All fields are optional; absent fields are omitted from output, never
// emitted as null or empty.
type ServerEntry struct {
	// Command is the executable to run.
	Command string `json:"command,omitempty"`

	// Args are command-line arguments passed to the command.
	Args []string `json:"args,omitempty"`

	// Env contains environment variables passed to the server process.
	Env map[string]string `json:"env,omitempty"`

	// unknownFields stores JSON fields not explicitly defined in this struct.
	// This ensures forward compatibility when assistants add new server fields.
	unknownFields map[string]json.RawMessage
}

// MarshalJSON implements json.Marshaler to include unknown fields in output.
func (s *ServerEntry) MarshalJSON() ([]byte, error) {
	// Build a map with all fields
	result := make(map[string]any)

	// Copy unknown fields first (so known fields take precedence)
	for k, v := range s.unknownFields {
		var val any
		if err := json.Unmarshal(v, &val); err != nil {
			return nil, err
		}
		result[k] = val
	}

	// Add known fields (only if non-zero to match omitempty behavior)
	if s.Command != "" {
		result["command"] = s.Command
	}
	if len(s.Args) > 0 {
		result["args"] = s.Args
	}
	if len(s.Env) > 0 {
		result["env"] = s.Env
	}

	return json.Marshal(result)
}

// UnmarshalJSON implements json.Unmarshaler to capture unknown fields.
func (s *ServerEntry) UnmarshalJSON(data []byte) error {
	// First, unmarshal into a generic map to capture all fields
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	// Extract known fields
	if v, ok := raw["command"]; ok {
		if err := json.Unmarshal(v, &s.Command); err != nil {
			return err
		}
		delete(raw, "command")
	}
	if v, ok := raw["args"]; ok {
		if err := json.Unmarshal(v, &s.Args); err != nil {
			return err
		}
		delete(raw, "args")
	}
	if v, ok := raw["env"]; ok {
		if err := json.Unmarshal(v, &s.Env); err != nil {
			return err
		}
		delete(raw, "env")
	}

	// Store remaining fields as unknown
	if len(raw) > 0 {
		s.unknownFields = raw
	}

	return nil
}

// Document is the canonical settings document deployed to every target.
type Document struct {
	// MCPServers maps server names to their configurations.
	MCPServers map[string]*ServerEntry `json:"mcpServers"`

	// unknownFields stores JSON fields not explicitly defined in this struct.
	// Unknown top-level keys are preserved and passed through untouched.
	unknownFields map[string]json.RawMessage
}

// NewDocument creates a new Document with initialized maps.
func NewDocument() *Document {
	return &Document{
		MCPServers: make(map[string]*ServerEntry),
	}
}

// MarshalJSON implements json.Marshaler to include unknown fields in output.
func (d *Document) MarshalJSON() ([]byte, error) {
	// Build a map with all fields
	result := make(map[string]any)

	// Copy unknown fields first (so known fields take precedence)
	for k, v := range d.unknownFields {
		var val any
		if err := json.Unmarshal(v, &val); err != nil {
			return nil, err
		}
		result[k] = val
	}

	if d.MCPServers != nil {
		result["mcpServers"] = d.MCPServers
	}

	return json.Marshal(result)
}

// UnmarshalJSON implements json.Unmarshaler to capture unknown fields.
func (d *Document) UnmarshalJSON(data []byte) error {
	// First, unmarshal into a generic map to capture all fields
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	// Extract the known field
	if serversData, ok := raw["mcpServers"]; ok {
		if err := json.Unmarshal(serversData, &d.MCPServers); err != nil {
			return err
		}
		delete(raw, "mcpServers")
	}

	// Store remaining fields as unknown
	if len(raw) > 0 {
		d.unknownFields = raw
	}

	return nil
}

// WithServers returns a shallow copy of the document with its server map
// replaced. The receiver is not modified; unknown top-level fields carry over.
func (d *Document) WithServers(servers map[string]*ServerEntry) *Document {
	return &Document{
		MCPServers:    servers,
		unknownFields: d.unknownFields,
	}
}

// ServerNames returns the server names in lexical order for deterministic
// iteration.
func (d *Document) ServerNames() []string {
	names := make([]string, 0, len(d.MCPServers))
	for name := range d.MCPServers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
