package settings

import (
	"encoding/json"
	"os"

	"github.com/thoreinstein/vibe/internal/envexpand"
)

// Expand returns a new document with environment variable references
// substituted in every string, using the process environment. The receiver is
// never modified. Unknown fields, both top-level and within server entries,
// are expanded too.
func (d *Document) Expand() *Document {
	return d.ExpandWith(nil)
}

// ExpandWith is Expand with an explicit lookup function. A nil lookup uses
// the process environment.
func (d *Document) ExpandWith(lookup envexpand.LookupFunc) *Document {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	out := &Document{
		unknownFields: expandRawFields(d.unknownFields, lookup),
	}

	if d.MCPServers != nil {
		out.MCPServers = make(map[string]*ServerEntry, len(d.MCPServers))
		for name, entry := range d.MCPServers {
			out.MCPServers[name] = entry.expandWith(lookup)
		}
	}

	return out
}

// expandWith returns a new entry with all strings expanded.
func (s *ServerEntry) expandWith(lookup envexpand.LookupFunc) *ServerEntry {
	return &ServerEntry{
		Command:       envexpand.StringWith(s.Command, lookup),
		Args:          envexpand.Strings(s.Args, lookup),
		Env:           envexpand.StringMap(s.Env, lookup),
		unknownFields: expandRawFields(s.unknownFields, lookup),
	}
}

// expandRawFields expands every string inside raw JSON field values.
// Values that fail to round-trip are kept as-is; they were produced by a
// successful parse, so this does not happen in practice.
func expandRawFields(fields map[string]json.RawMessage, lookup envexpand.LookupFunc) map[string]json.RawMessage {
	if fields == nil {
		return nil
	}

	out := make(map[string]json.RawMessage, len(fields))
	for k, raw := range fields {
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			out[k] = raw
			continue
		}
		expanded, err := json.Marshal(envexpand.ValueWith(v, lookup))
		if err != nil {
			out[k] = raw
			continue
		}
		out[k] = expanded
	}
	return out
}
