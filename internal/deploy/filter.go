package deploy

import (
	"sort"

	"github.com/thoreinstein/vibe/internal/paths"
	"github.com/thoreinstein/vibe/internal/settings"
)

// builtinServers are MCP capabilities Claude Code ships natively. Deploying
// them again would duplicate tools the assistant already provides, so they
// are excluded from the claude-code document only.
var builtinServers = map[string]struct{}{
	"filesystem":   {},
	"git":          {},
	"github":       {},
	"brave-search": {},
	"memory":       {},
}

// BuiltinServers returns the builtin server names in lexical order.
func BuiltinServers() []string {
	names := make([]string, 0, len(builtinServers))
	for name := range builtinServers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FilterServers returns a new server map appropriate for the given target,
// along with the number of entries excluded.
//
// For claude-code, entries named in the builtin set are dropped. For every
// other target the result is a copy of the input with zero exclusions.
// The input map is never modified; a nil input yields a nil result.
func FilterServers(servers map[string]*settings.ServerEntry, target string) (map[string]*settings.ServerEntry, int) {
	if servers == nil {
		return nil, 0
	}

	out := make(map[string]*settings.ServerEntry, len(servers))
	excluded := 0
	for name, entry := range servers {
		if target == paths.TargetClaudeCode {
			if _, builtin := builtinServers[name]; builtin {
				excluded++
				continue
			}
		}
		out[name] = entry
	}
	return out, excluded
}
