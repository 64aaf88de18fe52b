package deploy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/vibe/internal/paths"
	"github.com/thoreinstein/vibe/internal/settings"
)

func serverMap(names ...string) map[string]*settings.ServerEntry {
	out := make(map[string]*settings.ServerEntry, len(names))
	for _, name := range names {
		out[name] = &settings.ServerEntry{Command: "run-" + name}
	}
	return out
}

func TestFilterServers_ClaudeCode(t *testing.T) {
	servers := serverMap("filesystem", "custom-tool")

	filtered, excluded := FilterServers(servers, paths.TargetClaudeCode)

	assert.Equal(t, 1, excluded)
	assert.NotContains(t, filtered, "filesystem")
	assert.Contains(t, filtered, "custom-tool")
	assert.Len(t, filtered, 1)
}

func TestFilterServers_ClaudeCodeAllBuiltins(t *testing.T) {
	servers := serverMap(BuiltinServers()...)

	filtered, excluded := FilterServers(servers, paths.TargetClaudeCode)

	assert.Equal(t, len(BuiltinServers()), excluded)
	assert.Empty(t, filtered)
	assert.NotNil(t, filtered)
}

func TestFilterServers_OtherTargetsAreIdentity(t *testing.T) {
	servers := serverMap("filesystem", "git", "custom-tool")

	for _, target := range []string{paths.TargetClaudeDesktop, paths.TargetCodex, paths.TargetGemini} {
		t.Run(target, func(t *testing.T) {
			filtered, excluded := FilterServers(servers, target)

			assert.Zero(t, excluded)
			assert.Equal(t, servers, filtered)
		})
	}
}

func TestFilterServers_ReturnsNewMap(t *testing.T) {
	servers := serverMap("custom-tool")

	filtered, _ := FilterServers(servers, paths.TargetGemini)
	filtered["added"] = &settings.ServerEntry{}

	assert.NotContains(t, servers, "added", "input map must not be modified")
}

func TestFilterServers_Nil(t *testing.T) {
	filtered, excluded := FilterServers(nil, paths.TargetClaudeCode)
	assert.Nil(t, filtered)
	assert.Zero(t, excluded)
}

func TestFilterServers_Idempotent(t *testing.T) {
	servers := serverMap("filesystem", "memory", "custom-tool")

	once, excludedOnce := FilterServers(servers, paths.TargetClaudeCode)
	twice, excludedTwice := FilterServers(once, paths.TargetClaudeCode)

	require.Equal(t, 2, excludedOnce)
	assert.Zero(t, excludedTwice)
	assert.Equal(t, once, twice)
}

func TestBuiltinServers(t *testing.T) {
	assert.Equal(t, []string{"brave-search", "filesystem", "git", "github", "memory"}, BuiltinServers())
}
