package settings

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}
}

func TestExpandWith(t *testing.T) {
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(`{
  "mcpServers": {
    "demo": {
      "command": "${BIN_DIR}/run",
      "args": ["--token", "$TOKEN"],
      "env": {"KEY": "${TOKEN}", "KEEP": "${MISSING}"}
    }
  },
  "note": "home is $HOME_DIR"
}`), &doc))

	expanded := doc.ExpandWith(lookupFrom(map[string]string{
		"BIN_DIR":  "/opt/bin",
		"TOKEN":    "abc123",
		"HOME_DIR": "/home/u",
	}))

	demo := expanded.MCPServers["demo"]
	assert.Equal(t, "/opt/bin/run", demo.Command)
	assert.Equal(t, []string{"--token", "abc123"}, demo.Args)
	assert.Equal(t, "abc123", demo.Env["KEY"])
	assert.Equal(t, "${MISSING}", demo.Env["KEEP"], "unset variables stay literal")

	// Unknown top-level fields are expanded too.
	out, err := json.Marshal(expanded)
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(out, &raw))
	assert.Equal(t, "home is /home/u", raw["note"])
}

func TestExpandWith_DoesNotMutateOriginal(t *testing.T) {
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(`{
  "mcpServers": {"demo": {"command": "${BIN}", "env": {"K": "$BIN"}}}
}`), &doc))

	_ = doc.ExpandWith(lookupFrom(map[string]string{"BIN": "/usr/bin/x"}))

	assert.Equal(t, "${BIN}", doc.MCPServers["demo"].Command)
	assert.Equal(t, "$BIN", doc.MCPServers["demo"].Env["K"])
}

func TestExpandWith_AbsenceSurvives(t *testing.T) {
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(`{"mcpServers": {"demo": {"command": "run"}}}`), &doc))

	expanded := doc.ExpandWith(lookupFrom(nil))

	out, err := json.Marshal(expanded)
	require.NoError(t, err)
	var raw map[string]map[string]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &raw))

	entry := raw["mcpServers"]["demo"]
	assert.Contains(t, entry, "command")
	assert.NotContains(t, entry, "args")
	assert.NotContains(t, entry, "env")
}

func TestExpand_Idempotent(t *testing.T) {
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(`{
  "mcpServers": {"demo": {"command": "$BIN", "env": {"K": "${MISSING}"}}}
}`), &doc))

	lookup := lookupFrom(map[string]string{"BIN": "/usr/bin/x"})

	once := doc.ExpandWith(lookup)
	twice := once.ExpandWith(lookup)

	onceJSON, err := json.Marshal(once)
	require.NoError(t, err)
	twiceJSON, err := json.Marshal(twice)
	require.NoError(t, err)
	assert.JSONEq(t, string(onceJSON), string(twiceJSON))
}

func TestExpand_NilServersPreserved(t *testing.T) {
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(`{"theme": "dark"}`), &doc))

	expanded := doc.Expand()
	assert.Nil(t, expanded.MCPServers)
}
