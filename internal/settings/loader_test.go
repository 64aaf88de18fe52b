package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mcp-settings.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeSettings(t, `{
  "mcpServers": {
    "github": {
      "command": "npx",
      "args": ["-y", "@modelcontextprotocol/server-github"],
      "env": {"GITHUB_TOKEN": "${GITHUB_TOKEN}"}
    }
  }
}`)

	doc, err := Load(path)
	require.NoError(t, err)
	require.Contains(t, doc.MCPServers, "github")
	assert.Equal(t, "npx", doc.MCPServers["github"].Command)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeSettings(t, `{"mcpServers": {`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrParse)
}

func TestLoad_SchemaViolation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "command is not a string",
			content: `{"mcpServers": {"bad": {"command": 42}}}`,
		},
		{
			name:    "args contains a number",
			content: `{"mcpServers": {"bad": {"args": ["ok", 7]}}}`,
		},
		{
			name:    "env value is not a string",
			content: `{"mcpServers": {"bad": {"env": {"KEY": true}}}}`,
		},
		{
			name:    "mcpServers is an array",
			content: `{"mcpServers": []}`,
		},
		{
			name:    "server entry is a string",
			content: `{"mcpServers": {"bad": "nope"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSettings(t, tt.content)

			_, err := Load(path)
			require.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), "/mcpServers", "error should name the offending path")
		})
	}
}

func TestLoad_ExtraFieldsAllowed(t *testing.T) {
	path := writeSettings(t, `{
  "mcpServers": {"demo": {"command": "run", "timeout": 5}},
  "theme": "dark"
}`)

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Contains(t, doc.MCPServers, "demo")
}

func TestLoad_MissingMCPServersKeyAllowed(t *testing.T) {
	path := writeSettings(t, `{"theme": "dark"}`)

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Nil(t, doc.MCPServers)
}

func TestLoad_RereadsFreshContent(t *testing.T) {
	path := writeSettings(t, `{"mcpServers": {"a": {"command": "one"}}}`)

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "one", doc.MCPServers["a"].Command)

	require.NoError(t, os.WriteFile(path, []byte(`{"mcpServers": {"a": {"command": "two"}}}`), 0o644))

	doc, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "two", doc.MCPServers["a"].Command)
}
