package cmd

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	toml "github.com/pelletier/go-toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"
)

func discard() *slog.Logger { return slog.New(slog.DiscardHandler) }

func TestConfigInitGenerateJSON(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "nested", "generate.json")
	c := &ConfigInit{Command: "generate", Format: "json", Output: dest}
	require.NoError(t, c.Run(discard()))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, map[string]any{
		"registry":       "",
		"output":         "./generated",
		"lang":           "all",
		"on_unsupported": "abort",
		"go_module":      "github.com/n2kgen/n2kmessages",
		"go_package":     "",
	}, got)
}

func TestConfigInitListYAML(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "list.yaml")
	c := &ConfigInit{Command: "list", Format: "yml", Output: dest}
	require.NoError(t, c.Run(discard()))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, false, got["all"])
	assert.Equal(t, false, got["fields"])
	assert.Equal(t, "auto", got["color"])
}

func TestConfigInitTOML(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "generate.toml")
	c := &ConfigInit{Command: "generate", Format: "toml", Output: dest}
	require.NoError(t, c.Run(discard()))

	tree, err := toml.LoadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "abort", tree.Get("on_unsupported"))
	assert.Equal(t, "all", tree.Get("lang"))
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "generate.json")
	require.NoError(t, os.WriteFile(dest, []byte("{}"), 0o644))

	c := &ConfigInit{Command: "generate", Format: "json", Output: dest}
	assert.EqualError(t, c.Run(discard()), "destination exists; use --force to overwrite")

	c.Force = true
	require.NoError(t, c.Run(discard()))
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"lang": "all"`)
}

func TestConfigInitErrors(t *testing.T) {
	dir := t.TempDir()
	assert.EqualError(t, (&ConfigInit{Command: "generate", Format: "ini", Output: filepath.Join(dir, "x")}).Run(discard()),
		"unsupported format: ini")
	assert.EqualError(t, (&ConfigInit{Command: "serve", Format: "json", Output: filepath.Join(dir, "y")}).Run(discard()),
		"unknown command; expected 'generate' or 'list'")
}

func TestConfigInitDefaultDestination(t *testing.T) {
	t.Chdir(t.TempDir())

	require.NoError(t, (&ConfigInit{Command: "list", Format: "toml"}).Run(discard()))
	_, err := os.Stat("list.toml")
	assert.NoError(t, err)
}
