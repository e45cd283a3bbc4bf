package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stickering "github.com/SeamusWaldron/gocube_stickering"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "stickering.db", cfg.Database.Path)
	assert.Equal(t, "docs", cfg.Content.Dir)
	assert.Equal(t, []string{".md", ".mdx"}, cfg.Content.Extensions)
	assert.Equal(t, 250, cfg.Content.DebounceMS)
	assert.Equal(t, "stickerings.html", cfg.Render.Output)
	assert.Equal(t, stickering.Ignored, cfg.DefaultOption())
	assert.False(t, cfg.Log.JSON)
}

func TestLoadFromFile(t *testing.T) {
	path := writeFile(t, `
[database]
path = "/tmp/presets.db"

[content]
dir = "site/content"
extensions = [".md"]

[builder]
default_option = "dim"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/presets.db", cfg.Database.Path)
	assert.Equal(t, "site/content", cfg.Content.Dir)
	assert.Equal(t, []string{".md"}, cfg.Content.Extensions)
	assert.Equal(t, stickering.Dim, cfg.DefaultOption())
	// untouched keys keep their defaults
	assert.Equal(t, "stickerings.html", cfg.Render.Output)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "[database]\npath = \"from-file.db\"\n")
	t.Setenv("STICKERING_DATABASE_PATH", "from-env.db")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env.db", cfg.Database.Path)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	path := writeFile(t, "[builder]\ndefault_option = \"shiny\"\n")
	_, err := Load(path)
	assert.ErrorIs(t, err, stickering.ErrUnknownOption)

	cfg := Default()
	cfg.Content.Extensions = []string{"md"}
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Content.DebounceMS = -1
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Database.Path = ""
	assert.Error(t, cfg.Validate())
}

func TestWriteDefaultRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)
	require.NoError(t, WriteDefault(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	err = WriteDefault(path, false)
	assert.Error(t, err)
	assert.NoError(t, WriteDefault(path, true))
}
