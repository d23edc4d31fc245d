package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("WISP_CONFIG_DIR", t.TempDir())

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 150, cfg.DebounceMs)
	assert.Equal(t, 5, cfg.SuggestTTLMinutes)
	assert.NotEmpty(t, cfg.DatabasePath)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WISP_CONFIG_DIR", dir)
	content := `
debounce_ms = 300
seed_domains = ["example.org"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644))

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 300, cfg.DebounceMs)
	assert.Equal(t, []string{"example.org"}, cfg.SeedDomains)
	assert.Equal(t, 5, cfg.SuggestTTLMinutes, "unset fields keep their defaults")
}

func TestLoad_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WISP_CONFIG_DIR", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("debounce_ms = ["), 0644))

	_, err := Load()

	assert.Error(t, err)
}

func TestDir_EnvOverride(t *testing.T) {
	t.Setenv("WISP_CONFIG_DIR", "/tmp/custom-wisp")

	assert.Equal(t, "/tmp/custom-wisp", Dir())
	assert.Equal(t, filepath.Join("/tmp/custom-wisp", "config.toml"), Path())
}
