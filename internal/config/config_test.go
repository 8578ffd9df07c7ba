package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "webprep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadWithoutPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Manifest.Validate())
	require.NoError(t, cfg.Entrypoint.Validate())
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
manifest:
  dir: build/js
  strict: true
entrypoint:
  sentinel: "@@SCRIPTS@@"
  srcPrefix: /assets/
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.Manifest.Dir = "build/js"
	want.Manifest.Strict = true
	want.Entrypoint.Sentinel = "@@SCRIPTS@@"
	want.Entrypoint.SrcPrefix = "/assets/"
	assert.Equal(t, want, cfg)
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeConfig(t, "manifest:\n  directory: build/js\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestManifestValidate(t *testing.T) {
	m := Default().Manifest
	m.Suffix = ""
	assert.EqualError(t, m.Validate(), "manifest suffix cannot be empty")
}

func TestEntrypointValidate(t *testing.T) {
	e := Default().Entrypoint
	e.SrcPrefix = ""
	require.NoError(t, e.Validate())

	e.Sentinel = ""
	assert.EqualError(t, e.Validate(), "entrypoint sentinel cannot be empty")
}
