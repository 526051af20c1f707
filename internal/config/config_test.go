package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingDefaultFileFallsBackToZeroValues(t *testing.T) {
	cfg, err := Load(LoadOptions{Path: filepath.Join(t.TempDir(), DefaultPath)})

	require.NoError(t, err)
	assert.Equal(t, &Configuration{}, cfg)
}

func TestLoad_MissingExplicitFileIsAnError(t *testing.T) {
	_, err := Load(LoadOptions{Path: filepath.Join(t.TempDir(), "nope.yml"), Explicit: true})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "nope.yml")
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "changelog.yml", `
format: json
no_links: true
repo: ../service
release:
  types:
    revert: Changed
grouped:
  types:
    revert: Reverts
`)

	cfg, err := Load(LoadOptions{Path: path, Explicit: true})

	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.True(t, cfg.NoLinks)
	assert.Equal(t, "../service", cfg.Repo)
	assert.Equal(t, map[string]string{"revert": "Changed"}, cfg.Release.Types)
	assert.Equal(t, map[string]string{"revert": "Reverts"}, cfg.Grouped.Types)
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "changelog.json", `{"format": "markdown", "release": {"types": {"hotfix": "Fixed"}}}`)

	cfg, err := Load(LoadOptions{Path: path, Explicit: true})

	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.Format)
	assert.Equal(t, map[string]string{"hotfix": "Fixed"}, cfg.Release.Types)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := writeFile(t, "broken.yml", "format: [unterminated\n")

	_, err := Load(LoadOptions{Path: path})

	assert.Error(t, err)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeFile(t, "changelog.yml", "format: markdown\nno_links: false\n")
	t.Setenv("CHANGELOG_FORMAT", "json")
	t.Setenv("CHANGELOG_NO_LINKS", "true")

	cfg, err := Load(LoadOptions{Path: path})

	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.True(t, cfg.NoLinks)
}

func TestEnvTransform(t *testing.T) {
	assert.Equal(t, "no_links", envTransform("CHANGELOG_NO_LINKS"))
	assert.Equal(t, "format", envTransform("CHANGELOG_FORMAT"))
}
