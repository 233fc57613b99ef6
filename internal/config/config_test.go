package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ".", cfg.BaseDir)
	assert.Equal(t, "https://github.com/Fabbiologia/vibe-coding-for-ecology", cfg.RepoURL)
	assert.Equal(t, "workflows", cfg.WorkflowsDir)
	assert.Equal(t, []string{"examples", "rules", "manuscript"}, cfg.Subdirs)
	assert.Equal(t, []string{"README.md", "CODE_OF_CONDUCT.md"}, cfg.MainFiles)
	assert.True(t, cfg.Lint.Enabled)
	assert.Equal(t, "markdownlint", cfg.Lint.Command)
	assert.Equal(t, ".markdownlint.json", cfg.Lint.ConfigPath)
	assert.Equal(t, "docs/**/*.md", cfg.Lint.Glob)
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".docbuild.toml")
	content := `repo_url = "https://github.com/example/fork"
subdirs = ["examples"]

[lint]
enabled = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://github.com/example/fork", cfg.RepoURL)
	assert.Equal(t, []string{"examples"}, cfg.Subdirs)
	assert.False(t, cfg.Lint.Enabled)

	// Untouched fields keep their defaults.
	assert.Equal(t, "workflows", cfg.WorkflowsDir)
	assert.Equal(t, "markdownlint", cfg.Lint.Command)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadInvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("repo_url = [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
