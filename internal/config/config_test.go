package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{"database_url": "postgres://localhost/matcher", "skills_file": "skills.csv", "verbose": true}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/matcher", cfg.DatabaseURL)
	assert.Equal(t, "skills.csv", cfg.SkillsFile)
	assert.True(t, cfg.Verbose)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvFallback(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env-host/matcher")
	t.Setenv("SKILLS_FILE", "/data/skills.csv")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "postgres://env-host/matcher", cfg.DatabaseURL)
	assert.Equal(t, "/data/skills.csv", cfg.SkillsFile)
}

func TestLoad_FileWinsOverEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env-host/matcher")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"database_url": "postgres://file-host/matcher"}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://file-host/matcher", cfg.DatabaseURL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())
}
