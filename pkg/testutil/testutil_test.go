package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateFile(t *testing.T) {
	dir := t.TempDir()

	path := CreateFile(t, dir, "nested/deep/file.toml", "x = 1\n")

	assert.Equal(t, filepath.Join(dir, "nested", "deep", "file.toml"), path)
	assert.Equal(t, "x = 1\n", ReadFile(t, path))
}

func TestNewTestEnvironment(t *testing.T) {
	env := NewTestEnvironment(t)

	assert.Equal(t, env.ConfigHome, os.Getenv("XDG_CONFIG_HOME"))
	assert.Equal(t, env.StateHome, os.Getenv("XDG_STATE_HOME"))
	assert.Equal(t, env.LogFile, os.Getenv("RESULTMAP_LOG_FILE"))
	assert.Empty(t, os.Getenv("RESULTMAP_CONFIG"))

	path := env.WriteUserConfig("config.toml", "")
	assert.Equal(t, env.UserConfigPath(), path)
	assert.FileExists(t, path)

	assert.FileExists(t, env.WriteFile("a/b.yaml", "k: v\n"))
}
