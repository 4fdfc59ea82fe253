package testutil

import (
	"path/filepath"
	"testing"
)

// TestEnvironment is an isolated set of XDG directories under a temp dir.
type TestEnvironment struct {
	Root       string
	ConfigHome string
	ConfigDirs string
	StateHome  string
	LogFile    string

	t *testing.T
}

// NewTestEnvironment isolates config discovery and logging for the
// duration of the test. It uses t.Setenv, so the test must not be
// parallel.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		Root:       root,
		ConfigHome: filepath.Join(root, "config"),
		ConfigDirs: filepath.Join(root, "etc"),
		StateHome:  filepath.Join(root, "state"),
		LogFile:    filepath.Join(root, "resultmap.log"),
		t:          t,
	}

	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_CONFIG_DIRS", env.ConfigDirs)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	t.Setenv("RESULTMAP_LOG_FILE", env.LogFile)
	t.Setenv("RESULTMAP_CONFIG", "")

	return env
}

// WriteFile creates name, relative to Root, and returns its path.
func (env *TestEnvironment) WriteFile(name, content string) string {
	env.t.Helper()
	return CreateFile(env.t, env.Root, name, content)
}

// WriteUserConfig creates the config file found by XDG discovery.
func (env *TestEnvironment) WriteUserConfig(name, content string) string {
	env.t.Helper()
	return CreateFile(env.t, filepath.Join(env.ConfigHome, "resultmap"), name, content)
}

// UserConfigPath is where a written default config file lands.
func (env *TestEnvironment) UserConfigPath() string {
	return filepath.Join(env.ConfigHome, "resultmap", "config.toml")
}
