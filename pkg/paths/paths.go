package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/resultmap/pkg/errors"
)

const (
	// AppDirName is the directory name for resultmap files under each XDG base
	AppDirName = "resultmap"

	// ConfigFileName is the preferred config file name
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "resultmap.log"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// ConfigFileNames are searched in order by FindConfigFile
var ConfigFileNames = []string{ConfigFileName, "config.yaml", "config.yml"}

// ConfigDir returns the user config directory for resultmap
func ConfigDir() string {
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the state directory for resultmap
func StateDir() string {
	xdg.Reload()
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFilePath returns the default log file location
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// FindConfigFile searches the XDG config directories for the first of
// ConfigFileNames. It returns false when none exists.
func FindConfigFile() (string, bool) {
	xdg.Reload()
	for _, name := range ConfigFileNames {
		if path, err := xdg.SearchConfigFile(filepath.Join(AppDirName, name)); err == nil {
			return path, true
		}
	}
	return "", false
}

// UserConfigFile returns the path of the user config file, creating its
// parent directories.
func UserConfigFile() (string, error) {
	xdg.Reload()
	path, err := xdg.ConfigFile(filepath.Join(AppDirName, ConfigFileName))
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFileAccess, "failed to create config directory")
	}
	return path, nil
}

// ExpandHome expands a leading ~ to the home directory. ~user forms are
// returned unchanged.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
