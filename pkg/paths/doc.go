// Package paths centralizes the file locations used by resultmap.
//
// All locations follow the XDG Base Directory specification through
// github.com/adrg/xdg:
//
//	$XDG_CONFIG_HOME/resultmap/config.toml   user configuration
//	$XDG_CONFIG_DIRS/resultmap/config.toml   system configuration
//	$XDG_STATE_HOME/resultmap/resultmap.log  log file
//
// XDG variables are re-read on every call so tests can point them at
// temporary directories with t.Setenv.
package paths
