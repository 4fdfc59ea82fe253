package config

import (
	_ "embed"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

//go:embed embedded/example.toml
var exampleConfig []byte

// GetExampleConfigContent returns the documented example configuration
func GetExampleConfigContent() string {
	return string(exampleConfig)
}
