// Package config loads resultmap configuration.
//
// Sources are layered with koanf, later ones winning:
//
//  1. embedded defaults
//  2. the config file: --config, $RESULTMAP_CONFIG, or
//     $XDG_CONFIG_HOME/resultmap/config.{toml,yaml,yml}
//  3. RESULTMAP_* environment variables (RESULTMAP_RESULTS_PREFIX)
//  4. command-line overrides
//
// The loaded Config provides the result path prefix to the resolver and
// builds the alias registry. Keys are split on '.', so alias names holding
// a dot belong in an include file rather than the [aliases] table.
package config
