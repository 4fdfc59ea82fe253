package config

import (
	"path/filepath"
	"sort"

	"github.com/arthur-debert/resultmap/pkg/paths"
	"github.com/arthur-debert/resultmap/pkg/registry"
)

// Config is the loaded resultmap configuration.
type Config struct {
	Results Results           `koanf:"results"`
	Aliases map[string]string `koanf:"aliases"`
	Actions map[string]string `koanf:"actions"`
	Include []string          `koanf:"include"`

	// Source is the config file that was loaded, empty when none was found.
	Source string `koanf:"-"`
}

// Results holds result path settings
type Results struct {
	// Prefix is prepended to relative result paths
	Prefix string `koanf:"prefix"`
}

// CurrentPrefix implements resolver.PrefixProvider. An empty prefix counts
// as no prefix.
func (c *Config) CurrentPrefix() (string, bool) {
	if c == nil || c.Results.Prefix == "" {
		return "", false
	}
	return c.Results.Prefix, true
}

// BuildRegistry creates the alias registry described by the config: the
// [aliases] and [actions] tables first, then each include file in order.
func (c *Config) BuildRegistry() (*registry.Registry, error) {
	r := registry.New()

	for _, name := range sortedKeys(c.Aliases) {
		if err := r.RegisterAlias(name, c.Aliases[name]); err != nil {
			return nil, err
		}
	}
	for _, name := range sortedKeys(c.Actions) {
		if err := r.RegisterAction(name, c.Actions[name]); err != nil {
			return nil, err
		}
	}
	for _, include := range c.Include {
		if err := r.LoadFile(c.resolveInclude(include)); err != nil {
			return nil, err
		}
	}

	log.Debug().Int("entries", r.Len()).Msg("Alias registry built")
	return r, nil
}

func (c *Config) resolveInclude(path string) string {
	path = paths.ExpandHome(path)
	if filepath.IsAbs(path) || c.Source == "" {
		return path
	}
	return filepath.Join(filepath.Dir(c.Source), path)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
