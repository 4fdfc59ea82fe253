package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	rmerrors "github.com/arthur-debert/resultmap/pkg/errors"
	"github.com/arthur-debert/resultmap/pkg/logging"
	"github.com/arthur-debert/resultmap/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var log = logging.GetLogger("config")

const (
	// EnvPrefix prefixes every environment override, e.g.
	// RESULTMAP_RESULTS_PREFIX sets results.prefix.
	EnvPrefix = "RESULTMAP_"

	// EnvConfigFile points at the config file to load
	EnvConfigFile = "RESULTMAP_CONFIG"
)

// LoadOptions controls Load.
type LoadOptions struct {
	// File is an explicit config file. It must exist.
	File string

	// Overrides are applied last, keyed by dotted path
	// (e.g. "results.prefix").
	Overrides map[string]interface{}
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load builds the configuration from, in increasing priority: embedded
// defaults, the config file, RESULTMAP_* environment variables and
// opts.Overrides.
func Load(opts LoadOptions) (*Config, error) {
	done := logging.LogOperationStart(log, "load-config")
	defer done()

	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, rmerrors.Wrap(err, rmerrors.ErrInternal, "failed to load defaults")
	}

	// 2. Config file
	source, err := findConfigFile(opts.File)
	if err != nil {
		return nil, err
	}
	if source != "" {
		parser, err := parserFor(source)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(source), parser); err != nil {
			return nil, rmerrors.Wrapf(err, rmerrors.ErrConfigParse, "failed to load config from %s", source).
				WithDetail("path", source)
		}
		log.Debug().Str("path", source).Msg("Config file loaded")
	}

	// 3. Environment
	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, rmerrors.Wrap(err, rmerrors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Explicit overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, rmerrors.Wrap(err, rmerrors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, rmerrors.Wrap(err, rmerrors.ErrConfigParse, "failed to decode configuration").
			WithDetail("path", source)
	}
	cfg.Source = source

	log.Debug().
		Str("source", source).
		Str("prefix", cfg.Results.Prefix).
		Int("aliases", len(cfg.Aliases)).
		Int("actions", len(cfg.Actions)).
		Msg("Configuration loaded")
	return &cfg, nil
}

// findConfigFile returns the config file to load: explicit, then
// $RESULTMAP_CONFIG, then the XDG config directories. An empty result
// means no file.
func findConfigFile(explicit string) (string, error) {
	if explicit == "" {
		explicit = os.Getenv(EnvConfigFile)
	}
	if explicit != "" {
		explicit = paths.ExpandHome(explicit)
		if _, err := os.Stat(explicit); err != nil {
			return "", rmerrors.Wrapf(err, rmerrors.ErrConfigLoad, "config file %s not readable", explicit).
				WithDetail("path", explicit)
		}
		return explicit, nil
	}

	path, _ := paths.FindConfigFile()
	return path, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return kyaml.Parser(), nil
	default:
		return nil, rmerrors.Newf(rmerrors.ErrConfigLoad, "unsupported config file extension %q", ext).
			WithDetail("path", path)
	}
}
