package registry

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/resultmap/pkg/errors"
	"github.com/arthur-debert/resultmap/pkg/logging"
	"github.com/beevik/etree"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// aliasFile is the TOML and YAML layout of an alias file:
//
//	[aliases]
//	home = "/index"
//
//	[actions]
//	bookList = "/book/list"
type aliasFile struct {
	Aliases map[string]string `toml:"aliases,omitempty" yaml:"aliases,omitempty"`
	Actions map[string]string `toml:"actions,omitempty" yaml:"actions,omitempty"`
}

// LoadFile registers the aliases and actions found in an alias file. The
// format follows the extension: .toml, .yaml, .yml or .xml.
//
// XML alias files look like:
//
//	<aliases>
//	  <alias name="home" path="/index"/>
//	  <action name="bookList" path="/book/list"/>
//	</aliases>
func (r *Registry) LoadFile(path string) error {
	done := logging.LogOperationStart(log, "load-alias-file")
	defer done()

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrAliasFileLoad, "cannot read alias file %s", path).
			WithDetail("path", path)
	}

	var parsed aliasFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &parsed)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &parsed)
	case ".xml":
		parsed, err = parseXML(data)
	default:
		return errors.Newf(errors.ErrAliasFileFormat, "unsupported alias file extension %q", ext).
			WithDetail("path", path)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrAliasFileLoad, "cannot parse alias file %s", path).
			WithDetail("path", path)
	}

	if err := r.apply(parsed); err != nil {
		return err
	}

	log.Info().
		Str("path", path).
		Int("aliases", len(parsed.Aliases)).
		Int("actions", len(parsed.Actions)).
		Msg("Alias file loaded")
	return nil
}

func (r *Registry) apply(f aliasFile) error {
	for _, name := range sortedKeys(f.Aliases) {
		if err := r.RegisterAlias(name, f.Aliases[name]); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(f.Actions) {
		if err := r.RegisterAction(name, f.Actions[name]); err != nil {
			return err
		}
	}
	return nil
}

func parseXML(data []byte) (aliasFile, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return aliasFile{}, err
	}

	root := doc.SelectElement("aliases")
	if root == nil {
		return aliasFile{}, errors.New(errors.ErrAliasFileFormat, "missing <aliases> root element")
	}

	f := aliasFile{
		Aliases: make(map[string]string),
		Actions: make(map[string]string),
	}
	for _, el := range root.ChildElements() {
		name := el.SelectAttrValue("name", "")
		path := el.SelectAttrValue("path", "")

		var table map[string]string
		switch el.Tag {
		case "alias":
			table = f.Aliases
		case "action":
			table = f.Actions
		default:
			return aliasFile{}, errors.Newf(errors.ErrAliasFileFormat, "unexpected element <%s>", el.Tag)
		}
		if _, dup := table[name]; dup {
			return aliasFile{}, errors.Newf(errors.ErrAliasFileFormat, "duplicate <%s name=%q>", el.Tag, name).
				WithDetail("name", name)
		}
		table[name] = path
	}
	return f, nil
}

// ExportTOML serializes the registry in the alias file layout.
func (r *Registry) ExportTOML() ([]byte, error) {
	r.mu.RLock()
	f := aliasFile{
		Aliases: copyMap(r.aliases),
		Actions: copyMap(r.actions),
	}
	r.mu.RUnlock()

	data, err := toml.Marshal(f)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot encode aliases")
	}
	return data, nil
}

func copyMap(m map[string]string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
