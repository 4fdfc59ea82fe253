package resolver

import (
	"strings"

	"github.com/arthur-debert/resultmap/pkg/logging"
	"github.com/arthur-debert/resultmap/pkg/resultpath"
	"github.com/rs/zerolog"
)

const (
	aliasOpen   = '<'
	aliasClose  = '>'
	backMarker  = '#'
	splitMarker = ".."
)

// Resolver turns raw result descriptors into result paths. It holds no
// mutable state and is safe for concurrent use when its collaborators are.
type Resolver struct {
	aliases AliasLookup
	prefix  PrefixProvider
	log     zerolog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger replaces the component logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Resolver) {
		r.log = logger
	}
}

// New creates a Resolver. A nil aliases finds no alias and a nil prefix
// never yields a prefix.
func New(aliases AliasLookup, prefix PrefixProvider, opts ...Option) *Resolver {
	if aliases == nil {
		aliases = noAliases{}
	}
	if prefix == nil {
		prefix = noPrefix{}
	}
	r := &Resolver{
		aliases: aliases,
		prefix:  prefix,
		log:     logging.GetLogger("resolver"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Descriptor is a raw (path, value) pair. An empty Value means no value.
type Descriptor struct {
	Path  string `json:"path" yaml:"path"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

func (r *Resolver) lookup(name string) (string, bool) {
	target, ok := r.aliases.Lookup(name)
	if !ok {
		r.log.Trace().Str("alias", name).Msg("Alias not found")
		return "", false
	}
	r.log.Trace().Str("alias", name).Str("target", target).Msg("Alias resolved")
	return target, true
}

// ResolveAlias expands alias references in value.
//
// A value without any '<' is looked up as a whole and returned unchanged
// when it is not an alias. Otherwise every <name> span is replaced by the
// alias target, or dropped when the alias is unknown. A span missing its
// closing '>' runs to the end of value.
func (r *Resolver) ResolveAlias(value string) string {
	var result strings.Builder
	result.Grow(len(value))

	i := 0
	for i < len(value) {
		ndx := strings.IndexByte(value[i:], aliasOpen)
		if ndx == -1 {
			if i == 0 {
				if target, ok := r.lookup(value); ok {
					return target
				}
				return value
			}
			result.WriteString(value[i:])
			break
		}
		ndx += i

		result.WriteString(value[i:ndx])
		ndx++

		var name string
		if end := strings.IndexByte(value[ndx:], aliasClose); end == -1 {
			name = value[ndx:]
			i = len(value)
		} else {
			name = value[ndx : ndx+end]
			i = ndx + end + 1
		}

		if target, ok := r.lookup(name); ok {
			result.WriteString(target)
		}
	}

	return collapseLeadingSlashes(result.String())
}

// collapseLeadingSlashes keeps exactly one slash out of a leading run of
// two or more. Such runs appear when an alias target starting with '/'
// follows literal text ending in '/'.
func collapseLeadingSlashes(s string) string {
	n := 0
	for n < len(s) && s[n] == '/' {
		n++
	}
	if n > 1 {
		return s[n-1:]
	}
	return s
}

// ResolveResultPath resolves path against the optional modifier value.
//
// A value expanding to something starting with '/' replaces path and is
// never prefixed; "/a..b" splits into path "/a" and value "b". Otherwise
// each leading '#' strips one trailing segment from path before the rest
// of value is applied. Relative results get the configured prefix.
func (r *Resolver) ResolveResultPath(path, value string) resultpath.ResultPath {
	absolute := false
	hasValue := value != ""

	if hasValue {
		value = r.ResolveAlias(value)

		if strings.HasPrefix(value, "/") {
			absolute = true
			if ndx := strings.Index(value, splitMarker); ndx != -1 {
				path, value = value[:ndx], value[ndx+len(splitMarker):]
			} else {
				path, value, hasValue = value, "", false
			}
		} else {
			path, value, hasValue = backtrack(path, value)
		}
	}

	if !absolute {
		if prefix, ok := r.prefix.CurrentPrefix(); ok {
			path = prefix + path
		}
	}

	r.log.Trace().
		Str("path", path).
		Str("value", value).
		Bool("hasValue", hasValue).
		Bool("absolute", absolute).
		Msg("Result path resolved")

	if hasValue {
		return resultpath.NewWithValue(path, value)
	}
	return resultpath.New(path)
}

// backtrack applies the leading '#' markers of value to path. Without any
// marker both pass through untouched.
func backtrack(path, value string) (string, string, bool) {
	marks := 0
	for marks < len(value) && value[marks] == backMarker {
		if ndx := lastIndexOfSlashDot(path); ndx != -1 {
			path = path[:ndx]
		}
		marks++
	}
	if marks == 0 {
		return path, value, true
	}

	value = value[marks:]

	if strings.HasPrefix(value, ".") {
		return path, value[1:], true
	}
	if ndx := strings.Index(value, splitMarker); ndx != -1 {
		return path + "." + value[:ndx], value[ndx+len(splitMarker):], true
	}
	if value != "" {
		if strings.HasSuffix(path, "/") {
			path += value
		} else {
			path += "." + value
		}
	}
	return path, "", false
}

// lastIndexOfSlashDot returns the index of the last '/' or '.', or -1.
func lastIndexOfSlashDot(path string) int {
	return strings.LastIndexAny(path, "/.")
}

// ResolveResultPathString resolves the result path, joins it into a single
// string and expands aliases once more, since joining may form new
// alias references.
func (r *Resolver) ResolveResultPathString(path, value string) string {
	return r.ResolveAlias(r.ResolveResultPath(path, value).PathValue())
}

// ResolveAll resolves descriptors in order.
func (r *Resolver) ResolveAll(descriptors []Descriptor) []resultpath.ResultPath {
	results := make([]resultpath.ResultPath, 0, len(descriptors))
	for _, d := range descriptors {
		results = append(results, r.ResolveResultPath(d.Path, d.Value))
	}
	return results
}
