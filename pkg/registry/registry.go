// Package registry keeps the alias tables consulted during result path
// resolution.
//
// Two tables are kept. Path aliases map a short name to a path fragment.
// Actions map an action name to its action path and serve as the fallback
// when no path alias matches, so an action can be referenced by name from
// a result value.
package registry

import (
	"sort"
	"strings"
	"sync"

	"github.com/arthur-debert/resultmap/pkg/errors"
	"github.com/arthur-debert/resultmap/pkg/logging"
)

var log = logging.GetLogger("registry")

// Kind tells which table an entry belongs to.
type Kind string

const (
	KindAlias  Kind = "alias"
	KindAction Kind = "action"
)

// Entry is a single registered name.
type Entry struct {
	Name   string `json:"name" yaml:"name"`
	Target string `json:"target" yaml:"target"`
	Kind   Kind   `json:"kind" yaml:"kind"`
}

// Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	aliases map[string]string
	actions map[string]string
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		aliases: make(map[string]string),
		actions: make(map[string]string),
	}
}

// RegisterAlias adds a path alias. Registering the same name with the same
// target again is a no-op.
func (r *Registry) RegisterAlias(name, target string) error {
	if err := validateName(name); err != nil {
		return err
	}
	return r.register(r.aliases, KindAlias, name, target)
}

// RegisterAction adds an action path reachable by name. Action paths are
// absolute.
func (r *Registry) RegisterAction(name, actionPath string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if !strings.HasPrefix(actionPath, "/") {
		return errors.Newf(errors.ErrActionInvalid, "action path %q must start with '/'", actionPath).
			WithDetail("name", name).
			WithDetail("path", actionPath)
	}
	return r.register(r.actions, KindAction, name, actionPath)
}

func (r *Registry) register(table map[string]string, kind Kind, name, target string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := table[name]; ok {
		if existing == target {
			return nil
		}
		return errors.Newf(errors.ErrAliasExists, "%s %q already maps to %q", kind, name, existing).
			WithDetail("name", name).
			WithDetail("existing", existing).
			WithDetail("target", target)
	}

	table[name] = target
	log.Debug().Str("kind", string(kind)).Str("name", name).Str("target", target).Msg("Registered")
	return nil
}

func validateName(name string) error {
	if name == "" {
		return errors.New(errors.ErrAliasInvalid, "alias name is empty")
	}
	if strings.ContainsAny(name, "<>") {
		return errors.Newf(errors.ErrAliasInvalid, "alias name %q must not contain '<' or '>'", name).
			WithDetail("name", name)
	}
	return nil
}

// Lookup returns the path alias for name, falling back to the action path
// registered under name.
func (r *Registry) Lookup(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if target, ok := r.aliases[name]; ok {
		return target, true
	}
	if actionPath, ok := r.actions[name]; ok {
		return actionPath, true
	}
	return "", false
}

// Entries returns all registered names sorted by name, aliases before
// actions on equal names.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, 0, len(r.aliases)+len(r.actions))
	for name, target := range r.aliases {
		entries = append(entries, Entry{Name: name, Target: target, Kind: KindAlias})
	}
	for name, target := range r.actions {
		entries = append(entries, Entry{Name: name, Target: target, Kind: KindAction})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].Kind == KindAlias && entries[j].Kind != KindAlias
	})
	return entries
}

// Len returns the number of registered names across both tables.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.aliases) + len(r.actions)
}
