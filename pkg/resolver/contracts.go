package resolver

// AliasLookup returns the configured target for an alias name. Lookups must
// not have side effects visible to the resolver.
type AliasLookup interface {
	Lookup(name string) (string, bool)
}

// PrefixProvider returns the globally configured path prefix, if any.
type PrefixProvider interface {
	CurrentPrefix() (string, bool)
}

// LookupFunc adapts a function to AliasLookup.
type LookupFunc func(name string) (string, bool)

// Lookup calls f(name).
func (f LookupFunc) Lookup(name string) (string, bool) {
	return f(name)
}

// PrefixFunc adapts a function to PrefixProvider.
type PrefixFunc func() (string, bool)

// CurrentPrefix calls f().
func (f PrefixFunc) CurrentPrefix() (string, bool) {
	return f()
}

// StaticPrefix is a fixed prefix. The empty string means no prefix.
type StaticPrefix string

// CurrentPrefix implements PrefixProvider.
func (p StaticPrefix) CurrentPrefix() (string, bool) {
	return string(p), p != ""
}

// MapLookup is a read-only alias table.
type MapLookup map[string]string

// Lookup implements AliasLookup.
func (m MapLookup) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

type noAliases struct{}

func (noAliases) Lookup(string) (string, bool) { return "", false }

type noPrefix struct{}

func (noPrefix) CurrentPrefix() (string, bool) { return "", false }
