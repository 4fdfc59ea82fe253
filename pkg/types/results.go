package types

import (
	"github.com/arthur-debert/resultmap/pkg/registry"
	"github.com/arthur-debert/resultmap/pkg/resolver"
	"github.com/arthur-debert/resultmap/pkg/resultpath"
)

// Resolution is the outcome of resolving one descriptor.
type Resolution struct {
	Input  resolver.Descriptor   `json:"input" yaml:"input"`
	Result resultpath.ResultPath `json:"result" yaml:"result"`

	// Resolved is the joined string with the final alias pass applied. It
	// is nil unless a single string was requested and may point at "".
	Resolved *string `json:"resolved,omitempty" yaml:"resolved,omitempty"`
}

// SetResolved records the single-string form of the resolution.
func (r *Resolution) SetResolved(s string) {
	r.Resolved = &s
}

// ResolutionBatch is the outcome of resolving several descriptors.
type ResolutionBatch struct {
	Resolutions []Resolution `json:"resolutions" yaml:"resolutions"`
}

// Expansion is the outcome of expanding aliases in a single value.
type Expansion struct {
	Value    string `json:"value" yaml:"value"`
	Expanded string `json:"expanded" yaml:"expanded"`
}

// AliasListing lists the registry content.
type AliasListing struct {
	Entries []registry.Entry `json:"entries" yaml:"entries"`
}
