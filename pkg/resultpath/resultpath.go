// Package resultpath holds the resolved forward/redirect target produced by
// the resolver package.
package resultpath

import (
	"encoding/json"
)

// Separator joins path and value in PathValue.
const Separator = "."

// ResultPath is an immutable path plus optional value.
type ResultPath struct {
	path     string
	value    string
	hasValue bool
}

// New creates a ResultPath without a value.
func New(path string) ResultPath {
	return ResultPath{path: path}
}

// NewWithValue creates a ResultPath carrying a value. An empty value is
// still a present value: PathValue will end with the separator.
func NewWithValue(path, value string) ResultPath {
	return ResultPath{path: path, value: value, hasValue: true}
}

// Path returns the resolved path.
func (r ResultPath) Path() string {
	return r.path
}

// Value returns the value and whether it is present.
func (r ResultPath) Value() (string, bool) {
	return r.value, r.hasValue
}

// HasValue reports whether a value is present.
func (r ResultPath) HasValue() bool {
	return r.hasValue
}

// PathValue returns the path alone when there is no value, otherwise
// path, separator and value joined together.
func (r ResultPath) PathValue() string {
	if !r.hasValue {
		return r.path
	}
	return r.path + Separator + r.value
}

// String implements fmt.Stringer.
func (r ResultPath) String() string {
	return r.PathValue()
}

// view is the serialized shape of a ResultPath.
type view struct {
	Path  string  `json:"path" yaml:"path"`
	Value *string `json:"value,omitempty" yaml:"value,omitempty"`
}

func (r ResultPath) view() view {
	v := view{Path: r.path}
	if r.hasValue {
		value := r.value
		v.Value = &value
	}
	return v
}

// MarshalJSON implements json.Marshaler.
func (r ResultPath) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.view())
}

// MarshalYAML implements yaml.Marshaler.
func (r ResultPath) MarshalYAML() (interface{}, error) {
	return r.view(), nil
}
