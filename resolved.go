package ggstyle

import (
	"maps"
	"slices"
)

// Resolved is a flat property → value mapping ready to be applied to a
// canvas. It is immutable and handled by pointer: an Applicator skips a
// Resolved that is pointer-identical to the one it applied last.
type Resolved struct {
	props map[string]Value
}

// NewResolved returns a Resolved holding a copy of props.
func NewResolved(props map[string]Value) *Resolved {
	return &Resolved{props: maps.Clone(props)}
}

// Get returns the value of name, or an undefined Value when it is absent.
// Get is safe on a nil *Resolved.
func (r *Resolved) Get(name string) Value {
	if r == nil {
		return Value{}
	}
	return r.props[name]
}

// Has reports whether name is set.
func (r *Resolved) Has(name string) bool {
	if r == nil {
		return false
	}
	_, ok := r.props[name]
	return ok
}

// Len returns the number of properties, including non-canvas keys.
func (r *Resolved) Len() int {
	if r == nil {
		return 0
	}
	return len(r.props)
}

// Keys returns the property names in sorted order.
func (r *Resolved) Keys() []string {
	if r == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(r.props))
}

// Map returns a copy of the properties.
func (r *Resolved) Map() map[string]Value {
	if r == nil {
		return map[string]Value{}
	}
	return maps.Clone(r.props)
}
