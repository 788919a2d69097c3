package buffer

import (
	"fmt"
)

// Conventional attribute names. Generators in this module always use
// these keys; the Role tag, not the name, drives reorientation.
const (
	AttrPosition = "position"
	AttrNormal   = "normal"
	AttrTexcoord = "texcoord"
	AttrColor    = "color"
	AttrIndices  = "indices"
)

// Set is a named collection of attribute buffers describing one mesh.
// The optional AttrIndices entry is a uint16 triangle list, 3 values
// per face, and is exempt from geometric transforms.
type Set map[string]Attribute

// Indices returns the index buffer of the set, if present.
func (s Set) Indices() (*Buffer[uint16], bool) {
	attr, ok := s[AttrIndices]
	if !ok {
		return nil, false
	}
	idx, ok := attr.(*Buffer[uint16])
	return idx, ok
}

// NumElements returns the shared vertex count of the non-index
// attributes, or 0 for an empty set.
func (s Set) NumElements() int {
	for name, attr := range s {
		if name == AttrIndices {
			continue
		}
		return attr.NumElements()
	}
	return 0
}

// NumTriangles returns the triangle count: index count over three for
// indexed sets, vertex count over three otherwise.
func (s Set) NumTriangles() int {
	if idx, ok := s.Indices(); ok {
		return idx.NumElements()
	}
	return s.NumElements() / 3
}

// Validate checks the set invariants: every non-index attribute shares
// the same element count, and every index value references an existing
// vertex.
func (s Set) Validate() error {
	n := -1
	for name, attr := range s {
		if name == AttrIndices {
			continue
		}
		if n == -1 {
			n = attr.NumElements()
			continue
		}
		if attr.NumElements() != n {
			return fmt.Errorf("attribute %q has %d elements, want %d", name, attr.NumElements(), n)
		}
	}
	idx, ok := s.Indices()
	if !ok {
		return nil
	}
	for i, v := range idx.Data() {
		if int(v) >= n {
			return fmt.Errorf("index %d at position %d out of range for %d vertices", v, i, n)
		}
	}
	return nil
}
