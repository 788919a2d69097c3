package buffer

import (
	"fmt"

	"github.com/spaghettifunk/tessera/core"
)

// Scalar is the set of element types an attribute buffer can carry.
// Vertex data is float32, triangle indices are uint16 and colours are
// uint8 by convention.
type Scalar interface {
	~float32 | ~uint8 | ~uint16 | ~uint32
}

// Role tells a reorientation pass how the elements of an attribute
// behave under a 4x4 transform. It is attached at creation time so
// dispatch never depends on the attribute's name.
type Role int

const (
	// RoleOpaque marks data a transform must leave alone (texcoords,
	// colours, indices).
	RoleOpaque Role = iota
	// RolePosition marks points transformed with translation applied.
	RolePosition
	// RoleDirection marks vectors transformed without translation
	// (tangents, binormals).
	RoleDirection
	// RoleNormal marks surface normals, transformed by the transpose of
	// the matrix inverse.
	RoleNormal
)

func (r Role) String() string {
	switch r {
	case RolePosition:
		return "position"
	case RoleDirection:
		return "direction"
	case RoleNormal:
		return "normal"
	default:
		return "opaque"
	}
}

// Attribute is the element-type-erased view of a buffer held in a Set.
type Attribute interface {
	// NumComponents returns the number of scalars per element.
	NumComponents() int
	// NumElements returns the declared element capacity.
	NumElements() int
	// Role returns the reorientation role attached at creation.
	Role() Role
	// Gather builds a new buffer of the same element type, component
	// count and role, holding one source element per index, in index
	// order.
	Gather(indices []uint16) Attribute
	// Floats exposes the underlying storage when the buffer is
	// float32-backed, else nil.
	Floats() []float32
}

// Buffer is a fixed-capacity contiguous attribute array with an append
// cursor. Capacity is declared at construction and checked on every
// push; the cursor can be reset to replay writes.
type Buffer[T Scalar] struct {
	data          []T
	numComponents int
	cursor        int
	role          Role
}

// New allocates a buffer of exactly numComponents*numElements scalar
// slots with the given reorientation role.
func New[T Scalar](numComponents, numElements int, role Role) *Buffer[T] {
	return &Buffer[T]{
		data:          make([]T, numComponents*numElements),
		numComponents: numComponents,
		role:          role,
	}
}

// Push appends the given scalars at the cursor. It fails without
// writing anything if the values would exceed the declared capacity.
func (b *Buffer[T]) Push(values ...T) error {
	return b.PushSlice(values)
}

// PushSlice appends a flattened group of scalars at the cursor with the
// same capacity check as Push.
func (b *Buffer[T]) PushSlice(values []T) error {
	if b.cursor+len(values) > len(b.data) {
		err := fmt.Errorf("push of %d values at cursor %d exceeds capacity %d: %w",
			len(values), b.cursor, len(b.data), core.ErrBufferFull)
		core.LogError(err.Error())
		return err
	}
	copy(b.data[b.cursor:], values)
	b.cursor += len(values)
	return nil
}

// Reset repositions the append cursor at the given scalar offset for a
// rewrite pass. Existing contents are kept.
func (b *Buffer[T]) Reset(offset int) {
	if offset < 0 {
		offset = 0
	}
	b.cursor = offset
}

// Len returns the number of scalars pushed so far, which is also the
// current append position.
func (b *Buffer[T]) Len() int {
	return b.cursor
}

// Cap returns the total scalar capacity declared at creation.
func (b *Buffer[T]) Cap() int {
	return len(b.data)
}

// NumComponents returns the number of scalars per element.
func (b *Buffer[T]) NumComponents() int {
	return b.numComponents
}

// NumElements returns the declared element capacity.
func (b *Buffer[T]) NumElements() int {
	return len(b.data) / b.numComponents
}

// Role returns the reorientation role attached at creation.
func (b *Buffer[T]) Role() Role {
	return b.role
}

// Data returns the underlying storage. The slice is owned by the
// buffer; callers that transform in place write through it directly.
func (b *Buffer[T]) Data() []T {
	return b.data
}

// Element returns the scalars of the i-th element.
func (b *Buffer[T]) Element(i int) []T {
	off := i * b.numComponents
	return b.data[off : off+b.numComponents]
}

// Gather implements Attribute.
func (b *Buffer[T]) Gather(indices []uint16) Attribute {
	out := New[T](b.numComponents, len(indices), b.role)
	nc := b.numComponents
	for i, idx := range indices {
		copy(out.data[i*nc:(i+1)*nc], b.data[int(idx)*nc:(int(idx)+1)*nc])
	}
	out.cursor = len(out.data)
	return out
}

// Floats implements Attribute.
func (b *Buffer[T]) Floats() []float32 {
	if d, ok := any(b.data).([]float32); ok {
		return d
	}
	return nil
}
