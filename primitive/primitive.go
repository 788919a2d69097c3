// Package primitive generates triangulated surfaces as buffer sets:
// plane, sphere, cube, truncated cone (cylinder), torus, disc, XY quad
// and a fixed hand-authored "F" mesh. Generators are pure functions of
// their shape parameters; buffer sizes are computed up front and filled
// with sequential pushes, so a returned set is always complete.
package primitive

import (
	"github.com/spaghettifunk/tessera/buffer"
)

// newVertexSet allocates the position/normal/texcoord/indices buffers
// every generator shares, pre-sized for the given counts.
func newVertexSet(numVertices, numTriangles int) (pos, nrm, tex *buffer.Buffer[float32], idx *buffer.Buffer[uint16], s buffer.Set) {
	pos = buffer.New[float32](3, numVertices, buffer.RolePosition)
	nrm = buffer.New[float32](3, numVertices, buffer.RoleNormal)
	tex = buffer.New[float32](2, numVertices, buffer.RoleOpaque)
	idx = buffer.New[uint16](3, numTriangles, buffer.RoleOpaque)
	s = buffer.Set{
		buffer.AttrPosition: pos,
		buffer.AttrNormal:   nrm,
		buffer.AttrTexcoord: tex,
		buffer.AttrIndices:  idx,
	}
	return pos, nrm, tex, idx, s
}

// errPush collects the first push failure so generation loops stay
// readable. Buffer sizes are precomputed from the shape parameters, so
// a recorded error indicates a sizing bug, not a caller mistake.
type errPush struct {
	err error
}

func (p *errPush) f32(b *buffer.Buffer[float32], values ...float32) {
	if p.err == nil {
		p.err = b.PushSlice(values)
	}
}

func (p *errPush) u16(b *buffer.Buffer[uint16], values ...uint16) {
	if p.err == nil {
		p.err = b.PushSlice(values)
	}
}

func (p *errPush) u8(b *buffer.Buffer[uint8], values ...uint8) {
	if p.err == nil {
		p.err = b.PushSlice(values)
	}
}
