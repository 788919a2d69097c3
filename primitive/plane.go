package primitive

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/tessera/buffer"
	"github.com/spaghettifunk/tessera/core"
	"github.com/spaghettifunk/tessera/transform"
)

// Plane generates a subdivided XZ-plane centered at the origin with
// upward normals and [0,1] texture coordinates per axis. Each grid quad
// becomes two triangles with consistent winding. The finished set is
// reoriented by the given matrix before returning; pass mgl32.Ident4()
// to keep the plane where it is.
//
// Zero dimensions and non-positive subdivision counts are defaulted to
// one with a warning; negative dimensions produce mirrored but valid
// geometry.
func Plane(width, depth float32, subdivisionsWidth, subdivisionsDepth int, matrix mgl32.Mat4) (buffer.Set, error) {
	if width == 0 {
		core.LogWarn("plane width must be nonzero, defaulting to one")
		width = 1.0
	}
	if depth == 0 {
		core.LogWarn("plane depth must be nonzero, defaulting to one")
		depth = 1.0
	}
	if subdivisionsWidth < 1 {
		core.LogWarn("plane subdivisionsWidth must be positive, defaulting to one")
		subdivisionsWidth = 1
	}
	if subdivisionsDepth < 1 {
		core.LogWarn("plane subdivisionsDepth must be positive, defaulting to one")
		subdivisionsDepth = 1
	}

	numVertsAcross := subdivisionsWidth + 1
	numVertices := numVertsAcross * (subdivisionsDepth + 1)
	numTriangles := subdivisionsWidth * subdivisionsDepth * 2
	positions, normals, texcoords, indices, set := newVertexSet(numVertices, numTriangles)

	var p errPush
	for z := 0; z <= subdivisionsDepth; z++ {
		for x := 0; x <= subdivisionsWidth; x++ {
			u := float32(x) / float32(subdivisionsWidth)
			v := float32(z) / float32(subdivisionsDepth)
			p.f32(positions, width*u-width*0.5, 0, depth*v-depth*0.5)
			p.f32(normals, 0, 1, 0)
			p.f32(texcoords, u, v)
		}
	}

	for z := 0; z < subdivisionsDepth; z++ {
		for x := 0; x < subdivisionsWidth; x++ {
			p.u16(indices,
				uint16((z+0)*numVertsAcross+x),
				uint16((z+1)*numVertsAcross+x),
				uint16((z+0)*numVertsAcross+x+1))
			p.u16(indices,
				uint16((z+1)*numVertsAcross+x),
				uint16((z+1)*numVertsAcross+x+1),
				uint16((z+0)*numVertsAcross+x+1))
		}
	}
	if p.err != nil {
		return nil, p.err
	}

	return transform.Reorient(set, matrix), nil
}
