package primitive

import (
	"github.com/spaghettifunk/tessera/buffer"
)

// Hand-authored block letter "F": a column, a top rung and a middle
// rung, 16 rectangles of 2 triangles each, 96 vertices total. Positions
// and texture coordinates are literal per-vertex tables; normals and
// colours repeat per rectangle group and are stored run-length encoded
// as (runLength, x, y, z) tuples.
var (
	fPositions = []float32{
		// column front
		0, 0, 30, 30, 0, 30, 30, 150, 30,
		0, 0, 30, 30, 150, 30, 0, 150, 30,
		// top rung front
		30, 120, 30, 100, 120, 30, 100, 150, 30,
		30, 120, 30, 100, 150, 30, 30, 150, 30,
		// middle rung front
		30, 60, 30, 67, 60, 30, 67, 90, 30,
		30, 60, 30, 67, 90, 30, 30, 90, 30,
		// column back
		30, 0, 0, 0, 0, 0, 0, 150, 0,
		30, 0, 0, 0, 150, 0, 30, 150, 0,
		// top rung back
		100, 120, 0, 30, 120, 0, 30, 150, 0,
		100, 120, 0, 30, 150, 0, 100, 150, 0,
		// middle rung back
		67, 60, 0, 30, 60, 0, 30, 90, 0,
		67, 60, 0, 30, 90, 0, 67, 90, 0,
		// left side
		0, 0, 0, 0, 0, 30, 0, 150, 30,
		0, 0, 0, 0, 150, 30, 0, 150, 0,
		// bottom
		0, 0, 0, 30, 0, 0, 30, 0, 30,
		0, 0, 0, 30, 0, 30, 0, 0, 30,
		// top
		0, 150, 30, 100, 150, 30, 100, 150, 0,
		0, 150, 30, 100, 150, 0, 0, 150, 0,
		// top rung right
		100, 120, 30, 100, 120, 0, 100, 150, 0,
		100, 120, 30, 100, 150, 0, 100, 150, 30,
		// under top rung
		30, 120, 0, 100, 120, 0, 100, 120, 30,
		30, 120, 0, 100, 120, 30, 30, 120, 30,
		// between rungs
		30, 90, 30, 30, 90, 0, 30, 120, 0,
		30, 90, 30, 30, 120, 0, 30, 120, 30,
		// middle rung top
		30, 90, 30, 67, 90, 30, 67, 90, 0,
		30, 90, 30, 67, 90, 0, 30, 90, 0,
		// middle rung right
		67, 60, 30, 67, 60, 0, 67, 90, 0,
		67, 60, 30, 67, 90, 0, 67, 90, 30,
		// middle rung bottom
		30, 60, 0, 67, 60, 0, 67, 60, 30,
		30, 60, 0, 67, 60, 30, 30, 60, 30,
		// below middle rung
		30, 0, 30, 30, 0, 0, 30, 60, 0,
		30, 0, 30, 30, 60, 0, 30, 60, 30,
	}

	fTexcoords = []float32{
		// column front
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
		// top rung front
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
		// middle rung front
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
		// column back
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
		// top rung back
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
		// middle rung back
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
		// left side
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
		// bottom
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
		// top
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
		// top rung right
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
		// under top rung
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
		// between rungs
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
		// middle rung top
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
		// middle rung right
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
		// middle rung bottom
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
		// below middle rung
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}

	fNormalsRLE = []float32{
		18, 0, 0, 1, // front faces
		18, 0, 0, -1, // back faces
		6, -1, 0, 0, // left side
		6, 0, -1, 0, // bottom
		6, 0, 1, 0, // top
		6, 1, 0, 0, // top rung right
		6, 0, -1, 0, // under top rung
		6, 1, 0, 0, // between rungs
		6, 0, 1, 0, // middle rung top
		6, 1, 0, 0, // middle rung right
		6, 0, -1, 0, // middle rung bottom
		6, 1, 0, 0, // below middle rung
	}

	fColorsRLE = []uint8{
		18, 200, 70, 120, // front faces
		18, 80, 70, 200, // back faces
		6, 70, 200, 210, // left side
		6, 90, 130, 110, // bottom
		6, 70, 180, 210, // top
		6, 200, 200, 70, // top rung right
		6, 210, 100, 70, // under top rung
		6, 210, 160, 70, // between rungs
		6, 100, 70, 210, // middle rung top
		6, 76, 210, 100, // middle rung right
		6, 140, 210, 80, // middle rung bottom
		6, 160, 160, 220, // below middle rung
	}
)

// FMesh generates the fixed block letter "F" spanning roughly 100x150x30
// units with per-vertex colours. The mesh is effectively unindexed: the
// index buffer is the identity sequence, one index per vertex in order.
func FMesh() (buffer.Set, error) {
	numVertices := len(fPositions) / 3
	numTriangles := numVertices / 3
	positions, normals, texcoords, indices, set := newVertexSet(numVertices, numTriangles)

	colors := buffer.New[uint8](4, numVertices, buffer.RoleOpaque)
	set[buffer.AttrColor] = colors

	var p errPush
	p.f32(positions, fPositions...)
	p.f32(texcoords, fTexcoords...)
	p.f32(normals, buffer.ExpandRLE(fNormalsRLE)...)
	p.u8(colors, buffer.ExpandRLE(fColorsRLE, 255)...)
	for i := 0; i < numVertices; i++ {
		p.u16(indices, uint16(i))
	}
	if p.err != nil {
		return nil, p.err
	}

	return set, nil
}
