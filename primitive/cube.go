package primitive

import (
	"github.com/spaghettifunk/tessera/buffer"
)

// Eight corners of a cube centered at the origin with edge length 2,
// combined with per-face corner tables below. Each face emits its own
// four vertices since normals and texture coordinates differ across
// faces sharing a corner.
var cubeCorners = [8][3]float32{
	{-1, -1, -1},
	{+1, -1, -1},
	{-1, +1, -1},
	{+1, +1, -1},
	{-1, -1, +1},
	{+1, -1, +1},
	{-1, +1, +1},
	{+1, +1, +1},
}

var cubeFaceNormals = [6][3]float32{
	{+1, +0, +0},
	{-1, +0, +0},
	{+0, +1, +0},
	{+0, -1, +0},
	{+0, +0, +1},
	{+0, +0, -1},
}

// Corner selections per face, ordered to match cubeFaceNormals.
var cubeFaceIndices = [6][4]int{
	{3, 7, 5, 1}, // +x
	{6, 2, 0, 4}, // -x
	{6, 7, 3, 2}, // +y
	{0, 1, 5, 4}, // -y
	{7, 6, 4, 5}, // +z
	{2, 3, 1, 0}, // -z
}

var cubeUVCoords = [4][2]float32{
	{1, 0},
	{0, 0},
	{0, 1},
	{1, 1},
}

// Cube generates an axis-aligned cube of the given edge length centered
// at the origin: 24 vertices (4 per face) and 12 triangles.
func Cube(size float32) (buffer.Set, error) {
	k := size / 2

	const numVertices = 6 * 4
	const numTriangles = 6 * 2
	positions, normals, texcoords, indices, set := newVertexSet(numVertices, numTriangles)

	var p errPush
	for f := 0; f < 6; f++ {
		faceIndices := cubeFaceIndices[f]
		for v := 0; v < 4; v++ {
			corner := cubeCorners[faceIndices[v]]
			p.f32(positions, corner[0]*k, corner[1]*k, corner[2]*k)
			p.f32(normals, cubeFaceNormals[f][0], cubeFaceNormals[f][1], cubeFaceNormals[f][2])
			p.f32(texcoords, cubeUVCoords[v][0], cubeUVCoords[v][1])
		}
		offset := uint16(4 * f)
		p.u16(indices, offset+0, offset+1, offset+2)
		p.u16(indices, offset+0, offset+2, offset+3)
	}
	if p.err != nil {
		return nil, p.err
	}

	return set, nil
}
