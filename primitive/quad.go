package primitive

import (
	"github.com/spaghettifunk/tessera/buffer"
)

// XYQuad generates a single quad in the XY plane facing +Z, size units
// across, with its center shifted by xOffset/yOffset. Useful for
// fullscreen passes and billboards.
func XYQuad(size, xOffset, yOffset float32) (buffer.Set, error) {
	k := size / 2

	positions, normals, texcoords, indices, set := newVertexSet(4, 2)

	var p errPush
	p.f32(positions,
		xOffset-k, yOffset-k, 0,
		xOffset+k, yOffset-k, 0,
		xOffset-k, yOffset+k, 0,
		xOffset+k, yOffset+k, 0)
	p.f32(normals,
		0, 0, 1,
		0, 0, 1,
		0, 0, 1,
		0, 0, 1)
	p.f32(texcoords,
		0, 0,
		1, 0,
		0, 1,
		1, 1)
	p.u16(indices, 0, 1, 2, 2, 1, 3)
	if p.err != nil {
		return nil, p.err
	}

	return set, nil
}
