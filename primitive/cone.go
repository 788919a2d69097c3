package primitive

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/spaghettifunk/tessera/buffer"
	"github.com/spaghettifunk/tessera/core"
)

// TruncatedCone generates a cone with the tip cut off, centered at the
// origin with its axis along Y. With equal radii it is a cylinder; with
// a zero top radius, a full cone.
//
// Rings of vertices run from bottom to top, the ring radius
// interpolating linearly between bottomRadius and topRadius. Side
// normals lean by the constant slant angle
// atan2(bottomRadius-topRadius, height). Each enabled cap adds two
// extra rings with purely vertical normals, one at the rim radius and
// one forced to zero radius, so the uniform grid triangulation below
// covers caps and body alike.
func TruncatedCone(bottomRadius, topRadius, height float32, radialSubdivisions, verticalSubdivisions int, topCap, bottomCap bool) (buffer.Set, error) {
	if radialSubdivisions < 3 {
		err := fmt.Errorf("cone radialSubdivisions must be 3 or greater, got %d: %w",
			radialSubdivisions, core.ErrInvalidParameter)
		core.LogError(err.Error())
		return nil, err
	}
	if verticalSubdivisions < 1 {
		err := fmt.Errorf("cone verticalSubdivisions must be positive, got %d: %w",
			verticalSubdivisions, core.ErrInvalidParameter)
		core.LogError(err.Error())
		return nil, err
	}

	extra := 0
	start := 0
	end := verticalSubdivisions
	if bottomCap {
		extra += 2
		start = -2
	}
	if topCap {
		extra += 2
		end += 2
	}

	vertsAroundEdge := radialSubdivisions + 1
	numVertices := (verticalSubdivisions + extra + 1) * vertsAroundEdge
	numTriangles := radialSubdivisions * (verticalSubdivisions + extra) * 2
	positions, normals, texcoords, indices, set := newVertexSet(numVertices, numTriangles)

	slant := math32.Atan2(bottomRadius-topRadius, height)
	cosSlant := math32.Cos(slant)
	sinSlant := math32.Sin(slant)

	var p errPush
	for yy := start; yy <= end; yy++ {
		v := float32(yy) / float32(verticalSubdivisions)
		y := height * v
		var ringRadius float32
		switch {
		case yy < 0:
			y = 0
			v = 0
			ringRadius = bottomRadius
		case yy > verticalSubdivisions:
			y = height
			v = 1
			ringRadius = topRadius
		default:
			ringRadius = bottomRadius + (topRadius-bottomRadius)*v
		}
		if yy == -2 || yy == verticalSubdivisions+2 {
			// cap center ring
			ringRadius = 0
			v = 0
		}
		y -= height / 2
		for ii := 0; ii < vertsAroundEdge; ii++ {
			angle := float32(ii) * 2 * math32.Pi / float32(radialSubdivisions)
			sin := math32.Sin(angle)
			cos := math32.Cos(angle)
			p.f32(positions, sin*ringRadius, y, cos*ringRadius)
			switch {
			case yy < 0:
				p.f32(normals, 0, -1, 0)
			case yy > verticalSubdivisions:
				p.f32(normals, 0, 1, 0)
			case ringRadius == 0:
				// degenerate apex of a full cone
				p.f32(normals, 0, 0, 0)
			default:
				p.f32(normals, sin*cosSlant, sinSlant, cos*cosSlant)
			}
			p.f32(texcoords, float32(ii)/float32(radialSubdivisions), 1-v)
		}
	}

	for yy := 0; yy < verticalSubdivisions+extra; yy++ {
		for ii := 0; ii < radialSubdivisions; ii++ {
			p.u16(indices,
				uint16(vertsAroundEdge*(yy+0)+ii),
				uint16(vertsAroundEdge*(yy+0)+ii+1),
				uint16(vertsAroundEdge*(yy+1)+ii+1))
			p.u16(indices,
				uint16(vertsAroundEdge*(yy+0)+ii),
				uint16(vertsAroundEdge*(yy+1)+ii+1),
				uint16(vertsAroundEdge*(yy+1)+ii))
		}
	}
	if p.err != nil {
		return nil, p.err
	}

	return set, nil
}

// Cylinder generates a capped or open cylinder as a truncated cone with
// equal top and bottom radii.
func Cylinder(radius, height float32, radialSubdivisions, verticalSubdivisions int, topCap, bottomCap bool) (buffer.Set, error) {
	return TruncatedCone(radius, radius, height, radialSubdivisions, verticalSubdivisions, topCap, bottomCap)
}
