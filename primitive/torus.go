package primitive

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/spaghettifunk/tessera/buffer"
	"github.com/spaghettifunk/tessera/core"
)

// Torus generates a full ring of the given revolution radius and tube
// thickness, lying in the XZ plane.
func Torus(radius, thickness float32, radialSubdivisions, bodySubdivisions int) (buffer.Set, error) {
	return TorusSector(radius, thickness, radialSubdivisions, bodySubdivisions, 0, 2*math32.Pi)
}

// TorusSector generates the part of a torus between startAngle and
// endAngle (radians around the Y axis). radialSubdivisions runs around
// the ring, bodySubdivisions around the tube cross-section.
func TorusSector(radius, thickness float32, radialSubdivisions, bodySubdivisions int, startAngle, endAngle float32) (buffer.Set, error) {
	if radialSubdivisions < 3 {
		err := fmt.Errorf("torus radialSubdivisions must be 3 or greater, got %d: %w",
			radialSubdivisions, core.ErrInvalidParameter)
		core.LogError(err.Error())
		return nil, err
	}
	if bodySubdivisions < 3 {
		err := fmt.Errorf("torus bodySubdivisions must be 3 or greater, got %d: %w",
			bodySubdivisions, core.ErrInvalidParameter)
		core.LogError(err.Error())
		return nil, err
	}

	angleRange := endAngle - startAngle
	radialParts := radialSubdivisions + 1
	bodyParts := bodySubdivisions + 1
	numVertices := radialParts * bodyParts
	numTriangles := radialSubdivisions * bodySubdivisions * 2
	positions, normals, texcoords, indices, set := newVertexSet(numVertices, numTriangles)

	var p errPush
	for slice := 0; slice < bodyParts; slice++ {
		v := float32(slice) / float32(bodySubdivisions)
		sliceAngle := v * 2 * math32.Pi
		sliceSin := math32.Sin(sliceAngle)
		ringRadius := radius + sliceSin*thickness
		ny := math32.Cos(sliceAngle)
		y := ny * thickness
		for ring := 0; ring < radialParts; ring++ {
			u := float32(ring) / float32(radialSubdivisions)
			ringAngle := startAngle + u*angleRange
			xSin := math32.Sin(ringAngle)
			zCos := math32.Cos(ringAngle)
			p.f32(positions, xSin*ringRadius, y, zCos*ringRadius)
			p.f32(normals, xSin*sliceSin, ny, zCos*sliceSin)
			p.f32(texcoords, u, 1-v)
		}
	}

	for slice := 0; slice < bodySubdivisions; slice++ {
		for ring := 0; ring < radialSubdivisions; ring++ {
			nextRing := ring + 1
			nextSlice := slice + 1
			p.u16(indices,
				uint16(radialParts*slice+ring),
				uint16(radialParts*nextSlice+ring),
				uint16(radialParts*slice+nextRing))
			p.u16(indices,
				uint16(radialParts*nextSlice+ring),
				uint16(radialParts*nextSlice+nextRing),
				uint16(radialParts*slice+nextRing))
		}
	}
	if p.err != nil {
		return nil, p.err
	}

	return set, nil
}
