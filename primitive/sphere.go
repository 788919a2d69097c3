package primitive

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/spaghettifunk/tessera/buffer"
	"github.com/spaghettifunk/tessera/core"
)

// Sphere generates a full UV sphere of the given radius.
// subdivisionsAxis runs around the equator, subdivisionsHeight from
// pole to pole.
func Sphere(radius float32, subdivisionsAxis, subdivisionsHeight int) (buffer.Set, error) {
	return SphereSector(radius, subdivisionsAxis, subdivisionsHeight, 0, math32.Pi, 0, 2*math32.Pi)
}

// SphereSector generates the part of a sphere covered by the given
// latitude range (radians from the +Y pole, 0..Pi for a full sphere)
// and longitude range (radians around Y, 0..2*Pi for a full sphere).
//
// Vertices lie on the spherical parametrization theta=longRange*u,
// phi=latRange*v over a [0,1] grid; the normal is the unit position
// direction and the texture coordinate is (1-u, v). Triangulation
// follows the same row-major grid as Plane.
func SphereSector(radius float32, subdivisionsAxis, subdivisionsHeight int, startLatitude, endLatitude, startLongitude, endLongitude float32) (buffer.Set, error) {
	if subdivisionsAxis < 1 || subdivisionsHeight < 1 {
		err := fmt.Errorf("sphere subdivisions axis/height must be positive, got %d/%d: %w",
			subdivisionsAxis, subdivisionsHeight, core.ErrInvalidParameter)
		core.LogError(err.Error())
		return nil, err
	}

	latRange := endLatitude - startLatitude
	longRange := endLongitude - startLongitude

	numVertsAround := subdivisionsAxis + 1
	numVertices := numVertsAround * (subdivisionsHeight + 1)
	numTriangles := subdivisionsAxis * subdivisionsHeight * 2
	positions, normals, texcoords, indices, set := newVertexSet(numVertices, numTriangles)

	var p errPush
	for y := 0; y <= subdivisionsHeight; y++ {
		for x := 0; x <= subdivisionsAxis; x++ {
			u := float32(x) / float32(subdivisionsAxis)
			v := float32(y) / float32(subdivisionsHeight)
			theta := longRange*u + startLongitude
			phi := latRange*v + startLatitude
			sinTheta := math32.Sin(theta)
			cosTheta := math32.Cos(theta)
			sinPhi := math32.Sin(phi)
			cosPhi := math32.Cos(phi)
			ux := cosTheta * sinPhi
			uy := cosPhi
			uz := sinTheta * sinPhi
			p.f32(positions, radius*ux, radius*uy, radius*uz)
			p.f32(normals, ux, uy, uz)
			p.f32(texcoords, 1-u, v)
		}
	}

	for x := 0; x < subdivisionsAxis; x++ {
		for y := 0; y < subdivisionsHeight; y++ {
			p.u16(indices,
				uint16((y+0)*numVertsAround+x),
				uint16((y+0)*numVertsAround+x+1),
				uint16((y+1)*numVertsAround+x))
			p.u16(indices,
				uint16((y+1)*numVertsAround+x),
				uint16((y+0)*numVertsAround+x+1),
				uint16((y+1)*numVertsAround+x+1))
		}
	}
	if p.err != nil {
		return nil, p.err
	}

	return set, nil
}
