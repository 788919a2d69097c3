package primitive

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/spaghettifunk/tessera/buffer"
	"github.com/spaghettifunk/tessera/core"
)

// Disc generates a flat disc in the XZ plane with upward normals.
func Disc(radius float32, divisions int) (buffer.Set, error) {
	return DiscSector(radius, divisions, 1, 0, 1)
}

// DiscSector generates a flat disc or annulus in the XZ plane.
// divisions runs around the circumference, stacks from innerRadius out
// to radius. stackPower biases where the stack rings sit: 1 spaces them
// evenly, values below 1 pack them toward the rim.
func DiscSector(radius float32, divisions, stacks int, innerRadius, stackPower float32) (buffer.Set, error) {
	if divisions < 3 {
		err := fmt.Errorf("disc divisions must be 3 or greater, got %d: %w",
			divisions, core.ErrInvalidParameter)
		core.LogError(err.Error())
		return nil, err
	}
	if stacks < 1 {
		err := fmt.Errorf("disc stacks must be positive, got %d: %w",
			stacks, core.ErrInvalidParameter)
		core.LogError(err.Error())
		return nil, err
	}

	pointsPerStack := divisions + 1
	numVertices := pointsPerStack * (stacks + 1)
	numTriangles := divisions * stacks * 2
	positions, normals, texcoords, indices, set := newVertexSet(numVertices, numTriangles)

	radiusSpan := radius - innerRadius

	var p errPush
	for stack := 0; stack <= stacks; stack++ {
		stackRadius := innerRadius + radiusSpan*math32.Pow(float32(stack)/float32(stacks), stackPower)
		firstIndex := stack * pointsPerStack
		for i := 0; i <= divisions; i++ {
			theta := 2 * math32.Pi * float32(i) / float32(divisions)
			x := stackRadius * math32.Cos(theta)
			z := stackRadius * math32.Sin(theta)
			p.f32(positions, x, 0, z)
			p.f32(normals, 0, 1, 0)
			p.f32(texcoords, 1-float32(i)/float32(divisions), float32(stack)/float32(stacks))

			if stack > 0 && i != divisions {
				// a, b, c, d form a quad between this stack ring and
				// the previous one
				a := firstIndex + i + 1
				b := firstIndex + i
				c := firstIndex + i - pointsPerStack
				d := firstIndex + i + 1 - pointsPerStack
				p.u16(indices, uint16(a), uint16(b), uint16(c))
				p.u16(indices, uint16(a), uint16(c), uint16(d))
			}
		}
	}
	if p.err != nil {
		return nil, p.err
	}

	return set, nil
}
