package transform

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/spaghettifunk/tessera/buffer"
	"github.com/spaghettifunk/tessera/core"
)

// FlattenNormals replaces the normals of every consecutive vertex
// triple with the normalized sum of the three, producing per-triangle
// flat shading. The input must be deindexed; with shared vertices a
// triangle cannot own its normals. Mutates in place and returns the
// same set.
func FlattenNormals(s buffer.Set) (buffer.Set, error) {
	if _, ok := s.Indices(); ok {
		err := fmt.Errorf("flatten normals: %w", core.ErrIndexedInput)
		core.LogError(err.Error())
		return nil, err
	}
	for _, attr := range s {
		if attr.Role() != buffer.RoleNormal {
			continue
		}
		normals := attr.Floats()
		if normals == nil {
			continue
		}
		for i := 0; i+9 <= len(normals); i += 9 {
			nx := normals[i+0] + normals[i+3] + normals[i+6]
			ny := normals[i+1] + normals[i+4] + normals[i+7]
			nz := normals[i+2] + normals[i+5] + normals[i+8]
			length := math32.Sqrt(nx*nx + ny*ny + nz*nz)
			if length == 0 {
				continue
			}
			nx /= length
			ny /= length
			nz /= length
			for j := 0; j < 9; j += 3 {
				normals[i+j+0] = nx
				normals[i+j+1] = ny
				normals[i+j+2] = nz
			}
		}
	}
	return s, nil
}
