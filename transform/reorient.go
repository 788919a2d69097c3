package transform

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/tessera/buffer"
)

// ReorientPositions applies a point transform (translation included) to
// every 3-component group of the flat array, in place.
func ReorientPositions(a []float32, m mgl32.Mat4) {
	for i := 0; i+3 <= len(a); i += 3 {
		v := mgl32.TransformCoordinate(mgl32.Vec3{a[i], a[i+1], a[i+2]}, m)
		a[i], a[i+1], a[i+2] = v.X(), v.Y(), v.Z()
	}
}

// ReorientDirections applies a direction transform (translation
// ignored) to every 3-component group of the flat array, in place.
func ReorientDirections(a []float32, m mgl32.Mat4) {
	for i := 0; i+3 <= len(a); i += 3 {
		v := mgl32.TransformNormal(mgl32.Vec3{a[i], a[i+1], a[i+2]}, m)
		a[i], a[i+1], a[i+2] = v.X(), v.Y(), v.Z()
	}
}

// ReorientNormals applies the transpose of the matrix inverse to every
// 3-component group, the standard correction that keeps normals
// perpendicular under non-uniform scale. The corrected matrix is
// computed once and reused for every vertex.
func ReorientNormals(a []float32, m mgl32.Mat4) {
	nm := m.Inv().Transpose()
	for i := 0; i+3 <= len(a); i += 3 {
		v := mgl32.TransformNormal(mgl32.Vec3{a[i], a[i+1], a[i+2]}, nm)
		a[i], a[i+1], a[i+2] = v.X(), v.Y(), v.Z()
	}
}

// Reorient transforms every float attribute of the set according to its
// role tag: positions with the point transform, directions without
// translation, normals with the inverse-transpose correction. Opaque
// attributes and indices are left untouched. Mutates in place and
// returns the same set.
func Reorient(s buffer.Set, m mgl32.Mat4) buffer.Set {
	for _, attr := range s {
		data := attr.Floats()
		if data == nil {
			continue
		}
		switch attr.Role() {
		case buffer.RolePosition:
			ReorientPositions(data, m)
		case buffer.RoleDirection:
			ReorientDirections(data, m)
		case buffer.RoleNormal:
			ReorientNormals(data, m)
		}
	}
	return s
}
