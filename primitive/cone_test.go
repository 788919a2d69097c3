package primitive

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/tessera/buffer"
	"github.com/spaghettifunk/tessera/core"
)

func TestCappedCylinder(t *testing.T) {
	const radial = 8
	const vertical = 1
	set, err := TruncatedCone(1, 1, 2, radial, vertical, true, true)
	require.NoError(t, err)
	require.NoError(t, set.Validate())

	// both caps add two rings worth of triangulated bands each
	idx, ok := set.Indices()
	require.True(t, ok)
	assert.Equal(t, radial*(vertical+4)*2*3, len(idx.Data()))

	// rings from bottom to top: cap center, bottom rim, body bottom,
	// body top, top rim, cap center
	wantRadius := []float32{0, 1, 1, 1, 1, 0}
	pos := set[buffer.AttrPosition].Floats()
	vertsAroundEdge := radial + 1
	for ring, want := range wantRadius {
		for ii := 0; ii < vertsAroundEdge; ii++ {
			i := (ring*vertsAroundEdge + ii) * 3
			r := math32.Sqrt(pos[i]*pos[i] + pos[i+2]*pos[i+2])
			assert.InDelta(t, want, r, 1e-5, "ring %d vertex %d", ring, ii)
		}
	}

	// the shape is centered: extreme rings sit at +-height/2
	assert.InDelta(t, -1, pos[1], 1e-6)
	assert.InDelta(t, 1, pos[len(pos)-2], 1e-6)
}

func TestCapNormalsAreVertical(t *testing.T) {
	set, err := TruncatedCone(1, 1, 2, 6, 1, true, true)
	require.NoError(t, err)
	nrm := set[buffer.AttrNormal].Floats()
	vertsAroundEdge := 7
	numRings := 6
	for ii := 0; ii < vertsAroundEdge; ii++ {
		bottom := ii * 3
		assert.Equal(t, []float32{0, -1, 0}, nrm[bottom:bottom+3])
		top := ((numRings-1)*vertsAroundEdge + ii) * 3
		assert.Equal(t, []float32{0, 1, 0}, nrm[top:top+3])
	}
}

func TestUncappedConeSlantNormals(t *testing.T) {
	const bottomRadius, topRadius, height = 1.0, 0.5, 2.0
	set, err := TruncatedCone(bottomRadius, topRadius, height, 8, 2, false, false)
	require.NoError(t, err)
	require.NoError(t, set.Validate())
	assert.Equal(t, 3*9, set.NumElements())

	slant := math32.Atan2(bottomRadius-topRadius, height)
	nrm := set[buffer.AttrNormal].Floats()
	for i := 0; i < len(nrm); i += 3 {
		assert.InDelta(t, math32.Sin(slant), nrm[i+1], 1e-5)
		length := math32.Sqrt(nrm[i]*nrm[i] + nrm[i+1]*nrm[i+1] + nrm[i+2]*nrm[i+2])
		assert.InDelta(t, 1, length, 1e-5)
	}
}

func TestFullConeApex(t *testing.T) {
	set, err := TruncatedCone(1, 0, 2, 6, 1, false, false)
	require.NoError(t, err)
	pos := set[buffer.AttrPosition].Floats()
	nrm := set[buffer.AttrNormal].Floats()
	// last ring degenerates to the apex with zeroed normals
	last := len(pos) - 3*7
	for i := last; i < len(pos); i += 3 {
		assert.InDelta(t, 0, pos[i], 1e-6)
		assert.InDelta(t, 1, pos[i+1], 1e-6)
		assert.InDelta(t, 0, pos[i+2], 1e-6)
		assert.Equal(t, []float32{0, 0, 0}, nrm[i:i+3])
	}
}

func TestConeValidation(t *testing.T) {
	_, err := TruncatedCone(1, 1, 1, 2, 1, true, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidParameter))

	_, err = TruncatedCone(1, 1, 1, 8, 0, true, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidParameter))
}

func TestCylinderDelegates(t *testing.T) {
	set, err := Cylinder(1, 2, 8, 1, true, true)
	require.NoError(t, err)
	direct, err := TruncatedCone(1, 1, 2, 8, 1, true, true)
	require.NoError(t, err)
	assert.Equal(t, direct[buffer.AttrPosition].Floats(), set[buffer.AttrPosition].Floats())
}
