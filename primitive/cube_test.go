package primitive

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/tessera/buffer"
)

func TestCubeCounts(t *testing.T) {
	set, err := Cube(2)
	require.NoError(t, err)
	require.NoError(t, set.Validate())
	assert.Equal(t, 24, set.NumElements())
	idx, ok := set.Indices()
	require.True(t, ok)
	assert.Equal(t, 36, len(idx.Data()))
	assert.Equal(t, 12, set.NumTriangles())
}

func TestCubeNormalsAreAxisAligned(t *testing.T) {
	set, err := Cube(2)
	require.NoError(t, err)
	nrm := set[buffer.AttrNormal].Floats()
	for i := 0; i < len(nrm); i += 3 {
		nonZero := 0
		for j := 0; j < 3; j++ {
			if nrm[i+j] != 0 {
				nonZero++
				assert.Equal(t, float32(1), math32.Abs(nrm[i+j]))
			}
		}
		assert.Equal(t, 1, nonZero, "normal %d has exactly one non-zero component", i/3)
	}
}

func TestCubeCornersAtHalfSize(t *testing.T) {
	set, err := Cube(3)
	require.NoError(t, err)
	pos := set[buffer.AttrPosition].Floats()
	for _, v := range pos {
		assert.Equal(t, float32(1.5), math32.Abs(v))
	}
}

func TestCubeFaceVerticesShareTheFaceNormal(t *testing.T) {
	set, err := Cube(2)
	require.NoError(t, err)
	pos := set[buffer.AttrPosition].Floats()
	nrm := set[buffer.AttrNormal].Floats()
	for f := 0; f < 6; f++ {
		for v := 0; v < 4; v++ {
			i := (f*4 + v) * 3
			// the corner always lies on the side its normal points to
			dot := pos[i]*nrm[i] + pos[i+1]*nrm[i+1] + pos[i+2]*nrm[i+2]
			assert.InDelta(t, 1, dot, 1e-6, "face %d vertex %d", f, v)
		}
	}
}
