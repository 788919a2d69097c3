package primitive

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/tessera/buffer"
)

func TestFMeshCounts(t *testing.T) {
	set, err := FMesh()
	require.NoError(t, err)
	require.NoError(t, set.Validate())
	assert.Equal(t, 96, set.NumElements())
	assert.Equal(t, 32, set.NumTriangles())
}

func TestFMeshIdentityIndices(t *testing.T) {
	set, err := FMesh()
	require.NoError(t, err)
	idx, ok := set.Indices()
	require.True(t, ok)
	for i, v := range idx.Data() {
		assert.Equal(t, uint16(i), v)
	}
}

func TestFMeshExpandedNormals(t *testing.T) {
	set, err := FMesh()
	require.NoError(t, err)
	nrm := set[buffer.AttrNormal].Floats()
	require.Equal(t, 96*3, len(nrm))
	for i := 0; i < len(nrm); i += 3 {
		nonZero := 0
		for j := 0; j < 3; j++ {
			if nrm[i+j] != 0 {
				nonZero++
				assert.Equal(t, float32(1), math32.Abs(nrm[i+j]))
			}
		}
		assert.Equal(t, 1, nonZero, "normal %d", i/3)
	}
	// the first 18 vertices are the front faces
	for i := 0; i < 18*3; i += 3 {
		assert.Equal(t, []float32{0, 0, 1}, nrm[i:i+3])
	}
}

func TestFMeshExpandedColors(t *testing.T) {
	set, err := FMesh()
	require.NoError(t, err)
	colors, ok := set[buffer.AttrColor].(*buffer.Buffer[uint8])
	require.True(t, ok)
	assert.Equal(t, 4, colors.NumComponents())
	assert.Equal(t, 96, colors.NumElements())
	data := colors.Data()
	for i := 3; i < len(data); i += 4 {
		assert.Equal(t, uint8(255), data[i], "alpha padding")
	}
	// front face colour repeats for the first 18 vertices
	for i := 0; i < 18*4; i += 4 {
		assert.Equal(t, []uint8{200, 70, 120, 255}, data[i:i+4])
	}
}

func TestFMeshTrianglesFaceTheirNormals(t *testing.T) {
	set, err := FMesh()
	require.NoError(t, err)
	pos := set[buffer.AttrPosition].Floats()
	nrm := set[buffer.AttrNormal].Floats()
	for tri := 0; tri < 32; tri++ {
		i := tri * 9
		e1x, e1y, e1z := pos[i+3]-pos[i], pos[i+4]-pos[i+1], pos[i+5]-pos[i+2]
		e2x, e2y, e2z := pos[i+6]-pos[i], pos[i+7]-pos[i+1], pos[i+8]-pos[i+2]
		cx := e1y*e2z - e1z*e2y
		cy := e1z*e2x - e1x*e2z
		cz := e1x*e2y - e1y*e2x
		dot := cx*nrm[i] + cy*nrm[i+1] + cz*nrm[i+2]
		assert.Greater(t, dot, float32(0), "triangle %d winds against its normal", tri)
	}
}
