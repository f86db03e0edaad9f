package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileMesh(t *testing.T) {
	gm, field, fMax := profileMesh([]float64{0, 5, 10}, []float64{100, -250, 0})

	// Vertex pairs per station: axis point then profile point
	assert.Equal(t, []float32{0, 0, 0, 100, 5, 0, 5, -250, 10, 0, 10, 0}, gm.XY)
	assert.Equal(t, [][3]int64{
		{0, 1, 2}, {1, 3, 2},
		{2, 3, 4}, {3, 5, 4},
	}, gm.TriVerts)
	assert.Equal(t, []float32{100, 100, 250, 250, 0, 0}, field)
	assert.Equal(t, float32(250), fMax)

	_, _, fMax = profileMesh([]float64{0, 5}, []float64{0, 0})
	assert.Equal(t, float32(1), fMax)
}
