package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultSetAccess(t *testing.T) {
	rs := NewResultSet("unit", []string{"Mz_i", "Mz_j", "Vy_i", "Vy_j"})
	require.NoError(t, rs.SetRow(15, []float64{100, -50, 12.5, -12.5}))
	require.NoError(t, rs.SetRow(24, []float64{-50, -120, -12.5, -37.5}))

	v, err := rs.Force(15, "Mz_i")
	require.NoError(t, err)
	assert.Equal(t, 100., v)
	v, err = rs.Force(15, "Vy_j")
	require.NoError(t, err)
	assert.Equal(t, -12.5, v)

	assert.True(t, rs.HasElement(24))
	assert.False(t, rs.HasElement(99))
	assert.Equal(t, []int{15, 24}, rs.Elements())
}

func TestResultSetUnknownComponent(t *testing.T) {
	rs := NewResultSet("unit", []string{"Mz_i", "Mz_j"})
	require.NoError(t, rs.SetRow(1, []float64{1, 2}))

	// An unknown component must name the valid alternatives, not default
	_, err := rs.Force(1, "Mz_k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Mz_k")
	assert.Contains(t, err.Error(), "Mz_i, Mz_j")

	_, err = rs.Force(42, "Mz_i")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "element 42")
}

func TestResultSetRowLength(t *testing.T) {
	rs := NewResultSet("unit", StandardComponents)
	err := rs.SetRow(7, []float64{1, 2, 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "12 components")
}

func TestEndValues(t *testing.T) {
	rs := NewResultSet("unit", StandardComponents)
	row := make([]float64, len(StandardComponents))
	row[5], row[11] = 100, -50 // Mz_i, Mz_j
	row[1], row[7] = 30, -30   // Vy_i, Vy_j
	require.NoError(t, rs.SetRow(3, row))

	mi, mj, err := rs.EndValues(3, BMD)
	require.NoError(t, err)
	assert.Equal(t, 100., mi)
	assert.Equal(t, -50., mj)

	vi, vj, err := rs.EndValues(3, SFD)
	require.NoError(t, err)
	assert.Equal(t, 30., vi)
	assert.Equal(t, -30., vj)
}

func TestResultTypeNames(t *testing.T) {
	assert.Equal(t, BMD, NewResultType("BMD"))
	assert.Equal(t, BMD, NewResultType("moment"))
	assert.Equal(t, SFD, NewResultType("sfd"))
	assert.Equal(t, SFD, NewResultType("Shear"))
	assert.Panics(t, func() { NewResultType("torsion") })

	compI, compJ := BMD.EndComponents()
	assert.Equal(t, "Mz_i", compI)
	assert.Equal(t, "Mz_j", compJ)
	compI, compJ = SFD.EndComponents()
	assert.Equal(t, "Vy_i", compI)
	assert.Equal(t, "Vy_j", compJ)
	assert.Equal(t, "kN·m", BMD.Unit())
	assert.Equal(t, "kN", SFD.Unit())
}

func TestTables(t *testing.T) {
	nt := NodeTable{
		3:  {X: 0, Y: 0, Z: 0},
		13: {X: 5, Y: 0, Z: 0},
		18: {X: 10, Y: 1, Z: -2.5},
	}
	mt := MemberTable{
		24: {NodeI: 13, NodeJ: 18},
		15: {NodeI: 3, NodeJ: 13},
	}
	assert.Equal(t, []int{15, 24}, mt.IDs())
	assert.Equal(t, []int{3, 13, 18}, nt.IDs())

	min, max := nt.Bounds()
	assert.Equal(t, Coord{X: 0, Y: 0, Z: -2.5}, min)
	assert.Equal(t, Coord{X: 10, Y: 1, Z: 0}, max)

	ci, cj, ok := mt.Ends(nt, 24)
	require.True(t, ok)
	assert.Equal(t, 5., ci.X)
	assert.Equal(t, 10., cj.X)
	_, _, ok = mt.Ends(nt, 99)
	assert.False(t, ok)
}
