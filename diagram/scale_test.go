package diagram

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bridgediag/bridgediag/model"
)

func TestCollectExtrema(t *testing.T) {
	var (
		members = model.MemberTable{
			1: {NodeI: 1, NodeJ: 2},
			2: {NodeI: 2, NodeJ: 3},
			3: {NodeI: 3, NodeJ: 4},
		}
		rs = model.NewResultSet("test", forceComponents)
	)
	setForces(t, rs, 1, 30, 0, -10, 120)
	setForces(t, rs, 2, -10, 120, 10, -240)
	// element 3 has no force record and must not contribute

	ex := CollectExtrema(members, rs, model.BMD)
	assert.Equal(t, 4, ex.Count)
	assert.Equal(t, 0.0, ex.MinAbs)
	assert.Equal(t, 240.0, ex.MaxAbs)

	ex = CollectExtrema(members, rs, model.SFD)
	assert.Equal(t, 4, ex.Count)
	assert.Equal(t, 10.0, ex.MinAbs)
	assert.Equal(t, 30.0, ex.MaxAbs)
}

func TestScale(t *testing.T) {
	p := DefaultParams()
	{ // Largest ribbon spans the target
		ex := Extrema{MinAbs: 0, MaxAbs: 240, Count: 4}
		assert.InDelta(t, p.TargetSpan, ex.Scale(model.BMD, p)*ex.MaxAbs, 1e-12)
	}
	{ // Shear picks up the visibility boost
		ex := Extrema{MinAbs: 10, MaxAbs: 30, Count: 4}
		assert.InDelta(t, p.TargetSpan*p.ShearBoost, ex.Scale(model.SFD, p)*ex.MaxAbs, 1e-12)
	}
	{ // No values and all zero values both fall back to identity
		assert.Equal(t, 1.0, Extrema{}.Scale(model.BMD, p))
		assert.Equal(t, 1.0, Extrema{Count: 8}.Scale(model.BMD, p))
		assert.Equal(t, 1.0, Extrema{Count: 8}.Scale(model.SFD, p))
	}
}
