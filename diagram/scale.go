package diagram

import (
	"math"

	"github.com/bridgediag/bridgediag/model"
)

// Extrema is the absolute end value range for one result type over the
// whole model. The displacement of every element depends on the global
// maximum, so this runs as a dedicated pass before any geometry is built.
type Extrema struct {
	MinAbs, MaxAbs float64
	Count          int
}

// CollectExtrema scans both end values of every element in the member
// table. Elements without a force record simply do not contribute.
func CollectExtrema(members model.MemberTable, rs *model.ResultSet, rt model.ResultType) (ex Extrema) {
	for _, eid := range members.IDs() {
		vi, vj, err := rs.EndValues(eid, rt)
		if err != nil {
			continue
		}
		for _, v := range [2]float64{math.Abs(vi), math.Abs(vj)} {
			if ex.Count == 0 || v < ex.MinAbs {
				ex.MinAbs = v
			}
			if ex.Count == 0 || v > ex.MaxAbs {
				ex.MaxAbs = v
			}
			ex.Count++
		}
	}
	return
}

// Scale converts the extrema into a displacement scale such that the
// largest ribbon spans TargetSpan model units. Shear diagrams get the
// extra ShearBoost multiplier. With no usable values, or a model under
// zero load, the scale falls back to identity.
func (ex Extrema) Scale(rt model.ResultType, p Params) (scale float64) {
	if ex.Count == 0 || ex.MaxAbs == 0 {
		return 1.0
	}
	scale = p.TargetSpan / ex.MaxAbs
	if rt == model.SFD {
		scale *= p.ShearBoost
	}
	return
}
