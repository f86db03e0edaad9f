package girders

import (
	"fmt"

	"github.com/james-bowman/sparse"

	"github.com/bridgediag/bridgediag/model"
)

// CheckContinuity walks each girder's element list and reports every
// break in the chain. Consecutive elements must connect end to end: the
// J node of one is the I node of the next. A pair that shares a node in
// the wrong orientation is reported separately from a pair that shares
// none, since the first is usually a reversed element and the second a
// wrong element id.
//
// Breaks distort the diagram ribbon but do not invalidate the force data,
// so the findings come back as warnings rather than an error.
func (tbl *Table) CheckContinuity(members model.MemberTable) (warnings []string) {
	for _, g := range tbl.Girders {
		warnings = append(warnings, girderBreaks(g, members)...)
	}
	return
}

func girderBreaks(g Girder, members model.MemberTable) (warnings []string) {
	var (
		E         = len(g.Elements)
		TotalEnds = 2 * E
		vids      = make(map[int]int)
	)
	if len(g.Nodes) != E+1 {
		warnings = append(warnings, fmt.Sprintf("girder %s: %d nodes listed for %d elements, expected %d",
			g.Name, len(g.Nodes), E, E+1))
	}
	if E < 2 {
		return
	}
	for _, eid := range g.Elements {
		mem, found := members[eid]
		if !found {
			// CheckMembers reports these fatally, nothing to chain here
			return
		}
		for _, nid := range []int{mem.NodeI, mem.NodeJ} {
			if _, seen := vids[nid]; !seen {
				vids[nid] = len(vids)
			}
		}
	}
	// Element end to node incidence, two rows per element. The product
	// with its own transpose marks every pair of ends that land on the
	// same node.
	SpEToV_Tmp := sparse.NewDOK(TotalEnds, len(vids))
	for k, eid := range g.Elements {
		mem := members[eid]
		SpEToV_Tmp.Set(2*k, vids[mem.NodeI], 1)
		SpEToV_Tmp.Set(2*k+1, vids[mem.NodeJ], 1)
	}
	SpEToE := sparse.NewCSR(TotalEnds, TotalEnds, nil, nil, nil)
	SpEToV := SpEToV_Tmp.ToCSR()
	SpEToE.Mul(SpEToV, SpEToV.T())
	for k := 0; k < E-1; k++ {
		var (
			e1, e2     = g.Elements[k], g.Elements[k+1]
			headToTail = SpEToE.At(2*k+1, 2*k+2) != 0
			anyShared  = headToTail ||
				SpEToE.At(2*k, 2*k+2) != 0 ||
				SpEToE.At(2*k, 2*k+3) != 0 ||
				SpEToE.At(2*k+1, 2*k+3) != 0
		)
		switch {
		case headToTail:
		case anyShared:
			warnings = append(warnings, fmt.Sprintf("girder %s: elements %d and %d share a node but not end to end, element order or orientation is off",
				g.Name, e1, e2))
		default:
			warnings = append(warnings, fmt.Sprintf("girder %s: elements %d and %d do not share a node",
				g.Name, e1, e2))
		}
	}
	return
}
