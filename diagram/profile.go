package diagram

import (
	"fmt"

	"github.com/bridgediag/bridgediag/girders"
	"github.com/bridgediag/bridgediag/model"
)

// Profile holds the aligned position, moment and shear sequences along
// one girder, element_count+1 points each. Positions are the x
// coordinates of the chain's nodes in traversal order.
type Profile struct {
	Girder    string
	Positions []float64
	Moments   []float64
	Shears    []float64
}

// ExtractProfile walks the girder's element chain and samples both force
// types at the nodes. The first element contributes both of its ends,
// every later element only its j end, so a continuous chain yields one
// sample per node without duplicates.
//
// Unlike ribbon construction, a missing force record here is fatal: a
// girder profile with silent holes would misread as a real force drop.
func ExtractProfile(g girders.Girder, nodes model.NodeTable, members model.MemberTable,
	rs *model.ResultSet) (p Profile, err error) {
	var (
		n        = len(g.Elements)
		mzi, mzj float64
		vyi, vyj float64
	)
	p = Profile{
		Girder:    g.Name,
		Positions: make([]float64, 0, n+1),
		Moments:   make([]float64, 0, n+1),
		Shears:    make([]float64, 0, n+1),
	}
	for idx, eid := range g.Elements {
		ci, cj, ok := members.Ends(nodes, eid)
		if !ok {
			return Profile{}, fmt.Errorf("girder %s: element %d has a dangling node or member reference", g.Name, eid)
		}
		if mzi, mzj, err = rs.EndValues(eid, model.BMD); err != nil {
			return Profile{}, fmt.Errorf("girder %s: element %d: %w", g.Name, eid, err)
		}
		if vyi, vyj, err = rs.EndValues(eid, model.SFD); err != nil {
			return Profile{}, fmt.Errorf("girder %s: element %d: %w", g.Name, eid, err)
		}
		if idx == 0 {
			p.Positions = append(p.Positions, ci.X, cj.X)
			p.Moments = append(p.Moments, mzi, mzj)
			p.Shears = append(p.Shears, vyi, vyj)
		} else {
			p.Positions = append(p.Positions, cj.X)
			p.Moments = append(p.Moments, mzj)
			p.Shears = append(p.Shears, vyj)
		}
	}
	return
}

// Values returns the series for the requested result type.
func (p Profile) Values(rt model.ResultType) []float64 {
	if rt == model.SFD {
		return p.Shears
	}
	return p.Moments
}
