package diagram

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bridgediag/bridgediag/girders"
	"github.com/bridgediag/bridgediag/model"
)

// Two short girder lines plus one transverse member between them.
func smallDeck() (nodes model.NodeTable, members model.MemberTable, tbl *girders.Table) {
	nodes = model.NodeTable{
		1:  {X: 0, Y: 0, Z: -2.5},
		2:  {X: 0, Y: 0, Z: 2.5},
		11: {X: 5, Y: 0, Z: -2.5},
		12: {X: 5, Y: 0, Z: 2.5},
		16: {X: 10, Y: 0, Z: -2.5},
		17: {X: 10, Y: 0, Z: 2.5},
	}
	members = model.MemberTable{
		13: {NodeI: 1, NodeJ: 11},
		22: {NodeI: 11, NodeJ: 16},
		14: {NodeI: 2, NodeJ: 12},
		23: {NodeI: 12, NodeJ: 17},
		1:  {NodeI: 1, NodeJ: 2},
	}
	var err error
	tbl, err = girders.NewTable([]girders.Girder{
		{Name: "Girder 1", Nodes: []int{1, 11, 16}, Elements: []int{13, 22}},
		{Name: "Girder 2", Nodes: []int{2, 12, 17}, Elements: []int{14, 23}},
	})
	if err != nil {
		panic(err)
	}
	return
}

func smallDeckForces(t *testing.T) (rs *model.ResultSet) {
	rs = model.NewResultSet("test", forceComponents)
	setForces(t, rs, 13, 100, 0, 50, 375)
	setForces(t, rs, 22, 50, 375, 0, 500)
	setForces(t, rs, 14, 80, 0, 40, 300)
	setForces(t, rs, 23, 40, 300, 0, 400)
	setForces(t, rs, 1, -5, 10, 5, -10)
	return
}

func TestBuild(t *testing.T) {
	var (
		nodes, members, tbl = smallDeck()
		rs                  = smallDeckForces(t)
		p                   = Params{Segments: 4, TargetSpan: 1.8, ShearBoost: 3.0}
		d                   = Build(nodes, members, tbl, rs, model.BMD, p)
	)
	// One centerline per element, then surface plus three edges each
	assert.Equal(t, model.BMD, d.Type)
	assert.Equal(t, "test", d.Case)
	assert.Equal(t, 5+5*4, len(d.Primitives))
	assert.Equal(t, 5, d.SurfaceCount())
	assert.Empty(t, d.Skipped)
	assert.InDelta(t, 1.8/500.0, d.Scale, 1e-15)
	assert.Equal(t, 500.0, d.Extrema.MaxAbs)
	assert.Equal(t, 0.0, d.Extrema.MinAbs)

	// Transverse member 1 lands in the sentinel group, appended last
	assert.Equal(t, []string{"Girder 1", "Girder 2", girders.OtherLabel}, d.GroupOrder)
	for name, idxs := range d.Groups {
		for _, i := range idxs {
			assert.Equal(t, name, d.Primitives[i].Girder)
		}
	}
	// Each girder holds two elements at five primitives apiece
	assert.Equal(t, 10, len(d.Groups["Girder 1"]))
	assert.Equal(t, 10, len(d.Groups["Girder 2"]))
	assert.Equal(t, 5, len(d.Groups[girders.OtherLabel]))

	// Primitive order is deterministic: centerlines by element id, then
	// surface and edges by element id
	assert.Equal(t, Centerline, d.Primitives[0].Kind)
	assert.Equal(t, 1, d.Primitives[0].Element)
	assert.Equal(t, Surface, d.Primitives[5].Kind)
	assert.Equal(t, EdgeStart, d.Primitives[6].Kind)
	assert.Equal(t, EdgeEnd, d.Primitives[7].Kind)
	assert.Equal(t, EdgeTop, d.Primitives[8].Kind)
}

func TestBuildSkipsBadElements(t *testing.T) {
	var (
		nodes, members, tbl = smallDeck()
		p                   = Params{Segments: 4, TargetSpan: 1.8, ShearBoost: 3.0}
	)
	full := Build(nodes, members, tbl, smallDeckForces(t), model.BMD, p)

	// Drop the force record of the transverse member. Its centerline
	// survives, its ribbon does not, and no other element changes.
	partial := model.NewResultSet("test", forceComponents)
	setForces(t, partial, 13, 100, 0, 50, 375)
	setForces(t, partial, 22, 50, 375, 0, 500)
	setForces(t, partial, 14, 80, 0, 40, 300)
	setForces(t, partial, 23, 40, 300, 0, 400)
	d := Build(nodes, members, tbl, partial, model.BMD, p)

	assert.Equal(t, []int{1}, d.Skipped)
	assert.Equal(t, full.Scale, d.Scale)
	assert.Equal(t, 4, d.SurfaceCount())
	assert.Equal(t, 1, len(d.Groups[girders.OtherLabel]))
	assert.Equal(t, []string{"Girder 1", "Girder 2", girders.OtherLabel}, d.GroupOrder)

	keep := func(d *Diagram) (ps []Primitive) {
		for _, p := range d.Primitives {
			if p.Element != 1 {
				ps = append(ps, p)
			}
		}
		return
	}
	assert.Equal(t, keep(full), keep(d))
}

func TestBuildShardedOrder(t *testing.T) {
	// A chain long enough that the ribbon pass spans several buckets of
	// the partition map.
	const nElem = 64
	var (
		nodes   = model.NodeTable{}
		members = model.MemberTable{}
		gNodes  = make([]int, 0, nElem+1)
		gElems  = make([]int, 0, nElem)
		rs      = model.NewResultSet("test", forceComponents)
	)
	for i := 0; i <= nElem; i++ {
		nodes[i+1] = model.Coord{X: float64(i)}
		gNodes = append(gNodes, i+1)
	}
	for e := 1; e <= nElem; e++ {
		members[e] = model.Member{NodeI: e, NodeJ: e + 1}
		gElems = append(gElems, e)
		setForces(t, rs, e, float64(e), float64(10*e), float64(-e), float64(10*e+5))
	}
	tbl, err := girders.NewTable([]girders.Girder{
		{Name: "Girder 1", Nodes: gNodes, Elements: gElems},
	})
	assert.NoError(t, err)

	d := Build(nodes, members, tbl, rs, model.BMD, Params{Segments: 2, TargetSpan: 1.8, ShearBoost: 3.0})
	assert.Equal(t, nElem, d.SurfaceCount())
	assert.Equal(t, 5*nElem, len(d.Primitives))
	assert.Empty(t, d.Skipped)

	// Centerlines in element order, then surface plus three edges per
	// element in element order, whatever the goroutine interleave was
	for n := 0; n < nElem; n++ {
		assert.Equal(t, Centerline, d.Primitives[n].Kind)
		assert.Equal(t, n+1, d.Primitives[n].Element)
		base := nElem + 4*n
		assert.Equal(t, Surface, d.Primitives[base].Kind)
		assert.Equal(t, n+1, d.Primitives[base].Element)
		assert.Equal(t, float64(10*(n+1)), d.Primitives[base].VI)
		assert.Equal(t, float64(10*(n+1)+5), d.Primitives[base].VJ)
		assert.Equal(t, EdgeTop, d.Primitives[base+3].Kind)
	}
}

func TestBuildUnknownComponentSkipsEverything(t *testing.T) {
	nodes, members, tbl := smallDeck()
	rs := model.NewResultSet("test", []string{"N_i", "N_j"})
	for eid := range members {
		assert.NoError(t, rs.SetRow(eid, []float64{1, -1}))
	}
	d := Build(nodes, members, tbl, rs, model.SFD, DefaultParams())

	// Centerlines still draw, every ribbon is skipped, scale is identity
	assert.Equal(t, 0, d.SurfaceCount())
	assert.Equal(t, 5, len(d.Primitives))
	assert.Equal(t, []int{1, 13, 14, 22, 23}, d.Skipped)
	assert.Equal(t, 1.0, d.Scale)
	assert.Equal(t, []string{"Girder 1", "Girder 2", girders.OtherLabel}, d.GroupOrder)
}
