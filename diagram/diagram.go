// Package diagram turns member end forces into drawable force diagram
// geometry. A first pass over the whole model fixes the displacement
// scale, a second pass emits one ribbon surface and its boundary edges
// per element, displaced along the transverse axis in proportion to the
// interpolated force value.
package diagram

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/bridgediag/bridgediag/girders"
	"github.com/bridgediag/bridgediag/model"
	"github.com/bridgediag/bridgediag/utils"
)

// Params are the display tuning constants for diagram construction.
// ShearBoost widens shear ribbons relative to moment ribbons since shear
// magnitudes on a deck grillage run well below the peak moments.
type Params struct {
	Segments   int     `json:"Segments"`
	TargetSpan float64 `json:"TargetSpan"`
	ShearBoost float64 `json:"ShearBoost"`
}

func DefaultParams() Params {
	return Params{
		Segments:   50,
		TargetSpan: 1.8,
		ShearBoost: 3.0,
	}
}

type Kind uint8

const (
	// Centerline is the undisplaced element axis
	Centerline Kind = iota
	// Surface is the triangulated force ribbon
	Surface
	// EdgeStart, EdgeEnd and EdgeTop outline the ribbon for crispness
	EdgeStart
	EdgeEnd
	EdgeTop
)

// Primitive is one drawable unit handed to the presentation layer. Line
// kinds carry two points in X, Y, Z; Surface carries the full vertex and
// triangle index arrays plus a per-vertex color intensity.
type Primitive struct {
	Kind    Kind
	Element int
	Girder  string

	X, Y, Z []float64

	I, J, K   []int
	Intensity []float64

	// End values and node ids feed the hover text
	VI, VJ       float64
	NodeI, NodeJ int
}

// Diagram is the complete drawable model for one result type: an ordered
// primitive list plus the group bookkeeping the presentation layer needs
// to wire legends and visibility controls.
type Diagram struct {
	Type    model.ResultType
	Case    string
	Scale   float64
	Extrema Extrema

	Primitives []Primitive

	// Groups maps each girder name, and OtherLabel when transverse
	// members exist, to the indices of its primitives.
	Groups     map[string][]int
	GroupOrder []string

	Skipped []int
}

// Build runs the two pass construction over every element in the member
// table. Elements with a missing force record or a dangling node
// reference are reported and skipped; everything else still renders.
func Build(nodes model.NodeTable, members model.MemberTable, tbl *girders.Table,
	rs *model.ResultSet, rt model.ResultType, p Params) (d *Diagram) {
	var (
		eids  = members.IDs()
		scale float64
	)
	fmt.Println("Calculating scale factor...")
	ex := CollectExtrema(members, rs, rt)
	scale = ex.Scale(rt, p)
	fmt.Printf("  Max %s: %.2f %s\n", rt, ex.MaxAbs, rt.Unit())
	fmt.Printf("  Scale factor: %.6f\n", scale)

	d = &Diagram{
		Type:       rt,
		Case:       rs.Case,
		Scale:      scale,
		Extrema:    ex,
		Groups:     make(map[string][]int),
		GroupOrder: tbl.Labels(),
	}
	for _, name := range d.GroupOrder {
		d.Groups[name] = nil
	}

	// Undisplaced structure centerlines for every element, girders and
	// transverse members alike
	fmt.Println("Drawing structure centerlines...")
	for _, eid := range eids {
		ci, cj, ok := members.Ends(nodes, eid)
		if !ok {
			fmt.Printf("Warning: could not process element %d: dangling node reference\n", eid)
			continue
		}
		mem := members[eid]
		d.addPrimitive(Primitive{
			Kind:    Centerline,
			Element: eid,
			Girder:  tbl.GirderOf(eid),
			X:       []float64{ci.X, cj.X},
			Y:       []float64{ci.Y, cj.Y},
			Z:       []float64{ci.Z, cj.Z},
			NodeI:   mem.NodeI,
			NodeJ:   mem.NodeJ,
		})
	}

	// Force ribbons and their boundary edges. Ribbon geometry is
	// independent per element, so the pass is sharded across goroutines.
	fmt.Printf("Creating %s surfaces with boundary edges...\n", rt)
	slots := shardRibbons(nodes, members, rs, rt, scale, p.Segments, eids)
	for n, eid := range eids {
		s := &slots[n]
		if s.skip {
			d.Skipped = append(d.Skipped, eid)
			continue
		}
		if s.err != nil {
			fmt.Printf("Warning: could not process element %d: %s\n", eid, s.err)
			d.Skipped = append(d.Skipped, eid)
			continue
		}
		var (
			mem    = members[eid]
			girder = tbl.GirderOf(eid)
		)
		d.addPrimitive(Primitive{
			Kind:      Surface,
			Element:   eid,
			Girder:    girder,
			X:         s.rib.X,
			Y:         s.rib.Y,
			Z:         s.rib.Z,
			I:         s.rib.I,
			J:         s.rib.J,
			K:         s.rib.K,
			Intensity: s.rib.Intensity,
			VI:        s.vi,
			VJ:        s.vj,
			NodeI:     mem.NodeI,
			NodeJ:     mem.NodeJ,
		})
		for i, kind := range []Kind{EdgeStart, EdgeEnd, EdgeTop} {
			e := s.edges[i]
			d.addPrimitive(Primitive{
				Kind:    kind,
				Element: eid,
				Girder:  girder,
				X:       e.X[:],
				Y:       e.Y[:],
				Z:       e.Z[:],
				VI:      s.vi,
				VJ:      s.vj,
				NodeI:   mem.NodeI,
				NodeJ:   mem.NodeJ,
			})
		}
	}
	if n := len(d.Groups[girders.OtherLabel]); n > 0 {
		d.GroupOrder = append(d.GroupOrder, girders.OtherLabel)
	}
	fmt.Printf("Created %d surfaces with boundary edges\n", d.SurfaceCount())
	return
}

// ribbonSlot is one element's output from the sharded ribbon pass. skip
// marks a dangling node reference, which the centerline pass has already
// reported; err carries a missing or malformed force record.
type ribbonSlot struct {
	rib    Ribbon
	edges  [3]Edge
	vi, vj float64
	skip   bool
	err    error
}

// shardRibbons builds every element ribbon concurrently. Each element
// owns one slot in the result, so the merged primitive order is the
// member table order regardless of goroutine scheduling.
func shardRibbons(nodes model.NodeTable, members model.MemberTable, rs *model.ResultSet,
	rt model.ResultType, scale float64, segments int, eids []int) (slots []ribbonSlot) {
	var (
		wg = sync.WaitGroup{}
		NP = runtime.NumCPU()
	)
	if NP > len(eids) {
		NP = 1
	}
	slots = make([]ribbonSlot, len(eids))
	pm := utils.NewPartitionMap(NP, len(eids))
	for np := 0; np < NP; np++ {
		wg.Add(1)
		go func(np int) {
			nMin, nMax := pm.GetBucketRange(np)
			for n := nMin; n < nMax; n++ {
				var (
					eid = eids[n]
					s   = &slots[n]
				)
				ci, cj, ok := members.Ends(nodes, eid)
				if !ok {
					s.skip = true
					continue
				}
				if s.vi, s.vj, s.err = rs.EndValues(eid, rt); s.err != nil {
					continue
				}
				s.rib = BuildRibbon(ci, cj, s.vi, s.vj, scale, segments)
				s.edges = BoundaryEdges(ci, cj, s.vi, s.vj, scale)
			}
			wg.Done()
		}(np)
	}
	wg.Wait()
	return
}

func (d *Diagram) addPrimitive(p Primitive) {
	d.Primitives = append(d.Primitives, p)
	d.Groups[p.Girder] = append(d.Groups[p.Girder], len(d.Primitives)-1)
}

// SurfaceCount reports how many elements produced a ribbon.
func (d *Diagram) SurfaceCount() (n int) {
	for _, p := range d.Primitives {
		if p.Kind == Surface {
			n++
		}
	}
	return
}
