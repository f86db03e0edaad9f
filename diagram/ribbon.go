package diagram

import (
	"gonum.org/v1/gonum/floats"

	"github.com/bridgediag/bridgediag/model"
)

// Ribbon is the triangulated strip for one element. Vertices come in
// undisplaced/displaced pairs along the element axis, 2*(segments+1) in
// total, with two triangles spanning each segment. Intensity carries the
// absolute force magnitude per vertex for the shared color scale.
type Ribbon struct {
	X, Y, Z   []float64
	I, J, K   []int
	Intensity []float64
}

// Edge is a single straight boundary line in model space.
type Edge struct {
	X, Y, Z [2]float64
}

// BuildRibbon interpolates the element axis and its two end values over
// the given segment count and extrudes the force ribbon along the
// transverse axis. Vertex 2i is the undisplaced point at step i, vertex
// 2i+1 the displaced one.
func BuildRibbon(ci, cj model.Coord, vi, vj, scale float64, segments int) (rib Ribbon) {
	if segments < 1 {
		segments = 1
	}
	var (
		nVerts = 2 * (segments + 1)
		ts     = floats.Span(make([]float64, segments+1), 0, 1)
	)
	rib = Ribbon{
		X:         make([]float64, 0, nVerts),
		Y:         make([]float64, 0, nVerts),
		Z:         make([]float64, 0, nVerts),
		I:         make([]int, 0, 2*segments),
		J:         make([]int, 0, 2*segments),
		K:         make([]int, 0, 2*segments),
		Intensity: make([]float64, 0, nVerts),
	}
	for _, t := range ts {
		var (
			x = lerp(ci.X, cj.X, t)
			y = lerp(ci.Y, cj.Y, t)
			z = lerp(ci.Z, cj.Z, t)
			v = lerp(vi, vj, t)
		)
		rib.X = append(rib.X, x, x)
		rib.Y = append(rib.Y, y, y+v*scale)
		rib.Z = append(rib.Z, z, z)
		c := v
		if c < 0 {
			c = -c
		}
		rib.Intensity = append(rib.Intensity, c, c)
	}
	for i := 0; i < segments; i++ {
		b := 2 * i
		rib.I = append(rib.I, b, b+1)
		rib.J = append(rib.J, b+1, b+3)
		rib.K = append(rib.K, b+2, b+2)
	}
	return
}

// BoundaryEdges returns the three outline edges of an element's ribbon:
// the vertical at each end and the top line joining the two displaced
// end points. Force interpolation is linear, so the top edge is straight
// and two points per edge suffice.
func BoundaryEdges(ci, cj model.Coord, vi, vj, scale float64) (edges [3]Edge) {
	edges[0] = Edge{
		X: [2]float64{ci.X, ci.X},
		Y: [2]float64{ci.Y, ci.Y + vi*scale},
		Z: [2]float64{ci.Z, ci.Z},
	}
	edges[1] = Edge{
		X: [2]float64{cj.X, cj.X},
		Y: [2]float64{cj.Y, cj.Y + vj*scale},
		Z: [2]float64{cj.Z, cj.Z},
	}
	edges[2] = Edge{
		X: [2]float64{ci.X, cj.X},
		Y: [2]float64{ci.Y + vi*scale, cj.Y + vj*scale},
		Z: [2]float64{ci.Z, cj.Z},
	}
	return
}

// lerp uses the two sided form so t=0 and t=1 reproduce the endpoints
// exactly, which the one sided a+t*(b-a) form does not guarantee.
func lerp(a, b, t float64) float64 {
	return (1-t)*a + t*b
}
