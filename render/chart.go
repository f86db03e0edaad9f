package render

import (
	"image/color"
	"math"

	"github.com/notargets/avs/assets"
	"github.com/notargets/avs/chart2d"
	"github.com/notargets/avs/geometry"
	avsUtils "github.com/notargets/avs/utils"

	"github.com/bridgediag/bridgediag/diagram"
	"github.com/bridgediag/bridgediag/model"
	"github.com/bridgediag/bridgediag/utils"
)

// ShowProfile opens an interactive window with one girder's diagram for
// the selected result type: the area between profile and zero axis
// shaded by force magnitude, the profile polyline with point markers,
// and the peak value called out. The caller owns the window lifetime,
// typically sleeping or blocking until the user is done.
func ShowProfile(p diagram.Profile, rt model.ResultType, lineColor color.RGBA) (ch *chart2d.Chart2D) {
	var (
		values     = p.Values(rt)
		xMin, xMax = float32(math.MaxFloat32), -float32(math.MaxFloat32)
		yMin, yMax = float32(math.MaxFloat32), -float32(math.MaxFloat32)
		lines      []float32
		markers    []float32
	)
	for i := range p.Positions {
		var (
			x = float32(p.Positions[i])
			y = float32(values[i])
		)
		if x < xMin {
			xMin = x
		}
		if x > xMax {
			xMax = x
		}
		if y < yMin {
			yMin = y
		}
		if y > yMax {
			yMax = y
		}
		markers = append(markers, x, y)
		if i > 0 {
			lines = append(lines,
				float32(p.Positions[i-1]), float32(values[i-1]), x, y)
		}
	}
	// The zero axis must stay in frame even for a one signed load case
	if yMin > 0 {
		yMin = 0
	}
	if yMax < 0 {
		yMax = 0
	}
	var (
		xPad = 0.05 * (xMax - xMin)
		yPad = 0.10 * (yMax - yMin)
	)
	ch = chart2d.NewChart2D(xMin-xPad, xMax+xPad, yMin-yPad, yMax+yPad,
		1280, 1024, avsUtils.WHITE, avsUtils.BLACK, 0.9)
	gm, field, fMax := profileMesh(p.Positions, values)
	vs := geometry.VertexScalar{
		TMesh:       &gm,
		FieldValues: field,
	}
	ch.AddShadedVertexScalar(&vs, 0, fMax)
	ch.AddTriMesh(gm)
	ch.AddLine([]float32{xMin - xPad, 0, xMax + xPad, 0}, utils.GetColor(utils.DimGray))
	ch.AddLine(lines, lineColor)
	ch.AddLine(crossHairs(markers, xMax-xMin, yMax-yMin), lineColor)

	tf := assets.NewTextFormatter("NotoSans", "Regular", 24,
		utils.GetColor(utils.Black), true, false)
	ch.Printf(tf, xMin, yMax+0.5*yPad, "%s - %s (%s)",
		p.Girder, rt.Quantity(), rt.Unit())
	peakX, peakV := peak(p.Positions, values)
	ch.Printf(tf, float32(peakX), float32(peakV), "%.1f", peakV)
	return
}

// profileMesh fills the area between the profile and the zero axis with
// a triangulated strip shaded by force magnitude, in the same vertex
// layout as the 3D ribbons: vertex 2i on the axis, vertex 2i+1 at the
// profile, two triangles per span segment.
func profileMesh(xs, values []float64) (gm geometry.TriMesh, field []float32, fMax float32) {
	gm = geometry.TriMesh{
		XY:       make([]float32, 0, 4*len(xs)),
		TriVerts: make([][3]int64, 0, 2*len(xs)),
	}
	field = make([]float32, 0, 2*len(xs))
	for i, x := range xs {
		v := float32(values[i])
		gm.XY = append(gm.XY, float32(x), 0, float32(x), v)
		m := v
		if m < 0 {
			m = -m
		}
		field = append(field, m, m)
		if m > fMax {
			fMax = m
		}
	}
	for i := 0; i+1 < len(xs); i++ {
		b := int64(2 * i)
		gm.TriVerts = append(gm.TriVerts,
			[3]int64{b, b + 1, b + 2},
			[3]int64{b + 1, b + 3, b + 2})
	}
	// An all zero profile still needs a nonzero color range
	if fMax == 0 {
		fMax = 1
	}
	return
}

// crossHairs marks each data point with a small cross sized relative to
// the axis ranges so the marks stay visible at chart scale.
func crossHairs(xy []float32, xRange, yRange float32) (lines []float32) {
	var (
		dx = 0.01 * xRange
		dy = 0.01 * yRange
	)
	for i := 0; i < len(xy)/2; i++ {
		x, y := xy[2*i], xy[2*i+1]
		lines = append(lines,
			x-dx, y,
			x+dx, y,
			x, y-dy,
			x, y+dy,
		)
	}
	return
}

func peak(xs, vs []float64) (x, v float64) {
	for i := range vs {
		if i == 0 || math.Abs(vs[i]) > math.Abs(v) {
			x, v = xs[i], vs[i]
		}
	}
	return
}
