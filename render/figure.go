// Package render is the presentation layer: it turns diagram primitives
// into an interactive 3D figure exported as a standalone HTML document,
// an on screen profile chart, and spreadsheet and PDF reports. All chart
// cosmetics live here, the geometry arrives ready made.
package render

import (
	"fmt"

	"github.com/bridgediag/bridgediag/diagram"
	"github.com/bridgediag/bridgediag/girders"
)

// Figure mirrors the plotly figure schema, marshalled verbatim into the
// exported document.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace covers the two trace flavors in use, scatter3d lines and mesh3d
// surfaces, with the unused fields omitted from the JSON.
type Trace struct {
	Type string    `json:"type"`
	X    []float64 `json:"x"`
	Y    []float64 `json:"y"`
	Z    []float64 `json:"z"`

	Mode string `json:"mode,omitempty"`
	Line *Line  `json:"line,omitempty"`

	I []int `json:"i,omitempty"`
	J []int `json:"j,omitempty"`
	K []int `json:"k,omitempty"`

	Name        string `json:"name,omitempty"`
	LegendGroup string `json:"legendgroup,omitempty"`
	ShowLegend  bool   `json:"showlegend"`
	HoverInfo   string `json:"hoverinfo,omitempty"`
	HoverTmpl   string `json:"hovertemplate,omitempty"`

	Intensity  []float64      `json:"intensity,omitempty"`
	ColorScale [][2]any       `json:"colorscale,omitempty"`
	CMin       *float64       `json:"cmin,omitempty"`
	CMax       *float64       `json:"cmax,omitempty"`
	Opacity    float64        `json:"opacity,omitempty"`
	ShowScale  *bool          `json:"showscale,omitempty"`
	ColorBar   *ColorBar      `json:"colorbar,omitempty"`
	FlatShade  *bool          `json:"flatshading,omitempty"`
	Lighting   *Lighting      `json:"lighting,omitempty"`
	LightPos   *LightPosition `json:"lightposition,omitempty"`
}

type Line struct {
	Color string  `json:"color"`
	Width float64 `json:"width"`
}

type ColorBar struct {
	Title     TitleText `json:"title"`
	Thickness float64   `json:"thickness"`
	Len       float64   `json:"len"`
	X         float64   `json:"x"`
}

type TitleText struct {
	Text string `json:"text"`
	Font *Font  `json:"font,omitempty"`
}

type Lighting struct {
	Ambient   float64 `json:"ambient"`
	Diffuse   float64 `json:"diffuse"`
	Specular  float64 `json:"specular"`
	Roughness float64 `json:"roughness"`
	Fresnel   float64 `json:"fresnel"`
}

type LightPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type Layout struct {
	Title       LayoutTitle  `json:"title"`
	Scene       Scene        `json:"scene"`
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	Margin      Margin       `json:"margin"`
	PaperBG     string       `json:"paper_bgcolor"`
	Font        Font         `json:"font"`
	HoverMode   string       `json:"hovermode"`
	UpdateMenus []UpdateMenu `json:"updatemenus,omitempty"`
}

type LayoutTitle struct {
	Text    string  `json:"text"`
	X       float64 `json:"x"`
	XAnchor string  `json:"xanchor"`
	Font    Font    `json:"font"`
}

type Font struct {
	Size   int    `json:"size,omitempty"`
	Color  string `json:"color,omitempty"`
	Family string `json:"family,omitempty"`
}

type Scene struct {
	XAxis       Axis3D `json:"xaxis"`
	YAxis       Axis3D `json:"yaxis"`
	ZAxis       Axis3D `json:"zaxis"`
	AspectRatio XYZ    `json:"aspectratio"`
	Camera      Camera `json:"camera"`
	BGColor     string `json:"bgcolor"`
}

type Axis3D struct {
	Title         TitleText `json:"title"`
	GridColor     string    `json:"gridcolor"`
	GridWidth     float64   `json:"gridwidth"`
	ShowGrid      bool      `json:"showgrid"`
	ZeroLine      bool      `json:"zeroline"`
	ZeroLineColor string    `json:"zerolinecolor"`
	ZeroLineWidth float64   `json:"zerolinewidth"`
	ShowBG        bool      `json:"showbackground"`
	BGColor       string    `json:"backgroundcolor"`
	ShowSpikes    bool      `json:"showspikes"`
	DTick         float64   `json:"dtick,omitempty"`
	TickFont      Font      `json:"tickfont"`
}

type XYZ struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type Camera struct {
	Eye    XYZ `json:"eye"`
	Center XYZ `json:"center"`
	Up     XYZ `json:"up"`
}

type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	B int `json:"b"`
	T int `json:"t"`
}

type UpdateMenu struct {
	Type        string   `json:"type"`
	Direction   string   `json:"direction"`
	Buttons     []Button `json:"buttons"`
	X           float64  `json:"x"`
	Y           float64  `json:"y"`
	XAnchor     string   `json:"xanchor"`
	YAnchor     string   `json:"yanchor"`
	ShowActive  bool     `json:"showactive"`
	BGColor     string   `json:"bgcolor"`
	BorderColor string   `json:"bordercolor"`
	BorderWidth float64  `json:"borderwidth"`
}

type Button struct {
	Label  string           `json:"label"`
	Method string           `json:"method"`
	Args   []map[string]any `json:"args"`
}

// PastelScale is the shared surface colorscale, soft tones so the black
// centerlines and edges stay readable on top of the ribbons.
var PastelScale = [][2]any{
	{0.0, "rgb(100, 149, 237)"},
	{0.25, "rgb(127, 255, 212)"},
	{0.5, "rgb(144, 238, 144)"},
	{0.75, "rgb(255, 218, 120)"},
	{1.0, "rgb(240, 128, 128)"},
}

const (
	centerlineColor = "rgba(20, 20, 20, 1.0)"
	edgeColor       = "rgba(0, 0, 0, 0.9)"
)

var edgeWidths = map[diagram.Kind]float64{
	diagram.EdgeStart: 4,
	diagram.EdgeEnd:   2,
	diagram.EdgeTop:   1.5,
}

// NewFigure converts a built diagram into a plotly figure. Primitive
// order is preserved one to one, so the diagram's group index table maps
// straight onto trace indices for the visibility buttons.
func NewFigure(d *diagram.Diagram) (fig *Figure) {
	fig = &Figure{
		Data:   make([]Trace, 0, len(d.Primitives)),
		Layout: newLayout(d),
	}
	var (
		cmin, cmax  = d.Extrema.MinAbs, d.Extrema.MaxAbs
		firstMesh   = true
		shownLegend = make(map[string]bool)
	)
	for _, p := range d.Primitives {
		switch p.Kind {
		case diagram.Surface:
			t := Trace{
				Type:        "mesh3d",
				X:           p.X,
				Y:           p.Y,
				Z:           p.Z,
				I:           p.I,
				J:           p.J,
				K:           p.K,
				Name:        p.Girder,
				LegendGroup: p.Girder,
				ShowLegend:  !shownLegend[p.Girder],
				Intensity:   p.Intensity,
				ColorScale:  PastelScale,
				CMin:        &cmin,
				CMax:        &cmax,
				Opacity:     0.75,
				ShowScale:   boolPtr(firstMesh),
				FlatShade:   boolPtr(false),
				Lighting: &Lighting{
					Ambient:   0.7,
					Diffuse:   0.8,
					Specular:  0.3,
					Roughness: 0.5,
					Fresnel:   0.2,
				},
				LightPos: &LightPosition{X: 1000, Y: 1000, Z: 1000},
				HoverTmpl: fmt.Sprintf(
					"<b>%s - Element %d</b><br>Nodes: %d → %d<br>%s: %.3f %s<br>%s: %.3f %s<extra></extra>",
					p.Girder, p.Element, p.NodeI, p.NodeJ,
					compName(d, true), p.VI, d.Type.Unit(),
					compName(d, false), p.VJ, d.Type.Unit()),
			}
			if firstMesh {
				t.ColorBar = &ColorBar{
					Title:     TitleText{Text: fmt.Sprintf("%s<br>(%s)", d.Type, d.Type.Unit())},
					Thickness: 20,
					Len:       0.7,
					X:         1.02,
				}
			}
			shownLegend[p.Girder] = true
			firstMesh = false
			fig.Data = append(fig.Data, t)
		case diagram.Centerline:
			fig.Data = append(fig.Data, lineTrace(p, centerlineColor, 6))
		default:
			fig.Data = append(fig.Data, lineTrace(p, edgeColor, edgeWidths[p.Kind]))
		}
	}
	fig.Layout.UpdateMenus = []UpdateMenu{visibilityMenu(d)}
	return
}

func lineTrace(p diagram.Primitive, color string, width float64) Trace {
	return Trace{
		Type:        "scatter3d",
		X:           p.X,
		Y:           p.Y,
		Z:           p.Z,
		Mode:        "lines",
		Line:        &Line{Color: color, Width: width},
		ShowLegend:  false,
		HoverInfo:   "skip",
		Name:        p.Girder,
		LegendGroup: p.Girder,
	}
}

func compName(d *diagram.Diagram, atI bool) string {
	ci, cj := d.Type.EndComponents()
	if atI {
		return ci
	}
	return cj
}

// visibilityMenu wires one button per group: all girders together, each
// girder alone, and the transverse members alone when any exist.
func visibilityMenu(d *diagram.Diagram) UpdateMenu {
	var (
		total   = len(d.Primitives)
		buttons = make([]Button, 0, len(d.GroupOrder)+1)
	)
	all := make([]bool, total)
	for i := range all {
		all[i] = true
	}
	buttons = append(buttons, Button{
		Label:  "All Girders",
		Method: "update",
		Args:   []map[string]any{{"visible": all}},
	})
	for _, name := range d.GroupOrder {
		label := name
		if name == girders.OtherLabel {
			label = "Transverse Only"
		}
		visible := make([]bool, total)
		for _, idx := range d.Groups[name] {
			visible[idx] = true
		}
		buttons = append(buttons, Button{
			Label:  label,
			Method: "update",
			Args:   []map[string]any{{"visible": visible}},
		})
	}
	return UpdateMenu{
		Type:        "buttons",
		Direction:   "down",
		Buttons:     buttons,
		X:           0.01,
		Y:           0.99,
		XAnchor:     "left",
		YAnchor:     "top",
		ShowActive:  true,
		BGColor:     "rgba(255, 255, 255, 0.9)",
		BorderColor: "rgba(0, 0, 0, 0.3)",
		BorderWidth: 1,
	}
}

func newLayout(d *diagram.Diagram) Layout {
	grid := func(dtick float64, title string) Axis3D {
		return Axis3D{
			Title: TitleText{
				Text: title,
				Font: &Font{Size: 14, Color: "#34495e"},
			},
			GridColor:     "rgb(180, 180, 180)",
			GridWidth:     2,
			ShowGrid:      true,
			ZeroLine:      true,
			ZeroLineColor: "rgb(100, 100, 100)",
			ZeroLineWidth: 3,
			ShowBG:        true,
			BGColor:       "rgb(245, 245, 250)",
			ShowSpikes:    false,
			DTick:         dtick,
			TickFont:      Font{Size: 11},
		}
	}
	return Layout{
		Title: LayoutTitle{
			Text:    fmt.Sprintf("3D %s Diagram (%s) - MIDAS Style", d.Type.Quantity(), d.Type),
			X:       0.5,
			XAnchor: "center",
			Font:    Font{Size: 20, Color: "#2c3e50", Family: "Arial, sans-serif"},
		},
		Scene: Scene{
			XAxis:       grid(2.5, "X (m)"),
			YAxis:       grid(0, fmt.Sprintf("%s (%s)", d.Type.Quantity(), d.Type.Unit())),
			ZAxis:       grid(2.0, "Z (m)"),
			AspectRatio: XYZ{X: 2, Y: 1, Z: 1},
			Camera: Camera{
				Eye:    XYZ{X: 1.8, Y: 1.5, Z: 1.2},
				Center: XYZ{},
				Up:     XYZ{Y: 1},
			},
			BGColor: "rgb(250, 250, 252)",
		},
		Width:     1600,
		Height:    900,
		Margin:    Margin{L: 0, R: 100, B: 0, T: 80},
		PaperBG:   "rgb(255, 255, 255)",
		Font:      Font{Family: "Arial, sans-serif", Size: 12, Color: "#2c3e50"},
		HoverMode: "closest",
	}
}

func boolPtr(b bool) *bool { return &b }
