package render

import (
	"fmt"
	"math"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/bridgediag/bridgediag/diagram"
	"github.com/bridgediag/bridgediag/model"
)

// WriteReport produces a summary PDF with one page per girder: the peak
// moment and shear with their locations, a filled sketch of each
// diagram, then the point table.
func WriteReport(profiles []diagram.Profile, caseName, path string) error {
	if len(profiles) == 0 {
		return fmt.Errorf("no girder profiles to report")
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	// The core fonts are cp1252, so the middle dot in kN·m needs the
	// translator to survive
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Girder Force Summary")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Load case: %s", caseName))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	for i, p := range profiles {
		if i > 0 {
			pdf.AddPage()
		}
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, p.Girder)
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 11)
		mx, mv := peak(p.Positions, p.Moments)
		sx, sv := peak(p.Positions, p.Shears)
		pdf.Cell(0, 6, tr(fmt.Sprintf("Peak %s: %.2f %s at x = %.2f m",
			model.BMD.Quantity(), mv, model.BMD.Unit(), mx)))
		pdf.Ln(6)
		pdf.Cell(0, 6, tr(fmt.Sprintf("Peak %s: %.2f %s at x = %.2f m",
			model.SFD.Quantity(), sv, model.SFD.Unit(), sx)))
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Cell(0, 6, tr(fmt.Sprintf("%s (%s)", model.BMD.Quantity(), model.BMD.Unit())))
		pdf.Ln(7)
		diagramSketch(pdf, p.Positions, p.Moments, 173, 216, 230)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Cell(0, 6, tr(fmt.Sprintf("%s (%s)", model.SFD.Quantity(), model.SFD.Unit())))
		pdf.Ln(7)
		diagramSketch(pdf, p.Positions, p.Shears, 240, 128, 128)
		profileTable(pdf, tr, p)
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}

// diagramSketch draws the profile as a filled polygon against its zero
// axis, scaled into a small strip at the current position.
func diagramSketch(pdf *gofpdf.Fpdf, xs, values []float64, r, g, b int) {
	const (
		w = 125.0
		h = 24.0
	)
	x0, y0 := pdf.GetXY()
	xMin, xMax := xs[0], xs[0]
	var vMax float64
	for i, x := range xs {
		if x < xMin {
			xMin = x
		}
		if x > xMax {
			xMax = x
		}
		if v := math.Abs(values[i]); v > vMax {
			vMax = v
		}
	}
	if xMax == xMin {
		return
	}
	if vMax == 0 {
		vMax = 1
	}
	var (
		base = y0 + h/2
		sx   = w / (xMax - xMin)
		sy   = (h / 2) / vMax
		pts  = make([]gofpdf.PointType, 0, len(xs)+2)
	)
	// Page y grows downward, so positive values plot above the axis
	pts = append(pts, gofpdf.PointType{X: x0, Y: base})
	for i := range xs {
		pts = append(pts, gofpdf.PointType{
			X: x0 + (xs[i]-xMin)*sx,
			Y: base - values[i]*sy,
		})
	}
	pts = append(pts, gofpdf.PointType{X: x0 + w, Y: base})
	pdf.SetFillColor(r, g, b)
	pdf.SetDrawColor(80, 80, 80)
	pdf.Polygon(pts, "FD")
	pdf.Line(x0, base, x0+w, base)
	pdf.SetXY(x0, y0+h+4)
}

func profileTable(pdf *gofpdf.Fpdf, tr func(string) string, p diagram.Profile) {
	var (
		widths  = []float64{35, 45, 45}
		headers = []string{
			"Position (m)",
			fmt.Sprintf("%s (%s)", model.BMD.Quantity(), model.BMD.Unit()),
			fmt.Sprintf("%s (%s)", model.SFD.Quantity(), model.SFD.Unit()),
		}
	)
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 10)
	for i := range p.Positions {
		cells := []string{
			fmt.Sprintf("%.2f", p.Positions[i]),
			fmt.Sprintf("%.2f", p.Moments[i]),
			fmt.Sprintf("%.2f", p.Shears[i]),
		}
		for j, c := range cells {
			pdf.CellFormat(widths[j], 6, c, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}
}
