package render

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/bridgediag/bridgediag/diagram"
	"github.com/bridgediag/bridgediag/model"
)

// WriteWorkbook exports one sheet per girder profile with the position,
// moment and shear columns plus an embedded line chart over them, then
// saves the workbook to path.
func WriteWorkbook(profiles []diagram.Profile, caseName, path string) error {
	if len(profiles) == 0 {
		return fmt.Errorf("no girder profiles to export")
	}
	f := excelize.NewFile()
	defer f.Close()
	for i, p := range profiles {
		sheet := sheetName(p.Girder)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return fmt.Errorf("failed to name sheet %s: %w", sheet, err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return fmt.Errorf("failed to add sheet %s: %w", sheet, err)
			}
		}
		if err := fillProfileSheet(f, sheet, p, caseName); err != nil {
			return err
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write workbook %s: %w", path, err)
	}
	return nil
}

func fillProfileSheet(f *excelize.File, sheet string, p diagram.Profile,
	caseName string) error {
	headers := []interface{}{
		"Position (m)",
		fmt.Sprintf("%s (%s)", model.BMD.Quantity(), model.BMD.Unit()),
		fmt.Sprintf("%s (%s)", model.SFD.Quantity(), model.SFD.Unit()),
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("sheet %s: %w", sheet, err)
	}
	for i := range p.Positions {
		row := []interface{}{p.Positions[i], p.Moments[i], p.Shears[i]}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("sheet %s: %w", sheet, err)
		}
		if err = f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("sheet %s: %w", sheet, err)
		}
	}
	var (
		lastRow    = len(p.Positions) + 1
		categories = fmt.Sprintf("'%s'!$A$2:$A$%d", sheet, lastRow)
	)
	chart := &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{
			{
				Name:       fmt.Sprintf("'%s'!$B$1", sheet),
				Categories: categories,
				Values:     fmt.Sprintf("'%s'!$B$2:$B$%d", sheet, lastRow),
			},
			{
				Name:       fmt.Sprintf("'%s'!$C$1", sheet),
				Categories: categories,
				Values:     fmt.Sprintf("'%s'!$C$2:$C$%d", sheet, lastRow),
			},
		},
		Title: []excelize.RichTextRun{
			{Text: fmt.Sprintf("%s - %s", p.Girder, caseName)},
		},
		Legend: excelize.ChartLegend{Position: "bottom"},
	}
	if err := f.AddChart(sheet, "E2", chart); err != nil {
		return fmt.Errorf("sheet %s: %w", sheet, err)
	}
	return nil
}

// sheetName strips the characters Excel refuses in sheet names and
// enforces the 31 character limit.
func sheetName(girder string) string {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '-'
		}
		return r
	}, girder)
	if len(clean) > 31 {
		clean = clean[:31]
	}
	return clean
}
