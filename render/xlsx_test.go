package render

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"github.com/bridgediag/bridgediag/diagram"
)

func sampleProfiles() []diagram.Profile {
	return []diagram.Profile{
		{
			Girder:    "Girder 1",
			Positions: []float64{0, 5, 10},
			Moments:   []float64{0, 375, 500},
			Shears:    []float64{100, 50, 0},
		},
		{
			Girder:    "Girder 2",
			Positions: []float64{0, 5, 10},
			Moments:   []float64{0, 300, 400},
			Shears:    []float64{80, 40, 0},
		},
	}
}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.xlsx")
	assert.NoError(t, WriteWorkbook(sampleProfiles(), "DL+LL", path))

	f, err := excelize.OpenFile(path)
	assert.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Girder 1", "Girder 2"}, f.GetSheetList())

	cell := func(sheet, ref string) string {
		v, err := f.GetCellValue(sheet, ref)
		assert.NoError(t, err)
		return v
	}
	{ // Header row then one row per profile point
		assert.Equal(t, "Position (m)", cell("Girder 1", "A1"))
		assert.Equal(t, "Bending Moment (kN·m)", cell("Girder 1", "B1"))
		assert.Equal(t, "Shear Force (kN)", cell("Girder 1", "C1"))
		assert.Equal(t, "0", cell("Girder 1", "A2"))
		assert.Equal(t, "375", cell("Girder 1", "B3"))
		assert.Equal(t, "0", cell("Girder 1", "C4"))
		assert.Equal(t, "300", cell("Girder 2", "B3"))
	}
	{ // No data bleeds past the profile rows
		assert.Equal(t, "", cell("Girder 1", "A5"))
	}
}

func TestWriteWorkbookEmpty(t *testing.T) {
	err := WriteWorkbook(nil, "DL", filepath.Join(t.TempDir(), "x.xlsx"))
	assert.ErrorContains(t, err, "no girder profiles to export")
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "Girder 1", sheetName("Girder 1"))
	assert.Equal(t, "G1-G2", sheetName("G1/G2"))
	long := "a girder name well past the thirty one character cap"
	assert.Equal(t, 31, len(sheetName(long)))
}
