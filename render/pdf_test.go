package render

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.pdf")
	assert.NoError(t, WriteReport(sampleProfiles(), "DL+LL", path))

	raw, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF-")))
	// One page per girder
	assert.Contains(t, string(raw), "/Count 2")
	// Two girder sections plus sketches and point tables add up
	assert.Greater(t, len(raw), 1500)
}

func TestWriteReportEmpty(t *testing.T) {
	err := WriteReport(nil, "DL", filepath.Join(t.TempDir(), "x.pdf"))
	assert.ErrorContains(t, err, "no girder profiles to report")
}

func TestPeak(t *testing.T) {
	x, v := peak([]float64{0, 5, 10}, []float64{100, -250, 50})
	assert.Equal(t, 5.0, x)
	assert.Equal(t, -250.0, v)

	x, v = peak([]float64{0}, []float64{0})
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, v)
}
