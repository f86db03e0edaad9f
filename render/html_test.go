package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bridgediag/bridgediag/model"
)

func TestWriteHTML(t *testing.T) {
	var (
		fig  = NewFigure(deckDiagram(t, model.BMD))
		path = filepath.Join(t.TempDir(), "bmd.html")
	)
	assert.NoError(t, WriteHTML(fig, "BMD - test", path))

	raw, err := os.ReadFile(path)
	assert.NoError(t, err)
	doc := string(raw)

	assert.Contains(t, doc, "<!DOCTYPE html>")
	assert.Contains(t, doc, "<title>BMD - test</title>")
	assert.Contains(t, doc, plotlyCDN)
	assert.Contains(t, doc, "Plotly.newPlot('diagram', fig.data, fig.layout")
	// The embedded figure JSON rides along in full
	assert.Contains(t, doc, `"type":"mesh3d"`)
	assert.Contains(t, doc, `"updatemenus"`)
}

func TestWriteHTMLBadPath(t *testing.T) {
	fig := NewFigure(deckDiagram(t, model.BMD))
	err := WriteHTML(fig, "x", filepath.Join(t.TempDir(), "missing", "out.html"))
	assert.ErrorContains(t, err, "failed to write HTML file")
}
