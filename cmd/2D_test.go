package cmd

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/bridgediag/bridgediag/InputParameters"
)

func TestRun2D(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Test Deck
DiagramType: BMD # Can be "SFD" or "both"
Segments: 25
TargetSpan: 1.5
ShearBoost: 2.0
NodesFile: testdata/nodes.yaml
MembersFile: testdata/members.yaml
ForcesFile: testdata/forces.yaml
GirdersFile: testdata/girders.yaml
`)
	input := InputParameters.NewDiagramParameters()
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	// Check the tunables landed
	assert.Equal(t, input.Segments, 25)
	assert.Equal(t, input.TargetSpan, 1.5)
	input.Print()
	assert.Equal(t, input.ShearBoost, 2.0)
	// Fields absent from the file keep their defaults
	assert.Equal(t, input.OutputDir, ".")
	assert.Equal(t, input.GraphTime, 30)
	assert.Equal(t, input.DiagramParams().Segments, 25)
}

func TestDiagramIndex(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"BMD_3D.html", "SFD_3D.html", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest("GET", "/api/diagrams", nil)
	w := httptest.NewRecorder()
	diagramIndex(dir)(w, req)

	resp := w.Result()
	assert.Equal(t, resp.StatusCode, http.StatusOK)
	assert.Equal(t, resp.Header.Get("Content-Type"), "application/json")
	body := w.Body.String()
	assert.Matches(t, body, `BMD_3D\.html`)
	assert.Matches(t, body, `SFD_3D\.html`)
	if strings.Contains(body, "notes.txt") {
		t.Errorf("non html file leaked into the diagram index")
	}
}
