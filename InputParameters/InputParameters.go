package InputParameters

import (
	"fmt"
	"strings"

	"github.com/ghodss/yaml"

	"github.com/bridgediag/bridgediag/diagram"
	"github.com/bridgediag/bridgediag/model"
)

// Parameters obtained from the YAML input file
type DiagramParameters struct {
	Title       string  `json:"Title"`
	NodesFile   string  `json:"NodesFile"`
	MembersFile string  `json:"MembersFile"`
	ForcesFile  string  `json:"ForcesFile"`
	GirdersFile string  `json:"GirdersFile"`
	DiagramType string  `json:"DiagramType"` // BMD, SFD or both
	Segments    int     `json:"Segments"`
	TargetSpan  float64 `json:"TargetSpan"`
	ShearBoost  float64 `json:"ShearBoost"`
	OutputDir   string  `json:"OutputDir"`
	GraphTime   int     `json:"GraphTime"` // seconds an interactive chart stays up
}

// NewDiagramParameters seeds the tunables with their defaults so a
// parameter file only has to name what it changes.
func NewDiagramParameters() (ip *DiagramParameters) {
	def := diagram.DefaultParams()
	ip = &DiagramParameters{
		Title:       "Bridge Diagram",
		DiagramType: "both",
		Segments:    def.Segments,
		TargetSpan:  def.TargetSpan,
		ShearBoost:  def.ShearBoost,
		OutputDir:   ".",
		GraphTime:   30,
	}
	return
}

func (ip *DiagramParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// DiagramParams hands the geometry tunables to the diagram builder.
func (ip *DiagramParameters) DiagramParams() diagram.Params {
	return diagram.Params{
		Segments:   ip.Segments,
		TargetSpan: ip.TargetSpan,
		ShearBoost: ip.ShearBoost,
	}
}

// ResultTypes expands the DiagramType field, where "both" selects the
// moment and the shear diagram together.
func (ip *DiagramParameters) ResultTypes() []model.ResultType {
	if strings.EqualFold(strings.TrimSpace(ip.DiagramType), "both") {
		return []model.ResultType{model.BMD, model.SFD}
	}
	return []model.ResultType{model.NewResultType(ip.DiagramType)}
}

func (ip *DiagramParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t\t= Diagram Type\n", ip.DiagramType)
	fmt.Printf("[%d]\t\t\t\t= Segments\n", ip.Segments)
	fmt.Printf("%8.5f\t\t= TargetSpan\n", ip.TargetSpan)
	fmt.Printf("%8.5f\t\t= ShearBoost\n", ip.ShearBoost)
	fmt.Printf("[%s]\t\t= Output Directory\n", ip.OutputDir)
	fmt.Printf("Nodes: %s, Members: %s, Forces: %s, Girders: %s\n",
		ip.NodesFile, ip.MembersFile, ip.ForcesFile, ip.GirdersFile)
}
