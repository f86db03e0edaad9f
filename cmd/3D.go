/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bridgediag/bridgediag/InputParameters"
	"github.com/bridgediag/bridgediag/diagram"
	"github.com/bridgediag/bridgediag/girders"
	"github.com/bridgediag/bridgediag/model"
	"github.com/bridgediag/bridgediag/readfiles"
	"github.com/bridgediag/bridgediag/render"
)

type ModelBridge struct {
	ParamsFile  string
	NodesFile   string
	MembersFile string
	ForcesFile  string
	GirdersFile string
}

// ThreeDCmd represents the 3D command
var ThreeDCmd = &cobra.Command{
	Use:   "3D",
	Short: "Three dimensional deck diagrams, exported as interactive HTML figures",
	Long:  `Three dimensional deck diagrams, exported as interactive HTML figures`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("3D called")
		mb := &ModelBridge{}
		if mb.ParamsFile, err = cmd.Flags().GetString("inputParametersFile"); err != nil {
			panic(err)
		}
		mb.NodesFile, _ = cmd.Flags().GetString("nodes")
		mb.MembersFile, _ = cmd.Flags().GetString("members")
		mb.ForcesFile, _ = cmd.Flags().GetString("forces")
		mb.GirdersFile, _ = cmd.Flags().GetString("girders")
		ip := processInput(mb)
		if dt, _ := cmd.Flags().GetString("type"); len(dt) != 0 {
			ip.DiagramType = dt
		}
		if out, _ := cmd.Flags().GetString("outputDir"); len(out) != 0 {
			ip.OutputDir = out
		}
		if segments, _ := cmd.Flags().GetInt("segments"); segments != 0 {
			ip.Segments = segments
		}
		Run3D(ip)
	},
}

func processInput(mb *ModelBridge) (ip *InputParameters.DiagramParameters) {
	var (
		err      error
		willExit bool
	)
	ip = InputParameters.NewDiagramParameters()
	if len(mb.ParamsFile) != 0 {
		var data []byte
		if data, err = os.ReadFile(mb.ParamsFile); err != nil {
			panic(err)
		}
		if err = ip.Parse(data); err != nil {
			panic(err)
		}
	}
	if len(mb.NodesFile) != 0 {
		ip.NodesFile = mb.NodesFile
	}
	if len(mb.MembersFile) != 0 {
		ip.MembersFile = mb.MembersFile
	}
	if len(mb.ForcesFile) != 0 {
		ip.ForcesFile = mb.ForcesFile
	}
	if len(mb.GirdersFile) != 0 {
		ip.GirdersFile = mb.GirdersFile
	}
	if len(ip.NodesFile) == 0 {
		err := fmt.Errorf("must supply a node file (--nodes, or NodesFile in the -I parameters file)")
		fmt.Printf("error: %s\n", err.Error())
		willExit = true
	}
	if len(ip.MembersFile) == 0 {
		err := fmt.Errorf("must supply a member file (--members, or MembersFile in the -I parameters file)")
		fmt.Printf("error: %s\n", err.Error())
		willExit = true
	}
	if len(ip.ForcesFile) == 0 {
		err := fmt.Errorf("must supply a force file (--forces, or ForcesFile in the -I parameters file)")
		fmt.Printf("error: %s\n", err.Error())
		willExit = true
	}
	if len(ip.GirdersFile) == 0 {
		err := fmt.Errorf("must supply a girder file (--girders, or GirdersFile in the -I parameters file)")
		fmt.Printf("error: %s\n", err.Error())
		willExit = true
	}
	if willExit {
		exampleFile := `
########################################
Title: "Composite Deck"
DiagramType: both # Can be "BMD" or "SFD"
Segments: 50
TargetSpan: 1.8
ShearBoost: 3.0
NodesFile: testdata/nodes.yaml
MembersFile: testdata/members.yaml
ForcesFile: testdata/forces.yaml
GirdersFile: testdata/girders.yaml
OutputDir: .
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	return
}

func loadModel(ip *InputParameters.DiagramParameters) (nodes model.NodeTable,
	members model.MemberTable, tbl *girders.Table, rs *model.ResultSet) {
	nodes = readfiles.ReadNodes(ip.NodesFile, true)
	members = readfiles.ReadMembers(ip.MembersFile, true)
	rs = readfiles.ReadForces(ip.ForcesFile, true)
	tbl = readfiles.ReadGirders(ip.GirdersFile, true)
	if err := tbl.CheckMembers(members); err != nil {
		panic(err)
	}
	for _, w := range tbl.CheckContinuity(members) {
		fmt.Printf("Warning: %s\n", w)
	}
	return
}

func init() {
	rootCmd.AddCommand(ThreeDCmd)
	ThreeDCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file for input parameters like:\n\t- Segments\n\t- TargetSpan (diagram height in meters)")
	ThreeDCmd.Flags().String("nodes", "", "node coordinate file in YAML format")
	ThreeDCmd.Flags().String("members", "", "member connectivity file in YAML format")
	ThreeDCmd.Flags().String("forces", "", "member end force file in YAML format")
	ThreeDCmd.Flags().String("girders", "", "girder grouping file in YAML format")
	ThreeDCmd.Flags().StringP("type", "t", "", "diagram to generate: BMD, SFD or both")
	ThreeDCmd.Flags().IntP("segments", "s", 0, "ribbon subdivisions per element")
	ThreeDCmd.Flags().StringP("outputDir", "o", "", "directory receiving the HTML exports")
}

func Run3D(ip *InputParameters.DiagramParameters) {
	nodes, members, tbl, rs := loadModel(ip)
	for _, rt := range ip.ResultTypes() {
		fmt.Printf("Generating %s diagram...\n", rt.Quantity())
		d := diagram.Build(nodes, members, tbl, rs, rt, ip.DiagramParams())
		fig := render.NewFigure(d)
		path := filepath.Join(ip.OutputDir, fmt.Sprintf("%s_3D.html", rt))
		if err := render.WriteHTML(fig, fig.Layout.Title.Text, path); err != nil {
			panic(err)
		}
		fmt.Printf("Saved: %s\n", path)
	}
}
