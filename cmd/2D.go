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
	"image/color"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bridgediag/bridgediag/InputParameters"
	"github.com/bridgediag/bridgediag/diagram"
	"github.com/bridgediag/bridgediag/girders"
	"github.com/bridgediag/bridgediag/render"
	"github.com/bridgediag/bridgediag/utils"
)

type ModelProfile struct {
	Girder   string
	Graph    bool
	XLSXFile string
	PDFFile  string
}

// TwoDCmd represents the 2D command
var TwoDCmd = &cobra.Command{
	Use:   "2D",
	Short: "Per girder force profile diagrams",
	Long: `
Extracts the moment and shear profile along each girder line and prints
it as a table, with an optional on screen chart plus spreadsheet and PDF
reports,

bridgediag 2D `,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("2D called")
		mb := &ModelBridge{}
		mb.ParamsFile, _ = cmd.Flags().GetString("inputParametersFile")
		mb.NodesFile, _ = cmd.Flags().GetString("nodes")
		mb.MembersFile, _ = cmd.Flags().GetString("members")
		mb.ForcesFile, _ = cmd.Flags().GetString("forces")
		mb.GirdersFile, _ = cmd.Flags().GetString("girders")
		mp := &ModelProfile{}
		mp.Girder, _ = cmd.Flags().GetString("girder")
		mp.Graph, _ = cmd.Flags().GetBool("graph")
		mp.XLSXFile, _ = cmd.Flags().GetString("xlsx")
		mp.PDFFile, _ = cmd.Flags().GetString("pdf")
		ip := processInput(mb)
		if gt, _ := cmd.Flags().GetInt("graphTime"); gt != 0 {
			ip.GraphTime = gt
		}
		Run2D(mp, ip)
	},
}

func init() {
	rootCmd.AddCommand(TwoDCmd)
	TwoDCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file for input parameters like:\n\t- Segments\n\t- TargetSpan (diagram height in meters)")
	TwoDCmd.Flags().String("nodes", "", "node coordinate file in YAML format")
	TwoDCmd.Flags().String("members", "", "member connectivity file in YAML format")
	TwoDCmd.Flags().String("forces", "", "member end force file in YAML format")
	TwoDCmd.Flags().String("girders", "", "girder grouping file in YAML format")
	TwoDCmd.Flags().StringP("girder", "G", "", "restrict output to one girder by name")
	TwoDCmd.Flags().BoolP("graph", "g", false, "display profile charts on screen")
	TwoDCmd.Flags().IntP("graphTime", "d", 0, "seconds to keep charts on screen")
	TwoDCmd.Flags().String("xlsx", "", "export the profiles as a spreadsheet workbook")
	TwoDCmd.Flags().String("pdf", "", "export a summary report as PDF")
}

func Run2D(mp *ModelProfile, ip *InputParameters.DiagramParameters) {
	nodes, members, tbl, rs := loadModel(ip)
	labels := tbl.Labels()
	if len(mp.Girder) != 0 {
		if _, found := tbl.Get(mp.Girder); !found {
			panic(fmt.Errorf("unknown girder %q, have: %s",
				mp.Girder, strings.Join(labels, ", ")))
		}
		labels = []string{mp.Girder}
	}
	fmt.Printf("\nExtracting Mz and Vy for %d girder(s)...\n", len(labels))
	profiles := make([]diagram.Profile, 0, len(labels))
	for _, name := range labels {
		g, _ := tbl.Get(name)
		p, err := diagram.ExtractProfile(g, nodes, members, rs)
		if err != nil {
			panic(err)
		}
		profiles = append(profiles, p)
		printProfile(p, rs.Case)
	}
	fmt.Println("Extraction completed")

	if len(mp.XLSXFile) != 0 {
		if err := render.WriteWorkbook(profiles, rs.Case, mp.XLSXFile); err != nil {
			panic(err)
		}
		fmt.Printf("Saved: %s\n", mp.XLSXFile)
	}
	if len(mp.PDFFile) != 0 {
		if err := render.WriteReport(profiles, rs.Case, mp.PDFFile); err != nil {
			panic(err)
		}
		fmt.Printf("Saved: %s\n", mp.PDFFile)
	}
	if mp.Graph {
		for i, p := range profiles {
			col := girderColor(tbl, p.Girder, i)
			for _, rt := range ip.ResultTypes() {
				render.ShowProfile(p, rt, col)
			}
		}
		utils.SleepFor(ip.GraphTime * 1000)
	}
}

func printProfile(p diagram.Profile, caseName string) {
	fmt.Printf("\n%s (case: %s)\n", p.Girder, caseName)
	fmt.Printf("Number of points: %d\n", len(p.Positions))
	fmt.Printf("%14s %20s %18s\n", "Position (m)", "Moment (kN·m)", "Shear (kN)")
	for i := range p.Positions {
		fmt.Printf("%14.2f %20.2f %18.2f\n", p.Positions[i], p.Moments[i], p.Shears[i])
	}
	fmt.Printf("Max |Mz| = %8.2f, Max |Vy| = %8.2f\n",
		maxAbs(p.Moments), maxAbs(p.Shears))
}

func maxAbs(vs []float64) (m float64) {
	for _, v := range vs {
		if math.Abs(v) > m {
			m = math.Abs(v)
		}
	}
	return
}

// girderColor prefers the authored display color and falls back to the
// palette, cycling by girder position.
func girderColor(tbl *girders.Table, name string, i int) color.RGBA {
	if g, found := tbl.Get(name); found && len(g.Color) != 0 {
		if col, err := utils.ParseRGB(g.Color); err == nil {
			return col
		}
	}
	return utils.GetColor(utils.GirderColors[i%len(utils.GirderColors)])
}
