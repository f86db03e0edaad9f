package readfiles

import (
	"fmt"
	"os"

	"github.com/ghodss/yaml"

	"github.com/bridgediag/bridgediag/model"
)

// ReadNodes reads the node coordinate table: a YAML mapping from node id
// to an [x, y, z] triple. Malformed or missing input aborts with a
// diagnostic; geometry is trusted beyond that.
func ReadNodes(filename string, verbose bool) (nodes model.NodeTable) {
	var (
		data []byte
		err  error
		raw  map[int][3]float64
	)
	if verbose {
		fmt.Printf("Reading node file named: %s\n", filename)
	}
	if data, err = os.ReadFile(filename); err != nil {
		panic(fmt.Errorf("unable to open file %s\n %s", filename, err))
	}
	if err = yaml.Unmarshal(data, &raw); err != nil {
		panic(fmt.Errorf("unable to parse node table %s\n %s", filename, err))
	}
	if len(raw) == 0 {
		panic(fmt.Errorf("node table %s is empty", filename))
	}
	nodes = make(model.NodeTable, len(raw))
	for nid, xyz := range raw {
		nodes[nid] = model.Coord{X: xyz[0], Y: xyz[1], Z: xyz[2]}
	}
	if verbose {
		fmt.Printf("Nodes loaded   : %d\n", len(nodes))
		min, max := nodes.Bounds()
		fmt.Printf("Bounding Box:\nXMin/XMax = %5.3f, %5.3f\nYMin/YMax = %5.3f, %5.3f\nZMin/ZMax = %5.3f, %5.3f\n",
			min.X, max.X, min.Y, max.Y, min.Z, max.Z)
	}
	return
}

// ReadMembers reads the element connectivity table: a YAML mapping from
// element id to a [nodeI, nodeJ] pair.
func ReadMembers(filename string, verbose bool) (members model.MemberTable) {
	var (
		data []byte
		err  error
		raw  map[int][2]int
	)
	if verbose {
		fmt.Printf("Reading element file named: %s\n", filename)
	}
	if data, err = os.ReadFile(filename); err != nil {
		panic(fmt.Errorf("unable to open file %s\n %s", filename, err))
	}
	if err = yaml.Unmarshal(data, &raw); err != nil {
		panic(fmt.Errorf("unable to parse element table %s\n %s", filename, err))
	}
	if len(raw) == 0 {
		panic(fmt.Errorf("element table %s is empty", filename))
	}
	members = make(model.MemberTable, len(raw))
	for eid, pair := range raw {
		members[eid] = model.Member{NodeI: pair[0], NodeJ: pair[1]}
	}
	if verbose {
		fmt.Printf("Elements loaded: %d\n", len(members))
	}
	return
}
