package readfiles

import (
	"fmt"
	"os"

	"github.com/ghodss/yaml"

	"github.com/bridgediag/bridgediag/girders"
)

// ReadGirders reads the girder definition file: an ordered list of named
// girder lines, each with its node path and element run. Definitions are
// validated structurally here; cross checks against the member table are
// the caller's job once both files are loaded.
func ReadGirders(filename string, verbose bool) (tbl *girders.Table) {
	var (
		data []byte
		err  error
		gf   struct {
			Girders []girders.Girder `json:"girders"`
		}
	)
	if verbose {
		fmt.Printf("Reading girder file named: %s\n", filename)
	}
	if data, err = os.ReadFile(filename); err != nil {
		panic(fmt.Errorf("unable to open file %s\n %s", filename, err))
	}
	if err = yaml.Unmarshal(data, &gf); err != nil {
		panic(fmt.Errorf("unable to parse girder table %s\n %s", filename, err))
	}
	if tbl, err = girders.NewTable(gf.Girders); err != nil {
		panic(fmt.Errorf("girder table %s is invalid\n %s", filename, err))
	}
	if verbose {
		fmt.Printf("Girders loaded : %d\n", len(tbl.Girders))
		for _, g := range tbl.Girders {
			fmt.Printf("%16s: %d nodes, %d elements\n", g.Name, len(g.Nodes), len(g.Elements))
		}
	}
	return
}
