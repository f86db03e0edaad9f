package readfiles

import (
	"fmt"
	"os"
	"strings"

	"github.com/ghodss/yaml"

	"github.com/bridgediag/bridgediag/model"
)

type resultsFile struct {
	Case       string            `json:"case"`
	Components []string          `json:"components"`
	Elements   map[int][]float64 `json:"elements"`
}

// ReadForces reads a member end force table: a load case name, an ordered
// component list, and one row of values per element in component order.
// Row widths are checked against the component list here so downstream
// lookups can assume rectangular data.
func ReadForces(filename string, verbose bool) (rs *model.ResultSet) {
	var (
		data []byte
		err  error
		rf   resultsFile
	)
	if verbose {
		fmt.Printf("Reading force file named: %s\n", filename)
	}
	if data, err = os.ReadFile(filename); err != nil {
		panic(fmt.Errorf("unable to open file %s\n %s", filename, err))
	}
	if err = yaml.Unmarshal(data, &rf); err != nil {
		panic(fmt.Errorf("unable to parse force table %s\n %s", filename, err))
	}
	if len(rf.Components) == 0 {
		rf.Components = model.StandardComponents
	}
	if len(rf.Elements) == 0 {
		panic(fmt.Errorf("force table %s has no element rows", filename))
	}
	rs = model.NewResultSet(rf.Case, rf.Components)
	for eid, row := range rf.Elements {
		if err = rs.SetRow(eid, row); err != nil {
			panic(fmt.Errorf("force table %s, element %d: %s", filename, eid, err))
		}
	}
	if verbose {
		fmt.Printf("Force rows loaded: %d, case: %s\n", len(rf.Elements), rf.Case)
		fmt.Printf("Available components: %s\n", strings.Join(rs.Components(), ", "))
	}
	return
}
