package model

import (
	"fmt"
	"sort"
	"strings"
)

// Beam end-force component names as they appear in the results dataset.
// The i/j suffix selects the element end.
const (
	CompMzI = "Mz_i"
	CompMzJ = "Mz_j"
	CompVyI = "Vy_i"
	CompVyJ = "Vy_j"
)

// StandardComponents is the full component set of a beam element results
// export: axial force, both shears, torsion and both moments at each end.
var StandardComponents = []string{
	"N_i", "Vy_i", "Vz_i", "Mx_i", "My_i", "Mz_i",
	"N_j", "Vy_j", "Vz_j", "Mx_j", "My_j", "Mz_j",
}

// ResultType selects which diagram a pipeline produces.
type ResultType uint8

const (
	// BMD plots the bending moment Mz along each member.
	BMD ResultType = iota
	// SFD plots the shear force Vy along each member.
	SFD
)

var ResultTypeNameMap = map[string]ResultType{
	"bmd":    BMD,
	"moment": BMD,
	"sfd":    SFD,
	"shear":  SFD,
}

// NewResultType converts a name from the CLI or a parameter file.
func NewResultType(name string) ResultType {
	rt, present := ResultTypeNameMap[strings.ToLower(strings.TrimSpace(name))]
	if !present {
		keys := make([]string, 0, len(ResultTypeNameMap))
		for k := range ResultTypeNameMap {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		panic(fmt.Errorf("unknown result type %q, must be one of: %s", name, strings.Join(keys, ", ")))
	}
	return rt
}

func (rt ResultType) String() string {
	switch rt {
	case SFD:
		return "SFD"
	default:
		return "BMD"
	}
}

// EndComponents returns the dataset component names holding the i-end and
// j-end values for this result type.
func (rt ResultType) EndComponents() (compI, compJ string) {
	if rt == SFD {
		return CompVyI, CompVyJ
	}
	return CompMzI, CompMzJ
}

// Unit returns the engineering unit for diagram labels.
func (rt ResultType) Unit() string {
	if rt == SFD {
		return "kN"
	}
	return "kN·m"
}

// Quantity returns the axis label text.
func (rt ResultType) Quantity() string {
	if rt == SFD {
		return "Shear Force"
	}
	return "Bending Moment"
}

// ResultSet is the member end-force dataset: one row of values per
// element, columns aligned with an ordered component-name list. It is
// loaded once and read-only afterwards.
type ResultSet struct {
	Case       string
	components []string
	index      map[string]int
	rows       map[int][]float64
}

// NewResultSet builds an empty set for the given case label and component
// ordering.
func NewResultSet(caseName string, components []string) (rs *ResultSet) {
	rs = &ResultSet{
		Case:       caseName,
		components: append([]string(nil), components...),
		index:      make(map[string]int, len(components)),
		rows:       make(map[int][]float64),
	}
	for i, name := range components {
		rs.index[name] = i
	}
	return
}

// SetRow stores an element's value row. The row length must match the
// component list.
func (rs *ResultSet) SetRow(eid int, row []float64) error {
	if len(row) != len(rs.components) {
		return fmt.Errorf("row has %d values, dataset has %d components",
			len(row), len(rs.components))
	}
	rs.rows[eid] = append([]float64(nil), row...)
	return nil
}

// Components returns the valid component names in dataset order.
func (rs *ResultSet) Components() []string {
	return append([]string(nil), rs.components...)
}

// Elements returns the element ids present in the dataset, ascending.
func (rs *ResultSet) Elements() (ids []int) {
	ids = make([]int, 0, len(rs.rows))
	for eid := range rs.rows {
		ids = append(ids, eid)
	}
	sort.Ints(ids)
	return
}

// HasElement reports whether the dataset carries a row for the element.
func (rs *ResultSet) HasElement(eid int) bool {
	_, present := rs.rows[eid]
	return present
}

// Force returns the value stored for (element, component). An unknown
// component name is reported together with the valid alternatives so a
// typo in a caller or parameter file is immediately diagnosable.
func (rs *ResultSet) Force(eid int, component string) (float64, error) {
	col, present := rs.index[component]
	if !present {
		return 0, fmt.Errorf("unknown component %q, available components: %s",
			component, strings.Join(rs.components, ", "))
	}
	row, present := rs.rows[eid]
	if !present {
		return 0, fmt.Errorf("no force record for element %d", eid)
	}
	return row[col], nil
}

// EndValues returns the i-end and j-end values of the selected result
// type for one element.
func (rs *ResultSet) EndValues(eid int, rt ResultType) (vi, vj float64, err error) {
	compI, compJ := rt.EndComponents()
	if vi, err = rs.Force(eid, compI); err != nil {
		return
	}
	vj, err = rs.Force(eid, compJ)
	return
}
