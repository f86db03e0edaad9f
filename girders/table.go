// Package girders maintains the grouping of deck elements into named
// longitudinal girder lines. Elements left out of every girder line are
// treated as transverse members and carried under OtherLabel so they can
// still be drawn and filtered as a group.
package girders

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/bridgediag/bridgediag/model"
)

// OtherLabel collects every element that belongs to no girder line,
// typically the transverse members between girders.
const OtherLabel = "Other Elements"

var (
	// validate is a singleton validator instance
	validate *validator.Validate
)

func init() {
	validate = validator.New()
}

// Girder is one longitudinal line of the deck grillage: an ordered node
// path, the ordered elements connecting consecutive nodes, and a display
// color in "rgb(r, g, b)" form. The color is presentation data but lives
// here because girder identity, including how it is drawn, is authored
// domain knowledge rather than anything derivable from the geometry.
type Girder struct {
	Name     string `json:"name" validate:"required,min=1"`
	Nodes    []int  `json:"nodes" validate:"required,min=2"`
	Elements []int  `json:"elements" validate:"required,min=1,dive,min=1"`
	Color    string `json:"color" validate:"omitempty,startswith=rgb("`
}

// Table holds the girder lines in presentation order plus a reverse
// element-to-girder lookup built at construction time.
type Table struct {
	Girders []Girder `json:"girders" validate:"required,min=1,dive"`

	byName    map[string]int
	byElement map[int]string
}

// NewTable validates the girder definitions and builds the lookup maps.
// An element claimed by two girders is a definition error.
func NewTable(defs []Girder) (tbl *Table, err error) {
	tbl = &Table{Girders: defs}
	if err = validate.Struct(tbl); err != nil {
		return nil, formatValidationError(err)
	}
	tbl.byName = make(map[string]int, len(defs))
	tbl.byElement = make(map[int]string)
	for i, g := range defs {
		if _, dup := tbl.byName[g.Name]; dup {
			return nil, fmt.Errorf("duplicate girder name %q", g.Name)
		}
		tbl.byName[g.Name] = i
		for _, eid := range g.Elements {
			if owner, claimed := tbl.byElement[eid]; claimed {
				return nil, fmt.Errorf("element %d assigned to both %q and %q", eid, owner, g.Name)
			}
			tbl.byElement[eid] = g.Name
		}
	}
	return tbl, nil
}

// Labels returns the girder names in definition order.
func (tbl *Table) Labels() (names []string) {
	names = make([]string, len(tbl.Girders))
	for i, g := range tbl.Girders {
		names[i] = g.Name
	}
	return
}

// Get returns the girder with the given name.
func (tbl *Table) Get(name string) (g Girder, ok bool) {
	i, ok := tbl.byName[name]
	if !ok {
		return
	}
	return tbl.Girders[i], true
}

// GirderOf maps an element id to its girder name, or OtherLabel for
// elements outside every girder line.
func (tbl *Table) GirderOf(eid int) (name string) {
	name, ok := tbl.byElement[eid]
	if !ok {
		name = OtherLabel
	}
	return
}

// OtherElements returns the sorted ids of the elements in members that no
// girder claims.
func (tbl *Table) OtherElements(members model.MemberTable) (eids []int) {
	for eid := range members {
		if _, claimed := tbl.byElement[eid]; !claimed {
			eids = append(eids, eid)
		}
	}
	sort.Ints(eids)
	return
}

// CheckMembers verifies that every element referenced by a girder exists
// in the member table. A dangling reference means the girder table and
// the model are out of sync, which poisons every profile downstream, so
// callers should treat the error as fatal.
func (tbl *Table) CheckMembers(members model.MemberTable) error {
	var missing []string
	for _, g := range tbl.Girders {
		for _, eid := range g.Elements {
			if _, found := members[eid]; !found {
				missing = append(missing, fmt.Sprintf("%d (girder %s)", eid, g.Name))
			}
		}
	}
	if len(missing) != 0 {
		return fmt.Errorf("girder table references unknown elements: %s", strings.Join(missing, ", "))
	}
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	for _, e := range validationErrs {
		field := e.Field()
		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min":
			return fmt.Errorf("%s: must be at least %s", field, e.Param())
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
		}
	}
	return err
}
