// Package model holds the bridge finite element entities shared by the
// diagram pipelines: nodal geometry, member connectivity and the member
// end-force result set.
package model

import (
	"sort"
)

// Coord is a node position in the global bridge axes. X runs along the
// spans, Y is elevation, Z is transverse.
type Coord struct {
	X, Y, Z float64
}

// NodeTable maps node ids to coordinates.
type NodeTable map[int]Coord

// Member is a two-node frame element directed from NodeI to NodeJ.
type Member struct {
	NodeI, NodeJ int
}

// MemberTable maps element ids to their node pair.
type MemberTable map[int]Member

// IDs returns the element ids in ascending order. Iteration over the
// table itself is randomized by the runtime; diagram assembly needs a
// stable element order so trace indices are reproducible between runs.
func (mt MemberTable) IDs() (ids []int) {
	ids = make([]int, 0, len(mt))
	for eid := range mt {
		ids = append(ids, eid)
	}
	sort.Ints(ids)
	return
}

// IDs returns the node ids in ascending order.
func (nt NodeTable) IDs() (ids []int) {
	ids = make([]int, 0, len(nt))
	for nid := range nt {
		ids = append(ids, nid)
	}
	sort.Ints(ids)
	return
}

// Bounds reports the bounding box of all nodes.
func (nt NodeTable) Bounds() (min, max Coord) {
	var first = true
	for _, c := range nt {
		if first {
			min, max = c, c
			first = false
			continue
		}
		if c.X < min.X {
			min.X = c.X
		}
		if c.X > max.X {
			max.X = c.X
		}
		if c.Y < min.Y {
			min.Y = c.Y
		}
		if c.Y > max.Y {
			max.Y = c.Y
		}
		if c.Z < min.Z {
			min.Z = c.Z
		}
		if c.Z > max.Z {
			max.Z = c.Z
		}
	}
	return
}

// Ends resolves a member's end coordinates against the node table.
func (mt MemberTable) Ends(nt NodeTable, eid int) (ci, cj Coord, ok bool) {
	m, present := mt[eid]
	if !present {
		return
	}
	ci, ok = nt[m.NodeI]
	if !ok {
		return
	}
	cj, ok = nt[m.NodeJ]
	return
}
