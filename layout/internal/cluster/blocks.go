// pdflayout - page layout analysis for extracted PDF text
// Copyright (C) 2026 The pdflayout Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cluster

import (
	"github.com/go-pdflayout/pdflayout/geom"
	"github.com/go-pdflayout/pdflayout/layout/plane"
)

type indexed struct {
	i int
	b geom.Bbox
}

func (ix *indexed) Bbox() geom.Bbox { return ix.b }

// BuildBlocks groups lineBoxes (in input order) into blocks by
// transitive neighbor closure: build a Plane over the lines, then for
// each line union every block its neighborhood already touches into
// one member set and rebind every member to a fresh block. Returns one
// []int per resulting block, listing its member indices in original
// input order, with each block emitted once in the order its first
// member was encountered.
//
// Panics if a line's own neighborhood query (which always includes a
// margin around its own bbox) fails to include the line itself — that
// indicates a broken Plane query, a programmer error per the package's
// fatal-condition list, not a condition callers can trigger through
// ordinary input.
func BuildBlocks(lineBoxes []geom.Bbox, vertical bool, lineMargin float64) [][]int {
	items := make([]plane.Item, len(lineBoxes))
	nodes := make([]*indexed, len(lineBoxes))
	for i, b := range lineBoxes {
		n := &indexed{i: i, b: b}
		nodes[i] = n
		items[i] = n
	}
	pl := plane.New(items)

	groupOf := make(map[int]*group)
	for i, b := range lineBoxes {
		rect := neighborhood(b, vertical, lineMargin)
		neighbors := pl.Find(rect)

		self := false
		members := map[int]bool{}
		for _, n := range neighbors {
			idx := n.(*indexed).i
			members[idx] = true
			if idx == i {
				self = true
			}
		}
		if !self {
			panic("cluster: line neighborhood query omitted the line itself")
		}

		for idx := range members {
			if g, ok := groupOf[idx]; ok {
				for m := range g.members {
					members[m] = true
				}
			}
		}

		g := &group{members: members}
		for idx := range members {
			groupOf[idx] = g
		}
	}

	var result [][]int
	emitted := map[*group]bool{}
	for i := range lineBoxes {
		g := groupOf[i]
		if emitted[g] {
			continue
		}
		emitted[g] = true
		ordered := make([]int, 0, len(g.members))
		for idx := 0; idx < len(lineBoxes); idx++ {
			if g.members[idx] {
				ordered = append(ordered, idx)
			}
		}
		result = append(result, ordered)
	}
	return result
}

type group struct {
	members map[int]bool
}

// neighborhood computes the rectangle a line's neighbors must touch to
// join its block: a margin extending perpendicular to the writing
// direction, proportional to the line's own extent along that axis.
func neighborhood(b geom.Bbox, vertical bool, lineMargin float64) geom.Bbox {
	if vertical {
		m := lineMargin * b.Width()
		return geom.NewBbox(b.X0-m, b.Y0, b.X1+m, b.Y1)
	}
	m := lineMargin * b.Height()
	return geom.NewBbox(b.X0, b.Y0-m, b.X1, b.Y1+m)
}
