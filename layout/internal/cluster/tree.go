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
	"sort"

	"github.com/go-pdflayout/pdflayout/geom"
)

// Node is one node of the reading-order tree arena built by BuildTree.
// A leaf (Children == nil) refers to one of the original blocks passed
// to BuildTree, by index. An internal node's Children are the node ids
// of its members, already reordered into reading order (diagonal-key
// sort for the direction BuildTree was called with).
type Node struct {
	BlockIndex int // valid only when Children is nil
	Children   []int
	Bbox       geom.Bbox
}

// Tree is the arena produced by BuildTree: a flat slice of nodes plus
// the id of the root.
type Tree struct {
	Nodes []Node
	Root  int
}

// BuildTree agglomeratively merges blockBoxes into a single binary
// reading-order tree. Panics if blockBoxes is empty — the
// tree builder must never be invoked on an empty block list; the
// caller (the page analyzer) is responsible for short-circuiting
// before an empty text-object set ever reaches this function.
func BuildTree(blockBoxes []geom.Bbox, vertical bool) Tree {
	if len(blockBoxes) == 0 {
		panic("cluster: BuildTree requires a non-empty block list")
	}

	t := Tree{}
	working := make([]int, len(blockBoxes))
	for i, b := range blockBoxes {
		working[i] = t.addLeaf(i, b)
	}

	for len(working) > 1 {
		// re-sort by area ascending, stable w.r.t. previous order.
		sort.SliceStable(working, func(i, j int) bool {
			return t.Nodes[working[i]].Bbox.Area() < t.Nodes[working[j]].Bbox.Area()
		})

		bestI, bestJ := -1, -1
		bestD := 0.0
		first := true
		for i := 0; i < len(working); i++ {
			for j := i + 1; j < len(working); j++ {
				d := mergeDist(t.Nodes[working[i]].Bbox, t.Nodes[working[j]].Bbox)
				if first || d < bestD {
					bestD = d
					bestI, bestJ = i, j
					first = false
				}
			}
		}

		a, b := working[bestI], working[bestJ]
		working = removeIndices(working, bestI, bestJ)

		members := []int{a, b}
		orderMembers(members, t.Nodes, vertical)
		merged := t.addInternal(members)
		working = append(working, merged)
	}

	t.Root = working[0]
	return t
}

// mergeDist is the "empty space introduced by merging" cost: the area
// of the pair's bounding rectangle minus the two members' own areas.
// This formula is identical for horizontal and vertical grouping —
// there is no direction-specific cost function, and none should be
// introduced.
func mergeDist(a, b geom.Bbox) float64 {
	span := a.Union(b)
	return span.Area() - a.Area() - b.Area()
}

// orderMembers reorders a newly formed group's two members into
// reading order: top-left-to-bottom-right (x0-y1 ascending) for a
// horizontal group, top-right-to-bottom-left (-x1-y1 ascending) for a
// vertical group. This ordering applies uniformly to every group
// formed, matching the page's overall direction, not the shape of the
// particular pair being merged.
func orderMembers(members []int, nodes []Node, vertical bool) {
	sort.SliceStable(members, func(i, j int) bool {
		bi, bj := nodes[members[i]].Bbox, nodes[members[j]].Bbox
		if vertical {
			return (-bi.X1 - bi.Y1) < (-bj.X1 - bj.Y1)
		}
		return (bi.X0 - bi.Y1) < (bj.X0 - bj.Y1)
	})
}

func removeIndices(s []int, i, j int) []int {
	// i < j is guaranteed by the caller (bestI < bestJ from the i<j loop).
	out := make([]int, 0, len(s)-2)
	for k, v := range s {
		if k == i || k == j {
			continue
		}
		out = append(out, v)
	}
	return out
}

func (t *Tree) addLeaf(blockIndex int, b geom.Bbox) int {
	t.Nodes = append(t.Nodes, Node{BlockIndex: blockIndex, Bbox: b})
	return len(t.Nodes) - 1
}

func (t *Tree) addInternal(children []int) int {
	var boxes []geom.Bbox
	for _, c := range children {
		boxes = append(boxes, t.Nodes[c].Bbox)
	}
	t.Nodes = append(t.Nodes, Node{Children: children, Bbox: geom.UnionAll(boxes)})
	return len(t.Nodes) - 1
}

// AssignIndex performs the depth-first index assignment from spec
// §4.4: each leaf (block) encountered in child order receives the next
// integer starting from 0. Returns a slice mapping BlockIndex ->
// assigned reading-order index.
func (t *Tree) AssignIndex() []int {
	assigned := make([]int, countLeaves(t.Nodes))
	next := 0
	var walk func(id int)
	walk = func(id int) {
		n := t.Nodes[id]
		if n.Children == nil {
			assigned[n.BlockIndex] = next
			next++
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(t.Root)
	return assigned
}

func countLeaves(nodes []Node) int {
	n := 0
	for _, node := range nodes {
		if node.Children == nil {
			n++
		}
	}
	return n
}
