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

// Package plane implements an immutable spatial index: given a fixed
// set of items placed at construction time, it answers "which items
// touch this rectangle" queries in stable, deterministic order.
package plane

import (
	"sort"

	"github.com/go-pdflayout/pdflayout/geom"
)

// Item is anything with a bbox. Any layout entity satisfies this
// interface structurally, without the plane package importing layout.
type Item interface {
	Bbox() geom.Bbox
}

type entry struct {
	key  float64
	item Item
	idx  int // original insertion index, for stable output order
}

// Plane indexes a fixed set of items by two sorted sequences of
// (coordinate, item) entries, one for each axis, plus the original
// insertion index of every item. It is built once and only queried;
// insertion/deletion after construction is not supported.
type Plane struct {
	xs   []entry
	ys   []entry
	idxs map[Item]int
}

// New builds a Plane over items. Construction is O(n log n); queries
// are O(log n + k).
func New(items []Item) *Plane {
	p := &Plane{
		xs:   make([]entry, 0, 2*len(items)),
		ys:   make([]entry, 0, 2*len(items)),
		idxs: make(map[Item]int, len(items)),
	}
	for i, it := range items {
		p.idxs[it] = i
		b := it.Bbox()
		p.xs = append(p.xs, entry{key: b.X0, item: it, idx: i}, entry{key: b.X1, item: it, idx: i})
		p.ys = append(p.ys, entry{key: b.Y0, item: it, idx: i}, entry{key: b.Y1, item: it, idx: i})
	}
	sort.SliceStable(p.xs, func(i, j int) bool { return p.xs[i].key < p.xs[j].key })
	sort.SliceStable(p.ys, func(i, j int) bool { return p.ys[i].key < p.ys[j].key })
	return p
}

// Find returns the items that have an x0 or x1 within [rect.X0,
// rect.X1] and a y0 or y1 within [rect.Y0, rect.Y1], in stable order of
// original insertion index. This covers items that touch or partly
// overlap rect; an item that extends past both sides of rect along an
// axis has no edge inside rect on that axis and is not returned. A
// query over a non-overlapping rectangle returns an empty slice.
func (p *Plane) Find(rect geom.Bbox) []Item {
	xset := rangeSet(p.xs, rect.X0, rect.X1)
	yset := rangeSet(p.ys, rect.Y0, rect.Y1)

	var result []Item
	for it := range xset {
		if _, ok := yset[it]; ok {
			result = append(result, it)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return p.idxs[result[i]] < p.idxs[result[j]]
	})
	return result
}

// rangeSet returns the set of items with at least one entry whose key
// lies in [lo, hi], located via binary search over the sorted slice.
func rangeSet(es []entry, lo, hi float64) map[Item]struct{} {
	i0 := sort.Search(len(es), func(i int) bool { return es[i].key >= lo })
	i1 := sort.Search(len(es), func(i int) bool { return es[i].key > hi })
	set := make(map[Item]struct{}, i1-i0)
	for _, e := range es[i0:i1] {
		set[e.item] = struct{}{}
	}
	return set
}
