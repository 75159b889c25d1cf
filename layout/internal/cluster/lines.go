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

// Package cluster implements the two-phase geometric clustering
// algorithm (glyph -> line, line -> block, block -> tree) at the heart
// of the layout engine. It is internal and works purely in terms of
// geom.Bbox and integer indices into the caller's item slice, so it
// never needs to know about concrete glyph or container types.
package cluster

import (
	"sort"

	"github.com/go-pdflayout/pdflayout/geom"
)

// Line is one text line as produced by BuildLines: the original
// indices of its members, reordered for word insertion, plus which
// positions need a space inserted before them.
type Line struct {
	// Indices lists the member indices (into the slice passed to
	// BuildLines) in final reading order (x0-ascending for horizontal
	// lines, y1-descending for vertical lines).
	Indices []int
	// SpaceBefore[i] is true when a word-break belongs before
	// Indices[i]. SpaceBefore[0] is always false.
	SpaceBefore []bool
}

// BuildLines groups boxes (in input order) into lines via sequential
// chaining (phase A), then computes each line's word-insertion order
// (phase A's word pass). vertical selects the writing-direction
// variant of the alignment predicate.
func BuildLines(boxes []geom.Bbox, vertical bool, lineOverlap, charMargin, wordMargin float64) []Line {
	var runs [][]int
	var run []int
	for i, cur := range boxes {
		if len(run) > 0 {
			prev := boxes[run[len(run)-1]]
			if !aligned(prev, cur, vertical, lineOverlap, charMargin) {
				runs = append(runs, run)
				run = nil
			}
		}
		run = append(run, i)
		_ = cur
	}
	if len(run) > 0 {
		runs = append(runs, run)
	}

	lines := make([]Line, len(runs))
	for i, r := range runs {
		lines[i] = buildWordOrder(boxes, r, vertical, wordMargin)
	}
	return lines
}

// aligned implements the two direction-specific alignment predicates
// from the sequential chaining phase. The vertical predicate
// deliberately reuses charMargin (not a direction-specific threshold)
// for the cross-line gap test, mirroring the source: this asymmetry is
// intentional and must not be "fixed".
func aligned(prev, cur geom.Bbox, vertical bool, lineOverlap, charMargin float64) bool {
	if vertical {
		return min2(prev.Width(), cur.Width())*lineOverlap < geom.HOverlapLen(prev, cur) &&
			geom.VDistance(prev, cur) < min2(prev.Height(), cur.Height())*charMargin
	}
	return min2(prev.Height(), cur.Height())*lineOverlap < geom.VOverlapLen(prev, cur) &&
		geom.HDistance(prev, cur) < min2(prev.Width(), cur.Width())*charMargin
}

// buildWordOrder re-sorts a run's member indices by x0 ascending
// (horizontal) or y1 descending (vertical), stable with respect to the
// original (content-stream) order, and marks which gaps exceed the
// word margin.
func buildWordOrder(boxes []geom.Bbox, run []int, vertical bool, wordMargin float64) Line {
	order := append([]int(nil), run...)
	if vertical {
		sort.SliceStable(order, func(i, j int) bool { return boxes[order[i]].Y1 > boxes[order[j]].Y1 })
	} else {
		sort.SliceStable(order, func(i, j int) bool { return boxes[order[i]].X0 < boxes[order[j]].X0 })
	}

	spaceBefore := make([]bool, len(order))
	trailing := 0.0
	haveTrailing := false
	for i, idx := range order {
		b := boxes[idx]
		if haveTrailing && i > 0 {
			if vertical {
				margin := wordMargin * b.Height()
				if b.Y1+margin < trailing {
					spaceBefore[i] = true
				}
			} else {
				margin := wordMargin * b.Width()
				if trailing < b.X0-margin {
					spaceBefore[i] = true
				}
			}
		}
		if vertical {
			trailing = b.Y0
		} else {
			trailing = b.X1
		}
		haveTrailing = true
	}
	return Line{Indices: order, SpaceBefore: spaceBefore}
}

func min2(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
