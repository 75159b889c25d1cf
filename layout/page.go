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

package layout

import (
	"fmt"
	"sort"

	"github.com/go-pdflayout/pdflayout/geom"
	"github.com/go-pdflayout/pdflayout/layout/internal/cluster"
)

// Page is the top-level container for one page's layout items. After
// Analyze runs, its children are replaced by the reading-order blocks
// followed by the other (non-text) items, and Layout holds the root of
// the reading-order tree.
type Page struct {
	Container
	ID       any
	Rotation int
	// Layout is the root of the reading-order tree: a *TextGroup in the
	// ordinary case, but may be the lone *TextBlock itself when the
	// page contains exactly one text block (the tree builder's
	// agglomerative loop never runs, so no group is ever formed).
	Layout Item
}

// NewPage builds a Page with the given children, before analysis.
func NewPage(id any, bbox geom.Bbox, rotation int, children []Item) *Page {
	p := &Page{ID: id, Rotation: rotation}
	p.Container = Container{Children: children}
	p.SetBbox(bbox)
	return p
}

// DebugString renders the page's stable diagnostic form.
func (p *Page) DebugString() string {
	return fmt.Sprintf("<page(%v) bbox=%s rotate=%d>", p.ID, p.Bbox(), p.Rotation)
}

// Analyze runs the layout pipeline on page:
//
//  1. fixate the page's own bbox from its current children;
//  2. partition children into upright text objects and everything
//     else;
//  3. if params is nil or there are no text objects, return with the
//     page's objects untouched;
//  4. run the line/block/tree builders for the requested direction;
//  5. assign reading-order indexes, replace the page's children with
//     (indexed blocks in index order) followed by the other objects,
//     and record the root of the reading-order tree as Layout.
//
// It returns an error if, after fixating, a child's bbox has X0>X1 or
// Y0>Y1.
func Analyze(page *Page, params *Params) error {
	page.Fixate()
	for _, child := range page.Children {
		if s, ok := child.(Spatial); ok {
			if b := s.Bbox(); b.X0 > b.X1 || b.Y0 > b.Y1 {
				return fmt.Errorf("layout: non-canonical bbox %s on %s", b, child.DebugString())
			}
		}
	}

	textGlyphs, others := partition(page.Children)
	if params == nil || len(textGlyphs) == 0 {
		return nil
	}

	blocks, root, err := analyzeGlyphs(textGlyphs, params)
	if err != nil {
		return err
	}

	page.Children = make([]Item, 0, len(blocks)+len(others))
	for _, b := range blocks {
		page.Children = append(page.Children, b)
	}
	page.Children = append(page.Children, others...)
	page.Layout = root
	return nil
}

// AnalyzeFigure applies the same pipeline to a figure's own children,
// treating it as a self-contained page body: a figure's internal
// glyphs are analyzed with the same algorithm applied to the outer
// page. The top-level Analyze never calls this automatically — a
// downstream driver opts in per figure.
func AnalyzeFigure(fig *Figure, params *Params) error {
	textGlyphs, others := partition(fig.Children)
	if params == nil || len(textGlyphs) == 0 {
		return nil
	}

	blocks, root, err := analyzeGlyphs(textGlyphs, params)
	if err != nil {
		return err
	}

	fig.Children = make([]Item, 0, len(blocks)+len(others))
	for _, b := range blocks {
		fig.Children = append(fig.Children, b)
	}
	fig.Children = append(fig.Children, others...)
	_ = root // the figure does not expose a Layout field of its own
	return nil
}

// partition splits children into upright, text-bearing glyphs and
// every other item (invariant 2): non-upright glyphs, polygons, lines,
// rects, images and figures all pass through untouched.
func partition(children []Item) (textGlyphs []*Glyph, others []Item) {
	for _, child := range children {
		if g, ok := child.(*Glyph); ok && g.IsUpright() {
			textGlyphs = append(textGlyphs, g)
			continue
		}
		others = append(others, child)
	}
	return textGlyphs, others
}

// analyzeGlyphs runs the full line -> block -> tree pipeline over a
// non-empty slice of upright text glyphs (in original content-stream
// order) and returns the reading-order-indexed blocks plus the root of
// the reading-order tree (a *TextGroup, or the lone *TextBlock when
// there is only one block).
func analyzeGlyphs(glyphs []*Glyph, params *Params) ([]*TextBlock, Item, error) {
	vertical := params.Direction == Vertical

	glyphBoxes := make([]geom.Bbox, len(glyphs))
	for i, g := range glyphs {
		glyphBoxes[i] = g.Bbox()
	}

	lineResults := cluster.BuildLines(glyphBoxes, vertical, params.LineOverlap, params.CharMargin, params.WordMargin)
	lines := make([]*TextLine, len(lineResults))
	for i, lr := range lineResults {
		lines[i] = assembleLine(glyphs, lr)
	}

	lineBoxes := make([]geom.Bbox, len(lines))
	for i, l := range lines {
		lineBoxes[i] = l.Bbox()
	}

	groups := cluster.BuildBlocks(lineBoxes, vertical, params.LineMargin)
	blocks := make([]*TextBlock, len(groups))
	for i, members := range groups {
		children := make([]Item, len(members))
		for j, idx := range members {
			children[j] = lines[idx]
		}
		b := NewTextBlock(children)
		b.Fixate()
		sortBlockLines(b, vertical)
		blocks[i] = b
	}

	blockBoxes := make([]geom.Bbox, len(blocks))
	for i, b := range blocks {
		blockBoxes[i] = b.Bbox()
	}

	tree := cluster.BuildTree(blockBoxes, vertical)
	indexes := tree.AssignIndex()
	for i, b := range blocks {
		b.Index = indexes[i]
	}

	root := assembleTree(tree, blocks)

	sorted := make([]*TextBlock, len(blocks))
	copy(sorted, blocks)
	sortBlocksByIndex(sorted)

	return sorted, root, nil
}

// assembleLine reconstructs a TextLine from a cluster.Line result:
// interleave the chained glyphs (now in word-insertion order) with
// AnonText(" ") wherever SpaceBefore is set, then a terminal
// AnonText("\n"), and fixate the line's bbox.
func assembleLine(glyphs []*Glyph, lr cluster.Line) *TextLine {
	children := make([]Item, 0, len(lr.Indices)+1)
	for i, idx := range lr.Indices {
		if lr.SpaceBefore[i] {
			children = append(children, &AnonText{Text: " "})
		}
		children = append(children, glyphs[idx])
	}
	children = append(children, &AnonText{Text: "\n"})
	line := NewTextLine(children)
	line.Fixate()
	return line
}

// sortBlockLines re-sorts a freshly fixated block's line children:
// top-to-bottom (y1 descending) for horizontal blocks, right-to-left
// (x1 descending) for vertical blocks (invariant 4). The sort is
// stable with respect to the order BuildBlocks produced.
func sortBlockLines(b *TextBlock, vertical bool) {
	children := b.Children
	sort.SliceStable(children, func(i, j int) bool {
		bi, bj := children[i].(*TextLine).Bbox(), children[j].(*TextLine).Bbox()
		if vertical {
			return bi.X1 > bj.X1
		}
		return bi.Y1 > bj.Y1
	})
}

// sortBlocksByIndex sorts the page's blocks by their assigned reading
// order index.
func sortBlocksByIndex(blocks []*TextBlock) {
	sort.SliceStable(blocks, func(i, j int) bool { return blocks[i].Index < blocks[j].Index })
}

// assembleTree walks the cluster arena bottom-up, wrapping groups of
// two or more leaves/nodes in TextGroup containers that mirror the
// arena's own Children order (already reading-order-sorted by
// BuildTree). When the page holds exactly one block, the arena is a
// single leaf and the block itself is returned unwrapped — the
// agglomerative loop never runs, so no group is ever formed around it.
func assembleTree(tree cluster.Tree, blocks []*TextBlock) Item {
	built := make(map[int]Item, len(tree.Nodes))
	var build func(id int) Item
	build = func(id int) Item {
		if v, ok := built[id]; ok {
			return v
		}
		n := tree.Nodes[id]
		var item Item
		if n.Children == nil {
			item = blocks[n.BlockIndex]
		} else {
			members := make([]Item, len(n.Children))
			for i, c := range n.Children {
				members[i] = build(c)
			}
			item = NewTextGroup(members)
		}
		built[id] = item
		return item
	}

	return build(tree.Root)
}
