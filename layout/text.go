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
	"strings"
)

// TextLine is a container of glyphs judged co-linear along the writing
// direction, interleaved with AnonText word/line-break markers. Every
// TextLine contains at least one real glyph; its bbox is the union of
// its real glyphs' bboxes only (AnonText tokens carry no geometry).
type TextLine struct {
	Container
}

// NewTextLine wraps objs (glyphs interleaved with AnonText markers,
// already in their final reading order) in a TextLine.
func NewTextLine(objs []Item) *TextLine {
	return &TextLine{Container{Children: objs}}
}

// Text concatenates the line's text-carrying children in child order.
func (l *TextLine) Text() string {
	var b strings.Builder
	for _, child := range l.Children {
		if t, ok := child.(Texter); ok {
			b.WriteString(t.TextValue())
		}
	}
	return b.String()
}

// DebugString renders the line's stable diagnostic form.
func (l *TextLine) DebugString() string {
	return fmt.Sprintf("<textline bbox=%s>", l.Bbox())
}

// TextBlock is a container of lines reached by transitive neighborhood
// closure. Index is assigned by the tree builder and is unique within
// a page; NoIndex marks a block that has not yet been indexed.
type TextBlock struct {
	Container
	Index int
}

// NoIndex is the sentinel Index value for a TextBlock that has not yet
// been assigned a reading-order position.
const NoIndex = -1

// NewTextBlock wraps lines (already deduplicated) in a TextBlock.
func NewTextBlock(lines []Item) *TextBlock {
	return &TextBlock{Container: Container{Children: lines}, Index: NoIndex}
}

// Text concatenates the block's line texts in child order.
func (b *TextBlock) Text() string {
	var sb strings.Builder
	for _, child := range b.Children {
		if line, ok := child.(*TextLine); ok {
			sb.WriteString(line.Text())
		}
	}
	return sb.String()
}

// DebugString renders the block's stable diagnostic form.
func (b *TextBlock) DebugString() string {
	return fmt.Sprintf("<textbox(%d) bbox=%s>", b.Index, b.Bbox())
}

// TextGroup is an internal node of the reading-order binary tree
// produced by the tree builder. Its children are either TextBlocks or
// other TextGroups.
type TextGroup struct {
	Container
}

// NewTextGroup wraps a non-empty set of members (blocks or groups) in a
// TextGroup and fixates its bbox immediately, matching the source's own
// "assert objs" precondition: a TextGroup is never empty.
func NewTextGroup(members []Item) *TextGroup {
	if len(members) == 0 {
		panic("layout: NewTextGroup requires a non-empty member list")
	}
	g := &TextGroup{Container{Children: members}}
	g.Fixate()
	return g
}

// DebugString renders the group's stable diagnostic form.
func (g *TextGroup) DebugString() string {
	return fmt.Sprintf("<textgroup bbox=%s>", g.Bbox())
}
