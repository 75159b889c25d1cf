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

// Package layout reconstructs the logical reading structure of a PDF
// page — words, text lines, text blocks and the reading-order tree —
// from a flat list of positioned glyph boxes and auxiliary graphic
// primitives.
package layout

import "github.com/go-pdflayout/pdflayout/geom"

// Item is implemented by every layout entity. Diagnostics are available
// on any item; only items that also implement Spatial carry a bbox and
// participate in clustering.
type Item interface {
	DebugString() string
}

// Spatial is implemented by items with a geometric extent: glyphs,
// shapes, images, containers and pages. AnonText deliberately does not
// implement Spatial — it is a text-carrying item with no geometry, and
// must never be handed to a Plane.
type Spatial interface {
	Item
	Bbox() geom.Bbox
}

// Texter is implemented by items that contribute to a line or block's
// text accessor: real glyphs and the anonymous word/line-break tokens
// the line builder inserts between them.
type Texter interface {
	Item
	TextValue() string
}

// Container is an ordered sequence of child items plus its own bbox.
// It is embedded by every composite layout entity (TextLine, TextBlock,
// TextGroup, Figure, Page) rather than used directly.
type Container struct {
	bbox     geom.Bbox
	Children []Item
}

// Bbox returns the container's bounding box.
func (c *Container) Bbox() geom.Bbox { return c.bbox }

// SetBbox forces the container's bbox, bypassing Fixate. Used by
// entities (such as Figure) whose bbox is derived from something other
// than the union of their children.
func (c *Container) SetBbox(b geom.Bbox) { c.bbox = b }

// Add appends obj to the container's children.
func (c *Container) Add(obj Item) {
	c.Children = append(c.Children, obj)
}

// Fixate sets the container's bbox to the union of its children's
// bboxes, unless a bbox has already been fixated. Following the
// source's own check, "already fixated" is tested by zero width alone,
// not the full zero bbox — so fixating an already-fixated container is
// a no-op, matching the round-trip invariant.
func (c *Container) Fixate() {
	if c.bbox.Width() != 0 || len(c.Children) == 0 {
		return
	}
	var boxes []geom.Bbox
	for _, child := range c.Children {
		if s, ok := child.(Spatial); ok {
			boxes = append(boxes, s.Bbox())
		}
	}
	if len(boxes) > 0 {
		c.bbox = geom.UnionAll(boxes)
	}
}
