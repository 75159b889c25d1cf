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
	"math"

	"github.com/go-pdflayout/pdflayout/geom"
	"seehuhn.de/go/geom/vec"
)

// Polygon is a stroked or filled primitive with a point list and line
// width. Only its bbox participates in layout.
type Polygon struct {
	Points    []vec.Vec2
	LineWidth float64

	bbox geom.Bbox
}

func boundsOf(pts []vec.Vec2) geom.Bbox {
	x0, y0, x1, y1 := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		x0 = math.Min(x0, p.X)
		y0 = math.Min(y0, p.Y)
		x1 = math.Max(x1, p.X)
		y1 = math.Max(y1, p.Y)
	}
	return geom.NewBbox(x0, y0, x1, y1)
}

// NewPolygon builds a Polygon whose bbox covers all of pts.
func NewPolygon(lineWidth float64, pts []vec.Vec2) *Polygon {
	return &Polygon{Points: pts, LineWidth: lineWidth, bbox: boundsOf(pts)}
}

// Bbox returns the polygon's bounding box.
func (p *Polygon) Bbox() geom.Bbox { return p.bbox }

// DebugString renders the polygon's stable diagnostic form.
func (p *Polygon) DebugString() string {
	return fmt.Sprintf("<polygon bbox=%s>", p.bbox)
}

// Line is a two-point Polygon.
type Line struct{ Polygon }

// NewLine builds a Line between p0 and p1.
func NewLine(lineWidth float64, p0, p1 vec.Vec2) *Line {
	return &Line{*NewPolygon(lineWidth, []vec.Vec2{p0, p1})}
}

// DebugString renders the line's stable diagnostic form.
func (l *Line) DebugString() string {
	return fmt.Sprintf("<line bbox=%s>", l.bbox)
}

// Rect is a four-point Polygon describing an axis-aligned rectangle.
type Rect struct{ Polygon }

// NewRect builds a Rect from a bbox.
func NewRect(lineWidth float64, b geom.Bbox) *Rect {
	pts := []vec.Vec2{
		{X: b.X0, Y: b.Y0},
		{X: b.X1, Y: b.Y0},
		{X: b.X1, Y: b.Y1},
		{X: b.X0, Y: b.Y1},
	}
	return &Rect{*NewPolygon(lineWidth, pts)}
}

// DebugString renders the rect's stable diagnostic form.
func (r *Rect) DebugString() string {
	return fmt.Sprintf("<rect bbox=%s>", r.bbox)
}

// Image is an opaque raster payload placed on the page.
type Image struct {
	Name      string
	Subtype   string
	SrcWidth  int
	SrcHeight int
	Data      []byte

	bbox geom.Bbox
}

// NewImage builds an Image with the given bbox.
func NewImage(name, subtype string, srcWidth, srcHeight int, b geom.Bbox, data []byte) *Image {
	return &Image{Name: name, Subtype: subtype, SrcWidth: srcWidth, SrcHeight: srcHeight, Data: data, bbox: b}
}

// Bbox returns the image's bounding box.
func (im *Image) Bbox() geom.Bbox { return im.bbox }

// DebugString renders the image's stable diagnostic form.
func (im *Image) DebugString() string {
	return fmt.Sprintf("<image %s %s %dx%d bbox=%s>", im.Name, im.Subtype, im.SrcWidth, im.SrcHeight, im.bbox)
}
