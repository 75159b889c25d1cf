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

	"github.com/go-pdflayout/pdflayout/geom"
)

// Figure is a container whose bbox is the image of a unit-style bbox
// under a matrix. It may itself contain glyphs and nested figures; the
// page analyzer does not descend into figures automatically (see
// AnalyzeFigure), but a downstream consumer may re-run the same
// pipeline on a figure's children.
type Figure struct {
	Container
	Name   string
	Matrix geom.Matrix
}

// NewFigure builds a Figure. unitBox is mapped through m by its four
// corners to produce the figure's bbox, matching the source's own
// corner-mapping construction rather than transforming the box's
// diagonal alone (which would be wrong for rotations).
func NewFigure(name string, unitBox geom.Bbox, m geom.Matrix) *Figure {
	corners := []geom.Point{
		{X: unitBox.X0, Y: unitBox.Y0},
		{X: unitBox.X1, Y: unitBox.Y0},
		{X: unitBox.X0, Y: unitBox.Y1},
		{X: unitBox.X1, Y: unitBox.Y1},
	}
	x0, y0 := m.Apply(corners[0]).X, m.Apply(corners[0]).Y
	bbox := geom.NewBbox(x0, y0, x0, y0)
	for _, c := range corners[1:] {
		p := m.Apply(c)
		bbox = bbox.Union(geom.NewBbox(p.X, p.Y, p.X, p.Y))
	}

	f := &Figure{Name: name, Matrix: m}
	f.SetBbox(bbox)
	return f
}

// DebugString renders the figure's stable diagnostic form.
func (f *Figure) DebugString() string {
	return fmt.Sprintf("<figure %s bbox=%s>", f.Name, f.Bbox())
}
