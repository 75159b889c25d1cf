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

// Package geom provides the geometric primitives shared by the layout
// engine: points, affine matrices and axis-aligned bounding boxes, plus
// the overlap and distance predicates the clustering algorithms are
// built on.
package geom

import (
	"fmt"
	"math"
)

// Point is a location in PDF user space (y-up).
type Point struct {
	X, Y float64
}

// Matrix is a 6-component affine transform (a,b,c,d,e,f) mapping (x,y) to
// (a*x+c*y+e, b*x+d*y+f).
type Matrix struct {
	A, B, C, D, E, F float64
}

// IdentityMatrix is the matrix that leaves every point unchanged.
var IdentityMatrix = Matrix{A: 1, D: 1}

// Apply maps p through the matrix, including translation.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// ApplyNorm maps p through the matrix's linear part only, omitting the
// translation component (e,f). This is used for displacement vectors,
// such as vertical-writing advances, which must not pick up the glyph's
// placement offset.
func (m Matrix) ApplyNorm(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y,
		Y: m.B*p.X + m.D*p.Y,
	}
}

// Mul composes two matrices so that (m.Mul(other)).Apply(p) equals
// other.Apply(m.Apply(p)) — m is applied first, then other.
func (m Matrix) Mul(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.C,
		B: m.A*other.B + m.B*other.D,
		C: m.C*other.A + m.D*other.C,
		D: m.C*other.B + m.D*other.D,
		E: m.E*other.A + m.F*other.C + other.E,
		F: m.E*other.B + m.F*other.D + other.F,
	}
}

// IsUpright reports whether the matrix preserves orientation: a glyph
// placed with this matrix is upright iff a*d>0 and b*c<=0.
func (m Matrix) IsUpright() bool {
	return m.A*m.D > 0 && m.B*m.C <= 0
}

// Bbox is an axis-aligned bounding box, always canonicalized so that
// X0<=X1 and Y0<=Y1.
type Bbox struct {
	X0, Y0, X1, Y1 float64
}

// NewBbox canonicalizes the four coordinates into a Bbox, swapping
// endpoints as needed so that X0<=X1 and Y0<=Y1. Every Bbox in this
// package is constructed through this function, which is how invariant
// 1 (x0<=x1, y0<=y1) is enforced unconditionally.
func NewBbox(x0, y0, x1, y1 float64) Bbox {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Bbox{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Width returns x1-x0.
func (b Bbox) Width() float64 { return b.X1 - b.X0 }

// Height returns y1-y0.
func (b Bbox) Height() float64 { return b.Y1 - b.Y0 }

// IsZero reports whether b is the zero-value bbox, i.e. no bbox has
// been fixated yet.
func (b Bbox) IsZero() bool {
	return b.X0 == 0 && b.Y0 == 0 && b.X1 == 0 && b.Y1 == 0
}

// Union returns the smallest bbox containing both b and other.
func (b Bbox) Union(other Bbox) Bbox {
	return Bbox{
		X0: math.Min(b.X0, other.X0),
		Y0: math.Min(b.Y0, other.Y0),
		X1: math.Max(b.X1, other.X1),
		Y1: math.Max(b.Y1, other.Y1),
	}
}

// Area returns the bbox's width*height.
func (b Bbox) Area() float64 { return b.Width() * b.Height() }

// UnionAll returns the bbox covering every bbox in bs. UnionAll of an
// empty slice returns the zero Bbox.
func UnionAll(bs []Bbox) Bbox {
	if len(bs) == 0 {
		return Bbox{}
	}
	result := bs[0]
	for _, b := range bs[1:] {
		result = result.Union(b)
	}
	return result
}

// String renders the bbox in the stable "x0,y0,x1,y1" debug format with
// three decimal places, matching the diagnostic surface used for golden
// tests.
func (b Bbox) String() string {
	return fmt.Sprintf("%.3f,%.3f,%.3f,%.3f", b.X0, b.Y0, b.X1, b.Y1)
}
