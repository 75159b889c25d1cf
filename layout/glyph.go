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

// Glyph is a single positioned character quad. Its Unicode text is
// supplied by the font layer; when the font has no mapping for the
// character code, the literal replacement "?" is used and Glyph treats
// it as ordinary text — the analyzer never rejects it.
type Glyph struct {
	Matrix   geom.Matrix
	Font     string
	FontSize float64
	Advance  float64
	Vertical bool
	Text     string

	bbox geom.Bbox
}

// NewGlyph builds a Glyph and derives its bbox from the character
// matrix plus the font layer's pre-scaled descent (horizontal writing)
// or displacement (vertical writing) contribution. descent and
// displacement are already multiplied by font size by the caller; this
// package performs no font metrics computation of its own.
func NewGlyph(m geom.Matrix, font string, fontSize, advance float64, vertical bool, text string, descent, displacement float64) *Glyph {
	g := &Glyph{
		Matrix:   m,
		Font:     font,
		FontSize: fontSize,
		Advance:  advance,
		Vertical: vertical,
		Text:     text,
	}

	tx, ty := m.E, m.F
	if vertical {
		disp := m.ApplyNorm(geom.Point{X: 0, Y: displacement})
		d := m.ApplyNorm(geom.Point{X: fontSize, Y: advance})
		tx -= d.X / 2
		ty += disp.Y
		g.bbox = geom.NewBbox(tx, ty+d.Y, tx+d.X, ty)
	} else {
		desc := m.ApplyNorm(geom.Point{X: 0, Y: descent})
		d := m.ApplyNorm(geom.Point{X: advance, Y: fontSize})
		ty += desc.Y
		g.bbox = geom.NewBbox(tx, ty, tx+d.X, ty+d.Y)
	}
	return g
}

// Bbox returns the glyph's bounding box.
func (g *Glyph) Bbox() geom.Bbox { return g.bbox }

// TextValue returns the glyph's Unicode text.
func (g *Glyph) TextValue() string { return g.Text }

// IsUpright reports whether the glyph's matrix preserves orientation
// (invariant 2: a*d>0, b*c<=0). Only upright glyphs with real text
// participate in clustering.
func (g *Glyph) IsUpright() bool { return g.Matrix.IsUpright() }

// Size returns the larger of the glyph's bbox dimensions.
func (g *Glyph) Size() float64 {
	w, h := g.bbox.Width(), g.bbox.Height()
	if w > h {
		return w
	}
	return h
}

// DebugString renders the glyph's stable diagnostic form: kind, bbox,
// matrix, font name, font size and Unicode text.
func (g *Glyph) DebugString() string {
	m := g.Matrix
	return fmt.Sprintf("<glyph matrix=[%.3f,%.3f,%.3f,%.3f,%.3f,%.3f] font=%s fontsize=%.1f bbox=%s text=%q>",
		m.A, m.B, m.C, m.D, m.E, m.F, g.Font, g.FontSize, g.bbox, g.Text)
}

// AnonText is a synthetic text token with no geometry: a single space
// or a terminal newline, inserted by the line builder. It carries text
// but deliberately does not implement Spatial — it must never be
// placed in a Plane or participate in clustering.
type AnonText struct {
	Text string
}

// TextValue returns the token's text.
func (a *AnonText) TextValue() string { return a.Text }

// DebugString renders the token's stable diagnostic form.
func (a *AnonText) DebugString() string {
	return fmt.Sprintf("<anon %q>", a.Text)
}
