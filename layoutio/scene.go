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

// Package layoutio decodes the JSON scene description format used by
// cmd/layoutdump and the package's own tests: a stand-in for the real
// PDF content-stream decoder and font layer, which are out of scope
// for this module. See doc.go for the format.
package layoutio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-pdflayout/pdflayout/geom"
	"github.com/go-pdflayout/pdflayout/layout"
	"seehuhn.de/go/geom/vec"
)

// Scene is the decoded result of Load: one page plus the parameters
// requested for it.
type Scene struct {
	Page   *layout.Page
	Params *layout.Params
}

type sceneFile struct {
	ID       any         `json:"id"`
	Bbox     [4]float64  `json:"bbox"`
	Rotation int         `json:"rotation"`
	Params   *paramsJSON `json:"params"`
	Items    []itemJSON  `json:"items"`
}

type paramsJSON struct {
	Direction   string   `json:"direction"`
	LineOverlap *float64 `json:"line_overlap"`
	CharMargin  *float64 `json:"char_margin"`
	LineMargin  *float64 `json:"line_margin"`
	WordMargin  *float64 `json:"word_margin"`
}

type itemJSON struct {
	Kind string `json:"kind"`

	// glyph
	Matrix       *[6]float64 `json:"matrix,omitempty"`
	Font         string      `json:"font,omitempty"`
	FontSize     float64     `json:"font_size,omitempty"`
	Advance      float64     `json:"advance,omitempty"`
	Vertical     bool        `json:"vertical,omitempty"`
	Text         string      `json:"text,omitempty"`
	Descent      float64     `json:"descent,omitempty"`
	Displacement float64     `json:"displacement,omitempty"`

	// polygon / line / rect
	Points    [][2]float64 `json:"points,omitempty"`
	LineWidth float64      `json:"line_width,omitempty"`
	Bbox      *[4]float64  `json:"bbox,omitempty"`

	// image
	Name      string `json:"name,omitempty"`
	Subtype   string `json:"subtype,omitempty"`
	SrcWidth  int    `json:"src_width,omitempty"`
	SrcHeight int    `json:"src_height,omitempty"`
	Data      []byte `json:"data,omitempty"`

	// figure
	UnitBbox *[4]float64 `json:"unit_bbox,omitempty"`
	Children []itemJSON  `json:"children,omitempty"`
}

// Load decodes one scene from r: a single page's bbox, rotation,
// analysis parameters and item list.
func Load(r io.Reader) (*Scene, error) {
	var raw sceneFile
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("layoutio: decoding scene: %w", err)
	}

	children, err := decodeItems(raw.Items)
	if err != nil {
		return nil, err
	}

	bbox := geom.NewBbox(raw.Bbox[0], raw.Bbox[1], raw.Bbox[2], raw.Bbox[3])
	page := layout.NewPage(raw.ID, bbox, raw.Rotation, children)

	params := decodeParams(raw.Params)
	return &Scene{Page: page, Params: params}, nil
}

func decodeParams(p *paramsJSON) *layout.Params {
	if p == nil {
		return layout.DefaultParams()
	}
	out := layout.DefaultParams()
	if p.Direction == "vertical" {
		out.Direction = layout.Vertical
	}
	if p.LineOverlap != nil {
		out.LineOverlap = *p.LineOverlap
	}
	if p.CharMargin != nil {
		out.CharMargin = *p.CharMargin
	}
	if p.LineMargin != nil {
		out.LineMargin = *p.LineMargin
	}
	if p.WordMargin != nil {
		out.WordMargin = *p.WordMargin
	}
	return out
}

func decodeItems(items []itemJSON) ([]layout.Item, error) {
	out := make([]layout.Item, 0, len(items))
	for _, it := range items {
		decoded, err := decodeItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, decoded)
	}
	return out, nil
}

func decodeItem(it itemJSON) (layout.Item, error) {
	switch it.Kind {
	case "glyph":
		if it.Matrix == nil {
			return nil, fmt.Errorf("layoutio: glyph item missing matrix")
		}
		m := matrixFrom(*it.Matrix)
		return layout.NewGlyph(m, it.Font, it.FontSize, it.Advance, it.Vertical, it.Text, it.Descent, it.Displacement), nil

	case "polygon":
		return layout.NewPolygon(it.LineWidth, vecsFrom(it.Points)), nil

	case "line":
		if len(it.Points) != 2 {
			return nil, fmt.Errorf("layoutio: line item requires exactly 2 points, got %d", len(it.Points))
		}
		pts := vecsFrom(it.Points)
		return layout.NewLine(it.LineWidth, pts[0], pts[1]), nil

	case "rect":
		if it.Bbox == nil {
			return nil, fmt.Errorf("layoutio: rect item missing bbox")
		}
		b := it.Bbox
		return layout.NewRect(it.LineWidth, geom.NewBbox(b[0], b[1], b[2], b[3])), nil

	case "image":
		var b geom.Bbox
		if it.Bbox != nil {
			b = geom.NewBbox(it.Bbox[0], it.Bbox[1], it.Bbox[2], it.Bbox[3])
		}
		return layout.NewImage(it.Name, it.Subtype, it.SrcWidth, it.SrcHeight, b, it.Data), nil

	case "figure":
		if it.Matrix == nil || it.UnitBbox == nil {
			return nil, fmt.Errorf("layoutio: figure item requires matrix and unit_bbox")
		}
		m := matrixFrom(*it.Matrix)
		ub := it.UnitBbox
		unitBox := geom.NewBbox(ub[0], ub[1], ub[2], ub[3])
		fig := layout.NewFigure(it.Name, unitBox, m)
		children, err := decodeItems(it.Children)
		if err != nil {
			return nil, err
		}
		for _, c := range children {
			fig.Add(c)
		}
		return fig, nil

	default:
		return nil, fmt.Errorf("layoutio: unknown item kind %q", it.Kind)
	}
}

func matrixFrom(a [6]float64) geom.Matrix {
	return geom.Matrix{A: a[0], B: a[1], C: a[2], D: a[3], E: a[4], F: a[5]}
}

func vecsFrom(pts [][2]float64) []vec.Vec2 {
	out := make([]vec.Vec2, len(pts))
	for i, p := range pts {
		out[i] = vec.Vec2{X: p[0], Y: p[1]}
	}
	return out
}
