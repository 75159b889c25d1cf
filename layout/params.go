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

import "fmt"

// Direction selects the writing direction the line and block builders
// cluster along.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Params is the parameter record an upstream collaborator supplies to
// enable layout analysis. Its absence (a nil *Params passed to
// Analyze) disables analysis: the page is returned with its original
// objects intact.
type Params struct {
	Direction   Direction
	LineOverlap float64
	CharMargin  float64
	LineMargin  float64
	WordMargin  float64
}

// DefaultParams returns the parameter record's documented defaults.
func DefaultParams() *Params {
	return &Params{
		Direction:   Horizontal,
		LineOverlap: 0.5,
		CharMargin:  3.0,
		LineMargin:  0.5,
		WordMargin:  0.1,
	}
}

func (p *Params) String() string {
	return fmt.Sprintf("<Params direction=%s char_margin=%.1f line_margin=%.1f word_margin=%.1f>",
		p.Direction, p.CharMargin, p.LineMargin, p.WordMargin)
}
