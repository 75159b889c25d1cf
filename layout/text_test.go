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
	"testing"

	"github.com/go-pdflayout/pdflayout/geom"
)

func testGlyph(text string, x0, y0, x1, y1 float64) *Glyph {
	m := geom.Matrix{A: 1, D: 1, E: x0, F: y0}
	return NewGlyph(m, "F", y1-y0, x1-x0, false, text, 0, 0)
}

func TestTextLineTextInterleavesAnonTokens(t *testing.T) {
	a := testGlyph("A", 0, 0, 5, 10)
	b := testGlyph("B", 5, 0, 10, 10)
	line := NewTextLine([]Item{a, &AnonText{Text: " "}, b, &AnonText{Text: "\n"}})
	if got, want := line.Text(), "A B\n"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestTextLineBboxIgnoresAnonText(t *testing.T) {
	a := testGlyph("A", 0, 0, 5, 10)
	line := NewTextLine([]Item{a, &AnonText{Text: "\n"}})
	line.Fixate()
	if diff := line.Bbox(); diff != a.Bbox() {
		t.Errorf("want line bbox %s to equal its only glyph's bbox %s", diff, a.Bbox())
	}
}

func TestTextBlockTextConcatenatesLines(t *testing.T) {
	a := testGlyph("A", 0, 0, 5, 10)
	line1 := NewTextLine([]Item{a, &AnonText{Text: "\n"}})
	b := testGlyph("B", 0, 20, 5, 30)
	line2 := NewTextLine([]Item{b, &AnonText{Text: "\n"}})
	block := NewTextBlock([]Item{line1, line2})
	if got, want := block.Text(), "A\nB\n"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestTextBlockStartsWithNoIndex(t *testing.T) {
	a := testGlyph("A", 0, 0, 5, 10)
	line := NewTextLine([]Item{a})
	block := NewTextBlock([]Item{line})
	if block.Index != NoIndex {
		t.Errorf("want NoIndex, got %d", block.Index)
	}
}

func TestNewTextGroupPanicsOnEmptyMembers(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected NewTextGroup to panic on an empty member list")
		}
	}()
	NewTextGroup(nil)
}

func TestNewTextGroupFixatesImmediately(t *testing.T) {
	a := testGlyph("A", 0, 0, 5, 10)
	line := NewTextLine([]Item{a})
	line.Fixate()
	block := NewTextBlock([]Item{line})
	block.Fixate()
	group := NewTextGroup([]Item{block})
	if group.Bbox() != block.Bbox() {
		t.Errorf("want group bbox %s to equal its only member's bbox %s", group.Bbox(), block.Bbox())
	}
}
