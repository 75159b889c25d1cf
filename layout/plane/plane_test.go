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

package plane

import (
	"testing"

	"github.com/go-pdflayout/pdflayout/geom"
)

type box struct {
	b geom.Bbox
}

func (bx *box) Bbox() geom.Bbox { return bx.b }

func TestFindReturnsOverlappingItemsInInsertionOrder(t *testing.T) {
	a := &box{geom.NewBbox(0, 0, 10, 10)}
	b := &box{geom.NewBbox(5, 5, 15, 15)}
	c := &box{geom.NewBbox(100, 100, 110, 110)}
	p := New([]Item{c, a, b}) // insertion order: c, a, b

	got := p.Find(geom.NewBbox(0, 0, 20, 20))
	if len(got) != 2 {
		t.Fatalf("Find returned %d items, want 2", len(got))
	}
	// c (index 0) is out of range; a (index 1) and b (index 2) must
	// come back in that insertion order, a before b.
	if got[0] != Item(a) || got[1] != Item(b) {
		t.Errorf("Find order = %v, want [a, b] (insertion order)", got)
	}
}

func TestFindEmptyForNonOverlappingRect(t *testing.T) {
	a := &box{geom.NewBbox(0, 0, 10, 10)}
	p := New([]Item{a})
	got := p.Find(geom.NewBbox(100, 100, 110, 110))
	if len(got) != 0 {
		t.Errorf("Find returned %d items, want 0", len(got))
	}
}

func TestFindIncludesSelf(t *testing.T) {
	a := &box{geom.NewBbox(0, 0, 10, 10)}
	p := New([]Item{a})
	got := p.Find(a.Bbox())
	if len(got) != 1 || got[0] != Item(a) {
		t.Errorf("Find(self.Bbox()) = %v, want [a]", got)
	}
}

func TestFindTouchingBoxesOverlap(t *testing.T) {
	a := &box{geom.NewBbox(0, 0, 10, 10)}
	b := &box{geom.NewBbox(10, 0, 20, 10)} // touches a at x=10
	p := New([]Item{a, b})
	got := p.Find(geom.NewBbox(0, 0, 10, 10))
	if len(got) != 2 {
		t.Errorf("Find returned %d items, want 2 (touching boxes overlap)", len(got))
	}
}
