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

package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewBboxCanonicalizes(t *testing.T) {
	tests := []struct {
		name                   string
		x0, y0, x1, y1         float64
		wantX0, wantY0, wantX1 float64
		wantY1                 float64
	}{
		{"already canonical", 0, 0, 10, 10, 0, 0, 10, 10},
		{"swapped x", 10, 0, 0, 10, 0, 0, 10, 10},
		{"swapped y", 0, 10, 10, 0, 0, 0, 10, 10},
		{"swapped both", 10, 10, 0, 0, 0, 0, 10, 10},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBbox(tc.x0, tc.y0, tc.x1, tc.y1)
			want := Bbox{X0: tc.wantX0, Y0: tc.wantY0, X1: tc.wantX1, Y1: tc.wantY1}
			if d := cmp.Diff(want, b); d != "" {
				t.Error(d)
			}
			if b.X0 > b.X1 || b.Y0 > b.Y1 {
				t.Errorf("invariant violated: %v", b)
			}
		})
	}
}

func TestBboxUnion(t *testing.T) {
	a := NewBbox(0, 0, 10, 10)
	b := NewBbox(5, 5, 20, 8)
	got := a.Union(b)
	want := NewBbox(0, 0, 20, 10)
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestUnionAllEmpty(t *testing.T) {
	got := UnionAll(nil)
	if d := cmp.Diff(Bbox{}, got); d != "" {
		t.Error(d)
	}
}

func TestBboxString(t *testing.T) {
	b := NewBbox(1, 2, 3.5, 4.125)
	got := b.String()
	want := "1.000,2.000,3.500,4.125"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMatrixIdentity(t *testing.T) {
	p := Point{X: 3, Y: 4}
	got := IdentityMatrix.Apply(p)
	if d := cmp.Diff(p, got); d != "" {
		t.Error(d)
	}
}

func TestMatrixApplyTranslate(t *testing.T) {
	m := Matrix{A: 1, D: 1, E: 5, F: -2}
	got := m.Apply(Point{X: 1, Y: 1})
	want := Point{X: 6, Y: -1}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestMatrixApplyNormIgnoresTranslation(t *testing.T) {
	m := Matrix{A: 2, D: 3, E: 100, F: 100}
	got := m.ApplyNorm(Point{X: 1, Y: 1})
	want := Point{X: 2, Y: 3}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestMatrixIsUpright(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want bool
	}{
		{"identity", IdentityMatrix, true},
		{"upside down", Matrix{A: 1, D: -1}, false},
		{"mirrored", Matrix{A: -1, D: 1}, false},
		{"rotated 90", Matrix{B: 1, C: -1}, false},
		{"degenerate", Matrix{}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.m.IsUpright(); got != tc.want {
				t.Errorf("IsUpright() = %v, want %v", got, tc.want)
			}
		})
	}
}
