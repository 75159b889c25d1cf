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

package cluster

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-pdflayout/pdflayout/geom"
)

func box(x0, y0, x1, y1 float64) geom.Bbox {
	return geom.NewBbox(x0, y0, x1, y1)
}

func TestBuildLinesChainsTwoGlyphsNoGap(t *testing.T) {
	boxes := []geom.Bbox{
		box(0, 0, 10, 10),
		box(10, 0, 20, 10),
	}
	lines := BuildLines(boxes, false, 0.5, 3.0, 0.1)
	if len(lines) != 1 {
		t.Fatalf("want 1 line, got %d", len(lines))
	}
	want := Line{Indices: []int{0, 1}, SpaceBefore: []bool{false, false}}
	if diff := cmp.Diff(want, lines[0]); diff != "" {
		t.Errorf("line mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildLinesInsertsWordBreakBeyondMargin(t *testing.T) {
	// Second box starts far enough past the first's trailing edge that
	// the gap (15) exceeds word_margin * width (1).
	boxes := []geom.Bbox{
		box(0, 0, 10, 10),
		box(25, 0, 35, 10),
	}
	lines := BuildLines(boxes, false, 0.5, 30.0, 0.1)
	if len(lines) != 1 {
		t.Fatalf("want 1 line, got %d", len(lines))
	}
	if !lines[0].SpaceBefore[1] {
		t.Errorf("expected SpaceBefore[1] = true for a gap past word_margin")
	}
}

func TestBuildLinesExactMarginGapNoSpace(t *testing.T) {
	// trailing=10, next.X0=11 -> gap is 1, exactly word_margin * width
	// (0.1 * 10), so trailing < x0-margin is false: no space inserted.
	boxes := []geom.Bbox{
		box(0, 0, 10, 10),
		box(11, 0, 21, 10),
	}
	lines := BuildLines(boxes, false, 0.5, 3.0, 0.1)
	if lines[0].SpaceBefore[1] {
		t.Errorf("expected no space at a gap equal to the word margin")
	}
}

func TestBuildLinesSplitsUnalignedGlyphsIntoSeparateLines(t *testing.T) {
	boxes := []geom.Bbox{
		box(0, 0, 10, 10),
		box(0, 100, 10, 110), // far above, no vertical overlap
	}
	lines := BuildLines(boxes, false, 0.5, 3.0, 0.1)
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %d", len(lines))
	}
}

func TestBuildLinesVerticalOrdersTopToBottom(t *testing.T) {
	boxes := []geom.Bbox{
		box(0, 0, 10, 10),  // y1=10
		box(0, 10, 10, 20), // y1=20, should sort before the first
	}
	lines := BuildLines(boxes, true, 0.5, 3.0, 0.1)
	if len(lines) != 1 {
		t.Fatalf("want 1 line, got %d", len(lines))
	}
	want := []int{1, 0}
	if diff := cmp.Diff(want, lines[0].Indices); diff != "" {
		t.Errorf("vertical order mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildLinesEmptyInput(t *testing.T) {
	lines := BuildLines(nil, false, 0.5, 3.0, 0.1)
	if len(lines) != 0 {
		t.Errorf("want 0 lines, got %d", len(lines))
	}
}
