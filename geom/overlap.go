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

import "math"

// HOverlaps reports whether a and b overlap horizontally.
func HOverlaps(a, b Bbox) bool {
	return b.X0 <= a.X1 && a.X0 <= b.X1
}

// HDistance returns the horizontal gap between a and b: 0 if they
// overlap horizontally, otherwise the shorter of the two possible
// overhangs.
func HDistance(a, b Bbox) float64 {
	if HOverlaps(a, b) {
		return 0
	}
	return math.Min(math.Abs(a.X0-b.X1), math.Abs(a.X1-b.X0))
}

// HOverlapLen returns the horizontal overlap "length" of a and b: 0 if
// they do not overlap horizontally, otherwise min(|a.X0-b.X1|,
// |a.X1-b.X0|).
//
// This is NOT the width of the geometric intersection: it is the
// shorter of the two overhang distances, guarded by the overlap check.
// The line-builder thresholds are calibrated against this exact
// definition; substituting true intersection width changes which
// glyphs cluster into a line.
func HOverlapLen(a, b Bbox) float64 {
	if !HOverlaps(a, b) {
		return 0
	}
	return math.Min(math.Abs(a.X0-b.X1), math.Abs(a.X1-b.X0))
}

// VOverlaps reports whether a and b overlap vertically.
func VOverlaps(a, b Bbox) bool {
	return b.Y0 <= a.Y1 && a.Y0 <= b.Y1
}

// VDistance returns the vertical gap between a and b: 0 if they overlap
// vertically, otherwise the shorter of the two possible overhangs.
func VDistance(a, b Bbox) float64 {
	if VOverlaps(a, b) {
		return 0
	}
	return math.Min(math.Abs(a.Y0-b.Y1), math.Abs(a.Y1-b.Y0))
}

// VOverlapLen returns the vertical overlap "length" of a and b,
// symmetric to HOverlapLen: 0 if they do not overlap vertically,
// otherwise min(|a.Y0-b.Y1|, |a.Y1-b.Y0|).
func VOverlapLen(a, b Bbox) float64 {
	if !VOverlaps(a, b) {
		return 0
	}
	return math.Min(math.Abs(a.Y0-b.Y1), math.Abs(a.Y1-b.Y0))
}
