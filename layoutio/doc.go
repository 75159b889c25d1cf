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

package layoutio

// A scene file is a single JSON object describing one page:
//
//	{
//	  "id": "page-1",
//	  "bbox": [0, 0, 612, 792],
//	  "rotation": 0,
//	  "params": {
//	    "direction": "horizontal",
//	    "char_margin": 3.0,
//	    "line_margin": 0.5,
//	    "word_margin": 0.1,
//	    "line_overlap": 0.5
//	  },
//	  "items": [
//	    {
//	      "kind": "glyph",
//	      "matrix": [10, 0, 0, 10, 72, 700],
//	      "font": "Helvetica",
//	      "font_size": 10,
//	      "advance": 0.6,
//	      "text": "H",
//	      "descent": -0.2
//	    },
//	    {"kind": "rect", "bbox": [0, 0, 100, 20], "line_width": 1},
//	    {"kind": "line", "points": [[0, 0], [10, 10]], "line_width": 1},
//	    {
//	      "kind": "figure",
//	      "name": "Fig1",
//	      "matrix": [1, 0, 0, 1, 0, 0],
//	      "unit_bbox": [0, 0, 1, 1],
//	      "children": []
//	    }
//	  ]
//	}
//
// "params" is optional; a missing field falls back to
// layout.DefaultParams()'s value for that field, and an absent
// "params" object is equivalent to an all-defaults object. Item kinds
// are "glyph", "polygon", "line", "rect", "image" and "figure";
// "figure" items nest their own "children" list recursively using the
// same item shapes. Image "data" is a base64 string per
// encoding/json's standard []byte handling.
