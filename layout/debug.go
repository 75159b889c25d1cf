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
	"io"
	"strings"
)

// Dump writes item's debug string to w, followed by the debug strings
// of its children (if any), indented two spaces per nesting level. It
// is the tree-shaped counterpart of the single-line DebugString format,
// used by cmd/layoutdump to print a page's reading order.
func Dump(w io.Writer, item Item, depth int) {
	fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), item.DebugString())
	var children []Item
	switch v := item.(type) {
	case *Page:
		children = v.Children
	case *Figure:
		children = v.Children
	case *TextGroup:
		children = v.Children
	case *TextBlock:
		children = v.Children
	case *TextLine:
		children = v.Children
	}
	for _, c := range children {
		Dump(w, c, depth+1)
	}
}
