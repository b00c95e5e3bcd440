// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package code128

import "strings"

// Block elements for pairs of modules: none, right, left and both
// black.
var blocks = [4]string{" ", "▐", "▌", "█"}

// TextRows returns the number of text lines String uses for c.
func (c *Code) TextRows() int {
	return max(c.Height/10, 1)
}

// String returns the code as UTF-8 text, two modules per character
// cell, including the quiet zone.  c.Palette and c.Scale are ignored.
// An empty code is an empty string.
func (c *Code) String() string {
	if c.Empty() {
		return ""
	}
	bord := max(c.Border, 0)
	var line strings.Builder
	for x := -bord; x < c.Size+bord; x += 2 {
		i := 0
		if c.Black(x) != c.Reverse {
			i |= 2
		}
		if c.Black(x+1) != c.Reverse {
			i |= 1
		}
		line.WriteString(blocks[i])
	}
	line.WriteByte('\n')
	return strings.Repeat(line.String(), c.TextRows())
}
