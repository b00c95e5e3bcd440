// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package code128

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"
)

// PointsPerUnit is the size of a bar unit in PostScript points, making
// a unit one millimetre.
const PointsPerUnit = 72 / 25.4

// EncodeEPS writes an Encapsulated PostScript image displaying the code
// to w.  A module is c.Width millimetres wide, bars are c.Height modules
// high.  c.Scale is ignored.
func (c *Code) EncodeEPS(w io.Writer) error {
	if c.Height < 1 || c.Border < 0 {
		return ErrArgs
	}
	if c.Empty() {
		return ErrEmpty
	}
	mw := c.Width * PointsPerUnit
	width := float64(c.Size+2*c.Border) * mw
	height := float64(c.Height) * mw
	b := bufio.NewWriter(w)
	fmt.Fprintf(b, `%%!PS-Adobe-3.0 EPSF-3.0
%%%%Creator: Code 128 https://github.com/unixdj/code128
%%%%Title: Code 128 %s
%%%%BoundingBox: 0 0 %d %d
%%%%HiResBoundingBox: 0 0 %.4f %.4f
%%%%EndComments
%%%%EndProlog
<< >> begin
gsave
/b { 0 exch %.4f rectfill } def
`,
		psTitle(c.Text), int(math.Ceil(width)), int(math.Ceil(height)),
		width, height, height)
	bg, fg := c.Colors()
	if !isWhite(bg) {
		fmt.Fprintf(b, "%s setrgbcolor\n0 0 %.4f %.4f rectfill\n",
			psColor(bg), width, height)
	}
	fmt.Fprintf(b, "%s setrgbcolor\n", psColor(fg))
	for _, bar := range c.Bars() {
		if bar.Black {
			fmt.Fprintf(b, "%.4f %.4f b\n",
				float64(bar.X+c.Border)*mw, float64(bar.Width)*mw)
		}
	}
	io.WriteString(b, "grestore\nend\n%%Trailer\n%%EOF\n")
	return b.Flush()
}

// psTitle returns text safe for a DSC comment line.
func psTitle(text string) string {
	return strings.Map(func(r rune) rune {
		if r < ' ' || r > '~' {
			return '?'
		}
		return r
	}, text)
}

func psColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("%.3g %.3g %.3g",
		float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff)
}

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r&g&b == 0xffff
}
