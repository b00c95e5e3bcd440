// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package code128

import (
	"bufio"
	"io"
	"strconv"
)

// EncodePBM writes a Portable Bit Map image displaying the code to w,
// for use with netpbm.  EncodePBM disregards c.Palette, as other PNM
// formats are not supported.
func (c *Code) EncodePBM(w io.Writer) error {
	width, height, err := c.dims()
	if err != nil {
		return err
	}
	b := bufio.NewWriter(w)
	if _, err := b.WriteString("P4\n" + strconv.Itoa(width) + " " +
		strconv.Itoa(height) + "\n"); err != nil {
		return err
	}
	var white byte
	if c.Reverse {
		white = 255
	}
	row := pbmRow(c, width, white)
	for i := 0; i < height; i++ {
		if _, err := b.Write(row); err != nil {
			return err
		}
	}
	return b.Flush()
}

// pbmRow encodes a row of pixels in PBM format, 1 for black.  All rows
// of a linear code are the same.
func pbmRow(c *Code, width int, white byte) []byte {
	row := make([]byte, (width+7)/8)
	for i := range row {
		row[i] = white
	}
	scale := c.Scale
	x := c.Border * scale
	for m := 0; m < c.Size; m++ {
		if c.Black(m) {
			for end := x + scale; x < end; x++ {
				row[x/8] ^= 0x80 >> uint(x&7)
			}
		} else {
			x += scale
		}
	}
	return row
}
