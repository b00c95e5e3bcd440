// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package code128

import (
	"bytes"
	"image/png"
	"io"
)

// pngEncoder uses the best compression: barcode images are long runs
// of identical rows and compress to a few hundred bytes.
var pngEncoder = png.Encoder{CompressionLevel: png.BestCompression}

// PNG returns a PNG image displaying the code.
//
// The image is 1 bit per pixel with a two colour palette.
// PNG returns nil if the code is empty or cannot be rendered.
func (c *Code) PNG() []byte {
	var b bytes.Buffer
	if err := c.EncodePNG(&b); err != nil {
		return nil
	}
	return b.Bytes()
}

// EncodePNG writes a PNG image displaying the code to w.
func (c *Code) EncodePNG(w io.Writer) error {
	if w == nil {
		return ErrArgs
	}
	if _, _, err := c.dims(); err != nil {
		return err
	}
	return pngEncoder.Encode(w, c.Image())
}
