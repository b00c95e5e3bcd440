// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vector renders Code 128 barcodes as SVG and PDF using
// github.com/tdewolff/canvas.
package vector // import "github.com/unixdj/code128/vector"

import (
	"errors"
	"fmt"
	"io"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/svg"

	"github.com/unixdj/code128"
)

// A Format is an output file format.
type Format int

const (
	SVG Format = iota // Scalable Vector Graphics
	PDF               // Portable Document Format
)

func (f Format) String() string {
	switch f {
	case SVG:
		return "svg"
	case PDF:
		return "pdf"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

var ErrFormat = errors.New("vector: unknown format")

// A Renderer writes barcodes to an io.Writer.  Dimensions are in
// millimetres: a module is Unit times the code's Width wide.
type Renderer struct {
	W      io.Writer
	Format Format
	Unit   float64 // millimetres per bar unit, 1 if zero
}

var _ code128.Renderer = (*Renderer)(nil)

// New returns a Renderer writing format f to w.
func New(w io.Writer, f Format) *Renderer {
	return &Renderer{W: w, Format: f, Unit: 1}
}

// Render writes c with bars height millimetres high, surrounded by
// c.Border modules of quiet zone.  It writes nothing for an empty code.
func (r *Renderer) Render(c *code128.Code, height float64) error {
	if c == nil || r.W == nil || height <= 0 || c.Border < 0 {
		return code128.ErrArgs
	}
	if c.Empty() {
		return nil
	}
	unit := r.unit()
	width := Width(c, unit)
	cv := Canvas(c, unit, height)
	switch r.Format {
	case SVG:
		w := svg.New(r.W, width, height, nil)
		cv.RenderTo(w)
		return w.Close()
	case PDF:
		w := pdf.New(r.W, width, height, nil)
		w.SetInfo("Code 128 "+c.Text, "", "", "", "code128")
		cv.RenderTo(w)
		return w.Close()
	}
	return ErrFormat
}

func (r *Renderer) unit() float64 {
	if r.Unit <= 0 {
		return 1
	}
	return r.Unit
}

// Canvas draws c on a new canvas, unit millimetres per bar unit, with
// bars height millimetres high.
func Canvas(c *code128.Code, unit, height float64) *canvas.Canvas {
	mw := c.Width * unit
	width := Width(c, unit)
	cv := canvas.New(width, height)
	ctx := canvas.NewContext(cv)
	bg, fg := c.Colors()
	ctx.SetStrokeColor(canvas.Transparent)
	ctx.SetFillColor(bg)
	ctx.DrawPath(0, 0, canvas.Rectangle(width, height))
	ctx.SetFillColor(fg)
	for _, b := range c.Bars() {
		if b.Black {
			ctx.DrawPath(float64(b.X+c.Border)*mw, 0,
				canvas.Rectangle(float64(b.Width)*mw, height))
		}
	}
	return cv
}

// Width returns the width in millimetres of c including quiet zone.
func Width(c *code128.Code, unit float64) float64 {
	return float64(c.Size+2*c.Border) * c.Width * unit
}

// Height returns the height in millimetres matching c.Height modules.
func Height(c *code128.Code, unit float64) float64 {
	return float64(c.Height) * c.Width * unit
}

// EncodeSVG writes c to w as SVG, one millimetre per bar unit.
func EncodeSVG(c *code128.Code, w io.Writer) error {
	return New(w, SVG).Render(c, Height(c, 1))
}

// EncodePDF writes c to w as a single page PDF, one millimetre per bar
// unit.
func EncodePDF(c *code128.Code, w io.Writer) error {
	return New(w, PDF).Render(c, Height(c, 1))
}
