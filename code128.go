// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package code128 encodes Code 128 code set B barcodes.

Encode turns a string into a Code: the start symbol, one symbol per
printable ASCII character, the modulo 103 checksum symbol and the stop
symbol, along with a bar unit width chosen by the length of the string.
Characters outside printable ASCII have no symbol and are skipped, but
still count towards the checksum.  EncodeStrict rejects them instead.

A Code can be drawn by any Renderer, written as PBM, PNG, EPS or text,
or used as an image.Image.  Package vector renders SVG and PDF.
*/
package code128 // import "github.com/unixdj/code128"

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"unicode/utf8"

	"github.com/unixdj/code128/symbol"
)

var (
	ErrArgs       = errors.New("code128: invalid arguments")
	ErrEmpty      = errors.New("code128: empty code")
	ErrLargeImage = errors.New("code128: image too large")
)

// A Role tells where a symbol comes from.
type Role int

const (
	Start    Role = iota // start code B
	Data                 // input character
	Checksum             // checksum symbol
	Stop                 // stop code
)

func (r Role) String() string {
	if r < Start || r > Stop {
		return fmt.Sprintf("Role(%d)", int(r))
	}
	return [...]string{"start", "data", "checksum", "stop"}[r]
}

// A Symbol is an encoded pattern tagged with its role.
type Symbol struct {
	Role    Role
	Index   int // rune index in the text for Data, -1 otherwise
	Pattern symbol.Pattern
}

// Rendering defaults.
const (
	DefaultScale  = 2  // image pixels per module
	DefaultHeight = 50 // bar height in modules
	DefaultBorder = 10 // quiet zone in modules
)

// A Code is an encoded barcode.
//
// The Symbols, Checksum, Width, Bitmap and Size fields are set by Encode.
// The rest control rendering and may be changed.
type Code struct {
	Text     string
	Symbols  []Symbol // start, data, checksum and stop symbols
	Checksum int      // checksum value, 0 to 102, unless empty
	Width    float64  // bar unit width
	Bitmap   []byte   // 1 is black, 0 is white
	Size     int      // number of modules, excluding quiet zone

	Scale   int             // number of image pixels per module
	Height  int             // bar height in modules
	Border  int             // quiet zone in modules on each side
	Palette *[2]color.Color // background and foreground
	Reverse bool            // swap background and foreground
}

// UnitWidth returns the bar unit width for a text of n characters.
// Longer texts get narrower bars.
func UnitWidth(n int) float64 {
	switch {
	case n < 13:
		return 0.85
	case n < 17:
		return 0.75
	case n < 20:
		return 0.65
	}
	return 0.55
}

// Encode returns the Code 128 code set B encoding of text.
//
// Characters without a pattern are left out of the symbols, but are
// weighted into the checksum at their position.  An empty text yields
// an empty Code, which renders as nothing.
//
// Encode is safe for concurrent use.
func Encode(text string) *Code {
	n := utf8.RuneCountInString(text)
	c := &Code{
		Text:   text,
		Width:  UnitWidth(n),
		Scale:  DefaultScale,
		Height: DefaultHeight,
		Border: DefaultBorder,
	}
	if text == "" {
		return c
	}
	c.Symbols = make([]Symbol, 0, n+3)
	c.Symbols = append(c.Symbols, Symbol{Start, -1, symbol.Start})
	i := 0
	for _, r := range text {
		if p, ok := symbol.Lookup(r); ok {
			c.Symbols = append(c.Symbols, Symbol{Data, i, p})
		}
		i++
	}
	c.Checksum = symbol.Checksum(text)
	c.Symbols = append(c.Symbols,
		Symbol{Checksum, -1, checkPattern(c.Checksum)},
		Symbol{Stop, -1, symbol.Stop})
	c.Bitmap, c.Size = bitmap(c.Symbols)
	return c
}

// checkPattern resolves checksum value v to a character and the
// character to its pattern.  Values 95 to 102 resolve to characters
// without a character pattern and are encoded as function symbols.
func checkPattern(v int) symbol.Pattern {
	r, ok := symbol.CheckChar(v)
	if !ok {
		panic(fmt.Sprintf("code128: checksum value %d out of range", v))
	}
	if p, ok := symbol.Lookup(r); ok {
		return p
	}
	p, _ := symbol.ValuePattern(v)
	return p
}

// bitmap packs the modules of symbols, most significant bit first.
func bitmap(symbols []Symbol) ([]byte, int) {
	n := 0
	for _, s := range symbols {
		n += s.Pattern.Len()
	}
	b := make([]byte, (n+7)/8)
	x := 0
	for _, s := range symbols {
		p := s.Pattern
		for i := 0; i < len(p); i++ {
			if p[i] == '1' {
				b[x/8] |= 0x80 >> uint(x&7)
			}
			x++
		}
	}
	return b, n
}

// An UnsupportedError reports a character without a pattern.
type UnsupportedError struct {
	Rune  rune
	Index int // rune index in the text
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("code128: unsupported character %U at position %d",
		e.Rune, e.Index)
}

// EncodeStrict is like Encode, but returns an *UnsupportedError for the
// first character outside printable ASCII.
func EncodeStrict(text string) (*Code, error) {
	i := 0
	for _, r := range text {
		if !symbol.Supported(r) {
			return nil, &UnsupportedError{r, i}
		}
		i++
	}
	return Encode(text), nil
}

// Skipped returns the characters of c.Text left out of the symbols.
func (c *Code) Skipped() []UnsupportedError {
	var e []UnsupportedError
	i := 0
	for _, r := range c.Text {
		if !symbol.Supported(r) {
			e = append(e, UnsupportedError{r, i})
		}
		i++
	}
	return e
}

// Empty reports whether c has no symbols.
func (c *Code) Empty() bool { return len(c.Symbols) == 0 }

// Len returns the number of modules in c, excluding the quiet zone.
func (c *Code) Len() int { return c.Size }

// Black returns true if module x is a bar.  Modules outside the code
// are white.
func (c *Code) Black(x int) bool {
	return 0 <= x && x < c.Size && c.Bitmap[x/8]&(0x80>>uint(x&7)) != 0
}

// Modules returns the modules of c, true for bars.
func (c *Code) Modules() []bool {
	m := make([]bool, 0, c.Size)
	for _, s := range c.Symbols {
		m = s.Pattern.Modules(m)
	}
	return m
}

// A Bar is a run of modules of the same colour.
type Bar struct {
	X, Width int // in modules
	Black    bool
}

// Bars returns the runs of modules of c, alternating black and white,
// starting and ending with black.
func (c *Code) Bars() []Bar {
	var bars []Bar
	for x := 0; x < c.Size; {
		b := Bar{X: x, Black: c.Black(x)}
		for x < c.Size && c.Black(x) == b.Black {
			x++
		}
		b.Width = x - b.X
		bars = append(bars, b)
	}
	return bars
}

// A Renderer paints a Code.  It draws the modules of each symbol in
// order, left to right, as rectangles c.Width wide and height high,
// in the foreground colour for bars and the background colour for
// spaces, without gaps.  A Renderer draws nothing for an empty Code.
type Renderer interface {
	Render(c *Code, height float64) error
}

// Draw calls rect for each module of c, in order, with the module's
// offset, width and height and whether it is a bar.  Offsets do not
// include the quiet zone.
func (c *Code) Draw(height float64, rect func(x, w, h float64, bar bool)) {
	x := 0
	for _, s := range c.Symbols {
		p := s.Pattern
		for i := 0; i < len(p); i++ {
			rect(float64(x)*c.Width, c.Width, height, p[i] == '1')
			x++
		}
	}
}

// Colors returns the background and foreground colours of c.
func (c *Code) Colors() (bg, fg color.Color) {
	bg, fg = whiteColor, blackColor
	if c.Palette != nil {
		bg, fg = c.Palette[0], c.Palette[1]
	}
	if c.Reverse {
		bg, fg = fg, bg
	}
	return bg, fg
}

// isValid reports whether c can be rendered as an image.
func (c *Code) isValid() bool {
	return c.Scale >= 1 && c.Height >= 1 && c.Border >= 0 &&
		len(c.Bitmap)*8 >= c.Size
}

// dims returns the image width and height in pixels.
func (c *Code) dims() (int, int, error) {
	if !c.isValid() {
		return 0, 0, ErrArgs
	}
	if c.Empty() {
		return 0, 0, ErrEmpty
	}
	const lim = 1 << 20
	if c.Border > lim/c.Scale || c.Height > lim/c.Scale {
		return 0, 0, ErrLargeImage
	}
	w := c.Size + 2*c.Border
	if w > lim/c.Scale {
		return 0, 0, ErrLargeImage
	}
	return w * c.Scale, c.Height * c.Scale, nil
}

// Image returns an Image displaying the code, including the quiet
// zone.  The image implements image.PalettedImage.
func (c *Code) Image() image.Image {
	bg, fg := c.Colors()
	return &codeImage{c, color.Palette{bg, fg}}
}

// codeImage implements image.PalettedImage
type codeImage struct {
	*Code
	pal color.Palette
}

var (
	whiteColor color.Color = color.Gray{0xFF}
	blackColor color.Color = color.Gray{0x00}
)

func (c *codeImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, (c.Size+2*c.Border)*c.Scale, c.Height*c.Scale)
}

func (c *codeImage) ColorIndexAt(x, y int) uint8 {
	if y < 0 || y >= c.Height*c.Scale || x < 0 ||
		!c.Black(x/c.Scale-c.Border) {
		return 0
	}
	return 1
}

func (c *codeImage) At(x, y int) color.Color {
	return c.pal[c.ColorIndexAt(x, y)]
}

func (c *codeImage) ColorModel() color.Model {
	return c.pal
}
