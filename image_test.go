// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package code128

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/oned"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decode reads a Code 128 barcode from img.
func decode(t *testing.T, img image.Image) string {
	t.Helper()
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	require.NoError(t, err)
	res, err := oned.NewCode128Reader().Decode(bmp, nil)
	require.NoError(t, err)
	return res.GetText()
}

func TestImageRoundTrip(t *testing.T) {
	for _, s := range []string{
		"A", "1234", "Hello, World!", "code128 {~}", "x",
		// checksum values 95 to 102, drawn as function symbols
		"~", "!O", " P", "!P", " Q", "!Q", " R", "!R",
	} {
		c := Encode(s)
		assert.Equal(t, s, decode(t, c.Image()), "%q", s)
	}
}

func TestPNGRoundTrip(t *testing.T) {
	c := Encode("PNG-42")
	b := c.PNG()
	require.NotNil(t, b)
	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, c.Image().Bounds(), img.Bounds())
	assert.Equal(t, "PNG-42", decode(t, img))
}

func TestImagePixels(t *testing.T) {
	c := Encode("A")
	c.Scale, c.Height, c.Border = 3, 5, 2
	img := c.Image()
	assert.Equal(t, image.Rect(0, 0, (c.Size+4)*3, 15), img.Bounds())
	for y := 0; y < 15; y++ {
		for x := 0; x < (c.Size+4)*3; x++ {
			want := uint8(0)
			if c.Black(x/3 - 2) {
				want = 1
			}
			got := img.(image.PalettedImage).ColorIndexAt(x, y)
			if got != want {
				t.Fatalf("(%d,%d): got %d, want %d", x, y, got, want)
			}
		}
	}
	assert.Equal(t, color.Gray{0}, img.At(6, 0))
	assert.Equal(t, color.Gray{0xff}, img.At(5, 0))
}

func TestImagePalette(t *testing.T) {
	c := Encode("A")
	red := color.RGBA{0xff, 0, 0, 0xff}
	c.Palette = &[2]color.Color{color.White, red}
	assert.Equal(t, red, c.Image().At(c.Border*c.Scale, 0))
	c.Reverse = true
	assert.Equal(t, red, c.Image().At(0, 0))
}

func TestEncodePBM(t *testing.T) {
	c := Encode("PBM")
	c.Scale, c.Height, c.Border = 1, 4, 3
	var b bytes.Buffer
	require.NoError(t, c.EncodePBM(&b))
	w := c.Size + 6
	hdr := fmt.Sprintf("P4\n%d 4\n", w)
	require.True(t, strings.HasPrefix(b.String(), hdr))
	data := b.Bytes()[len(hdr):]
	stride := (w + 7) / 8
	require.Len(t, data, stride*4)
	for y := 0; y < 4; y++ {
		row := data[y*stride : (y+1)*stride]
		for x := 0; x < w; x++ {
			got := row[x/8]&(0x80>>uint(x&7)) != 0
			assert.Equal(t, c.Black(x-3), got, "(%d,%d)", x, y)
		}
	}
}

func TestEncodePBMReverse(t *testing.T) {
	c := Encode("R")
	c.Scale, c.Height, c.Border = 2, 1, 1
	c.Reverse = true
	var b bytes.Buffer
	require.NoError(t, c.EncodePBM(&b))
	w := (c.Size + 2) * 2
	hdr := fmt.Sprintf("P4\n%d 2\n", w)
	row := b.Bytes()[len(hdr):][:(w+7)/8]
	for x := 0; x < w; x++ {
		got := row[x/8]&(0x80>>uint(x&7)) != 0
		assert.Equal(t, !c.Black(x/2-1), got, "%d", x)
	}
}

func TestWriterErrors(t *testing.T) {
	var b bytes.Buffer
	assert.ErrorIs(t, Encode("").EncodePBM(&b), ErrEmpty)
	assert.ErrorIs(t, Encode("").EncodePNG(&b), ErrEmpty)
	assert.ErrorIs(t, Encode("").EncodeEPS(&b), ErrEmpty)
	assert.Nil(t, Encode("").PNG())

	c := Encode("x")
	c.Scale = 0
	assert.ErrorIs(t, c.EncodePBM(&b), ErrArgs)
	c.Scale, c.Height = 1, 0
	assert.ErrorIs(t, c.EncodePNG(&b), ErrArgs)
	assert.ErrorIs(t, c.EncodeEPS(&b), ErrArgs)
	c.Height, c.Border = 1, -1
	assert.ErrorIs(t, c.EncodePBM(&b), ErrArgs)
	c.Border, c.Scale = 0, 1<<20
	assert.ErrorIs(t, c.EncodePBM(&b), ErrLargeImage)
	c.Border, c.Scale = 1<<62, 1
	assert.ErrorIs(t, c.EncodePBM(&b), ErrLargeImage)
	assert.ErrorIs(t, c.EncodePNG(&b), ErrLargeImage)
	assert.ErrorIs(t, Encode("x").EncodePNG(nil), ErrArgs)
	assert.Zero(t, b.Len())
}

func TestEncodeEPS(t *testing.T) {
	c := Encode("EPS")
	var b bytes.Buffer
	require.NoError(t, c.EncodeEPS(&b))
	s := b.String()
	assert.True(t, strings.HasPrefix(s, "%!PS-Adobe-3.0 EPSF-3.0\n"))
	assert.Contains(t, s, "%%Title: Code 128 EPS\n")
	assert.True(t, strings.HasSuffix(s, "%%EOF\n"))
	black := 0
	for _, bar := range c.Bars() {
		if bar.Black {
			black++
		}
	}
	assert.Equal(t, black, strings.Count(s, " b\n"))
	assert.NotContains(t, s, "rectfill\n0 0")

	c.Reverse = true
	b.Reset()
	require.NoError(t, c.EncodeEPS(&b))
	assert.Contains(t, b.String(), "0 0 0 setrgbcolor\n0 0 ")
}

func TestPSTitle(t *testing.T) {
	assert.Equal(t, "a?b?", psTitle("a\nbé"))
}

func TestString(t *testing.T) {
	c := Encode("txt")
	s := c.String()
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	require.Len(t, lines, c.TextRows())
	assert.Equal(t, 5, c.TextRows())
	for _, l := range lines {
		assert.Equal(t, lines[0], l)
		assert.Equal(t, (c.Size+2*c.Border+1)/2, utf8.RuneCountInString(l))
	}
	// Quiet zone, then the first bar of the start symbol "11".
	assert.True(t, strings.HasPrefix(lines[0], "     █"), "%q", lines[0])

	c.Reverse = true
	assert.True(t, strings.HasPrefix(c.String(), "█████ "))
}
